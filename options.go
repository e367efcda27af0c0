package stereo

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// Option configures a Compositor during creation.
//
// Example:
//
//	// Software-only compositing:
//	c := stereo.New()
//
//	// Sharing the host's GPU device:
//	c := stereo.New(stereo.WithDevice(app.GPUContextProvider()))
type Option func(*compositorOptions)

// compositorOptions holds optional configuration for Compositor
// creation.
type compositorOptions struct {
	provider  gpucontext.DeviceProvider
	format    gputypes.TextureFormat
	hudWidth  int
	hudHeight int
}

func defaultOptions() compositorOptions {
	return compositorOptions{
		format:    gputypes.TextureFormatRGBA8Unorm,
		hudWidth:  defaultHudWidth,
		hudHeight: defaultHudHeight,
	}
}

// WithDevice shares the host application's GPU device with the
// compositor. The compositor receives the device, it does not create
// one; the provider stays owned by the host.
//
// When the provider also exposes the underlying HAL device (HalDevice()
// any), the stream renderer creates its shader module on it. Without a
// provider, compositing runs on the CPU and results reach the host
// textures through [gpucontext.TextureUpdater].
func WithDevice(provider gpucontext.DeviceProvider) Option {
	return func(o *compositorOptions) {
		o.provider = provider
	}
}

// WithSwapchainFormat sets the texture format the swapchain render
// targets are described as. See [ChooseSwapchainFormat] for picking one
// from the runtime's supported set.
func WithSwapchainFormat(format gputypes.TextureFormat) Option {
	return func(o *compositorOptions) {
		o.format = format
	}
}

// WithHudSize overrides the HUD overlay texture dimensions.
func WithHudSize(width, height int) Option {
	return func(o *compositorOptions) {
		if width > 0 && height > 0 {
			o.hudWidth = width
			o.hudHeight = height
		}
	}
}
