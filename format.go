package stereo

import "github.com/gogpu/gputypes"

// ChooseSwapchainFormat picks the best swapchain texture format from
// the formats the runtime supports, in priority order. sRGB formats are
// preferred so the display pipeline performs gamma conversion.
//
// float16 is required for HDR output but carries a high performance
// cost, so it is only considered when enableHDR is set.
//
// If supported is empty the runtime could not enumerate formats, and
// the required baseline (RGBA8 sRGB) is returned.
func ChooseSwapchainFormat(supported []gputypes.TextureFormat, enableHDR bool) gputypes.TextureFormat {
	preferred := []gputypes.TextureFormat{
		gputypes.TextureFormatRGBA8UnormSrgb,
		gputypes.TextureFormatBGRA8UnormSrgb,
		gputypes.TextureFormatRGBA8Unorm,
		gputypes.TextureFormatBGRA8Unorm,
	}
	if enableHDR {
		preferred = append([]gputypes.TextureFormat{gputypes.TextureFormatRGBA16Float}, preferred...)
	}

	for _, want := range preferred {
		for _, have := range supported {
			if want == have {
				return want
			}
		}
	}

	return gputypes.TextureFormatRGBA8UnormSrgb
}
