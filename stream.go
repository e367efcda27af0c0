package stereo

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	img "github.com/gogpu/stereo/internal/image"
)

// streamShaderWGSL performs the inverse foveation mapping on the GPU:
// for every full-geometry fragment it computes the encoded-frame
// coordinate (the same piecewise-linear compress the software path
// uses) and samples the decoded frame there.
const streamShaderWGSL = `
struct FoveationParams {
    lo: vec2<f32>,
    hi: vec2<f32>,
    edge_start: vec2<f32>,
    center: vec2<f32>,
    inv_ratio: vec2<f32>,
    inv_total: vec2<f32>,
    enabled: u32,
    _pad: u32,
}

@group(0) @binding(0) var frame_tex: texture_2d<f32>;
@group(0) @binding(1) var frame_samp: sampler;
@group(0) @binding(2) var<uniform> params: FoveationParams;

struct VertexOut {
    @builtin(position) pos: vec4<f32>,
    @location(0) uv: vec2<f32>,
}

@vertex
fn vs_main(@builtin(vertex_index) idx: u32) -> VertexOut {
    var out: VertexOut;
    let uv = vec2<f32>(f32((idx << 1u) & 2u), f32(idx & 2u));
    out.pos = vec4<f32>(uv * 2.0 - 1.0, 0.0, 1.0);
    out.uv = vec2<f32>(uv.x, 1.0 - uv.y);
    return out;
}

fn compress_axis(u: f32, lo: f32, hi: f32, edge_start: f32, center: f32,
                 inv_ratio: f32, inv_total: f32) -> f32 {
    var t: f32;
    if (u < lo) {
        t = u * inv_ratio;
    } else if (u <= hi) {
        t = edge_start + (u - lo);
    } else {
        t = edge_start + center + (u - hi) * inv_ratio;
    }
    return t * inv_total;
}

@fragment
fn fs_main(in: VertexOut) -> @location(0) vec4<f32> {
    var uv = clamp(in.uv, vec2<f32>(0.0), vec2<f32>(1.0));
    if (params.enabled != 0u) {
        uv = vec2<f32>(
            compress_axis(uv.x, params.lo.x, params.hi.x, params.edge_start.x,
                          params.center.x, params.inv_ratio.x, params.inv_total.x),
            compress_axis(uv.y, params.lo.y, params.hi.y, params.edge_start.y,
                          params.center.y, params.inv_ratio.y, params.inv_total.y),
        );
    }
    return textureSample(frame_tex, frame_samp, uv);
}
`

// compileStreamShader compiles the WGSL source to SPIR-V words.
func compileStreamShader() ([]uint32, error) {
	spirvBytes, err := naga.Compile(streamShaderWGSL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShaderCompile, err)
	}

	// SPIR-V is little-endian 32-bit words.
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return spirvCode, nil
}

// halProvider is implemented by device providers that expose the
// underlying wgpu HAL handles.
type halProvider interface {
	HalDevice() any
}

// streamRenderer samples one externally supplied decoded frame into
// both eye slots, expanding the compressed periphery back to full
// geometry. The decoded frame is borrowed for the duration of a single
// render call and never retained.
type streamRenderer struct {
	sc *swapchainSet

	// Present only when the host shared a HAL device. The module is
	// compiled and validated at stream start so shader defects surface
	// there, and held for the host's GPU present path; compositing
	// itself runs through the software sampler.
	device hal.Device
	module hal.ShaderModule
}

// newStreamRenderer creates the stream renderer. When the device
// provider exposes a HAL device, the stream shader is compiled and its
// module created on that device at stream start; a failure there is a
// resource-class error reported to the host rather than per frame.
// Without a device no shader is built.
func newStreamRenderer(sc *swapchainSet, provider any) (*streamRenderer, error) {
	r := &streamRenderer{sc: sc}

	hp, ok := provider.(halProvider)
	if !ok {
		return r, nil
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return r, nil
	}

	spirv, err := compileStreamShader()
	if err != nil {
		return nil, err
	}
	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "stereo-stream-shader",
		Source: hal.ShaderSource{SPIRV: spirv},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShaderCompile, err)
	}
	r.device = device
	r.module = module
	return r, nil
}

// render samples the borrowed frame into the selected slot of each eye
// through the latched foveation pattern. It completes synchronously;
// there is no retry or frame queue, and a skipped call simply leaves the
// previously presented image on screen.
func (r *streamRenderer) render(frame DecodedFrame, slots [2]int, pattern *FoveationPattern) error {
	if frame == nil {
		return ErrNilFrame
	}

	// Both slots are resolved before either target is touched, so a
	// rejected call leaves every host texture as it was.
	var eyeSlots [2]*swapchainSlot
	for eye := 0; eye < 2; eye++ {
		slot, err := r.sc.slot(eye, slots[eye])
		if err != nil {
			return err
		}
		eyeSlots[eye] = slot
	}

	src, err := img.Borrow(frame.Pixels(), frame.Width(), frame.Height(), frame.Stride())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNilFrame, err)
	}

	for eye, slot := range eyeSlots {
		r.blit(slot.target, src, eye, pattern)

		if err := slot.present(); err != nil {
			return err
		}
	}
	// src wraps the borrowed frame memory; it must not outlive this
	// call, and nothing above stores it.
	return nil
}

// blit resamples one eye's half of the decoded frame into the target.
// The decoded frame carries both eyes side by side; eye 0 samples the
// left half, eye 1 the right half. When the pattern is the identity
// this reduces to a direct sample of the input.
func (r *streamRenderer) blit(target, src *img.Buf, eye int, pattern *FoveationPattern) {
	w := target.Width()
	h := target.Height()
	halfU := 0.5
	baseU := float64(eye) * halfU

	for y := 0; y < h; y++ {
		v := (float64(y) + 0.5) / float64(h)
		for x := 0; x < w; x++ {
			u := (float64(x) + 0.5) / float64(w)
			su, sv := pattern.Compress(u, v)
			cr, cg, cb, ca := img.SampleBilinear(src, baseU+su*halfU, sv)
			target.SetRGBA(x, y, cr, cg, cb, ca)
		}
	}
}

// release frees the GPU shader module if one was created. Swapchain
// handles stay with the host.
func (r *streamRenderer) release() {
	if r.device != nil && r.module != nil {
		r.device.DestroyShaderModule(r.module)
		r.module = nil
		r.device = nil
	}
}
