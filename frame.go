package stereo

// DecodedFrame is a non-owning view of one decoded video image.
//
// The frame is owned by the decode actor. It is valid only for the
// duration of the RenderStream call it is passed to: the compositor
// samples it synchronously and holds no reference after the call
// returns. It never copies, retains, or releases the frame.
type DecodedFrame interface {
	// Width returns the frame width in pixels.
	Width() int

	// Height returns the frame height in pixels.
	Height() int

	// Pixels returns the frame's RGBA8 pixel data.
	Pixels() []byte

	// Stride returns the number of bytes per row.
	Stride() int
}
