package stereo

import "errors"

// Package errors for compositor lifecycle and rendering.
var (
	// ErrNotInitialized is returned when operations are called before
	// InitGraphics.
	ErrNotInitialized = errors.New("stereo: graphics context not initialized")

	// ErrAlreadyInitialized is returned when InitGraphics is called twice
	// without an intervening DestroyGraphics.
	ErrAlreadyInitialized = errors.New("stereo: graphics context already initialized")

	// ErrDestroyed is returned for any call made after DestroyGraphics.
	ErrDestroyed = errors.New("stereo: graphics context destroyed")

	// ErrInvalidDimensions is returned when view width or height is
	// zero or negative.
	ErrInvalidDimensions = errors.New("stereo: invalid view dimensions")

	// ErrInvalidSwapchain is returned when an eye texture array is
	// missing, empty, or the two eyes disagree on length.
	ErrInvalidSwapchain = errors.New("stereo: invalid swapchain textures")

	// ErrSlotOutOfRange is returned when a render call names a swapchain
	// slot outside [0, length).
	ErrSlotOutOfRange = errors.New("stereo: swapchain slot index out of range")

	// ErrWrongMode is returned when a render call does not match the
	// active mode (lobby render while streaming, stream render while in
	// the lobby, or any render with no mode prepared).
	ErrWrongMode = errors.New("stereo: render call does not match active mode")

	// ErrNilFrame is returned when RenderStream is passed a nil decoded
	// frame.
	ErrNilFrame = errors.New("stereo: nil decoded frame")

	// ErrLobbyAsset is returned when the embedded lobby room asset fails
	// to parse. This is fatal for the lobby renderer.
	ErrLobbyAsset = errors.New("stereo: lobby room asset load failed")

	// ErrShaderCompile is returned when the stream shader fails to
	// compile at stream start.
	ErrShaderCompile = errors.New("stereo: stream shader compilation failed")
)
