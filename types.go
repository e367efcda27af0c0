package stereo

import "github.com/go-gl/mathgl/mgl32"

// Pose is a rigid transform: an orientation quaternion and a position.
type Pose struct {
	// Orientation is a unit quaternion.
	Orientation mgl32.Quat

	// Position in world units.
	Position mgl32.Vec3
}

// Fov holds four independent field-of-view half-angles in radians,
// supporting asymmetric optics. Left and Down are typically negative.
type Fov struct {
	Left   float32
	Right  float32
	Up     float32
	Down   float32
}

// EyeInput is the per-eye camera input for one rendered frame.
// It is a plain value supplied fresh every frame and never retained.
type EyeInput struct {
	Pose Pose
	Fov  Fov
}

// StreamConfig describes the remote stream geometry and its foveated
// encoding parameters. It is always supplied as a complete value set;
// SetStreamConfig fully replaces the previous configuration, never
// merges.
type StreamConfig struct {
	// ViewWidth and ViewHeight are the per-eye full-geometry view
	// dimensions in pixels.
	ViewWidth  uint32
	ViewHeight uint32

	// EnableFoveation selects foveated encoding. The remaining fields
	// are meaningful only while it is true.
	EnableFoveation bool

	// CenterSizeX and CenterSizeY give the full-resolution center
	// region size as a fraction of the view, in (0, 1].
	CenterSizeX float32
	CenterSizeY float32

	// CenterShiftX and CenterShiftY offset the center region from the
	// geometric center, as a fraction of the remaining margin in
	// [-1, 1].
	CenterShiftX float32
	CenterShiftY float32

	// EdgeRatioX and EdgeRatioY are the compression ratios applied to
	// the periphery along each axis, >= 1.
	EdgeRatioX float32
	EdgeRatioY float32
}
