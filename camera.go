package stereo

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Clip plane distances for the lobby camera. The room is a few meters
// across, so a short far plane keeps depth precision high.
const (
	lobbyNearPlane = 0.05
	lobbyFarPlane  = 50.0
)

// viewMatrix builds the world-to-eye transform from a tracked pose:
// the inverse of the pose's rigid transform.
func viewMatrix(p Pose) mgl32.Mat4 {
	rot := p.Orientation.Normalize().Inverse().Mat4()
	return rot.Mul4(mgl32.Translate3D(
		-p.Position.X(), -p.Position.Y(), -p.Position.Z()))
}

// projectionMatrix builds an off-center perspective projection from
// four independent field-of-view half-angles. Left and Down are
// expected to be negative for a symmetric eye.
func projectionMatrix(fov Fov, near, far float32) mgl32.Mat4 {
	tanL := float32(math.Tan(float64(fov.Left)))
	tanR := float32(math.Tan(float64(fov.Right)))
	tanU := float32(math.Tan(float64(fov.Up)))
	tanD := float32(math.Tan(float64(fov.Down)))

	w := tanR - tanL
	h := tanU - tanD

	var m mgl32.Mat4
	m[0] = 2 / w
	m[5] = 2 / h
	m[8] = (tanR + tanL) / w
	m[9] = (tanU + tanD) / h
	m[10] = -(far + near) / (far - near)
	m[11] = -1
	m[14] = -(2 * far * near) / (far - near)
	return m
}
