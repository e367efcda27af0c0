package stereo

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestViewMatrixInvertsPose(t *testing.T) {
	v := viewMatrix(Pose{
		Orientation: mgl32.QuatIdent(),
		Position:    mgl32.Vec3{1, 2, 3},
	})

	eye := v.Mul4x1(mgl32.Vec4{1, 2, 3, 1})
	for i := 0; i < 3; i++ {
		if math.Abs(float64(eye[i])) > 1e-6 {
			t.Fatalf("camera position maps to %v, want origin", eye)
		}
	}
}

func TestViewMatrixAppliesOrientation(t *testing.T) {
	// Yaw 90 degrees left: the point one meter ahead in world -Z ends
	// up to the camera's right (+X in eye space).
	q := mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{0, 1, 0})
	v := viewMatrix(Pose{Orientation: q, Position: mgl32.Vec3{}})

	eye := v.Mul4x1(mgl32.Vec4{0, 0, -1, 1})
	if math.Abs(float64(eye.X()-1)) > 1e-5 || math.Abs(float64(eye.Z())) > 1e-5 {
		t.Errorf("world -Z maps to %v, want (1, 0, 0)", eye)
	}
}

func TestProjectionCenterRay(t *testing.T) {
	fov := Fov{Left: -0.785, Right: 0.785, Up: 0.785, Down: -0.785}
	p := projectionMatrix(fov, 0.1, 100)

	clip := p.Mul4x1(mgl32.Vec4{0, 0, -1, 1})
	if clip.W() <= 0 {
		t.Fatalf("w = %v, want positive for point in front of camera", clip.W())
	}
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	if math.Abs(float64(ndcX)) > 1e-6 || math.Abs(float64(ndcY)) > 1e-6 {
		t.Errorf("center ray projects to (%v, %v), want (0, 0)", ndcX, ndcY)
	}
}

func TestProjectionAsymmetricEdges(t *testing.T) {
	// Asymmetric optics: a ray along the right frustum edge must land
	// on ndc x = 1, one along the left edge on ndc x = -1, and the same
	// for the vertical edges. Only the axis under test is asserted: in
	// an off-center projection the perpendicular axis picks up the
	// frustum's own offset.
	fov := Fov{Left: -0.5, Right: 0.9, Up: 0.7, Down: -0.6}
	p := projectionMatrix(fov, 0.1, 100)

	ndc := func(x, y float32) (float64, float64) {
		clip := p.Mul4x1(mgl32.Vec4{x, y, -1, 1})
		return float64(clip.X() / clip.W()), float64(clip.Y() / clip.W())
	}
	tanf := func(a float32) float32 { return float32(math.Tan(float64(a))) }

	if x, _ := ndc(tanf(fov.Right), 0); math.Abs(x-1) > 1e-5 {
		t.Errorf("right edge ray projects to ndc x = %v, want 1", x)
	}
	if x, _ := ndc(tanf(fov.Left), 0); math.Abs(x+1) > 1e-5 {
		t.Errorf("left edge ray projects to ndc x = %v, want -1", x)
	}
	if _, y := ndc(0, tanf(fov.Up)); math.Abs(y-1) > 1e-5 {
		t.Errorf("top edge ray projects to ndc y = %v, want 1", y)
	}
	if _, y := ndc(0, tanf(fov.Down)); math.Abs(y+1) > 1e-5 {
		t.Errorf("bottom edge ray projects to ndc y = %v, want -1", y)
	}
}

func TestProjectionDepthRange(t *testing.T) {
	fov := Fov{Left: -0.785, Right: 0.785, Up: 0.785, Down: -0.785}
	near, far := float32(0.05), float32(50.0)
	p := projectionMatrix(fov, near, far)

	nearClip := p.Mul4x1(mgl32.Vec4{0, 0, -near, 1})
	farClip := p.Mul4x1(mgl32.Vec4{0, 0, -far, 1})

	if z := nearClip.Z() / nearClip.W(); math.Abs(float64(z+1)) > 1e-4 {
		t.Errorf("near plane depth = %v, want -1", z)
	}
	if z := farClip.Z() / farClip.W(); math.Abs(float64(z-1)) > 1e-4 {
		t.Errorf("far plane depth = %v, want 1", z)
	}
}
