package stereo

import (
	"fmt"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	img "github.com/gogpu/stereo/internal/image"
	"github.com/gogpu/stereo/internal/mesh"
	"github.com/gogpu/stereo/internal/raster"
)

// The lobby room model is embedded and immutable: parse it once for the
// process and share it read-only across renderers and eyes.
var (
	lobbyModelOnce sync.Once
	lobbyModel     *mesh.Model
	lobbyModelErr  error
)

func loadLobbyModel() (*mesh.Model, error) {
	lobbyModelOnce.Do(func() {
		lobbyModel, lobbyModelErr = mesh.LoadLobbyRoom()
	})
	if lobbyModelErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrLobbyAsset, lobbyModelErr)
	}
	return lobbyModel, nil
}

// Fraction of the view the screen-space HUD panel occupies.
const hudPanelWidthFrac = 0.6

// lobbyRenderer draws the local waiting scene: the shared room mesh
// under each eye's camera, with the current HUD overlay composited on
// top. It is driven by the single render goroutine and is not
// re-entrant.
type lobbyRenderer struct {
	sc    *swapchainSet
	hud   *hudTexture
	model *mesh.Model
	rast  *raster.Rasterizer
}

// newLobbyRenderer creates the lobby renderer for a prepared swapchain
// set. A corrupt embedded asset fails here, not per frame.
func newLobbyRenderer(sc *swapchainSet, hud *hudTexture) (*lobbyRenderer, error) {
	model, err := loadLobbyModel()
	if err != nil {
		return nil, err
	}
	return &lobbyRenderer{
		sc:    sc,
		hud:   hud,
		model: model,
		rast:  raster.New(sc.width, sc.height),
	}, nil
}

// render draws one lobby frame for both eyes into the selected slots.
func (r *lobbyRenderer) render(views [2]EyeInput, slots [2]int) error {
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

	hudOverlay := r.hud.snapshot()

	for eye, slot := range eyeSlots {
		target := slot.target
		target.Clear(16, 18, 26, 255)
		r.rast.Reset()

		vp := projectionMatrix(views[eye].Fov, lobbyNearPlane, lobbyFarPlane).
			Mul4(viewMatrix(views[eye].Pose))
		r.drawRoom(target, vp)

		if hudOverlay != nil {
			r.drawHudPanel(target, hudOverlay)
		}

		if err := slot.present(); err != nil {
			return err
		}
	}
	return nil
}

// drawRoom transforms and rasterizes the shared room mesh.
func (r *lobbyRenderer) drawRoom(target *img.Buf, vp mgl32.Mat4) {
	w := float64(r.sc.width)
	h := float64(r.sc.height)
	pos := r.model.Positions
	idx := r.model.Indices

	for t := 0; t+2 < len(idx); t += 3 {
		p0 := pos[idx[t]]
		p1 := pos[idx[t+1]]
		p2 := pos[idx[t+2]]

		v0, ok0 := projectVertex(vp, p0, w, h)
		v1, ok1 := projectVertex(vp, p1, w, h)
		v2, ok2 := projectVertex(vp, p2, w, h)
		if !ok0 || !ok1 || !ok2 {
			// Triangles crossing the near plane are dropped rather than
			// clipped; the room is large enough that this only happens
			// with the head pressed against a wall.
			continue
		}

		r.rast.FillTriangle(target, v0, v1, v2, shadeFace(p0, p1, p2))
	}
}

// projectVertex runs one model-space vertex through the view-projection
// matrix and the viewport transform. ok is false for vertices at or
// behind the near plane.
func projectVertex(vp mgl32.Mat4, p [3]float32, w, h float64) (raster.Vertex, bool) {
	clip := vp.Mul4x1(mgl32.Vec4{p[0], p[1], p[2], 1})
	if clip.W() < 1e-4 {
		return raster.Vertex{}, false
	}
	inv := 1 / float64(clip.W())
	ndcX := float64(clip.X()) * inv
	ndcY := float64(clip.Y()) * inv
	ndcZ := float64(clip.Z()) * inv
	return raster.Vertex{
		X: (ndcX + 1) / 2 * w,
		Y: (1 - ndcY) / 2 * h,
		Z: (ndcZ + 1) / 2,
	}, true
}

// shadeFace flat-shades a room face from its geometric normal.
func shadeFace(p0, p1, p2 [3]float32) raster.RGBA {
	a := mgl32.Vec3{p1[0] - p0[0], p1[1] - p0[1], p1[2] - p0[2]}
	b := mgl32.Vec3{p2[0] - p0[0], p2[1] - p0[1], p2[2] - p0[2]}
	n := a.Cross(b)
	if n.Len() > 0 {
		n = n.Normalize()
	}

	light := mgl32.Vec3{0.3, 0.8, 0.5}.Normalize()
	d := n.Dot(light)
	if d < 0 {
		d = -d
	}
	brightness := 0.35 + 0.65*float64(d)

	return raster.RGBA{
		R: byte(72 * brightness),
		G: byte(84 * brightness),
		B: byte(104 * brightness),
		A: 255,
	}
}

// drawHudPanel composites the overlay as a centered screen-space panel.
func (r *lobbyRenderer) drawHudPanel(target *img.Buf, overlay *img.Buf) {
	panelW := int(float64(r.sc.width) * hudPanelWidthFrac)
	panelH := panelW * overlay.Height() / overlay.Width()
	x0 := (r.sc.width - panelW) / 2
	y0 := (r.sc.height - panelH) / 2

	for y := 0; y < panelH; y++ {
		v := (float64(y) + 0.5) / float64(panelH)
		for x := 0; x < panelW; x++ {
			u := (float64(x) + 0.5) / float64(panelW)
			cr, cg, cb, ca := img.SampleBilinear(overlay, u, v)
			target.BlendRGBA(x0+x, y0+y, cr, cg, cb, ca)
		}
	}
}
