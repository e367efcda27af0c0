package stereo

import (
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	img "github.com/gogpu/stereo/internal/image"
)

// Default HUD overlay dimensions and text size, matching the aspect
// ratio of the lobby panel the overlay is mapped onto.
const (
	defaultHudWidth  = 1280
	defaultHudHeight = 720
	hudFontSize      = 50
)

// hudTexture is the mutable overlay shown on the lobby scene.
//
// Writers (UI/control goroutines) publish a complete replacement
// texture through an atomic pointer; the render goroutine loads the
// most recent one at frame start. Last write wins, no queueing, and
// neither side ever blocks the other.
type hudTexture struct {
	width  int
	height int
	tex    atomic.Pointer[img.Buf]

	// Text rasterization state, shared by UpdateHudMessage callers.
	mu       sync.Mutex
	fontOnce sync.Once
	face     font.Face
	fontErr  error
}

func newHudTexture(width, height int) *hudTexture {
	return &hudTexture{width: width, height: height}
}

// snapshot returns the most recently published overlay, or nil if none
// has been set yet.
func (h *hudTexture) snapshot() *img.Buf {
	return h.tex.Load()
}

// setPixels replaces the overlay with raw RGBA8 pixel data. The data is
// copied, so the caller's buffer is not retained.
func (h *hudTexture) setPixels(data []byte) {
	want := h.width * h.height * img.BytesPerPixel
	if len(data) != want {
		Logger().Warn("stereo: hud texture update rejected",
			slog.Int("got", len(data)),
			slog.Int("want", want))
		return
	}

	buf, err := img.New(h.width, h.height)
	if err != nil {
		return
	}
	copy(buf.Pix(), data)
	h.tex.Store(buf)
}

// setMessage rasterizes a status message, centered in the overlay, and
// publishes it. Lines are split on '\n'.
func (h *hudTexture) setMessage(msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.fontOnce.Do(func() {
		ft, err := opentype.Parse(goregular.TTF)
		if err != nil {
			h.fontErr = err
			return
		}
		h.face, h.fontErr = opentype.NewFace(ft, &opentype.FaceOptions{
			Size:    hudFontSize,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	})
	if h.fontErr != nil {
		Logger().Warn("stereo: hud font unavailable", slog.Any("error", h.fontErr))
		return
	}

	rgba := image.NewRGBA(image.Rect(0, 0, h.width, h.height))
	draw.Draw(rgba, rgba.Bounds(), image.Transparent, image.Point{}, draw.Src)

	metrics := h.face.Metrics()
	lineHeight := metrics.Height.Ceil()
	lines := strings.Split(msg, "\n")

	startY := (h.height-lineHeight*len(lines))/2 + metrics.Ascent.Ceil()
	for i, line := range lines {
		w := font.MeasureString(h.face, line).Ceil()
		d := font.Drawer{
			Dst:  rgba,
			Src:  image.NewUniform(color.White),
			Face: h.face,
			Dot: fixed.P(
				(h.width-w)/2,
				startY+i*lineHeight,
			),
		}
		d.DrawString(line)
	}

	buf, err := img.Borrow(rgba.Pix, h.width, h.height, rgba.Stride)
	if err != nil {
		return
	}
	h.tex.Store(buf)
}
