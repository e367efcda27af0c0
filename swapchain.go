package stereo

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	img "github.com/gogpu/stereo/internal/image"
)

// renderMode identifies which renderer owns a swapchain set.
type renderMode int

const (
	modeNone renderMode = iota
	modeLobby
	modeStream
)

func (m renderMode) String() string {
	switch m {
	case modeLobby:
		return "lobby"
	case modeStream:
		return "stream"
	default:
		return "none"
	}
}

// swapchainSlot couples one host-owned texture handle with the CPU
// render target backing it. The handle is borrowed for the lifetime of
// its mode; the compositor never destroys it.
type swapchainSlot struct {
	handle any
	target *img.Buf
}

// present pushes the rendered pixels into the host texture when the
// handle supports updates ([gpucontext.TextureUpdater]). Handles that
// do not are left to the host to read back.
func (sl *swapchainSlot) present() error {
	if u, ok := sl.handle.(gpucontext.TextureUpdater); ok {
		if err := u.UpdateData(sl.target.Pix()); err != nil {
			return fmt.Errorf("stereo: swapchain texture update failed: %w", err)
		}
	}
	return nil
}

// swapchainSet is a pair of per-eye ordered slot sequences of fixed
// length, created independently for lobby mode and stream mode.
type swapchainSet struct {
	mode   renderMode
	width  int
	height int
	format gputypes.TextureFormat
	eyes   [2][]swapchainSlot
}

// newSwapchainSet validates the prepare parameters and builds render
// targets of size width x height for every slot of both eyes.
func newSwapchainSet(mode renderMode, width, height int, format gputypes.TextureFormat, textures [2][]any) (*swapchainSet, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(textures[0]) == 0 || len(textures[1]) == 0 {
		return nil, fmt.Errorf("%w: missing eye texture array", ErrInvalidSwapchain)
	}
	if len(textures[0]) != len(textures[1]) {
		return nil, fmt.Errorf("%w: eye lengths differ (%d vs %d)",
			ErrInvalidSwapchain, len(textures[0]), len(textures[1]))
	}

	s := &swapchainSet{mode: mode, width: width, height: height, format: format}
	for eye := 0; eye < 2; eye++ {
		slots := make([]swapchainSlot, len(textures[eye]))
		for i, handle := range textures[eye] {
			target, err := img.New(width, height)
			if err != nil {
				// Allocation failure is fatal for the subsystem; a
				// half-built swapchain must not be rendered to.
				return nil, fmt.Errorf("stereo: swapchain target allocation: %w", err)
			}
			slots[i] = swapchainSlot{handle: handle, target: target}
		}
		s.eyes[eye] = slots
	}

	Logger().Info("stereo: swapchains prepared",
		slog.String("mode", mode.String()),
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Int("length", s.length()))
	return s, nil
}

// length returns the per-eye slot count fixed at creation.
func (s *swapchainSet) length() int { return len(s.eyes[0]) }

// slot returns the addressed slot, rejecting indices outside
// [0, length).
func (s *swapchainSet) slot(eye, index int) (*swapchainSlot, error) {
	if index < 0 || index >= len(s.eyes[eye]) {
		return nil, fmt.Errorf("%w: eye %d index %d, length %d",
			ErrSlotOutOfRange, eye, index, len(s.eyes[eye]))
	}
	return &s.eyes[eye][index], nil
}

// release drops the slot targets and borrowed handles. The handles stay
// owned by the host; nothing is destroyed here.
func (s *swapchainSet) release() {
	s.eyes[0] = nil
	s.eyes[1] = nil
}
