package stereo

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestRenderModeString(t *testing.T) {
	tests := []struct {
		mode renderMode
		want string
	}{
		{modeNone, "none"},
		{modeLobby, "lobby"},
		{modeStream, "stream"},
		{renderMode(42), "none"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("renderMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestNewSwapchainSetTargets(t *testing.T) {
	s, err := newSwapchainSet(modeLobby, 32, 24, gputypes.TextureFormatRGBA8Unorm, testTextures(3))
	if err != nil {
		t.Fatalf("newSwapchainSet() = %v", err)
	}
	if s.length() != 3 {
		t.Fatalf("length() = %d, want 3", s.length())
	}
	for eye := 0; eye < 2; eye++ {
		for i := 0; i < s.length(); i++ {
			sl, err := s.slot(eye, i)
			if err != nil {
				t.Fatalf("slot(%d, %d) = %v", eye, i, err)
			}
			if sl.target.Width() != 32 || sl.target.Height() != 24 {
				t.Errorf("slot(%d, %d) target %dx%d, want 32x24",
					eye, i, sl.target.Width(), sl.target.Height())
			}
		}
	}
}

func TestSwapchainSlotRejectsOutOfRange(t *testing.T) {
	s, err := newSwapchainSet(modeStream, 16, 16, gputypes.TextureFormatRGBA8Unorm, testTextures(2))
	if err != nil {
		t.Fatalf("newSwapchainSet() = %v", err)
	}
	for _, index := range []int{-1, 2, 7} {
		if _, err := s.slot(0, index); !errors.Is(err, ErrSlotOutOfRange) {
			t.Errorf("slot(0, %d) = %v, want ErrSlotOutOfRange", index, err)
		}
	}
}

func TestSwapchainPresentWithoutUpdater(t *testing.T) {
	// Handles that do not implement texture updates are valid; present
	// leaves readback to the host.
	s, err := newSwapchainSet(modeLobby, 8, 8, gputypes.TextureFormatRGBA8Unorm,
		[2][]any{{"opaque"}, {"opaque"}})
	if err != nil {
		t.Fatalf("newSwapchainSet() = %v", err)
	}
	sl, err := s.slot(0, 0)
	if err != nil {
		t.Fatalf("slot() = %v", err)
	}
	if err := sl.present(); err != nil {
		t.Errorf("present() = %v, want nil for non-updater handle", err)
	}
}

func TestSwapchainReleaseDropsSlots(t *testing.T) {
	s, err := newSwapchainSet(modeLobby, 8, 8, gputypes.TextureFormatRGBA8Unorm, testTextures(2))
	if err != nil {
		t.Fatalf("newSwapchainSet() = %v", err)
	}
	s.release()
	if s.length() != 0 {
		t.Errorf("length() after release = %d, want 0", s.length())
	}
}
