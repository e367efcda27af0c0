package stereo

import (
	"log/slog"
	"sync/atomic"
)

// Compositor owns the process-wide rendering state for the streaming
// client's visible surface: the graphics context lifetime, the per-mode
// swapchains, and the lobby and stream renderers.
//
// Lifecycle and per-frame calls must come from a single render
// goroutine, in order: InitGraphics, PrepareLobby, StartStream at mode
// switch, DestroyRenderers, DestroyGraphics. SetStreamConfig,
// UpdateHudTexture and UpdateHudMessage may come from any goroutine at
// any time.
//
// Calls made in the wrong state are rejected defensively: logged at
// warn level, returned as an error, and otherwise a no-op. Aborting the
// render goroutine is worse than a dropped frame in a live session.
type Compositor struct {
	opts compositorOptions

	// Lifecycle flags. destroyed is atomic because the asynchronous
	// entry points (HUD, config) must observe teardown from other
	// goroutines.
	initialized bool
	destroyed   atomic.Bool

	// Active render mode plus per-mode resources. A lobby swapchain set
	// may persist while streaming; active mode decides which render
	// call is accepted.
	mode     renderMode
	lobbySC  *swapchainSet
	streamSC *swapchainSet
	lobby    *lobbyRenderer
	stream   *streamRenderer

	hud *hudTexture

	// Most recent complete StreamConfig and the pattern derived from
	// it. Published atomically; renders latch the pattern once at frame
	// start so a configuration change never lands mid-frame.
	config  atomic.Pointer[StreamConfig]
	pattern atomic.Pointer[FoveationPattern]
}

// New creates a compositor. The graphics context is not initialized
// until InitGraphics.
func New(opts ...Option) *Compositor {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	c := &Compositor{
		opts: options,
		hud:  newHudTexture(options.hudWidth, options.hudHeight),
	}
	c.pattern.Store(NewFoveationPattern(StreamConfig{}))
	return c
}

// InitGraphics allocates the process-wide graphics state. It must
// precede every other lifecycle and render call. Calling it twice
// without an intervening DestroyGraphics is rejected.
func (c *Compositor) InitGraphics() error {
	if c.destroyed.Load() {
		return ErrDestroyed
	}
	if c.initialized {
		Logger().Warn("stereo: InitGraphics called twice")
		return ErrAlreadyInitialized
	}

	c.initialized = true
	Logger().Info("stereo: graphics context initialized",
		slog.Bool("gpuDevice", c.opts.provider != nil))
	return nil
}

// PrepareLobby builds lobby-mode swapchains of size width x height from
// the host's per-eye texture arrays and activates the lobby renderer.
// The embedded room asset is loaded on first use; a corrupt asset is
// fatal here, not per frame.
func (c *Compositor) PrepareLobby(width, height int, textures [2][]any) error {
	if err := c.checkReady("PrepareLobby"); err != nil {
		return err
	}

	sc, err := newSwapchainSet(modeLobby, width, height, c.opts.format, textures)
	if err != nil {
		Logger().Warn("stereo: PrepareLobby rejected", slog.Any("error", err))
		return err
	}

	lobby, err := newLobbyRenderer(sc, c.hud)
	if err != nil {
		sc.release()
		return err
	}

	c.releaseLobby()
	c.lobbySC = sc
	c.lobby = lobby
	c.mode = modeLobby
	return nil
}

// SetStreamConfig stores the supplied configuration verbatim, fully
// replacing any prior one. The derived foveation pattern takes effect
// at the next frame boundary; an in-flight render finishes with the
// pattern that was active when it began.
//
// Safe to call from any goroutine.
func (c *Compositor) SetStreamConfig(cfg StreamConfig) {
	if c.destroyed.Load() {
		Logger().Warn("stereo: SetStreamConfig after DestroyGraphics")
		return
	}

	c.config.Store(&cfg)
	c.pattern.Store(NewFoveationPattern(cfg))
	Logger().Info("stereo: stream config set",
		slog.Int("viewWidth", int(cfg.ViewWidth)),
		slog.Int("viewHeight", int(cfg.ViewHeight)),
		slog.Bool("foveation", cfg.EnableFoveation))
}

// StartStream builds stream-mode swapchains from the active stream
// configuration's view dimensions, independent of any lobby swapchains
// that may still exist, and activates the stream renderer.
// SetStreamConfig must have been called first.
func (c *Compositor) StartStream(textures [2][]any) error {
	if err := c.checkReady("StartStream"); err != nil {
		return err
	}

	cfg := c.config.Load()
	if cfg == nil {
		Logger().Warn("stereo: StartStream without a stream config")
		return ErrInvalidDimensions
	}

	sc, err := newSwapchainSet(modeStream, int(cfg.ViewWidth), int(cfg.ViewHeight), c.opts.format, textures)
	if err != nil {
		Logger().Warn("stereo: StartStream rejected", slog.Any("error", err))
		return err
	}

	stream, err := newStreamRenderer(sc, c.opts.provider)
	if err != nil {
		sc.release()
		return err
	}

	c.releaseStream()
	c.streamSC = sc
	c.stream = stream
	c.mode = modeStream
	return nil
}

// RenderLobby renders one lobby frame for both eyes into the selected
// swapchain slots. Must be called from the render goroutine, at most
// once per display refresh, and only while the lobby is the active
// mode.
func (c *Compositor) RenderLobby(views [2]EyeInput, slots [2]int) error {
	if err := c.checkMode("RenderLobby", modeLobby); err != nil {
		return err
	}

	if err := c.lobby.render(views, slots); err != nil {
		Logger().Warn("stereo: RenderLobby dropped", slog.Any("error", err))
		return err
	}
	return nil
}

// RenderStream samples the borrowed decoded frame into both eye slots,
// expanding the foveated periphery back to full geometry. The frame is
// valid only for the duration of this call; the compositor does not
// copy, retain, or release it.
func (c *Compositor) RenderStream(frame DecodedFrame, slots [2]int) error {
	if err := c.checkMode("RenderStream", modeStream); err != nil {
		return err
	}

	// Latch the pattern once: a concurrent SetStreamConfig affects the
	// next frame, never this one.
	pattern := c.pattern.Load()

	if err := c.stream.render(frame, slots, pattern); err != nil {
		Logger().Warn("stereo: RenderStream dropped", slog.Any("error", err))
		return err
	}
	return nil
}

// UpdateHudTexture replaces the lobby HUD overlay with raw RGBA8 pixel
// data (HudWidth x HudHeight x 4 bytes). Non-blocking and safe from any
// goroutine: the render goroutine picks up the most recent texture at
// its next frame, last write wins.
func (c *Compositor) UpdateHudTexture(data []byte) {
	if c.destroyed.Load() {
		Logger().Warn("stereo: UpdateHudTexture after DestroyGraphics")
		return
	}
	c.hud.setPixels(data)
}

// UpdateHudMessage rasterizes a status message, centered, into the HUD
// overlay. Non-blocking with respect to the render goroutine; safe from
// any goroutine.
func (c *Compositor) UpdateHudMessage(msg string) {
	if c.destroyed.Load() {
		Logger().Warn("stereo: UpdateHudMessage after DestroyGraphics")
		return
	}
	c.hud.setMessage(msg)
}

// HudSize returns the HUD overlay dimensions in pixels.
func (c *Compositor) HudSize() (width, height int) {
	return c.hud.width, c.hud.height
}

// DestroyLobby releases lobby-mode swapchains and renderer without
// affecting the graphics context or a running stream.
func (c *Compositor) DestroyLobby() {
	c.releaseLobby()
	if c.mode == modeLobby {
		c.mode = modeNone
		if c.streamSC != nil {
			c.mode = modeStream
		}
	}
}

// DestroyStream releases stream-mode swapchains and renderer without
// affecting the graphics context. A still-prepared lobby becomes the
// active mode again.
func (c *Compositor) DestroyStream() {
	c.releaseStream()
	if c.mode == modeStream {
		c.mode = modeNone
		if c.lobbySC != nil {
			c.mode = modeLobby
		}
	}
}

// DestroyRenderers releases both render modes, returning the compositor
// to the context-ready state. The graphics context persists and new
// swapchains may be prepared afterward.
func (c *Compositor) DestroyRenderers() {
	c.releaseLobby()
	c.releaseStream()
	c.mode = modeNone
}

// DestroyGraphics releases every owned resource and ends the subsystem
// lifetime. Render-mode resources still alive are released first. Every
// call after this one is rejected; the compositor is not reusable.
func (c *Compositor) DestroyGraphics() {
	if c.destroyed.Swap(true) {
		return
	}
	c.releaseLobby()
	c.releaseStream()
	c.mode = modeNone
	c.initialized = false
	Logger().Info("stereo: graphics context destroyed")
}

func (c *Compositor) releaseLobby() {
	if c.lobbySC != nil {
		c.lobbySC.release()
		c.lobbySC = nil
	}
	c.lobby = nil
}

func (c *Compositor) releaseStream() {
	if c.stream != nil {
		c.stream.release()
		c.stream = nil
	}
	if c.streamSC != nil {
		c.streamSC.release()
		c.streamSC = nil
	}
}

// checkReady validates the lifecycle window for swapchain preparation.
func (c *Compositor) checkReady(op string) error {
	if c.destroyed.Load() {
		Logger().Warn("stereo: call after DestroyGraphics", slog.String("op", op))
		return ErrDestroyed
	}
	if !c.initialized {
		Logger().Warn("stereo: call before InitGraphics", slog.String("op", op))
		return ErrNotInitialized
	}
	return nil
}

// checkMode validates that a render call matches the active mode.
func (c *Compositor) checkMode(op string, want renderMode) error {
	if err := c.checkReady(op); err != nil {
		return err
	}
	if c.mode != want {
		Logger().Warn("stereo: render call does not match active mode",
			slog.String("op", op),
			slog.String("active", c.mode.String()),
			slog.String("want", want.String()))
		return ErrWrongMode
	}
	return nil
}
