// Package stereo is the client-side stereo compositor for a networked
// VR streaming client.
//
// The compositor presents one of two sources to a head-mounted display:
// a locally rendered 3D waiting scene (the "lobby") or a remotely
// decoded video stream. In stream mode a fixed non-uniform resolution
// pattern ("foveation") is undone on the client: the encoder compresses
// the periphery of each view, and the compositor expands it back to
// full geometry while leaving the center region untouched.
//
// The host runtime owns the application loop, tracking, networking and
// video decode. It drives the compositor through a strict lifecycle:
//
//	c := stereo.New()
//	c.InitGraphics()
//	c.PrepareLobby(1024, 1024, swapchainTextures)
//	// per display refresh:
//	c.RenderLobby(views, slots)
//	// on stream start:
//	c.SetStreamConfig(cfg)
//	c.StartStream(streamTextures)
//	c.RenderStream(frame, slots)
//	// teardown:
//	c.DestroyRenderers()
//	c.DestroyGraphics()
//
// Exactly one render call may be in flight at any instant; the render
// goroutine drives all lifecycle and per-frame calls sequentially.
// UpdateHudTexture, UpdateHudMessage and SetStreamConfig may be called
// from other goroutines at any time; they hand their value off through
// a non-blocking last-write-wins exchange and never stall the render
// path.
//
// The compositor borrows every native handle it touches. Swapchain
// textures stay owned by the host for the lifetime of their mode, and
// a decoded frame is valid only for the duration of the render call it
// is passed to; no reference is retained afterward.
package stereo
