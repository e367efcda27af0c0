package stereo

import "log/slog"

// axisWarp is the piecewise-linear resolution mapping along one axis.
//
// Full-geometry coordinates in [0, 1] split into three bands: a low
// edge, a full-resolution center spanning [lo, hi], and a high edge.
// The edges are compressed by 1/ratio in encoded space; the center
// passes through unchanged. Encoded coordinates are renormalized to
// [0, 1].
type axisWarp struct {
	lo, hi float64 // center band bounds in full geometry
	ratio  float64
	e0     float64 // encoded width of the low edge band
	center float64 // width of the center band (same in both spaces)
	total  float64 // encoded extent before renormalization
}

func newAxisWarp(size, shift, ratio float64) axisWarp {
	margin := 1 - size
	lo := margin/2 + shift*margin/2
	hi := lo + size

	w := axisWarp{
		lo:     lo,
		hi:     hi,
		ratio:  ratio,
		e0:     lo / ratio,
		center: size,
	}
	w.total = w.e0 + w.center + (1-hi)/ratio
	return w
}

func identityWarp() axisWarp {
	return axisWarp{lo: 0, hi: 1, ratio: 1, e0: 0, center: 1, total: 1}
}

// compress maps a full-geometry coordinate to encoded space.
func (w axisWarp) compress(u float64) float64 {
	u = clamp01(u)
	var t float64
	switch {
	case u < w.lo:
		t = u / w.ratio
	case u <= w.hi:
		t = w.e0 + (u - w.lo)
	default:
		t = w.e0 + w.center + (u-w.hi)/w.ratio
	}
	return t / w.total
}

// expand maps an encoded coordinate back to full geometry. It is the
// exact inverse of compress.
func (w axisWarp) expand(u float64) float64 {
	t := clamp01(u) * w.total
	switch {
	case t < w.e0:
		return t * w.ratio
	case t <= w.e0+w.center:
		return w.lo + (t - w.e0)
	default:
		return w.hi + (t-w.e0-w.center)*w.ratio
	}
}

// FoveationPattern is the active rendering-resolution pattern derived
// from a StreamConfig. A pattern value is immutable; configuration
// changes produce a new pattern that takes effect at the next frame
// boundary, never mid-frame.
type FoveationPattern struct {
	enabled bool
	x, y    axisWarp
}

// NewFoveationPattern derives the pattern from a complete StreamConfig.
// When foveation is disabled the pattern is the identity. Out-of-range
// parameters (center size outside (0, 1], edge ratio below 1) are a
// validation error: the call logs a warning and yields the identity
// pattern rather than a broken mapping.
func NewFoveationPattern(cfg StreamConfig) *FoveationPattern {
	if !cfg.EnableFoveation {
		return &FoveationPattern{enabled: false, x: identityWarp(), y: identityWarp()}
	}

	if cfg.CenterSizeX <= 0 || cfg.CenterSizeX > 1 ||
		cfg.CenterSizeY <= 0 || cfg.CenterSizeY > 1 ||
		cfg.EdgeRatioX < 1 || cfg.EdgeRatioY < 1 {
		Logger().Warn("stereo: invalid foveation parameters, using identity pattern",
			slog.Float64("centerSizeX", float64(cfg.CenterSizeX)),
			slog.Float64("centerSizeY", float64(cfg.CenterSizeY)),
			slog.Float64("edgeRatioX", float64(cfg.EdgeRatioX)),
			slog.Float64("edgeRatioY", float64(cfg.EdgeRatioY)))
		return &FoveationPattern{enabled: false, x: identityWarp(), y: identityWarp()}
	}

	shiftX := clampF(float64(cfg.CenterShiftX), -1, 1)
	shiftY := clampF(float64(cfg.CenterShiftY), -1, 1)

	return &FoveationPattern{
		enabled: true,
		x:       newAxisWarp(float64(cfg.CenterSizeX), shiftX, float64(cfg.EdgeRatioX)),
		y:       newAxisWarp(float64(cfg.CenterSizeY), shiftY, float64(cfg.EdgeRatioY)),
	}
}

// Enabled reports whether the pattern performs any resampling.
func (p *FoveationPattern) Enabled() bool { return p.enabled }

// Compress maps normalized full-geometry coordinates to encoded
// (compressed-frame) coordinates.
func (p *FoveationPattern) Compress(u, v float64) (float64, float64) {
	if !p.enabled {
		return clamp01(u), clamp01(v)
	}
	return p.x.compress(u), p.y.compress(v)
}

// Expand maps normalized encoded coordinates back to full geometry.
// Expand is the inverse of Compress.
func (p *FoveationPattern) Expand(u, v float64) (float64, float64) {
	if !p.enabled {
		return clamp01(u), clamp01(v)
	}
	return p.x.expand(u), p.y.expand(v)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
