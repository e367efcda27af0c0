// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster provides depth-buffered triangle rasterization for the
// lobby scene.
package raster

import (
	"math"

	"github.com/gogpu/stereo/internal/image"
)

// Vertex is a screen-space vertex: pixel coordinates plus a depth value
// in [0, 1] after the viewport transform.
type Vertex struct {
	X, Y, Z float64
}

// RGBA is a flat fill color with 8-bit channels.
type RGBA struct {
	R, G, B, A byte
}

// Rasterizer fills triangles into a pixel buffer with depth testing.
// It is sized once per render target and reused across frames.
type Rasterizer struct {
	width  int
	height int
	depth  []float64
}

// New creates a rasterizer for the given target dimensions.
func New(width, height int) *Rasterizer {
	return &Rasterizer{
		width:  width,
		height: height,
		depth:  make([]float64, width*height),
	}
}

// Reset clears the depth buffer for a new frame.
func (r *Rasterizer) Reset() {
	for i := range r.depth {
		r.depth[i] = math.Inf(1)
	}
}

// edgeFn computes twice the signed area of triangle (a, b, p).
// Positive means p lies to the left of edge a->b.
func edgeFn(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// FillTriangle rasterizes one flat-shaded triangle with depth testing.
// Both windings are accepted; degenerate triangles are dropped.
func (r *Rasterizer) FillTriangle(dst *image.Buf, v0, v1, v2 Vertex, c RGBA) {
	area := edgeFn(v0.X, v0.Y, v1.X, v1.Y, v2.X, v2.Y)
	if area < 0 {
		v1, v2 = v2, v1
		area = -area
	}
	if area == 0 {
		return
	}

	minX := int(math.Floor(min3(v0.X, v1.X, v2.X)))
	maxX := int(math.Ceil(max3(v0.X, v1.X, v2.X)))
	minY := int(math.Floor(min3(v0.Y, v1.Y, v2.Y)))
	maxY := int(math.Ceil(max3(v0.Y, v1.Y, v2.Y)))

	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > r.width-1 {
		maxX = r.width - 1
	}
	if maxY > r.height-1 {
		maxY = r.height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	invArea := 1.0 / area
	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5

			w0 := edgeFn(v1.X, v1.Y, v2.X, v2.Y, px, py)
			w1 := edgeFn(v2.X, v2.Y, v0.X, v0.Y, px, py)
			w2 := edgeFn(v0.X, v0.Y, v1.X, v1.Y, px, py)
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := (w0*v0.Z + w1*v1.Z + w2*v2.Z) * invArea
			di := y*r.width + x
			if z >= r.depth[di] {
				continue
			}
			r.depth[di] = z
			dst.SetRGBA(x, y, c.R, c.G, c.B, c.A)
		}
	}
}

func min3(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }
func max3(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }
