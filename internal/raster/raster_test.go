// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"testing"

	"github.com/gogpu/stereo/internal/image"
)

func newTarget(t *testing.T, w, h int) *image.Buf {
	t.Helper()
	b, err := image.New(w, h)
	if err != nil {
		t.Fatalf("image.New() = %v", err)
	}
	return b
}

func TestFillTriangleCoversInterior(t *testing.T) {
	dst := newTarget(t, 16, 16)
	r := New(16, 16)
	r.Reset()

	r.FillTriangle(dst,
		Vertex{X: 1, Y: 1, Z: 0.5},
		Vertex{X: 14, Y: 1, Z: 0.5},
		Vertex{X: 1, Y: 14, Z: 0.5},
		RGBA{R: 255, A: 255})

	if red, _, _, _ := dst.GetRGBA(4, 4); red != 255 {
		t.Error("interior pixel not filled")
	}
	if red, _, _, _ := dst.GetRGBA(14, 14); red != 0 {
		t.Error("pixel outside the triangle was filled")
	}
}

func TestFillTriangleBothWindings(t *testing.T) {
	// The same triangle listed clockwise and counter-clockwise must
	// cover the same pixels.
	fill := func(v0, v1, v2 Vertex) *image.Buf {
		dst := newTarget(t, 16, 16)
		r := New(16, 16)
		r.Reset()
		r.FillTriangle(dst, v0, v1, v2, RGBA{G: 255, A: 255})
		return dst
	}

	a := Vertex{X: 2, Y: 2, Z: 0.5}
	b := Vertex{X: 13, Y: 3, Z: 0.5}
	c := Vertex{X: 6, Y: 13, Z: 0.5}

	ccw := fill(a, b, c)
	cw := fill(a, c, b)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			_, g1, _, _ := ccw.GetRGBA(x, y)
			_, g2, _, _ := cw.GetRGBA(x, y)
			if g1 != g2 {
				t.Fatalf("winding mismatch at (%d, %d): ccw %d, cw %d", x, y, g1, g2)
			}
		}
	}
}

func TestFillTriangleDepthTest(t *testing.T) {
	dst := newTarget(t, 8, 8)
	r := New(8, 8)
	r.Reset()

	full := func(z float64, c RGBA) {
		r.FillTriangle(dst,
			Vertex{X: -1, Y: -1, Z: z},
			Vertex{X: 16, Y: -1, Z: z},
			Vertex{X: -1, Y: 16, Z: z},
			c)
	}

	full(0.8, RGBA{R: 255, A: 255})
	full(0.2, RGBA{B: 255, A: 255}) // nearer, wins
	full(0.5, RGBA{G: 255, A: 255}) // behind the blue layer, dropped

	red, g, b, _ := dst.GetRGBA(3, 3)
	if red != 0 || g != 0 || b != 255 {
		t.Errorf("pixel after depth-tested fills = (%d, %d, %d), want (0, 0, 255)", red, g, b)
	}
}

func TestFillTriangleDegenerate(t *testing.T) {
	dst := newTarget(t, 8, 8)
	r := New(8, 8)
	r.Reset()

	// Collinear vertices have zero area and must not touch the target.
	r.FillTriangle(dst,
		Vertex{X: 1, Y: 1}, Vertex{X: 4, Y: 4}, Vertex{X: 7, Y: 7},
		RGBA{R: 255, A: 255})

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if red, _, _, _ := dst.GetRGBA(x, y); red != 0 {
				t.Fatalf("degenerate triangle filled pixel (%d, %d)", x, y)
			}
		}
	}
}

func TestFillTriangleClipsToTarget(t *testing.T) {
	dst := newTarget(t, 8, 8)
	r := New(8, 8)
	r.Reset()

	// A triangle far larger than the target must fill every pixel
	// without panicking.
	r.FillTriangle(dst,
		Vertex{X: -100, Y: -100, Z: 0.5},
		Vertex{X: 300, Y: -100, Z: 0.5},
		Vertex{X: -100, Y: 300, Z: 0.5},
		RGBA{R: 1, G: 2, B: 3, A: 255})

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			red, g, b, _ := dst.GetRGBA(x, y)
			if red != 1 || g != 2 || b != 3 {
				t.Fatalf("pixel (%d, %d) = (%d, %d, %d), want (1, 2, 3)", x, y, red, g, b)
			}
		}
	}
}

func TestResetClearsDepth(t *testing.T) {
	dst := newTarget(t, 8, 8)
	r := New(8, 8)
	r.Reset()

	full := func(z float64, c RGBA) {
		r.FillTriangle(dst,
			Vertex{X: -1, Y: -1, Z: z},
			Vertex{X: 16, Y: -1, Z: z},
			Vertex{X: -1, Y: 16, Z: z},
			c)
	}

	full(0.1, RGBA{R: 255, A: 255})
	r.Reset()
	// After Reset the far fill passes the depth test again.
	full(0.9, RGBA{B: 255, A: 255})

	red, _, b, _ := dst.GetRGBA(2, 2)
	if red != 0 || b != 255 {
		t.Errorf("pixel after Reset = (%d, _, %d), want blue", red, b)
	}
}
