// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package image

import "math"

// Sample samples the buffer at normalized coordinates (u, v).
// (0,0) is top-left, (1,1) is bottom-right. Out-of-bounds coordinates
// are clamped to the edge.
func Sample(b *Buf, u, v float64, bilinear bool) (r, g, bl, a byte) {
	if bilinear {
		return SampleBilinear(b, u, v)
	}
	return SampleNearest(b, u, v)
}

// SampleNearest performs nearest-neighbor sampling at normalized
// coordinates (u, v).
func SampleNearest(b *Buf, u, v float64) (r, g, bl, a byte) {
	x := int(math.Floor(u * float64(b.width)))
	y := int(math.Floor(v * float64(b.height)))
	x = clamp(x, 0, b.width-1)
	y = clamp(y, 0, b.height-1)
	return b.GetRGBA(x, y)
}

// SampleBilinear interpolates between the 4 pixels neighboring the
// continuous coordinate (u, v) using linear weights.
func SampleBilinear(b *Buf, u, v float64) (r, g, bl, a byte) {
	fx := u*float64(b.width) - 0.5
	fy := v*float64(b.height) - 0.5

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	x0 = clamp(x0, 0, b.width-1)
	y0 = clamp(y0, 0, b.height-1)
	x1 := clamp(x0+1, 0, b.width-1)
	y1 := clamp(y0+1, 0, b.height-1)

	r00, g00, b00, a00 := b.GetRGBA(x0, y0)
	r10, g10, b10, a10 := b.GetRGBA(x1, y0)
	r01, g01, b01, a01 := b.GetRGBA(x0, y1)
	r11, g11, b11, a11 := b.GetRGBA(x1, y1)

	lerp2 := func(c00, c10, c01, c11 byte) byte {
		top := float64(c00) + (float64(c10)-float64(c00))*tx
		bot := float64(c01) + (float64(c11)-float64(c01))*tx
		return byte(top + (bot-top)*ty + 0.5)
	}

	return lerp2(r00, r10, r01, r11),
		lerp2(g00, g10, g01, g11),
		lerp2(b00, b10, b01, b11),
		lerp2(a00, a10, a01, a11)
}
