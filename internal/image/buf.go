// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package image provides the RGBA pixel buffers the compositor renders
// into and samples from.
package image

import "errors"

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("image: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")
)

// BytesPerPixel is the size of one RGBA8 pixel.
const BytesPerPixel = 4

// Buf is a tightly packed or strided RGBA8 pixel buffer.
//
// Buf is safe for concurrent read access. Write operations require
// external synchronization.
type Buf struct {
	data   []byte
	width  int
	height int
	stride int
}

// New creates a zeroed pixel buffer with the given dimensions.
func New(width, height int) (*Buf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	stride := width * BytesPerPixel
	return &Buf{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
	}, nil
}

// Borrow wraps existing pixel data without copying. The caller must
// ensure data stays valid for as long as the Buf is used; nothing in
// this package retains the Buf beyond the operation it is passed to.
func Borrow(data []byte, width, height, stride int) (*Buf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if stride < width*BytesPerPixel {
		return nil, ErrInvalidStride
	}
	if len(data) < stride*(height-1)+width*BytesPerPixel {
		return nil, ErrDataTooSmall
	}
	return &Buf{data: data, width: width, height: height, stride: stride}, nil
}

// Width returns the buffer width in pixels.
func (b *Buf) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buf) Height() int { return b.height }

// Stride returns the number of bytes per row.
func (b *Buf) Stride() int { return b.stride }

// Pix returns the raw pixel data.
func (b *Buf) Pix() []byte { return b.data }

// GetRGBA returns the pixel at (x, y). Out-of-bounds reads return zero.
func (b *Buf) GetRGBA(x, y int) (r, g, bl, a byte) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0, 0, 0, 0
	}
	i := y*b.stride + x*BytesPerPixel
	return b.data[i], b.data[i+1], b.data[i+2], b.data[i+3]
}

// SetRGBA sets the pixel at (x, y). Out-of-bounds writes are dropped.
func (b *Buf) SetRGBA(x, y int, r, g, bl, a byte) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := y*b.stride + x*BytesPerPixel
	b.data[i] = r
	b.data[i+1] = g
	b.data[i+2] = bl
	b.data[i+3] = a
}

// BlendRGBA source-over blends a pixel onto (x, y) using the source
// alpha. Out-of-bounds writes are dropped.
func (b *Buf) BlendRGBA(x, y int, r, g, bl, a byte) {
	if a == 0xFF {
		b.SetRGBA(x, y, r, g, bl, a)
		return
	}
	if a == 0 || x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := y*b.stride + x*BytesPerPixel
	inv := uint32(255 - a)
	b.data[i] = byte((uint32(r)*uint32(a) + uint32(b.data[i])*inv) / 255)
	b.data[i+1] = byte((uint32(g)*uint32(a) + uint32(b.data[i+1])*inv) / 255)
	b.data[i+2] = byte((uint32(bl)*uint32(a) + uint32(b.data[i+2])*inv) / 255)
	b.data[i+3] = byte(uint32(a) + uint32(b.data[i+3])*inv/255)
}

// Clear fills the whole buffer with one color.
func (b *Buf) Clear(r, g, bl, a byte) {
	row := b.data[:b.width*BytesPerPixel]
	for x := 0; x < b.width; x++ {
		i := x * BytesPerPixel
		row[i] = r
		row[i+1] = g
		row[i+2] = bl
		row[i+3] = a
	}
	for y := 1; y < b.height; y++ {
		copy(b.data[y*b.stride:y*b.stride+b.width*BytesPerPixel], row)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
