// seehuhn.de/go/softrender - a software renderer for GUI meshes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package softrender

import (
	"fmt"
	"image"
)

// Buffer is a caller-owned pixel buffer with 4 bytes per pixel.
// Pixel (x, y) occupies Pix[y*Stride+4*x : y*Stride+4*x+4], with the
// channels arranged according to Order.
// The renderer only writes inside the declared Width × Height area and
// never allocates or resizes Pix.
type Buffer struct {
	Pix    []byte
	Width  int
	Height int
	Stride int // bytes per row, at least 4*Width
	Order  ChannelOrder
}

// NewBuffer allocates a zeroed buffer with Stride = 4*width.
// This is mainly useful for tests and tools; normally the presentation
// layer owns the pixel memory.
func NewBuffer(width, height int, order ChannelOrder) *Buffer {
	return &Buffer{
		Pix:    make([]byte, 4*width*height),
		Width:  width,
		Height: height,
		Stride: 4 * width,
		Order:  order,
	}
}

// Validate checks that the pixel slice can hold all declared pixels.
func (b *Buffer) Validate() error {
	if b == nil {
		return fmt.Errorf("nil buffer: %w", ErrBufferBounds)
	}
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("size %dx%d: %w", b.Width, b.Height, ErrBufferBounds)
	}
	if b.Stride < 4*b.Width {
		return fmt.Errorf("stride %d < 4*width %d: %w", b.Stride, 4*b.Width, ErrBufferBounds)
	}
	need := b.Stride*(b.Height-1) + 4*b.Width
	if len(b.Pix) < need {
		return fmt.Errorf("%d bytes for %dx%d with stride %d, need %d: %w",
			len(b.Pix), b.Width, b.Height, b.Stride, need, ErrBufferBounds)
	}
	if err := b.Order.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrBufferBounds, err)
	}
	return nil
}

// Bounds returns the rectangle of writable pixels.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// PixOffset returns the index of the first byte of pixel (x, y).
func (b *Buffer) PixOffset(x, y int) int {
	return y*b.Stride + 4*x
}

// At returns the color of pixel (x, y).
// The coordinates must be inside Bounds.
func (b *Buffer) At(x, y int) Color {
	return b.Order.Decode(b.Pix[b.PixOffset(x, y):])
}

// Set stores c at pixel (x, y).
// The coordinates must be inside Bounds.
func (b *Buffer) Set(x, y int, c Color) {
	b.Order.Encode(b.Pix[b.PixOffset(x, y):], c)
}

// Fill sets every pixel to c.
func (b *Buffer) Fill(c Color) {
	for y := range b.Height {
		row := b.Pix[y*b.Stride:]
		for x := range b.Width {
			b.Order.Encode(row[4*x:], c)
		}
	}
}

// NRGBA copies the buffer contents into a new image, interpreting the
// pixels as straight alpha colors.
func (b *Buffer) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(b.Bounds())
	for y := range b.Height {
		for x := range b.Width {
			c := b.At(x, y)
			i := img.PixOffset(x, y)
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
		}
	}
	return img
}
