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
	"image/color"
	"math"
)

// Color is an 8-bit per channel RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Frequently used colors.
var (
	White       = Color{255, 255, 255, 255}
	Transparent = Color{}
)

// NRGBA converts c to the corresponding image/color value.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromNRGBA converts an image/color value to a Color.
func FromNRGBA(c color.NRGBA) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// AlphaMode selects how the color channels relate to alpha.
type AlphaMode int

const (
	// AlphaStraight treats colors as non-premultiplied and composites
	// with dst' = src*a + dst*(1-a), a' = a + dst.a*(1-a).
	AlphaStraight AlphaMode = iota

	// AlphaPremultiplied treats colors as premultiplied by alpha and
	// composites with dst' = src + dst*(1-a) on all four channels.
	AlphaPremultiplied
)

func (m AlphaMode) String() string {
	switch m {
	case AlphaStraight:
		return "straight"
	case AlphaPremultiplied:
		return "premultiplied"
	default:
		return fmt.Sprintf("AlphaMode(%d)", int(m))
	}
}

// mul8 multiplies two values in [0, 255] which represent fractions in [0, 1].
// mul8(255, x) == x and mul8(0, x) == 0.
func mul8(a, b uint8) uint8 {
	return uint8((uint32(a)*uint32(b) + 127) / 255)
}

// Modulate returns the component-wise product of a and b, alpha included.
func Modulate(a, b Color) Color {
	return Color{
		R: mul8(a.R, b.R),
		G: mul8(a.G, b.G),
		B: mul8(a.B, b.B),
		A: mul8(a.A, b.A),
	}
}

// Blend composites src over dst.
//
// In both modes, a fully opaque src yields src exactly and a fully
// transparent src leaves dst unchanged (for AlphaPremultiplied this
// requires src to be a valid premultiplied color, i.e. all zero).
func (m AlphaMode) Blend(src, dst Color) Color {
	switch src.A {
	case 255:
		return src
	case 0:
		if m == AlphaStraight {
			return dst
		}
	}

	a := uint32(src.A)
	ia := 255 - a
	if m == AlphaPremultiplied {
		return Color{
			R: addSat(src.R, uint8((uint32(dst.R)*ia+127)/255)),
			G: addSat(src.G, uint8((uint32(dst.G)*ia+127)/255)),
			B: addSat(src.B, uint8((uint32(dst.B)*ia+127)/255)),
			A: addSat(src.A, uint8((uint32(dst.A)*ia+127)/255)),
		}
	}
	return Color{
		R: uint8((uint32(src.R)*a + uint32(dst.R)*ia + 127) / 255),
		G: uint8((uint32(src.G)*a + uint32(dst.G)*ia + 127) / 255),
		B: uint8((uint32(src.B)*a + uint32(dst.B)*ia + 127) / 255),
		A: uint8(a + (uint32(dst.A)*ia+127)/255),
	}
}

func addSat(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

// unorm8 converts a value in [0, 255] to a byte, rounding to nearest.
func unorm8(x float32) uint8 {
	if !(x > 0) { // also catches NaN
		return 0
	}
	if x >= 255 {
		return 255
	}
	return uint8(math.Round(float64(x)))
}
