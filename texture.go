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
	"math"

	"seehuhn.de/go/geom/vec"
)

// TextureKind distinguishes the namespaces of texture ids.
type TextureKind uint8

const (
	// TextureNone marks a mesh without a texture. Such meshes sample
	// opaque white, so that the vertex colors alone determine the fill.
	TextureNone TextureKind = iota

	// TextureManaged ids are created and freed by texture deltas.
	TextureManaged

	// TextureUser ids refer to images registered by the application with
	// [Atlas.SetUserTexture].
	TextureUser
)

// TextureID identifies a texture in an [Atlas].
// The zero value is the "no texture" id.
type TextureID struct {
	Kind  TextureKind
	Value uint64
}

// Managed returns the id of a managed texture.
func Managed(n uint64) TextureID {
	return TextureID{Kind: TextureManaged, Value: n}
}

// User returns the id of a user texture.
func User(n uint64) TextureID {
	return TextureID{Kind: TextureUser, Value: n}
}

// IsNone reports whether id refers to no texture.
func (id TextureID) IsNone() bool {
	return id.Kind == TextureNone
}

func (id TextureID) String() string {
	switch id.Kind {
	case TextureNone:
		return "none"
	case TextureManaged:
		return fmt.Sprintf("managed:%d", id.Value)
	case TextureUser:
		return fmt.Sprintf("user:%d", id.Value)
	default:
		return fmt.Sprintf("kind%d:%d", id.Kind, id.Value)
	}
}

// Filter selects how a texture is sampled between texel centers.
type Filter uint8

const (
	// Nearest returns the texel which contains the sample point.
	Nearest Filter = iota

	// Bilinear interpolates between the four texels closest to the
	// sample point.
	Bilinear
)

func (f Filter) String() string {
	switch f {
	case Nearest:
		return "nearest"
	case Bilinear:
		return "bilinear"
	default:
		return fmt.Sprintf("Filter(%d)", int(f))
	}
}

// Texture is one image of an atlas.
// Pixels use straight alpha, 8 bits per channel.
type Texture struct {
	Image  *image.NRGBA
	Filter Filter

	// external is set for user textures, whose pixels are owned by the
	// application.
	external bool
}

// Size returns the texture dimensions in texels.
func (t *Texture) Size() (width, height int) {
	b := t.Image.Rect
	return b.Dx(), b.Dy()
}

// texel returns the texel at (x, y), relative to the image origin.
// The coordinates must be in range.
func (t *Texture) texel(x, y int) Color {
	img := t.Image
	i := y*img.Stride + 4*x
	p := img.Pix[i : i+4 : i+4]
	return Color{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Sample returns the texture color at normalized coordinates uv.
// (0, 0) is the top-left corner of the top-left texel and (1, 1) is the
// bottom-right corner of the bottom-right texel. Coordinates outside
// [0, 1] are clamped to the edge texels.
func (t *Texture) Sample(uv vec.Vec2) Color {
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return White
	}
	if t.Filter == Bilinear {
		return t.sampleBilinear(uv, w, h)
	}
	x := clampInt(floorInt(uv.X*float64(w)), 0, w-1)
	y := clampInt(floorInt(uv.Y*float64(h)), 0, h-1)
	return t.texel(x, y)
}

func (t *Texture) sampleBilinear(uv vec.Vec2, w, h int) Color {
	// move to texel-center coordinates
	fx := uv.X*float64(w) - 0.5
	fy := uv.Y*float64(h) - 0.5
	if math.IsNaN(fx) || math.IsNaN(fy) {
		return t.texel(0, 0)
	}
	fx = min(max(fx, 0), float64(w-1))
	fy = min(max(fy, 0), float64(h-1))

	x0 := int(fx)
	y0 := int(fy)
	x1 := min(x0+1, w-1)
	y1 := min(y0+1, h-1)
	tx := float32(fx - float64(x0))
	ty := float32(fy - float64(y0))

	c00 := t.texel(x0, y0)
	c10 := t.texel(x1, y0)
	c01 := t.texel(x0, y1)
	c11 := t.texel(x1, y1)

	lerp := func(a, b, c, d uint8) uint8 {
		top := float32(a) + (float32(b)-float32(a))*tx
		bot := float32(c) + (float32(d)-float32(c))*tx
		return unorm8(top + (bot-top)*ty)
	}
	return Color{
		R: lerp(c00.R, c10.R, c01.R, c11.R),
		G: lerp(c00.G, c10.G, c01.G, c11.G),
		B: lerp(c00.B, c10.B, c01.B, c11.B),
		A: lerp(c00.A, c10.A, c01.A, c11.A),
	}
}

// floorInt returns floor(x) as an int, mapping NaN to 0 and saturating
// infinite values.
func floorInt(x float64) int {
	switch {
	case math.IsNaN(x):
		return 0
	case x >= math.MaxInt32:
		return math.MaxInt32
	case x <= math.MinInt32:
		return math.MinInt32
	}
	return int(math.Floor(x))
}

func clampInt(x, lo, hi int) int {
	return min(max(x, lo), hi)
}
