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
	"image"
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

// checker returns a w×h image where texel (x, y) has R=x, G=y and B=x+y.
func checker(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			i := img.PixOffset(x, y)
			img.Pix[i+0] = uint8(10 * x)
			img.Pix[i+1] = uint8(10 * y)
			img.Pix[i+2] = uint8(x + y)
			img.Pix[i+3] = 255
		}
	}
	return img
}

func texelColor(x, y int) Color {
	return Color{R: uint8(10 * x), G: uint8(10 * y), B: uint8(x + y), A: 255}
}

func TestSampleCorners(t *testing.T) {
	for _, f := range []Filter{Nearest, Bilinear} {
		tex := &Texture{Image: checker(4, 3), Filter: f}
		type testCase struct {
			uv   vec.Vec2
			want Color
		}
		cases := []testCase{
			{vec.Vec2{X: 0, Y: 0}, texelColor(0, 0)},
			{vec.Vec2{X: 1, Y: 1}, texelColor(3, 2)},
			{vec.Vec2{X: 1, Y: 0}, texelColor(3, 0)},
			{vec.Vec2{X: 0, Y: 1}, texelColor(0, 2)},
			{vec.Vec2{X: -5, Y: 0.5}, texelColor(0, 1)},
			{vec.Vec2{X: 7, Y: -1}, texelColor(3, 0)},
			{vec.Vec2{X: 0.125, Y: 0.5}, texelColor(0, 1)}, // texel center
		}
		for _, c := range cases {
			if got := tex.Sample(c.uv); got != c.want {
				t.Errorf("%s: Sample(%v) = %v, expected %v", f, c.uv, got, c.want)
			}
		}
	}
}

func TestSampleNearest(t *testing.T) {
	tex := &Texture{Image: checker(4, 4)}
	for x := range 4 {
		for y := range 4 {
			// anywhere inside the texel gives the texel
			uv := vec.Vec2{X: (float64(x) + 0.9) / 4, Y: (float64(y) + 0.1) / 4}
			if got := tex.Sample(uv); got != texelColor(x, y) {
				t.Errorf("Sample(%v) = %v, expected %v", uv, got, texelColor(x, y))
			}
		}
	}
}

func TestSampleBilinear(t *testing.T) {
	tex := &Texture{Image: checker(4, 4), Filter: Bilinear}

	// half way between the centers of texels (1, 2) and (2, 2)
	got := tex.Sample(vec.Vec2{X: 2.0 / 4, Y: 2.5 / 4})
	want := Color{R: 15, G: 20, B: 4, A: 255} // B: (3+4)/2 = 3.5 rounds to 4
	if got != want {
		t.Errorf("got %v, expected %v", got, want)
	}

	// center of four texels
	got = tex.Sample(vec.Vec2{X: 1.0 / 4, Y: 1.0 / 4})
	want = Color{R: 5, G: 5, B: 1, A: 255}
	if got != want {
		t.Errorf("got %v, expected %v", got, want)
	}
}

func TestSampleNaN(t *testing.T) {
	nan := math.NaN()
	for _, f := range []Filter{Nearest, Bilinear} {
		tex := &Texture{Image: checker(2, 2), Filter: f}
		if got := tex.Sample(vec.Vec2{X: nan, Y: nan}); got != texelColor(0, 0) {
			t.Errorf("%s: Sample(NaN) = %v", f, got)
		}
	}
}

func TestSampleOffsetImage(t *testing.T) {
	// sub-images have a non-zero origin
	img := checker(8, 8).SubImage(image.Rect(4, 4, 8, 8)).(*image.NRGBA)
	tex := &Texture{Image: img}
	if got := tex.Sample(vec.Vec2{}); got != texelColor(4, 4) {
		t.Errorf("got %v, expected %v", got, texelColor(4, 4))
	}
	if got := tex.Sample(vec.Vec2{X: 1, Y: 1}); got != texelColor(7, 7) {
		t.Errorf("got %v, expected %v", got, texelColor(7, 7))
	}
}

func TestTextureIDString(t *testing.T) {
	type testCase struct {
		id   TextureID
		want string
	}
	cases := []testCase{
		{TextureID{}, "none"},
		{Managed(0), "managed:0"},
		{User(17), "user:17"},
	}
	for _, c := range cases {
		if got := c.id.String(); got != c.want {
			t.Errorf("String() = %q, expected %q", got, c.want)
		}
	}
	if !(TextureID{}).IsNone() || Managed(0).IsNone() {
		t.Error("IsNone is wrong")
	}
}
