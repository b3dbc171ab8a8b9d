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

// Package testcases defines triangle scenes for testing the renderer.
//
// Every scene consists of solid triangles whose union is drawn in opaque
// white on a transparent canvas, so that the rendered alpha channel can be
// compared with coverage masks produced by other rasterizers.
package testcases

import (
	"image"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name   string     // lowercase a-z, 0-9 and _ only
	Width  int        // canvas width in physical pixels
	Height int        // canvas height in physical pixels
	Scale  float64    // physical pixels per logical point (zero means 1)
	Clip   rect.Rect  // clip rectangle in logical points (zero value means no clipping)
	Tris   []Triangle // the geometry, in logical points
}

// Triangle is a triangle given by its corners. The winding may be either
// clockwise or counter-clockwise.
type Triangle [3]vec.Vec2

// PixelsPerPoint returns the scale factor, replacing zero by 1.
func (tc TestCase) PixelsPerPoint() float64 {
	if tc.Scale == 0 {
		return 1
	}
	return tc.Scale
}

// ClipRect returns the clip rectangle in logical points.
func (tc TestCase) ClipRect() rect.Rect {
	if tc.Clip == (rect.Rect{}) {
		s := tc.PixelsPerPoint()
		return rect.Rect{URx: float64(tc.Width) / s, URy: float64(tc.Height) / s}
	}
	return tc.Clip
}

// PixelClip returns the clip rectangle in physical pixels. Edges are rounded
// to the nearest pixel boundary and the result is limited to the canvas.
func (tc TestCase) PixelClip() image.Rectangle {
	c := tc.ClipRect()
	s := tc.PixelsPerPoint()
	round := func(x float64) int { return int(math.Floor(x*s + 0.5)) }
	r := image.Rect(round(c.LLx), round(c.LLy), round(c.URx), round(c.URy))
	if c.URx*s < c.LLx*s || c.URy*s < c.LLy*s {
		return image.Rectangle{}
	}
	return r.Intersect(image.Rect(0, 0, tc.Width, tc.Height))
}

// Outline returns the triangles as closed subpaths, in logical points.
func (tc TestCase) Outline() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [1]vec.Vec2
		for _, t := range tc.Tris {
			buf[0] = t[0]
			if !yield(path.CmdMoveTo, buf[:]) {
				return
			}
			for _, p := range t[1:] {
				buf[0] = p
				if !yield(path.CmdLineTo, buf[:]) {
					return
				}
			}
			if !yield(path.CmdClose, nil) {
				return
			}
		}
	}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
