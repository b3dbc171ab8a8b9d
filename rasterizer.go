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

	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Rasterizer draws triangle meshes into a [Buffer].
// The caller creates one instance and reuses it for many meshes.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// Clip restricts output to this rectangle, in physical pixels.
	// It is intersected with the buffer bounds before use.
	Clip image.Rectangle

	// Transform maps logical points to physical pixels.
	// The renderer uses a uniform scale by the pixels-per-point factor.
	Transform matrix.Matrix

	// Alpha selects the compositing formula.
	Alpha AlphaMode

	stats Stats
}

// Stats counts the work done while rendering.
// When a frame is drawn in several bands, a triangle is counted in
// Triangles or Culled once for every band.
type Stats struct {
	Meshes          int // meshes drawn
	RejectedMeshes  int // meshes skipped because they were malformed
	Callbacks       int // callback primitives skipped
	MissingTextures int // meshes which referenced an unknown texture
	Triangles       int // triangles which were scanned
	Culled          int // triangles with zero area or outside the clip region
	Pixels          int // pixels written

	// Damage is the bounding box of all written pixels.
	Damage image.Rectangle
}

// add merges the counts of o into s.
func (s *Stats) add(o Stats) {
	s.Meshes += o.Meshes
	s.RejectedMeshes += o.RejectedMeshes
	s.Callbacks += o.Callbacks
	s.MissingTextures += o.MissingTextures
	s.Triangles += o.Triangles
	s.Culled += o.Culled
	s.Pixels += o.Pixels
	s.Damage = s.Damage.Union(o.Damage)
}

// NewRasterizer returns a Rasterizer with the given clip rectangle, the
// identity transform and straight alpha compositing.
func NewRasterizer(clip image.Rectangle) *Rasterizer {
	return &Rasterizer{
		Clip:      clip,
		Transform: matrix.Identity,
	}
}

// Reset sets a new clip rectangle and clears the statistics.
// The transform and alpha mode are kept.
func (r *Rasterizer) Reset(clip image.Rectangle) {
	r.Clip = clip
	r.stats = Stats{}
}

// Stats returns the statistics accumulated since the last Reset.
func (r *Rasterizer) Stats() Stats {
	return r.stats
}

// DrawMesh rasterizes all triangles of m into buf.
//
// Each triangle is sampled at pixel centers. A pixel center on an edge
// shared by two triangles belongs to exactly one of them (top-left rule),
// so meshes which tile a region cover each pixel exactly once. The color
// of a pixel is the texture color at the interpolated texture coordinate,
// multiplied by the interpolated vertex color, composited over the
// existing pixel. If tex is nil, the texture color is opaque white.
//
// DrawMesh returns a *MeshError if m is malformed; nothing is drawn in
// this case. It returns an error wrapping ErrBufferBounds if buf is invalid.
func (r *Rasterizer) DrawMesh(buf *Buffer, m *Mesh, tex *Texture) error {
	if err := buf.Validate(); err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return err
	}
	r.drawMesh(buf, m, tex)
	r.stats.Meshes++
	return nil
}

// drawMesh is DrawMesh for a valid buffer and a valid mesh.
func (r *Rasterizer) drawMesh(buf *Buffer, m *Mesh, tex *Texture) {
	clip := r.Clip.Intersect(buf.Bounds())
	if clip.Empty() || m.IsEmpty() {
		return
	}

	var tri triangle
	for i := 0; i+2 < len(m.Indices); i += 3 {
		v0 := &m.Vertices[m.Indices[i]]
		v1 := &m.Vertices[m.Indices[i+1]]
		v2 := &m.Vertices[m.Indices[i+2]]
		if !tri.setup(r.Transform, v0, v1, v2) {
			r.stats.Culled++
			continue
		}
		r.drawTriangle(buf, clip, &tri, tex)
	}
}

// fixedPoint is a point in physical pixel space, in 26.6 fixed point.
type fixedPoint struct {
	X, Y fixed.Int26_6
}

// triangle holds one triangle prepared for scanning.
// The vertices are ordered so that area is positive.
type triangle struct {
	p    [3]fixedPoint
	uv   [3]vec.Vec2
	col  [3]Color
	area int64 // twice the signed area, in 1/4096 pixel² units
}

// maxCoord bounds device coordinates so that edge function values fit
// into an int64 without overflow.
const maxCoord = 1 << 22

// toFixed converts a device coordinate to 26.6 fixed point, rounding to
// the nearest representable value.
func toFixed(x float64) fixed.Int26_6 {
	x = min(max(x, -maxCoord), maxCoord)
	return fixed.Int26_6(math.Round(x * 64))
}

// setup transforms the vertices to device space and normalises the
// winding. It returns false for degenerate triangles.
func (t *triangle) setup(m matrix.Matrix, v0, v1, v2 *Vertex) bool {
	vs := [3]*Vertex{v0, v1, v2}
	for i, v := range vs {
		x := m[0]*v.Pos.X + m[2]*v.Pos.Y + m[4]
		y := m[1]*v.Pos.X + m[3]*v.Pos.Y + m[5]
		if math.IsNaN(x) || math.IsNaN(y) {
			return false
		}
		t.p[i] = fixedPoint{toFixed(x), toFixed(y)}
		t.uv[i] = v.UV
		t.col[i] = v.Color
	}

	t.area = edgeFunction(t.p[0], t.p[1], t.p[2])
	if t.area < 0 {
		t.p[1], t.p[2] = t.p[2], t.p[1]
		t.uv[1], t.uv[2] = t.uv[2], t.uv[1]
		t.col[1], t.col[2] = t.col[2], t.col[1]
		t.area = -t.area
	}
	return t.area != 0
}

// edgeFunction returns twice the signed area of the triangle a, b, p.
// With y growing downwards, the value is positive if p lies to the right
// of the directed edge a→b.
func edgeFunction(a, b, p fixedPoint) int64 {
	return int64(b.X-a.X)*int64(p.Y-a.Y) - int64(b.Y-a.Y)*int64(p.X-a.X)
}

// isTopLeft reports whether a→b is a top or a left edge of a triangle
// with positive area. Pixel centers exactly on such an edge are inside.
func isTopLeft(a, b fixedPoint) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dy < 0 || (dy == 0 && dx > 0)
}

// bounds returns the pixels whose centers may lie inside the triangle.
func (t *triangle) bounds() image.Rectangle {
	xMin := min(t.p[0].X, t.p[1].X, t.p[2].X)
	xMax := max(t.p[0].X, t.p[1].X, t.p[2].X)
	yMin := min(t.p[0].Y, t.p[1].Y, t.p[2].Y)
	yMax := max(t.p[0].Y, t.p[1].Y, t.p[2].Y)
	return image.Rectangle{
		Min: image.Point{X: xMin.Floor(), Y: yMin.Floor()},
		Max: image.Point{X: xMax.Ceil(), Y: yMax.Ceil()},
	}
}

// scanTriangle calls emit for every pixel in clip whose center is inside
// the triangle, in row-major order. The weights w0, w1, w2 are the edge
// function values opposite to the respective vertices; they are
// non-negative and sum to t.area.
func scanTriangle(t *triangle, clip image.Rectangle, emit func(x, y int, w0, w1, w2 int64)) {
	box := t.bounds().Intersect(clip)
	if box.Empty() {
		return
	}

	p0, p1, p2 := t.p[0], t.p[1], t.p[2]

	// pixels on an edge which is not top-left are outside
	var bias0, bias1, bias2 int64
	if !isTopLeft(p1, p2) {
		bias0 = -1
	}
	if !isTopLeft(p2, p0) {
		bias1 = -1
	}
	if !isTopLeft(p0, p1) {
		bias2 = -1
	}

	// edge function increments per pixel step
	const one = 64
	dx0, dy0 := -int64(p2.Y-p1.Y)*one, int64(p2.X-p1.X)*one
	dx1, dy1 := -int64(p0.Y-p2.Y)*one, int64(p0.X-p2.X)*one
	dx2, dy2 := -int64(p1.Y-p0.Y)*one, int64(p1.X-p0.X)*one

	start := fixedPoint{
		X: fixed.Int26_6(box.Min.X*one + one/2),
		Y: fixed.Int26_6(box.Min.Y*one + one/2),
	}
	row0 := edgeFunction(p1, p2, start)
	row1 := edgeFunction(p2, p0, start)
	row2 := edgeFunction(p0, p1, start)

	for y := box.Min.Y; y < box.Max.Y; y++ {
		w0, w1, w2 := row0, row1, row2
		for x := box.Min.X; x < box.Max.X; x++ {
			if w0+bias0 >= 0 && w1+bias1 >= 0 && w2+bias2 >= 0 {
				emit(x, y, w0, w1, w2)
			}
			w0 += dx0
			w1 += dx1
			w2 += dx2
		}
		row0 += dy0
		row1 += dy1
		row2 += dy2
	}
}

// drawTriangle scans one prepared triangle and composites its pixels.
func (r *Rasterizer) drawTriangle(buf *Buffer, clip image.Rectangle, t *triangle, tex *Texture) {
	if t.bounds().Intersect(clip).Empty() {
		r.stats.Culled++
		return
	}
	r.stats.Triangles++

	colVary := t.col[0] != t.col[1] || t.col[0] != t.col[2]
	uvVary := tex != nil && (t.uv[0] != t.uv[1] || t.uv[0] != t.uv[2])

	// The source color is constant if neither input varies.
	texColor := White
	if tex != nil && !uvVary {
		texColor = tex.Sample(t.uv[0])
	}
	constSrc := Modulate(texColor, t.col[0])

	inv := 1 / float64(t.area)
	alpha := r.Alpha
	order := buf.Order
	pix := buf.Pix
	stride := buf.Stride
	damage := r.stats.Damage
	count := 0

	scanTriangle(t, clip, func(x, y int, w0, w1, w2 int64) {
		src := constSrc
		if colVary || uvVary {
			l0 := float64(w0) * inv
			l1 := float64(w1) * inv
			l2 := float64(w2) * inv
			if uvVary {
				uv := vec.Vec2{
					X: l0*t.uv[0].X + l1*t.uv[1].X + l2*t.uv[2].X,
					Y: l0*t.uv[0].Y + l1*t.uv[1].Y + l2*t.uv[2].Y,
				}
				texColor = tex.Sample(uv)
			}
			vertColor := t.col[0]
			if colVary {
				vertColor = interpolateColor(&t.col, float32(l0), float32(l1), float32(l2))
			}
			src = Modulate(texColor, vertColor)
		}

		i := y*stride + 4*x
		px := pix[i : i+4 : i+4]
		order.Encode(px, alpha.Blend(src, order.Decode(px)))

		count++
		if damage.Empty() {
			damage = image.Rect(x, y, x+1, y+1)
		} else {
			damage.Min.X = min(damage.Min.X, x)
			damage.Min.Y = min(damage.Min.Y, y)
			damage.Max.X = max(damage.Max.X, x+1)
			damage.Max.Y = max(damage.Max.Y, y+1)
		}
	})

	r.stats.Pixels += count
	r.stats.Damage = damage
}

// interpolateColor returns l0*c[0] + l1*c[1] + l2*c[2], per channel,
// rounded to the nearest integer.
func interpolateColor(c *[3]Color, l0, l1, l2 float32) Color {
	return Color{
		R: unorm8(l0*float32(c[0].R) + l1*float32(c[1].R) + l2*float32(c[2].R)),
		G: unorm8(l0*float32(c[0].G) + l1*float32(c[1].G) + l2*float32(c[2].G)),
		B: unorm8(l0*float32(c[0].B) + l1*float32(c[1].B) + l2*float32(c[2].B)),
		A: unorm8(l0*float32(c[0].A) + l1*float32(c[1].A) + l2*float32(c[2].A)),
	}
}
