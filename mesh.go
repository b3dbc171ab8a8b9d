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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Vertex is one corner of a mesh triangle.
type Vertex struct {
	Pos   vec.Vec2 // position in logical points
	UV    vec.Vec2 // normalized texture coordinates
	Color Color    // multiplied with the texture color
}

// Mesh is a list of triangles sharing one texture.
// Each consecutive triple of Indices forms a triangle; the winding order
// does not matter.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Texture  TextureID
}

// Validate checks that the indices describe triangles over the vertices.
// The returned error, if any, is a *MeshError.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return &MeshError{
			Primitive: -1,
			Reason:    fmt.Sprintf("%d indices is not a multiple of 3", len(m.Indices)),
		}
	}
	n := uint64(len(m.Vertices))
	for i, idx := range m.Indices {
		if uint64(idx) >= n {
			return &MeshError{
				Primitive: -1,
				Reason:    fmt.Sprintf("index %d at position %d out of range for %d vertices", idx, i, n),
			}
		}
	}
	return nil
}

// IsEmpty reports whether the mesh draws nothing.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0 || len(m.Indices) == 0
}

// AddTriangle appends three indices.
func (m *Mesh) AddTriangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

// AddRect appends an axis-aligned rectangle as two triangles, with the
// full texture mapped onto it.
func (m *Mesh) AddRect(r rect.Rect, uv rect.Rect, col Color) {
	base := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices,
		Vertex{Pos: vec.Vec2{X: r.LLx, Y: r.LLy}, UV: vec.Vec2{X: uv.LLx, Y: uv.LLy}, Color: col},
		Vertex{Pos: vec.Vec2{X: r.URx, Y: r.LLy}, UV: vec.Vec2{X: uv.URx, Y: uv.LLy}, Color: col},
		Vertex{Pos: vec.Vec2{X: r.URx, Y: r.URy}, UV: vec.Vec2{X: uv.URx, Y: uv.URy}, Color: col},
		Vertex{Pos: vec.Vec2{X: r.LLx, Y: r.URy}, UV: vec.Vec2{X: uv.LLx, Y: uv.URy}, Color: col},
	)
	m.AddTriangle(base, base+1, base+2)
	m.AddTriangle(base, base+2, base+3)
}

// Primitive is the content of a [ClippedPrimitive]: either a *Mesh or a
// [Callback].
type Primitive interface {
	isPrimitive()
}

func (*Mesh) isPrimitive() {}

// Callback stands for application-defined painting which a software
// renderer cannot perform. The renderer skips callbacks.
type Callback struct {
	Name string
}

func (Callback) isPrimitive() {}

// ClippedPrimitive is a primitive together with its clip rectangle.
// Rect coordinates are in logical points, with y growing downwards:
// (LLx, LLy) is the top-left corner, (URx, URy) the bottom-right corner.
// The rectangle may be empty or extend outside the buffer.
type ClippedPrimitive struct {
	Clip      rect.Rect
	Primitive Primitive
}
