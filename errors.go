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
	"errors"
	"fmt"
)

// Errors reported by the renderer.
var (
	// ErrBufferBounds indicates that a Buffer cannot hold the pixels its
	// dimensions declare.
	ErrBufferBounds = errors.New("buffer too small for declared size")

	// ErrInvalidScale indicates a non-positive or non-finite scale factor.
	ErrInvalidScale = errors.New("invalid pixels-per-point scale")

	// ErrMalformedMesh indicates a mesh whose indices do not describe
	// triangles over its vertices.
	ErrMalformedMesh = errors.New("malformed mesh")

	// ErrUnknownTexture indicates a texture id which is not in the atlas.
	ErrUnknownTexture = errors.New("unknown texture")

	// ErrPatchBounds indicates a partial texture update which does not fit
	// inside the existing texture.
	ErrPatchBounds = errors.New("texture patch outside texture bounds")

	// ErrInvalidDelta indicates a texture update which cannot be applied
	// for another reason, for example a missing image.
	ErrInvalidDelta = errors.New("invalid texture delta")
)

// MeshError describes a mesh which was rejected by Render.
// It unwraps to ErrMalformedMesh.
type MeshError struct {
	Primitive int // index in the primitive list, or -1 if unknown
	Reason    string
}

func (e *MeshError) Error() string {
	if e.Primitive < 0 {
		return fmt.Sprintf("%s: %s", ErrMalformedMesh, e.Reason)
	}
	return fmt.Sprintf("primitive %d: %s: %s", e.Primitive, ErrMalformedMesh, e.Reason)
}

func (e *MeshError) Unwrap() error {
	return ErrMalformedMesh
}
