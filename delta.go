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

import "image"

// TexturesDelta lists the texture changes for one frame.
// Set is applied before Free.
type TexturesDelta struct {
	Set  []ImageDelta
	Free []TextureID
}

// IsEmpty reports whether the delta changes nothing.
func (d *TexturesDelta) IsEmpty() bool {
	return d == nil || len(d.Set) == 0 && len(d.Free) == 0
}

// ImageDelta creates, replaces or patches one managed texture.
type ImageDelta struct {
	ID TextureID

	// Pos is the top-left texel of the patch inside the existing texture.
	// If Pos is nil, Image replaces the whole texture, allocating it if
	// necessary.
	Pos *image.Point

	// Image holds the new pixels, with straight alpha.
	Image *image.NRGBA

	// Filter is the sampling filter of a newly created or replaced texture.
	// It is ignored for patches of existing textures.
	Filter Filter
}

// IsWhole reports whether the delta replaces the whole texture.
func (d *ImageDelta) IsWhole() bool {
	return d.Pos == nil
}
