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

// Package softrender rasterizes the tessellated output of an immediate-mode
// GUI toolkit into a caller-owned pixel buffer, without any GPU.
//
// A [Renderer] owns an [Atlas] of textures. Each frame, the caller passes the
// texture changes for the frame, the list of clipped triangle meshes, and the
// number of physical pixels per logical point. The renderer applies the
// texture changes, then draws the meshes in list order, so that later
// meshes appear on top of earlier ones.
//
// Colors use straight (non-premultiplied) alpha unless the renderer is
// configured with [AlphaPremultiplied].
package softrender

//go:generate go run ./testcases/export
