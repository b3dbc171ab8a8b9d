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
	"log/slog"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/vec"
)

// Atlas stores the textures known to a renderer, indexed by id.
// Textures are only modified by [Atlas.ApplyDelta] and
// [Atlas.SetUserTexture]; the rasterizer only reads them.
//
// An Atlas is not safe for concurrent use.
type Atlas struct {
	textures map[TextureID]*Texture
	logger   *slog.Logger
}

// NewAtlas returns an empty atlas.
func NewAtlas() *Atlas {
	return &Atlas{
		textures: make(map[TextureID]*Texture),
		logger:   newNopLogger(),
	}
}

// Len returns the number of textures in the atlas.
func (a *Atlas) Len() int {
	return len(a.textures)
}

// Lookup returns the texture with the given id.
func (a *Atlas) Lookup(id TextureID) (*Texture, bool) {
	t, ok := a.textures[id]
	return t, ok
}

// Sample returns the color of texture id at uv.
// The "none" id samples opaque white. For an unknown id, Sample returns
// opaque white together with an error wrapping ErrUnknownTexture, so that
// callers can degrade gracefully.
func (a *Atlas) Sample(id TextureID, uv vec.Vec2) (Color, error) {
	if id.IsNone() {
		return White, nil
	}
	t, ok := a.textures[id]
	if !ok {
		return White, fmt.Errorf("texture %s: %w", id, ErrUnknownTexture)
	}
	return t.Sample(uv), nil
}

// SetUserTexture registers an application-owned image under a user id.
// The pixels are not copied; the application must not modify img while a
// frame is being rendered. Passing a nil image removes the registration.
func (a *Atlas) SetUserTexture(id TextureID, img *image.NRGBA, filter Filter) error {
	if id.Kind != TextureUser {
		return fmt.Errorf("texture %s is not a user texture: %w", id, ErrInvalidDelta)
	}
	if img == nil {
		delete(a.textures, id)
		return nil
	}
	if img.Rect.Empty() {
		return fmt.Errorf("texture %s: empty image: %w", id, ErrInvalidDelta)
	}
	a.textures[id] = &Texture{Image: img, Filter: filter, external: true}
	return nil
}

// ApplyDelta applies the texture changes for one frame.
//
// Whole-image entries of d.Set create or replace textures; entries with a
// position copy their pixels into the existing texture, which must be
// large enough. Existing textures are never resized by a patch: a size
// change must be sent as a whole-image update. A patch for an unknown id
// creates a transparent texture just large enough to hold it. After all
// of d.Set, the ids in d.Free are removed.
//
// The delta is checked in full before anything is changed. If it is
// invalid, ApplyDelta returns an error wrapping ErrPatchBounds
// or ErrInvalidDelta and leaves the atlas unchanged.
func (a *Atlas) ApplyDelta(d *TexturesDelta) error {
	if d.IsEmpty() {
		return nil
	}
	if err := a.checkDelta(d); err != nil {
		return err
	}

	for i := range d.Set {
		u := &d.Set[i]
		if u.IsWhole() {
			a.textures[u.ID] = &Texture{
				Image:  cloneNRGBA(u.Image),
				Filter: u.Filter,
			}
			continue
		}
		t, ok := a.textures[u.ID]
		if !ok {
			t = &Texture{
				Image:  image.NewNRGBA(image.Rectangle{Max: u.Pos.Add(u.Image.Rect.Size())}),
				Filter: u.Filter,
			}
			a.textures[u.ID] = t
		}
		copyNRGBA(t.Image, *u.Pos, u.Image)
	}

	for _, id := range d.Free {
		if _, ok := a.textures[id]; !ok {
			a.logger.Debug("freeing unknown texture", "texture", id.String())
			continue
		}
		delete(a.textures, id)
	}
	return nil
}

// checkDelta verifies that every update in d can be applied, taking into
// account textures created earlier in the same delta.
func (a *Atlas) checkDelta(d *TexturesDelta) error {
	created := make(map[TextureID]image.Point)
	size := func(id TextureID) (image.Point, bool) {
		if s, ok := created[id]; ok {
			return s, true
		}
		if t, ok := a.textures[id]; ok {
			return t.Image.Rect.Size(), true
		}
		return image.Point{}, false
	}

	for i := range d.Set {
		u := &d.Set[i]
		if u.ID.Kind != TextureManaged {
			return fmt.Errorf("set[%d]: texture %s is not managed: %w", i, u.ID, ErrInvalidDelta)
		}
		if u.Image == nil {
			return fmt.Errorf("set[%d]: texture %s: missing image: %w", i, u.ID, ErrInvalidDelta)
		}
		if u.IsWhole() {
			if u.Image.Rect.Empty() {
				return fmt.Errorf("set[%d]: texture %s: empty image: %w", i, u.ID, ErrInvalidDelta)
			}
			created[u.ID] = u.Image.Rect.Size()
			continue
		}

		patch := image.Rectangle{Min: *u.Pos, Max: u.Pos.Add(u.Image.Rect.Size())}
		s, ok := size(u.ID)
		if !ok {
			if patch.Min.X < 0 || patch.Min.Y < 0 {
				return fmt.Errorf("set[%d]: texture %s: patch %v at negative position: %w",
					i, u.ID, patch, ErrPatchBounds)
			}
			if patch.Empty() {
				return fmt.Errorf("set[%d]: texture %s: empty image: %w", i, u.ID, ErrInvalidDelta)
			}
			created[u.ID] = patch.Max
			continue
		}
		if !patch.In(image.Rectangle{Max: s}) {
			return fmt.Errorf("set[%d]: texture %s: patch %v in %dx%d texture: %w",
				i, u.ID, patch, s.X, s.Y, ErrPatchBounds)
		}
	}
	return nil
}

// cloneNRGBA copies src into a new image with origin (0, 0).
func cloneNRGBA(src *image.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(image.Rectangle{Max: src.Rect.Size()})
	copyNRGBA(dst, image.Point{}, src)
	return dst
}

// copyNRGBA copies all of src into dst, with the top-left pixel of src
// going to position pos relative to the origin of dst.
// The bytes are copied unchanged: a round trip through premultiplied
// colors, as done by image/draw, would lose precision for translucent
// texels.
func copyNRGBA(dst *image.NRGBA, pos image.Point, src *image.NRGBA) {
	w := 4 * src.Rect.Dx()
	for y := range src.Rect.Dy() {
		s := src.Pix[y*src.Stride : y*src.Stride+w]
		d := dst.Pix[(pos.Y+y)*dst.Stride+4*pos.X:]
		copy(d[:w], s)
	}
}

// ToNRGBA converts an arbitrary image, for example one returned by
// image.Decode, to the straight alpha format used for textures.
// Images which already are *image.NRGBA are returned unchanged.
func ToNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok {
		return nrgba
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rectangle{Max: b.Size()})
	draw.Draw(dst, dst.Rect, img, b.Min, draw.Src)
	return dst
}
