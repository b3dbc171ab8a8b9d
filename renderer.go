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
	"image"
	"log/slog"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// Renderer draws frames of clipped primitives into caller-owned buffers.
// It owns the texture atlas, which persists from frame to frame.
//
// A Renderer is not safe for concurrent use. Independent Renderers may be
// used concurrently.
type Renderer struct {
	atlas  *Atlas
	opts   options
	logger *slog.Logger

	// reused between frames
	jobs        []drawJob
	rasterizers []*Rasterizer
	missing     map[TextureID]struct{}

	stats Stats
}

// drawJob is one validated mesh, ready for rasterization.
type drawJob struct {
	mesh *Mesh
	tex  *Texture        // nil samples white
	clip image.Rectangle // physical pixels, inside the buffer
}

// New returns a Renderer with an empty atlas.
func New(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	atlas := NewAtlas()
	atlas.logger = o.logger
	return &Renderer{
		atlas:   atlas,
		opts:    o,
		logger:  o.logger,
		missing: make(map[TextureID]struct{}),
	}
}

// Atlas returns the texture store of the renderer.
func (r *Renderer) Atlas() *Atlas {
	return r.atlas
}

// Stats returns the statistics of the most recent call to Render.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// Render draws one frame.
//
// The texture delta is applied to the atlas in full before any primitive
// is drawn, so primitives may use textures uploaded in the same frame.
// Then the primitives are drawn in list order, later ones on top of
// earlier ones. Scale is the number of physical pixels per logical point.
//
// Render fails without drawing anything if buf cannot hold its declared
// size (ErrBufferBounds), if scale is not a positive number
// (ErrInvalidScale), or if the delta cannot be applied. Malformed meshes
// and primitives of unsupported types are skipped while the rest of the
// frame is drawn; they are reported as
// *MeshError values joined into the returned error. A mesh which refers
// to an unknown texture is drawn with opaque white in place of the
// texture and reported through the logger and Stats.MissingTextures.
func (r *Renderer) Render(buf *Buffer, prims []ClippedPrimitive, delta *TexturesDelta, scale float64) error {
	r.stats = Stats{}

	if err := buf.Validate(); err != nil {
		return err
	}
	if !(scale > 0) || math.IsInf(scale, 1) {
		return fmt.Errorf("scale %g: %w", scale, ErrInvalidScale)
	}
	if err := r.atlas.ApplyDelta(delta); err != nil {
		return fmt.Errorf("applying texture delta: %w", err)
	}

	errs := r.prepare(buf, prims, scale)

	m := matrix.Scale(scale, scale)
	if r.opts.workers > 1 && buf.Height > r.opts.bandHeight {
		r.drawBands(buf, m)
	} else {
		rz := r.rasterizer(0)
		rz.Reset(buf.Bounds())
		rz.Transform = m
		rz.Alpha = r.opts.alpha
		for i := range r.jobs {
			job := &r.jobs[i]
			rz.Clip = job.clip
			rz.drawMesh(buf, job.mesh, job.tex)
		}
		r.stats.add(rz.Stats())
	}

	return errors.Join(errs...)
}

// prepare validates the primitives, resolves their textures and converts
// the clip rectangles to physical pixels. The drawable meshes are stored
// in r.jobs, in list order.
func (r *Renderer) prepare(buf *Buffer, prims []ClippedPrimitive, scale float64) []error {
	var errs []error
	r.jobs = r.jobs[:0]
	clear(r.missing)

	for i, prim := range prims {
		var mesh *Mesh
		switch p := prim.Primitive.(type) {
		case *Mesh:
			mesh = p
		case Callback:
			r.stats.Callbacks++
			r.logger.Debug("skipping callback primitive", "primitive", i, "name", p.Name)
			continue
		case nil:
			continue
		default:
			err := &MeshError{
				Primitive: i,
				Reason:    fmt.Sprintf("unsupported primitive type %T", p),
			}
			r.stats.RejectedMeshes++
			r.logger.Warn("rejecting primitive", "primitive", i, "error", err)
			errs = append(errs, err)
			continue
		}
		if mesh == nil || len(mesh.Indices) == 0 {
			continue
		}

		if err := mesh.Validate(); err != nil {
			var me *MeshError
			if errors.As(err, &me) {
				me.Primitive = i
			}
			r.stats.RejectedMeshes++
			r.logger.Warn("rejecting malformed mesh", "primitive", i, "error", err)
			errs = append(errs, err)
			continue
		}

		clip := physicalClip(prim.Clip, scale).Intersect(buf.Bounds())
		if clip.Empty() {
			continue
		}

		var tex *Texture
		if !mesh.Texture.IsNone() {
			t, ok := r.atlas.Lookup(mesh.Texture)
			if ok {
				tex = t
			} else {
				r.stats.MissingTextures++
				if _, seen := r.missing[mesh.Texture]; !seen {
					r.missing[mesh.Texture] = struct{}{}
					r.logger.Warn("mesh uses unknown texture, drawing untextured",
						"primitive", i, "texture", mesh.Texture.String())
				}
			}
		}

		r.jobs = append(r.jobs, drawJob{mesh: mesh, tex: tex, clip: clip})
		r.stats.Meshes++
	}
	return errs
}

// physicalClip converts a clip rectangle from logical points to physical
// pixels, rounding each side to the nearest pixel boundary.
// Rectangles with LLx > URx or LLy > URy are empty.
func physicalClip(c rect.Rect, scale float64) image.Rectangle {
	res := image.Rectangle{
		Min: image.Point{X: roundInt(c.LLx * scale), Y: roundInt(c.LLy * scale)},
		Max: image.Point{X: roundInt(c.URx * scale), Y: roundInt(c.URy * scale)},
	}
	if res.Empty() {
		return image.Rectangle{}
	}
	return res
}

// roundInt rounds x to the nearest integer, saturating at ±2³¹.
func roundInt(x float64) int {
	return floorInt(x + 0.5)
}

// rasterizer returns the i-th reusable rasterizer, allocating as needed.
func (r *Renderer) rasterizer(i int) *Rasterizer {
	for len(r.rasterizers) <= i {
		r.rasterizers = append(r.rasterizers, NewRasterizer(image.Rectangle{}))
	}
	return r.rasterizers[i]
}
