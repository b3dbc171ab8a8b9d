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

	"golang.org/x/sync/errgroup"
	"seehuhn.de/go/geom/matrix"
)

// bands splits the rows [0, height) into horizontal bands of at most
// bandHeight rows each.
func bands(width, height, bandHeight int) []image.Rectangle {
	n := (height + bandHeight - 1) / bandHeight
	res := make([]image.Rectangle, 0, n)
	for y := 0; y < height; y += bandHeight {
		res = append(res, image.Rect(0, y, width, min(y+bandHeight, height)))
	}
	return res
}

// drawBands draws r.jobs using one rasterizer per band. The bands do not
// overlap, and every band draws the jobs in list order, so each pixel
// sees the same sequence of blend operations as in a serial render.
// The call returns after all bands are finished.
func (r *Renderer) drawBands(buf *Buffer, m matrix.Matrix) {
	bs := bands(buf.Width, buf.Height, r.opts.bandHeight)
	for i := range bs {
		rz := r.rasterizer(i)
		rz.Reset(bs[i])
		rz.Transform = m
		rz.Alpha = r.opts.alpha
	}

	var g errgroup.Group
	g.SetLimit(r.opts.workers)
	for i, band := range bs {
		rz := r.rasterizers[i]
		g.Go(func() error {
			for j := range r.jobs {
				job := &r.jobs[j]
				clip := job.clip.Intersect(band)
				if clip.Empty() {
					continue
				}
				rz.Clip = clip
				rz.drawMesh(buf, job.mesh, job.tex)
			}
			return nil
		})
	}
	_ = g.Wait() // the band functions do not fail

	for i := range bs {
		r.stats.add(r.rasterizers[i].Stats())
	}
}
