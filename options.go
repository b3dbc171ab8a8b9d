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
	"log/slog"
	"runtime"
)

// Option configures a Renderer during creation.
//
// Example:
//
//	// Straight alpha, single-threaded (the defaults)
//	r := softrender.New()
//
//	// Premultiplied alpha, one band worker per CPU
//	r := softrender.New(
//	    softrender.WithAlphaMode(softrender.AlphaPremultiplied),
//	    softrender.WithWorkers(0),
//	)
type Option func(*options)

type options struct {
	alpha      AlphaMode
	workers    int
	bandHeight int
	logger     *slog.Logger
}

// DefaultBandHeight is the number of pixel rows per band when rendering
// with more than one worker.
const DefaultBandHeight = 64

func defaultOptions() options {
	return options{
		alpha:      AlphaStraight,
		workers:    1,
		bandHeight: DefaultBandHeight,
		logger:     newNopLogger(),
	}
}

// WithAlphaMode selects straight or premultiplied alpha compositing.
func WithAlphaMode(m AlphaMode) Option {
	return func(o *options) {
		o.alpha = m
	}
}

// WithWorkers sets the number of goroutines used to rasterize a frame.
// The buffer is split into horizontal bands which are drawn concurrently;
// within a band, primitives are drawn in list order.
// A value of zero or less uses one worker per available CPU.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithBandHeight sets the number of pixel rows per band.
// Values below 1 are ignored.
func WithBandHeight(rows int) Option {
	return func(o *options) {
		if rows >= 1 {
			o.bandHeight = rows
		}
	}
}

// WithLogger sets the logger for diagnostics.
// By default, the renderer produces no log output.
//
// Log levels used:
//   - [slog.LevelDebug]: skipped callback primitives, frees of unknown textures
//   - [slog.LevelWarn]: rejected meshes, references to unknown textures
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = newNopLogger()
		}
		o.logger = l
	}
}
