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

// ChannelOrder gives the byte offset, within one 4-byte pixel, of the red,
// green, blue and alpha channels, in this order.
// A valid ChannelOrder is a permutation of 0, 1, 2, 3.
type ChannelOrder [4]uint8

// Common channel orders.
var (
	RGBA = ChannelOrder{0, 1, 2, 3}
	BGRA = ChannelOrder{2, 1, 0, 3}
	ARGB = ChannelOrder{1, 2, 3, 0}
	ABGR = ChannelOrder{3, 2, 1, 0}
)

var errNotPermutation = errors.New("channel positions are not a permutation of 0..3")

// NewChannelOrder returns the channel order which stores red at byte r,
// green at byte g, blue at byte b and alpha at byte a of each pixel.
func NewChannelOrder(r, g, b, a int) (ChannelOrder, error) {
	o := ChannelOrder{uint8(r), uint8(g), uint8(b), uint8(a)}
	for _, p := range []int{r, g, b, a} {
		if p < 0 || p > 3 {
			return ChannelOrder{}, fmt.Errorf("channel order %d%d%d%d: %w", r, g, b, a, errNotPermutation)
		}
	}
	if err := o.Validate(); err != nil {
		return ChannelOrder{}, err
	}
	return o, nil
}

// Validate checks that o is a permutation.
func (o ChannelOrder) Validate() error {
	var seen [4]bool
	for _, p := range o {
		if p > 3 || seen[p] {
			return fmt.Errorf("channel order %v: %w", [4]uint8(o), errNotPermutation)
		}
		seen[p] = true
	}
	return nil
}

// Encode writes c into the first four bytes of dst.
func (o ChannelOrder) Encode(dst []byte, c Color) {
	_ = dst[3]
	dst[o[0]] = c.R
	dst[o[1]] = c.G
	dst[o[2]] = c.B
	dst[o[3]] = c.A
}

// Decode reads a color from the first four bytes of src.
func (o ChannelOrder) Decode(src []byte) Color {
	_ = src[3]
	return Color{
		R: src[o[0]],
		G: src[o[1]],
		B: src[o[2]],
		A: src[o[3]],
	}
}

// Inverse returns the permutation which maps byte positions back to
// channels: Inverse()[i] is the channel (0=R, 1=G, 2=B, 3=A) stored at
// byte i.
// Reading the bytes written by Encode in the order given by Inverse
// yields the channels R, G, B, A in their original order.
func (o ChannelOrder) Inverse() ChannelOrder {
	var inv ChannelOrder
	for ch, pos := range o {
		inv[pos] = uint8(ch)
	}
	return inv
}

func (o ChannelOrder) String() string {
	if o.Validate() != nil {
		return fmt.Sprintf("ChannelOrder%v", [4]uint8(o))
	}
	var name [4]byte
	for ch, pos := range o {
		name[pos] = "RGBA"[ch]
	}
	return string(name[:])
}
