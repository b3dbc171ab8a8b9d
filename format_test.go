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
	"bytes"
	"testing"
)

// allOrders returns all 24 channel orders.
func allOrders() []ChannelOrder {
	var res []ChannelOrder
	for r := range 4 {
		for g := range 4 {
			for b := range 4 {
				for a := range 4 {
					o, err := NewChannelOrder(r, g, b, a)
					if err == nil {
						res = append(res, o)
					}
				}
			}
		}
	}
	return res
}

func TestAllOrders(t *testing.T) {
	orders := allOrders()
	if len(orders) != 24 {
		t.Fatalf("found %d channel orders, expected 24", len(orders))
	}
	for _, o := range []ChannelOrder{RGBA, BGRA, ARGB, ABGR} {
		if err := o.Validate(); err != nil {
			t.Errorf("%v: %v", o, err)
		}
	}
}

func TestChannelOrderRoundTrip(t *testing.T) {
	colors := []Color{
		{R: 1, G: 2, B: 3, A: 4},
		{R: 255, G: 0, B: 128, A: 7},
		White,
		Transparent,
	}
	for _, o := range allOrders() {
		for _, c := range colors {
			var px [4]byte
			o.Encode(px[:], c)
			if got := o.Decode(px[:]); got != c {
				t.Errorf("%v: Decode(Encode(%v)) = %v", o, c, got)
			}

			// reading bytes through the inverse gives back R, G, B, A
			inv := o.Inverse()
			want := [4]byte{c.R, c.G, c.B, c.A}
			var got [4]byte
			for pos, ch := range inv {
				got[ch] = px[pos]
			}
			if got != want {
				t.Errorf("%v: inverse %v gives %v, expected %v", o, inv, got, want)
			}
		}
	}
}

func TestChannelOrderLayout(t *testing.T) {
	c := Color{R: 'r', G: 'g', B: 'b', A: 'a'}
	type testCase struct {
		order ChannelOrder
		bytes string
	}
	cases := []testCase{
		{RGBA, "rgba"},
		{BGRA, "bgra"},
		{ARGB, "argb"},
		{ABGR, "abgr"},
	}
	for _, tc := range cases {
		var px [4]byte
		tc.order.Encode(px[:], c)
		if !bytes.Equal(px[:], []byte(tc.bytes)) {
			t.Errorf("%v: got %q, expected %q", tc.order, px[:], tc.bytes)
		}
		if got := tc.order.String(); got != string(bytes.ToUpper([]byte(tc.bytes))) {
			t.Errorf("String() = %q, expected %q", got, tc.bytes)
		}
	}
}

func TestInverseInvolution(t *testing.T) {
	for _, o := range allOrders() {
		if got := o.Inverse().Inverse(); got != o {
			t.Errorf("%v: inverse of inverse is %v", o, got)
		}
	}
}

func TestNewChannelOrderErrors(t *testing.T) {
	bad := [][4]int{
		{0, 0, 1, 2},
		{0, 1, 2, 4},
		{-1, 0, 1, 2},
		{3, 3, 3, 3},
	}
	for _, b := range bad {
		if _, err := NewChannelOrder(b[0], b[1], b[2], b[3]); err == nil {
			t.Errorf("NewChannelOrder%v: expected error", b)
		}
	}
	if err := (ChannelOrder{0, 1, 2, 2}).Validate(); err == nil {
		t.Error("Validate accepted a non-permutation")
	}
}
