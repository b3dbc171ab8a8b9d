package testcases

import "seehuhn.de/go/geom/rect"

var clipCases = []TestCase{
	{
		Name:   "circle_half",
		Width:  64,
		Height: 64,
		Clip:   rect.Rect{LLx: 0, LLy: 0, URx: 32, URy: 64},
		Tris:   fan(32, 32, 25, 32, 0),
	},
	{
		Name:   "triangle_window",
		Width:  64,
		Height: 64,
		Clip:   rect.Rect{LLx: 20, LLy: 16, URx: 44, URy: 40},
		Tris:   []Triangle{{pt(10, 50), pt(32, 10), pt(54, 50)}},
	},
	{
		Name:   "scaled_window",
		Width:  128,
		Height: 128,
		Scale:  2,
		Clip:   rect.Rect{LLx: 8, LLy: 12, URx: 40, URy: 52},
		Tris:   quad(4.3, 6.1, 58.7, 60.2),
	},
	{
		Name:   "empty",
		Width:  32,
		Height: 32,
		Clip:   rect.Rect{LLx: 10, LLy: 10, URx: 10, URy: 20},
		Tris:   quad(2, 2, 30, 30),
	},
}
