package testcases

import "math"

var scaleCases = []TestCase{
	{
		Name:   "triangle_x2",
		Width:  128,
		Height: 128,
		Scale:  2,
		Tris:   []Triangle{{pt(5, 25), pt(16, 5), pt(27, 25)}},
	},
	{
		Name:   "circle_x1_5",
		Width:  96,
		Height: 96,
		Scale:  1.5,
		Tris:   fan(32, 32, 25, 24, 0),
	},
	{
		Name:   "strip_x0_75",
		Width:  72,
		Height: 24,
		Scale:  0.75,
		Tris:   strip(6, 6, 90, 26, 5),
	},
	{
		Name:   "hexagon_x3",
		Width:  96,
		Height: 96,
		Scale:  3,
		Tris:   fan(16, 16, 12, 6, math.Pi/6),
	},
}
