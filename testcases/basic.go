package testcases

import "math"

var basicCases = []TestCase{
	{
		Name:   "triangle_cw",
		Width:  64,
		Height: 64,
		Tris:   []Triangle{{pt(10, 50), pt(32, 10), pt(54, 50)}},
	},
	{
		Name:   "triangle_ccw",
		Width:  64,
		Height: 64,
		Tris:   []Triangle{{pt(10, 50), pt(54, 50), pt(32, 10)}},
	},
	{
		Name:   "rectangle",
		Width:  64,
		Height: 64,
		Tris:   quad(10, 10, 54, 44),
	},
	{
		Name:   "rectangle_subpixel",
		Width:  64,
		Height: 64,
		Tris:   quad(10.3, 10.7, 53.6, 44.2),
	},
	{
		Name:   "right_triangle",
		Width:  32,
		Height: 32,
		Tris:   []Triangle{{pt(4, 4), pt(28, 4), pt(4, 28)}},
	},
	{
		Name:   "hexagon",
		Width:  64,
		Height: 64,
		Tris:   fan(32.2, 31.7, 26, 6, math.Pi/12),
	},
	{
		Name:   "strip",
		Width:  96,
		Height: 32,
		Tris:   strip(6, 6, 90, 26, 7),
	},
}

// quad splits the rectangle (x0,y0)-(x1,y1) into two triangles, the way
// GUI toolkits emit rectangles.
func quad(x0, y0, x1, y1 float64) []Triangle {
	return []Triangle{
		{pt(x0, y0), pt(x1, y0), pt(x1, y1)},
		{pt(x0, y0), pt(x1, y1), pt(x0, y1)},
	}
}

// fan builds a regular n-gon around (cx, cy) as a triangle fan. The first
// corner is at angle phase.
func fan(cx, cy, r float64, n int, phase float64) []Triangle {
	center := pt(cx, cy)
	corner := func(i int) [2]float64 {
		a := phase + 2*math.Pi*float64(i)/float64(n)
		return [2]float64{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}
	tris := make([]Triangle, n)
	for i := range n {
		p, q := corner(i), corner(i+1)
		tris[i] = Triangle{center, pt(p[0], p[1]), pt(q[0], q[1])}
	}
	return tris
}

// strip covers the rectangle (x0,y0)-(x1,y1) with a triangle strip of n
// columns.
func strip(x0, y0, x1, y1 float64, n int) []Triangle {
	var tris []Triangle
	w := (x1 - x0) / float64(n)
	for i := range n {
		a := x0 + float64(i)*w
		b := a + w
		tris = append(tris,
			Triangle{pt(a, y0), pt(a, y1), pt(b, y0)},
			Triangle{pt(b, y0), pt(a, y1), pt(b, y1)},
		)
	}
	return tris
}
