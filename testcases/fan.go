package testcases

import "math"

var fanCases = []TestCase{
	{
		Name:   "circle_16",
		Width:  64,
		Height: 64,
		Tris:   fan(32, 32, 25, 16, 0),
	},
	{
		Name:   "circle_64",
		Width:  64,
		Height: 64,
		Tris:   fan(31.3, 32.9, 27.5, 64, 0.1),
	},
	{
		Name:   "octagon_offset",
		Width:  48,
		Height: 48,
		Tris:   fan(24.25, 23.75, 18, 8, 0.3927),
	},
	{
		Name:   "rounded_rect",
		Width:  96,
		Height: 64,
		Tris:   roundedRect(8, 8, 88, 56, 10, 6),
	},
}

// roundedRect tessellates a rectangle with rounded corners the way GUI
// toolkits draw frames: a fan around the center of the shape. Each corner
// arc uses n segments.
func roundedRect(x0, y0, x1, y1, r float64, n int) []Triangle {
	type corner struct{ cx, cy, start float64 }
	const quarter = math.Pi / 2
	corners := []corner{
		{x1 - r, y0 + r, -quarter},
		{x1 - r, y1 - r, 0},
		{x0 + r, y1 - r, quarter},
		{x0 + r, y0 + r, 2 * quarter},
	}
	var tris []Triangle
	var ring [][2]float64
	for _, c := range corners {
		for i := 0; i <= n; i++ {
			a := c.start + quarter*float64(i)/float64(n)
			ring = append(ring, [2]float64{c.cx + r*math.Cos(a), c.cy + r*math.Sin(a)})
		}
	}
	center := pt((x0+x1)/2, (y0+y1)/2)
	for i := range ring {
		p, q := ring[i], ring[(i+1)%len(ring)]
		if p == q {
			continue
		}
		tris = append(tris, Triangle{center, pt(p[0], p[1]), pt(q[0], q[1])})
	}
	return tris
}
