package chaikin

import "github.com/example/chaikin-canvas/internal/geom"

// Refine applies one round of Chaikin corner-cutting to an open polyline.
// The first and last points are pinned and keep their tags; every segment
// (p0,p1) contributes its 1/4 and 3/4 points, tagged as generated.
// Output length for n >= 2 input points is 2 + 2*(n-1). Fewer than two
// points have no geometry to refine and are returned unchanged.
func Refine(points []geom.Point) []geom.Point {
	if len(points) < 2 {
		return points
	}
	out := make([]geom.Point, 0, 2+2*(len(points)-1))
	out = append(out, points[0])
	for i := 0; i < len(points)-1; i++ {
		p0, p1 := points[i], points[i+1]
		out = append(out,
			geom.PtColor(0.75*p0.X+0.25*p1.X, 0.75*p0.Y+0.25*p1.Y, geom.Green),
			geom.PtColor(0.25*p0.X+0.75*p1.X, 0.25*p0.Y+0.75*p1.Y, geom.Green),
		)
	}
	out = append(out, points[len(points)-1])
	return out
}
