package geom

import "fmt"

// RGB is a display color tag. It is a rendering hint only and carries no
// geometric meaning; geometric comparisons ignore it.
type RGB struct{ R, G, B uint8 }

// Color tags used across the canvas.
var (
	White  = RGB{255, 255, 255} // freshly placed point
	Red    = RGB{255, 0, 0}     // control marker during animation
	Green  = RGB{0, 255, 0}     // generated curve point
	Orange = RGB{255, 165, 0}   // idle (non-animating) display
)

// Point is a 2D position plus a color tag. Value type, structural equality.
type Point struct {
	X, Y  float64
	Color RGB
}

// Pt returns the point (x, y) with the default white tag.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y, Color: White}
}

// PtColor returns the point (x, y) with an explicit tag.
func PtColor(x, y float64, c RGB) Point {
	return Point{X: x, Y: y, Color: c}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Tagged returns a copy of p with its tag replaced.
func (p Point) Tagged(c RGB) Point {
	p.Color = c
	return p
}

// Lerp linearly interpolates the positions of two points. The result keeps
// p's tag; callers that care re-tag it.
func (p Point) Lerp(o Point, t float64) Point {
	return Point{
		X:     p.X + (o.X-p.X)*t,
		Y:     p.Y + (o.Y-p.Y)*t,
		Color: p.Color,
	}
}

// DistanceSquared returns the squared euclidean distance between positions.
func (p Point) DistanceSquared(o Point) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return dx*dx + dy*dy
}

// SamePosition reports whether two points share a position, ignoring tags.
func (p Point) SamePosition(o Point) bool {
	return p.X == o.X && p.Y == o.Y
}

// SamePositions reports whether two sequences are elementwise equal by
// position, ignoring tags.
func SamePositions(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].SamePosition(b[i]) {
			return false
		}
	}
	return true
}
