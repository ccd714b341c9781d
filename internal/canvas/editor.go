package canvas

import "github.com/example/chaikin-canvas/internal/geom"

// Editor holds the user's control polyline and the in-progress drag, the
// mutable drawing behind the animator. Not safe for concurrent use; the
// owning State serializes access.
type Editor struct {
	points    []geom.Point
	animating bool
	dragging  int // index of the grabbed point, -1 when none
}

func NewEditor() *Editor {
	return &Editor{dragging: -1}
}

// Points returns a copy of the control polyline.
func (e *Editor) Points() []geom.Point {
	return append([]geom.Point(nil), e.points...)
}

func (e *Editor) Len() int { return len(e.points) }

func (e *Editor) Animating() bool { return e.animating }

// SetAnimating toggles animation. Enabling on an empty canvas is refused;
// the caller surfaces the hint to the user.
func (e *Editor) SetAnimating(on bool) bool {
	if on && len(e.points) == 0 {
		return false
	}
	e.animating = on
	return true
}

// AddPoint appends a control point. Ignored while animating, matching the
// original editor: the drawing is frozen once the curve is running.
func (e *Editor) AddPoint(x, y float64) bool {
	if e.animating {
		return false
	}
	e.points = append(e.points, geom.Pt(x, y))
	return true
}

// MovePoint repositions an existing control point.
func (e *Editor) MovePoint(i int, x, y float64) bool {
	if i < 0 || i >= len(e.points) {
		return false
	}
	e.points[i].X = x
	e.points[i].Y = y
	return true
}

// Grab starts dragging the nearest control point within radius of (x,y).
func (e *Editor) Grab(x, y, radius float64) (int, bool) {
	i, ok := e.Nearest(x, y, radius)
	if ok {
		e.dragging = i
		e.points[i].X = x
		e.points[i].Y = y
	}
	return i, ok
}

// Drag moves the grabbed point, if any.
func (e *Editor) Drag(x, y float64) bool {
	if e.dragging < 0 {
		return false
	}
	return e.MovePoint(e.dragging, x, y)
}

// Release ends the current drag.
func (e *Editor) Release() { e.dragging = -1 }

// Dragging returns the grabbed point index, or -1.
func (e *Editor) Dragging() int { return e.dragging }

// Clear removes all points and stops the animation.
func (e *Editor) Clear() {
	e.points = nil
	e.animating = false
	e.dragging = -1
}

// Nearest returns the index of the closest control point within radius of
// (x,y), scanning in order so earlier points win ties.
func (e *Editor) Nearest(x, y, radius float64) (int, bool) {
	at := geom.Pt(x, y)
	best := -1
	bestDist := radius * radius
	for i, p := range e.points {
		if d := p.DistanceSquared(at); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best, best >= 0
}

// SetPoints replaces the whole polyline (preset loading).
func (e *Editor) SetPoints(points []geom.Point) {
	e.points = append([]geom.Point(nil), points...)
	e.dragging = -1
}
