package chaikin

import (
	"time"

	"github.com/example/chaikin-canvas/internal/geom"
)

// MaxSteps is the length of the refinement cycle: levels 0..6, where the
// last level animates back to the original polyline.
const MaxSteps = 7

// DefaultSpeed is the animation speed in level crossings per second.
const DefaultSpeed = 1.0

// Phase classifies the current level of the cycle.
type Phase string

const (
	// PhaseStart is level 0: the original polyline, refining toward level 1.
	PhaseStart Phase = "start"
	// PhaseRefining covers the middle levels, each refining the current one.
	PhaseRefining Phase = "refining"
	// PhaseWrapping is the deepest level, animating back to the original.
	PhaseWrapping Phase = "wrapping"
)

// Animator morphs a control polyline into its Chaikin refinements one
// level per progress cycle, producing a renderable frame on every Step.
// It is call-driven and not safe for concurrent use; the canvas render
// loop is its single caller.
type Animator struct {
	original []geom.Point
	current  []geom.Point
	next     []geom.Point

	progress float64 // fraction within the active level, [0,1)
	level    int     // 0..MaxSteps-1

	speed float64 // level crossings per second
	ease  string

	clock    Clock
	lastTick time.Time
}

// New returns an animator seeded with the given control points, driven by
// the real monotonic clock.
func New(points []geom.Point) *Animator {
	return NewWithClock(points, SystemClock())
}

// NewWithClock returns an animator with an injected time source.
func NewWithClock(points []geom.Point, clock Clock) *Animator {
	pts := append([]geom.Point(nil), points...)
	return &Animator{
		original: pts,
		current:  append([]geom.Point(nil), pts...),
		speed:    DefaultSpeed,
		ease:     EaseLinear,
		clock:    clock,
		lastTick: clock.Now(),
	}
}

// SetSpeed changes the animation speed. Non-positive values are ignored.
func (a *Animator) SetSpeed(s float64) {
	if s > 0 {
		a.speed = s
	}
}

// SetEase selects the easing applied to the animation fraction.
func (a *Animator) SetEase(kind string) { a.ease = kind }

// Level returns the current subdivision level.
func (a *Animator) Level() int { return a.level }

// Progress returns the fraction within the active level.
func (a *Animator) Progress() float64 { return a.progress }

// Phase returns the tagged state of the current level.
func (a *Animator) Phase() Phase {
	switch {
	case a.level == 0:
		return PhaseStart
	case a.level == MaxSteps-1:
		return PhaseWrapping
	default:
		return PhaseRefining
	}
}

// SetPoints replaces the control polyline. Structurally identical input
// (by position) is a no-op so that re-pushing an unchanged drawing does
// not restart the animation. Any other input is a full reset to level 0.
func (a *Animator) SetPoints(points []geom.Point) {
	if geom.SamePositions(points, a.original) {
		return
	}
	pts := append([]geom.Point(nil), points...)
	a.original = pts
	a.current = append([]geom.Point(nil), pts...)
	a.next = nil
	a.progress = 0
	a.level = 0
	a.lastTick = a.clock.Now()
}

// Step advances the animation clock and returns the frame to render: the
// control points tagged as markers, followed by the curve points
// interpolated between the current level and the next. With fewer than
// two control points there is no curve; the originals come back as-is.
func (a *Animator) Step() []geom.Point {
	now := a.clock.Now()
	elapsed := now.Sub(a.lastTick).Seconds()
	a.lastTick = now

	if len(a.original) < 2 {
		return append([]geom.Point(nil), a.original...)
	}

	a.progress += elapsed * a.speed
	if a.next == nil {
		a.arm()
	}
	if a.progress >= 1 {
		a.progress = 0
		a.level = (a.level + 1) % MaxSteps
		a.current = a.next
		a.next = nil
		a.arm()
	}

	t := easeApply(a.ease, clamp01(a.progress))
	curve := interpolate(a.current, a.next, t)

	frame := make([]geom.Point, 0, len(a.original)+len(curve))
	for _, p := range a.original {
		frame = append(frame, p.Tagged(geom.Red))
	}
	return append(frame, curve...)
}

// arm fills in the animation segment for the current level.
func (a *Animator) arm() {
	switch a.Phase() {
	case PhaseStart:
		a.current = a.original
		a.next = Refine(a.original)
	case PhaseWrapping:
		a.next = a.original
	default:
		a.next = Refine(a.current)
	}
}
