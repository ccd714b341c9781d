package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/example/chaikin-canvas/internal/geom"
)

var lerpCases = []struct {
	A, B   Point
	T      float64
	Expect Point
}{
	{Pt(0, 0), Pt(10, 10), 0, Pt(0, 0)},
	{Pt(0, 0), Pt(10, 10), 1, Pt(10, 10)},
	{Pt(0, 0), Pt(10, 10), 0.5, Pt(5, 5)},
	{Pt(2, -4), Pt(2, -4), 0.37, Pt(2, -4)},
	{Pt(-10, 0), Pt(10, 20), 0.25, Pt(-5, 5)},
}

func TestLerp(t *testing.T) {
	for _, tc := range lerpCases {
		got := tc.A.Lerp(tc.B, tc.T)
		assert.InDelta(t, tc.Expect.X, got.X, 1e-12)
		assert.InDelta(t, tc.Expect.Y, got.Y, 1e-12)
	}
}

func TestConstructors(t *testing.T) {
	p := Pt(3, 4)
	assert.Equal(t, White, p.Color)

	q := PtColor(3, 4, Green)
	assert.Equal(t, Green, q.Color)
	assert.True(t, p.SamePosition(q), "color must not affect position equality")
}

func TestTagged(t *testing.T) {
	p := Pt(1, 2)
	q := p.Tagged(Red)
	assert.Equal(t, Red, q.Color)
	assert.Equal(t, White, p.Color, "Tagged returns a copy")
}

func TestSamePositions(t *testing.T) {
	a := []Point{Pt(0, 0), Pt(1, 1)}
	b := []Point{PtColor(0, 0, Red), PtColor(1, 1, Green)}
	assert.True(t, SamePositions(a, b))
	assert.False(t, SamePositions(a, b[:1]))
	assert.False(t, SamePositions(a, []Point{Pt(0, 0), Pt(1, 2)}))
	assert.True(t, SamePositions(nil, nil))
}

func TestDistanceSquared(t *testing.T) {
	assert.Equal(t, 25.0, Pt(0, 0).DistanceSquared(Pt(3, 4)))
	assert.Equal(t, 0.0, Pt(7, 7).DistanceSquared(Pt(7, 7)))
}
