package chaikin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/chaikin-canvas/internal/geom"
)

func pts(xy ...float64) []geom.Point {
	out := make([]geom.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, geom.Pt(xy[i], xy[i+1]))
	}
	return out
}

func TestInterpolateEmptySides(t *testing.T) {
	a := pts(1, 2, 3, 4)
	assert.True(t, geom.SamePositions(a, interpolate(nil, a, 0.5)))
	assert.True(t, geom.SamePositions(a, interpolate(a, nil, 0.5)))
	assert.Empty(t, interpolate(nil, nil, 0.5))
}

func TestInterpolateFixedPoint(t *testing.T) {
	a := pts(0, 0, 5, 5, 10, 0)
	for _, frac := range []float64{0, 0.25, 0.5, 0.99, 1} {
		got := interpolate(a, a, frac)
		assert.True(t, geom.SamePositions(a, got), "t=%v", frac)
	}
}

func TestInterpolateEqualLength(t *testing.T) {
	a := pts(0, 0, 10, 0)
	b := pts(0, 10, 10, 10)

	got := interpolate(a, b, 0.5)
	require.Len(t, got, 2)
	assert.True(t, got[0].SamePosition(geom.Pt(0, 5)))
	assert.True(t, got[1].SamePosition(geom.Pt(10, 5)))
	for _, p := range got {
		assert.Equal(t, geom.Green, p.Color)
	}

	assert.True(t, geom.SamePositions(a, interpolate(a, b, 0)))
	assert.True(t, geom.SamePositions(b, interpolate(a, b, 1)))
}

// Spec scenario: 2 points against 4, halfway. Endpoints blend directly;
// the two interior points of the denser side each resample against the
// single segment of the sparser side and blend halfway toward it.
func TestInterpolateUnequalLength(t *testing.T) {
	from := pts(0, 0, 9, 0)
	to := pts(0, 6, 3, 6, 6, 6, 9, 6)

	got := interpolate(from, to, 0.5)
	require.Len(t, got, 4, "output keeps the denser cardinality")

	assert.True(t, got[0].SamePosition(geom.Pt(0, 3)))
	assert.True(t, got[3].SamePosition(geom.Pt(9, 3)))

	// Interior i=1: virtual target on from at u=1/3 is (3,0);
	// halfway toward to[1]=(3,6) gives (3,3). Same for i=2 at (6,3).
	assert.InDelta(t, 3, got[1].X, 1e-9)
	assert.InDelta(t, 3, got[1].Y, 1e-9)
	assert.InDelta(t, 6, got[2].X, 1e-9)
	assert.InDelta(t, 3, got[2].Y, 1e-9)
}

func TestInterpolateUnequalEndpointsExactAtBounds(t *testing.T) {
	from := pts(0, 0, 4, 4)
	to := pts(0, 0, 1, 3, 3, 1, 4, 4)

	at0 := interpolate(from, to, 0)
	assert.True(t, at0[0].SamePosition(from[0]))
	assert.True(t, at0[len(at0)-1].SamePosition(from[1]))

	at1 := interpolate(from, to, 1)
	assert.True(t, geom.SamePositions(to, at1))
}

// Denser side on the from side (the wrap boundary case): cardinality and
// endpoint behavior must hold in both directions.
func TestInterpolateDenserFrom(t *testing.T) {
	from := pts(0, 0, 1, 3, 3, 1, 4, 4)
	to := pts(0, 0, 4, 4)

	got := interpolate(from, to, 0)
	require.Len(t, got, 4)
	assert.True(t, geom.SamePositions(from, got), "t=0 reproduces the denser from side")

	at1 := interpolate(from, to, 1)
	assert.True(t, at1[0].SamePosition(to[0]))
	assert.True(t, at1[len(at1)-1].SamePosition(to[1]))
}

// A sparser side of length 1 collapses every bracket; the forced zero
// fraction must keep the result finite.
func TestInterpolateCollapsedBracket(t *testing.T) {
	from := pts(2, 2)
	to := pts(0, 0, 4, 0, 4, 4, 0, 4)

	got := interpolate(from, to, 0.5)
	require.Len(t, got, 4)
	for _, p := range got {
		assert.False(t, p.X != p.X || p.Y != p.Y, "NaN leaked: %v", p)
	}
	// Every virtual target is the single from point (2,2); halfway toward
	// to[1]=(4,0) lands at (3,1).
	assert.True(t, got[1].SamePosition(geom.Pt(3, 1)))
}
