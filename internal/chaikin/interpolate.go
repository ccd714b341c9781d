package chaikin

import (
	"math"

	"github.com/example/chaikin-canvas/internal/geom"
)

// interpolate blends two point sequences at fraction t in [0,1]. Equal
// lengths blend elementwise. Unequal lengths keep the denser side's
// cardinality: endpoints blend directly, interior points of the denser
// side blend toward a virtual target resampled from the sparser side at
// the same normalized arc-index. Either side empty returns the other.
// The result is always a fresh slice tagged as generated curve points.
func interpolate(from, to []geom.Point, t float64) []geom.Point {
	if len(from) == 0 {
		return append([]geom.Point(nil), to...)
	}
	if len(to) == 0 {
		return append([]geom.Point(nil), from...)
	}

	if len(from) == len(to) {
		out := make([]geom.Point, len(from))
		for i := range from {
			out[i] = from[i].Lerp(to[i], t).Tagged(geom.Green)
		}
		return out
	}

	dense, sparse := from, to
	denseIsFrom := true
	if len(to) > len(from) {
		dense, sparse = to, from
		denseIsFrom = false
	}

	n := len(dense)
	out := make([]geom.Point, n)
	out[0] = from[0].Lerp(to[0], t).Tagged(geom.Green)
	out[n-1] = from[len(from)-1].Lerp(to[len(to)-1], t).Tagged(geom.Green)

	for i := 1; i < n-1; i++ {
		u := float64(i) / float64(n-1)
		f := u * float64(len(sparse)-1)
		j := int(math.Floor(f))
		k := j + 1
		if k > len(sparse)-1 {
			k = len(sparse) - 1
		}
		// Collapsed bracket forces a zero fraction instead of 0/0.
		frac := 0.0
		if k != j {
			frac = f - float64(j)
		}
		target := sparse[j].Lerp(sparse[k], frac)

		var p geom.Point
		if denseIsFrom {
			p = dense[i].Lerp(target, t)
		} else {
			p = target.Lerp(dense[i], t)
		}
		out[i] = p.Tagged(geom.Green)
	}
	return out
}
