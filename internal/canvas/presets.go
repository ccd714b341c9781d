package canvas

import (
	"math"

	"github.com/example/chaikin-canvas/internal/geom"
)

// Preset names selectable from the UI.
const (
	PresetZigzag = "zigzag"
	PresetStar   = "star"
	PresetWave   = "wave"
)

// Presets lists the available starter shapes.
func Presets() []string {
	return []string{PresetZigzag, PresetStar, PresetWave}
}

// Preset builds a named starter polyline scaled to a w x h canvas. These
// give the refinement something with visible corners to cut.
func Preset(name string, w, h float64) ([]geom.Point, bool) {
	cx, cy := w/2, h/2
	switch name {
	case PresetZigzag:
		pts := make([]geom.Point, 0, 7)
		for i := 0; i < 7; i++ {
			x := w * (0.1 + 0.8*float64(i)/6)
			y := cy - 0.25*h
			if i%2 == 1 {
				y = cy + 0.25*h
			}
			pts = append(pts, geom.Pt(x, y))
		}
		return pts, true

	case PresetStar:
		// Open five-point star stroke: alternate outer and inner radii.
		outer := 0.4 * math.Min(w, h)
		inner := 0.16 * math.Min(w, h)
		pts := make([]geom.Point, 0, 11)
		for i := 0; i <= 10; i++ {
			r := outer
			if i%2 == 1 {
				r = inner
			}
			a := -math.Pi/2 + float64(i)*math.Pi/5
			pts = append(pts, geom.Pt(cx+r*math.Cos(a), cy+r*math.Sin(a)))
		}
		return pts, true

	case PresetWave:
		pts := make([]geom.Point, 0, 9)
		for i := 0; i < 9; i++ {
			x := w * (0.1 + 0.8*float64(i)/8)
			y := cy + 0.3*h*math.Sin(float64(i)*math.Pi/2)
			pts = append(pts, geom.Pt(x, y))
		}
		return pts, true
	}
	return nil, false
}
