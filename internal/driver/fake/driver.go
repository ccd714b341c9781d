package fake

import "github.com/example/chaikin-canvas/internal/geom"

// Driver captures frames in memory, useful for headless sims and tests.
type Driver struct {
	Count int
	Last  []geom.Point
}

func (d *Driver) Write(frame []geom.Point) error {
	d.Count++
	d.Last = append(d.Last[:0], frame...)
	return nil
}

func (d *Driver) Close() error { return nil }
