// Package driver abstracts the sink that rendered frames are pushed to.
// The canvas server broadcasts frames to browser clients itself; a Driver
// is an additional tap used for headless runs and tests.
package driver

import "github.com/example/chaikin-canvas/internal/geom"

// Driver consumes rendered point frames.
type Driver interface {
	// Write pushes one frame. The slice is owned by the caller and must
	// not be retained.
	Write(frame []geom.Point) error
	// Close releases resources.
	Close() error
}
