package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/example/chaikin-canvas/internal/canvas"
	"github.com/example/chaikin-canvas/internal/chaikin"
	"github.com/example/chaikin-canvas/internal/driver/fake"
	"github.com/example/chaikin-canvas/internal/geom"
)

// animsim drives the animator headless at a fixed dt and prints one
// summary line per frame. Useful for eyeballing the level cycle without
// a browser.
func main() {
	var (
		pointsPath = flag.String("points", "", "path to a JSON polyline: [[x,y],...]")
		preset     = flag.String("preset", "zigzag", "starter shape when -points is not given")
		frames     = flag.Int("frames", 120, "number of frames to simulate")
		fps        = flag.Int("fps", 30, "simulation frames per second")
		speed      = flag.Float64("speed", 1.0, "animation speed in levels per second")
		ease       = flag.String("ease", "linear", "easing: linear | smooth | cubic")
	)
	flag.Parse()

	var pts []geom.Point
	if *pointsPath != "" {
		data, err := os.ReadFile(*pointsPath)
		if err != nil {
			log.Fatalf("read points: %v", err)
		}
		var raw [][2]float64
		if err := json.Unmarshal(data, &raw); err != nil {
			log.Fatalf("parse points: %v", err)
		}
		for _, xy := range raw {
			pts = append(pts, geom.Pt(xy[0], xy[1]))
		}
	} else {
		var ok bool
		pts, ok = canvas.Preset(*preset, 800, 600)
		if !ok {
			log.Fatalf("unknown preset %q (have %v)", *preset, canvas.Presets())
		}
	}
	if len(pts) < 2 {
		log.Fatalf("need at least 2 points, got %d", len(pts))
	}

	clock := chaikin.NewManualClock(time.Unix(0, 0))
	anim := chaikin.NewWithClock(pts, clock)
	anim.SetSpeed(*speed)
	anim.SetEase(*ease)
	drv := &fake.Driver{}

	dt := time.Second / time.Duration(max(1, *fps))
	for i := 0; i < *frames; i++ {
		clock.Advance(dt)
		frame := anim.Step()
		if err := drv.Write(frame); err != nil {
			log.Fatalf("driver write: %v", err)
		}
		fmt.Printf("[frame %04d] level=%d phase=%-8s t=%.2f points=%d\n",
			drv.Count, anim.Level(), anim.Phase(), anim.Progress(), len(frame))
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
