package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Canvas struct {
	Width  int `yaml:"width"`  // logical canvas width in px
	Height int `yaml:"height"` // logical canvas height in px
}

type Anim struct {
	Speed float64 `yaml:"speed"` // subdivision levels per second
	Ease  string  `yaml:"ease"`  // "linear" | "smooth" | "cubic"
}

type Config struct {
	Addr       string  `yaml:"addr"`
	FPS        int     `yaml:"fps"`
	DragRadius float64 `yaml:"drag_radius"` // px threshold for grabbing a control point

	Canvas Canvas `yaml:"canvas"`
	Anim   Anim   `yaml:"anim"`
}

// Default returns the settings of the original 800x600 canvas.
func Default() *Config {
	return &Config{
		Addr:       ":8080",
		FPS:        60,
		DragRadius: 20,
		Canvas:     Canvas{Width: 800, Height: 600},
		Anim:       Anim{Speed: 1.0, Ease: "linear"},
	}
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
