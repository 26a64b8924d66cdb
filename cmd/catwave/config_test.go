package main

import (
	"testing"

	"github.com/noriah/catwave/scene"
)

func TestConfigScene(t *testing.T) {
	t.Parallel()

	cfg := newZeroConfig()
	if err := cfg.validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	sc, err := cfg.scene()
	if err != nil {
		t.Fatalf("scene() error = %v", err)
	}

	if len(sc.Visuals) != len(scene.Default().Visuals) {
		t.Errorf("default run does not use the default scene")
	}

	cfg.single = true
	cfg.width, cfg.height = 300, 120
	cfg.lines = 3
	cfg.colors = []string{"red", "teal"}
	cfg.frameRate = 24
	cfg.duration = 48
	cfg.ease = "linear"

	sc, err = cfg.scene()
	if err != nil {
		t.Fatalf("scene() error = %v", err)
	}

	if sc.FPS != 24 || sc.Duration != 48 || sc.Width != 300 || sc.Height != 120 {
		t.Errorf("single scene = %vx%v at %v fps for %d frames", sc.Width, sc.Height, sc.FPS, sc.Duration)
	}

	if len(sc.Visuals) != 1 || sc.Visuals[0].Wave.Lines != 3 {
		t.Fatalf("single scene visuals = %+v", sc.Visuals)
	}

	if got := sc.Visuals[0].Wave.LineColor.At(1); got != "teal" {
		t.Errorf("second line color = %q, want teal", got)
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	var tests = []struct {
		name string
		edit func(*config)
	}{
		{"format", func(c *config) { c.format = "gif" }},
		{"fps", func(c *config) { c.frameRate = -1 }},
		{"duration", func(c *config) { c.duration = -5 }},
		{"ease", func(c *config) { c.ease = "bounce" }},
	}

	for _, tt := range tests {
		cfg := newZeroConfig()
		tt.edit(&cfg)

		if err := cfg.validate(); err == nil {
			t.Errorf("%s: validate() accepted a bad value", tt.name)
		}
	}

	cfg := newZeroConfig()
	cfg.single = true
	cfg.sections = 0

	if _, err := cfg.scene(); err == nil {
		t.Error("scene() accepted zero sections")
	}
}
