package catwave

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/noriah/catwave/scene"
	"github.com/noriah/catwave/wave"

	_ "github.com/noriah/catwave/input/synth"
	_ "github.com/noriah/catwave/input/text"
)

type collectOutput struct {
	comps []scene.Composition
}

func (co *collectOutput) Write(comp scene.Composition) error {
	co.comps = append(co.comps, comp)
	return nil
}

func TestRun(t *testing.T) {
	t.Parallel()

	out := &collectOutput{}

	var setup, started, cleaned bool

	cfg := NewZeroConfig()
	cfg.Backend = "synth"
	cfg.Frames = 3
	cfg.Start = 30
	cfg.Smoothing = true
	cfg.Output = out
	cfg.SetupFunc = func() error {
		setup = true
		return nil
	}
	cfg.StartFunc = func(ctx context.Context) (context.Context, error) {
		started = true
		return ctx, nil
	}
	cfg.CleanupFunc = func() error {
		cleaned = true
		return nil
	}

	if err := Run(&cfg, context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !setup || !started || !cleaned {
		t.Errorf("hooks called: setup %v, start %v, cleanup %v", setup, started, cleaned)
	}

	if len(out.comps) != 3 {
		t.Fatalf("wrote %d compositions, want 3", len(out.comps))
	}

	for idx, comp := range out.comps {
		if comp.Frame != 30+idx {
			t.Errorf("composition %d is frame %d", idx, comp.Frame)
		}

		if len(comp.Layers) != 2 {
			t.Errorf("frame %d has %d wave layers, want 2", comp.Frame, len(comp.Layers))
		}
	}
}

func TestRunText(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "spectrum.txt")
	data := "# two frames\n0.05 0.05 0.05 0.05\n0.2 0.2 0.2 0.2\n"

	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	out := &collectOutput{}

	cfg := NewZeroConfig()
	cfg.Backend = "text"
	cfg.Paths = []string{path}
	cfg.SampleSize = 4
	cfg.Scene = scene.Single(wave.NewVisualization(400, 200), 30, 2)
	cfg.Output = out

	if err := Run(&cfg, context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(out.comps) != 2 {
		t.Fatalf("wrote %d compositions, want 2", len(out.comps))
	}

	// a louder frame gives taller waves
	quiet := maxY(out.comps[0])
	loud := maxY(out.comps[1])

	if !(loud > quiet) {
		t.Errorf("loud frame peak %d not above quiet frame peak %d", loud, quiet)
	}
}

func maxY(comp scene.Composition) int {
	var peak int
	for _, layer := range comp.Layers {
		for _, line := range layer.Wave.Lines {
			for _, p := range line.Points {
				if p.Y > peak {
					peak = p.Y
				}
				if -p.Y > peak {
					peak = -p.Y
				}
			}
		}
	}
	return peak
}

func TestRunUnknownBackend(t *testing.T) {
	t.Parallel()

	cfg := NewZeroConfig()
	cfg.Backend = "nope"
	cfg.Output = &collectOutput{}

	if err := Run(&cfg, context.Background()); err == nil {
		t.Error("Run() accepted an unknown backend")
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	var tests = []struct {
		name string
		edit func(*Config)
		ok   bool
	}{
		{"default", func(*Config) {}, true},
		{"no output", func(c *Config) { c.Output = nil }, false},
		{"no samples", func(c *Config) { c.SampleSize = 0 }, false},
		{"huge samples", func(c *Config) { c.SampleSize = MaxSampleSize + 1 }, false},
		{"inverted db", func(c *Config) { c.MinDb, c.MaxDb = 0, -60 }, false},
		{"db range", func(c *Config) { c.MinDb, c.MaxDb = -90, -10 }, true},
		{"negative start", func(c *Config) { c.Start = -1 }, false},
		{"start past end", func(c *Config) { c.Start = c.Scene.Duration }, false},
		{"negative frames", func(c *Config) { c.Frames = -2 }, false},
		{"bad scene", func(c *Config) { c.Scene.FPS = 0 }, false},
	}

	for _, tt := range tests {
		cfg := NewZeroConfig()
		cfg.Output = &collectOutput{}
		tt.edit(&cfg)

		if err := cfg.Validate(); (err == nil) != tt.ok {
			t.Errorf("%s: Validate() error = %v, want ok %v", tt.name, err, tt.ok)
		}
	}
}

type syncOutput struct {
	mu     sync.Mutex
	frames map[int]bool
}

func (so *syncOutput) Write(comp scene.Composition) error {
	so.mu.Lock()
	defer so.mu.Unlock()

	so.frames[comp.Frame] = true
	return nil
}

func TestRunThreaded(t *testing.T) {
	t.Parallel()

	out := &syncOutput{frames: map[int]bool{}}

	cfg := NewZeroConfig()
	cfg.Backend = "synth"
	cfg.Frames = 16
	cfg.UseThreaded = true
	cfg.Output = out

	if err := Run(&cfg, context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	for frame := 0; frame < 16; frame++ {
		if !out.frames[frame] {
			t.Errorf("frame %d not written", frame)
		}
	}
}
