// Package catwave drives a scene from a frequency source into an output,
// one composition per frame.
package catwave

import (
	"context"
	"log"

	"github.com/noriah/catwave/input"
	"github.com/noriah/catwave/processor"

	"github.com/pkg/errors"
)

// Run opens the configured sources and writes every frame of the scene to
// the output. It returns when the frames are done or ctx is cancelled.
func Run(cfg *Config, ctx context.Context) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	name := cfg.Backend
	if name == "" {
		name = input.DefaultBackend()
	}

	backend, err := input.InitBackend(name)
	if err != nil {
		return err
	}
	defer backend.Close()

	sessConfig := input.SessionConfig{
		Samples: cfg.SampleSize,
		MinDb:   cfg.MinDb,
		MaxDb:   cfg.MaxDb,
	}

	src, err := input.OpenAll(backend, sessConfig, cfg.Paths)
	if err != nil {
		return errors.Wrap(err, "failed to start the input backend")
	}
	defer src.Close()

	if cfg.Smoothing {
		src = input.Smooth(src)
	}

	for _, kind := range cfg.Scene.Skipped() {
		log.Printf("skipping %s visuals: not drawn by catwave", kind)
	}

	if cfg.SetupFunc != nil {
		if err := cfg.SetupFunc(); err != nil {
			return err
		}
	}

	if cfg.CleanupFunc != nil {
		defer cfg.CleanupFunc()
	}

	if cfg.StartFunc != nil {
		if ctx, err = cfg.StartFunc(ctx); err != nil {
			return err
		}
	}

	procConfig := processor.Config{
		Scene:    cfg.Scene,
		Source:   src,
		Output:   cfg.Output,
		Start:    cfg.Start,
		Frames:   cfg.Frames,
		Realtime: cfg.Realtime,
	}

	var proc processor.Processor

	if cfg.UseThreaded && !cfg.Realtime {
		proc = processor.NewThreaded(procConfig)
	} else {
		proc = processor.New(procConfig)
	}

	if err := proc.Process(ctx); err != nil {
		return errors.Wrap(err, "failed to process frames")
	}

	return nil
}
