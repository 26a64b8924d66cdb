package catwave

import (
	"context"
	"errors"
	"fmt"

	"github.com/noriah/catwave/processor"
	"github.com/noriah/catwave/scene"
)

// MaxSampleSize is the largest number of frequency bins per frame.
const MaxSampleSize = 1 << 14

type SetupFunc func() error
type StartFunc func(ctx context.Context) (context.Context, error)
type CleanupFunc func() error

type Config struct {
	// The name of the backend from the input package
	Backend string
	// Where each backend source reads from. More than one are combined
	Paths []string
	// The number of frequency bins per frame
	SampleSize int
	// Decibel range of the source values. Equal values read them as
	// magnitudes in [0, 1]
	MinDb float64
	MaxDb float64
	// Average each frame with its neighbours
	Smoothing bool

	// The scene to compose
	Scene scene.Scene
	// First frame to process
	Start int
	// Number of frames to process, 0 runs to the end of the scene
	Frames int
	// Pace frames at the scene frame rate
	Realtime bool

	// Compose and write frames on several goroutines. The output must
	// accept concurrent writes. Ignored when Realtime is set
	UseThreaded bool

	// Function to call when setting up the pipeline
	SetupFunc SetupFunc
	// Function to call when starting the pipeline
	StartFunc StartFunc
	// Function to call when cleaning up the pipeline
	CleanupFunc CleanupFunc
	// Where to send each composition
	Output processor.Output
}

func NewZeroConfig() Config {
	return Config{
		SampleSize: 1024,
		Scene:      scene.Default(),
	}
}

func (cfg *Config) Validate() error {
	switch {
	case cfg.SampleSize < 1:
		return errors.New("sample size too small (1+ required)")

	case cfg.SampleSize > MaxSampleSize:
		return fmt.Errorf("sample size too large (%d max)", MaxSampleSize)

	case cfg.MinDb > cfg.MaxDb:
		return errors.New("min dB above max dB")

	case cfg.Start < 0:
		return errors.New("start frame is negative")

	case cfg.Frames < 0:
		return errors.New("frame count is negative")

	case cfg.Start >= cfg.Scene.Duration:
		return fmt.Errorf("start frame past the end of the scene (%d frames)", cfg.Scene.Duration)

	case cfg.Output == nil:
		return errors.New("no output")
	}

	if err := cfg.Scene.Validate(); err != nil {
		return fmt.Errorf("bad scene: %w", err)
	}

	return nil
}
