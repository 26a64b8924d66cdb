package processor

import (
	"context"
	"time"

	"github.com/noriah/catwave/input"
	"github.com/noriah/catwave/scene"

	"github.com/pkg/errors"
)

type Output interface {
	Write(scene.Composition) error
}

type Processor interface {
	Frames() int
	Process(context.Context) error
}

type Config struct {
	Scene    scene.Scene  // scene to compose
	Source   input.Source // frequency data
	Output   Output       // composition output
	Start    int          // first frame
	Frames   int          // number of frames, 0 runs to the end of the scene
	Realtime bool         // pace frames at the scene fps
	Workers  int          // threaded processor goroutines, 0 for one per cpu
}

type processor struct {
	sc  scene.Scene
	src input.Source
	out Output

	start    int
	stop     int
	realtime bool
}

func New(cfg Config) *processor {
	proc := &processor{
		sc:       cfg.Scene,
		src:      cfg.Source,
		out:      cfg.Output,
		start:    cfg.Start,
		stop:     cfg.Scene.Duration,
		realtime: cfg.Realtime,
	}

	if proc.start < 0 {
		proc.start = 0
	}

	if cfg.Frames > 0 && proc.start+cfg.Frames < proc.stop {
		proc.stop = proc.start + cfg.Frames
	}

	return proc
}

// Frames returns the number of frames Process will write.
func (proc *processor) Frames() int {
	if proc.stop < proc.start {
		return 0
	}
	return proc.stop - proc.start
}

// ProcessFrame composes one frame and writes it to the output.
func (proc *processor) ProcessFrame(frame int) error {
	freq, err := proc.src.Frame(frame, proc.sc.FPS)
	if err != nil {
		return errors.Wrapf(err, "failed to read frame %d", frame)
	}

	comp := scene.Compose(proc.sc, frame, freq)

	if err := proc.out.Write(comp); err != nil {
		return errors.Wrapf(err, "failed to write frame %d", frame)
	}

	return nil
}

// Process writes every frame in order. It returns early when ctx is done.
func (proc *processor) Process(ctx context.Context) error {
	var tick <-chan time.Time

	if proc.realtime && proc.sc.FPS > 0 {
		dur := time.Duration(float64(time.Second) / proc.sc.FPS)
		ticker := time.NewTicker(dur)
		defer ticker.Stop()

		tick = ticker.C
	}

	for frame := proc.start; frame < proc.stop; frame++ {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if err := proc.ProcessFrame(frame); err != nil {
			return err
		}

		if tick == nil {
			continue
		}

		select {
		case <-ctx.Done():
			return nil
		case <-tick:
		}
	}

	return nil
}
