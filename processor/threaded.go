package processor

import (
	"context"
	"runtime"
	"sync"

	"github.com/noriah/catwave/scene"

	"github.com/pkg/errors"
)

type job struct {
	frame int
	freq  []float64
}

// threadedProcessor composes and writes frames on several goroutines. The
// source is still read in frame order on the calling goroutine. The output
// must accept concurrent writes, and frames may reach it out of order.
type threadedProcessor struct {
	*processor

	workers int

	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc

	errOnce sync.Once
	err     error
}

func NewThreaded(cfg Config) *threadedProcessor {
	vis := &threadedProcessor{
		processor: New(cfg),
		workers:   cfg.Workers,
	}

	if vis.workers < 1 {
		vis.workers = runtime.NumCPU()
	}

	return vis
}

func (vis *threadedProcessor) fail(err error) {
	vis.errOnce.Do(func() {
		vis.err = err
		vis.cancel()
	})
}

func (vis *threadedProcessor) frameProcessor(jobs <-chan job) {
	defer vis.wg.Done()

	for {
		var j job
		var ok bool

		select {
		case <-vis.ctx.Done():
			return
		case j, ok = <-jobs:
			if !ok {
				return
			}
		}

		comp := scene.Compose(vis.sc, j.frame, j.freq)

		if err := vis.out.Write(comp); err != nil {
			vis.fail(errors.Wrapf(err, "failed to write frame %d", j.frame))
			return
		}
	}
}

// Process writes every frame. It returns the first error of any worker, or
// nil early when ctx is done.
func (vis *threadedProcessor) Process(ctx context.Context) error {
	vis.ctx, vis.cancel = context.WithCancel(ctx)
	defer vis.cancel()

	jobs := make(chan job, vis.workers)

	vis.wg.Add(vis.workers)
	for i := 0; i < vis.workers; i++ {
		go vis.frameProcessor(jobs)
	}

feed:
	for frame := vis.start; frame < vis.stop; frame++ {
		freq, err := vis.src.Frame(frame, vis.sc.FPS)
		if err != nil {
			vis.fail(errors.Wrapf(err, "failed to read frame %d", frame))
			break
		}

		// the source may reuse its buffer on the next call
		j := job{frame: frame, freq: append([]float64(nil), freq...)}

		select {
		case <-vis.ctx.Done():
			break feed
		case jobs <- j:
		}
	}

	close(jobs)
	vis.wg.Wait()

	return vis.err
}
