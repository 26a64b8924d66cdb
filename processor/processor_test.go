package processor

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/noriah/catwave/scene"
	"github.com/noriah/catwave/wave"
)

const BinSize = 512

type testSource struct {
	buf []float64
}

func (ts *testSource) Frame(frame int, _ float64) ([]float64, error) {
	if frame < 0 {
		return nil, errors.New("negative frame")
	}

	for idx := range ts.buf {
		ts.buf[idx] = float64(frame%10) / 10
	}

	return ts.buf, nil
}

func (ts *testSource) Close() error {
	return nil
}

type testOutput struct {
	frames []int
	layers int
	cancel context.CancelFunc
	failAt int
}

func (to *testOutput) Write(comp scene.Composition) error {
	if to.failAt > 0 && comp.Frame == to.failAt {
		return errors.New("disk full")
	}

	to.frames = append(to.frames, comp.Frame)
	to.layers += len(comp.Layers)

	if to.cancel != nil && len(to.frames) == 3 {
		to.cancel()
	}

	return nil
}

func testScene(duration int) scene.Scene {
	return scene.Single(wave.NewVisualization(400, 200), 60, duration)
}

func TestProcess(t *testing.T) {
	t.Parallel()

	out := &testOutput{}

	proc := New(Config{
		Scene:  testScene(20),
		Source: &testSource{buf: make([]float64, BinSize)},
		Output: out,
		Start:  5,
		Frames: 4,
	})

	if got := proc.Frames(); got != 4 {
		t.Errorf("Frames() = %d, want 4", got)
	}

	if err := proc.Process(context.Background()); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	want := []int{5, 6, 7, 8}
	if len(out.frames) != len(want) {
		t.Fatalf("wrote frames %v, want %v", out.frames, want)
	}

	for i := range want {
		if out.frames[i] != want[i] {
			t.Errorf("frame %d = %d, want %d", i, out.frames[i], want[i])
		}
	}

	if out.layers != len(want) {
		t.Errorf("wrote %d layers, want %d", out.layers, len(want))
	}
}

func TestProcessRunsToSceneEnd(t *testing.T) {
	t.Parallel()

	out := &testOutput{}

	proc := New(Config{
		Scene:  testScene(12),
		Source: &testSource{buf: make([]float64, BinSize)},
		Output: out,
		Start:  10,
		Frames: 100,
	})

	if err := proc.Process(context.Background()); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if len(out.frames) != 2 {
		t.Errorf("wrote frames %v, want [10 11]", out.frames)
	}
}

func TestProcessCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := &testOutput{cancel: cancel}

	proc := New(Config{
		Scene:    testScene(1000),
		Source:   &testSource{buf: make([]float64, BinSize)},
		Output:   out,
		Realtime: true,
	})

	if err := proc.Process(ctx); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if len(out.frames) != 3 {
		t.Errorf("wrote %d frames after cancel, want 3", len(out.frames))
	}
}

func TestProcessOutputError(t *testing.T) {
	t.Parallel()

	proc := New(Config{
		Scene:  testScene(10),
		Source: &testSource{buf: make([]float64, BinSize)},
		Output: &testOutput{failAt: 4},
	})

	if err := proc.Process(context.Background()); err == nil {
		t.Error("Process() did not report the output error")
	}
}

type syncOutput struct {
	mu    sync.Mutex
	comps map[int]scene.Composition
	fail  bool
}

func (so *syncOutput) Write(comp scene.Composition) error {
	so.mu.Lock()
	defer so.mu.Unlock()

	if so.fail {
		return errors.New("disk full")
	}

	so.comps[comp.Frame] = comp
	return nil
}

func TestThreaded(t *testing.T) {
	t.Parallel()

	sc := testScene(30)
	out := &syncOutput{comps: map[int]scene.Composition{}}

	proc := NewThreaded(Config{
		Scene:   sc,
		Source:  &testSource{buf: make([]float64, BinSize)},
		Output:  out,
		Start:   2,
		Frames:  20,
		Workers: 4,
	})

	if err := proc.Process(context.Background()); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	var frames []int
	for frame := range out.comps {
		frames = append(frames, frame)
	}
	sort.Ints(frames)

	if len(frames) != 20 || frames[0] != 2 || frames[19] != 21 {
		t.Fatalf("wrote frames %v, want 2 through 21", frames)
	}

	// every frame must be composed from its own data even though the
	// source reuses its buffer
	ref := &testSource{buf: make([]float64, BinSize)}

	for _, frame := range frames {
		freq, _ := ref.Frame(frame, sc.FPS)
		want := scene.Compose(sc, frame, freq).Layers[0].Wave.Lines[0].Points
		got := out.comps[frame].Layers[0].Wave.Lines[0].Points

		if len(got) != len(want) {
			t.Fatalf("frame %d has %d points, want %d", frame, len(got), len(want))
		}

		for idx := range want {
			if got[idx] != want[idx] {
				t.Errorf("frame %d point %d = %v, want %v", frame, idx, got[idx], want[idx])
				break
			}
		}
	}
}

func TestThreadedError(t *testing.T) {
	t.Parallel()

	proc := NewThreaded(Config{
		Scene:  testScene(50),
		Source: &testSource{buf: make([]float64, BinSize)},
		Output: &syncOutput{fail: true},
	})

	if err := proc.Process(context.Background()); err == nil {
		t.Error("Process() did not report the output error")
	}

	proc = NewThreaded(Config{
		Scene:  testScene(50),
		Source: &testSource{buf: make([]float64, BinSize)},
		Output: &syncOutput{comps: map[int]scene.Composition{}},
		Start:  -4,
	})

	// start is clamped, so no negative frame reaches the source
	if err := proc.Process(context.Background()); err != nil {
		t.Errorf("Process() error = %v", err)
	}
}

func BenchmarkProcessFrame(b *testing.B) {
	proc := New(Config{
		Scene:  scene.Default(),
		Source: &testSource{buf: make([]float64, BinSize)},
		Output: &testOutput{},
	})

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		proc.ProcessFrame(i % scene.DefaultDuration)
	}
}
