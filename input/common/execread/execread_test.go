package execread

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/noriah/catwave/input"
)

// catFrames writes values to a file and returns a session that cats it.
func catFrames(t *testing.T, f32mode bool, cfg input.SessionConfig, values ...float64) *Session {
	t.Helper()

	if _, err := exec.LookPath("cat"); err != nil {
		t.Skip("cat not available")
	}

	var buf bytes.Buffer
	if err := Encode(&buf, f32mode, values...); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "frames.bin")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewSession([]string{"cat", path}, f32mode, cfg)
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	t.Cleanup(func() { s.Close() })

	return s
}

func TestSessionFrames(t *testing.T) {
	t.Parallel()

	for _, f32mode := range []bool{false, true} {
		s := catFrames(t, f32mode, input.SessionConfig{Samples: 2},
			0.25, 0.5,
			0.75, 1,
			0.125, // partial frame
		)

		// out of order on purpose
		got, err := s.Frame(1, 60)
		if err != nil {
			t.Fatalf("Frame(1) error = %v", err)
		}

		if got[0] != 0.75 || got[1] != 1 {
			t.Errorf("f32 %v: frame 1 = %v", f32mode, got)
		}

		if got, _ = s.Frame(0, 60); got[0] != 0.25 || got[1] != 0.5 {
			t.Errorf("f32 %v: frame 0 = %v", f32mode, got)
		}

		got, err = s.Frame(2, 60)
		if err != nil {
			t.Fatalf("Frame(2) error = %v", err)
		}

		if len(got) != 2 || got[0] != 0 || got[1] != 0 {
			t.Errorf("f32 %v: frame past the end = %v, want silence", f32mode, got)
		}
	}
}

func TestSessionDecibels(t *testing.T) {
	t.Parallel()

	s := catFrames(t, false, input.SessionConfig{Samples: 3, MinDb: -60, MaxDb: 0},
		-60, -30, 10)

	got, err := s.Frame(0, 60)
	if err != nil {
		t.Fatalf("Frame() error = %v", err)
	}

	want := []float64{0, 0.5, 1}
	for idx := range want {
		if got[idx] != want[idx] {
			t.Errorf("bin %d = %v, want %v", idx, got[idx], want[idx])
		}
	}
}

func TestSessionNotStarted(t *testing.T) {
	t.Parallel()

	s := NewSession([]string{"cat"}, false, input.SessionConfig{Samples: 4})

	if _, err := s.Frame(0, 60); err == nil {
		t.Error("Frame() before Start() did not fail")
	}

	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
