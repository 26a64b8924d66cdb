package text

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/noriah/catwave/input"
)

const frames = `# magnitudes
0.1 0.2 0.3

0.4 0.5 0.6
0.7
`

func TestRead(t *testing.T) {
	t.Parallel()

	src, err := Read(strings.NewReader(frames), input.SessionConfig{Samples: 3})
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if got := src.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}

	tests := []struct {
		frame int
		want  []float64
	}{
		{frame: 0, want: []float64{0.1, 0.2, 0.3}},
		{frame: 1, want: []float64{0.4, 0.5, 0.6}},
		{frame: 2, want: []float64{0.7, 0, 0}},
		{frame: 9, want: []float64{0, 0, 0}},
		{frame: -1, want: []float64{0, 0, 0}},
	}

	for _, tt := range tests {
		got, err := src.Frame(tt.frame, 30)
		if err != nil {
			t.Fatalf("Frame(%d) error = %v", tt.frame, err)
		}

		if len(got) != len(tt.want) {
			t.Fatalf("Frame(%d) = %v, want %v", tt.frame, got, tt.want)
		}

		for i := range tt.want {
			if math.Abs(got[i]-tt.want[i]) > 1e-9 {
				t.Errorf("Frame(%d)[%d] = %v, want %v", tt.frame, i, got[i], tt.want[i])
			}
		}
	}
}

func TestReadDecibels(t *testing.T) {
	t.Parallel()

	src, err := Read(strings.NewReader("-100 -65 -30 0\n"), input.SessionConfig{
		MinDb: -100,
		MaxDb: -30,
	})
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	got, _ := src.Frame(0, 60)
	want := []float64{0, 0.5, 1, 1}

	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("value %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReadInvalid(t *testing.T) {
	t.Parallel()

	if _, err := Read(strings.NewReader("0.1 loud\n"), input.SessionConfig{}); err == nil {
		t.Error("Read() accepted a non-numeric value")
	}
}

func TestBackendOpen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "frames.txt")
	if err := os.WriteFile(path, []byte(frames), 0o644); err != nil {
		t.Fatal(err)
	}

	src, err := Backend{}.Open(input.SessionConfig{Path: path, Samples: 3})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer src.Close()

	got, _ := src.Frame(1, 30)
	if got[2] != 0.6 {
		t.Errorf("Frame(1) = %v", got)
	}

	if _, err := (Backend{}).Open(input.SessionConfig{Path: filepath.Join(path, "nope")}); err == nil {
		t.Error("Open() accepted a missing file")
	}
}
