// Package execread provides a source that reads binary frames from the
// standard output of a command.
package execread

import (
	"bufio"
	"context"
	"encoding/binary"
	"io"
	"math"
	"os"
	"os/exec"
	"sync"

	"github.com/noriah/catwave/input"
	"github.com/pkg/errors"
)

// Session reads frames of little-endian floats from a Cmd. Each frame holds
// cfg.Samples values. Frames are kept once read, so any frame can be asked
// for again.
type Session struct {
	// prevents cmd.Stderr from poiting to os.Stderr. false by default.
	DisconnectedStderr bool

	argv []string
	cfg  input.SessionConfig

	// maligned.
	f32mode bool

	mu     sync.Mutex
	cmd    *exec.Cmd
	cancel context.CancelFunc
	out    io.ReadCloser
	reader floatReader
	raw    []byte
	frames [][]float64
	done   bool
	silent []float64
}

// NewSession creates a new execread session. It never returns an error.
func NewSession(argv []string, f32mode bool, cfg input.SessionConfig) *Session {
	if len(argv) < 1 {
		panic("argv has no arg0")
	}

	return &Session{
		argv:    argv,
		cfg:     cfg,
		f32mode: f32mode,
		reader: floatReader{
			order: binary.LittleEndian,
			f64:   !f32mode,
		},
	}
}

// Start runs the command. It must be called before Frame.
func (s *Session) Start(ctx context.Context) error {
	if s.cfg.Samples < 1 {
		return errors.New("invalid sample count given")
	}

	ctx, s.cancel = context.WithCancel(ctx)

	cmd := exec.CommandContext(ctx, s.argv[0], s.argv[1:]...)

	if !s.DisconnectedStderr {
		cmd.Stderr = os.Stderr
	}

	o, err := cmd.StdoutPipe()
	if err != nil {
		s.cancel()
		return errors.Wrap(err, "failed to get stdout pipe")
	}

	if err := cmd.Start(); err != nil {
		s.cancel()
		return errors.Wrap(err, "failed to start "+s.argv[0])
	}

	bufsz := s.cfg.Samples * 4
	if !s.f32mode {
		bufsz *= 2
	}

	s.cmd = cmd
	s.out = o
	s.raw = make([]byte, bufsz)
	s.silent = make([]float64, s.cfg.Samples)

	return nil
}

// Frame returns frame, reading from the command until it is available.
// Frames past the end of the output are silent.
func (s *Session) Frame(frame int, _ float64) ([]float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.out == nil {
		return nil, errors.New("session not started")
	}

	for !s.done && frame >= len(s.frames) {
		if err := s.readFrame(); err != nil {
			return nil, err
		}
	}

	if frame >= 0 && frame < len(s.frames) {
		return s.frames[frame], nil
	}

	return s.silent, nil
}

func (s *Session) readFrame() error {
	_, err := io.ReadFull(s.out, s.raw)

	switch {
	case err == nil:
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		// a partial trailing frame is dropped
		s.done = true
		return nil
	default:
		return errors.Wrap(err, "failed to read frame")
	}

	s.reader.reset(s.raw)

	values := make([]float64, s.cfg.Samples)
	for n := range values {
		v := s.reader.next()

		if s.cfg.Decibels() {
			v = input.DecibelScale(v, s.cfg.MinDb, s.cfg.MaxDb)
		}

		values[n] = v
	}

	s.frames = append(s.frames, values)

	return nil
}

// Close stops the command.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cmd == nil {
		return nil
	}

	s.cancel()
	s.out.Close()

	// the command is killed when it has not finished on its own
	s.cmd.Wait()
	s.cmd = nil

	return nil
}

type floatReader struct {
	order binary.ByteOrder
	buf   []byte
	f64   bool
}

func (f *floatReader) reset(b []byte) {
	f.buf = b
}

func (f *floatReader) next() float64 {
	if f.f64 {
		b := f.buf[:8]
		f.buf = f.buf[8:]
		return math.Float64frombits(f.order.Uint64(b))
	}

	b := f.buf[:4]
	f.buf = f.buf[4:]
	return float64(math.Float32frombits(f.order.Uint32(b)))
}

// Encode writes values as little-endian floats, the format Session reads.
func Encode(w io.Writer, f32mode bool, values ...float64) error {
	bw := bufio.NewWriter(w)

	for _, v := range values {
		var err error
		if f32mode {
			err = binary.Write(bw, binary.LittleEndian, float32(v))
		} else {
			err = binary.Write(bw, binary.LittleEndian, v)
		}

		if err != nil {
			return err
		}
	}

	return bw.Flush()
}
