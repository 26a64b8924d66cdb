// Package command reads frames from the output of another program, such as
// an analyzer that writes one spectrum per frame.
package command

import (
	"context"
	"strings"

	"github.com/noriah/catwave/input"
	"github.com/noriah/catwave/input/common/execread"

	"github.com/pkg/errors"
)

func init() {
	input.RegisterBackend("command", Backend{})
	input.RegisterBackend("command-f32", Backend{F32: true})
}

// Backend runs the session path as a command line. Its stdout must carry
// little-endian float64 values, or float32 values when F32 is set.
type Backend struct {
	F32 bool
}

func (b Backend) Init() error {
	return nil
}

func (b Backend) Close() error {
	return nil
}

func (b Backend) Open(cfg input.SessionConfig) (input.Source, error) {
	argv := strings.Fields(cfg.Path)
	if len(argv) == 0 {
		return nil, errors.New("no command given; pass it as the path")
	}

	s := execread.NewSession(argv, b.F32, cfg)

	if err := s.Start(context.Background()); err != nil {
		return nil, err
	}

	return s, nil
}
