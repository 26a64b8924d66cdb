package input

import (
	"fmt"

	"github.com/pkg/errors"
)

type Backend interface {
	// Init should do nothing if called more than once.
	Init() error
	Close() error

	Open(SessionConfig) (Source, error)
}

type NamedBackend struct {
	Name string
	Backend
}

var Backends []NamedBackend

// RegisterBackend registers a backend globally. This function is not
// thread-safe, and most packages should call it on init().
func RegisterBackend(name string, b Backend) {
	Backends = append(Backends, NamedBackend{
		Name:    name,
		Backend: b,
	})
}

// Get all installed backend names.
func GetAllBackendNames() []string {
	out := make([]string, len(Backends))
	for i, backend := range Backends {
		out[i] = backend.Name
	}
	return out
}

// DefaultBackend is used when no backend is named.
func DefaultBackend() string {
	if HasBackend("synth") {
		return "synth"
	}

	if len(Backends) > 0 {
		return Backends[0].Name
	}

	return ""
}

// FindBackend is a helper function that finds a backend. It returns nil if the
// backend is not found.
func FindBackend(name string) Backend {
	for _, backend := range Backends {
		if backend.Name == name {
			return backend
		}
	}
	return nil
}

func HasBackend(name string) bool {
	return FindBackend(name) != nil
}

func InitBackend(bknd string) (Backend, error) {
	backend := FindBackend(bknd)
	if backend == nil {
		return nil, fmt.Errorf("backend not found: %q; check list-backends", bknd)
	}

	if err := backend.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize input backend")
	}

	return backend, nil
}

// OpenAll opens one source per path and merges them into one. No paths opens
// a single source with an empty path.
func OpenAll(backend Backend, cfg SessionConfig, paths []string) (Source, error) {
	if len(paths) == 0 {
		return backend.Open(cfg)
	}

	var sources []Source

	for _, path := range paths {
		sessCfg := cfg
		sessCfg.Path = path

		src, err := backend.Open(sessCfg)
		if err != nil {
			for _, s := range sources {
				s.Close()
			}
			return nil, errors.Wrapf(err, "failed to open source %q", path)
		}

		sources = append(sources, src)
	}

	if len(sources) == 1 {
		return sources[0], nil
	}

	return Combine(cfg.Samples, sources...), nil
}
