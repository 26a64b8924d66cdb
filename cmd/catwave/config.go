package main

import (
	"errors"
	"fmt"

	"github.com/noriah/catwave/scene"
	"github.com/noriah/catwave/wave"
)

// Output formats
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatTerm = "term"
)

// Config is a temporary struct to define parameters
type config struct {
	// Backend is the backend name from list-backends
	backend string
	// Paths are the frame sources, combined when more than one
	paths []string
	// SampleSize is the number of frequency bins per frame
	sampleSize int
	// MinDb and MaxDb read sources as decibels when they differ
	minDb float64
	maxDb float64
	// Smoothing averages each frame with its neighbours
	smoothing bool

	// OutDir is where frame files go
	outDir string
	// Format is one of svg, png or term
	format string
	// Background fills every frame. Empty leaves it transparent
	background string
	// Realtime paces the frames at the frame rate
	realtime bool
	// Use threaded processor
	useThreaded bool

	// FrameRate overrides the scene frame rate when positive
	frameRate float64
	// Duration overrides the scene length in frames when positive
	duration int
	// Start is the first frame written
	start int
	// Frames is the number of frames written, 0 for all
	frames int

	// Single renders one full-canvas wave from the flags below
	single bool

	width       float64
	height      float64
	sections    int
	lines       int
	lineGap     float64
	colors      []string
	thickness   float64
	topRound    float64
	bottomRound float64
	speed       float64
	sensitivity float64
	ease        string
}

// NewZeroConfig returns a zero config
// it is the "default"
func newZeroConfig() config {
	vis := wave.NewVisualization(scene.DefaultWidth, scene.DefaultHeight)

	return config{
		sampleSize:  1024,
		outDir:      "frames",
		format:      FormatSVG,
		width:       vis.Width,
		height:      vis.Height,
		sections:    vis.Sections,
		lines:       vis.Lines,
		lineGap:     vis.LineGap,
		colors:      []string(vis.LineColor),
		thickness:   vis.LineThickness,
		topRound:    vis.TopRoundness,
		bottomRound: vis.BottomRoundness,
		speed:       vis.OffsetPixelSpeed,
		sensitivity: vis.Sensitivity,
		ease:        "cubic",
	}
}

func (cfg *config) validate() error {
	switch cfg.format {
	case FormatSVG, FormatPNG, FormatTerm:
	default:
		return fmt.Errorf("unknown format %q (svg, png or term)", cfg.format)
	}

	switch {
	case cfg.frameRate < 0:
		return errors.New("frame rate is negative")

	case cfg.duration < 0:
		return errors.New("duration is negative")
	}

	if _, ok := wave.EaseByName(cfg.ease); !ok {
		return fmt.Errorf("unknown ease %q; check list-eases", cfg.ease)
	}

	return nil
}

// scene builds the scene to render.
func (cfg *config) scene() (scene.Scene, error) {
	var sc scene.Scene

	if cfg.single {
		vis := wave.NewVisualization(cfg.width, cfg.height)
		vis.Sections = cfg.sections
		vis.Lines = cfg.lines
		vis.LineGap = cfg.lineGap
		vis.LineColor = wave.Palette(cfg.colors)
		vis.LineThickness = cfg.thickness
		vis.TopRoundness = cfg.topRound
		vis.BottomRoundness = cfg.bottomRound
		vis.OffsetPixelSpeed = cfg.speed
		vis.Sensitivity = cfg.sensitivity
		vis.Ease, _ = wave.EaseByName(cfg.ease)

		sc = scene.Single(vis, scene.DefaultFPS, scene.DefaultDuration)
	} else {
		sc = scene.Default()
	}

	if cfg.frameRate > 0 {
		sc.FPS = cfg.frameRate
	}

	if cfg.duration > 0 {
		sc.Duration = cfg.duration
	}

	if err := sc.Validate(); err != nil {
		return scene.Scene{}, err
	}

	return sc, nil
}
