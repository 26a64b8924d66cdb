package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/noriah/catwave"
	"github.com/noriah/catwave/graphic"
	"github.com/noriah/catwave/input"
	"github.com/noriah/catwave/scene"
	"github.com/noriah/catwave/wave"

	_ "github.com/noriah/catwave/input/all"

	"github.com/integrii/flaggy"
)

// AppName is the app name
const AppName = "catwave"

// AppDesc is the app description
const AppDesc = "Audio reactive wave renderer"

// AppSite is the app website
const AppSite = "https://github.com/noriah/catwave"

var version = "unknown"

func main() {
	log.SetFlags(0)

	cfg := newZeroConfig()

	if doFlags(&cfg) {
		return
	}

	chk(cfg.validate(), "invalid config")

	sc, err := cfg.scene()
	chk(err, "invalid scene")

	catwaveCfg := catwave.Config{
		Backend:     cfg.backend,
		Paths:       cfg.paths,
		SampleSize:  cfg.sampleSize,
		MinDb:       cfg.minDb,
		MaxDb:       cfg.maxDb,
		Smoothing:   cfg.smoothing,
		Scene:       sc,
		Start:       cfg.start,
		Frames:      cfg.frames,
		Realtime:    cfg.realtime,
		UseThreaded: cfg.useThreaded,
	}

	switch cfg.format {
	case FormatSVG:
		sw, err := graphic.NewSVGWriter(cfg.outDir)
		chk(err, "failed to set up output")

		sw.Background = cfg.background
		catwaveCfg.Output = sw

	case FormatPNG:
		rw, err := graphic.NewRasterWriter(cfg.outDir)
		chk(err, "failed to set up output")

		if cfg.background != "" {
			bg, err := graphic.ParseColor(cfg.background)
			chk(err, "invalid background")
			rw.Background = bg
		}

		catwaveCfg.Output = rw

	case FormatTerm:
		display := graphic.NewTerminal()

		catwaveCfg.Realtime = true
		catwaveCfg.UseThreaded = false
		catwaveCfg.Output = display
		catwaveCfg.SetupFunc = display.Init
		catwaveCfg.StartFunc = func(ctx context.Context) (context.Context, error) {
			return display.Start(ctx), nil
		}
		catwaveCfg.CleanupFunc = func() error {
			display.Stop()
			return display.Close()
		}
	}

	// Root Context
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	chk(catwave.Run(&catwaveCfg, ctx), "failed to run catwave")
}

func doFlags(cfg *config) bool {

	parser := flaggy.NewParser(AppName)
	parser.Description = AppDesc
	parser.AdditionalHelpPrepend = AppSite
	parser.Version = version

	listBackendsCmd := flaggy.Subcommand{
		Name:                 "list-backends",
		ShortName:            "lb",
		Description:          "list all supported backends",
		AdditionalHelpAppend: "\nuse the full name after the '-'",
	}

	parser.AttachSubcommand(&listBackendsCmd, 1)

	listKindsCmd := flaggy.Subcommand{
		Name:        "list-kinds",
		ShortName:   "lk",
		Description: "list the visual kinds of the default scene",
	}

	parser.AttachSubcommand(&listKindsCmd, 1)

	listEasesCmd := flaggy.Subcommand{
		Name:        "list-eases",
		ShortName:   "le",
		Description: "list the easing functions for waves",
	}

	parser.AttachSubcommand(&listEasesCmd, 1)

	parser.String(&cfg.backend, "b", "backend", "backend name")
	parser.StringSlice(&cfg.paths, "p", "path", "frame source path (repeat to combine)")
	parser.Int(&cfg.sampleSize, "n", "samples", "frequency bins per frame")
	parser.Float64(&cfg.minDb, "mindb", "min-db", "bottom of the decibel range")
	parser.Float64(&cfg.maxDb, "maxdb", "max-db", "top of the decibel range (equal to min-db reads magnitudes)")
	parser.Bool(&cfg.smoothing, "sm", "smoothing", "average each frame with its neighbours")

	parser.String(&cfg.outDir, "o", "out", "output directory for frame files")
	parser.String(&cfg.format, "fmt", "format", "output format (svg, png, term)")
	parser.String(&cfg.background, "bg", "background", "background color")
	parser.Bool(&cfg.realtime, "rt", "realtime", "write frames at the frame rate")
	parser.Bool(&cfg.useThreaded, "th", "threaded", "write frame files on several goroutines")

	parser.Float64(&cfg.frameRate, "f", "fps", "frame rate (0 keeps the scene rate)")
	parser.Int(&cfg.duration, "d", "duration", "scene length in frames (0 keeps the scene length)")
	parser.Int(&cfg.start, "s", "start", "first frame to write")
	parser.Int(&cfg.frames, "c", "frames", "number of frames to write (0 for all)")

	parser.Bool(&cfg.single, "si", "single", "render a single wave from the flags below")
	parser.Float64(&cfg.width, "W", "width", "wave width")
	parser.Float64(&cfg.height, "H", "height", "wave height")
	parser.Int(&cfg.sections, "sc", "sections", "samples per line [1, +Inf)")
	parser.Int(&cfg.lines, "l", "lines", "number of lines")
	parser.Float64(&cfg.lineGap, "g", "gap", "offset between lines in pixels")
	parser.StringSlice(&cfg.colors, "col", "color", "line color (repeat to cycle)")
	parser.Float64(&cfg.thickness, "t", "thickness", "line thickness")
	parser.Float64(&cfg.topRound, "tr", "top-roundness", "roundness of peaks (0-1)")
	parser.Float64(&cfg.bottomRound, "br", "bottom-roundness", "roundness of valleys (0-1)")
	parser.Float64(&cfg.speed, "sp", "speed", "scroll speed in pixels per second")
	parser.Float64(&cfg.sensitivity, "se", "sensitivity", "amplitude gain on the mean magnitude")
	parser.String(&cfg.ease, "e", "ease", "easing function")

	defaultColors := cfg.colors

	chk(parser.Parse(), "failed to parse arguments")

	// flaggy appends to the default slice
	if len(cfg.colors) > len(defaultColors) {
		cfg.colors = cfg.colors[len(defaultColors):]
	}

	switch {
	case listBackendsCmd.Used:
		for _, backend := range input.Backends {
			fmt.Printf("- %s\n", backend.Name)
		}

		return true

	case listKindsCmd.Used:
		fmt.Printf("visual kinds. '*' marks kinds drawn by %s\n", AppName)

		for _, kind := range scene.Kinds() {
			star := ' '
			if kind == scene.Wave {
				star = '*'
			}

			fmt.Printf("- %s %c\n", kind, star)
		}

		return true

	case listEasesCmd.Used:
		for _, name := range wave.EaseNames() {
			fmt.Printf("- %s\n", name)
		}

		return true
	}

	return false
}

func chk(err error, wrap string) {
	if err != nil {
		log.Fatalln(wrap+": ", err)
	}
}
