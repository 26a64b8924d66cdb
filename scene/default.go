package scene

import "github.com/noriah/catwave/wave"

// Default composition settings
const (
	DefaultWidth    = 1920
	DefaultHeight   = 1080
	DefaultFPS      = 60
	DefaultDuration = 37 * 30
	DefaultPortion  = 0.7
)

// Default returns the stock composition: a wall of bars, hills and radial
// bars with two wave visuals along the top.
func Default() Scene {
	var crest = wave.NewVisualization(280*2, 125*2)
	crest.OffsetPixelSpeed = 200
	crest.LineColor = wave.Palette{"#EE8482", "teal"}
	crest.LineGap = (2 * 280) / 8
	crest.TopRoundness = 0.2
	crest.BottomRoundness = 0.4
	crest.Sections = 8

	var ripple = wave.NewVisualization(280*2, 125*2)
	ripple.LineColor = wave.Palette{"#EE8482"}
	ripple.Lines = 6
	ripple.LineGap = 6
	ripple.Sections = 10
	ripple.OffsetPixelSpeed = -100

	return Scene{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		FPS:      DefaultFPS,
		Duration: DefaultDuration,
		Portion:  DefaultPortion,
		Visuals: []Visual{
			{Kind: Bars, Left: 32, Top: 200 * 2, Width: 560, Height: 120},
			{Kind: Bars, Left: 32, Top: 287 * 2, Width: 560, Height: 120},
			{Kind: Bars, Left: 32, Top: 382 * 2, Width: 560, Height: 120},
			{Kind: Bars, Left: 32, Top: 458 * 2, Width: 560, Height: 120},
			{Kind: Bars, Left: 388 * 2, Top: 198 * 2, Width: 297 * 2, Height: 70 * 2},
			{Kind: Bars, Left: 530 * 2, Top: 396 * 2, Width: 420 * 2, Height: 52 * 2},
			{Kind: RadialBars, Left: 325 * 2, Top: 273 * 2, Width: 400, Height: 400},
			{Kind: Hills, Left: 675 * 2, Top: 309 * 2, Width: 256 * 2, Height: 54 * 2},
			{Kind: Hills, Left: 600 * 2, Top: 20 * 2, Width: 353 * 2, Height: 72 * 2},
			{Kind: Hills, Left: 640 * 2, Top: 120 * 2, Width: 304 * 2, Height: 40 * 2},
			{Kind: Hills, Left: 420 * 2, Top: 470 * 2, Width: 400 * 2, Height: 60 * 2},
			{Kind: Wave, Left: 20 * 2, Top: 20 * 2, Width: crest.Width, Height: crest.Height, Wave: &crest},
			{Kind: Wave, Left: 310 * 2, Top: 20 * 2, Width: ripple.Width, Height: ripple.Height, Wave: &ripple},
		},
	}
}
