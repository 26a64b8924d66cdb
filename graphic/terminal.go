package graphic

import (
	"context"
	"math"

	"github.com/noriah/catwave/scene"

	"github.com/nsf/termbox-go"
)

const (
	// CurveRune is drawn along wave paths
	CurveRune rune = '•'

	// CenterRune is drawn along the center line of each wave
	CenterRune rune = '─'

	// CurveSteps is the number of line pieces per cubic segment
	CurveSteps = 12

	// StyleDefaultBack is the background of every cell
	StyleDefaultBack = termbox.ColorDefault

	// StyleCenter is the center line color (256 palette, gray)
	StyleCenter = termbox.Attribute(240 + 1)
)

// Cell is a terminal cell to paint.
type Cell struct {
	X, Y  int
	Rune  rune
	Color uint8 // 256 palette index, 0 uses the default color
}

// Terminal previews compositions on a termbox screen.
type Terminal struct {
	colors map[string]uint8
}

// NewTerminal returns a terminal preview. Call Init before writing to it.
func NewTerminal() *Terminal {
	return &Terminal{colors: map[string]uint8{}}
}

// Init sets up the screen.
func (t *Terminal) Init() error {
	if err := termbox.Init(); err != nil {
		return err
	}

	termbox.SetOutputMode(termbox.Output256)
	termbox.HideCursor()

	return nil
}

// Close will stop display and clean up the terminal.
func (t *Terminal) Close() error {
	termbox.Close()
	return nil
}

// Start returns a context that is cancelled when the user quits.
func (t *Terminal) Start(ctx context.Context) context.Context {
	dispCtx, dispCancel := context.WithCancel(ctx)
	go eventPoller(dispCtx, dispCancel)
	return dispCtx
}

// Stop wakes the event poller so it can exit.
func (t *Terminal) Stop() error {
	termbox.Interrupt()
	return nil
}

// eventPoller will take events and do things with them
func eventPoller(ctx context.Context, fn context.CancelFunc) {
	defer fn()

	for {
		// first check if we need to exit
		select {
		case <-ctx.Done():
			return
		default:
		}

		ev := termbox.PollEvent()

		switch ev.Type {
		case termbox.EventKey:
			switch ev.Key {
			case termbox.KeyEsc, termbox.KeyCtrlC:
				return
			}

			switch ev.Ch {
			case 'q', 'Q':
				return
			}

		case termbox.EventInterrupt, termbox.EventError:
			return
		}
	}
}

// Write draws the composition scaled to the screen.
func (t *Terminal) Write(comp scene.Composition) error {
	if err := termbox.Clear(StyleDefaultBack, StyleDefaultBack); err != nil {
		return err
	}

	cols, rows := termbox.Size()

	for _, c := range Cells(comp, cols, rows, t.colors) {
		fg := termbox.ColorDefault
		if c.Color > 0 {
			fg = termbox.Attribute(c.Color) + 1
		}

		if c.Rune == CenterRune {
			fg = StyleCenter
		}

		termbox.SetCell(c.X, c.Y, c.Rune, fg, StyleDefaultBack)
	}

	return termbox.Flush()
}

// Cells maps every wave of comp onto a cols x rows grid. Colors are looked
// up in cache first; unknown colors are added to it.
func Cells(comp scene.Composition, cols, rows int, cache map[string]uint8) []Cell {
	if cols <= 0 || rows <= 0 || !(comp.Width > 0) || !(comp.Height > 0) {
		return nil
	}

	if cache == nil {
		cache = map[string]uint8{}
	}

	var sx = float64(cols) / comp.Width
	var sy = float64(rows) / comp.Height

	var cells []Cell

	var toCell = func(x, y float64) (int, int) {
		return int(math.Floor(x * sx)), int(math.Floor(y * sy))
	}

	var inside = func(x, y int) bool {
		return x >= 0 && x < cols && y >= 0 && y < rows
	}

	for _, layer := range comp.Layers {
		v := layer.Visual
		center := v.Top + layer.Wave.Height/2

		x0, y := toCell(v.Left, center)
		x1, _ := toCell(v.Left+layer.Wave.Width, center)

		for xCol := x0; xCol < x1; xCol++ {
			if inside(xCol, y) {
				cells = append(cells, Cell{X: xCol, Y: y, Rune: CenterRune})
			}
		}

		for _, line := range layer.Wave.Lines {
			col, ok := cache[line.Color]
			if !ok {
				if c, err := ParseColor(line.Color); err == nil {
					col = Cube256(c)
				}
				cache[line.Color] = col
			}

			var prevX, prevY int
			for idx, p := range line.Path.Flatten(CurveSteps) {
				cx, cy := toCell(v.Left+p.X, center+p.Y)

				if idx == 0 {
					prevX, prevY = cx, cy
				}

				plotLine(prevX, prevY, cx, cy, func(x, y int) {
					if inside(x, y) {
						cells = append(cells, Cell{X: x, Y: y, Rune: CurveRune, Color: col})
					}
				})

				prevX, prevY = cx, cy
			}
		}
	}

	return cells
}

// plotLine calls plot for every cell between two cells, both included.
func plotLine(x0, y0, x1, y1 int, plot func(int, int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)

	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy

	for {
		plot(x0, y0)

		if x0 == x1 && y0 == y1 {
			return
		}

		e2 := 2 * err

		if e2 >= dy {
			err += dy
			x0 += sx
		}

		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
