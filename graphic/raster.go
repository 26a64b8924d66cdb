package graphic

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/noriah/catwave/scene"
	"github.com/noriah/catwave/wave"

	"github.com/pkg/errors"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/rasterizer"
)

// RasterWriter rasterizes every composition into its own PNG file.
type RasterWriter struct {
	Dir        string
	Background color.Color // optional fill behind every frame
}

// NewRasterWriter prepares dir for writing.
func NewRasterWriter(dir string) (*RasterWriter, error) {
	dir, err := prepareDir(dir)
	if err != nil {
		return nil, err
	}

	return &RasterWriter{Dir: dir}, nil
}

// Write rasterizes the composition and stores it in Dir.
func (rw *RasterWriter) Write(comp scene.Composition) error {
	img, err := Rasterize(comp, rw.Background)
	if err != nil {
		return err
	}

	name := filepath.Join(rw.Dir, fmt.Sprintf(FramePattern, comp.Frame, "png"))

	f, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "failed to create frame file")
	}

	bw := bufio.NewWriter(f)

	if err = png.Encode(bw, img); err == nil {
		err = bw.Flush()
	}

	if cerr := f.Close(); err == nil {
		err = cerr
	}

	return errors.Wrap(err, "failed to encode frame")
}

// Rasterize draws comp at one pixel per unit.
func Rasterize(comp scene.Composition, background color.Color) (*image.RGBA, error) {
	c := canvas.New(comp.Width, comp.Height)
	ctx := canvas.NewContext(c)

	if background != nil {
		ctx.SetFillColor(background)
		ctx.DrawPath(0, 0, canvas.Rectangle(comp.Width, comp.Height))
	}

	// strokes only
	ctx.SetFillColor(color.Transparent)

	for _, layer := range comp.Layers {
		v := layer.Visual

		// canvas has y pointing up, so the center line of a layer sits
		// this far above the bottom edge.
		centerY := comp.Height - v.Top - layer.Wave.Height/2

		for _, line := range layer.Wave.Lines {
			col, err := ParseColor(line.Color)
			if err != nil {
				return nil, err
			}

			ctx.SetStrokeColor(col)
			ctx.SetStrokeWidth(line.Thickness)
			ctx.DrawPath(v.Left, centerY, canvasPath(line.Path))
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, int(comp.Width+0.5), int(comp.Height+0.5)))
	r := rasterizer.New(img, 1)
	c.Render(r)

	return img, nil
}

// canvasPath converts a wave path, flipping y so negative values point up.
func canvasPath(path wave.Path) *canvas.Path {
	p := &canvas.Path{}

	for _, seg := range path.Segments {
		pts := seg.Points

		switch seg.Op {
		case wave.MoveTo:
			p.MoveTo(pts[0].X, -pts[0].Y)
		case wave.CubeTo:
			p.CubeTo(pts[0].X, -pts[0].Y, pts[1].X, -pts[1].Y, pts[2].X, -pts[2].Y)
		case wave.LineTo:
			p.LineTo(pts[0].X, -pts[0].Y)
		}
	}

	return p
}
