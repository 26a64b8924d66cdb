package graphic

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mitchellh/go-homedir"
	"github.com/noriah/catwave/scene"
	"github.com/pkg/errors"
)

// FramePattern names frame files. It takes the frame number and extension.
const FramePattern = "frame-%05d.%s"

// SVGWriter writes every composition to its own SVG file.
type SVGWriter struct {
	Dir        string
	Background string // optional fill behind every frame
}

// NewSVGWriter prepares dir for writing.
func NewSVGWriter(dir string) (*SVGWriter, error) {
	dir, err := prepareDir(dir)
	if err != nil {
		return nil, err
	}

	return &SVGWriter{Dir: dir}, nil
}

// Write writes the composition to Dir.
func (sw *SVGWriter) Write(comp scene.Composition) error {
	name := filepath.Join(sw.Dir, fmt.Sprintf(FramePattern, comp.Frame, "svg"))

	f, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "failed to create frame file")
	}

	bw := bufio.NewWriter(f)

	if err = WriteSVG(bw, comp, sw.Background); err == nil {
		err = bw.Flush()
	}

	if cerr := f.Close(); err == nil {
		err = cerr
	}

	return err
}

// WriteSVG writes comp as a standalone SVG document. Each wave is a nested
// svg element whose viewBox puts the center line at y=0.
func WriteSVG(w io.Writer, comp scene.Composition, background string) error {
	ew := &errWriter{w: w}

	ew.printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(comp.Width), num(comp.Height), num(comp.Width), num(comp.Height))

	if background != "" {
		ew.printf(`  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", html.EscapeString(background))
	}

	for _, layer := range comp.Layers {
		v := layer.Visual
		h := layer.Wave.Height

		ew.printf(`  <svg x="%s" y="%s" width="%s" height="%s" viewBox="0 %s %s %s">`+"\n",
			num(v.Left), num(v.Top), num(layer.Wave.Width), num(h),
			num(-0.5*h), num(layer.Wave.Width), num(h))

		for _, line := range layer.Wave.Lines {
			ew.printf(`    <path d="%s" stroke="%s" stroke-width="%s" fill="none"/>`+"\n",
				line.Path.D(), html.EscapeString(line.Color), num(line.Thickness))
		}

		ew.printf("  </svg>\n")
	}

	ew.printf("</svg>\n")

	return ew.err
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func prepareDir(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}

	dir, err := homedir.Expand(dir)
	if err != nil {
		return "", errors.Wrap(err, "failed to expand output path")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create output directory")
	}

	return dir, nil
}
