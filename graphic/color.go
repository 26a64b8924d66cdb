package graphic

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ParseColor reads a CSS-like color: #rgb, #rrggbb, rgb(r, g, b),
// rgba(r, g, b, a) or a named color.
func ParseColor(s string) (color.NRGBA, error) {
	var str = strings.ToLower(strings.TrimSpace(s))

	switch {
	case str == "transparent":
		return color.NRGBA{}, nil

	case strings.HasPrefix(str, "#"):
		c, err := colorful.Hex(str)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("bad hex color %q", s)
		}

		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil

	case strings.HasPrefix(str, "rgb"):
		return parseFunc(str)
	}

	if c, ok := colornames.Map[str]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}

	return color.NRGBA{}, fmt.Errorf("unknown color %q", s)
}

// parseFunc reads rgb() and rgba(). Both accept an optional alpha.
func parseFunc(str string) (color.NRGBA, error) {
	var open = strings.IndexByte(str, '(')
	if open < 0 || !strings.HasSuffix(str, ")") {
		return color.NRGBA{}, fmt.Errorf("bad color function %q", str)
	}

	var args = strings.Split(str[open+1:len(str)-1], ",")
	if len(args) != 3 && len(args) != 4 {
		return color.NRGBA{}, fmt.Errorf("bad argument count in %q", str)
	}

	var channels [3]uint8

	for idx := range channels {
		v, err := strconv.ParseFloat(strings.TrimSpace(args[idx]), 64)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("bad channel in %q", str)
		}
		channels[idx] = uint8(math.Round(math.Max(0, math.Min(255, v))))
	}

	var alpha uint8 = 0xff

	if len(args) == 4 {
		v, err := strconv.ParseFloat(strings.TrimSpace(args[3]), 64)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("bad alpha in %q", str)
		}
		alpha = uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}

	return color.NRGBA{R: channels[0], G: channels[1], B: channels[2], A: alpha}, nil
}

// Cube256 returns the xterm 256 palette index closest to c within the
// 6x6x6 color cube.
func Cube256(c color.NRGBA) uint8 {
	var level = func(v uint8) uint8 {
		return uint8(math.Round(float64(v) / 255 * 5))
	}

	return 16 + 36*level(c.R) + 6*level(c.G) + level(c.B)
}
