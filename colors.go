package graphlib

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

const DefaultDarken = 30.0

var (
	Black  = RGB{}
	White  = RGB{R: 255, G: 255, B: 255}
	Yellow = RGB{R: 255, G: 204}
	Red    = RGB{R: 255}
)

var (
	Category10 []RGB
	Tableau10  []RGB
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
}

func splitColorString(str string) []RGB {
	var arr []RGB
	for i := 0; i+6 <= len(str); i += 6 {
		arr = append(arr, fromDrawing(drawing.ColorFromHex(str[i:i+6])))
	}
	return arr
}

// PaletteByName returns one of the predefined palettes.
func PaletteByName(name string) ([]RGB, bool) {
	switch strings.ToLower(name) {
	case "category10":
		return copyColors(Category10), true
	case "tableau10":
		return copyColors(Tableau10), true
	default:
		return nil, false
	}
}

type RGB struct {
	R uint8
	G uint8
	B uint8
}

func Gray(level uint8) RGB {
	return RGB{R: level, G: level, B: level}
}

func fromDrawing(c drawing.Color) RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// ParseColor accepts a named color, "#rrggbb", "#rgb" or "r,g,b".
func ParseColor(str string) (RGB, error) {
	str = strings.TrimSpace(str)
	switch {
	case str == "":
		return RGB{}, fmt.Errorf("empty color")
	case strings.Contains(str, ","):
		return parseTriple(str)
	case strings.HasPrefix(str, "#"):
		return parseHex(str)
	default:
		return parseName(str)
	}
}

func parseTriple(str string) (RGB, error) {
	parts := strings.Split(str, ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("color %q: expected r,g,b", str)
	}
	var vs [3]uint8
	for i := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(parts[i]), 10, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("color %q: channel %q out of range", str, parts[i])
		}
		vs[i] = uint8(n)
	}
	return RGB{R: vs[0], G: vs[1], B: vs[2]}, nil
}

func parseHex(str string) (RGB, error) {
	hex := strings.TrimPrefix(str, "#")
	if len(hex) != 3 && len(hex) != 6 {
		return RGB{}, fmt.Errorf("color %q: invalid hex length", str)
	}
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return RGB{}, fmt.Errorf("color %q: invalid hex digits", str)
	}
	return fromDrawing(drawing.ColorFromHex(hex)), nil
}

func parseName(str string) (RGB, error) {
	switch name := strings.ToLower(str); name {
	case "gray", "grey":
		return Gray(128), nil
	case "fuscia":
		return fromDrawing(drawing.ColorFuchsia), nil
	default:
		c := drawing.ColorFromKnown(name)
		if c.IsTransparent() {
			return RGB{}, fmt.Errorf("color name %q not recognized", str)
		}
		return fromDrawing(c), nil
	}
}

func (c RGB) Darken(percent float64) RGB {
	if percent <= 0 {
		return c
	}
	if percent > 100 {
		percent = 100
	}
	factor := (100 - percent) / 100
	darken := func(v uint8) uint8 {
		return uint8(math.Round(float64(v) * factor))
	}
	return RGB{
		R: darken(c.R),
		G: darken(c.G),
		B: darken(c.B),
	}
}

func (c RGB) RGBA() (r, g, b, a uint32) {
	return c.Color().RGBA()
}

func (c RGB) Color() color.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette holds one color per series.
type Palette struct {
	colors []RGB
}

// DarkenedPalette fills the slots missing from base by darkening the
// previous color.
func DarkenedPalette(base []RGB, fallback RGB, count int, percent float64) Palette {
	var p Palette
	if count <= 0 {
		return p
	}
	if len(base) == 0 {
		base = []RGB{fallback}
	}
	p.colors = make([]RGB, 0, count)
	for i := 0; i < count; i++ {
		if i < len(base) {
			p.colors = append(p.colors, base[i])
			continue
		}
		last := p.colors[len(p.colors)-1]
		p.colors = append(p.colors, last.Darken(percent))
	}
	return p
}

// PaddedPalette fills the slots missing from base with pad.
func PaddedPalette(base []RGB, pad RGB, count int) Palette {
	var p Palette
	if count <= 0 {
		return p
	}
	p.colors = make([]RGB, count)
	for i := range p.colors {
		if i < len(base) {
			p.colors[i] = base[i]
		} else {
			p.colors[i] = pad
		}
	}
	return p
}

func (p Palette) Len() int {
	return len(p.colors)
}

func (p Palette) At(i int) (RGB, error) {
	if i < 0 || i >= len(p.colors) {
		return RGB{}, fmt.Errorf("palette: index %d out of range [0, %d)", i, len(p.colors))
	}
	return p.colors[i], nil
}

func copyColors(list []RGB) []RGB {
	if len(list) == 0 {
		return nil
	}
	cs := make([]RGB, len(list))
	copy(cs, list)
	return cs
}
