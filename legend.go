package graphlib

import (
	"github.com/samber/lo"
)

const (
	LegendPadding  = 4.0
	LegendMaxChars = 15

	swatchOffset = (TextHeight - 6) / 2
	swatchSize   = TextHeight - 2*swatchOffset
)

type LegendEntry struct {
	Index  int
	Label  string
	Swatch Segment
	Text   Pos
}

type Legend struct {
	X       float64
	Y       float64
	Width   float64
	Height  float64
	Entries []LegendEntry
}

func (l Legend) Visible() bool {
	return len(l.Entries) > 0
}

func truncateLabel(str string) string {
	rs := []rune(str)
	if len(rs) > LegendMaxChars {
		rs = rs[:LegendMaxChars]
	}
	return string(rs)
}

// LayoutLegend places one entry per series in a box right aligned on right
// and vertically centered in the band above top.
func LayoutLegend(titles []string, series int, right, top float64) Legend {
	var lg Legend
	if series <= 0 {
		return lg
	}
	labels := make([]string, series)
	for i := range labels {
		if i < len(titles) {
			labels[i] = truncateLabel(titles[i])
		}
	}
	chars := lo.SumBy(labels, func(str string) int {
		return len([]rune(str))
	})
	lg.Height = TextHeight + 2*LegendPadding
	lg.Width = float64(chars)*TextWidth + LegendPadding*2.2 + float64(series)*(swatchSize+2*LegendPadding)
	lg.X = right - lg.Width
	lg.Y = top/2 - lg.Height/2

	var covered int
	for i, str := range labels {
		var (
			y = lg.Y + LegendPadding
			x = lg.X + LegendPadding + float64(covered)*TextWidth + float64(i)*4*LegendPadding
		)
		covered += len([]rune(str))
		lg.Entries = append(lg.Entries, LegendEntry{
			Index: i,
			Label: str,
			Swatch: Segment{
				X1: x,
				Y1: y + swatchOffset,
				X2: x + swatchSize,
				Y2: y + swatchOffset + swatchSize,
			},
			Text: NewPos(x+2*LegendPadding+2, y),
		})
	}
	return lg
}
