package graphlib

import (
	"math"
)

// MaxGradientColors bounds the colors allocated for all gradients of a chart.
const MaxGradientColors = 200

type GradientPair struct {
	From RGB
	To   RGB
}

type Gradient struct {
	Colors   []RGB
	Handicap int
	Lines    int
}

// BuildGradient interpolates from -> to across lines pixel columns. When
// lines*series exceeds MaxGradientColors the number of colors is halved
// until it fits and each color then covers 2^Handicap columns.
func BuildGradient(from, to RGB, lines, series int) Gradient {
	g := Gradient{
		Lines: lines,
	}
	if lines <= 0 {
		return g
	}
	if series < 1 {
		series = 1
	}
	num := float64(lines)
	for num*float64(series) > MaxGradientColors {
		num /= 2
		g.Handicap++
	}
	var (
		count = int(math.Ceil(num))
		stepR = (float64(from.R) - float64(to.R)) / num
		stepG = (float64(from.G) - float64(to.G)) / num
		stepB = (float64(from.B) - float64(to.B)) / num
	)
	if count < 1 {
		count = 1
	}
	g.Colors = make([]RGB, count)
	for i := range g.Colors {
		g.Colors[i] = RGB{
			R: channel(float64(from.R) - stepR*float64(i)),
			G: channel(float64(from.G) - stepG*float64(i)),
			B: channel(float64(from.B) - stepB*float64(i)),
		}
	}
	return g
}

func (g Gradient) Index(col int) int {
	if len(g.Colors) == 0 || col <= 0 {
		return 0
	}
	ix := col
	if g.Handicap > 0 {
		ix = int(math.Ceil(float64(col)/float64(int(1)<<g.Handicap))) - 1
	}
	if ix < 0 {
		ix = 0
	}
	if ix >= len(g.Colors) {
		ix = len(g.Colors) - 1
	}
	return ix
}

func (g Gradient) At(col int) RGB {
	if len(g.Colors) == 0 {
		return RGB{}
	}
	return g.Colors[g.Index(col)]
}

// FillGradients returns exactly series pairs: extra pairs are dropped and
// missing ones are derived by darkening the previous pair.
func FillGradients(pairs []GradientPair, series int, percent float64) []GradientPair {
	if series <= 0 || len(pairs) == 0 {
		return nil
	}
	list := make([]GradientPair, 0, series)
	for i := 0; i < series; i++ {
		if i < len(pairs) {
			list = append(list, pairs[i])
			continue
		}
		last := list[len(list)-1]
		list = append(list, GradientPair{
			From: last.From.Darken(percent),
			To:   last.To.Darken(percent),
		})
	}
	return list
}

func channel(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
