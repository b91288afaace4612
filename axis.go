package graphlib

import (
	"math"
	"strconv"

	"github.com/midbel/slices"
)

const (
	TextWidth    = 6.0
	TextHeight   = 12.0
	AxisPadding  = 5.0
	ValuePadding = 5.0
	dashStep     = 3.0
)

type Segment struct {
	X1 float64
	Y1 float64
	X2 float64
	Y2 float64
}

type Label struct {
	Pos
	Text     string
	Vertical bool
}

type GridLine struct {
	Segment
	Value float64
	Label Label
}

type GoalLine struct {
	Goal
	Segments []Segment
}

func textWidth(str string) float64 {
	return float64(len([]rune(str))) * TextWidth
}

func calcAxes(cfg Config, pad Padding) (Segment, Segment) {
	var (
		bottom = cfg.Height - pad.Bottom
		xaxis  = Segment{
			X1: pad.Left,
			Y1: bottom,
			X2: cfg.Width - pad.Right,
			Y2: bottom,
		}
		yaxis = Segment{
			X1: pad.Left,
			Y1: bottom,
			X2: pad.Left,
			Y2: pad.Top,
		}
	)
	return xaxis, yaxis
}

func (g *Geometry) layoutHorizontalGrid(state State, cfg Config, rg *Range) {
	var (
		min, max = state.Min, state.Max
		forced   *float64
	)
	if rg != nil {
		min, max = rg.F, rg.T
		forced = &min
	}
	g.Interval = TickInterval(max, min, rg != nil, g.PlotHeight())
	g.Ticks = Ticks(min, max, forced, g.Interval)
	if len(g.Ticks) == 0 {
		return
	}
	g.Displayed = NewRange(slices.Fst(g.Ticks), slices.Lst(g.Ticks))

	var y float64
	for _, v := range g.Ticks {
		y = g.Scale.Pixel(v)
		line := GridLine{
			Segment: Segment{X1: g.YAxis.X1, Y1: y, X2: g.XAxis.X2, Y2: y},
			Value:   v,
		}
		str := cfg.Format(v)
		line.Label = Label{
			Pos:  NewPos(g.YAxis.X1-textWidth(str)-AxisPadding, y-TextHeight/2),
			Text: str,
		}
		g.HGrid = append(g.HGrid, line)
	}
	if !state.AllPositive && rg == nil {
		g.YAxis.Y1 = g.XAxis.Y1 - slices.Fst(g.Ticks)*g.Scale.Unit
	}
	g.YAxis.Y2 = y
}

// layoutVerticalGrid draws one line per x slot. Slots narrower than a
// pixel get no line at all.
func (g *Geometry) layoutVerticalGrid(state State) {
	if g.SpaceWidth < 1 {
		return
	}
	step := g.BarWidth + g.SpaceWidth
	for i := 1; i <= state.Count; i++ {
		x := g.YAxis.X1 + step*float64(i)
		g.VGrid = append(g.VGrid, Segment{X1: x, Y1: g.YAxis.Y2, X2: x, Y2: g.YAxis.Y1})
	}
}

func (g *Geometry) layoutGoals(cfg Config) {
	for _, goal := range cfg.Goals {
		var (
			y    = g.Scale.Pixel(goal.Value)
			line = GoalLine{Goal: goal}
		)
		if goal.Style == StyleDashed {
			for x := g.XAxis.X1; x < g.XAxis.X2-1; x += dashStep * 2 {
				line.Segments = append(line.Segments, Segment{X1: x, Y1: y, X2: x + dashStep - 1, Y2: y})
			}
		} else {
			line.Segments = append(line.Segments, Segment{X1: g.XAxis.X1, Y1: y, X2: g.XAxis.X2, Y2: y})
		}
		g.Goals = append(g.Goals, line)
	}
}

func (g *Geometry) xLabel(state State, cfg Config, key int, start float64) (Label, bool) {
	if cfg.XInterval > 0 && key%cfg.XInterval != 0 {
		return Label{}, false
	}
	var (
		str   = strconv.Itoa(key)
		width = textWidth(str)
		label = Label{
			Text:     str,
			Vertical: cfg.XValuesVertical,
		}
	)
	if cfg.XValuesVertical {
		label.X = math.Round(start + g.BarWidth/2 - TextHeight/2)
		if state.AllNegative {
			label.Y = math.Round(g.YAxis.Y2 - AxisPadding)
		} else {
			label.Y = math.Round(g.YAxis.Y1 + width + AxisPadding)
		}
	} else {
		label.X = math.Round(start + g.BarWidth/2 - width/2)
		if state.AllNegative {
			label.Y = math.Round(g.YAxis.Y2 - TextHeight - AxisPadding)
		} else {
			label.Y = math.Round(g.YAxis.Y1 + TextHeight*2/3 - AxisPadding)
		}
	}
	return label, true
}
