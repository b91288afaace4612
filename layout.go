package graphlib

import (
	"math"
)

const (
	titleExtra          = TextHeight
	rightMarginPercent  = 8.0
	topMarginPercent    = 12.0
	msgTooSmall         = "Graph too small or too many data points."
	msgNotTallEnough    = "Graph height not tall enough."
	msgKeySpan          = "Data keys too far apart."
	maxOffsetSpreadPerc = 45.0
)

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

type Bar struct {
	Key   int
	Value float64

	X1 float64
	Y1 float64
	X2 float64
	Y2 float64

	HideOutline bool
	Clipped     bool
}

func (b Bar) Width() float64 {
	return math.Abs(b.X2 - b.X1)
}

func (b Bar) Height() float64 {
	return math.Abs(b.Y2 - b.Y1)
}

type SeriesGeometry struct {
	Index  int
	Title  string
	Bars   []Bar
	Line   []Pos
	Values []Label
}

type Geometry struct {
	Width  float64
	Height float64
	Padding

	XAxis Segment
	YAxis Segment

	BarWidth   float64
	SpaceWidth float64
	Offset     float64
	DrawBars   bool

	Scale     Scale
	Range     *Range
	Interval  float64
	Ticks     []float64
	Displayed Range

	HGrid   []GridLine
	VGrid   []Segment
	Goals   []GoalLine
	Series  []SeriesGeometry
	XLabels []Label

	Title  Label
	Legend Legend
}

func (g Geometry) PlotWidth() float64 {
	return g.Width - g.Padding.Horizontal()
}

func (g Geometry) PlotHeight() float64 {
	return g.Height - g.Padding.Vertical()
}

// OffsetPercent gives the horizontal shift, in percent of the bar width,
// between the bars of two consecutive series.
func OffsetPercent(series int) float64 {
	switch {
	case series <= 1:
		return 0
	case series == 2:
		return 24
	case series == 3:
		return 15
	case series == 4:
		return 10
	case series == 5:
		return 9
	default:
		return maxOffsetSpreadPerc / float64(series)
	}
}

func calcPadding(cfg Config) Padding {
	pad := Padding{
		Bottom: math.Round(cfg.Height * cfg.XMargin / 100),
		Left:   math.Round(cfg.Width * cfg.YMargin / 100),
		Top:    cfg.Height * topMarginPercent / 100,
		Right:  cfg.Width * rightMarginPercent / 100,
	}
	if cfg.Title != "" {
		pad.Top += titleExtra
	}
	return pad
}

// effectiveRange returns the forced range, if any, extended to include the
// goal lines set above the data.
func effectiveRange(state State, cfg Config) *Range {
	var rg *Range
	if cfg.Forced() {
		x := *cfg.Range
		rg = &x
	}
	for _, g := range cfg.Goals {
		if g.Value <= state.Max {
			continue
		}
		if rg == nil {
			x := NewRange(state.Min, g.Value)
			rg = &x
		} else if g.Value > rg.T {
			rg.T = g.Value
		}
	}
	return rg
}

// Layout computes the pixel geometry of a chart.
func Layout(state State, cfg Config) (Geometry, ErrorLog) {
	var (
		errs ErrorLog
		geo  = Geometry{
			Width:    cfg.Width,
			Height:   cfg.Height,
			DrawBars: true,
		}
	)
	geo.Padding = calcPadding(cfg)
	geo.XAxis, geo.YAxis = calcAxes(cfg, geo.Padding)
	if state.Empty() {
		geo.DrawBars = false
		geo.layoutText(state, cfg)
		return geo, errs
	}
	if state.Overflow {
		geo.DrawBars = false
		errs.Add(LayoutError{Message: msgKeySpan})
		geo.layoutText(state, cfg)
		return geo, errs
	}
	geo.Range = effectiveRange(state, cfg)

	unit := geo.PlotWidth() / (3 * float64(state.Count))
	geo.BarWidth = 2 * unit
	geo.SpaceWidth = unit
	if unit < 1 {
		if cfg.IgnoreFitErrors {
			geo.BarWidth = math.Max(geo.BarWidth, 1)
		} else {
			geo.DrawBars = false
			errs.Add(LayoutError{Message: msgTooSmall})
		}
	}
	height := geo.PlotHeight()
	if height < 1 {
		geo.DrawBars = false
		errs.Add(LayoutError{Message: msgNotTallEnough})
		height = 0
	}
	geo.layoutScale(state, height)
	geo.layoutHorizontalGrid(state, cfg, geo.Range)
	geo.layoutVerticalGrid(state)
	geo.layoutGoals(cfg)
	geo.layoutSeries(state, cfg)
	geo.layoutText(state, cfg)
	return geo, errs
}

func (g *Geometry) layoutScale(state State, height float64) {
	var (
		min, max = state.Min, state.Max
		span     float64
	)
	if g.Range != nil {
		min, max = g.Range.F, g.Range.T
		span = max - min
	} else {
		span = math.Max(max, 0) - math.Min(min, 0)
	}
	if span == 0 {
		span = degenerateScale
	}
	g.Scale.Unit = height / span
	g.Scale.Origin = g.XAxis.Y1
	if min < 0 {
		shift := math.Round(g.Scale.Unit * math.Abs(min))
		g.XAxis.Y1 -= shift
		g.XAxis.Y2 -= shift
		g.Scale.Origin = g.XAxis.Y1
	}
	if g.Range != nil && min >= 0 {
		g.Scale.Adjust = min * g.Scale.Unit
	}
}

func (g *Geometry) layoutSeries(state State, cfg Config) {
	var (
		step = g.BarWidth + g.SpaceWidth
		seen = make(map[int]struct{})
		base = math.Round(g.XAxis.Y1)
	)
	g.Offset = g.BarWidth * OffsetPercent(state.SeriesCount()) / 100
	for k, s := range state.Series {
		sg := SeriesGeometry{
			Index: k,
			Title: s.Title,
		}
		off := g.Offset * float64(k)
		for _, p := range s.Points {
			var (
				start = g.YAxis.X1 + g.SpaceWidth/2 + (float64(p.X)-float64(state.LowestX))*step
				bar   = Bar{
					Key:   p.X,
					Value: p.Y,
					X1:    math.Round(start + off),
					X2:    math.Round(start + g.BarWidth + off),
					Y1:    g.Scale.Pixel(p.Y),
					Y2:    base,
				}
				below bool
			)
			if g.Range != nil && !g.Range.Contains(p.Y) {
				bar.Clipped = true
				if p.Y < g.Range.Min() {
					bar.Y1 = bar.Y2
					bar.HideOutline = true
					below = true
				} else {
					bar.Y1 = g.Scale.Pixel(g.Range.Max())
				}
			}
			sg.Bars = append(sg.Bars, bar)
			sg.Line = append(sg.Line, NewPos(bar.X1+g.BarWidth/2, bar.Y1))

			str := cfg.Format(p.Y)
			value := Label{Text: str}
			value.X = bar.X1 + g.BarWidth/2 - textWidth(str)/2
			if p.Y >= 0 || below {
				value.Y = bar.Y1 - ValuePadding - TextHeight
			} else {
				value.Y = bar.Y1 + ValuePadding
			}
			sg.Values = append(sg.Values, value)

			if _, ok := seen[p.X]; ok {
				continue
			}
			seen[p.X] = struct{}{}
			if label, ok := g.xLabel(state, cfg, p.X, start); ok {
				g.XLabels = append(g.XLabels, label)
			}
		}
		g.Series = append(g.Series, sg)
	}
}

func (g *Geometry) layoutText(state State, cfg Config) {
	top := math.Min(g.Padding.Top, g.YAxis.Y2)
	if cfg.Title != "" {
		g.Title = Label{Text: cfg.Title}
		g.Title.Y = top/2 - TextHeight/2
		switch width := textWidth(cfg.Title); cfg.TitleAlign {
		case AlignLeft:
			g.Title.X = g.YAxis.X1
		case AlignRight:
			g.Title.X = g.XAxis.X2 - width
		default:
			g.Title.X = g.Width/2 - width/2
		}
	}
	if cfg.Legend && state.SeriesCount() > 0 {
		g.Legend = LayoutLegend(cfg.LegendTitles, state.SeriesCount(), g.XAxis.X2, top)
	}
}
