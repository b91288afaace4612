package graphlib

import (
	"fmt"
	"math"

	"github.com/midbel/slices"
)

const bannerTitle = "!!----- graphlib error -----!!"

type renderer struct {
	cfg   Config
	state State
	geo   Geometry

	bars      Palette
	lines     Palette
	gradients []GradientPair
	cache     map[int]Gradient

	plan *Plan
}

func render(state State, cfg Config, geo Geometry, errs ErrorLog) *Plan {
	var (
		count = state.SeriesCount()
		r     = renderer{
			cfg:   cfg,
			state: state,
			geo:   geo,
			bars:  cfg.Style.barPalette(count, cfg.Darken),
			lines: cfg.Style.linePalette(count, cfg.Darken, cfg.Bars),
			cache: make(map[int]Gradient),
			plan: &Plan{
				Width:  int(cfg.Width),
				Height: int(cfg.Height),
			},
		}
	)
	if cfg.Gradient() {
		r.gradients = FillGradients(cfg.Style.Gradients, count, cfg.Darken)
	}
	r.plan.background(cfg.Style.Background)
	if !state.Empty() {
		r.drawGrid()
		if geo.DrawBars {
			r.drawSeries()
			r.drawPoints()
		}
		r.drawLegend()
	}
	r.drawTitle()
	if !state.Empty() {
		r.drawAxes()
	}
	drawErrors(r.plan, errs)
	return r.plan
}

func (r *renderer) drawGrid() {
	if r.cfg.Grid {
		for _, g := range r.geo.HGrid {
			r.plan.line(g.X1, g.Y1, g.X2, g.Y2, r.cfg.Style.Grid)
		}
		for _, g := range r.geo.VGrid {
			r.plan.line(g.X1, g.Y1, g.X2, g.Y2, r.cfg.Style.Grid)
		}
	}
	if r.cfg.YValues {
		for _, g := range r.geo.HGrid {
			r.plan.text(g.Label.X, g.Label.Y, g.Label.Text, false, r.cfg.Style.YText)
		}
	}
	for _, g := range r.geo.Goals {
		color := r.cfg.Style.Goal
		if g.Color != nil {
			color = *g.Color
		}
		for _, s := range g.Segments {
			r.plan.line(s.X1, s.Y1, s.X2, s.Y2, color)
		}
	}
}

func (r *renderer) drawSeries() {
	for _, s := range slices.Reverse(r.geo.Series) {
		var prev *Pos
		for i, b := range s.Bars {
			if r.cfg.Bars {
				r.drawBar(s.Index, b)
			}
			if r.cfg.Line {
				pos := s.Line[i]
				if prev != nil {
					r.plan.line(prev.X, prev.Y, pos.X, pos.Y, colorAt(r.lines, s.Index, r.cfg.Style.Line))
				}
				prev = &pos
			}
			if r.cfg.DataValues {
				v := s.Values[i]
				r.plan.text(v.X, v.Y, v.Text, false, r.cfg.Style.DataValue)
			}
		}
	}
	if !r.cfg.XValues {
		return
	}
	for _, x := range r.geo.XLabels {
		r.plan.text(x.X, x.Y, x.Text, x.Vertical, r.cfg.Style.XText)
	}
}

func (r *renderer) drawBar(index int, b Bar) {
	if r.cfg.Gradient() {
		var (
			grad  = r.gradient(index, b)
			width = int(math.Abs(b.X2-b.X1)) + 1
		)
		for i := 0; i < width; i++ {
			x := b.X1 + float64(i)
			r.plan.line(x, b.Y1, x, b.Y2, grad.At(i))
		}
	} else {
		r.plan.fillRect(b.X1, b.Y1, b.X2, b.Y2, colorAt(r.bars, index, r.cfg.Style.Bar))
	}
	if r.cfg.Outline && !b.HideOutline {
		r.plan.strokeRect(b.X1, b.Y2, b.X2, b.Y1, r.cfg.Style.Outline)
	}
}

// gradient is computed once per series from the width of its first bar.
func (r *renderer) gradient(index int, b Bar) Gradient {
	if g, ok := r.cache[index]; ok {
		return g
	}
	var pair GradientPair
	if index < len(r.gradients) {
		pair = r.gradients[index]
	}
	lines := int(math.Abs(b.X2-b.X1)) + 1
	g := BuildGradient(pair.From, pair.To, lines, r.state.SeriesCount())
	r.cache[index] = g
	return g
}

func (r *renderer) drawPoints() {
	if !r.cfg.DataPoints {
		return
	}
	for _, s := range slices.Reverse(r.geo.Series) {
		for _, pos := range s.Line {
			r.cfg.PointShape.draw(r.plan, pos, r.cfg.PointSize, r.cfg.Style.DataPoint)
		}
	}
}

func (r *renderer) swatchColor(index int) RGB {
	switch {
	case r.cfg.Bars && r.cfg.Gradient():
		if index < len(r.gradients) {
			return r.gradients[index].From
		}
		return colorAt(r.bars, index, r.cfg.Style.Bar)
	case r.cfg.Bars:
		return colorAt(r.bars, index, r.cfg.Style.Bar)
	case r.cfg.Line:
		return colorAt(r.lines, index, r.cfg.Style.Line)
	default:
		return colorAt(r.bars, index, r.cfg.Style.Bar)
	}
}

func (r *renderer) drawLegend() {
	lg := r.geo.Legend
	if !r.cfg.Legend || !lg.Visible() {
		return
	}
	var (
		x2 = lg.X + lg.Width
		y2 = lg.Y + lg.Height
	)
	r.plan.fillRect(lg.X, lg.Y, x2, y2, r.cfg.Style.Legend.Fill)
	r.plan.strokeRect(lg.X, lg.Y, x2, y2, r.cfg.Style.Legend.Outline)
	for _, e := range lg.Entries {
		s := e.Swatch
		r.plan.fillRect(s.X1, s.Y1, s.X2, s.Y2, r.swatchColor(e.Index))
		r.plan.strokeRect(s.X1, s.Y1, s.X2, s.Y2, r.cfg.Style.Legend.Swatch)
		r.plan.text(e.Text.X, e.Text.Y, e.Label, false, r.cfg.Style.Legend.Text)
	}
}

func (r *renderer) drawTitle() {
	t := r.geo.Title
	if t.Text == "" {
		return
	}
	r.plan.text(t.X, t.Y, t.Text, false, r.cfg.Style.Title)
}

func (r *renderer) drawAxes() {
	if x := r.geo.XAxis; r.cfg.XAxis {
		r.plan.line(x.X1, x.Y1, x.X2, x.Y2, r.cfg.Style.XAxis)
	}
	if y := r.geo.YAxis; r.cfg.YAxis {
		r.plan.line(y.X1, y.Y1, y.X2, y.Y2, r.cfg.Style.YAxis)
	}
}

func drawErrors(p *Plan, errs ErrorLog) {
	if errs.Empty() {
		return
	}
	var (
		right = float64(p.Width - 1)
		last  float64
	)
	p.fillRect(0, 0, right, 2*TextHeight, Yellow)
	p.text(2, 0, bannerTitle, false, Black)
	for i, msg := range errs.Messages() {
		top := float64(i)*TextHeight + TextHeight
		p.fillRect(0, top, right, top+TextHeight, Yellow)
		p.text(2, top, fmt.Sprintf("[%d] %s", i+1, msg), false, Black)
		last = top + TextHeight
	}
	p.strokeRect(0, 0, right, last, Red)
}

func colorAt(p Palette, index int, fallback RGB) RGB {
	c, err := p.At(index)
	if err != nil {
		return fallback
	}
	return c
}
