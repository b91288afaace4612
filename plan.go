package graphlib

import (
	"fmt"
	"io"
)

// Canvas executes the primitives of a Plan. Rectangles are given by their
// inclusive corners and text by its top left corner.
type Canvas interface {
	SetBackground(RGB)
	FillRect(x1, y1, x2, y2 float64, c RGB)
	StrokeRect(x1, y1, x2, y2 float64, c RGB)
	DrawLine(x1, y1, x2, y2 float64, c RGB)
	FillEllipse(cx, cy, w, h float64, c RGB)
	DrawText(x, y float64, str string, vertical bool, c RGB)
	Encode(io.Writer) error
}

type Kind int

const (
	KindBackground Kind = iota
	KindFillRect
	KindStrokeRect
	KindLine
	KindEllipse
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindBackground:
		return "background"
	case KindFillRect:
		return "fill-rect"
	case KindStrokeRect:
		return "stroke-rect"
	case KindLine:
		return "line"
	case KindEllipse:
		return "ellipse"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Instruction is a single drawing primitive. For ellipses, X1/Y1 is the
// center and X2/Y2 the width and height.
type Instruction struct {
	Kind     Kind
	X1       float64
	Y1       float64
	X2       float64
	Y2       float64
	Text     string
	Vertical bool
	Color    RGB
}

func (i Instruction) String() string {
	switch i.Kind {
	case KindBackground:
		return fmt.Sprintf("%s %s", i.Kind, i.Color)
	case KindText:
		return fmt.Sprintf("%s (%g,%g) %q vertical=%t %s", i.Kind, i.X1, i.Y1, i.Text, i.Vertical, i.Color)
	default:
		return fmt.Sprintf("%s (%g,%g) (%g,%g) %s", i.Kind, i.X1, i.Y1, i.X2, i.Y2, i.Color)
	}
}

func (i Instruction) Draw(c Canvas) {
	switch i.Kind {
	case KindBackground:
		c.SetBackground(i.Color)
	case KindFillRect:
		c.FillRect(i.X1, i.Y1, i.X2, i.Y2, i.Color)
	case KindStrokeRect:
		c.StrokeRect(i.X1, i.Y1, i.X2, i.Y2, i.Color)
	case KindLine:
		c.DrawLine(i.X1, i.Y1, i.X2, i.Y2, i.Color)
	case KindEllipse:
		c.FillEllipse(i.X1, i.Y1, i.X2, i.Y2, i.Color)
	case KindText:
		c.DrawText(i.X1, i.Y1, i.Text, i.Vertical, i.Color)
	}
}

// Plan is the ordered list of primitives produced by Build. It can not be
// modified once returned.
type Plan struct {
	Width  int
	Height int

	list []Instruction
}

func (p *Plan) Len() int {
	return len(p.list)
}

func (p *Plan) Instructions() []Instruction {
	list := make([]Instruction, len(p.list))
	copy(list, p.list)
	return list
}

func (p *Plan) Filter(kind Kind) []Instruction {
	var list []Instruction
	for _, i := range p.list {
		if i.Kind == kind {
			list = append(list, i)
		}
	}
	return list
}

func (p *Plan) Execute(c Canvas) {
	for _, i := range p.list {
		i.Draw(c)
	}
}

// Render executes the plan on c and writes the encoded image to w.
func Render(p *Plan, c Canvas, w io.Writer) error {
	p.Execute(c)
	return c.Encode(w)
}

func (p *Plan) background(c RGB) {
	p.push(Instruction{Kind: KindBackground, Color: c})
}

func (p *Plan) fillRect(x1, y1, x2, y2 float64, c RGB) {
	x1, x2 = order(x1, x2)
	y1, y2 = order(y1, y2)
	p.push(Instruction{Kind: KindFillRect, X1: x1, Y1: y1, X2: x2, Y2: y2, Color: c})
}

func (p *Plan) strokeRect(x1, y1, x2, y2 float64, c RGB) {
	x1, x2 = order(x1, x2)
	y1, y2 = order(y1, y2)
	p.push(Instruction{Kind: KindStrokeRect, X1: x1, Y1: y1, X2: x2, Y2: y2, Color: c})
}

func (p *Plan) line(x1, y1, x2, y2 float64, c RGB) {
	p.push(Instruction{Kind: KindLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Color: c})
}

func (p *Plan) ellipse(cx, cy, w, h float64, c RGB) {
	p.push(Instruction{Kind: KindEllipse, X1: cx, Y1: cy, X2: w, Y2: h, Color: c})
}

func (p *Plan) text(x, y float64, str string, vertical bool, c RGB) {
	if str == "" {
		return
	}
	p.push(Instruction{Kind: KindText, X1: x, Y1: y, Text: str, Vertical: vertical, Color: c})
}

func (p *Plan) push(i Instruction) {
	p.list = append(p.list, i)
}

func order(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}
	return a, b
}
