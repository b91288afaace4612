package vector

import (
	"bufio"
	"io"

	"github.com/midbel/svg"

	"github.com/midbel/graphlib"
)

const fontSize = graphlib.TextHeight - 1

// Canvas accumulates the primitives of a plan in a SVG document.
type Canvas struct {
	doc svg.SVG
}

func New(width, height int) *Canvas {
	doc := svg.NewSVG()
	doc.Dim = svg.NewDim(float64(width), float64(height))
	return &Canvas{doc: doc}
}

func (c *Canvas) SetBackground(rgb graphlib.RGB) {
	var el svg.Rect
	el.Pos = svg.NewPos(0, 0)
	el.Dim = c.doc.Dim
	el.Fill = svg.NewFill(rgb.String())
	c.doc.Append(el.AsElement())
}

func (c *Canvas) FillRect(x1, y1, x2, y2 float64, rgb graphlib.RGB) {
	var el svg.Rect
	el.Pos = svg.NewPos(x1, y1)
	el.Dim = svg.NewDim(x2-x1+1, y2-y1+1)
	el.Fill = svg.NewFill(rgb.String())
	c.doc.Append(el.AsElement())
}

func (c *Canvas) StrokeRect(x1, y1, x2, y2 float64, rgb graphlib.RGB) {
	var el svg.Rect
	el.Pos = svg.NewPos(x1+0.5, y1+0.5)
	el.Dim = svg.NewDim(x2-x1, y2-y1)
	el.Fill = svg.NewFill("")
	el.Stroke = svg.NewStroke(rgb.String(), 1)
	c.doc.Append(el.AsElement())
}

func (c *Canvas) DrawLine(x1, y1, x2, y2 float64, rgb graphlib.RGB) {
	el := svg.NewLine(svg.NewPos(x1+0.5, y1+0.5), svg.NewPos(x2+0.5, y2+0.5))
	el.Stroke = svg.NewStroke(rgb.String(), 1)
	c.doc.Append(el.AsElement())
}

func (c *Canvas) FillEllipse(cx, cy, w, h float64, rgb graphlib.RGB) {
	var el svg.Ellipse
	el.Pos = svg.NewPos(cx, cy)
	el.RX = w / 2
	el.RY = h / 2
	el.Fill = svg.NewFill(rgb.String())
	c.doc.Append(el.AsElement())
}

func (c *Canvas) DrawText(x, y float64, str string, vertical bool, rgb graphlib.RGB) {
	el := svg.NewText(str)
	el.Pos = svg.NewPos(x, y)
	el.Font = svg.NewFont(fontSize, "monospace")
	el.Font.Fill = rgb.String()
	el.Baseline = "hanging"
	if vertical {
		el.Transform.Rotate(-90, x, y)
	}
	c.doc.Append(el.AsElement())
}

func (c *Canvas) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	c.doc.Render(bw)
	return bw.Flush()
}
