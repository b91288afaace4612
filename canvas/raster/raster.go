package raster

import (
	"image"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/midbel/graphlib"
)

// Canvas draws a plan into a PNG image with a fixed 7x13 font.
type Canvas struct {
	ctx *gg.Context
}

func New(width, height int) *Canvas {
	ctx := gg.NewContext(width, height)
	ctx.SetFontFace(basicfont.Face7x13)
	ctx.SetLineWidth(1)
	return &Canvas{ctx: ctx}
}

func (c *Canvas) SetBackground(rgb graphlib.RGB) {
	c.ctx.SetColor(rgb.Color())
	c.ctx.Clear()
}

func (c *Canvas) FillRect(x1, y1, x2, y2 float64, rgb graphlib.RGB) {
	c.ctx.SetColor(rgb.Color())
	c.ctx.DrawRectangle(x1, y1, x2-x1+1, y2-y1+1)
	c.ctx.Fill()
}

func (c *Canvas) StrokeRect(x1, y1, x2, y2 float64, rgb graphlib.RGB) {
	c.ctx.SetColor(rgb.Color())
	c.ctx.DrawRectangle(x1+0.5, y1+0.5, x2-x1, y2-y1)
	c.ctx.Stroke()
}

func (c *Canvas) DrawLine(x1, y1, x2, y2 float64, rgb graphlib.RGB) {
	c.ctx.SetColor(rgb.Color())
	c.ctx.DrawLine(x1+0.5, y1+0.5, x2+0.5, y2+0.5)
	c.ctx.Stroke()
}

func (c *Canvas) FillEllipse(cx, cy, w, h float64, rgb graphlib.RGB) {
	c.ctx.SetColor(rgb.Color())
	c.ctx.DrawEllipse(cx, cy, w/2, h/2)
	c.ctx.Fill()
}

// DrawText writes str with its top left corner at x, y. Vertical text runs
// upward from y.
func (c *Canvas) DrawText(x, y float64, str string, vertical bool, rgb graphlib.RGB) {
	c.ctx.SetColor(rgb.Color())
	if !vertical {
		c.ctx.DrawStringAnchored(str, x, y, 0, 1)
		return
	}
	c.ctx.Push()
	defer c.ctx.Pop()
	c.ctx.RotateAbout(gg.Radians(-90), x, y)
	c.ctx.DrawStringAnchored(str, x, y, 0, 1)
}

func (c *Canvas) Encode(w io.Writer) error {
	return c.ctx.EncodePNG(w)
}

func (c *Canvas) Image() image.Image {
	return c.ctx.Image()
}
