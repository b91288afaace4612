package graphlib

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	calls []string
}

func (r *recorder) SetBackground(RGB) {
	r.calls = append(r.calls, "background")
}

func (r *recorder) FillRect(x1, y1, x2, y2 float64, c RGB) {
	r.calls = append(r.calls, "fill")
}

func (r *recorder) StrokeRect(x1, y1, x2, y2 float64, c RGB) {
	r.calls = append(r.calls, "stroke")
}

func (r *recorder) DrawLine(x1, y1, x2, y2 float64, c RGB) {
	r.calls = append(r.calls, "line")
}

func (r *recorder) FillEllipse(cx, cy, w, h float64, c RGB) {
	r.calls = append(r.calls, "ellipse")
}

func (r *recorder) DrawText(x, y float64, str string, vertical bool, c RGB) {
	r.calls = append(r.calls, "text:"+str)
}

func (r *recorder) Encode(w io.Writer) error {
	_, err := io.WriteString(w, "done")
	return err
}

func TestPlan_Builders(t *testing.T) {
	var p Plan
	p.background(White)
	p.fillRect(10, 20, 5, 2, Red)
	p.strokeRect(1, 1, 0, 0, Black)
	p.text(0, 0, "", false, Black)
	p.text(1, 2, "hello", true, Black)
	p.ellipse(5, 5, 6, 6, Black)

	require.Equal(t, 5, p.Len())
	fill := p.Filter(KindFillRect)[0]
	assert.Equal(t, Instruction{Kind: KindFillRect, X1: 5, Y1: 2, X2: 10, Y2: 20, Color: Red}, fill)

	list := p.Instructions()
	list[0].Kind = KindLine
	assert.Equal(t, KindBackground, p.Instructions()[0].Kind)
}

func TestPlan_Execute(t *testing.T) {
	var p Plan
	p.background(White)
	p.fillRect(0, 0, 1, 1, Red)
	p.strokeRect(0, 0, 1, 1, Red)
	p.line(0, 0, 1, 1, Red)
	p.ellipse(0, 0, 1, 1, Red)
	p.text(0, 0, "x", false, Red)

	var (
		rec recorder
		buf bytes.Buffer
	)
	require.NoError(t, Render(&p, &rec, &buf))
	assert.Equal(t, []string{"background", "fill", "stroke", "line", "ellipse", "text:x"}, rec.calls)
	assert.Equal(t, "done", buf.String())
}

func TestInstruction_String(t *testing.T) {
	i := Instruction{Kind: KindLine, X1: 1, Y1: 2, X2: 3, Y2: 4, Color: Red}
	assert.Equal(t, "line (1,2) (3,4) #ff0000", i.String())

	i = Instruction{Kind: KindText, X1: 1, Y1: 2, Text: "a", Color: Black}
	assert.Equal(t, `text (1,2) "a" vertical=false #000000`, i.String())
}

func TestMarker_Draw(t *testing.T) {
	var p Plan
	MarkerSquare.draw(&p, NewPos(10, 10), 6, Black)
	MarkerCircle.draw(&p, NewPos(10, 10), 6, Black)

	sq := p.Filter(KindFillRect)
	require.Len(t, sq, 1)
	assert.Equal(t, 7.0, sq[0].X1)
	assert.Equal(t, 13.0, sq[0].X2)

	el := p.Filter(KindEllipse)
	require.Len(t, el, 1)
	assert.Equal(t, 6.0, el[0].X2)

	m, ok := ParseMarker("SQUARE")
	assert.True(t, ok)
	assert.Equal(t, MarkerSquare, m)
	_, ok = ParseMarker("star")
	assert.False(t, ok)
}
