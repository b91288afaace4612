package graphlib

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(p *Plan) []string {
	var list []string
	for _, i := range p.Filter(KindText) {
		list = append(list, i.Text)
	}
	return list
}

func TestChart_Build(t *testing.T) {
	c := New(400, 300)
	assert.Equal(t, StageEmpty, c.Stage())

	require.NoError(t, c.AddSeries("sales", map[int]any{0: 10, 1: 20, 2: 5}))
	assert.Equal(t, StageData, c.Stage())

	plan, errs, err := c.Build()
	require.NoError(t, err)
	assert.True(t, errs.Empty())
	assert.Equal(t, StageBuilt, c.Stage())

	assert.Equal(t, 400, plan.Width)
	assert.Equal(t, 300, plan.Height)
	assert.Equal(t, KindBackground, plan.Instructions()[0].Kind)
	assert.Len(t, plan.Filter(KindFillRect), 3)
	assert.Len(t, plan.Filter(KindStrokeRect), 3)
	assert.Contains(t, texts(plan), "21")
	assert.Equal(t, 3, len(c.Geometry().Series[0].Bars))
}

func TestChart_BuildTwice(t *testing.T) {
	c := New(400, 300)
	require.NoError(t, c.AddValues("a", 1, 2, 3))
	_, _, err := c.Build()
	require.NoError(t, err)

	_, _, err = c.Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBuilt))

	var misuse *MisuseError
	require.True(t, errors.As(err, &misuse))
	assert.Equal(t, "build", misuse.Op)

	assert.ErrorIs(t, c.AddValues("b", 1), ErrBuilt)
	assert.ErrorIs(t, c.Configure(WithGrid(false)), ErrBuilt)
}

func TestChart_Configure(t *testing.T) {
	c := New(400, 300)
	require.NoError(t, c.AddValues("a", 1, 2, 3))
	require.NoError(t, c.Configure(WithGrid(false), WithTitleLocation("top")))
	assert.Equal(t, StageConfigured, c.Stage())

	plan, errs, err := c.Build()
	require.NoError(t, err)
	require.Equal(t, 1, errs.Len())

	var verr ValidationError
	require.True(t, errors.As(errs[0], &verr))
	assert.Equal(t, "title location", verr.Option)
	assert.Contains(t, texts(plan), bannerTitle)
}

func TestChart_Empty(t *testing.T) {
	c := New(400, 300, WithTitle("empty"))
	plan, errs, err := c.Build()
	require.NoError(t, err)
	require.Equal(t, 1, errs.Len())
	assert.Equal(t, msgNoData, errs[0].Error())

	list := texts(plan)
	assert.Contains(t, list, "empty")
	assert.Contains(t, list, bannerTitle)
	assert.Contains(t, list, "[1] "+msgNoData)
	assert.Empty(t, plan.Filter(KindLine))
}

func TestChart_AddSeries(t *testing.T) {
	var buf bytes.Buffer
	c := New(400, 300, WithLogger(zerolog.New(&buf)))

	require.NoError(t, c.AddSeries("bad", map[int]any{0: "x", 1: nil}))
	assert.Equal(t, StageEmpty, c.Stage())
	assert.Contains(t, buf.String(), "non numeric value dropped")

	require.NoError(t, c.AddSeries("good", map[int]any{0: 1, 1: "oops"}))
	assert.Equal(t, StageData, c.Stage())

	_, errs, err := c.Build()
	require.NoError(t, err)
	require.Equal(t, 1, errs.Len())
	assert.Contains(t, errs[0].Error(), `"bad"`)
}

func TestChart_InvalidDimension(t *testing.T) {
	c := New(0, -5)
	require.NoError(t, c.AddValues("a", 1))
	plan, errs, err := c.Build()
	require.NoError(t, err)
	assert.Equal(t, DefaultWidth, plan.Width)
	assert.Equal(t, DefaultHeight, plan.Height)
	assert.Equal(t, 1, errs.Len())
}

func TestChart_LineAndPoints(t *testing.T) {
	c := New(400, 300, WithBars(false), WithLine(true), WithDataPoints(true), WithDataValues(true))
	require.NoError(t, c.AddValues("a", 4, 8, 6))
	plan, _, err := c.Build()
	require.NoError(t, err)

	assert.Empty(t, plan.Filter(KindFillRect))
	assert.Len(t, plan.Filter(KindEllipse), 3)

	var lines int
	line := c.Geometry().Series[0].Line
	for _, i := range plan.Filter(KindLine) {
		if i.X1 == line[0].X && i.Y1 == line[0].Y {
			lines++
		}
	}
	assert.Equal(t, 1, lines)
	assert.Contains(t, texts(plan), "8")
}

func TestChart_Legend(t *testing.T) {
	c := New(400, 300, WithLegendTitles("north", "south"), WithBarColors("red", "blue"))
	require.NoError(t, c.AddValues("north", 1, 2))
	require.NoError(t, c.AddValues("south", 3, 4))
	plan, _, err := c.Build()
	require.NoError(t, err)

	list := texts(plan)
	assert.Contains(t, list, "north")
	assert.Contains(t, list, "south")

	var swatches []RGB
	for _, i := range plan.Filter(KindFillRect) {
		if math.Abs(i.X2-i.X1-swatchSize) < 1e-6 {
			swatches = append(swatches, i.Color)
		}
	}
	assert.Equal(t, []RGB{Red, {B: 255}}, swatches)
}

func TestChart_Gradient(t *testing.T) {
	c := New(400, 300, WithGradient("white", "black"), WithBarOutline(false))
	require.NoError(t, c.AddValues("a", 1, 2))
	plan, _, err := c.Build()
	require.NoError(t, err)

	assert.Empty(t, plan.Filter(KindStrokeRect))
	bar := c.Geometry().Series[0].Bars[0]
	var cols int
	for _, i := range plan.Filter(KindLine) {
		if i.X1 == i.X2 && i.X1 >= bar.X1 && i.X1 <= bar.X2 && i.Y1 == bar.Y1 {
			cols++
		}
	}
	assert.Equal(t, int(bar.Width())+1, cols)
}
