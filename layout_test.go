package graphlib

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func layoutOf(t *testing.T, width, height int, values []map[int]any, opts ...Option) (Geometry, ErrorLog) {
	t.Helper()
	cfg, errs := NewConfig(width, height, opts...)
	require.True(t, errs.Empty(), "unexpected errors: %v", errs.Messages())

	var list []Series
	for i, vs := range values {
		s, _ := NewSeries(string(rune('a'+i)), vs)
		list = append(list, s)
	}
	return Layout(Analyze(list), cfg)
}

func TestOffsetPercent(t *testing.T) {
	assert.Equal(t, 0.0, OffsetPercent(1))
	assert.Equal(t, 24.0, OffsetPercent(2))
	assert.Equal(t, 15.0, OffsetPercent(3))
	assert.Equal(t, 10.0, OffsetPercent(4))
	assert.Equal(t, 9.0, OffsetPercent(5))
	assert.Equal(t, 5.0, OffsetPercent(9))
}

func TestLayout_SingleSeries(t *testing.T) {
	geo, errs := layoutOf(t, 400, 300, []map[int]any{{0: 10, 1: 20, 2: 5}})
	require.True(t, errs.Empty())

	assert.Equal(t, Padding{Top: 36, Right: 32, Bottom: 36, Left: 32}, geo.Padding)
	assert.InDelta(t, 74.667, geo.BarWidth, 1e-3)
	assert.InDelta(t, 37.333, geo.SpaceWidth, 1e-3)
	assert.InDelta(t, 11.4, geo.Scale.Unit, 1e-9)
	assert.Equal(t, 3.0, geo.Interval)
	assert.Equal(t, NewRange(0, 21), geo.Displayed)
	assert.True(t, geo.DrawBars)

	require.Len(t, geo.Series, 1)
	bars := geo.Series[0].Bars
	require.Len(t, bars, 3)
	for i, want := range []struct{ X1, Y1 float64 }{{51, 150}, {163, 36}, {275, 207}} {
		assert.Equal(t, want.X1, bars[i].X1, "bar %d", i)
		assert.Equal(t, want.Y1, bars[i].Y1, "bar %d", i)
		assert.Equal(t, 264.0, bars[i].Y2, "bar %d", i)
	}
	assert.Equal(t, 114.0, bars[0].Height())
	assert.Equal(t, 228.0, bars[1].Height())
	assert.Len(t, geo.XLabels, 3)
	assert.Len(t, geo.VGrid, 3)
}

func TestLayout_SeriesOffset(t *testing.T) {
	values := []map[int]any{
		{0: 10, 1: 20, 2: 5},
		{0: 12, 1: 18, 2: 9},
		{0: 3, 1: 6, 2: 9},
	}
	geo, errs := layoutOf(t, 400, 300, values)
	require.True(t, errs.Empty())
	require.Len(t, geo.Series, 3)

	assert.InDelta(t, 11.2, geo.Offset, 1e-9)
	for i, want := range []float64{51, 62, 73} {
		assert.Equal(t, want, geo.Series[i].Bars[0].X1, "series %d", i)
	}
	assert.Len(t, geo.XLabels, 3)
}

func TestLayout_Clipping(t *testing.T) {
	geo, _ := layoutOf(t, 400, 300, []map[int]any{{0: 10, 1: 20, 2: 5}}, WithRange(8, 15))
	require.NotNil(t, geo.Range)

	bars := geo.Series[0].Bars
	assert.False(t, bars[0].Clipped)

	assert.True(t, bars[1].Clipped)
	assert.False(t, bars[1].HideOutline)
	assert.Equal(t, geo.Scale.Pixel(15), bars[1].Y1)

	assert.True(t, bars[2].Clipped)
	assert.True(t, bars[2].HideOutline)
	assert.Equal(t, bars[2].Y2, bars[2].Y1)
}

func TestLayout_ClippingBoundary(t *testing.T) {
	geo, _ := layoutOf(t, 400, 300, []map[int]any{{0: 10, 1: 20, 2: 5}}, WithRange(5, 20))
	require.NotNil(t, geo.Range)

	for _, b := range geo.Series[0].Bars {
		assert.False(t, b.Clipped, "value %v", b.Value)
		assert.False(t, b.HideOutline, "value %v", b.Value)
	}
	bars := geo.Series[0].Bars
	assert.Equal(t, geo.Scale.Pixel(20), bars[1].Y1)
	assert.Equal(t, bars[2].Y2, bars[2].Y1)
}

func TestLayout_SmallMagnitude(t *testing.T) {
	geo, errs := layoutOf(t, 400, 300, []map[int]any{{0: 1e-12, 1: 2e-12}})
	assert.True(t, errs.Empty())
	assert.InDelta(t, 3e-13, geo.Interval, 1e-20)
	require.Len(t, geo.Ticks, 8)
	assert.InDelta(t, 2.1e-12, geo.Displayed.T, 1e-20)
	assert.Equal(t, 25.0, geo.YAxis.Y2)
	assert.Len(t, geo.HGrid, 8)
}

func TestLayout_SparseKeys(t *testing.T) {
	values := []map[int]any{{0: 1, 2000000: 2}}
	geo, errs := layoutOf(t, 400, 300, values)
	require.Equal(t, 1, errs.Len())
	assert.Equal(t, msgTooSmall, errs[0].Error())
	assert.Empty(t, geo.VGrid)

	geo, _ = layoutOf(t, 400, 300, values, WithIgnoreDataFitErrors(true))
	assert.Empty(t, geo.VGrid)
}

func TestLayout_KeySpanOverflow(t *testing.T) {
	geo, errs := layoutOf(t, 400, 300, []map[int]any{{math.MinInt: 1, math.MaxInt: 2}})
	require.Equal(t, 1, errs.Len())
	assert.Equal(t, msgKeySpan, errs[0].Error())
	assert.False(t, geo.DrawBars)
	assert.Empty(t, geo.Series)
	assert.Empty(t, geo.VGrid)
}

func TestLayout_Goals(t *testing.T) {
	geo, _ := layoutOf(t, 400, 300, []map[int]any{{0: 10, 1: 20, 2: 5}}, WithGoalLine(10, "", "dashed"), WithGoalLine(5, "red", ""))
	require.Len(t, geo.Goals, 2)
	assert.Nil(t, geo.Range)

	dashed := geo.Goals[0]
	require.Len(t, dashed.Segments, 56)
	first := dashed.Segments[0]
	assert.Equal(t, Segment{X1: 32, Y1: 150, X2: 34, Y2: 150}, first)
	assert.Equal(t, 38.0, dashed.Segments[1].X1)

	solid := geo.Goals[1]
	require.Len(t, solid.Segments, 1)
	assert.Equal(t, 368.0, solid.Segments[0].X2)
	require.NotNil(t, solid.Color)
	assert.Equal(t, Red, *solid.Color)
}

func TestLayout_GoalAboveData(t *testing.T) {
	geo, _ := layoutOf(t, 400, 300, []map[int]any{{0: 10, 1: 20, 2: 5}}, WithGoalLine(50, "", ""))
	require.NotNil(t, geo.Range)
	assert.Equal(t, NewRange(0, 50), *geo.Range)
	assert.GreaterOrEqual(t, geo.Displayed.T, 50.0)
}

func TestLayout_NegativeValues(t *testing.T) {
	geo, errs := layoutOf(t, 400, 300, []map[int]any{{0: -10, 1: 20}})
	require.True(t, errs.Empty())

	// span 30 over 228 pixels, x axis lifted by 10 units
	assert.Equal(t, 264-76.0, geo.XAxis.Y1)
	bars := geo.Series[0].Bars
	assert.Greater(t, bars[0].Y1, bars[0].Y2)
	assert.Less(t, bars[1].Y1, bars[1].Y2)
	assert.Greater(t, geo.Series[0].Values[0].Y, bars[0].Y2)
}

func TestLayout_TooSmall(t *testing.T) {
	values := make(map[int]any)
	for i := 0; i < 20; i++ {
		values[i] = i
	}
	geo, errs := layoutOf(t, 40, 300, []map[int]any{values})
	require.Equal(t, 1, errs.Len())
	assert.Equal(t, msgTooSmall, errs[0].Error())
	assert.False(t, geo.DrawBars)

	geo, errs = layoutOf(t, 40, 300, []map[int]any{values}, WithIgnoreDataFitErrors(true))
	assert.True(t, errs.Empty())
	assert.True(t, geo.DrawBars)
	assert.GreaterOrEqual(t, geo.BarWidth, 1.0)
}

func TestLayout_NotTallEnough(t *testing.T) {
	geo, errs := layoutOf(t, 400, 300, []map[int]any{{0: 1}}, WithXAxisMargin(90))
	require.Equal(t, 1, errs.Len())
	assert.Equal(t, msgNotTallEnough, errs[0].Error())
	assert.False(t, geo.DrawBars)
}

func TestLayout_Title(t *testing.T) {
	geo, _ := layoutOf(t, 400, 300, []map[int]any{{0: 1}}, WithTitle("Sales"))
	assert.Equal(t, 48.0, geo.Padding.Top)
	assert.Equal(t, "Sales", geo.Title.Text)
	assert.Equal(t, 200-15.0, geo.Title.X)

	geo, _ = layoutOf(t, 400, 300, []map[int]any{{0: 1}}, WithTitle("Sales"), WithTitleLocation("right"))
	assert.Equal(t, 368-30.0, geo.Title.X)
}

func TestLayout_XValuesInterval(t *testing.T) {
	geo, _ := layoutOf(t, 400, 300, []map[int]any{{0: 1, 1: 2, 2: 3, 3: 4, 4: 5}}, WithXValuesInterval(2))
	require.Len(t, geo.XLabels, 3)
	assert.Equal(t, []string{"0", "2", "4"}, []string{geo.XLabels[0].Text, geo.XLabels[1].Text, geo.XLabels[2].Text})
}

func TestLayout_Empty(t *testing.T) {
	geo, errs := layoutOf(t, 400, 300, nil, WithTitle("nothing"))
	assert.True(t, errs.Empty())
	assert.False(t, geo.DrawBars)
	assert.Empty(t, geo.Series)
	assert.Equal(t, "nothing", geo.Title.Text)
}
