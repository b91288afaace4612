package graphlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickInterval(t *testing.T) {
	tests := []struct {
		Max    float64
		Min    float64
		Forced bool
		Extent float64
		Want   float64
	}{
		{Max: 437, Extent: 228, Want: 50},
		{Max: 437, Extent: 300, Want: 40},
		{Max: 20, Extent: 228, Want: 3},
		{Max: 10, Extent: 228, Want: 2},
		{Max: 0, Extent: 228, Want: 2},
		{Max: 0.5, Extent: 228, Want: 0.1},
	}
	for _, tt := range tests {
		got := TickInterval(tt.Max, tt.Min, tt.Forced, tt.Extent)
		assert.InDelta(t, tt.Want, got, 1e-9, "max=%v min=%v extent=%v", tt.Max, tt.Min, tt.Extent)
	}
}

func TestTickInterval_SmallExtent(t *testing.T) {
	got := TickInterval(100, 0, false, 3)
	assert.Greater(t, got, 0.0)
}

func TestTicks(t *testing.T) {
	assert.Equal(t, []float64{0, 50, 100, 150, 200, 250, 300, 350, 400, 450}, Ticks(0, 437, nil, 50))
	assert.Equal(t, []float64{-20, -10, 0, 10, 20, 30}, Ticks(-15, 30, nil, 10))

	base := 20.0
	assert.Equal(t, []float64{20, 35, 50, 65, 80}, Ticks(20, 80, &base, 15))
	assert.Nil(t, Ticks(0, 10, nil, 0))
}

func TestTicks_CoverData(t *testing.T) {
	for _, max := range []float64{1, 7, 19, 99, 437, 1234.5} {
		interval := TickInterval(max, 0, false, 228)
		ticks := Ticks(0, max, nil, interval)
		assert.GreaterOrEqual(t, ticks[len(ticks)-1], max)
		assert.Equal(t, 0.0, ticks[0])
	}
}

func TestRange(t *testing.T) {
	rg := NewRange(30, 10)
	assert.Equal(t, 10.0, rg.F)
	assert.Equal(t, 30.0, rg.T)
	assert.Equal(t, 20.0, rg.Len())
	assert.True(t, rg.Contains(10))
	assert.True(t, rg.Contains(30))
	assert.False(t, rg.Contains(31))
	assert.Equal(t, 10.0, rg.Min())
	assert.Equal(t, 30.0, rg.Max())
}

func TestScale_Pixel(t *testing.T) {
	s := Scale{Origin: 264, Unit: 11.4}
	assert.Equal(t, 150.0, s.Pixel(10))
	assert.Equal(t, 36.0, s.Pixel(20))
	assert.Equal(t, 264.0, s.Pixel(0))
}

func TestTicks_SmallMagnitude(t *testing.T) {
	for _, max := range []float64{2e-12, 2e-16} {
		interval := max * 0.15
		ticks := Ticks(0, max, nil, interval)
		require.Len(t, ticks, 8, "max=%v", max)
		assert.Equal(t, 0.0, ticks[0])
		assert.InDelta(t, interval, ticks[1], interval*1e-6)
		assert.InDelta(t, 7*interval, ticks[7], interval*1e-6)
	}
}
