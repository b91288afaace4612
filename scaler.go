package graphlib

import (
	"math"
	"sort"
	"strconv"
)

const (
	rangeDivisorFactor = 25
	degenerateRange    = 10
	degenerateScale    = 100
	tickDigits         = 10
)

type Range struct {
	F float64
	T float64
}

// NewRange returns a range whose bounds are always ordered.
func NewRange(f, t float64) Range {
	if f > t {
		f, t = t, f
	}
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return r.T
}

func (r Range) Min() float64 {
	return r.F
}

func (r Range) Contains(v float64) bool {
	return v >= r.F && v <= r.T
}

// TickInterval computes the spacing between two gridlines for values in
// [min, max] drawn on an axis of extent pixels.
func TickInterval(max, min float64, forced bool, extent float64) float64 {
	rg := math.Abs(max - min)
	if !forced {
		rg = math.Max(rg, math.Abs(max))
	}
	if rg == 0 {
		rg = degenerateRange
	}
	var count int
	for rg < 100 {
		rg *= 10
		count++
	}
	divisor := math.Round(extent / rangeDivisorFactor)
	if divisor < 1 {
		divisor = 1
	}
	divided := math.Round(rg / divisor)
	if divided < 1 {
		divided = 1
	}
	result := roundUpOneExtraDigit(divided)
	if result/divided >= 2 {
		result = roundUpSameDigits(divided)
	}
	return result / math.Pow10(count)
}

func roundUpOneExtraDigit(num float64) float64 {
	var (
		str    = integerString(num)
		digits = len(str)
		first  = "5" + str[1:]
		val, _ = strconv.ParseFloat(first, 64)
	)
	return roundTo(val, -digits)
}

func roundUpSameDigits(num float64) float64 {
	var (
		str    = integerString(num)
		digits = len(str)
	)
	if roundTo(num, -(digits-1)) == num {
		return num
	}
	second := str[:1] + "5" + str[2:]
	val, _ := strconv.ParseFloat(second, 64)
	return roundTo(val, -(digits - 1))
}

func integerString(num float64) string {
	return strconv.FormatFloat(math.Round(math.Abs(num)), 'f', 0, 64)
}

// roundTo rounds half away from zero at the given precision; a negative
// precision rounds to the left of the decimal point.
func roundTo(v float64, precision int) float64 {
	pow := math.Pow(10, float64(-precision))
	return math.Round(v/pow) * pow
}

// Ticks walks from the baseline (the forced minimum or 0) by interval
// until the values cover [min, max]. The result is sorted.
func Ticks(min, max float64, forced *float64, interval float64) []float64 {
	if interval <= 0 || math.IsNaN(interval) || math.IsInf(interval, 0) {
		return nil
	}
	var base float64
	if forced != nil {
		base = *forced
	}
	list := []float64{cleanTick(base, interval)}
	for i, cur := 1, base; cur < max; i++ {
		cur = cleanTick(base+float64(i)*interval, interval)
		list = append(list, cur)
	}
	for i, cur := 1, base; cur > min; i++ {
		cur = cleanTick(base-float64(i)*interval, interval)
		list = append(list, cur)
	}
	sort.Float64s(list)
	return list
}

// cleanTick drops the accumulated float noise of a tick, keeping ten more
// digits than the interval carries.
func cleanTick(v, interval float64) float64 {
	exp := int(math.Floor(math.Log10(interval))) - tickDigits
	if exp < 0 {
		pow := math.Pow10(-exp)
		v = math.Round(v*pow) / pow
	} else {
		pow := math.Pow10(exp)
		v = math.Round(v/pow) * pow
	}
	if v == 0 {
		return 0
	}
	return v
}

// Scale maps values to vertical pixel positions.
type Scale struct {
	Origin float64
	Unit   float64
	Adjust float64
}

func (s Scale) Pixel(v float64) float64 {
	return math.Round(s.Origin - v*s.Unit + s.Adjust)
}
