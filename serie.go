package graphlib

import (
	"math"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cast"
)

type Series struct {
	Title  string
	Points []Point
}

// NewSeries keeps the numeric values of the given map ordered by key. The
// keys of the values that could not be used are returned.
func NewSeries(title string, values map[int]any) (Series, []int) {
	var (
		keys    = lo.Keys(values)
		dropped []int
		serie   = Series{Title: title}
	)
	sort.Ints(keys)
	for _, k := range keys {
		f, ok := numeric(values[k])
		if !ok {
			dropped = append(dropped, k)
			continue
		}
		serie.Points = append(serie.Points, NewPoint(k, f))
	}
	return serie, dropped
}

func ValuesSeries(title string, values ...float64) (Series, []int) {
	set := make(map[int]any, len(values))
	for i, v := range values {
		set[i] = v
	}
	return NewSeries(title, set)
}

func (s Series) Len() int {
	return len(s.Points)
}

func numeric(v any) (float64, bool) {
	switch x := v.(type) {
	case nil, bool:
		return 0, false
	case string:
		v = strings.TrimSpace(x)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// State is the aggregate view of all the series of a chart. Min and Max
// are anchored at zero: Min is never above 0 and Max never below it, so the
// value axis always shows the baseline the bars grow from.
type State struct {
	Series []Series

	Min      float64
	Max      float64
	LowestX  int
	HighestX int
	Count    int

	AllPositive bool
	AllNegative bool
	Degenerate  bool
	Overflow    bool
}

func Analyze(series []Series) State {
	state := State{
		Series: series,
	}
	if len(series) == 0 {
		return state
	}
	var first = true
	for _, s := range series {
		for _, p := range s.Points {
			if first {
				state.LowestX, state.HighestX = p.X, p.X
				first = false
			}
			state.LowestX = min(state.LowestX, p.X)
			state.HighestX = max(state.HighestX, p.X)
			state.Min = math.Min(state.Min, p.Y)
			state.Max = math.Max(state.Max, p.Y)
		}
	}
	longest := lo.Max(lo.Map(series, func(s Series, _ int) int {
		return s.Len()
	}))
	span, ok := keySpan(state.LowestX, state.HighestX)
	if !ok {
		state.Overflow = true
		span = math.MaxInt
	}
	state.Count = max(longest, span)
	if first {
		state.Count = 0
	}

	if state.Min >= 0 {
		state.AllPositive = true
	} else if state.Max <= 0 {
		state.AllNegative = true
	}
	if state.Min >= 0 && state.Max == 0 {
		state.Min = 0
		state.Max = degenerateRange
		state.Degenerate = true
	}
	return state
}

// keySpan returns the number of x slots between lo and hi included. It
// fails when that number does not fit in an int.
func keySpan(lo, hi int) (int, bool) {
	diff := hi - lo
	if diff < 0 || diff == math.MaxInt {
		return 0, false
	}
	return diff + 1, true
}

func (s State) SeriesCount() int {
	return len(s.Series)
}

func (s State) Empty() bool {
	return s.Count == 0
}
