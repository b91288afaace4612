package config

import (
	"fmt"

	"github.com/midbel/graphlib"
	"github.com/rs/zerolog"
)

// Build creates the chart described by c, loads its series and returns the
// resulting plan. Problems reported by the chart itself are part of the
// returned ErrorLog; the error is only set when a series can not be read.
func (c Chart) Build(logger zerolog.Logger) (*graphlib.Plan, graphlib.ErrorLog, error) {
	w, h := c.Size()
	opts := append([]graphlib.Option{graphlib.WithLogger(logger)}, c.Options()...)

	chart := graphlib.New(w, h, opts...)
	for i, s := range c.Series {
		data, err := s.Data()
		if err != nil {
			return nil, nil, fmt.Errorf("series %d: %w", i+1, err)
		}
		title := s.Title
		if title == "" {
			title = fmt.Sprintf("series %d", i+1)
		}
		if err := chart.AddSeries(title, data); err != nil {
			return nil, nil, err
		}
	}
	return chart.Build()
}
