package graphlib

import (
	"github.com/rs/zerolog"
)

const msgNoData = "No valid data added to graph."

type Stage int

const (
	StageEmpty Stage = iota
	StageData
	StageConfigured
	StageBuilt
)

func (s Stage) String() string {
	switch s {
	case StageEmpty:
		return "empty"
	case StageData:
		return "data"
	case StageConfigured:
		return "configured"
	case StageBuilt:
		return "built"
	default:
		return "unknown"
	}
}

// Chart collects series and options until Build is called. A Chart can only
// be built once and must not be shared between goroutines.
type Chart struct {
	cfg    Config
	series []Series
	errs   ErrorLog
	stage  Stage
	geo    Geometry
}

func New(width, height int, opts ...Option) *Chart {
	var c Chart
	c.cfg, c.errs = NewConfig(width, height, opts...)
	return &c
}

// NewConfig returns the default configuration updated by opts. Invalid
// options are reported in the returned ErrorLog and otherwise ignored.
func NewConfig(width, height int, opts ...Option) (Config, ErrorLog) {
	var errs ErrorLog
	if width <= 0 || height <= 0 {
		errs.Add(validationError("dimension", "invalid dimension %dx%d, using %dx%d", width, height, DefaultWidth, DefaultHeight))
		width, height = DefaultWidth, DefaultHeight
	}
	cfg := Default(width, height)
	for _, o := range opts {
		errs.Add(o(&cfg))
	}
	return cfg, errs
}

func (c *Chart) Stage() Stage {
	return c.stage
}

func (c *Chart) logger() *zerolog.Logger {
	return &c.cfg.logger
}

func (c *Chart) Configure(opts ...Option) error {
	if c.stage == StageBuilt {
		return misuse("configure")
	}
	for _, o := range opts {
		if err := o(&c.cfg); err != nil {
			c.logger().Warn().Err(err).Msg("option rejected")
			c.errs.Add(err)
		}
	}
	c.stage = StageConfigured
	return nil
}

func (c *Chart) AddSeries(title string, values map[int]any) error {
	if c.stage == StageBuilt {
		return misuse("add series")
	}
	s, dropped := NewSeries(title, values)
	for _, k := range dropped {
		c.logger().Warn().
			Str("series", title).
			Int("key", k).
			Msg("non numeric value dropped")
	}
	if s.Len() == 0 {
		c.errs.Add(validationError("series", "series %q has no numeric value", title))
		return nil
	}
	c.series = append(c.series, s)
	if c.stage == StageEmpty {
		c.stage = StageData
	}
	return nil
}

func (c *Chart) AddValues(title string, values ...float64) error {
	set := make(map[int]any, len(values))
	for i, v := range values {
		set[i] = v
	}
	return c.AddSeries(title, set)
}

// Build computes the layout of the chart and returns the plan to execute
// on a Canvas with all the problems met on the way.
func (c *Chart) Build() (*Plan, ErrorLog, error) {
	if c.stage == StageBuilt {
		return nil, nil, misuse("build")
	}
	c.stage = StageBuilt

	var (
		errs  = c.errs.Copy()
		state = Analyze(c.series)
	)
	if state.Empty() {
		errs.Add(ValidationError{Option: "data", Message: msgNoData})
	}
	geo, layout := Layout(state, c.cfg)
	errs = append(errs, layout...)
	c.geo = geo

	plan := render(state, c.cfg, geo, errs)
	c.logger().Debug().
		Int("series", state.SeriesCount()).
		Int("count", state.Count).
		Float64("min", state.Min).
		Float64("max", state.Max).
		Float64("interval", geo.Interval).
		Int("instructions", plan.Len()).
		Int("errors", errs.Len()).
		Msg("chart built")
	return plan, errs, nil
}

// Geometry returns the layout computed by Build.
func (c *Chart) Geometry() Geometry {
	return c.geo
}
