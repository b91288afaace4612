package graphlib

import (
	"strings"

	"github.com/rs/zerolog"
)

const (
	DefaultWidth     = 400
	DefaultHeight    = 300
	DefaultXMargin   = 12.0
	DefaultYMargin   = 8.0
	DefaultPointSize = 6.0
)

type Align int

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

func ParseAlign(str string) (Align, bool) {
	switch strings.ToLower(str) {
	case "", "center":
		return AlignCenter, true
	case "left":
		return AlignLeft, true
	case "right":
		return AlignRight, true
	default:
		return AlignCenter, false
	}
}

type Goal struct {
	Value float64
	Color *RGB
	Style LineStyle
}

type Config struct {
	Width  float64
	Height float64

	Bars    bool
	Line    bool
	Outline bool
	Grid    bool

	XAxis   bool
	YAxis   bool
	XMargin float64
	YMargin float64

	XValues         bool
	YValues         bool
	XValuesVertical bool
	XInterval       int

	DataPoints bool
	PointSize  float64
	PointShape Marker
	DataValues bool

	Title      string
	TitleAlign Align

	Range *Range
	Goals []Goal

	Legend       bool
	LegendTitles []string

	IgnoreFitErrors bool
	Darken          float64

	Style Style

	format formatChain
	logger zerolog.Logger
}

func Default(width, height int) Config {
	return Config{
		Width:           float64(width),
		Height:          float64(height),
		Bars:            true,
		Outline:         true,
		Grid:            true,
		XAxis:           true,
		YAxis:           true,
		XMargin:         DefaultXMargin,
		YMargin:         DefaultYMargin,
		XValues:         true,
		YValues:         true,
		XValuesVertical: true,
		PointSize:       DefaultPointSize,
		Darken:          DefaultDarken,
		Style:           DefaultStyle(),
		logger:          zerolog.Nop(),
	}
}

func (c Config) Gradient() bool {
	return len(c.Style.Gradients) > 0
}

func (c Config) Forced() bool {
	return c.Range != nil
}

func (c Config) Format(v float64) string {
	return c.format.Format(v)
}

type Option func(*Config) error

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Config) error {
		c.logger = logger
		return nil
	}
}

func WithBars(on bool) Option {
	return func(c *Config) error {
		c.Bars = on
		return nil
	}
}

func WithLine(on bool) Option {
	return func(c *Config) error {
		c.Line = on
		return nil
	}
}

func WithBarOutline(on bool) Option {
	return func(c *Config) error {
		c.Outline = on
		return nil
	}
}

func WithGrid(on bool) Option {
	return func(c *Config) error {
		c.Grid = on
		return nil
	}
}

func WithXAxis(on bool) Option {
	return func(c *Config) error {
		c.XAxis = on
		return nil
	}
}

func WithYAxis(on bool) Option {
	return func(c *Config) error {
		c.YAxis = on
		return nil
	}
}

func WithXAxisMargin(percent float64) Option {
	return func(c *Config) error {
		if percent < 0 || percent >= 100 {
			return validationError("x axis margin", "x axis margin %v%% not in [0, 100)", percent)
		}
		c.XMargin = percent
		return nil
	}
}

func WithYAxisMargin(percent float64) Option {
	return func(c *Config) error {
		if percent < 0 || percent >= 100 {
			return validationError("y axis margin", "y axis margin %v%% not in [0, 100)", percent)
		}
		c.YMargin = percent
		return nil
	}
}

func WithXValues(on bool) Option {
	return func(c *Config) error {
		c.XValues = on
		return nil
	}
}

func WithYValues(on bool) Option {
	return func(c *Config) error {
		c.YValues = on
		return nil
	}
}

func WithXValuesHorizontal(on bool) Option {
	return func(c *Config) error {
		c.XValuesVertical = !on
		return nil
	}
}

func WithXValuesInterval(every int) Option {
	return func(c *Config) error {
		if every <= 0 {
			return validationError("x values interval", "x values interval must be positive, got %d", every)
		}
		c.XInterval = every
		return nil
	}
}

func WithDataPoints(on bool) Option {
	return func(c *Config) error {
		c.DataPoints = on
		return nil
	}
}

func WithDataPointSize(size float64) Option {
	return func(c *Config) error {
		if size <= 0 {
			return validationError("data point size", "data point size must be positive, got %v", size)
		}
		c.PointSize = size
		return nil
	}
}

func WithDataPointShape(shape string) Option {
	return func(c *Config) error {
		m, ok := ParseMarker(shape)
		if !ok {
			return validationError("data point shape", "unknown data point shape %q", shape)
		}
		c.PointShape = m
		return nil
	}
}

func WithDataValues(on bool) Option {
	return func(c *Config) error {
		c.DataValues = on
		return nil
	}
}

func WithTitle(title string) Option {
	return func(c *Config) error {
		if strings.TrimSpace(title) == "" {
			return validationError("title", "title is empty")
		}
		c.Title = title
		return nil
	}
}

func WithTitleLocation(loc string) Option {
	return func(c *Config) error {
		a, ok := ParseAlign(loc)
		if !ok {
			return validationError("title location", "title location %q not one of left, center, right", loc)
		}
		c.TitleAlign = a
		return nil
	}
}

// WithRange forces the displayed range of values. Bounds are swapped when
// given in the wrong order.
func WithRange(min, max float64) Option {
	return func(c *Config) error {
		rg := NewRange(min, max)
		c.Range = &rg
		return nil
	}
}

func WithGoalLine(value float64, color string, style string) Option {
	return func(c *Config) error {
		s, ok := ParseLineStyle(style)
		if !ok {
			return validationError("goal line", "goal line style %q not one of solid, dashed", style)
		}
		g := Goal{
			Value: value,
			Style: s,
		}
		if color != "" {
			rgb, err := ParseColor(color)
			if err != nil {
				return validationError("goal line", "goal line color: %s", err)
			}
			g.Color = &rgb
		}
		c.Goals = append(c.Goals, g)
		return nil
	}
}

func WithComma() Option {
	return func(c *Config) error {
		c.format.grouping = true
		return nil
	}
}

func WithPercent() Option {
	return WithFormatter(Percent)
}

func WithDegrees() Option {
	return WithFormatter(Degrees)
}

func WithSuffix(suffix string) Option {
	return func(c *Config) error {
		if suffix == "" {
			return validationError("suffix", "suffix is empty")
		}
		return WithFormatter(Suffix(suffix))(c)
	}
}

// WithFormatter appends fn to the formatters applied to displayed values.
// Comma grouping, when enabled, always runs before them.
func WithFormatter(fn Formatter) Option {
	return func(c *Config) error {
		if fn == nil {
			return validationError("formatter", "nil formatter")
		}
		c.format.list = append(c.format.list, fn)
		return nil
	}
}

func WithCurrency(name string) Option {
	return func(c *Config) error {
		if name == "" {
			return validationError("currency", "currency is empty")
		}
		c.format.currency = CurrencySymbol(name)
		return nil
	}
}

func WithLegend(on bool) Option {
	return func(c *Config) error {
		c.Legend = on
		return nil
	}
}

func WithLegendTitles(titles ...string) Option {
	return func(c *Config) error {
		c.Legend = true
		c.LegendTitles = append(c.LegendTitles, titles...)
		return nil
	}
}

func WithIgnoreDataFitErrors(on bool) Option {
	return func(c *Config) error {
		c.IgnoreFitErrors = on
		return nil
	}
}

func WithDarkenFactor(percent float64) Option {
	return func(c *Config) error {
		if percent < 0 || percent > 100 {
			return validationError("darken", "darken factor %v%% not in [0, 100]", percent)
		}
		c.Darken = percent
		return nil
	}
}

func WithPalette(name string) Option {
	return func(c *Config) error {
		list, ok := PaletteByName(name)
		if !ok {
			return validationError("palette", "unknown palette %q", name)
		}
		c.Style.Bars = list
		return nil
	}
}

func WithBarColors(colors ...string) Option {
	return func(c *Config) error {
		list, err := parseColors("bar color", colors)
		c.Style.Bars = append(c.Style.Bars, list...)
		return err
	}
}

func WithLineColors(colors ...string) Option {
	return func(c *Config) error {
		list, err := parseColors("line color", colors)
		c.Style.Lines = append(c.Style.Lines, list...)
		return err
	}
}

func WithGradient(from, to string) Option {
	return func(c *Config) error {
		fst, err := ParseColor(from)
		if err != nil {
			return validationError("gradient", "gradient: %s", err)
		}
		lst, err := ParseColor(to)
		if err != nil {
			return validationError("gradient", "gradient: %s", err)
		}
		c.Style.Gradients = append(c.Style.Gradients, GradientPair{From: fst, To: lst})
		return nil
	}
}

func WithBackgroundColor(str string) Option {
	return withColor("background color", str, func(c *Config, rgb RGB) {
		c.Style.Background = rgb
	})
}

func WithGridColor(str string) Option {
	return withColor("grid color", str, func(c *Config, rgb RGB) {
		c.Style.Grid = rgb
	})
}

func WithTitleColor(str string) Option {
	return withColor("title color", str, func(c *Config, rgb RGB) {
		c.Style.Title = rgb
	})
}

func WithBarOutlineColor(str string) Option {
	return withColor("bar outline color", str, func(c *Config, rgb RGB) {
		c.Style.Outline = rgb
	})
}

func WithTextColor(str string) Option {
	return withColor("text color", str, func(c *Config, rgb RGB) {
		c.Style.XText = rgb
		c.Style.YText = rgb
	})
}

func WithXAxisTextColor(str string) Option {
	return withColor("x axis text color", str, func(c *Config, rgb RGB) {
		c.Style.XText = rgb
	})
}

func WithYAxisTextColor(str string) Option {
	return withColor("y axis text color", str, func(c *Config, rgb RGB) {
		c.Style.YText = rgb
	})
}

func WithAxisColor(str string) Option {
	return withColor("axis color", str, func(c *Config, rgb RGB) {
		c.Style.XAxis = rgb
		c.Style.YAxis = rgb
	})
}

func WithXAxisColor(str string) Option {
	return withColor("x axis color", str, func(c *Config, rgb RGB) {
		c.Style.XAxis = rgb
	})
}

func WithYAxisColor(str string) Option {
	return withColor("y axis color", str, func(c *Config, rgb RGB) {
		c.Style.YAxis = rgb
	})
}

func WithDataPointColor(str string) Option {
	return withColor("data point color", str, func(c *Config, rgb RGB) {
		c.Style.DataPoint = rgb
	})
}

func WithDataValueColor(str string) Option {
	return withColor("data value color", str, func(c *Config, rgb RGB) {
		c.Style.DataValue = rgb
	})
}

func WithGoalLineColor(str string) Option {
	return withColor("goal line color", str, func(c *Config, rgb RGB) {
		c.Style.Goal = rgb
	})
}

func WithLegendColor(str string) Option {
	return withColor("legend color", str, func(c *Config, rgb RGB) {
		c.Style.Legend.Fill = rgb
	})
}

func WithLegendTextColor(str string) Option {
	return withColor("legend text color", str, func(c *Config, rgb RGB) {
		c.Style.Legend.Text = rgb
	})
}

func WithLegendOutlineColor(str string) Option {
	return withColor("legend outline color", str, func(c *Config, rgb RGB) {
		c.Style.Legend.Outline = rgb
	})
}

func WithSwatchOutlineColor(str string) Option {
	return withColor("swatch outline color", str, func(c *Config, rgb RGB) {
		c.Style.Legend.Swatch = rgb
	})
}

func withColor(option, str string, set func(*Config, RGB)) Option {
	return func(c *Config) error {
		rgb, err := ParseColor(str)
		if err != nil {
			return validationError(option, "%s: %s", option, err)
		}
		set(c, rgb)
		return nil
	}
}

func parseColors(option string, colors []string) ([]RGB, error) {
	var (
		list []RGB
		fail error
	)
	for _, str := range colors {
		rgb, err := ParseColor(str)
		if err != nil {
			if fail == nil {
				fail = validationError(option, "%s: %s", option, err)
			}
			continue
		}
		list = append(list, rgb)
	}
	return list, fail
}
