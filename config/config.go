package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/midbel/graphlib"
)

const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

type File struct {
	Format string  `yaml:"format" json:"format"`
	Output string  `yaml:"output" json:"output"`
	Charts []Chart `yaml:"charts" json:"charts"`
}

// Default returns the settings used for what a file leaves unset.
func Default() File {
	return File{
		Format: FormatPNG,
		Output: ".",
	}
}

type Range struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

type Goal struct {
	Value float64 `yaml:"value" json:"value"`
	Color string  `yaml:"color" json:"color"`
	Style string  `yaml:"style" json:"style"`
}

type Format struct {
	Comma    bool   `yaml:"comma" json:"comma"`
	Percent  bool   `yaml:"percent" json:"percent"`
	Degrees  bool   `yaml:"degrees" json:"degrees"`
	Suffix   string `yaml:"suffix" json:"suffix"`
	Currency string `yaml:"currency" json:"currency"`
}

type Gradient struct {
	From string `yaml:"from" json:"from"`
	To   string `yaml:"to" json:"to"`
}

type Colors struct {
	Palette    string     `yaml:"palette" json:"palette"`
	Background string     `yaml:"background" json:"background"`
	Grid       string     `yaml:"grid" json:"grid"`
	Title      string     `yaml:"title" json:"title"`
	Text       string     `yaml:"text" json:"text"`
	Axis       string     `yaml:"axis" json:"axis"`
	Outline    string     `yaml:"outline" json:"outline"`
	Points     string     `yaml:"points" json:"points"`
	Values     string     `yaml:"values" json:"values"`
	Goal       string     `yaml:"goal" json:"goal"`
	Bars       []string   `yaml:"bars" json:"bars"`
	Lines      []string   `yaml:"lines" json:"lines"`
	Gradients  []Gradient `yaml:"gradients" json:"gradients"`
	Legend     struct {
		Fill    string `yaml:"fill" json:"fill"`
		Text    string `yaml:"text" json:"text"`
		Outline string `yaml:"outline" json:"outline"`
		Swatch  string `yaml:"swatch" json:"swatch"`
	} `yaml:"legend" json:"legend"`
}

type Series struct {
	Title  string      `yaml:"title" json:"title"`
	Values map[int]any `yaml:"values" json:"values"`
	File   string      `yaml:"file" json:"file"`
	Delim  string      `yaml:"delimiter" json:"delimiter"`
	Header bool        `yaml:"header" json:"header"`
	X      int         `yaml:"x" json:"x"`
	Y      int         `yaml:"y" json:"y"`
}

type Chart struct {
	Name   string `yaml:"name" json:"name"`
	Output string `yaml:"output" json:"output"`
	Width  int    `yaml:"width" json:"width"`
	Height int    `yaml:"height" json:"height"`

	Title         string `yaml:"title" json:"title"`
	TitleLocation string `yaml:"title_location" json:"title_location"`

	Bars       *bool   `yaml:"bars" json:"bars"`
	Line       *bool   `yaml:"line" json:"line"`
	Outline    *bool   `yaml:"outline" json:"outline"`
	Grid       *bool   `yaml:"grid" json:"grid"`
	XAxis      *bool   `yaml:"x_axis" json:"x_axis"`
	YAxis      *bool   `yaml:"y_axis" json:"y_axis"`
	XValues    *bool   `yaml:"x_values" json:"x_values"`
	YValues    *bool   `yaml:"y_values" json:"y_values"`
	Horizontal bool    `yaml:"x_values_horizontal" json:"x_values_horizontal"`
	Interval   int     `yaml:"x_values_interval" json:"x_values_interval"`
	Points     bool    `yaml:"data_points" json:"data_points"`
	PointSize  float64 `yaml:"data_point_size" json:"data_point_size"`
	PointShape string  `yaml:"data_point_shape" json:"data_point_shape"`
	Values     bool    `yaml:"data_values" json:"data_values"`
	Ignore     bool    `yaml:"ignore_fit_errors" json:"ignore_fit_errors"`
	Darken     float64 `yaml:"darken" json:"darken"`

	Range  *Range   `yaml:"range" json:"range"`
	Goals  []Goal   `yaml:"goals" json:"goals"`
	Format Format   `yaml:"format" json:"format"`
	Legend []string `yaml:"legend" json:"legend"`
	Colors Colors   `yaml:"colors" json:"colors"`

	Series []Series `yaml:"series" json:"series"`
}

func (c Chart) Size() (int, int) {
	w, h := c.Width, c.Height
	if w == 0 {
		w = graphlib.DefaultWidth
	}
	if h == 0 {
		h = graphlib.DefaultHeight
	}
	return w, h
}

// Target returns the path of the image to write for the chart.
func (c Chart) Target(dir, format string) string {
	if c.Output != "" {
		if filepath.IsAbs(c.Output) {
			return c.Output
		}
		return filepath.Join(dir, c.Output)
	}
	name := c.Name
	if name == "" {
		name = "chart"
	}
	return filepath.Join(dir, fmt.Sprintf("%s.%s", name, strings.ToLower(format)))
}

// Options converts the definition to the options of a graphlib.Chart.
func (c Chart) Options() []graphlib.Option {
	var opts []graphlib.Option
	flag := func(b *bool, fn func(bool) graphlib.Option) {
		if b != nil {
			opts = append(opts, fn(*b))
		}
	}
	flag(c.Bars, graphlib.WithBars)
	flag(c.Line, graphlib.WithLine)
	flag(c.Outline, graphlib.WithBarOutline)
	flag(c.Grid, graphlib.WithGrid)
	flag(c.XAxis, graphlib.WithXAxis)
	flag(c.YAxis, graphlib.WithYAxis)
	flag(c.XValues, graphlib.WithXValues)
	flag(c.YValues, graphlib.WithYValues)

	if c.Title != "" {
		opts = append(opts, graphlib.WithTitle(c.Title))
	}
	if c.TitleLocation != "" {
		opts = append(opts, graphlib.WithTitleLocation(c.TitleLocation))
	}
	if c.Horizontal {
		opts = append(opts, graphlib.WithXValuesHorizontal(true))
	}
	if c.Interval != 0 {
		opts = append(opts, graphlib.WithXValuesInterval(c.Interval))
	}
	if c.Points {
		opts = append(opts, graphlib.WithDataPoints(true))
	}
	if c.PointSize != 0 {
		opts = append(opts, graphlib.WithDataPointSize(c.PointSize))
	}
	if c.PointShape != "" {
		opts = append(opts, graphlib.WithDataPointShape(c.PointShape))
	}
	if c.Values {
		opts = append(opts, graphlib.WithDataValues(true))
	}
	if c.Ignore {
		opts = append(opts, graphlib.WithIgnoreDataFitErrors(true))
	}
	if c.Darken != 0 {
		opts = append(opts, graphlib.WithDarkenFactor(c.Darken))
	}
	if c.Range != nil {
		opts = append(opts, graphlib.WithRange(c.Range.Min, c.Range.Max))
	}
	for _, g := range c.Goals {
		opts = append(opts, graphlib.WithGoalLine(g.Value, g.Color, g.Style))
	}
	if len(c.Legend) > 0 {
		opts = append(opts, graphlib.WithLegendTitles(c.Legend...))
	}
	opts = append(opts, c.Format.options()...)
	return append(opts, c.Colors.options()...)
}

func (f Format) options() []graphlib.Option {
	var opts []graphlib.Option
	if f.Comma {
		opts = append(opts, graphlib.WithComma())
	}
	if f.Percent {
		opts = append(opts, graphlib.WithPercent())
	}
	if f.Degrees {
		opts = append(opts, graphlib.WithDegrees())
	}
	if f.Suffix != "" {
		opts = append(opts, graphlib.WithSuffix(f.Suffix))
	}
	if f.Currency != "" {
		opts = append(opts, graphlib.WithCurrency(f.Currency))
	}
	return opts
}

func (c Colors) options() []graphlib.Option {
	var opts []graphlib.Option
	set := func(str string, fn func(string) graphlib.Option) {
		if str != "" {
			opts = append(opts, fn(str))
		}
	}
	if c.Palette != "" {
		opts = append(opts, graphlib.WithPalette(c.Palette))
	}
	if len(c.Bars) > 0 {
		opts = append(opts, graphlib.WithBarColors(c.Bars...))
	}
	if len(c.Lines) > 0 {
		opts = append(opts, graphlib.WithLineColors(c.Lines...))
	}
	for _, g := range c.Gradients {
		opts = append(opts, graphlib.WithGradient(g.From, g.To))
	}
	set(c.Background, graphlib.WithBackgroundColor)
	set(c.Grid, graphlib.WithGridColor)
	set(c.Title, graphlib.WithTitleColor)
	set(c.Text, graphlib.WithTextColor)
	set(c.Axis, graphlib.WithAxisColor)
	set(c.Outline, graphlib.WithBarOutlineColor)
	set(c.Points, graphlib.WithDataPointColor)
	set(c.Values, graphlib.WithDataValueColor)
	set(c.Goal, graphlib.WithGoalLineColor)
	set(c.Legend.Fill, graphlib.WithLegendColor)
	set(c.Legend.Text, graphlib.WithLegendTextColor)
	set(c.Legend.Outline, graphlib.WithLegendOutlineColor)
	set(c.Legend.Swatch, graphlib.WithSwatchOutlineColor)
	return opts
}
