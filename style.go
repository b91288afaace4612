package graphlib

type LineStyle int

const (
	StyleSolid LineStyle = iota
	StyleDashed
)

func ParseLineStyle(str string) (LineStyle, bool) {
	switch str {
	case "", "solid":
		return StyleSolid, true
	case "dashed":
		return StyleDashed, true
	default:
		return StyleSolid, false
	}
}

func (s LineStyle) String() string {
	if s == StyleDashed {
		return "dashed"
	}
	return "solid"
}

type Style struct {
	Background RGB
	Grid       RGB
	Title      RGB
	Outline    RGB

	XAxis RGB
	YAxis RGB
	XText RGB
	YText RGB

	DataPoint RGB
	DataValue RGB
	Goal      RGB

	Bar       RGB
	Line      RGB
	Bars      []RGB
	Lines     []RGB
	Gradients []GradientPair

	Legend struct {
		Fill    RGB
		Text    RGB
		Outline RGB
		Swatch  RGB
	}
}

func DefaultStyle() Style {
	var (
		text  = Gray(100)
		black = Black
		white = White
		grid  = Gray(220)
		s     Style
	)
	s.Background = white
	s.Grid = grid
	s.Title = black
	s.Outline = black
	s.XAxis = black
	s.YAxis = black
	s.XText = text
	s.YText = text
	s.DataPoint = black
	s.DataValue = text
	s.Goal = black
	s.Bar = Gray(200)
	s.Line = text

	s.Legend.Fill = white
	s.Legend.Text = text
	s.Legend.Outline = grid
	s.Legend.Swatch = text
	return s
}

func (s Style) barPalette(count int, darken float64) Palette {
	return DarkenedPalette(s.Bars, s.Bar, count, darken)
}

func (s Style) linePalette(count int, darken float64, bars bool) Palette {
	if bars {
		return PaddedPalette(s.Lines, s.Line, count)
	}
	return DarkenedPalette(s.Lines, s.Line, count, darken)
}
