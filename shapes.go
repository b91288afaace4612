package graphlib

import (
	"strings"
)

type Marker int

const (
	MarkerCircle Marker = iota
	MarkerSquare
)

func ParseMarker(str string) (Marker, bool) {
	switch strings.ToLower(str) {
	case "", "circle":
		return MarkerCircle, true
	case "square":
		return MarkerSquare, true
	default:
		return MarkerCircle, false
	}
}

func (m Marker) String() string {
	if m == MarkerSquare {
		return "square"
	}
	return "circle"
}

func (m Marker) draw(p *Plan, pos Pos, size float64, c RGB) {
	switch m {
	case MarkerSquare:
		half := size / 2
		p.fillRect(pos.X-half, pos.Y-half, pos.X+half, pos.Y+half, c)
	default:
		p.ellipse(pos.X, pos.Y, size, size, c)
	}
}
