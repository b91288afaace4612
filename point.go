package graphlib

type Point struct {
	X int
	Y float64
}

func NewPoint(x int, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

type Pos struct {
	X float64
	Y float64
}

func NewPos(x, y float64) Pos {
	return Pos{
		X: x,
		Y: y,
	}
}
