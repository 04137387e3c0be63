package models

// Point is a column/row pair, used both for terminal character positions
// and for grid indices.
type Point struct {
	X int
	Y int
}

// FieldOrigin is where the top-left cell of the board is drawn, in 1-based
// terminal coordinates.
var FieldOrigin = Point{X: 8, Y: 9}
