package models

import "strconv"

const (
	FlagGlyph   = "F"
	HiddenGlyph = "▒"
	EmptyGlyph  = " "
)

// Cell is one square of the board. The zero value is an empty, hidden cell.
type Cell struct {
	IsBomb        bool
	IsFlagged     bool
	IsVisible     bool
	NeighborCount int
}

// String returns the single glyph the cell is drawn with. A bomb keeps the
// hidden glyph even when it has been made visible.
func (c Cell) String() string {
	switch {
	case c.IsFlagged:
		return FlagGlyph
	case !c.IsVisible || c.IsBomb:
		return HiddenGlyph
	case c.NeighborCount == 0:
		return EmptyGlyph
	default:
		return strconv.Itoa(c.NeighborCount)
	}
}
