package models

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/gammazero/deque"
	"github.com/zyedidia/generic/mapset"
)

// ErrTerminalTooSmall is returned when not even one cell fits the terminal.
var ErrTerminalTooSmall = errors.New("terminal too small for the board")

// Board is the minefield. Width and Height are the largest valid column and
// row index, so the grid holds (Width+1) x (Height+1) cells.
type Board struct {
	Width  int
	Height int
	Origin Point

	stride int
	cells  []Cell
}

// NewBoard sizes the board so that it fits a terminal of the given size when
// drawn at origin. Every cell is drawn two characters wide.
func NewBoard(origin Point, terminalSize Point) (*Board, error) {
	width := terminalSize.X/2 - 1 - origin.X
	height := terminalSize.Y - origin.Y - 4
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrTerminalTooSmall, terminalSize.X, terminalSize.Y)
	}

	b := &Board{
		Width:  width,
		Height: height,
		Origin: origin,
		stride: width + 1,
		cells:  make([]Cell, (width+1)*(height+1)),
	}
	b.UpdateNeighborCounts()

	return b, nil
}

// Cols and Rows are the grid dimensions in cells.
func (b *Board) Cols() int { return b.Width + 1 }
func (b *Board) Rows() int { return b.Height + 1 }

// InBounds reports whether (x, y) addresses a cell of the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x <= b.Width && y >= 0 && y <= b.Height
}

func (b *Board) index(x, y int) int {
	return y*b.stride + x
}

// At returns a copy of the cell at (x, y). It panics when the position is out
// of bounds; callers check InBounds first.
func (b *Board) At(x, y int) Cell {
	return b.cells[b.index(x, y)]
}

// SetBomb overrides the bomb state of a single cell. Neighbor counts are not
// touched, call UpdateNeighborCounts afterwards.
func (b *Board) SetBomb(x, y int, bomb bool) {
	if b.InBounds(x, y) {
		b.cells[b.index(x, y)].IsBomb = bomb
	}
}

// PlaceBombs draws every cell independently: it becomes a bomb with the
// given probability and a safe cell otherwise.
func (b *Board) PlaceBombs(probability float64, r *rand.Rand) {
	for i := range b.cells {
		b.cells[i].IsBomb = r.Float64() < probability
	}
}

// neighbors calls fn for every position around (x, y) that lies on the board.
func (b *Board) neighbors(x, y int, fn func(nx, ny int)) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if nx, ny := x+dx, y+dy; b.InBounds(nx, ny) {
				fn(nx, ny)
			}
		}
	}
}

// UpdateNeighborCounts recomputes the number of adjacent bombs of every cell
// from scratch.
func (b *Board) UpdateNeighborCounts() {
	for y := 0; y <= b.Height; y++ {
		for x := 0; x <= b.Width; x++ {
			count := 0
			b.neighbors(x, y, func(nx, ny int) {
				if b.cells[b.index(nx, ny)].IsBomb {
					count++
				}
			})
			b.cells[b.index(x, y)].NeighborCount = count
		}
	}
}

// Reveal opens the cell at (x, y) and returns how many cells were opened.
// Every opened cell exposes the ring of cells around it, and ring cells
// without adjacent bombs are opened in turn, so empty areas spread until they
// are bordered by numbers. A cell is opened at most once per call.
func (b *Board) Reveal(x, y int) int {
	if !b.InBounds(x, y) {
		return 0
	}

	var todo deque.Deque[int]
	opened := mapset.New[int]()

	start := b.index(x, y)
	todo.PushBack(start)
	opened.Put(start)

	for todo.Len() > 0 {
		i := todo.PopFront()
		b.cells[i].IsVisible = true

		cx, cy := i%b.stride, i/b.stride
		b.neighbors(cx, cy, func(nx, ny int) {
			n := b.index(nx, ny)
			b.cells[n].IsVisible = true
			if b.cells[n].NeighborCount == 0 && !opened.Has(n) {
				opened.Put(n)
				todo.PushBack(n)
			}
		})
	}

	return opened.Size()
}

// ToggleFlag flips the flag on the cell at (x, y).
func (b *Board) ToggleFlag(x, y int) {
	if b.InBounds(x, y) {
		i := b.index(x, y)
		b.cells[i].IsFlagged = !b.cells[i].IsFlagged
	}
}

// TerminalToGrid converts a 1-based terminal position into grid indices. The
// result is not range checked.
func (b *Board) TerminalToGrid(termX, termY int) (x, y int) {
	x = int(math.Round(float64(termX-b.Origin.X)/2)) - 1
	y = termY - b.Origin.Y
	return x, y
}

// Reset puts every cell back into its initial state.
func (b *Board) Reset() {
	clear(b.cells)
}

// Bombs counts the cells holding a bomb.
func (b *Board) Bombs() int {
	n := 0
	for _, c := range b.cells {
		if c.IsBomb {
			n++
		}
	}
	return n
}

// Flags counts the flagged cells.
func (b *Board) Flags() int {
	n := 0
	for _, c := range b.cells {
		if c.IsFlagged {
			n++
		}
	}
	return n
}

// Lines renders one string per board row, indented by the origin column.
func (b *Board) Lines() []string {
	lines := make([]string, 0, b.Rows())
	indent := strings.Repeat(" ", b.Origin.X)
	for y := 0; y <= b.Height; y++ {
		var sb strings.Builder
		sb.WriteString(indent)
		for x := 0; x <= b.Width; x++ {
			sb.WriteString(b.At(x, y).String())
			sb.WriteByte(' ')
		}
		lines = append(lines, sb.String())
	}
	return lines
}

func (b *Board) String() string {
	return strings.Join(b.Lines(), "\n")
}
