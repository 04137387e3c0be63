package game

import (
	"fmt"
	"strings"
)

const menuIndent = "        "

// Frame is the full text of one screen. Drawing a frame replaces whatever
// was on the terminal and starts at the top-left corner.
type Frame struct {
	Page  Page
	Level int
	Moves uint16
	Lines []string
}

func (f Frame) String() string {
	return strings.Join(f.Lines, "\n")
}

// rule draws a "+-+-+" border as wide as text of odd length.
func rule(text string) string {
	n := len(text)
	if n == 0 {
		return ""
	}
	return strings.Repeat("+-", n/2) + "+"
}

// boxed frames a single line of text between two rules. Text is padded to an
// odd width, before its closing character, so the rules end on a "+".
func boxed(indent, text string) []string {
	if n := len(text); n > 0 && n%2 == 0 {
		text = text[:n-1] + " " + text[n-1:]
	}
	return []string{indent + rule(text), indent + text, indent + rule(text)}
}

// Welcome is shown before the first event arrives.
func (s *MinesweeperService) Welcome() Frame {
	return Frame{
		Page:  s.page,
		Level: s.level,
		Moves: s.moves,
		Lines: []string{
			"", "", "",
			"Welcome to MineSweeper! ",
			"", "", "",
			"Press any button to start playing!",
		},
	}
}

// Frame describes the current page. It does not change the game.
func (s *MinesweeperService) Frame() Frame {
	f := Frame{Page: s.page, Level: s.level, Moves: s.moves}

	switch s.page {
	case Homescreen:
		f.Lines = s.homeLines()
	case Gamescreen:
		f.Lines = s.gameLines()
	case Gameover:
		f.Lines = s.gameoverLines()
	case Quit:
	}

	return f
}

func (s *MinesweeperService) homeLines() []string {
	space := menuIndent + strings.Repeat(" ", s.board.Width/4)

	lines := []string{"", ""}
	lines = append(lines, boxed(space, "| M | I | N | E | S | W | E | E | P | E | R |")...)
	lines = append(lines, "", "", "", "")
	lines = append(lines,
		menuIndent+"+-+-+-+-+",
		menuIndent+"|  MENU |",
	)
	menu := fmt.Sprintf(
		"| p: play!  | q: quit game  |  +/- : change difficulty level (currently %d)  |",
		s.level,
	)
	return append(lines, boxed(menuIndent, menu)...)
}

// withBoard pads header down to the board origin row, then appends the
// board and footer. Board rows must land on the terminal rows that
// TerminalToGrid maps back.
func (s *MinesweeperService) withBoard(header []string, footer ...string) []string {
	lines := header
	for len(lines) < s.board.Origin.Y-1 {
		lines = append(lines, "")
	}
	lines = append(lines, s.board.Lines()...)
	return append(lines, footer...)
}

func (s *MinesweeperService) gameLines() []string {
	status := fmt.Sprintf(
		"| difficulty level: %d | move: %d | flags: %d | r: reset game | q: quit |",
		s.level, s.moves, s.board.Flags(),
	)
	header := append([]string{"", ""}, boxed(menuIndent, status)...)

	return s.withBoard(header,
		"",
		" Left click to dig up a spot, right click to place a flag! (c: copy board)",
	)
}

func (s *MinesweeperService) gameoverLines() []string {
	header := append([]string{"", ""},
		boxed(menuIndent, "| G | A | M | E | O | V | E | R |  r: return to menu  |")...)

	return s.withBoard(header, "", " c: copy board")
}
