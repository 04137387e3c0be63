package game

// Page is the screen currently shown. It decides which handler receives
// input events.
type Page int

const (
	Homescreen Page = iota
	Gamescreen
	Gameover
	Quit
)

func (p Page) String() string {
	switch p {
	case Homescreen:
		return "Homescreen"
	case Gamescreen:
		return "Gamescreen"
	case Gameover:
		return "Gameover"
	case Quit:
		return "Quit"
	default:
		return "Unknown"
	}
}
