package game

// Event is an input event already decoded from the terminal. Handlers ignore
// any event type they do not know about.
type Event interface {
	isEvent()
}

type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
)

func (b Button) String() string {
	if b == ButtonRight {
		return "right"
	}
	return "left"
}

// KeyPress is a printable key.
type KeyPress struct {
	Rune rune
}

// MousePress is a button press at a 1-based terminal position.
type MousePress struct {
	Button Button
	X      int
	Y      int
}

// OtherEvent stands for everything the terminal reports that the game has
// no use for.
type OtherEvent struct{}

func (KeyPress) isEvent() {}
func (MousePress) isEvent() {}
func (OtherEvent) isEvent() {}
