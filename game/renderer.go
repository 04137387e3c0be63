package game

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// FrameRenderer draws frames produced by the game.
type FrameRenderer interface {
	Render(f Frame)
}

// Renderer draws frames on a full screen tview text view.
type Renderer struct {
	view *tview.TextView
}

// NewRenderer builds the text view; the controller makes it the root view.
func NewRenderer() *Renderer {
	view := tview.NewTextView().
		SetWrap(false).
		SetScrollable(false).
		SetTextColor(tcell.ColorDefault)
	view.SetBackgroundColor(tcell.ColorDefault)

	return &Renderer{view: view}
}

// Render replaces the whole screen with f, starting at the top-left corner so
// that frame rows match terminal rows.
func (r *Renderer) Render(f Frame) {
	r.view.SetText(f.String())
	r.view.ScrollToBeginning()
}
