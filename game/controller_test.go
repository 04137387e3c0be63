package game

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimaq12/termsweeper/models"
)

type recordingRenderer struct {
	frames []Frame
}

func (r *recordingRenderer) Render(f Frame) {
	r.frames = append(r.frames, f)
}

func newTestController(t *testing.T) (*GameController, *recordingRenderer) {
	t.Helper()
	c := NewGameController(newTestService(t, 10, 10, 1))
	r := &recordingRenderer{}
	c.renderer = r
	return c, r
}

func keyEvent(ch rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, ch, tcell.ModNone)
}

func TestTranslateKey(t *testing.T) {
	assert.Equal(t, KeyPress{Rune: 'q'}, translateKey(keyEvent('q')))
	assert.Equal(t, KeyPress{Rune: '+'}, translateKey(keyEvent('+')))
	assert.Equal(t, OtherEvent{}, translateKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	assert.Nil(t, translateKey(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
}

func TestTranslateMouse(t *testing.T) {
	ev := tcell.NewEventMouse(8, 8, tcell.Button1, tcell.ModNone)
	assert.Equal(t, MousePress{Button: ButtonLeft, X: 9, Y: 9}, translateMouse(ev, tview.MouseLeftDown))

	ev = tcell.NewEventMouse(12, 10, tcell.Button2, tcell.ModNone)
	assert.Equal(t, MousePress{Button: ButtonRight, X: 13, Y: 11}, translateMouse(ev, tview.MouseRightDown))

	assert.Nil(t, translateMouse(ev, tview.MouseMove))
	assert.Nil(t, translateMouse(ev, tview.MouseLeftUp))
}

func TestControllerRoundTrip(t *testing.T) {
	c, r := newTestController(t)

	assert.Nil(t, c.captureKey(keyEvent('p')))
	require.Len(t, r.frames, 1)
	assert.Equal(t, Gamescreen, r.frames[0].Page)

	// tcell position of cell (3, 2)
	ev := tcell.NewEventMouse(models.FieldOrigin.X+2*3, models.FieldOrigin.Y+2-1, tcell.Button1, tcell.ModNone)
	got, _ := c.captureMouse(ev, tview.MouseLeftDown)
	assert.Nil(t, got)
	require.Len(t, r.frames, 2)
	assert.Equal(t, uint16(1), r.frames[1].Moves)
	assert.True(t, c.service.Board().At(3, 2).IsVisible)

	// mouse movement is not a game event
	c.captureMouse(ev, tview.MouseMove)
	assert.Len(t, r.frames, 2)
}

func TestControllerLeavesCtrlCToTview(t *testing.T) {
	c, r := newTestController(t)
	ev := tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)
	assert.Same(t, ev, c.captureKey(ev))
	assert.Empty(t, r.frames)
}

func TestControllerQuit(t *testing.T) {
	hook := test.NewLocal(Log)
	t.Cleanup(hook.Reset)

	c, r := newTestController(t)

	assert.NotPanics(t, func() { c.captureKey(keyEvent('q')) })
	assert.Equal(t, Quit, c.service.Page())
	assert.Empty(t, r.frames)

	terminations := 0
	for _, entry := range hook.AllEntries() {
		if entry.Message == "terminating the game" {
			terminations++
			assert.Equal(t, "Quit", entry.Data["page"])
		}
	}
	assert.Equal(t, 1, terminations)
}

func TestControllerCopyBoard(t *testing.T) {
	var copied []string
	orig := writeClipboard
	t.Cleanup(func() { writeClipboard = orig })
	writeClipboard = func(text string) error {
		copied = append(copied, text)
		return nil
	}

	c, _ := newTestController(t)

	c.captureKey(keyEvent('c'))
	assert.Empty(t, copied)

	c.captureKey(keyEvent('p'))
	c.captureKey(keyEvent('c'))
	require.Len(t, copied, 1)
	assert.Equal(t, c.service.Board().String(), copied[0])
	assert.Equal(t, Gamescreen, c.service.Page())

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	assert.NotPanics(t, func() { c.captureKey(keyEvent('c')) })
}

func TestRenderer(t *testing.T) {
	s := newTestService(t, 10, 10, 1)
	r := NewRenderer()

	r.Render(s.Welcome())
	assert.Contains(t, r.view.GetText(false), "Welcome to MineSweeper!")

	r.Render(s.Frame())
	text := r.view.GetText(false)
	assert.Contains(t, text, "currently 1")
	assert.NotContains(t, text, "Welcome")
}
