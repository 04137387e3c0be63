package game

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var writeClipboard = clipboard.WriteAll

// GameController connects the game to the terminal: it decodes tcell events,
// feeds them to the service and redraws after each one.
type GameController struct {
	service  *MinesweeperService
	renderer FrameRenderer
	app      *tview.Application
}

func NewGameController(service *MinesweeperService) *GameController {
	renderer := NewRenderer()
	c := &GameController{service: service, renderer: renderer}
	c.app = tview.NewApplication().
		EnableMouse(true).
		SetRoot(renderer.view, true).
		SetInputCapture(c.captureKey).
		SetMouseCapture(c.captureMouse)

	return c
}

// StartGame shows the welcome screen and runs the terminal UI until the
// player quits or ctx is cancelled.
func (c *GameController) StartGame(ctx context.Context) error {
	c.renderer.Render(c.service.Welcome())

	parent := ctx
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		if err := c.app.Run(); err != nil {
			return fmt.Errorf("terminal ui: %w", err)
		}
		return nil
	})
	// Only the application is touched here: the game itself belongs to the
	// tview event goroutine.
	g.Go(func() error {
		<-gCtx.Done()
		if parent.Err() != nil {
			Log.Info("interrupted, stopping the game")
		}
		c.app.Stop()
		return nil
	})

	return g.Wait()
}

// TerminateGame stops the terminal UI after the player quit. It must be
// called from the event goroutine.
func (c *GameController) TerminateGame() {
	Log.WithFields(logrus.Fields{
		"page":  c.service.Page().String(),
		"level": c.service.Level(),
	}).Info("terminating the game")
	c.app.Stop()
}

func (c *GameController) captureKey(event *tcell.EventKey) *tcell.EventKey {
	ev := translateKey(event)
	if ev == nil {
		return event
	}
	c.dispatch(ev)
	return nil
}

func (c *GameController) captureMouse(
	event *tcell.EventMouse, action tview.MouseAction,
) (*tcell.EventMouse, tview.MouseAction) {
	if ev := translateMouse(event, action); ev != nil {
		c.dispatch(ev)
	}
	return nil, action
}

func (c *GameController) dispatch(ev Event) {
	if key, ok := ev.(KeyPress); ok && key.Rune == 'c' {
		c.copyBoard()
	}

	if c.service.Handle(ev) == Quit {
		c.TerminateGame()
		return
	}
	c.renderer.Render(c.service.Frame())
}

// copyBoard puts the board text on the system clipboard while a board is
// on screen.
func (c *GameController) copyBoard() {
	if page := c.service.Page(); page != Gamescreen && page != Gameover {
		return
	}
	if err := writeClipboard(c.service.Board().String()); err != nil {
		Log.WithError(err).Warn("unable to copy board to clipboard")
	}
}

// translateKey returns nil for keys that tview should keep handling itself,
// such as Ctrl-C.
func translateKey(event *tcell.EventKey) Event {
	switch event.Key() {
	case tcell.KeyRune:
		return KeyPress{Rune: event.Rune()}
	case tcell.KeyCtrlC:
		return nil
	default:
		return OtherEvent{}
	}
}

// translateMouse reports button presses only. tcell counts from zero, the
// board layout counts terminal cells from one.
func translateMouse(event *tcell.EventMouse, action tview.MouseAction) Event {
	x, y := event.Position()
	switch action {
	case tview.MouseLeftDown:
		return MousePress{Button: ButtonLeft, X: x + 1, Y: y + 1}
	case tview.MouseRightDown:
		return MousePress{Button: ButtonRight, X: x + 1, Y: y + 1}
	default:
		return nil
	}
}
