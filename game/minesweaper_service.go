package game

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/dimaq12/termsweeper/models"
)

// Log is the game logger; main redirects it to the configured log file.
var Log = logrus.New()

// MinesweeperService is the game state machine. It owns the board and moves
// between pages in response to input events.
type MinesweeperService struct {
	board *models.Board
	rnd   *rand.Rand

	page  Page
	moves uint16
	level int

	// lost is set when the last round ended on a bomb, so the next play
	// starts from a fresh board.
	lost bool
}

// NewMinesweeperService starts on the home screen at the lowest level. rnd
// drives bomb placement.
func NewMinesweeperService(board *models.Board, rnd *rand.Rand) *MinesweeperService {
	return &MinesweeperService{
		board: board,
		rnd:   rnd,
		page:  Homescreen,
		level: models.MinLevel,
	}
}

func (s *MinesweeperService) Page() Page { return s.page }
func (s *MinesweeperService) Moves() uint16 { return s.moves }
func (s *MinesweeperService) Level() int { return s.level }
func (s *MinesweeperService) Board() *models.Board { return s.board }

// Handle feeds one event to the handler of the current page and returns the
// page the game is on afterwards.
func (s *MinesweeperService) Handle(ev Event) Page {
	from := s.page

	switch s.page {
	case Homescreen:
		s.homescreen(ev)
	case Gamescreen:
		s.gamescreen(ev)
	case Gameover:
		s.gameoverscreen(ev)
	case Quit:
	}

	if s.page != from {
		Log.WithFields(logrus.Fields{
			"from":  from.String(),
			"to":    s.page.String(),
			"level": s.level,
			"moves": s.moves,
		}).Debug("page change")
	}

	return s.page
}

func (s *MinesweeperService) homescreen(ev Event) {
	key, ok := ev.(KeyPress)
	if !ok {
		return
	}

	switch key.Rune {
	case 'q':
		s.page = Quit
	case 'p':
		if s.lost {
			s.reset()
		}
		s.page = Gamescreen
	// with or without shift held
	case '+', '=':
		s.level = min(s.level+1, models.MaxLevel)
	case '-':
		s.level = max(s.level-1, models.MinLevel)
	}
}

func (s *MinesweeperService) gamescreen(ev Event) {
	switch ev := ev.(type) {
	case KeyPress:
		switch ev.Rune {
		case 'q':
			s.page = Homescreen
			s.reset()
		case 'r':
			s.reset()
		}
	case MousePress:
		s.makeMove(ev)
	}
}

func (s *MinesweeperService) gameoverscreen(ev Event) {
	if key, ok := ev.(KeyPress); ok && key.Rune == 'r' {
		s.page = Homescreen
	}
}

// makeMove applies a click on the board. Clicks that land outside the grid,
// on a flag or on an open cell do nothing.
func (s *MinesweeperService) makeMove(ev MousePress) {
	x, y := s.board.TerminalToGrid(ev.X, ev.Y)
	if !s.board.InBounds(x, y) {
		Log.WithFields(logrus.Fields{"x": ev.X, "y": ev.Y}).Debug("click outside the board")
		return
	}

	if s.moves == 0 {
		s.placeBombs(x, y)
	}

	switch ev.Button {
	case ButtonRight:
		s.board.ToggleFlag(x, y)
	case ButtonLeft:
		cell := s.board.At(x, y)
		switch {
		case cell.IsFlagged:
			return
		case cell.IsBomb:
			s.lost = true
			s.page = Gameover
			Log.WithFields(logrus.Fields{
				"x":     x,
				"y":     y,
				"level": s.level,
				"moves": s.moves,
			}).Info("bomb hit")
		case cell.IsVisible:
			return
		default:
			opened := s.board.Reveal(x, y)
			s.moves++
			Log.WithFields(logrus.Fields{
				"x":      x,
				"y":      y,
				"opened": opened,
				"moves":  s.moves,
			}).Debug("cells opened")
		}
	}
}

// placeBombs starts a round. The cell under the first click never holds a
// bomb.
func (s *MinesweeperService) placeBombs(x, y int) {
	s.board.PlaceBombs(models.BombProbability(s.level), s.rnd)
	s.board.SetBomb(x, y, false)
	s.board.UpdateNeighborCounts()

	Log.WithFields(logrus.Fields{
		"level": s.level,
		"bombs": s.board.Bombs(),
		"cells": s.board.Cols() * s.board.Rows(),
	}).Info("round started")
}

func (s *MinesweeperService) reset() {
	s.board.Reset()
	s.moves = 0
	s.lost = false
}
