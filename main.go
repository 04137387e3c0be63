package main

import (
	"context"
	"hash/maphash"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/term"

	"github.com/dimaq12/termsweeper/config"
	"github.com/dimaq12/termsweeper/game"
	"github.com/dimaq12/termsweeper/models"
)

var log = game.Log

func createRand(seed uint64) *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// setupLogging keeps log output off the terminal, which is drawn by the game.
func setupLogging(cfg config.Config) {
	log.SetLevel(cfg.LogLevel)
	log.SetOutput(io.Discard)

	if cfg.LogFile == "" {
		return
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.LogFile,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      cfg.LogLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal("unable to open log file: ", err)
	}
	log.AddHook(hook)
}

func terminalSize() (models.Point, error) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return models.Point{}, err
	}
	return models.Point{X: cols, Y: rows}, nil
}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		logrus.Fatal(err)
	}

	setupLogging(cfg)
	log.WithFields(cfg.Fields()).Debug("config")

	size, err := terminalSize()
	if err != nil {
		logrus.Fatal("unable to determine terminal size: ", err)
	}

	board, err := models.NewBoard(models.FieldOrigin, size)
	if err != nil {
		logrus.Fatal(err)
	}
	log.WithFields(logrus.Fields{
		"cols": board.Cols(),
		"rows": board.Rows(),
	}).Info("starting up")

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	minesweeperService := game.NewMinesweeperService(board, createRand(cfg.Seed))
	controller := game.NewGameController(minesweeperService)

	if err := controller.StartGame(ctx); err != nil {
		log.WithError(err).Error("exit reason")
		logrus.Fatal(err)
	}
}
