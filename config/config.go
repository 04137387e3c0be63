package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

const (
	envLogFile  = "MINESWEEPER_LOG_FILE"
	envLogLevel = "MINESWEEPER_LOG_LEVEL"
	envSeed     = "MINESWEEPER_SEED"
)

type Config struct {
	// LogFile is where logs are written. The terminal belongs to the game,
	// so without a file nothing is logged.
	LogFile  string
	LogLevel logrus.Level
	// Seed fixes the bomb layout sequence. Zero picks a random seed.
	Seed uint64
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

func defaultLevel() string {
	if level, ok := os.LookupEnv(envLogLevel); ok {
		return level
	}
	if Development() {
		return logrus.DebugLevel.String()
	}
	return logrus.InfoLevel.String()
}

// Load reads the configuration from the environment, then lets command line
// flags override it.
func Load(args []string) (Config, error) {
	var (
		cfg      Config
		level    string
		seedText string
	)

	fs := flag.NewFlagSet("termsweeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.LogFile, "log", os.Getenv(envLogFile), "log file path")
	fs.StringVar(&level, "log-level", defaultLevel(), "log level")
	fs.StringVar(&seedText, "seed", os.Getenv(envSeed), "random seed, 0 for a random one")

	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("unable to parse flags: %w", err)
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return cfg, fmt.Errorf("unable to parse log level: %w", err)
	}
	cfg.LogLevel = lvl

	if seedText != "" {
		seed, err := strconv.ParseUint(seedText, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("unable to parse seed: %w", err)
		}
		cfg.Seed = seed
	}

	return cfg, nil
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"log_file":  c.LogFile,
		"log_level": c.LogLevel.String(),
		"seed":      c.Seed,
	}
}
