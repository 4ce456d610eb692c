package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ANSI codes for the level labels. The palette follows the historical
// trtpy convention: info green, warning red, error magenta, debug blue,
// all bold and padded to a fixed width.
const (
	ansiReset   = "\033[1;0m"
	ansiBold    = "\033[1m"
	ansiRed     = "\033[1;31m"
	ansiGreen   = "\033[1;32m"
	ansiBlue    = "\033[1;34m"
	ansiMagenta = "\033[1;35m"
)

// SetupLogger configures the global logger based on verbosity level.
// It sets up dual output to both console and a log file.
func SetupLogger(verbosity int) {
	switch verbosity {
	case 0:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case 2:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	noColor := !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd())
	consoleWriter := zerolog.ConsoleWriter{
		Out:         os.Stderr,
		TimeFormat:  time.Kitchen,
		NoColor:     noColor,
		FormatLevel: levelFormatter(noColor),
	}

	var writers []io.Writer
	writers = append(writers, consoleWriter)

	// Log file lives under XDG_STATE_HOME (or ~/.local/state)
	logFile := getLogFilePath()
	logFileHandle, err := setupLogFile(logFile)
	if err == nil {
		writers = append(writers, logFileHandle)
	}

	multi := io.MultiWriter(writers...)
	log.Logger = zerolog.New(multi).With().Timestamp().Logger()

	if err != nil {
		log.Warn().Err(err).Str("path", logFile).Msg("Failed to create log file, logging to console only")
	}

	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", verbosity).Str("logFile", logFile).Msg("Logger initialized")
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// levelFormatter renders the level label padded to 8 characters,
// colorized unless noColor is set
func levelFormatter(noColor bool) zerolog.Formatter {
	return func(i interface{}) string {
		level, ok := i.(string)
		if !ok {
			level = "???"
		}
		label := fmt.Sprintf("%-8s", strings.ToUpper(level))
		if noColor {
			return label
		}
		switch level {
		case zerolog.LevelInfoValue:
			return ansiGreen + label + ansiReset
		case zerolog.LevelWarnValue:
			return ansiRed + label + ansiReset
		case zerolog.LevelErrorValue, zerolog.LevelFatalValue, zerolog.LevelPanicValue:
			return ansiMagenta + label + ansiReset
		case zerolog.LevelDebugValue, zerolog.LevelTraceValue:
			return ansiBlue + label + ansiReset
		default:
			return ansiBold + label + ansiReset
		}
	}
}

// getLogFilePath returns the path to the log file.
// It respects XDG_STATE_HOME if set, otherwise uses ~/.local/state/trtpy/
func getLogFilePath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "trtpy.log"
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "trtpy", "trtpy.log")
}

// setupLogFile creates the log file and its parent directories
func setupLogFile(logPath string) (*os.File, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}
