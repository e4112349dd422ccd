package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// logFile is the file opened by the last SetupLogger call.
var logFile *os.File

// Options controls SetupLogger.
type Options struct {
	// Verbosity maps 0 to warn, 1 to info, 2 to debug and 3+ to trace.
	Verbosity int

	// Console receives human readable output. Defaults to os.Stderr.
	Console io.Writer

	// NoColor disables ANSI colors on the console writer.
	NoColor bool

	// File overrides the log file path. Empty means the XDG state dir;
	// "-" disables file logging.
	File string
}

// LevelFor returns the global level used for a verbosity count.
func LevelFor(verbosity int) zerolog.Level {
	switch verbosity {
	case 0:
		return zerolog.WarnLevel
	case 1:
		return zerolog.InfoLevel
	case 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// SetupLogger configures the global logger. Output goes to the console and,
// unless disabled, is appended to a log file. A log file opened by an
// earlier call is closed.
func SetupLogger(opts Options) {
	closeLogFile()

	zerolog.SetGlobalLevel(LevelFor(opts.Verbosity))

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    opts.NoColor,
	}}

	logPath := opts.File
	if logPath == "" {
		logPath = getLogFilePath()
	}

	var fileErr error
	if logPath != "-" {
		var f *os.File
		f, fileErr = setupLogFile(logPath)
		if fileErr == nil {
			logFile = f
			writers = append(writers, f)
		}
	}

	ctx := zerolog.New(io.MultiWriter(writers...)).With().Timestamp()
	if opts.Verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", logPath).Msg("Failed to create log file, logging to console only")
	}

	log.Debug().Int("verbosity", opts.Verbosity).Str("logFile", logPath).Msg("Logger initialized")
}

func closeLogFile() {
	if logFile == nil {
		return
	}
	_ = logFile.Close()
	logFile = nil
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// getLogFilePath returns $XDG_STATE_HOME/patsub/patsub.log
func getLogFilePath() string {
	xdg.Reload()
	return filepath.Join(xdg.StateHome, "patsub", "patsub.log")
}

// setupLogFile creates the log file and its parent directories
func setupLogFile(logPath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}

// LogCommand logs a command execution with its arguments
func LogCommand(cmd string, args []string) {
	log.Debug().
		Str("command", cmd).
		Strs("args", args).
		Msg("Executing command")
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
