package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// logSink fans log records out to the console writer and an optional log
// file. Both can be changed after the loggers have been handed out.
type logSink struct {
	mu      sync.Mutex
	console io.Writer
	file    *os.File
	path    string
	opened  bool
}

func (s *logSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.opened {
		s.openFile()
	}
	if s.file != nil {
		// A full disk must not take the console output down with it.
		_, _ = s.file.Write(p)
	}
	return s.console.Write(p)
}

// openFile opens path for appending, creating parent directories.
// On failure logging stays console-only.
func (s *logSink) openFile() {
	s.opened = true
	if s.path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return
	}
	s.file = f
}

func (s *logSink) closeFile() {
	if s.file != nil {
		s.file.Close()
		s.file = nil
	}
	s.opened = false
}

// Hosts that own the terminal (Bubble Tea) need logs off stdout.
var sink = &logSink{console: os.Stderr}

var (
	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   = &slog.LevelVar{}

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   = &slog.LevelVar{}
)

func init() {
	internalLevelVar.Set(slog.LevelError)
}

// SetLogPath sets the full path for the log file, including filename.
// Parent directories are created when the next record is written.
func SetLogPath(path string) {
	sink.mu.Lock()
	defer sink.mu.Unlock()

	if path == sink.path {
		return
	}
	sink.closeFile()
	sink.path = path
}

// SetLogWriter replaces the console writer (stderr by default).
func SetLogWriter(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	sink.mu.Lock()
	sink.console = w
	sink.mu.Unlock()
}

func newJSONLogger(level *slog.LevelVar) *slog.Logger {
	return slog.New(slog.NewJSONHandler(sink, &slog.HandlerOptions{Level: level}))
}

// GetLogger returns the application logger handed out to tablekit users.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		logger = newJSONLogger(levelVar)
	})
	return logger
}

// GetInternalLogger returns the logger used by tablekit itself.
// It is quiet (error level) unless raised through Init or the env var.
func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLogger = newJSONLogger(internalLevelVar).With("component", "tablekit")
	})
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	internalLevelVar.Set(level)
}

// ParseLogLevel maps a level name to a slog.Level, defaulting to info.
func ParseLogLevel(rawLevel string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(rawLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLogLevel(rawLevel string) {
	SetLogLevel(ParseLogLevel(rawLevel))
}

// CloseLogger closes the log file. A later record reopens it.
func CloseLogger() {
	sink.mu.Lock()
	defer sink.mu.Unlock()
	sink.closeFile()
}
