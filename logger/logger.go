package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	logDir      = "logs"
	logFileName = "snake.log"
	maxLogSize  = 10 * 1024 * 1024 // 10 MiB
)

// Log is the global logger instance for the whole application
var Log = newDiscardLogger()

// Options controls logger setup
type Options struct {
	// Debug enables file logging; otherwise everything is discarded
	// The terminal is in raw mode during play, so stdout is never a target
	Debug  bool
	Level  string // logrus level name, "info" if empty or invalid
	Format string // "json" or "text"
	Dir    string // log directory, "logs" if empty
}

// Setup configures Log and returns the opened log file, nil when logging is disabled
// The caller closes the returned file on exit
func Setup(opts Options) (*os.File, error) {
	Log = logrus.New()
	Log.SetLevel(parseLevel(opts.Level))

	if strings.ToLower(opts.Format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	if !opts.Debug {
		Log.SetOutput(io.Discard)
		return nil, nil
	}

	dir := opts.Dir
	if dir == "" {
		dir = logDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		Log.SetOutput(io.Discard)
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, logFileName)
	if err := rotate(path); err != nil {
		Log.SetOutput(io.Discard)
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		Log.SetOutput(io.Discard)
		return nil, fmt.Errorf("open log file: %w", err)
	}

	Log.SetOutput(f)
	return f, nil
}

// Session returns an entry tagged with a fresh session id
func Session() *logrus.Entry {
	return Log.WithField("session", uuid.NewString())
}

// rotate renames an oversized log file to a timestamped name
func rotate(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= maxLogSize {
		return nil
	}

	ext := filepath.Ext(path)
	rotated := fmt.Sprintf("%s.%s%s", strings.TrimSuffix(path, ext), time.Now().Format("20060102-150405"), ext)
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return nil
}

func parseLevel(s string) logrus.Level {
	if s == "" {
		return logrus.InfoLevel
	}
	level, err := logrus.ParseLevel(s)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
