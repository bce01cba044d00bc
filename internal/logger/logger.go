package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
)

// Options controls where NewLogger writes.
type Options struct {
	Dir     string
	Level   string
	Console bool
}

var (
	mu      sync.Mutex
	opts    = Options{Dir: "./logs", Level: "info", Console: true}
	loggers = map[string]*logrus.Logger{}
)

// Setup replaces the options used by subsequent NewLogger calls and drops cached loggers.
func Setup(o Options) {
	mu.Lock()
	defer mu.Unlock()
	opts = o
	loggers = map[string]*logrus.Logger{}
}

// NewLogger returns the logger for one stream (info, error, upstream...). Each stream rotates daily.
func NewLogger(logType string) *logrus.Logger {
	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[logType]; ok {
		return l
	}

	log := logrus.New()
	log.SetOutput(newWriter(logType, opts))
	log.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		CallerPrettyfier: func(f *runtime.Frame) (string, string) {
			return f.Function, fmt.Sprintf("%s:%d", f.File, f.Line)
		},
	})

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	loggers[logType] = log
	return log
}

// Discard returns a logger that writes nowhere, for tests and optional collaborators.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newWriter(logType string, o Options) io.Writer {
	if o.Dir == "" {
		return os.Stdout
	}
	logPath := filepath.Join(o.Dir, logType)
	if err := os.MkdirAll(logPath, 0755); err != nil {
		return os.Stdout
	}

	writer, err := rotatelogs.New(
		filepath.Join(logPath, logType+".log.%Y-%m-%d"),
		rotatelogs.WithLinkName(filepath.Join(logPath, logType+".log")),
		rotatelogs.WithRotationTime(24*time.Hour),
		rotatelogs.WithMaxAge(7*24*time.Hour),
	)
	if err != nil {
		return os.Stdout
	}
	if o.Console {
		return io.MultiWriter(os.Stdout, writer)
	}
	return writer
}
