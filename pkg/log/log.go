// Package log provides named, leveled loggers for the renderer and the CLI.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/op/go-logging"
)

// Level controls which messages reach the sink
type Level int

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var levelNames = map[string]Level{
	"debug":   Debug,
	"info":    Info,
	"notice":  Notice,
	"warning": Warning,
	"warn":    Warning,
	"error":   Error,
}

var format = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000} %{level:.4s} [%{module}]%{color:reset} %{message}`,
)

var (
	mu      sync.Mutex
	backend logging.LeveledBackend
	level   = Notice
)

// Logger is the subset of go-logging used across the project
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Noticef(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// New returns the logger for a module such as "renderer" or "scene"
func New(module string) Logger {
	return logging.MustGetLogger(module)
}

// SetSink redirects all log output to w. The current level is preserved.
func SetSink(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	formatted := logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), format)
	backend = logging.AddModuleLevel(formatted)
	backend.SetLevel(toBackendLevel(level), "")
	logging.SetBackend(backend)
}

// SetLevel changes the verbosity for every module
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()

	level = l
	backend.SetLevel(toBackendLevel(l), "")
}

// ParseLevel maps a level name (case-insensitive) to a Level
func ParseLevel(name string) (Level, error) {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Notice, fmt.Errorf("unknown log level %q", name)
	}
	return l, nil
}

func toBackendLevel(l Level) logging.Level {
	switch l {
	case Debug:
		return logging.DEBUG
	case Info:
		return logging.INFO
	case Warning:
		return logging.WARNING
	case Error:
		return logging.ERROR
	default:
		return logging.NOTICE
	}
}

func init() {
	SetSink(os.Stderr)
}
