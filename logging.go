package rotvis

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type DefaultLogger struct {
	mu    sync.Mutex
	debug bool
	base  zerolog.Logger
	log   zerolog.Logger
}

// NewDefaultLogger writes human-readable lines to stdout.
func NewDefaultLogger(prefix string, debug bool) *DefaultLogger {
	return NewLogger(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.StampMicro}, prefix, debug)
}

// NewLogger writes zerolog events to out, tagged with prefix as "component".
func NewLogger(out io.Writer, prefix string, debug bool) *DefaultLogger {
	ctx := zerolog.New(out).With().Timestamp()
	if prefix != "" {
		ctx = ctx.Str("component", prefix)
	}
	l := &DefaultLogger{base: ctx.Logger()}
	l.SetDebug(debug)
	return l
}

func (l *DefaultLogger) DebugEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debug
}

func (l *DefaultLogger) SetDebug(enabled bool) {
	l.mu.Lock()
	l.debug = enabled
	if enabled {
		l.log = l.base.Level(zerolog.DebugLevel)
	} else {
		l.log = l.base.Level(zerolog.InfoLevel)
	}
	l.mu.Unlock()
}

func (l *DefaultLogger) logger() *zerolog.Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return &l.log
}

func (l *DefaultLogger) Debugf(format string, args ...any) {
	l.logger().Debug().Msgf(format, args...)
}

func (l *DefaultLogger) Infof(format string, args ...any) {
	l.logger().Info().Msgf(format, args...)
}

func (l *DefaultLogger) Warnf(format string, args ...any) {
	l.logger().Warn().Msgf(format, args...)
}

func (l *DefaultLogger) Errorf(format string, args ...any) {
	l.logger().Error().Msgf(format, args...)
}

// ParseLevel maps a config level name to the debug switch; anything other
// than "debug" is treated as info or above.
func ParseLevel(level string) (debug bool, err error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return false, fmt.Errorf("log level %q: %w", level, err)
	}
	return lvl <= zerolog.DebugLevel, nil
}

// LoggingModule installs a default logger as a resource.
type LoggingModule struct {
	Prefix string
	Debug  bool
	// Output defaults to a console writer on stdout.
	Output io.Writer
}

func (m LoggingModule) Install(app *App, cmd *Commands) {
	var logger *DefaultLogger
	if m.Output != nil {
		logger = NewLogger(m.Output, m.Prefix, m.Debug)
	} else {
		logger = NewDefaultLogger(m.Prefix, m.Debug)
	}
	app.addResources(logger)
}

// Nop logger and App helper accessor

type nopLogger struct{}

func NewNopLogger() Logger { return &nopLogger{} }
func (n *nopLogger) DebugEnabled() bool                { return false }
func (n *nopLogger) SetDebug(enabled bool)             {}
func (n *nopLogger) Debugf(format string, args ...any) {}
func (n *nopLogger) Infof(format string, args ...any)  {}
func (n *nopLogger) Warnf(format string, args ...any)  {}
func (n *nopLogger) Errorf(format string, args ...any) {}

// Logger returns the first Logger resource if present, otherwise a no-op logger.
// Safe to call at any time; never returns nil.
func (app *App) Logger() Logger {
	if app == nil {
		return NewNopLogger()
	}
	if app.resources != nil {
		for _, r := range app.resources {
			if l, ok := r.(Logger); ok {
				return l
			}
		}
	}
	return NewNopLogger()
}
