package log

import (
	"context"
	"io"
	stdlog "log"
	"os"
	"strings"

	console "github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"git.tatikoma.dev/corpix/progbatch/errors"
)

type (
	Logger  = zerolog.Logger
	Context = zerolog.Context
	Event   = *zerolog.Event
	Level   = zerolog.Level
)

var DefaultLogger *Logger

var (
	TraceLevel = zerolog.TraceLevel
	DebugLevel = zerolog.DebugLevel
	InfoLevel  = zerolog.InfoLevel
	WarnLevel  = zerolog.WarnLevel

	SetLevel = zerolog.SetGlobalLevel
)

var (
	Debug = log.Debug
	Info  = log.Info
)

func init() {
	log.Logger = New(os.Stderr)

	zerolog.DefaultContextLogger = &log.Logger
	DefaultLogger = &log.Logger

	stdlog.SetFlags(0)
	stdlog.SetOutput(log.Logger)
}

// New returns a timestamped logger writing to w.
// Terminals get the human readable console format.
func New(w io.Writer) Logger {
	if f, ok := w.(interface{ Fd() uintptr }); ok && console.IsTerminal(f.Fd()) {
		w = zerolog.ConsoleWriter{Out: w}
	}
	return zerolog.New(w).With().Timestamp().Logger()
}

// Nop returns a logger which discards everything.
func Nop() *Logger {
	l := zerolog.Nop()
	return &l
}

func ParseLevel(s string) (Level, error) {
	if s == "" {
		return InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return InfoLevel, errors.Wrapf(err, "failed to parse log level %q", s)
	}
	return level, nil
}

func With() Context {
	return log.Logger.With()
}

func WithContext(ctx context.Context) context.Context {
	return log.Logger.WithContext(ctx)
}

func Ctx(ctx context.Context) *Logger {
	return zerolog.Ctx(ctx)
}
