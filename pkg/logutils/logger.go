// Package logutils builds the process logger.
package logutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// ParseLevel accepts a zerolog level name in any case. An empty name is info.
func ParseLevel(level string) (zerolog.Level, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q (use debug, info, warn, error, fatal or panic)", level)
	}
	return lvl, nil
}

// New returns a logger at the given level. With a file, JSON lines are
// appended to it; the returned closer releases the file. Without one, a
// human-readable console log goes to stderr so it never mixes with command
// output on stdout. Debug loggers also record the call site.
func New(level string, file string) (zerolog.Logger, func(), error) {
	closer := func() {}

	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), closer, err
	}

	var w io.Writer
	if file == "" {
		w = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
			NoColor:    !term.IsTerminal(int(os.Stderr.Fd())),
		}
	} else {
		f, err := openAppend(file)
		if err != nil {
			return zerolog.Nop(), closer, err
		}
		closer = func() { _ = f.Close() }
		w = f
	}

	ctx := zerolog.New(w).Level(lvl).With().Timestamp()
	if lvl <= zerolog.DebugLevel {
		ctx = ctx.Caller()
	}
	return ctx.Logger(), closer, nil
}

func openAppend(file string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return nil, fmt.Errorf("create logs dir: %w", err)
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
