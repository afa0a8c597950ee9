package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/charmingruby/seqkit/internal/config"
)

// FromConfig builds the CLI logger. The "auto" format writes pretty console
// output when out is a terminal and JSON otherwise.
func FromConfig(conf config.Log, out *os.File) zerolog.Logger {
	level, err := zerolog.ParseLevel(conf.Level)
	if nil != err {
		panic("invalid logging level: " + conf.Level)
	}

	format := strings.ToLower(conf.Format)
	if format == "auto" {
		format = "json"
		if isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd()) {
			format = "pretty"
		}
	}

	switch format {
	case "json":
		return New(out, level)
	case "pretty":
		return New(zerolog.ConsoleWriter{ //nolint:exhaustruct
			Out:          out,
			TimeFormat:   time.RFC3339,
			TimeLocation: time.UTC,
		}, level)
	default:
		panic("invalid logging format: " + conf.Format)
	}
}

func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.
		New(w).
		With().
		Timestamp().
		Str("app", "seqx").
		Logger().
		Level(level)
}

func NewDefault() zerolog.Logger {
	return New(zerolog.ConsoleWriter{ //nolint:exhaustruct
		Out:          os.Stderr,
		TimeFormat:   time.RFC3339,
		TimeLocation: time.UTC,
	}, zerolog.InfoLevel)
}
