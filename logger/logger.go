// Package logger configures the process-wide zerolog logger from
// command line options.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is embedded into the command line options as the "Logging" group.
type Logger struct {
	//nolint:staticcheck // allow duplicate struct tags
	Level string `long:"log-level" env:"LOG_LEVEL" description:"Minimum level of emitted log events" default:"info" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error"`
	//nolint:staticcheck // allow duplicate struct tags
	Format string `long:"log-format" env:"LOG_FORMAT" description:"json for log collectors, console for humans" default:"console" choice:"json" choice:"console"`
}

// Setup replaces log.Logger and the global level. Unknown or empty levels
// fall back to info.
func (l *Logger) Setup() {
	level, err := zerolog.ParseLevel(l.Level)
	if err != nil || l.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Logger = zerolog.New(l.writer(os.Stderr)).With().Timestamp().Logger()
}

// writer wraps out in a console writer unless JSON output was requested.
// Colors are only used when out is a terminal.
func (l *Logger) writer(out *os.File) io.Writer {
	if l.Format == "json" {
		return out
	}

	console := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	if stat, err := out.Stat(); err != nil || stat.Mode()&os.ModeCharDevice == 0 {
		console.NoColor = true
	}
	return console
}
