package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/blogem/visit-logger/logger"
)

// Sink kinds accepted by --sink.
const (
	SinkFile   = "file"
	SinkSQLite = "sqlite"
)

// Config holds the command line options of the service. Every option
// can also be set through the environment or a .env file.
type Config struct {
	Host            string        `long:"host" env:"HOST" default:"0.0.0.0" description:"Address to bind to"`
	Port            int           `short:"p" long:"port" env:"PORT" default:"5000" description:"Port to listen on"`
	Sink            string        `long:"sink" env:"VISIT_SINK" default:"file" choice:"file" choice:"sqlite" description:"Where visits are recorded"`
	LogFile         string        `long:"log-file" env:"VISIT_LOG_FILE" default:"logs.txt" description:"Visit log file, relative to the working directory"`
	DBPath          string        `long:"db" env:"VISIT_DB" default:"visits.db" description:"SQLite database path (sqlite sink)"`
	NoMetrics       bool          `long:"no-metrics" env:"METRICS_DISABLED" description:"Do not expose Prometheus metrics on /metrics"`
	ShutdownTimeout time.Duration `long:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" default:"10s" description:"Graceful shutdown timeout"`

	logger.Logger `group:"Logging"`
}

// Load reads the optional .env file in the working directory, then parses
// args on top of the environment.
func Load(args []string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	var cfg Config
	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(cfg.LogFile)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve log file %q: %v", ErrInvalidConfig, cfg.LogFile, err)
	}
	cfg.LogFile = abs

	return &cfg, nil
}

// loadDotEnv loads variables from path without overriding ones already set.
// A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Validate checks option values that go-flags cannot express.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Port)
	}

	switch c.Sink {
	case SinkFile:
		if c.LogFile == "" {
			return fmt.Errorf("%w: empty log file path", ErrInvalidConfig)
		}
	case SinkSQLite:
		if c.DBPath == "" {
			return fmt.Errorf("%w: empty database path", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown sink %q", ErrInvalidConfig, c.Sink)
	}

	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: shutdown timeout must be positive", ErrInvalidConfig)
	}

	return nil
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
