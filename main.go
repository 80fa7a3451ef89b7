package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"

	"github.com/blogem/visit-logger/config"
	"github.com/blogem/visit-logger/controllers"
	"github.com/blogem/visit-logger/database"
	"github.com/blogem/visit-logger/metrics"
	"github.com/blogem/visit-logger/repositories"
	"github.com/blogem/visit-logger/server"
	"github.com/blogem/visit-logger/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		// go-flags already printed the help text
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return nil
		}
		return err
	}

	cfg.Logger.Setup()

	log.Debug().
		Str("sink", cfg.Sink).
		Str("addr", cfg.Addr()).
		Msg("Options parsed")

	var db *sql.DB
	if cfg.Sink == config.SinkSQLite {
		db, err = database.Initialize(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("initialize database: %w", err)
		}
		defer db.Close()
	} else {
		log.Info().Str("log_file", cfg.LogFile).Msg("Recording visits to file")
	}

	repos, err := repositories.NewRepositories(cfg.Sink, cfg.LogFile, db)
	if err != nil {
		return fmt.Errorf("create repositories: %w", err)
	}

	if counter, ok := repos.Visit.(repositories.VisitCounter); ok {
		count, err := counter.Count(context.Background())
		if err != nil {
			log.Warn().Err(err).Msg("Failed to count prior visits")
		} else {
			log.Info().Int("visits", count).Msg("Existing visits found")
		}
	}

	var m *metrics.Metrics
	if !cfg.NoMetrics {
		m = metrics.New()
	}

	srvs := services.NewServices(repos, m)
	ctrl := controllers.NewControllers(srvs)

	srv, err := server.New(cfg.Addr(), server.NewRouter(ctrl, m), cfg.ShutdownTimeout)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().
		Str("addr", cfg.Addr()).
		Bool("metrics_enabled", m != nil).
		Msg("visit-logger starting")

	return srv.Run(ctx)
}
