package cli

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"moviedb/internal/config"
	"moviedb/internal/database"
	"moviedb/internal/logger"
	"moviedb/internal/otel"
)

// Execute runs moviectl and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	e := newEnv(os.Stdout, os.Stderr)
	err := newRootCmd(e).ExecuteContext(ctx)
	e.close()
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// env carries what subcommands share. openDB is swapped in tests.
type env struct {
	out      io.Writer
	logOut   io.Writer
	cfg      *config.AppConfig
	log      *slog.Logger
	openDB   func(ctx context.Context, c config.DatabaseConfig) (*sql.DB, error)
	shutdown otel.ShutdownFunc
}

func newEnv(out, logOut io.Writer) *env {
	return &env{out: out, logOut: logOut, openDB: database.NewPostgres}
}

func (e *env) close() {
	if e.shutdown == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = e.shutdown(ctx)
}

func newRootCmd(e *env) *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:          "moviectl",
		Short:        "Maintenance commands for the movie catalog database",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			e.cfg = config.Load()
			if cmd.Flags().Changed("log-level") {
				e.cfg.LogLevel = logLevel
			}
			e.log = logger.New(e.logOut, e.cfg.LogLevel, e.cfg.Location)

			shutdown, err := otel.Init(cmd.Context(), e.log)
			if err != nil {
				return err
			}
			e.shutdown = shutdown
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error (overrides LOG_LEVEL)")
	cmd.SetOut(e.out)
	cmd.AddCommand(migrateCmd(e), populateCmd(e), reportCmd(e))
	return cmd
}
