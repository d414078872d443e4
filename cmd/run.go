package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/drill/internal/analytics"
	"github.com/abhisek/drill/internal/app"
	"github.com/abhisek/drill/internal/config"
	"github.com/abhisek/drill/internal/observability"
	"github.com/abhisek/drill/internal/practice"
	"github.com/abhisek/drill/internal/store"
)

// env is everything a command needs once configuration is resolved.
type env struct {
	cfg       *config.Config
	store     *store.Store
	logger    *slog.Logger
	practice  *practice.Service
	analytics *analytics.Service
}

func (e *env) Close() error {
	return e.store.Close()
}

// openEnv loads the configuration, opens the store and builds the services.
// Logs go to logOut.
func openEnv(logOut io.Writer) (*env, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger, err := observability.NewLogger(logOut, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	logger.Debug("store opened", "path", dbPath)

	return &env{
		cfg:    cfg,
		store:  st,
		logger: logger,
		practice: practice.NewService(st.ProblemRepo(), st.ReviewRepo(), st.DueRepo(), practice.Options{
			Scheduler: cfg.Scheduler,
			Logger:    logger,
		}),
		analytics: analytics.NewService(st.ProblemRepo(), st.ReviewRepo(), st.DueRepo(), nil),
	}, nil
}

// resolveDBPath returns the database path using --db / DRILL_DB, then the
// default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// runApp opens the store and launches the TUI. Logging is discarded while
// the TUI owns the terminal.
func runApp(cmd *cobra.Command) error {
	e, err := openEnv(io.Discard)
	if err != nil {
		return err
	}
	defer e.Close()

	return app.Run(app.Options{
		Practice:  e.practice,
		Analytics: e.analytics,
		Problems:  e.store.ProblemRepo(),
		Reviews:   e.store.ReviewRepo(),
		Dues:      e.store.DueRepo(),
	})
}

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Answer due problems in the terminal UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}
