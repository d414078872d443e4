package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/drill/internal/config"
	"github.com/abhisek/drill/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the practice API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		rps, _ := cmd.Flags().GetFloat64("write-rate")
		burst, _ := cmd.Flags().GetInt("write-burst")

		e, err := openEnv(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer e.Close()

		var limiter *server.RateLimiter
		if rps > 0 {
			limiter = server.NewRateLimiter(time.Duration(float64(time.Second)/rps), burst)
		}

		srv := server.New(server.Deps{
			Problems:     e.store.ProblemRepo(),
			Reviews:      e.store.ReviewRepo(),
			Practice:     e.practice,
			Analytics:    e.analytics,
			Logger:       e.logger,
			WriteLimiter: limiter,
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		e.logger.Info("starting server",
			"addr", e.cfg.Addr,
			"scheduler", e.cfg.Scheduler,
			"mode", e.cfg.Mode)
		return srv.Run(ctx, e.cfg.Addr)
	},
}

func init() {
	serveCmd.Flags().String(config.KeyAddr, "", "Listen address (overrides DRILL_ADDR, default 127.0.0.1:8000)")
	serveCmd.Flags().String(config.KeyMode, "", "Run mode: prod or dev")
	serveCmd.Flags().Float64("write-rate", 10, "Mutating requests per second allowed per client (0 disables)")
	serveCmd.Flags().Int("write-burst", 20, "Burst size for mutating requests")
	bindFlags(v, serveCmd.Flags().Lookup(config.KeyAddr), serveCmd.Flags().Lookup(config.KeyMode))
}
