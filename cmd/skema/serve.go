package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/reoring/skema/server"
)

func newServeCmd(a *app) *cobra.Command {
	var addr, redisAddr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the validation HTTP server",
		Long:  `Serves named schemas over HTTP. Descriptors are kept in memory, or in redis when --redis is given.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg.Config
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("redis") {
				cfg.Store = "redis"
				cfg.RedisAddr = redisAddr
			}
			srv, closeStore, err := server.NewFromConfig(cfg, server.WithLogger(a.logger))
			if err != nil {
				return err
			}
			defer func() {
				if err := closeStore(); err != nil {
					a.logger.Warn("close store", "error", err)
				}
			}()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := srv.Preload(ctx); err != nil {
				return err
			}
			a.logger.Info("starting server", "addr", cfg.Addr, "store", cfg.Store)
			return run(ctx, srv, cfg.Addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for the descriptor store")
	return cmd
}

// run is swapped out in tests.
var run = func(ctx context.Context, srv *server.Server, addr string) error {
	return srv.ListenAndServe(ctx, addr)
}
