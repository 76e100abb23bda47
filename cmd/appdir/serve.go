package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/appdir-dev/appdir/internal/inspect"
	"github.com/appdir-dev/appdir/pkg/router"
)

func serveCmd() *cobra.Command {
	var (
		addr  string
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "serve <dir>",
		Short: "Run the route-table debug inspector",
		Long: `Serve the route table for a directory over HTTP:

  GET /routes       full table as JSON
  GET /match?path=  resolve one request path
  GET /fingerprint  current table fingerprint
  GET /metrics      Prometheus metrics
  GET /ws           WebSocket reload notifications

With --watch, the routes directory is watched and the table is rebuilt
and re-announced whenever it changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(args[0], addr, watch)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:7410", "Listen address")
	cmd.Flags().BoolVar(&watch, "watch", false, "Rebuild the table on filesystem changes")

	return cmd
}

func runServe(root, addr string, watch bool) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	eng := router.New(
		router.WithLogger(logger),
		router.WithMetrics(router.NewMetrics()),
		router.WithTracing(router.NewTracing()),
	)

	srv := inspect.NewServer(inspect.Config{
		Root:   root,
		Addr:   addr,
		Engine: eng,
		Logger: logger,
		Watch:  watch,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}
