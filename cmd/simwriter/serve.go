package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"
)

const defaultAddr = ":7277"

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:      "serve",
		Usage:     "Serve generated text over HTTP",
		ArgsUsage: "<order> <inputPath>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "address to listen on",
				Value: defaultAddr,
			},
		},
		Action: serveAction,
	}
}

func serveAction(ctx context.Context, cmd *cli.Command) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	if cmd.Args().Len() != 2 {
		return fmt.Errorf("expected 2 arguments <order> <inputPath>, got %d", cmd.Args().Len())
	}
	order, err := parseCount("order", cmd.Args().Get(0))
	if err != nil {
		return err
	}

	addr := cmd.String("addr")
	if cfg.Addr != "" && !cmd.IsSet("addr") {
		addr = cfg.Addr
	}
	maxLength, err := resolveMaxLength(cmd, cfg)
	if err != nil {
		return err
	}

	model, text, err := loadModel(logger, cmd.Args().Get(1), order)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	NewMarkovAPI(model, text[:order], maxLength, logger).RegisterRoutes(mux)
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting simwriter server", "address", addr, "order", order)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err = <-errChan:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Stopping server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	logger.Info("Server stopped.")
	return nil
}
