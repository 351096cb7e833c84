package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/weft-ui/weft/pkg/server"
	"github.com/weft-ui/weft/pkg/snapshot"
)

func serveCmd() *cobra.Command {
	var (
		addr           string
		snapshotBucket string
		snapshotPrefix string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the demo counter server",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

			config := server.Config{
				Address: addr,
				App:     server.CounterApp,
				Logger:  logger,
			}

			if snapshotBucket != "" {
				awsCfg, err := awsconfig.LoadDefaultConfig(cmd.Context())
				if err != nil {
					return fmt.Errorf("load aws config: %w", err)
				}
				config.Snapshots = snapshot.NewS3Store(
					s3.NewFromConfig(awsCfg), snapshotBucket, snapshotPrefix)
			}

			srv, err := server.New(config)
			if err != nil {
				return err
			}

			errCh := make(chan error, 1)
			go func() { errCh <- srv.ListenAndServe() }()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logger.Info("shutting down", "signal", sig.String())
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return srv.Shutdown(ctx)
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")
	cmd.Flags().StringVar(&snapshotBucket, "snapshot-bucket", "", "S3 bucket for first-paint snapshots (disabled when empty)")
	cmd.Flags().StringVar(&snapshotPrefix, "snapshot-prefix", "snapshots/", "S3 key prefix for snapshots")

	return cmd
}
