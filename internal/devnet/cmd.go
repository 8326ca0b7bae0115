package devnet

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/certiproof/certideploy/configs"
	"github.com/certiproof/certideploy/internal/devnet/docker"
	"github.com/spf13/cobra"
)

var (
	CMD = &cobra.Command{
		Use:   "devnet",
		Short: "Manage a local development node for rehearsing deployments",
	}

	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the local devnet container",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), func(ctx context.Context, service *Service) error {
				slog.Info("starting devnet")
				return service.Start(ctx, configs.Values.Devnet)
			})
		},
	}

	stopCmd = &cobra.Command{
		Use:   "stop",
		Short: "Stop and remove the local devnet container",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), func(ctx context.Context, service *Service) error {
				slog.Info("stopping devnet")
				return service.Stop(ctx, configs.Values.Devnet)
			})
		},
	}
)

func init() {
	CMD.AddCommand(startCmd)
	CMD.AddCommand(stopCmd)
}

func withService(ctx context.Context, fn func(context.Context, *Service) error) error {
	if err := configs.Values.Devnet.Validate(); err != nil {
		return err
	}

	client, err := docker.New()
	if err != nil {
		return fmt.Errorf("failed to create docker client: %w", err)
	}
	defer client.Close()

	return fn(ctx, NewService(client))
}
