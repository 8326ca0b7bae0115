package devnet

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/certiproof/certideploy/configs"
	"github.com/certiproof/certideploy/internal/devnet/docker"
	"github.com/certiproof/certideploy/internal/logger"
	"github.com/ethereum/go-ethereum/ethclient"
)

const anvilPort = 8545

type dockerClient interface {
	ImageExists(ctx context.Context, imageName string) (bool, error)
	PullImage(ctx context.Context, imageName string) error
	RunDetached(ctx context.Context, opts docker.RunDetachedOptions) (string, error)
	Remove(ctx context.Context, nameOrID string) error
}

// Service manages a local anvil development node in docker, used to rehearse
// deployments before pointing at a real network.
type Service struct {
	docker       dockerClient
	rpcAttempts  int
	pollInterval time.Duration
	logger       *slog.Logger
}

// NewService creates a new devnet service.
func NewService(dockerClient dockerClient) *Service {
	return &Service{
		docker:       dockerClient,
		rpcAttempts:  120,
		pollInterval: time.Second,
		logger:       logger.Named("devnet_service"),
	}
}

// Start pulls the node image if needed, runs the container and waits for
// the RPC endpoint to answer.
func (s *Service) Start(ctx context.Context, cfg configs.Devnet) error {
	exists, err := s.docker.ImageExists(ctx, cfg.Image)
	if err != nil {
		return fmt.Errorf("failed to inspect image: %w", err)
	}

	if !exists {
		s.logger.With("image", cfg.Image).Info("pulling devnet image")
		if err := s.docker.PullImage(ctx, cfg.Image); err != nil {
			return err
		}
	}

	containerID, err := s.docker.RunDetached(ctx, docker.RunDetachedOptions{
		Image: cfg.Image,
		Name:  cfg.ContainerName,
		Cmd: []string{
			"anvil",
			"--host", "0.0.0.0",
			"--port", strconv.Itoa(anvilPort),
			"--chain-id", strconv.FormatUint(cfg.ChainID, 10),
		},
		Ports: map[int]int{cfg.Port: anvilPort},
	})
	if err != nil {
		return err
	}

	s.logger.
		With("container_id", containerID).
		With("port", cfg.Port).
		Info("devnet container started")

	url := fmt.Sprintf("http://localhost:%d", cfg.Port)
	if err := s.waitForRPC(ctx, url); err != nil {
		return err
	}

	s.logger.With("url", url).With("chain_id", cfg.ChainID).Info("devnet is ready")

	return nil
}

// Stop removes the devnet container.
func (s *Service) Stop(ctx context.Context, cfg configs.Devnet) error {
	if err := s.docker.Remove(ctx, cfg.ContainerName); err != nil {
		return err
	}

	s.logger.With("container", cfg.ContainerName).Info("devnet container removed")

	return nil
}

func (s *Service) waitForRPC(ctx context.Context, url string) error {
	for range s.rpcAttempts {
		client, err := ethclient.DialContext(ctx, url)
		if err == nil {
			_, err := client.BlockNumber(ctx)
			client.Close()
			if err == nil {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.pollInterval):
		}
	}

	return fmt.Errorf("timed out waiting for RPC at %s", url)
}
