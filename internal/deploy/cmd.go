package deploy

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/certiproof/certideploy/configs"
	"github.com/certiproof/certideploy/internal/contracts"
	"github.com/certiproof/certideploy/internal/output"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/spf13/cobra"
)

var CMD = &cobra.Command{
	Use:   "deploy",
	Short: "Deploy the CertiProofNFT contract and record the deployment",
	RunE: func(cmd *cobra.Command, args []string) error {
		slog.Info("starting deploy command. Validating config")

		if err := configs.Values.Deploy.Validate(); err != nil {
			return err
		}

		if err := run(cmd.Context(), configs.Values.Deploy); err != nil {
			return fmt.Errorf("deployment failed: %w", err)
		}

		return nil
	},
}

func run(ctx context.Context, cfg configs.Deploy) error {
	network := cfg.Networks[cfg.Network]

	slog.With("network", string(cfg.Network)).With("rpc_url", network.RPCURL).Info("dialing RPC")
	client, err := ethclient.DialContext(ctx, network.RPCURL)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", network.RPCURL, err)
	}
	defer client.Close()

	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return fmt.Errorf("failed to parse private key: %w", err)
	}

	contract, err := contracts.LoadCertiProofNFT()
	if err != nil {
		return err
	}

	policy, err := NewPolicy(cfg.Confirmations)
	if err != nil {
		return err
	}

	service := NewService(client, privateKey, contract, policy)
	record, err := service.Execute(ctx, cfg)
	if err != nil {
		return err
	}

	if err := output.NewGenerator().Generate(ctx, cfg, common.HexToAddress(record.ContractAddress)); err != nil {
		return fmt.Errorf("failed to generate frontend artifact: %w", err)
	}

	slog.Info("deployment completed successfully")

	return nil
}
