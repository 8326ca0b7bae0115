package deploy

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/certiproof/certideploy/configs"
	"github.com/certiproof/certideploy/internal/contracts"
	"github.com/certiproof/certideploy/internal/logger"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

const defaultPollInterval = 2 * time.Second

// Backend is the subset of ethclient.Client the orchestrator depends on.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
}

// Service drives a single CertiProofNFT deployment to completion: network
// resolution, cost estimation, deployment, confirmation waiting, metadata
// readback and record persistence. Execution is strictly sequential and
// nothing is retried; the first failure propagates to the caller.
type Service struct {
	backend      Backend
	privateKey   *ecdsa.PrivateKey
	contract     contracts.CompiledContract
	policy       Policy
	pollInterval time.Duration
	logger       *slog.Logger
}

// NewService creates a deployment service with explicit dependencies.
func NewService(backend Backend, privateKey *ecdsa.PrivateKey, contract contracts.CompiledContract, policy Policy) *Service {
	return &Service{
		backend:      backend,
		privateKey:   privateKey,
		contract:     contract,
		policy:       policy,
		pollInterval: defaultPollInterval,
		logger:       logger.Named("deploy_service"),
	}
}

// Execute runs the full deployment sequence and returns the persisted record.
func (s *Service) Execute(ctx context.Context, cfg configs.Deploy) (*Record, error) {
	network := cfg.Networks[cfg.Network]

	chainID, deployer, err := s.resolve(ctx, network)
	if err != nil {
		return nil, err
	}

	owner := deployer
	if cfg.Contract.Owner != "" {
		owner = common.HexToAddress(cfg.Contract.Owner)
	}

	gas, gasPrice, err := s.estimateCost(ctx, deployer, cfg.Contract, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to estimate deployment cost: %w", err)
	}

	estimatedCost := new(big.Int).Mul(gasPrice, new(big.Int).SetUint64(gas))
	s.logger.
		With("gas", gas).
		With("gas_price_wei", gasPrice.String()).
		With("estimated_cost_wei", estimatedCost.String()).
		Info("deployment cost estimated")

	address, tx, err := s.deploy(ctx, chainID, gasPrice, cfg.Contract, owner)
	if err != nil {
		return nil, err
	}

	receipt, err := s.awaitInclusion(ctx, tx)
	if err != nil {
		return nil, err
	}

	required := s.policy.Required(network.ChainID)
	if err := s.awaitConfirmations(ctx, receipt.BlockNumber.Uint64(), required); err != nil {
		return nil, fmt.Errorf("failed waiting for %d confirmations: %w", required, err)
	}

	meta, err := s.verify(ctx, address, cfg.Contract, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to read back contract metadata: %w", err)
	}

	record := &Record{
		Network:         string(cfg.Network),
		ChainID:         network.ChainID,
		ContractAddress: address.Hex(),
		DeployerAddress: deployer.Hex(),
		TransactionHash: tx.Hash().Hex(),
		BlockNumber:     receipt.BlockNumber.Uint64(),
		GasUsed:         receipt.GasUsed,
		GasPrice:        tx.GasPrice().String(),
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
		ContractName:    meta.Name,
		ContractSymbol:  meta.Symbol,
		Version:         meta.Version,
		Author:          meta.Author,
		Contact:         meta.Contact,
	}

	path, err := WriteRecord(cfg.OutputDir, record)
	if err != nil {
		return nil, err
	}
	s.logger.With("path", path).Info("deployment record written")

	s.report(record, owner)

	return record, nil
}

// resolve queries the connected chain and cross-checks it against the
// configured network before anything is signed.
func (s *Service) resolve(ctx context.Context, network configs.Network) (*big.Int, common.Address, error) {
	chainID, err := s.backend.ChainID(ctx)
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("failed to get chain ID: %w", err)
	}

	if chainID.Uint64() != network.ChainID {
		return nil, common.Address{}, fmt.Errorf("connected to chain %d but configuration expects chain %d", chainID.Uint64(), network.ChainID)
	}

	deployer := crypto.PubkeyToAddress(s.privateKey.PublicKey)

	balance, err := s.backend.BalanceAt(ctx, deployer, nil)
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("failed to get deployer balance: %w", err)
	}

	s.logger.
		With("chain_id", chainID.String()).
		With("deployer", deployer.Hex()).
		With("balance_wei", balance.String()).
		Info("network and signer resolved")

	return chainID, deployer, nil
}

// estimateCost builds the unsigned deployment payload and asks the node for
// gas units and price. Informational only, but an estimation failure aborts
// the run before any transaction is submitted.
func (s *Service) estimateCost(ctx context.Context, from common.Address, contract configs.Contract, owner common.Address) (uint64, *big.Int, error) {
	args, err := s.contract.ABI.Pack("", contract.Name, contract.Symbol, owner)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to pack constructor arguments: %w", err)
	}

	data := make([]byte, 0, len(s.contract.Bytecode)+len(args))
	data = append(data, s.contract.Bytecode...)
	data = append(data, args...)

	gas, err := s.backend.EstimateGas(ctx, ethereum.CallMsg{From: from, Data: data})
	if err != nil {
		return 0, nil, fmt.Errorf("gas estimation failed: %w", err)
	}

	gasPrice, err := s.backend.SuggestGasPrice(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to get gas price: %w", err)
	}

	return gas, gasPrice, nil
}

func (s *Service) deploy(ctx context.Context, chainID, gasPrice *big.Int, contract configs.Contract, owner common.Address) (common.Address, *types.Transaction, error) {
	auth, err := bind.NewKeyedTransactorWithChainID(s.privateKey, chainID)
	if err != nil {
		return common.Address{}, nil, fmt.Errorf("failed to create transactor: %w", err)
	}

	auth.Context = ctx
	auth.GasPrice = gasPrice

	address, tx, _, err := bind.DeployContract(auth, s.contract.ABI, s.contract.Bytecode, s.backend, contract.Name, contract.Symbol, owner)
	if err != nil {
		return common.Address{}, nil, fmt.Errorf("failed to deploy contract: %w", err)
	}

	s.logger.
		With("address", address.Hex()).
		With("tx_hash", tx.Hash().Hex()).
		Info("deployment transaction sent")

	return address, tx, nil
}

func (s *Service) awaitInclusion(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, s.backend, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to wait for transaction: %w", err)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("contract deployment reverted with status %d", receipt.Status)
	}

	s.logger.
		With("block_number", receipt.BlockNumber.Uint64()).
		With("gas_used", receipt.GasUsed).
		Info("deployment transaction mined")

	return receipt, nil
}

// awaitConfirmations blocks until the inclusion block is buried under the
// required depth. The inclusion block itself counts as the first confirmation.
func (s *Service) awaitConfirmations(ctx context.Context, inclusionBlock, required uint64) error {
	for {
		head, err := s.backend.BlockNumber(ctx)
		if err != nil {
			return fmt.Errorf("failed to get block number: %w", err)
		}

		if head >= inclusionBlock {
			confirmations := head - inclusionBlock + 1
			if confirmations >= required {
				s.logger.
					With("confirmations", confirmations).
					With("required", required).
					Info("confirmation depth reached")
				return nil
			}

			s.logger.
				With("confirmations", confirmations).
				With("required", required).
				Debug("waiting for confirmations")
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.pollInterval):
		}
	}
}
