package deploy

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// LocalChainID is the conventional chain ID of a local development node.
// Deployments against it skip the explorer verification suggestion.
const LocalChainID uint64 = 31337

// EnvSuggestion returns the environment variables the CertiProof frontend
// needs to talk to the deployed contract.
func EnvSuggestion(record *Record) string {
	return fmt.Sprintf("REACT_APP_CONTRACT_ADDRESS=%s REACT_APP_CHAIN_ID=%d", record.ContractAddress, record.ChainID)
}

// VerifyCommand returns the explorer source-verification command for a
// deployment, including the constructor arguments it was created with.
func VerifyCommand(record *Record, owner common.Address) string {
	return fmt.Sprintf("npx hardhat verify --network %s %s %q %q %s",
		record.Network, record.ContractAddress, record.ContractName, record.ContractSymbol, owner.Hex())
}

// report emits the post-deployment operator hints.
func (s *Service) report(record *Record, owner common.Address) {
	s.logger.With("env", EnvSuggestion(record)).Info("frontend environment suggestion")

	if record.ChainID != LocalChainID {
		s.logger.With("command", VerifyCommand(record, owner)).Info("verify contract source with")
	}
}
