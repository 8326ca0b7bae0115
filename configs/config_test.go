package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDeploy() Deploy {
	return Deploy{
		Network:    "sepolia",
		PrivateKey: "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318",
		OutputDir:  "deployments",
		Contract: Contract{
			Name:   "CertiProof",
			Symbol: "CPROOF",
		},
		Networks: map[NetworkName]Network{
			"sepolia": {RPCURL: "https://rpc.sepolia.org", ChainID: 11155111},
		},
	}
}

func TestDeployValidate(t *testing.T) {
	cfg := validDeploy()
	require.NoError(t, cfg.Validate())
}

func TestDeployValidate_MissingFields(t *testing.T) {
	cfg := Deploy{}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deploy.network is required")
	assert.Contains(t, err.Error(), "deploy.private-key is required")
	assert.Contains(t, err.Error(), "deploy.output-dir is required")
	assert.Contains(t, err.Error(), "deploy.contract.name is required")
	assert.Contains(t, err.Error(), "deploy.contract.symbol is required")
}

func TestDeployValidate_UnknownNetwork(t *testing.T) {
	cfg := validDeploy()
	cfg.Network = "base"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deploy.networks.base is not defined")
}

func TestDeployValidate_IncompleteNetwork(t *testing.T) {
	cfg := validDeploy()
	cfg.Networks["sepolia"] = Network{}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deploy.networks.sepolia.rpc-url is required")
	assert.Contains(t, err.Error(), "deploy.networks.sepolia.chain-id is required")
}

func TestDevnetValidate(t *testing.T) {
	cfg := Devnet{
		Image:         "ghcr.io/foundry-rs/foundry:latest",
		ContainerName: "certideploy-devnet",
		Port:          8545,
		ChainID:       31337,
	}
	require.NoError(t, cfg.Validate())

	err := (&Devnet{}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "devnet.image is required")
}

func TestDefaultConfig(t *testing.T) {
	cfg, err := DefaultConfig()
	require.NoError(t, err)

	assert.Equal(t, NetworkName("localhost"), cfg.Deploy.Network)
	assert.Equal(t, "CertiProof", cfg.Deploy.Contract.Name)
	assert.Equal(t, "CPROOF", cfg.Deploy.Contract.Symbol)
	assert.Equal(t, uint64(1), cfg.Deploy.Networks["mainnet"].ChainID)
	assert.Equal(t, uint64(137), cfg.Deploy.Networks["polygon"].ChainID)
	assert.Equal(t, uint64(31337), cfg.Deploy.Networks["localhost"].ChainID)
	assert.Equal(t, uint64(5), cfg.Deploy.Confirmations["1"])
	assert.Equal(t, uint64(31337), cfg.Devnet.ChainID)
}
