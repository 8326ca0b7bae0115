package output

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/certiproof/certideploy/configs"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	cfg := configs.Deploy{
		Network:   "sepolia",
		OutputDir: dir,
		Contract:  configs.Contract{Name: "CertiProof", Symbol: "CPROOF"},
		Networks: map[configs.NetworkName]configs.Network{
			"sepolia": {RPCURL: "https://rpc.sepolia.org", ChainID: 11155111},
		},
	}
	address := common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")

	require.NoError(t, NewGenerator().Generate(context.Background(), cfg, address))

	data, err := os.ReadFile(filepath.Join(dir, "frontend.yaml"))
	require.NoError(t, err)

	var model Model
	require.NoError(t, yaml.Unmarshal(data, &model))

	assert.Equal(t, "sepolia", model.Network.Name)
	assert.Equal(t, uint64(11155111), model.Network.ChainID)
	assert.Equal(t, "https://rpc.sepolia.org", model.Network.RPCURL)
	assert.Equal(t, "CertiProof", model.Contract.Name)
	assert.Equal(t, "CPROOF", model.Contract.Symbol)
	assert.NotEmpty(t, model.Contract.ABI)

	// ABI is a compact, single-quoted JSON scalar.
	assert.Contains(t, string(data), "abi: '[")
}

func TestGenerate_MissingDirectoryIsCreated(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	cfg := configs.Deploy{
		Network:   "localhost",
		OutputDir: dir,
		Contract:  configs.Contract{Name: "CertiProof", Symbol: "CPROOF"},
		Networks: map[configs.NetworkName]configs.Network{
			"localhost": {RPCURL: "http://localhost:8545", ChainID: 31337},
		},
	}

	require.NoError(t, NewGenerator().Generate(context.Background(), cfg, common.Address{}))

	_, err := os.Stat(filepath.Join(dir, "frontend.yaml"))
	require.NoError(t, err)
}
