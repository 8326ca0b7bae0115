package output

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/certiproof/certideploy/configs"
	"github.com/certiproof/certideploy/internal/contracts"
	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"
)

const fileName = "frontend.yaml"

// Generator writes the artifact the CertiProof web frontend consumes:
// network parameters, the deployed contract address and its compact ABI.
type Generator struct {
}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(_ context.Context, cfg configs.Deploy, address common.Address) error {
	contract, err := contracts.LoadCertiProofNFT()
	if err != nil {
		return fmt.Errorf("could not load compiled contract: %w", err)
	}

	network := cfg.Networks[cfg.Network]
	model := &Model{
		Network: Network{
			Name:    string(cfg.Network),
			ChainID: network.ChainID,
			RPCURL:  network.RPCURL,
		},
		Contract: Contract{
			Name:    cfg.Contract.Name,
			Symbol:  cfg.Contract.Symbol,
			Address: address,
			ABI:     SingleQuotedString(compactJSON(contract.RawABI)),
		},
	}

	content, err := yaml.Marshal(model)
	if err != nil {
		return fmt.Errorf("failed to marshal frontend artifact: %w", err)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(cfg.OutputDir, fileName)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// compactJSON strips insignificant whitespace so the ABI fits a single
// quoted YAML scalar.
func compactJSON(raw string) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(raw)); err != nil {
		return raw
	}
	return buf.String()
}
