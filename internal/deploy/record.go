package deploy

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Record is the persisted outcome of a single deployment. It is written
// once per run, after the required confirmation depth has been observed.
type Record struct {
	Network         string `json:"network"`
	ChainID         uint64 `json:"chainId"`
	ContractAddress string `json:"contractAddress"`
	DeployerAddress string `json:"deployerAddress"`
	TransactionHash string `json:"transactionHash"`
	BlockNumber     uint64 `json:"blockNumber"`
	GasUsed         uint64 `json:"gasUsed"`
	GasPrice        string `json:"gasPrice"`
	Timestamp       string `json:"timestamp"`
	ContractName    string `json:"contractName"`
	ContractSymbol  string `json:"contractSymbol"`
	Version         string `json:"version"`
	Author          string `json:"author"`
	Contact         string `json:"contact"`
}

// Validate checks that all required fields are set before serialization.
func (r *Record) Validate() error {
	var errs []error

	if r.Network == "" {
		errs = append(errs, errors.New("network is required"))
	}
	if r.ChainID == 0 {
		errs = append(errs, errors.New("chainId is required"))
	}
	if r.ContractAddress == "" {
		errs = append(errs, errors.New("contractAddress is required"))
	}
	if r.DeployerAddress == "" {
		errs = append(errs, errors.New("deployerAddress is required"))
	}
	if r.TransactionHash == "" {
		errs = append(errs, errors.New("transactionHash is required"))
	}
	if r.Timestamp == "" {
		errs = append(errs, errors.New("timestamp is required"))
	}
	if r.ContractName == "" {
		errs = append(errs, errors.New("contractName is required"))
	}
	if r.ContractSymbol == "" {
		errs = append(errs, errors.New("contractSymbol is required"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("deployment record validation failed: %w", errors.Join(errs...))
	}

	return nil
}

// FileName returns the record file name, keyed by network and chain ID.
func (r *Record) FileName() string {
	return fmt.Sprintf("%s-%d.json", r.Network, r.ChainID)
}

// WriteRecord persists a record as pretty-printed JSON under dir, creating
// the directory if absent. An existing record for the same network and
// chain ID is overwritten. Returns the written path.
func WriteRecord(dir string, record *Record) (string, error) {
	if err := record.Validate(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create deployments directory %s: %w", dir, err)
	}

	content, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal deployment record: %w", err)
	}

	path := filepath.Join(dir, record.FileName())
	if err := os.WriteFile(path, append(content, '\n'), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	return path, nil
}
