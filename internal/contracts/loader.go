package contracts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

//go:embed compiled/contracts.json
var compiledContractsFS embed.FS

// LoadCompiledContracts loads the embedded compiled contract artifacts.
func LoadCompiledContracts() (map[ContractName]CompiledContract, error) {
	data, err := compiledContractsFS.ReadFile("compiled/contracts.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded contracts: %w", err)
	}

	return parseContracts(data)
}

// LoadCertiProofNFT returns the CertiProofNFT artifact.
func LoadCertiProofNFT() (CompiledContract, error) {
	compiled, err := LoadCompiledContracts()
	if err != nil {
		return CompiledContract{}, err
	}

	contract, ok := compiled[ContractNameCertiProofNFT]
	if !ok {
		return CompiledContract{}, fmt.Errorf("artifact %s not found in embedded contracts", ContractNameCertiProofNFT)
	}

	return contract, nil
}

// parseContracts parses artifact JSON data into a CompiledContract map
func parseContracts(data []byte) (map[ContractName]CompiledContract, error) {
	var result map[string]struct {
		ABI      json.RawMessage `json:"abi"`
		Bytecode string          `json:"bytecode"`
	}

	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse compiled contracts: %w", err)
	}

	loadedContracts := make(map[ContractName]CompiledContract)

	for name, contract := range result {
		parsedABI, err := abi.JSON(strings.NewReader(string(contract.ABI)))
		if err != nil {
			return nil, fmt.Errorf("failed to parse ABI for %s: %w", name, err)
		}

		bytecode := common.FromHex(contract.Bytecode)
		if len(bytecode) == 0 {
			return nil, fmt.Errorf("empty bytecode for %s", name)
		}

		if _, ok := Contracts[ContractName(name)]; ok {
			loadedContracts[ContractName(name)] = CompiledContract{
				ABI:      parsedABI,
				RawABI:   string(contract.ABI),
				Bytecode: bytecode,
			}
		}
	}

	return loadedContracts, nil
}
