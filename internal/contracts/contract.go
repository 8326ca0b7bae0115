package contracts

import "github.com/ethereum/go-ethereum/accounts/abi"

type (
	ContractName     string
	CompiledContract struct {
		ABI      abi.ABI
		RawABI   string
		Bytecode []byte
	}
)

const (
	ContractNameCertiProofNFT ContractName = "CertiProofNFT"
)

var Contracts = map[ContractName]struct{}{
	ContractNameCertiProofNFT: {},
}
