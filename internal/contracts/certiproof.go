package contracts

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// CertiProofNFT is a read-only handle to a deployed CertiProofNFT contract.
// It exposes the metadata accessors used for post-deployment verification;
// minting and transfers are out of scope for the deployment tool.
type CertiProofNFT struct {
	address  common.Address
	contract *bind.BoundContract
}

// NewCertiProofNFT binds a CertiProofNFT handle to an on-chain address.
func NewCertiProofNFT(address common.Address, contractABI abi.ABI, backend bind.ContractBackend) *CertiProofNFT {
	return &CertiProofNFT{
		address:  address,
		contract: bind.NewBoundContract(address, contractABI, backend, backend, backend),
	}
}

// Address returns the bound contract address.
func (c *CertiProofNFT) Address() common.Address {
	return c.address
}

func (c *CertiProofNFT) Version(ctx context.Context) (string, error) {
	return c.callString(ctx, "VERSION")
}

func (c *CertiProofNFT) Author(ctx context.Context) (string, error) {
	return c.callString(ctx, "AUTHOR")
}

func (c *CertiProofNFT) Contact(ctx context.Context) (string, error) {
	return c.callString(ctx, "CONTACT")
}

func (c *CertiProofNFT) Wallet(ctx context.Context) (common.Address, error) {
	return c.callAddress(ctx, "WALLET")
}

func (c *CertiProofNFT) Owner(ctx context.Context) (common.Address, error) {
	return c.callAddress(ctx, "owner")
}

func (c *CertiProofNFT) Name(ctx context.Context) (string, error) {
	return c.callString(ctx, "name")
}

func (c *CertiProofNFT) Symbol(ctx context.Context) (string, error) {
	return c.callString(ctx, "symbol")
}

func (c *CertiProofNFT) callString(ctx context.Context, method string) (string, error) {
	var out []any
	if err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, method); err != nil {
		return "", fmt.Errorf("failed to call %s: %w", method, err)
	}

	return *abi.ConvertType(out[0], new(string)).(*string), nil
}

func (c *CertiProofNFT) callAddress(ctx context.Context, method string) (common.Address, error) {
	var out []any
	if err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, method); err != nil {
		return common.Address{}, fmt.Errorf("failed to call %s: %w", method, err)
	}

	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}
