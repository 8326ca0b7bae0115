package deploy

import (
	"context"
	"fmt"

	"github.com/certiproof/certideploy/configs"
	"github.com/certiproof/certideploy/internal/contracts"
	"github.com/ethereum/go-ethereum/common"
)

// metadata holds the read-back contract fields used for the record and the
// post-deployment log.
type metadata struct {
	Version string
	Author  string
	Contact string
	Wallet  common.Address
	Owner   common.Address
	Name    string
	Symbol  string
}

// verify reads the deployed contract's metadata through read-only calls and
// compares name, symbol and owner against the submitted constructor
// arguments. A mismatch is logged as a warning but does not abort: the
// contract is live at this point and the record must still be persisted.
func (s *Service) verify(ctx context.Context, address common.Address, contract configs.Contract, owner common.Address) (metadata, error) {
	handle := contracts.NewCertiProofNFT(address, s.contract.ABI, s.backend)

	var (
		meta metadata
		err  error
	)

	if meta.Version, err = handle.Version(ctx); err != nil {
		return metadata{}, fmt.Errorf("VERSION: %w", err)
	}
	if meta.Author, err = handle.Author(ctx); err != nil {
		return metadata{}, fmt.Errorf("AUTHOR: %w", err)
	}
	if meta.Contact, err = handle.Contact(ctx); err != nil {
		return metadata{}, fmt.Errorf("CONTACT: %w", err)
	}
	if meta.Wallet, err = handle.Wallet(ctx); err != nil {
		return metadata{}, fmt.Errorf("WALLET: %w", err)
	}
	if meta.Owner, err = handle.Owner(ctx); err != nil {
		return metadata{}, fmt.Errorf("owner: %w", err)
	}
	if meta.Name, err = handle.Name(ctx); err != nil {
		return metadata{}, fmt.Errorf("name: %w", err)
	}
	if meta.Symbol, err = handle.Symbol(ctx); err != nil {
		return metadata{}, fmt.Errorf("symbol: %w", err)
	}

	s.logger.
		With("version", meta.Version).
		With("author", meta.Author).
		With("contact", meta.Contact).
		With("wallet", meta.Wallet.Hex()).
		With("owner", meta.Owner.Hex()).
		With("contract_name", meta.Name).
		With("symbol", meta.Symbol).
		Info("deployed contract metadata")

	if meta.Name != contract.Name {
		s.logger.With("submitted", contract.Name).With("on_chain", meta.Name).Warn("contract name does not match constructor argument")
	}
	if meta.Symbol != contract.Symbol {
		s.logger.With("submitted", contract.Symbol).With("on_chain", meta.Symbol).Warn("contract symbol does not match constructor argument")
	}
	if meta.Owner != owner {
		s.logger.With("submitted", owner.Hex()).With("on_chain", meta.Owner.Hex()).Warn("contract owner does not match constructor argument")
	}

	return meta, nil
}
