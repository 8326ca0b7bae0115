package deploy

import (
	"fmt"
	"strconv"
)

// DefaultDepth is the confirmation depth applied to chains without an
// explicit policy entry.
const DefaultDepth uint64 = 2

// High-value production networks get a deeper reorg safety margin.
var defaultRequired = map[uint64]uint64{
	1:   5, // Ethereum mainnet
	137: 5, // Polygon PoS
}

// Policy maps chain IDs to the number of block confirmations required
// before a deployment is considered final.
type Policy struct {
	required map[uint64]uint64
}

// NewPolicy builds a confirmation policy from the built-in defaults plus
// config overrides keyed by decimal chain ID.
func NewPolicy(overrides map[string]uint64) (Policy, error) {
	required := make(map[uint64]uint64, len(defaultRequired)+len(overrides))
	for chainID, depth := range defaultRequired {
		required[chainID] = depth
	}

	for key, depth := range overrides {
		chainID, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			return Policy{}, fmt.Errorf("invalid chain ID %q in confirmations config: %w", key, err)
		}
		if depth == 0 {
			return Policy{}, fmt.Errorf("confirmation depth for chain %d must be at least 1", chainID)
		}
		required[chainID] = depth
	}

	return Policy{required: required}, nil
}

// Required returns the confirmation depth for a chain ID.
func (p Policy) Required(chainID uint64) uint64 {
	if depth, ok := p.required[chainID]; ok {
		return depth
	}

	return DefaultDepth
}
