package output

import (
	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"
)

type (
	Model struct {
		Network  Network  `yaml:"network"`
		Contract Contract `yaml:"contract"`
	}

	Network struct {
		Name    string `yaml:"name"`
		ChainID uint64 `yaml:"chain-id"`
		RPCURL  string `yaml:"rpc-url"`
	}

	Contract struct {
		Name    string             `yaml:"name"`
		Symbol  string             `yaml:"symbol"`
		Address common.Address     `yaml:"address"`
		ABI     SingleQuotedString `yaml:"abi"`
	}

	SingleQuotedString string
)

func (s SingleQuotedString) MarshalYAML() (any, error) {
	node := &yaml.Node{
		Kind:  yaml.ScalarNode,
		Style: yaml.SingleQuotedStyle,
		Value: string(s),
	}
	return node, nil
}
