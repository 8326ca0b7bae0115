package configs

import (
	"errors"
	"fmt"
)

var Values Config

type (
	NetworkName string

	Config struct {
		Deploy Deploy `mapstructure:"deploy"`
		Devnet Devnet `mapstructure:"devnet"`
	}

	Deploy struct {
		Network       NetworkName             `mapstructure:"network"`
		PrivateKey    string                  `mapstructure:"private-key"`
		OutputDir     string                  `mapstructure:"output-dir"`
		Contract      Contract                `mapstructure:"contract"`
		Networks      map[NetworkName]Network `mapstructure:"networks"`
		Confirmations map[string]uint64       `mapstructure:"confirmations"`
	}

	Contract struct {
		Name   string `mapstructure:"name"`
		Symbol string `mapstructure:"symbol"`
		Owner  string `mapstructure:"owner"`
	}

	Network struct {
		RPCURL  string `mapstructure:"rpc-url"`
		ChainID uint64 `mapstructure:"chain-id"`
	}

	Devnet struct {
		Image         string `mapstructure:"image"`
		ContainerName string `mapstructure:"container-name"`
		Port          int    `mapstructure:"port"`
		ChainID       uint64 `mapstructure:"chain-id"`
	}
)

func (c *Deploy) Validate() error {
	var errs []error

	if c.Network == "" {
		errs = append(errs, errors.New("deploy.network is required"))
	}
	if c.PrivateKey == "" {
		errs = append(errs, errors.New("deploy.private-key is required"))
	}
	if c.OutputDir == "" {
		errs = append(errs, errors.New("deploy.output-dir is required"))
	}
	if c.Contract.Name == "" {
		errs = append(errs, errors.New("deploy.contract.name is required"))
	}
	if c.Contract.Symbol == "" {
		errs = append(errs, errors.New("deploy.contract.symbol is required"))
	}

	if c.Network != "" {
		network, exists := c.Networks[c.Network]
		if !exists {
			errs = append(errs, fmt.Errorf("deploy.networks.%s is not defined", c.Network))
		} else {
			if network.RPCURL == "" {
				errs = append(errs, fmt.Errorf("deploy.networks.%s.rpc-url is required", c.Network))
			}
			if network.ChainID == 0 {
				errs = append(errs, fmt.Errorf("deploy.networks.%s.chain-id is required", c.Network))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("deploy configuration validation failed: %w", errors.Join(errs...))
	}

	return nil
}

func (c *Devnet) Validate() error {
	var errs []error

	if c.Image == "" {
		errs = append(errs, errors.New("devnet.image is required"))
	}
	if c.ContainerName == "" {
		errs = append(errs, errors.New("devnet.container-name is required"))
	}
	if c.Port == 0 {
		errs = append(errs, errors.New("devnet.port is required"))
	}
	if c.ChainID == 0 {
		errs = append(errs, errors.New("devnet.chain-id is required"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("devnet configuration validation failed: %w", errors.Join(errs...))
	}

	return nil
}
