package deploy

import (
	"github.com/certiproof/certideploy/configs"
	"github.com/spf13/viper"
)

var defaultDeployConfig = configs.MustDefaultConfig().Deploy

func init() {
	declareStringFlag("network", "deploy.network", string(defaultDeployConfig.Network), "Target network name from the networks table")
	declareStringFlag("private-key", "deploy.private-key", "", "Deployer private key (hex)")
	declareStringFlag("output-dir", "deploy.output-dir", defaultDeployConfig.OutputDir, "Directory for deployment records")

	declareStringFlag("contract-name", "deploy.contract.name", defaultDeployConfig.Contract.Name, "ERC-721 collection name constructor argument")
	declareStringFlag("contract-symbol", "deploy.contract.symbol", defaultDeployConfig.Contract.Symbol, "ERC-721 symbol constructor argument")
	declareStringFlag("contract-owner", "deploy.contract.owner", "", "Contract owner address (defaults to deployer)")
}

func declareStringFlag(name, key, defaultValue, description string) {
	CMD.Flags().String(name, defaultValue, description)
	if err := viper.BindPFlag(key, CMD.Flags().Lookup(name)); err != nil {
		panic(err)
	}
}
