package devnet

import (
	"github.com/certiproof/certideploy/configs"
	"github.com/spf13/viper"
)

var defaultDevnetConfig = configs.MustDefaultConfig().Devnet

func init() {
	declareStringFlag("image", "devnet.image", defaultDevnetConfig.Image, "Docker image for the local node")
	declareStringFlag("container-name", "devnet.container-name", defaultDevnetConfig.ContainerName, "Container name for the local node")
	declareIntFlag("port", "devnet.port", defaultDevnetConfig.Port, "Host port to publish the RPC endpoint on")
	declareIntFlag("chain-id", "devnet.chain-id", int(defaultDevnetConfig.ChainID), "Chain ID for the local node")
}

func declareStringFlag(name, key, defaultValue, description string) {
	CMD.PersistentFlags().String(name, defaultValue, description)
	if err := viper.BindPFlag(key, CMD.PersistentFlags().Lookup(name)); err != nil {
		panic(err)
	}
}

func declareIntFlag(name, key string, defaultValue int, description string) {
	CMD.PersistentFlags().Int(name, defaultValue, description)
	if err := viper.BindPFlag(key, CMD.PersistentFlags().Lookup(name)); err != nil {
		panic(err)
	}
}
