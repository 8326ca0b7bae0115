package main

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/certiproof/certideploy/configs"
	"github.com/certiproof/certideploy/internal/deploy"
	"github.com/certiproof/certideploy/internal/devnet"
	"github.com/certiproof/certideploy/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const appName = "certideploy"

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "CLI for deploying and recording the CertiProofNFT contract",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logger.ParseLevel(os.Getenv("CERTIDEPLOY_LOG_LEVEL"))
		if err != nil {
			return err
		}
		logger.Initialize(level)

		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if execPath, err := os.Executable(); err == nil {
			execDir := filepath.Dir(execPath)
			viper.AddConfigPath(execDir)
		}
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")

		// Try to read config file, but don't fail if it doesn't exist.
		// Flags can provide all necessary configuration.
		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				slog.Debug("no config file found, will rely on flags and defaults")
			} else {
				const errMsg = "error reading config file"
				slog.With("err", err.Error()).Error(errMsg)
				return errors.Join(err, errors.New(errMsg))
			}
		} else {
			slog.With("config_file", viper.ConfigFileUsed()).Debug("config file loaded")
		}

		if err := viper.Unmarshal(&configs.Values); err != nil {
			const errMsg = "unable to decode application config"
			slog.With("err", err.Error()).Error(errMsg)
			return errors.Join(err, errors.New(errMsg))
		}

		return nil
	},
}

func main() {
	rootCmd.AddCommand(deploy.CMD)
	rootCmd.AddCommand(devnet.CMD)

	if err := rootCmd.Execute(); err != nil {
		slog.With("err", err.Error()).Error("command failed")
		os.Exit(1)
	}
}
