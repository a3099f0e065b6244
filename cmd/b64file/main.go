package main

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/compose-network/b64file/configs"
	"github.com/compose-network/b64file/internal/files"
	"github.com/compose-network/b64file/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const appName = "b64file"

var rootCmd = &cobra.Command{
	Use:           appName,
	Short:         "Store payloads in files, base64-encoding binary data",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.Initialize(slog.LevelInfo, logger.FormatJSON)

		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		configs.SetDefaults(viper.GetViper())

		if execPath, err := os.Executable(); err == nil {
			execDir := filepath.Dir(execPath)
			viper.AddConfigPath(execDir)
		}
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")

		// Try to read config file, but don't fail if it doesn't exist
		// Flags and embedded defaults cover every key
		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				slog.Debug("no config file found, will rely on flags and defaults")
			} else {
				const errMsg = "error reading config file"
				slog.With("err", err.Error()).Error(errMsg)
				return errors.Join(err, errors.New(errMsg))
			}
		}

		if err := viper.Unmarshal(&configs.Values); err != nil {
			const errMsg = "unable to decode application config"
			slog.With("err", err.Error()).Error(errMsg)
			return errors.Join(err, errors.New(errMsg))
		}

		if err := configs.Values.Validate(); err != nil {
			slog.With("err", err.Error()).Error("invalid configuration")
			return err
		}

		level, err := logger.ParseLevel(configs.Values.Log.Level)
		if err != nil {
			return err
		}
		logger.Initialize(level, configs.Values.Log.Format)

		slog.With("config_file", viper.ConfigFileUsed(), "config", configs.Values).Debug("configuration loaded")

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format (json or text)")
	if err := viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format")); err != nil {
		panic(err)
	}
}

func main() {
	rootCmd.AddCommand(files.WriteCMD)
	rootCmd.AddCommand(files.ReadCMD)
	rootCmd.AddCommand(files.InspectCMD)

	if err := rootCmd.Execute(); err != nil {
		slog.With("err", err.Error()).Error("failed to execute root command")
		os.Exit(1)
	}
}
