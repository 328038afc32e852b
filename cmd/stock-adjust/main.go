// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the stock-adjust CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the stock-adjust CLI.
var rootCmd = &cobra.Command{
	Use:   "stock-adjust",
	Short: "Adjust stock-assessment biomass for ecosystem-model initial conditions",
	Long: `stock-adjust corrects fishery stock-assessment biomass estimates for use
as initial conditions in a regional ecosystem model. It back-calculates the
biomass of age classes younger than the assessed minimum age from natural
mortality and growth parameters, aggregates species into functional groups,
extrapolates the assessed (AK) biomass into the adjacent unassessed region
(BC) using spatial-distribution proportions, compares the extrapolation
against independent regional assessments, and exports a single-reference-year
summary table.

Each stage is a subcommand: decompose, redistribute, validate, and export.
Stages hand results to each other through CSV files under the output
directory; run executes the whole pipeline in one pass.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./stock-adjust.yaml or ~/.config/stock-adjust/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("stock-adjust")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "stock-adjust"))
		}
	}

	viper.SetEnvPrefix("STOCK_ADJUST")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
