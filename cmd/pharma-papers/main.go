// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pharma-papers CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pharma-papers/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// firstNonEmpty returns the first non-empty value, used to resolve a
// setting from flag, config, and secrets file in that order.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// rootCmd is the base command for the pharma-papers CLI.
var rootCmd = &cobra.Command{
	Use:   "pharma-papers",
	Short: "Find PubMed papers with pharma/biotech-affiliated authors",
	Long: `pharma-papers queries PubMed for papers matching a search term and
classifies each paper's authors as academic or industry-affiliated using
heuristic matching against affiliation strings and email domains. Papers
with at least one industry-affiliated author are exported as CSV.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; a missing file is not an error.
		godotenv.Load()

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pharma-papers.yaml or ~/.config/pharma-papers/config.yaml)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "enable debug mode with verbose output")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pharma-papers")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pharma-papers"))
		}
	}

	viper.SetEnvPrefix("PHARMA_PAPERS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if debug, _ := rootCmd.PersistentFlags().GetBool("debug"); debug {
			fmt.Fprintf(os.Stderr, "error detail: %+v\n", err)
		}
		os.Exit(1)
	}
}
