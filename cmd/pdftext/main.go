// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdftext CLI.
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

// rootCmd reads a PDF and prints the text of each page.
var rootCmd = &cobra.Command{
	Use:   "pdftext [file]",
	Short: "Print the plain text of each page of a PDF",
	Long: `pdftext opens a PDF, extracts the plain text of every page in document
order, and prints the resulting page sequence to stdout.

With no argument it reads assessment.pdf from the current directory. The PDF
library that does the parsing is selected with --backend: ledongthuc
(default), dslipak, tabula, or pdftotext (requires poppler-utils).`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runRead,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdftext.yaml or ~/.config/pdftext/config.yaml)")

	rootCmd.Flags().String("backend", "", "PDF backend: ledongthuc, dslipak, tabula, or pdftotext (default ledongthuc)")
	rootCmd.Flags().String("format", "", "output format: json, yaml, or text (default json)")
	_ = viper.BindPFlag("backend", rootCmd.Flags().Lookup("backend"))
	_ = viper.BindPFlag("format", rootCmd.Flags().Lookup("format"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdftext")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdftext"))
		}
	}

	viper.SetEnvPrefix("PDFTEXT")
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
