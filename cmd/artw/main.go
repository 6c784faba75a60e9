// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the artw CLI: corpus ingestion, style
// profiling, prompt assembly, outline generation, and document export for
// Turkish art-history articles.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/artw-stylekit/internal/config"
	"github.com/pdiddy/artw-stylekit/internal/logging"
	"github.com/pdiddy/artw-stylekit/internal/output"
	"github.com/pdiddy/artw-stylekit/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// Set by the root command before any subcommand runs.
var (
	cfg     *config.Config
	logger  *logging.ZeroLogger
	printer *output.Printer
)

// rootCmd is the base command for the artw CLI.
var rootCmd = &cobra.Command{
	Use:   "artw",
	Short: "Style-aware writing assistant for Turkish art-history articles",
	Long: `artw learns the style of a corpus of Turkish art-history articles and
uses it to steer article generation.

Typical flow: ingest PDFs into a corpus, profile the corpus, then generate an
outline in the corpus style and export it as a DOCX draft. Prompts can also
be saved for use with any chat model.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			logger.Close()
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./artw.yaml or ~/.config/artw/config.yaml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().String("log-level", "", "console log level: debug, info, warn, error")
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("artw")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "artw"))
		}
	}

	config.Setup(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setup loads .env, secrets and configuration, creates the working
// directories and opens the logger.
func setup(cmd *cobra.Command, args []string) error {
	noColor, _ := cmd.Flags().GetBool("no-color")
	printer = output.NewPrinter(os.Stdout, os.Stderr, output.ResolveColors(noColor))

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	store, err := secrets.Load(secrets.DefaultDir, logging.Nop())
	if err != nil {
		return err
	}

	cfg, err = config.Load(viper.GetViper(), store)
	if err != nil {
		return err
	}
	if err := cfg.EnsureDirs(); err != nil {
		return err
	}

	logger, err = logging.New(logging.Config{Level: cfg.LogLevel, File: cfg.LogPath()})
	if err != nil {
		return err
	}
	if names := store.Names(); len(names) > 0 {
		logger.Debug("loaded secrets", "keys", names)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
