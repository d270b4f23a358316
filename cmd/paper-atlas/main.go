// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paper-atlas CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-atlas/internal/catalog"
	"github.com/pdiddy/paper-atlas/internal/session"
	"github.com/pdiddy/paper-atlas/internal/state"
	"github.com/pdiddy/paper-atlas/internal/state/badgerstore"
	"github.com/pdiddy/paper-atlas/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the paper-atlas CLI.
var rootCmd = &cobra.Command{
	Use:   "paper-atlas",
	Short: "Browse, search, and compare an extracted research-paper corpus",
	Long: `paper-atlas loads a delimited export of research-paper records into an
in-memory catalog and serves interactive search, filtering, sorting,
comparison, and favoriting over it.

Selections (comparison list, favorites, search history) persist across runs
in a local key-value store. The index subcommand additionally maintains a
SQLite full-text index with activity logging, and serve exposes the catalog
as a JSON HTTP API.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paper-atlas.yaml or ~/.config/paper-atlas/config.yaml)")
	rootCmd.PersistentFlags().String("data", "", "paper source: a delimited text file path or http(s) URL")
	rootCmd.PersistentFlags().String("state-dir", "", "directory for the durable selection store (default: state)")
	rootCmd.PersistentFlags().Bool("no-persist", false, "keep selections in memory only for this run")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paper-atlas")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paper-atlas"))
		}
	}

	viper.SetEnvPrefix("PAPER_ATLAS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// --- shared helpers ---

func catalogConfig(cmd *cobra.Command) types.CatalogConfig {
	source, _ := cmd.Flags().GetString("data")
	if source == "" {
		source = viper.GetString("catalog.source")
	}
	if source == "" {
		source = filepath.Join("data", "papers_extracted.csv")
	}

	timeout := viper.GetDuration("catalog.timeout")
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return types.CatalogConfig{
		Source:    source,
		Timeout:   timeout,
		UserAgent: "paper-atlas/" + version,
	}
}

func stateConfig(cmd *cobra.Command) types.StateConfig {
	noPersist, _ := cmd.Flags().GetBool("no-persist")
	stateDir, _ := cmd.Flags().GetString("state-dir")
	if stateDir == "" {
		stateDir = viper.GetString("state.dir")
	}
	if stateDir == "" {
		stateDir = "state"
	}
	return types.StateConfig{StateDir: stateDir, InMemory: noPersist}
}

// loadStore loads the catalog from the configured source. Load failures are
// absorbed: the command proceeds with an empty catalog and a warning.
func loadStore(cmd *cobra.Command) *catalog.Store {
	store := catalog.NewStore()
	store.Load(context.Background(), catalogConfig(cmd), os.Stderr)
	return store
}

// openSession builds the selection manager over the durable store. When the
// store cannot be opened the session falls back to memory so the command
// still works; selections then do not outlive the run.
func openSession(cmd *cobra.Command, lookup session.Lookup, warn io.Writer) (*session.Manager, func()) {
	kv, err := badgerstore.Open(stateConfig(cmd))
	if err != nil {
		fmt.Fprintf(warn, "warning: selection store unavailable, selections will not persist: %v\n", err)
		mem := state.NewMemory()
		return session.NewManager(mem, lookup, warn), func() {}
	}
	return session.NewManager(kv, lookup, warn), func() { kv.Close() }
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
