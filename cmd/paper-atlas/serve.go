// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/paper-atlas/internal/query"
	"github.com/pdiddy/paper-atlas/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog over a JSON HTTP API",
	Long: `Serve loads the collection once and exposes it read-only over HTTP:
/api/papers, /api/search, /api/paper/{id}, /api/statistics, and /api/compare.
The API is stateless, so searches made over HTTP are not added to the local
search history.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = viper.GetString("server.addr")
		}
		if addr == "" {
			addr = ":8080"
		}

		logger, err := zap.NewProduction()
		if err != nil {
			return err
		}
		defer logger.Sync()

		store := loadStore(cmd)
		engine := query.NewEngine(store, nil)

		return server.New(store, engine, logger).ListenAndServe(addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default: :8080)")
	rootCmd.AddCommand(serveCmd)
}
