// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <paper-id>",
	Short: "Show one paper's full record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := loadStore(cmd)

		paper, ok := store.GetByID(args[0])
		if !ok {
			return fmt.Errorf("paper %s not found", args[0])
		}

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			return writeJSON(os.Stdout, paper)
		}
		formatPaper(os.Stdout, paper)
		return nil
	},
}

func init() {
	showCmd.Flags().Bool("json", false, "output the record as JSON")
	rootCmd.AddCommand(showCmd)
}
