//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// Index rebuilds the SQLite full-text index from the configured data source.
func Index() error {
	mg.Deps(Build)
	cmd := exec.Command(filepath.Join(binDir, binName), "index", "rebuild")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("index rebuild: %w", err)
	}
	return nil
}
