//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// Convert builds the binary and runs it on the document named by the
// PAGEMARK_INPUT and PAGEMARK_OUTPUT environment variables.
func Convert() error {
	mg.Deps(Build)

	input := os.Getenv("PAGEMARK_INPUT")
	output := os.Getenv("PAGEMARK_OUTPUT")
	if input == "" || output == "" {
		return fmt.Errorf("set PAGEMARK_INPUT and PAGEMARK_OUTPUT")
	}

	cmd := exec.Command(filepath.Join(binDir, binName), "convert", input, output)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("pagemark convert: %w", err)
	}
	return nil
}
