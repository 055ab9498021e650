package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cubic-hopper/internal/config"
)

var (
	flagWrite bool
	flagForce bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or install the default configuration",
	Long: `Print the embedded default configuration, or write it to the user
config directory ($XDG_CONFIG_HOME/hopper/hopper.yaml) to edit.

Examples:
  hopper config
  hopper config --write
  hopper config --write --force`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagWrite, "write", false, "Write the defaults to the user config file")
	configCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing user config file")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if !flagWrite {
		_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML())
		return err
	}

	path, err := config.UserConfigTarget()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil && !flagForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}
	if err := os.WriteFile(path, config.GetDefaultYAML(), 0o644); err != nil {
		return fmt.Errorf("cannot write config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
