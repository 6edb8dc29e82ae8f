package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/tidyup/tidyup/internal/config"
)

// createInitCommand creates the init command, which seeds a config
// file with the built-in category index.
func createInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the built-in default config to disk",
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}

			fs := afero.NewOsFs()
			if exists, _ := afero.Exists(fs, configPath); exists {
				return fmt.Errorf("%s already exists, refusing to overwrite", configPath)
			}

			data, err := config.DefaultYAML()
			if err != nil {
				return err
			}
			if err := afero.WriteFile(fs, configPath, data, 0o600); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[✓] Wrote default config to %s\n", configPath)
			return nil
		},
	}
}
