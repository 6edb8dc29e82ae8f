package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/tidyup/tidyup/internal/config"
)

// createValidateCommand creates the validate command.
func createValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the category config file",
		Long:  "Validate the category config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fs := afero.NewOsFs()

			configPath, err := resolveConfigPath(fs, cmd)
			if err != nil {
				return err
			}

			cfg, err := config.Load(fs, configPath)
			if err != nil {
				return fmt.Errorf("validation error: %w", err)
			}

			extensions := 0
			for _, category := range cfg.Categories {
				extensions += len(category.Extensions)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[✓] %s is valid: %d categories, %d extensions, catch-all %q\n",
				configPath, len(cfg.Categories), extensions, cfg.FallbackName())
			return nil
		},
	}
}
