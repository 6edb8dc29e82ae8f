package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/tidyup/tidyup/internal/config"
)

// createCategoriesCommand creates the categories listing command.
func createCategoriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List categories and their extensions in match order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			builtin, err := cmd.Flags().GetBool("builtin")
			if err != nil {
				return fmt.Errorf("failed to get builtin flag: %w", err)
			}

			var cfg *config.Config
			if builtin {
				cfg = config.Default()
			} else {
				fs := afero.NewOsFs()
				configPath, pathErr := resolveConfigPath(fs, cmd)
				if pathErr != nil {
					return pathErr
				}
				cfg, err = config.Load(fs, configPath)
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
			}

			rows := make([]table.Row, 0, len(cfg.Categories)+1)
			for _, category := range cfg.Categories {
				rows = append(rows, table.Row{category.Name, strings.Join(category.Extensions, " ")})
			}
			rows = append(rows, table.Row{cfg.FallbackName(), "(everything else)"})

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderTable(table.Row{"Category", "Extensions"}, rows))
			return nil
		},
	}

	cmd.Flags().Bool("builtin", false, "Show the built-in category index")

	return cmd
}
