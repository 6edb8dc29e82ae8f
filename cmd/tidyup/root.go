package main

import (
	"github.com/spf13/cobra"
)

const defaultConfigName = "tidyup.yml"

// createRootCommand creates the main root command, which runs the
// organizer itself.
func createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tidyup",
		Short: "Organize a directory's files into category folders",
		Long: "tidyup scans a directory, classifies each file by its extension against " +
			"a category mapping and moves it into the matching subfolder, with " +
			"unmatched files landing in a catch-all folder.",
		RunE:          runOrganize,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent config flag, shared with the subcommands
	rootCmd.PersistentFlags().StringP("config", "c", defaultConfigName, "Path to config file")

	rootCmd.Flags().StringP("path", "p", "", "Target directory to organize (default: current directory)")
	rootCmd.Flags().Bool("dry-run", false, "Report intended moves without touching the filesystem")
	rootCmd.Flags().Bool("builtin", false, "Use the built-in category index instead of a config file")
	rootCmd.Flags().Bool("by-extension", false, "Sort into folders named after each raw extension")
	rootCmd.Flags().BoolP("interactive", "i", false, "Confirm each move before performing it")
	rootCmd.Flags().Bool("no-color", false, "Disable colored output")

	// Add subcommands
	rootCmd.AddCommand(
		createValidateCommand(),
		createCategoriesCommand(),
		createInitCommand(),
	)

	return rootCmd
}
