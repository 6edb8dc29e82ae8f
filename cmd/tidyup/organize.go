package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/tidyup/tidyup/internal/classify"
	"github.com/tidyup/tidyup/internal/config"
	"github.com/tidyup/tidyup/internal/engine"
	"github.com/tidyup/tidyup/internal/logging"
	"github.com/tidyup/tidyup/internal/prompt"
	"github.com/tidyup/tidyup/internal/storage"
)

// exitCodeBadTarget is the distinct exit code for a missing or invalid
// target directory.
const exitCodeBadTarget = 2

func runOrganize(cmd *cobra.Command, _ []string) error {
	fs := afero.NewOsFs()

	target, err := resolveTarget(cmd)
	if err != nil {
		return err
	}

	classifier, err := buildClassifier(fs, cmd)
	if err != nil {
		return err
	}

	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return fmt.Errorf("failed to get dry-run flag: %w", err)
	}

	ctx, err := logging.New(context.Background(), fs, logging.Config{Level: logging.InfoLevel})
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}

	opts := engine.Options{DryRun: dryRun}

	interactive, err := cmd.Flags().GetBool("interactive")
	if err != nil {
		return fmt.Errorf("failed to get interactive flag: %w", err)
	}
	if interactive && !dryRun {
		prompter := prompt.NewLinerPrompter()
		defer func() { _ = prompter.Close() }()
		opts.Confirm = func(name, category string) (bool, error) {
			return prompt.Confirm(prompter, fmt.Sprintf("Move %s into %s?", name, category))
		}
	}

	actions, err := engine.Organize(ctx, fs, target, classifier, opts)
	if err != nil {
		if errors.Is(err, engine.ErrTargetNotFound) {
			return &ExitError{Err: err, Code: exitCodeBadTarget}
		}
		return fmt.Errorf("organize failed: %w", err)
	}

	noColor, err := cmd.Flags().GetBool("no-color")
	if err != nil {
		return fmt.Errorf("failed to get no-color flag: %w", err)
	}

	rep := newReporter(cmd.OutOrStdout(), dryRun, useColor(noColor))
	for _, action := range actions {
		rep.Line(action)
	}
	rep.Summary(actions)

	return nil
}

func resolveTarget(cmd *cobra.Command) (string, error) {
	target, err := cmd.Flags().GetString("path")
	if err != nil {
		return "", fmt.Errorf("failed to get path flag: %w", err)
	}
	if target != "" {
		return target, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to resolve working directory: %w", err)
	}
	return cwd, nil
}

// buildClassifier picks the classification strategy from the flags:
// raw-extension folders, the built-in index, or the config file.
func buildClassifier(fs afero.Fs, cmd *cobra.Command) (classify.Classifier, error) {
	byExtension, err := cmd.Flags().GetBool("by-extension")
	if err != nil {
		return nil, fmt.Errorf("failed to get by-extension flag: %w", err)
	}
	if byExtension {
		return classify.NewByExtension(config.DefaultFallback), nil
	}

	builtin, err := cmd.Flags().GetBool("builtin")
	if err != nil {
		return nil, fmt.Errorf("failed to get builtin flag: %w", err)
	}
	if builtin {
		return classify.NewIndex(config.Default()), nil
	}

	configPath, err := resolveConfigPath(fs, cmd)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(fs, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return classify.NewIndex(cfg), nil
}

// resolveConfigPath decides where to read the config from: an explicit
// --config wins, then the conventional name in the working directory,
// then the xdg config home fallback.
func resolveConfigPath(fs afero.Fs, cmd *cobra.Command) (string, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return "", fmt.Errorf("failed to get config flag: %w", err)
	}
	if cmd.Flags().Changed("config") {
		return configPath, nil
	}

	if exists, _ := afero.Exists(fs, configPath); exists {
		return configPath, nil
	}

	fallback := storage.ConfigPath(defaultConfigName)
	if exists, _ := afero.Exists(fs, fallback); exists {
		return fallback, nil
	}

	return configPath, nil
}
