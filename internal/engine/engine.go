// Package engine performs the snapshot-then-act organizing pass over a
// single directory level.
package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/tidyup/tidyup/internal/classify"
	"github.com/tidyup/tidyup/internal/logging"
)

// ErrTargetNotFound reports a missing or non-directory organize target.
var ErrTargetNotFound = errors.New("target directory not found")

const dirPerm = 0o750

// Action records one classification decision and what was (or would
// have been) done about it.
type Action struct {
	Err      error  // move failure; the run continues
	Name     string // file name within the target directory
	Category string
	Dest     string // resolved destination directory
	Created  bool   // category folder was (or would be) newly created
	Skipped  bool   // declined in interactive mode
}

// Confirm is asked before each move in interactive runs. Returning
// false skips the file.
type Confirm func(name, category string) (bool, error)

// Options controls how a pass applies its decisions.
type Options struct {
	Confirm Confirm
	DryRun  bool
}

// Organize snapshots dir's immediate entries once, classifies every
// regular file by its extension and moves it into its category folder,
// creating the folder on first use. Dry runs compute identical
// decisions without touching the filesystem.
//
// Known limitations, by choice: a destination already holding a
// same-named file gets the platform rename default (overwrite on
// POSIX); move failures are recorded on their action and the pass
// continues; interrupting mid-run leaves a partially organized
// directory, which is safe to re-run since only top-level entries are
// ever scanned.
func Organize(
	ctx context.Context, fs afero.Fs, dir string, classifier classify.Classifier, opts Options,
) ([]Action, error) {
	log := logging.Get(ctx)

	info, err := fs.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrTargetNotFound, dir)
		}
		return nil, fmt.Errorf("failed to stat target directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrTargetNotFound, dir)
	}

	// Fixed snapshot: moves performed below never feed back into the
	// iteration, so files landing in category folders mid-run are not
	// reprocessed.
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list target directory: %w", err)
	}

	actions := make([]Action, 0, len(entries))
	for _, entry := range entries {
		// Only regular files participate; directories, symlinks and
		// special files are skipped.
		if !entry.Mode().IsRegular() {
			continue
		}

		action, err := organizeOne(fs, dir, entry.Name(), classifier, opts)
		if err != nil {
			return actions, err
		}
		logAction(log, action, opts.DryRun)
		actions = append(actions, action)
	}

	return actions, nil
}

func organizeOne(
	fs afero.Fs, dir, name string, classifier classify.Classifier, opts Options,
) (Action, error) {
	category := classifier.Classify(filepath.Ext(name))
	dest := filepath.Join(dir, category)
	action := Action{Name: name, Category: category, Dest: dest}

	if _, err := fs.Stat(dest); err != nil {
		if !os.IsNotExist(err) {
			return action, fmt.Errorf("failed to stat %s: %w", dest, err)
		}
		action.Created = true
	}

	if opts.DryRun {
		return action, nil
	}

	if opts.Confirm != nil {
		ok, err := opts.Confirm(name, category)
		if err != nil {
			return action, fmt.Errorf("confirmation failed: %w", err)
		}
		if !ok {
			action.Skipped = true
			action.Created = false
			return action, nil
		}
	}

	// Category folders are created lazily, on first use, so a run
	// never leaves behind empty folders for unused categories.
	if action.Created {
		if err := fs.MkdirAll(dest, dirPerm); err != nil {
			action.Err = fmt.Errorf("failed to create %s: %w", dest, err)
			action.Created = false
			return action, nil
		}
	}

	if err := fs.Rename(filepath.Join(dir, name), filepath.Join(dest, name)); err != nil {
		action.Err = fmt.Errorf("move failed: %w", err)
		return action, nil
	}

	return action, nil
}

func logAction(log *zerolog.Logger, action Action, dryRun bool) {
	event := log.Info()
	switch {
	case action.Err != nil:
		event = log.Warn().Err(action.Err)
	case action.Skipped:
		event = log.Debug()
	}
	event.Str("file", action.Name).
		Str("category", action.Category).
		Str("dest", action.Dest).
		Bool("dry_run", dryRun).
		Bool("created", action.Created).
		Msg("classified")
}
