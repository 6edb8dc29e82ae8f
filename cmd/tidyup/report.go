package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"

	"github.com/tidyup/tidyup/internal/engine"
)

type reporter struct {
	out      io.Writer
	category func(a ...any) string
	fail     func(a ...any) string
	dim      func(a ...any) string
	dryRun   bool
}

func newReporter(out io.Writer, dryRun, colorize bool) *reporter {
	rep := &reporter{
		out:      out,
		dryRun:   dryRun,
		category: fmt.Sprint,
		fail:     fmt.Sprint,
		dim:      fmt.Sprint,
	}
	if colorize {
		rep.category = color.New(color.FgCyan).SprintFunc()
		rep.fail = color.New(color.FgRed).SprintFunc()
		rep.dim = color.New(color.FgYellow).SprintFunc()
	}
	return rep
}

// useColor enables colored report lines only on a real terminal.
func useColor(noColor bool) bool {
	if noColor {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// Line prints one classification decision, including the resolved
// destination and whether the category folder is new.
func (r *reporter) Line(action engine.Action) {
	switch {
	case action.Err != nil:
		_, _ = fmt.Fprintf(r.out, "%s -> %s (%s)\n",
			action.Name, action.Dest, r.fail(action.Err))
	case action.Skipped:
		_, _ = fmt.Fprintf(r.out, "%s -> %s %s\n",
			action.Name, action.Dest, r.dim("(skipped)"))
	case r.dryRun && action.Created:
		_, _ = fmt.Fprintf(r.out, "[DRY RUN] %s would move into %s (would create %s)\n",
			action.Name, action.Dest, r.category(action.Category))
	case r.dryRun:
		_, _ = fmt.Fprintf(r.out, "[DRY RUN] %s would move into %s\n",
			action.Name, action.Dest)
	case action.Created:
		_, _ = fmt.Fprintf(r.out, "%s moved into %s (created %s)\n",
			action.Name, action.Dest, r.category(action.Category))
	default:
		_, _ = fmt.Fprintf(r.out, "%s moved into %s\n", action.Name, action.Dest)
	}
}

// Summary prints a per-category file count table in first-seen order.
func (r *reporter) Summary(actions []engine.Action) {
	if len(actions) == 0 {
		_, _ = fmt.Fprintln(r.out, "Nothing to organize.")
		return
	}

	counts := make(map[string]int, len(actions))
	order := make([]string, 0, len(actions))
	for _, action := range actions {
		if action.Err != nil || action.Skipped {
			continue
		}
		if _, seen := counts[action.Category]; !seen {
			order = append(order, action.Category)
		}
		counts[action.Category]++
	}
	if len(order) == 0 {
		return
	}

	rows := make([]table.Row, 0, len(order))
	for _, category := range order {
		rows = append(rows, table.Row{category, counts[category]})
	}
	_, _ = fmt.Fprintln(r.out, renderTable(table.Row{"Category", "Files"}, rows, 2))
}
