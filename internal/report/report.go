// Package report prints what a pass does to the console.
package report

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/taigrr/fileorg/internal/types"
)

// Options controls how a Reporter writes.
type Options struct {
	// Progress replaces per-entry lines with a progress bar.
	Progress bool
	// NoColor disables styling even on a terminal.
	NoColor bool
	// DryRun words notices as a plan.
	DryRun bool
}

// Reporter writes per-entry notices and the final summary. It satisfies the
// organizer's Observer interface.
type Reporter struct {
	out      io.Writer
	colorize bool
	progress bool
	dryRun   bool
	bar      *progressbar.ProgressBar
	failures []types.MoveOutcome
}

// New creates a Reporter writing to out.
func New(out io.Writer, opts Options) *Reporter {
	return &Reporter{
		out:      out,
		colorize: !opts.NoColor && IsTerminal(out),
		progress: opts.Progress,
		dryRun:   opts.DryRun,
	}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w any) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (r *Reporter) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(r.out, format, args...); err != nil {
		slog.Warn("Failed to write report line", "error", err)
	}
}

// OtherAdded notes that the catch-all category was added to the rules.
func (r *Reporter) OtherAdded() {
	r.printf("%s\n", r.paint(subtleStyle, "Added 'Other' category for uncategorized files"))
}

// PassStarted implements organizer.Observer.
func (r *Reporter) PassStarted(path string, entries int) {
	verb := "Starting organization"
	if r.dryRun {
		verb = "Planning organization"
	}
	r.printf("\n%s of %d items in %s\n", verb, entries, path)

	if r.progress && entries > 0 {
		r.bar = progressbar.NewOptions(entries,
			progressbar.OptionSetWriter(r.out),
			progressbar.OptionEnableColorCodes(r.colorize),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("Organizing"),
			progressbar.OptionOnCompletion(func() {
				_, _ = fmt.Fprintln(r.out)
			}),
		)
	}
}

// FolderCreated implements organizer.Observer.
func (r *Reporter) FolderCreated(name string) {
	if r.bar != nil {
		return
	}
	r.printf("%s\n", r.paint(subtleStyle, "Created folder: "+name))
}

// EntryDone implements organizer.Observer.
func (r *Reporter) EntryDone(o types.MoveOutcome) {
	if o.Kind == types.OutcomeFailed {
		r.failures = append(r.failures, o)
	}
	if r.bar != nil {
		if err := r.bar.Add(1); err != nil {
			slog.Warn("Failed to update progress bar", "error", err)
		}
		return
	}
	r.printf("%s\n", r.Line(o))
}

// Line formats a single outcome.
func (r *Reporter) Line(o types.MoveOutcome) string {
	switch o.Kind {
	case types.OutcomeMoved:
		if o.Renamed() {
			label := "RENAMED"
			if r.dryRun {
				label = "WOULD RENAME"
			}
			return r.paint(renameStyle, fmt.Sprintf("%s: %s → %s/%s", label, o.Name, o.Category, o.FinalName))
		}
		label := "MOVED"
		if r.dryRun {
			label = "WOULD MOVE"
		}
		return r.paint(successStyle, fmt.Sprintf("%s: %s → %s/", label, o.Name, o.Category))
	case types.OutcomeSkipped:
		reason := "ignored"
		if o.Reason == types.ReasonIsDirectory {
			reason = "directory"
		}
		return r.paint(warningStyle, fmt.Sprintf("SKIPPED: %s (%s)", o.Name, reason))
	case types.OutcomeFailed:
		return r.paint(errorStyle, fmt.Sprintf("ERROR: failed to move %s - %s", o.Name, o.Reason))
	}
	return o.Name
}

// Summary prints the final tally.
func (r *Reporter) Summary(s types.Summary) {
	if r.bar != nil {
		if err := r.bar.Finish(); err != nil {
			slog.Warn("Failed to finish progress bar", "error", err)
		}
		for _, o := range r.failures {
			r.printf("%s\n", r.Line(o))
		}
		r.bar = nil
	}

	title := "Organization Summary"
	if s.DryRun {
		title = "Organization Plan (dry run)"
	}
	r.printf("\n%s\n", r.paint(titleStyle, "=== "+title+" ==="))
	r.printf("%s\n", renderTable(
		[]string{"Outcome", "Count"},
		[][]string{
			{"Moved", strconv.Itoa(s.Moved)},
			{"Renamed", strconv.Itoa(s.Renamed)},
			{"Skipped", strconv.Itoa(s.Skipped)},
			{"Failed", strconv.Itoa(s.Failed)},
		},
		[]columnAlignment{alignLeft, alignRight},
	))
	r.printf("%s %d\n", r.paint(successStyle, "Files successfully organized:"), s.Moved)
	r.printf("%s %d\n", r.paint(warningStyle, "Files skipped:"), s.NotMoved())
}

// Rules prints category rules as a table.
func (r *Reporter) Rules(rules []types.CategoryRule) {
	rows := make([][]string, 0, len(rules))
	for i, rule := range rules {
		exts := make([]string, len(rule.Extensions))
		for j, ext := range rule.Extensions {
			if ext == "" {
				ext = `""`
			}
			exts[j] = ext
		}
		list := strings.Join(exts, ", ")
		if list == "" {
			list = "(catch-all)"
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), rule.Name, list})
	}
	r.printf("%s\n", renderTable([]string{"#", "Category", "Extensions"}, rows, []columnAlignment{alignRight}))
}

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
