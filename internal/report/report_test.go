package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taigrr/fileorg/internal/types"
)

func TestReporter_Lines(t *testing.T) {
	r := New(&bytes.Buffer{}, Options{})

	tests := []struct {
		name    string
		outcome types.MoveOutcome
		want    string
	}{
		{
			name:    "moved",
			outcome: types.MoveOutcome{Kind: types.OutcomeMoved, Name: "a.txt", Category: "Documents", FinalName: "a.txt"},
			want:    "MOVED: a.txt → Documents/",
		},
		{
			name:    "renamed",
			outcome: types.MoveOutcome{Kind: types.OutcomeMoved, Name: "a.txt", Category: "Documents", FinalName: "a_copy1.txt"},
			want:    "RENAMED: a.txt → Documents/a_copy1.txt",
		},
		{
			name:    "directory",
			outcome: types.MoveOutcome{Kind: types.OutcomeSkipped, Name: "sub", Reason: types.ReasonIsDirectory},
			want:    "SKIPPED: sub (directory)",
		},
		{
			name:    "ignored",
			outcome: types.MoveOutcome{Kind: types.OutcomeSkipped, Name: ".DS_Store", Reason: types.ReasonIgnored},
			want:    "SKIPPED: .DS_Store (ignored)",
		},
		{
			name:    "failed",
			outcome: types.MoveOutcome{Kind: types.OutcomeFailed, Name: "b.txt", Reason: "permission denied", Err: errors.New("permission denied")},
			want:    "ERROR: failed to move b.txt - permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Line(tt.outcome))
		})
	}
}

func TestReporter_DryRunWording(t *testing.T) {
	r := New(&bytes.Buffer{}, Options{DryRun: true})

	line := r.Line(types.MoveOutcome{Kind: types.OutcomeMoved, Name: "a.txt", Category: "Documents", FinalName: "a.txt"})
	assert.Equal(t, "WOULD MOVE: a.txt → Documents/", line)
}

func TestReporter_PassAndSummary(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{})

	r.PassStarted("/tmp/dir", 2)
	r.FolderCreated("Documents")
	moved := types.MoveOutcome{Kind: types.OutcomeMoved, Name: "a.txt", Category: "Documents", FinalName: "a.txt"}
	skipped := types.MoveOutcome{Kind: types.OutcomeSkipped, Name: "sub", Reason: types.ReasonIsDirectory}
	r.EntryDone(moved)
	r.EntryDone(skipped)

	var s types.Summary
	s.Add(moved)
	s.Add(skipped)
	r.Summary(s)

	out := buf.String()
	assert.Contains(t, out, "Starting organization of 2 items in /tmp/dir")
	assert.Contains(t, out, "Created folder: Documents")
	assert.Contains(t, out, "MOVED: a.txt → Documents/")
	assert.Contains(t, out, "SKIPPED: sub (directory)")
	assert.Contains(t, out, "=== Organization Summary ===")
	assert.Contains(t, out, "Files successfully organized: 1")
	assert.Contains(t, out, "Files skipped: 1")
	assert.NotContains(t, out, "\x1b[", "no ANSI codes when not writing to a terminal")
}

func TestReporter_ProgressModePrintsFailuresAtEnd(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{Progress: true})

	r.PassStarted("/tmp/dir", 2)
	r.FolderCreated("Documents")
	failed := types.MoveOutcome{Kind: types.OutcomeFailed, Name: "b.txt", Reason: "boom"}
	moved := types.MoveOutcome{Kind: types.OutcomeMoved, Name: "a.txt", Category: "Documents", FinalName: "a.txt"}
	r.EntryDone(moved)
	r.EntryDone(failed)

	var s types.Summary
	s.Add(moved)
	s.Add(failed)
	r.Summary(s)

	out := buf.String()
	assert.NotContains(t, out, "Created folder")
	assert.NotContains(t, out, "MOVED: a.txt")
	assert.Contains(t, out, "ERROR: failed to move b.txt - boom")
	assert.Contains(t, out, "Files skipped: 1")
}

func TestReporter_Rules(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, Options{}).Rules([]types.CategoryRule{
		{Name: "Documents", Extensions: []string{".pdf", ".txt"}},
		{Name: "Bare", Extensions: []string{""}},
		{Name: "Other", Extensions: []string{}},
	})

	out := buf.String()
	assert.Contains(t, out, "Documents")
	assert.Contains(t, out, ".pdf, .txt")
	assert.Contains(t, out, `""`)
	assert.Contains(t, out, "(catch-all)")
	assert.Less(t, strings.Index(out, "Documents"), strings.Index(out, "Other"))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
	assert.False(t, IsTerminal(nil))
}
