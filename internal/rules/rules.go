// Package rules produces category rule lists from the predefined table, rule
// files and incremental data entry.
package rules

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/taigrr/fileorg/internal/types"
)

// ErrRulesNotFound is returned when a rules file does not exist.
var ErrRulesNotFound = errors.New("rules file not found")

// ParseError reports a rules line that cannot be split into a name and extensions.
type ParseError struct {
	File string
	Line int
	Text string
}

func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d: missing ':' in rule %q", e.File, e.Line, e.Text)
	}
	return fmt.Sprintf("line %d: missing ':' in rule %q", e.Line, e.Text)
}

// Default returns the predefined category table.
func Default() []types.CategoryRule {
	return []types.CategoryRule{
		{Name: "Documents", Extensions: []string{".pdf", ".docx", ".txt"}},
		{Name: "Images", Extensions: []string{".jpg", ".png", ".gif"}},
		{Name: "Videos", Extensions: []string{".mp4", ".avi", ".mkv"}},
		{Name: "Music", Extensions: []string{".mp3", ".flac", ".wav"}},
		{Name: "Other", Extensions: []string{}},
	}
}

// ImportFile reads rules from path. Files ending in .yaml or .yml are read as
// YAML, everything else as the line format understood by ParseText.
func ImportFile(path string) ([]types.CategoryRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRulesNotFound, path)
		}
		return nil, fmt.Errorf("failed to read rules file: %s - %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	}

	parsed, err := ParseText(string(data))
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.File = path
		}
		return nil, err
	}
	return parsed, nil
}
