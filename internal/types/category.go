// Package types defines the data structures shared across the organizer.
package types

type (
	// CategoryRule maps a category name to the file extensions it collects.
	// An empty Extensions list marks a catch-all category.
	CategoryRule struct {
		Name       string   `json:"name" yaml:"name" toml:"name"`
		Extensions []string `json:"extensions" yaml:"extensions" toml:"extensions"`
	}

	// DirectoryEntry is a single child of the directory being organized.
	DirectoryEntry struct {
		Name  string `json:"name"`
		IsDir bool   `json:"isDir"`
	}
)
