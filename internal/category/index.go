// Package category maps file extensions to named categories.
package category

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/taigrr/fileorg/internal/types"
)

// Other is the catch-all category every index carries.
const Other = "Other"

// ErrInvalidCategory is returned for category names that cannot be used as a
// folder directly under the organized directory.
var ErrInvalidCategory = errors.New("invalid category name")

// Index is an ordered, immutable set of category rules.
type Index struct {
	rules      []types.CategoryRule
	sets       []map[string]struct{}
	addedOther bool
}

// NewIndex builds an index from rules in definition order. Extensions are
// normalized, a repeated name replaces the earlier extensions but keeps the
// earlier position, and Other is appended when missing.
func NewIndex(rules []types.CategoryRule) (*Index, error) {
	var ordered []types.CategoryRule
	position := make(map[string]int)

	for _, rule := range rules {
		name := strings.TrimSpace(rule.Name)
		if err := ValidateName(name); err != nil {
			return nil, err
		}
		rule = types.CategoryRule{Name: name, Extensions: NormalizeExtensions(rule.Extensions)}
		if i, ok := position[name]; ok {
			ordered[i] = rule
			continue
		}
		position[name] = len(ordered)
		ordered = append(ordered, rule)
	}

	_, hasOther := position[Other]
	if !hasOther {
		ordered = append(ordered, types.CategoryRule{Name: Other, Extensions: []string{}})
	}

	idx := &Index{
		rules:      ordered,
		sets:       make([]map[string]struct{}, len(ordered)),
		addedOther: !hasOther,
	}
	for i, rule := range ordered {
		set := make(map[string]struct{}, len(rule.Extensions))
		for _, ext := range rule.Extensions {
			set[ext] = struct{}{}
		}
		idx.sets[i] = set
	}
	return idx, nil
}

// AddedOther reports whether the input rules lacked Other and it was appended.
func (idx *Index) AddedOther() bool {
	return idx.addedOther
}

// ValidateName checks that name is usable as a single directory name.
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidCategory)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidCategory, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidCategory, name)
	}
	return nil
}

// NormalizeExtension lower-cases ext and prefixes a missing dot. The empty
// string stays empty and matches files without an extension.
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}

// NormalizeExtensions normalizes every extension and drops repeats.
func NormalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = NormalizeExtension(ext)
		if slices.Contains(out, ext) {
			continue
		}
		out = append(out, ext)
	}
	return out
}

// Resolve returns the first category, in definition order, that lists ext.
func (idx *Index) Resolve(ext string) string {
	for i, set := range idx.sets {
		if _, ok := set[ext]; ok {
			return idx.rules[i].Name
		}
	}
	return Other
}

// Names returns the category names in definition order, Other included.
func (idx *Index) Names() []string {
	names := make([]string, len(idx.rules))
	for i, rule := range idx.rules {
		names[i] = rule.Name
	}
	return names
}

// Rules returns a copy of the finalized rules.
func (idx *Index) Rules() []types.CategoryRule {
	out := make([]types.CategoryRule, len(idx.rules))
	for i, rule := range idx.rules {
		out[i] = types.CategoryRule{Name: rule.Name, Extensions: slices.Clone(rule.Extensions)}
	}
	return out
}

// Len returns the number of categories, Other included.
func (idx *Index) Len() int {
	return len(idx.rules)
}
