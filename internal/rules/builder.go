package rules

import (
	"fmt"
	"strings"

	"github.com/taigrr/fileorg/internal/category"
	"github.com/taigrr/fileorg/internal/types"
)

// Builder collects rules one category and one extension at a time.
type Builder struct {
	rules   []types.CategoryRule
	current int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{current: -1}
}

// AddCategory starts a new category. Later extensions are added to it.
func (b *Builder) AddCategory(name string) error {
	name = strings.TrimSpace(name)
	if err := category.ValidateName(name); err != nil {
		return err
	}
	b.rules = append(b.rules, types.CategoryRule{Name: name, Extensions: []string{}})
	b.current = len(b.rules) - 1
	return nil
}

// AddExtension adds ext to the current category and returns the stored form.
func (b *Builder) AddExtension(ext string) (string, error) {
	if b.current < 0 {
		return "", fmt.Errorf("no category to add %q to", ext)
	}
	ext = strings.TrimSpace(ext)
	if ext == "" {
		return "", fmt.Errorf("extension cannot be empty")
	}
	normalized := category.NormalizeExtension(ext)
	b.rules[b.current].Extensions = append(b.rules[b.current].Extensions, normalized)
	return normalized, nil
}

// Current returns the name of the category being filled, if any.
func (b *Builder) Current() string {
	if b.current < 0 {
		return ""
	}
	return b.rules[b.current].Name
}

// Rules returns the collected rules in entry order.
func (b *Builder) Rules() []types.CategoryRule {
	out := make([]types.CategoryRule, len(b.rules))
	for i, rule := range b.rules {
		exts := make([]string, len(rule.Extensions))
		copy(exts, rule.Extensions)
		out[i] = types.CategoryRule{Name: rule.Name, Extensions: exts}
	}
	return out
}
