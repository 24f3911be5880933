package rules

import (
	"bufio"
	"strings"

	"github.com/taigrr/fileorg/internal/types"
)

// ParseText parses one category per line in the form
//
//	CategoryName: .ext1, .ext2, .ext3
//
// Each line is split on the first ':' and the extension list on ','. Blank
// lines and lines starting with '#' are skipped. A line without ':' fails the
// whole import.
func ParseText(text string) ([]types.CategoryRule, error) {
	var parsed []types.CategoryRule

	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, list, ok := strings.Cut(line, ":")
		if !ok {
			return nil, &ParseError{Line: lineNo, Text: line}
		}

		parts := strings.Split(list, ",")
		exts := make([]string, 0, len(parts))
		for _, part := range parts {
			exts = append(exts, strings.TrimSpace(part))
		}
		parsed = append(parsed, types.CategoryRule{
			Name:       strings.TrimSpace(name),
			Extensions: exts,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return parsed, nil
}

// FormatText renders rules in the line format read by ParseText.
func FormatText(rules []types.CategoryRule) string {
	var b strings.Builder
	for _, rule := range rules {
		b.WriteString(rule.Name)
		b.WriteString(":")
		if len(rule.Extensions) > 0 {
			b.WriteString(" ")
			b.WriteString(strings.Join(rule.Extensions, ", "))
		}
		b.WriteString("\n")
	}
	return b.String()
}
