package rules

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/taigrr/fileorg/internal/types"
)

// document is the YAML layout of a rules file.
type document struct {
	Categories []types.CategoryRule `yaml:"categories"`
}

// ParseYAML reads rules from a YAML document of the form
//
//	categories:
//	  - name: Documents
//	    extensions: [.pdf, .txt]
func ParseYAML(data []byte) ([]types.CategoryRule, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse rules: %w", err)
	}
	for i := range doc.Categories {
		if doc.Categories[i].Extensions == nil {
			doc.Categories[i].Extensions = []string{}
		}
	}
	return doc.Categories, nil
}

// MarshalYAML renders rules as a YAML document readable by ParseYAML.
func MarshalYAML(rules []types.CategoryRule) ([]byte, error) {
	out, err := yaml.Marshal(document{Categories: rules})
	if err != nil {
		return nil, fmt.Errorf("failed to stringify rules: %w", err)
	}
	return out, nil
}
