package category

import "strings"

// Extension returns the classification extension of a file name: everything
// after the last dot, lower-cased and prefixed with a dot. Names without a dot
// have no extension.
func Extension(name string) string {
	i := strings.LastIndex(name, ".")
	if i == -1 {
		return ""
	}
	return "." + strings.ToLower(name[i+1:])
}

// Classify returns the category a file name belongs to.
func (idx *Index) Classify(name string) string {
	return idx.Resolve(Extension(name))
}
