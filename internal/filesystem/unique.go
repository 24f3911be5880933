package filesystem

import (
	"path/filepath"
	"strconv"
	"strings"
)

// splitExt splits name at its last dot. Leading dots belong to the stem, so
// ".env" has no extension and ".bashrc.bak" splits into ".bashrc" and ".bak".
func splitExt(name string) (string, string) {
	trimmed := strings.TrimLeft(name, ".")
	ext := filepath.Ext(trimmed)
	return name[:len(name)-len(ext)], ext
}

// UniqueName returns name if dir/name is free according to exists. Otherwise
// it tries stem_copy1.ext, stem_copy2.ext, ... in order and returns the first
// free candidate.
func UniqueName(dir, name string, exists func(string) bool) string {
	if !exists(filepath.Join(dir, name)) {
		return name
	}

	stem, ext := splitExt(name)
	for counter := 1; ; counter++ {
		candidate := stem + "_copy" + strconv.Itoa(counter) + ext
		if !exists(filepath.Join(dir, candidate)) {
			return candidate
		}
	}
}
