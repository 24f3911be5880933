package pathfilter

import "testing"

func TestPathFilter_NoPatternsIgnoresNothing(t *testing.T) {
	filter := New(nil)

	tests := []string{
		".DS_Store",
		"Thumbs.db",
		".hidden",
		"notes.txt",
	}

	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			if filter.IsIgnored(name) {
				t.Errorf("IsIgnored(%q) = true, want false", name)
			}
		})
	}
	if !filter.Empty() {
		t.Error("Empty() = false, want true")
	}
}

func TestPathFilter_ExactNames(t *testing.T) {
	filter := New([]string{".DS_Store", "Thumbs.db"})

	tests := []struct {
		name string
		want bool
	}{
		{".DS_Store", true},
		{"Thumbs.db", true},
		{"thumbs.db", false},
		{"DS_Store", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := filter.IsIgnored(tt.name); got != tt.want {
				t.Errorf("IsIgnored(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestPathFilter_Wildcards(t *testing.T) {
	filter := New([]string{"*.part", "~$*", "tmp??.log"})

	tests := []struct {
		name string
		want bool
	}{
		{"movie.mkv.part", true},
		{".part", true},
		{"~$report.docx", true},
		{"tmp01.log", true},
		{"tmp1.log", false},
		{"tmp001.log", false},
		{"movie.mkv", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := filter.IsIgnored(tt.name); got != tt.want {
				t.Errorf("IsIgnored(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestPathFilter_SpecialCharactersAreLiteral(t *testing.T) {
	filter := New([]string{"report(1).pdf", "a+b.txt"})

	if !filter.IsIgnored("report(1).pdf") {
		t.Error("IsIgnored(report(1).pdf) = false, want true")
	}
	if filter.IsIgnored("report1.pdf") {
		t.Error("IsIgnored(report1.pdf) = true, want false")
	}
	if !filter.IsIgnored("a+b.txt") {
		t.Error("IsIgnored(a+b.txt) = false, want true")
	}
	if filter.IsIgnored("aab.txt") {
		t.Error("IsIgnored(aab.txt) = true, want false")
	}
}

func TestPathFilter_BlankPatternsDropped(t *testing.T) {
	filter := New([]string{"", "  ", "*.tmp"})

	patterns := filter.Patterns()
	if len(patterns) != 1 || patterns[0] != "*.tmp" {
		t.Errorf("Patterns() = %v, want [*.tmp]", patterns)
	}
}

func TestPathFilter_NilReceiver(t *testing.T) {
	var filter *PathFilter

	if filter.IsIgnored("anything") {
		t.Error("nil filter should ignore nothing")
	}
	if !filter.Empty() {
		t.Error("nil filter should be empty")
	}
}
