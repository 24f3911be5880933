package main

import "runtime/debug"

// buildVersion is set at link time with -ldflags "-X main.buildVersion=v1.2.3".
var buildVersion string

var version = resolveVersion(buildVersion)

// resolveVersion prefers the link-time version, then the module version, then
// the VCS revision recorded by the go tool.
func resolveVersion(linked string) string {
	if linked != "" {
		return linked
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	var revision string
	dirty := false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if revision == "" {
		return "dev"
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	if dirty {
		revision += "-dirty"
	}
	return revision
}
