package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"github.com/taigrr/fileorg/internal/config"
	"github.com/taigrr/fileorg/internal/logging"
)

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("FILEORG_LOG_LEVEL", "")
	t.Setenv("FILEORG_LOG_FORMAT", "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if resolved != filepath.Join(tempHome, ".config", "fileorg", "config.toml") {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if cfg.LogLevel != "warn" || cfg.LogFormat != "console" {
		t.Fatalf("unexpected logging defaults: %q %q", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.DryRun || cfg.Progress {
		t.Fatal("expected dry_run and progress disabled by default")
	}
	if len(cfg.Categories) != 0 {
		t.Fatalf("expected no categories, got %d", len(cfg.Categories))
	}
}

func TestLoadSampleConfig(t *testing.T) {
	t.Setenv("FILEORG_LOG_LEVEL", "")
	t.Setenv("FILEORG_LOG_FORMAT", "")
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	if err := config.CreateSample(path); err == nil {
		t.Fatal("expected CreateSample to refuse overwriting")
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected sample config at %q, got %q (exists=%v)", path, resolved, exists)
	}
	if len(cfg.Categories) != 5 {
		t.Fatalf("expected 5 categories, got %d", len(cfg.Categories))
	}
	if cfg.Categories[0].Name != "Documents" || cfg.Categories[0].Extensions[0] != ".pdf" {
		t.Fatalf("unexpected first category: %+v", cfg.Categories[0])
	}
	if cfg.Categories[4].Name != "Other" || len(cfg.Categories[4].Extensions) != 0 {
		t.Fatalf("unexpected last category: %+v", cfg.Categories[4])
	}
	if len(cfg.Ignore) != 3 || cfg.Ignore[2] != "*.part" {
		t.Fatalf("unexpected ignore list: %v", cfg.Ignore)
	}
}

func TestLoadEnvFallback(t *testing.T) {
	t.Setenv("FILEORG_LOG_LEVEL", "DEBUG")
	t.Setenv("FILEORG_LOG_FORMAT", "json")

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected log level from env, got %q", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Fatalf("expected log format from env, got %q", cfg.LogFormat)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("FILEORG_LOG_LEVEL", "")
	t.Setenv("FILEORG_LOG_FORMAT", "")

	tests := []struct {
		name    string
		cfg     map[string]any
		wantErr string
	}{
		{
			name:    "log level",
			cfg:     map[string]any{"log_level": "loud"},
			wantErr: "log_level",
		},
		{
			name:    "log format",
			cfg:     map[string]any{"log_format": "xml"},
			wantErr: "log_format",
		},
		{
			name: "rules file and categories",
			cfg: map[string]any{
				"rules_file": "rules.txt",
				"categories": []map[string]any{{"name": "Docs", "extensions": []string{".pdf"}}},
			},
			wantErr: "mutually exclusive",
		},
		{
			name: "unnamed category",
			cfg: map[string]any{
				"categories": []map[string]any{{"name": " ", "extensions": []string{".pdf"}}},
			},
			wantErr: "categories[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := toml.Marshal(tt.cfg)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, data, 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}

			_, _, _, err = config.Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Load error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadExpandsRulesFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("FILEORG_LOG_LEVEL", "")
	t.Setenv("FILEORG_LOG_FORMAT", "")

	path := filepath.Join(t.TempDir(), "config.toml")
	content := "rules_file = \"~/rules.txt\"\nignore = [\"  \", \"*.tmp\"]\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.RulesFile != filepath.Join(tempHome, "rules.txt") {
		t.Fatalf("unexpected rules file: %q", cfg.RulesFile)
	}
	if len(cfg.Ignore) != 1 || cfg.Ignore[0] != "*.tmp" {
		t.Fatalf("unexpected ignore list: %v", cfg.Ignore)
	}
}

func TestLoadAcceptsEveryLoggerLevel(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("FILEORG_LOG_FORMAT", "")

	for _, level := range []string{"debug", "info", "warn", "warning", "error"} {
		t.Run(level, func(t *testing.T) {
			t.Setenv("FILEORG_LOG_LEVEL", level)

			cfg, _, _, err := config.Load("")
			if err != nil {
				t.Fatalf("Load with level %q returned error: %v", level, err)
			}
			if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
				t.Fatalf("ParseLevel(%q) error = %v", cfg.LogLevel, err)
			}
		})
	}
}
