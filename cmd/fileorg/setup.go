package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/taigrr/fileorg/internal/config"
	"github.com/taigrr/fileorg/internal/logging"
	"github.com/taigrr/fileorg/internal/report"
	"github.com/taigrr/fileorg/internal/rules"
	"github.com/taigrr/fileorg/internal/types"
)

// loadConfig reads the config file and applies the global flag overrides.
func loadConfig(cmd *cobra.Command, opts *globalOptions) (*config.Config, error) {
	cfg, path, exists, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.logFormat != "" {
		cfg.LogFormat = opts.logFormat
	}
	if opts.rulesFile != "" {
		expanded, err := config.ExpandPath(opts.rulesFile)
		if err != nil {
			return nil, fmt.Errorf("rules: %w", err)
		}
		cfg.RulesFile = expanded
		cfg.Categories = nil
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	if exists {
		logger.Debug("loaded config", "path", path)
	}
	return cfg, nil
}

// configuredRules returns the rules named by the config or flags. ok is false
// when neither a rules file nor inline categories were given.
func configuredRules(cfg *config.Config) ([]types.CategoryRule, bool, error) {
	switch {
	case cfg.RulesFile != "":
		loaded, err := rules.ImportFile(cfg.RulesFile)
		if err != nil {
			return nil, true, err
		}
		return loaded, true, nil
	case len(cfg.Categories) > 0:
		return cfg.Categories, true, nil
	}
	return nil, false, nil
}

// effectiveRules resolves rules without ever prompting.
func effectiveRules(cfg *config.Config) ([]types.CategoryRule, error) {
	loaded, ok, err := configuredRules(cfg)
	if err != nil {
		return nil, err
	}
	if !ok {
		return rules.Default(), nil
	}
	return loaded, nil
}

func stdinIsTerminal() bool {
	return report.IsTerminal(os.Stdin)
}
