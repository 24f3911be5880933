// Package main implements the fileorg command.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// globalOptions holds flags shared by every subcommand.
type globalOptions struct {
	configPath string
	rulesFile  string
	logLevel   string
	logFormat  string
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := fang.Execute(
		ctx,
		newRootCommand(),
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}
	organize := &organizeOptions{}

	cmd := &cobra.Command{
		Use:   "fileorg [path]",
		Short: "Sort the files of a directory into category folders",
		Long: `fileorg moves every file directly inside a directory into a
subfolder named after its category. Categories map file extensions
to folder names; the first category listing an extension wins and
anything unmatched lands in "Other". Name collisions are resolved
by appending _copy1, _copy2, ... to the moved file.

Rules come from --rules, --defaults, the config file, or an
interactive menu when stdin is a terminal.

A directory named like a subcommand (rules, config, serve) must be
given with a path prefix, e.g. ./rules.`,
		Example: `fileorg ~/Downloads
fileorg --defaults --dry-run ~/Downloads
fileorg --rules rules.yaml --ignore '*.part' .
fileorg --defaults ./rules`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrganize(cmd, opts, organize, args)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Config file path (default ~/.config/fileorg/config.toml)")
	pf.StringVar(&opts.rulesFile, "rules", "", "Rules file (text or YAML)")
	pf.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.StringVar(&opts.logFormat, "log-format", "", "Log format (console, json)")

	f := cmd.Flags()
	f.BoolVar(&organize.defaults, "defaults", false, "Use the predefined rules without prompting")
	f.BoolVar(&organize.dryRun, "dry-run", false, "Show the planned moves without changing anything")
	f.StringArrayVar(&organize.ignore, "ignore", nil, "Glob of entry names to leave in place (repeatable)")
	f.BoolVar(&organize.progress, "progress", false, "Show a progress bar instead of one line per file")
	f.BoolVar(&organize.noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(
		newRulesCommand(opts),
		newConfigCommand(opts),
		newServeCommand(opts),
	)
	return cmd
}
