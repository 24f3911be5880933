package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/taigrr/fileorg/internal/category"
	"github.com/taigrr/fileorg/internal/organizer"
	"github.com/taigrr/fileorg/internal/pathfilter"
	"github.com/taigrr/fileorg/internal/prompt"
	"github.com/taigrr/fileorg/internal/report"
	"github.com/taigrr/fileorg/internal/rules"
	"github.com/taigrr/fileorg/internal/types"
)

type organizeOptions struct {
	defaults bool
	dryRun   bool
	ignore   []string
	progress bool
	noColor  bool
}

func runOrganize(cmd *cobra.Command, opts *globalOptions, org *organizeOptions, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	dryRun := cfg.DryRun
	if flags.Changed("dry-run") {
		dryRun = org.dryRun
	}
	progress := cfg.Progress
	if flags.Changed("progress") {
		progress = org.progress
	}
	ignore := append(append([]string{}, cfg.Ignore...), org.ignore...)

	interactive := stdinIsTerminal()
	p := prompt.New(cmd.InOrStdin(), out)

	fmt.Fprintln(out, "Welcome to your File Organizer!")

	var ruleList []types.CategoryRule
	switch {
	case org.defaults:
		ruleList = rules.Default()
	default:
		loaded, ok, err := configuredRules(cfg)
		if err != nil {
			return err
		}
		switch {
		case ok:
			ruleList = loaded
		case interactive:
			ruleList, err = p.ChooseRules(ctx)
			if err != nil {
				return err
			}
		default:
			slog.Debug("stdin is not a terminal, using predefined rules")
			ruleList = rules.Default()
		}
	}

	index, err := category.NewIndex(ruleList)
	if err != nil {
		return err
	}

	path, err := targetPath(cmd, p, args, interactive)
	if err != nil {
		return err
	}

	reporter := report.New(out, report.Options{
		Progress: progress,
		NoColor:  org.noColor,
		DryRun:   dryRun,
	})

	o := organizer.New(index,
		organizer.WithLogger(slog.Default()),
		organizer.WithFilter(pathfilter.New(ignore)),
		organizer.WithObserver(reporter),
		organizer.WithDryRun(dryRun),
	)

	summary, err := o.Run(ctx, path)
	if err != nil {
		if errors.Is(err, organizer.ErrPathNotFound) {
			fmt.Fprintln(out, "Error: Path doesn't exist")
		}
		if len(summary.Outcomes) > 0 {
			reporter.Summary(summary)
		}
		return err
	}

	reporter.Summary(summary)
	if dryRun {
		fmt.Fprintln(out, "Dry run completed, nothing was moved.")
	} else {
		fmt.Fprintln(out, "File organization completed!")
	}
	return nil
}

// targetPath picks the directory from the argument, a prompt, or the working
// directory, in that order.
func targetPath(cmd *cobra.Command, p *prompt.Prompter, args []string, interactive bool) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if interactive {
		return p.AskPath(cmd.Context())
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return wd, nil
}
