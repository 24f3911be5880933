package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taigrr/fileorg/internal/category"
	"github.com/taigrr/fileorg/internal/report"
	"github.com/taigrr/fileorg/internal/rules"
)

func newRulesCommand(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect category rules",
	}

	var format string
	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective rules as a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			index, err := loadIndex(cmd, opts)
			if err != nil {
				return err
			}
			report.New(cmd.OutOrStdout(), report.Options{}).Rules(index.Rules())
			return nil
		},
	}

	export := &cobra.Command{
		Use:   "export",
		Short: "Print the effective rules as YAML or text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			index, err := loadIndex(cmd, opts)
			if err != nil {
				return err
			}
			switch format {
			case "yaml":
				data, err := rules.MarshalYAML(index.Rules())
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			case "text":
				_, err := fmt.Fprint(cmd.OutOrStdout(), rules.FormatText(index.Rules()))
				return err
			default:
				return fmt.Errorf("unsupported format %q (want yaml or text)", format)
			}
		},
	}
	export.Flags().StringVar(&format, "format", "yaml", "Output format (yaml, text)")

	classify := &cobra.Command{
		Use:     "classify NAME...",
		Short:   "Print the category each file name would be moved to",
		Example: `fileorg rules classify report.PDF archive.tar.gz README`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := loadIndex(cmd, opts)
			if err != nil {
				return err
			}
			for _, name := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, index.Classify(name))
			}
			return nil
		},
	}

	cmd.AddCommand(show, export, classify)
	return cmd
}

// loadIndex builds the index from --rules or the config, falling back to the
// predefined table.
func loadIndex(cmd *cobra.Command, opts *globalOptions) (*category.Index, error) {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return nil, err
	}
	ruleList, err := effectiveRules(cfg)
	if err != nil {
		return nil, err
	}
	return category.NewIndex(ruleList)
}
