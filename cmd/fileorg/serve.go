package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/taigrr/fileorg/internal/category"
	"github.com/taigrr/fileorg/internal/filesystem"
)

var (
	rootFS      *filesystem.Service
	ruleIndex   *category.Index
	ignoreGlobs []string
)

func newServeCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve [root]",
		Short: "Run an MCP server exposing the organizer on stdio",
		Long: `serve starts a Model Context Protocol server on stdin/stdout. Tools
may only organize directories inside root (default: the current
directory). Rules and ignore patterns come from the config file or
--rules, as for the organize command.`,
		Example: `fileorg serve ~/Downloads`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd, opts, args)
		},
	}
}

func runServer(cmd *cobra.Command, opts *globalOptions, args []string) error {
	var root string
	if len(args) > 0 {
		root = args[0]
	} else {
		var err error
		root, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	ruleList, err := effectiveRules(cfg)
	if err != nil {
		return err
	}

	// Initialize services
	ruleIndex, err = category.NewIndex(ruleList)
	if err != nil {
		return err
	}
	rootFS = filesystem.New(root)
	if err := rootFS.CheckRoot(); err != nil {
		return err
	}
	ignoreGlobs = cfg.Ignore

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "fileorg",
		Version: version,
	}, nil)

	registerTools(server)

	slog.Info("mcp server starting", "root", rootFS.Root(), "categories", ruleIndex.Len())
	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}

	return nil
}
