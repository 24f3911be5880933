package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/taigrr/fileorg/internal/category"
	"github.com/taigrr/fileorg/internal/organizer"
	"github.com/taigrr/fileorg/internal/pathfilter"
	"github.com/taigrr/fileorg/internal/types"
)

func handleClassify(ctx context.Context, req *mcp.CallToolRequest, input ClassifyInput) (*mcp.CallToolResult, ClassifyOutput, error) {
	if len(input.Names) == 0 {
		return &mcp.CallToolResult{IsError: true}, ClassifyOutput{}, fmt.Errorf("names cannot be empty")
	}

	index, err := indexFor(input.Categories)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ClassifyOutput{}, err
	}

	results := make([]Classification, 0, len(input.Names))
	for _, name := range input.Names {
		name = strings.TrimSpace(name)
		results = append(results, Classification{
			Name:      name,
			Extension: category.Extension(name),
			Category:  index.Classify(name),
		})
	}
	return nil, ClassifyOutput{Results: results}, nil
}

func handleDefaultRules(ctx context.Context, req *mcp.CallToolRequest, input RulesInput) (*mcp.CallToolResult, RulesOutput, error) {
	return nil, RulesOutput{Categories: ruleIndex.Rules()}, nil
}

func handlePlan(ctx context.Context, req *mcp.CallToolRequest, input PlanInput) (*mcp.CallToolResult, SummaryOutput, error) {
	out, err := runPass(ctx, input.Path, input.Ignore, input.Categories, true)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, out, err
	}
	return nil, out, nil
}

func handleOrganize(ctx context.Context, req *mcp.CallToolRequest, input OrganizeInput) (*mcp.CallToolResult, SummaryOutput, error) {
	if input.Confirm != "yes" {
		return &mcp.CallToolResult{IsError: true}, SummaryOutput{},
			fmt.Errorf("organize not confirmed: set confirm='yes' to proceed")
	}

	out, err := runPass(ctx, input.Path, input.Ignore, input.Categories, false)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, out, err
	}
	return nil, out, nil
}

// indexFor returns the server index, or a new one when rules are supplied.
func indexFor(ruleList []types.CategoryRule) (*category.Index, error) {
	if len(ruleList) == 0 {
		return ruleIndex, nil
	}
	return category.NewIndex(ruleList)
}

func runPass(ctx context.Context, path string, ignore []string, ruleList []types.CategoryRule, dryRun bool) (SummaryOutput, error) {
	target, err := rootFS.ResolveDir(path)
	if err != nil {
		return SummaryOutput{}, err
	}

	index, err := indexFor(ruleList)
	if err != nil {
		return SummaryOutput{}, err
	}

	patterns := append(append([]string{}, ignoreGlobs...), ignore...)
	o := organizer.New(index,
		organizer.WithLogger(slog.Default()),
		organizer.WithFilter(pathfilter.New(patterns)),
		organizer.WithDryRun(dryRun),
	)

	summary, err := o.Run(ctx, target)
	return summaryOutput(summary), err
}

func summaryOutput(s types.Summary) SummaryOutput {
	out := SummaryOutput{
		RunID:   s.RunID,
		Path:    s.Path,
		DryRun:  s.DryRun,
		Moved:   s.Moved,
		Renamed: s.Renamed,
		Skipped: s.Skipped,
		Failed:  s.Failed,
		Entries: make([]EntryResult, 0, len(s.Outcomes)),
	}
	for _, o := range s.Outcomes {
		out.Entries = append(out.Entries, EntryResult{
			Name:      o.Name,
			Outcome:   string(o.Kind),
			Category:  o.Category,
			FinalName: o.FinalName,
			Reason:    o.Reason,
		})
	}
	return out
}
