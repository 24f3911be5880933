package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/taigrr/fileorg/internal/types"
)

type (
	// ClassifyInput contains file names to classify.
	ClassifyInput struct {
		Names      []string             `json:"names" jsonschema:"File names to classify"`
		Categories []types.CategoryRule `json:"categories,omitempty" jsonschema:"Rules to use instead of the server rules (optional)"`
	}

	// Classification is the category chosen for one name.
	Classification struct {
		Name      string `json:"name"`
		Extension string `json:"extension"`
		Category  string `json:"category"`
	}

	// ClassifyOutput contains one classification per input name.
	ClassifyOutput struct {
		Results []Classification `json:"results"`
	}

	// RulesInput takes no parameters.
	RulesInput struct{}

	// RulesOutput contains category rules in match order.
	RulesOutput struct {
		Categories []types.CategoryRule `json:"categories"`
	}

	// PlanInput contains parameters for a dry run.
	PlanInput struct {
		Path       string               `json:"path,omitempty" jsonschema:"Directory relative to the server root (default: root)"`
		Ignore     []string             `json:"ignore,omitempty" jsonschema:"Extra globs of entry names to leave in place"`
		Categories []types.CategoryRule `json:"categories,omitempty" jsonschema:"Rules to use instead of the server rules (optional)"`
	}

	// OrganizeInput contains parameters for organizing a directory.
	OrganizeInput struct {
		Path       string               `json:"path,omitempty" jsonschema:"Directory relative to the server root (default: root)"`
		Ignore     []string             `json:"ignore,omitempty" jsonschema:"Extra globs of entry names to leave in place"`
		Categories []types.CategoryRule `json:"categories,omitempty" jsonschema:"Rules to use instead of the server rules (optional)"`
		Confirm    string               `json:"confirm" jsonschema:"Must be set to 'yes' to confirm moving files"`
	}

	// EntryResult describes what happened to one directory entry.
	EntryResult struct {
		Name      string `json:"name"`
		Outcome   string `json:"outcome"`
		Category  string `json:"category,omitempty"`
		FinalName string `json:"finalName,omitempty"`
		Reason    string `json:"reason,omitempty"`
	}

	// SummaryOutput contains the result of a pass.
	SummaryOutput struct {
		RunID   string        `json:"runId"`
		Path    string        `json:"path"`
		DryRun  bool          `json:"dryRun"`
		Moved   int           `json:"moved"`
		Renamed int           `json:"renamed"`
		Skipped int           `json:"skipped"`
		Failed  int           `json:"failed"`
		Entries []EntryResult `json:"entries"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "classify",
		Description: "Return the category folder each file name would be moved to. The first category listing the name's extension wins; anything else goes to Other.",
	}, handleClassify)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "default_rules",
		Description: "List the category rules the server uses, in match order.",
	}, handleDefaultRules)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "plan",
		Description: "Dry run: list where every file in a directory would be moved, including _copyN renames, without changing anything.",
	}, handlePlan)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "organize",
		Description: "Move every file in a directory into category folders. Subdirectories are left in place. Requires confirm='yes'.",
	}, handleOrganize)
}
