// Package prompt runs the interactive setup that produces category rules.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/taigrr/fileorg/internal/rules"
	"github.com/taigrr/fileorg/internal/types"
)

// Prompter asks questions on out and reads answers from in.
type Prompter struct {
	in  *LineReader
	out io.Writer
}

// New creates a Prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: NewLineReader(in), out: out}
}

func (p *Prompter) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(p.out, format, args...); err != nil {
		slog.Warn("Failed to write prompt", "error", err)
	}
}

func (p *Prompter) ask(ctx context.Context, question string) (string, error) {
	p.printf("%s", question)
	return p.in.ReadLine(ctx)
}

// ChooseRules shows the setup menu and returns the chosen rules. Unknown
// choices fall back to the predefined table. A failed import yields no rules.
func (p *Prompter) ChooseRules(ctx context.Context) ([]types.CategoryRule, error) {
	p.printf("\n=== Category Setup ===\n")
	p.printf("1. Use predefined category rules\n")
	p.printf("2. Create your own category rules manually\n")
	p.printf("3. Import category rules from a file\n")

	choice, err := p.ask(ctx, "Enter your choice (1/2/3): ")
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	switch choice {
	case "1":
		p.printf("Using predefined category rules\n")
		return rules.Default(), nil
	case "2":
		built, err := p.BuildCustom(ctx)
		if err != nil {
			return nil, err
		}
		p.printf("Custom category rules created\n")
		return built, nil
	case "3":
		filename, err := p.ask(ctx, "Enter the filename to import rules from: ")
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		return p.Import(filename), nil
	default:
		p.printf("Invalid choice! Using predefined rules as default.\n")
		return rules.Default(), nil
	}
}

// Import loads rules from filename, printing any failure and returning no
// rules in that case.
func (p *Prompter) Import(filename string) []types.CategoryRule {
	imported, err := rules.ImportFile(strings.TrimSpace(filename))
	if err != nil {
		p.printf("Error: %v\n", err)
		return nil
	}
	p.printf("Imported %d categories from %s\n", len(imported), filename)
	return imported
}

// BuildCustom walks the user through adding categories and extensions.
// End of input finishes the current step.
func (p *Prompter) BuildCustom(ctx context.Context) ([]types.CategoryRule, error) {
	p.printf("\n=== Custom Rules Setup ===\n")
	p.printf("Let's create your custom category rules.\n")

	b := rules.NewBuilder()
	for {
		answer, err := p.ask(ctx, "Press 'y' to add a category or 'n' to finish: ")
		if errors.Is(err, io.EOF) {
			return b.Rules(), nil
		}
		if err != nil {
			return nil, err
		}

		switch strings.ToLower(answer) {
		case "n":
			return b.Rules(), nil
		case "y":
		default:
			continue
		}

		name, err := p.ask(ctx, "Enter category name (e.g., 'Documents'): ")
		if errors.Is(err, io.EOF) {
			return b.Rules(), nil
		}
		if err != nil {
			return nil, err
		}
		if err := b.AddCategory(name); err != nil {
			p.printf("Error: %v\n", err)
			continue
		}

		done, err := p.addExtensions(ctx, b)
		if err != nil {
			return nil, err
		}
		if done {
			return b.Rules(), nil
		}
	}
}

// addExtensions fills the current category. done is true when input ended.
func (p *Prompter) addExtensions(ctx context.Context, b *rules.Builder) (bool, error) {
	for {
		answer, err := p.ask(ctx, "Press 'y' to add a file type or 'n' to finish this category: ")
		if errors.Is(err, io.EOF) {
			return true, nil
		}
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "n":
			return false, nil
		case "y":
		default:
			continue
		}

		ext, err := p.ask(ctx, "Enter file extension (e.g., '.png', '.txt'): ")
		if errors.Is(err, io.EOF) {
			return true, nil
		}
		if err != nil {
			return false, err
		}
		stored, err := b.AddExtension(ext)
		if err != nil {
			p.printf("Error: %v\n", err)
			continue
		}
		p.printf("Added %s to %s\n", stored, b.Current())
	}
}

// AskPath asks for the directory to organize. An empty answer is returned
// as is and fails later like any other missing path.
func (p *Prompter) AskPath(ctx context.Context) (string, error) {
	path, err := p.ask(ctx, "Enter your folder path: ")
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return path, nil
}
