// Package organizer sorts the files of one directory into category folders.
//
// A pass is strictly linear: the target is validated, its children are listed
// once, one folder per category is ensured, and every original entry is then
// classified and moved. Folders created by the pass are never re-scanned. A
// failure on one entry becomes a Failed outcome and the pass goes on. A category
// folder that cannot be created fails only the entries bound for it. Only a
// missing target or a held lock stop the run.
package organizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/taigrr/fileorg/internal/category"
	"github.com/taigrr/fileorg/internal/filesystem"
	"github.com/taigrr/fileorg/internal/logging"
	"github.com/taigrr/fileorg/internal/pathfilter"
	"github.com/taigrr/fileorg/internal/types"
)

var (
	// ErrPathNotFound is returned when the target directory does not exist.
	ErrPathNotFound = errors.New("path not found")
	// ErrCategoryFolder marks entries whose category folder cannot be created.
	ErrCategoryFolder = errors.New("cannot create category folder")
	// ErrLocked is returned when another pass holds the directory.
	ErrLocked = errors.New("directory is already being organized")
)

// FileSystem is the set of operations a pass performs on the target.
type FileSystem interface {
	Root() string
	CheckRoot() error
	ListEntries() ([]types.DirectoryEntry, error)
	EnsureDir(name string) (bool, error)
	Exists(path string) bool
	UniquePath(dir, name string) string
	Move(src, dst string) error
}

// Observer is notified as a pass progresses.
type Observer interface {
	// OtherAdded follows PassStarted when the rules lacked the catch-all
	// category.
	OtherAdded()
	PassStarted(path string, entries int)
	FolderCreated(name string)
	EntryDone(outcome types.MoveOutcome)
}

// Organizer runs passes over directories using one category index.
type Organizer struct {
	index    *category.Index
	filter   *pathfilter.PathFilter
	logger   *slog.Logger
	observer Observer
	dryRun   bool
	lockDir  string
	openFS   func(root string) FileSystem
}

// Option configures an Organizer.
type Option func(*Organizer)

// WithLogger sets the logger used for pass and entry events.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Organizer) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithFilter sets the ignore patterns applied to entry names.
func WithFilter(pf *pathfilter.PathFilter) Option {
	return func(o *Organizer) { o.filter = pf }
}

// WithObserver registers an observer for pass events.
func WithObserver(obs Observer) Option {
	return func(o *Organizer) { o.observer = obs }
}

// WithDryRun plans the pass without creating folders or moving files.
func WithDryRun(dryRun bool) Option {
	return func(o *Organizer) { o.dryRun = dryRun }
}

// WithLockDir sets where run lock files are kept. Defaults to the OS temp dir.
func WithLockDir(dir string) Option {
	return func(o *Organizer) { o.lockDir = dir }
}

// WithFileSystem replaces the file system used for each pass.
func WithFileSystem(open func(root string) FileSystem) Option {
	return func(o *Organizer) {
		if open != nil {
			o.openFS = open
		}
	}
}

// New creates an Organizer for the given index.
func New(index *category.Index, opts ...Option) *Organizer {
	o := &Organizer{
		index:  index,
		logger: logging.Discard(),
		openFS: func(root string) FileSystem { return filesystem.New(root) },
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run performs one pass over path. The returned summary holds every outcome
// recorded before Run returned, even when it also returns an error.
func (o *Organizer) Run(ctx context.Context, path string) (types.Summary, error) {
	if strings.TrimSpace(path) == "" {
		return types.Summary{DryRun: o.dryRun}, fmt.Errorf("%w: no path given", ErrPathNotFound)
	}

	fsys := o.openFS(path)
	summary := types.Summary{
		RunID:  uuid.NewString(),
		Path:   fsys.Root(),
		DryRun: o.dryRun,
	}
	logger := o.logger.With("run_id", summary.RunID, "path", summary.Path)

	// Init
	if err := fsys.CheckRoot(); err != nil {
		logger.Error("target directory unusable", "error", err)
		return summary, fmt.Errorf("%w: %s: %w", ErrPathNotFound, path, err)
	}

	if !o.dryRun {
		release, err := acquireLock(o.lockDir, fsys.Root())
		if err != nil {
			return summary, err
		}
		defer release()
	}

	// EnumeratingEntries
	entries, err := fsys.ListEntries()
	if err != nil {
		logger.Error("failed to list directory", "error", err)
		return summary, fmt.Errorf("failed to list directory: %w", err)
	}
	attrs := []any{"entries", len(entries), "categories", o.index.Len(), "dry_run", o.dryRun}
	if !o.filter.Empty() {
		attrs = append(attrs, "ignore", o.filter.Patterns())
	}
	logger.Info("pass started", attrs...)
	if o.observer != nil {
		o.observer.PassStarted(summary.Path, len(entries))
		if o.index.AddedOther() {
			o.observer.OtherAdded()
		}
	}

	// EnsuringCategoryFolders
	var unusable map[string]error
	if !o.dryRun {
		var created []string
		created, unusable = EnsureCategoryFolders(fsys, o.index.Names())
		for _, name := range created {
			logger.Info("created category folder", "category", name)
			if o.observer != nil {
				o.observer.FolderCreated(name)
			}
		}
		for name, err := range unusable {
			logger.Warn("category folder unusable", "category", name, "error", err)
		}
	}

	// ProcessingEntries
	unique := fsys.UniquePath
	reserved := make(map[string]struct{})
	if o.dryRun {
		unique = func(dir, name string) string {
			return filesystem.UniqueName(dir, name, func(p string) bool {
				if _, ok := reserved[p]; ok {
					return true
				}
				return fsys.Exists(p)
			})
		}
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			logger.Warn("pass cancelled", "processed", len(summary.Outcomes), "remaining", len(entries)-len(summary.Outcomes))
			return summary, fmt.Errorf("pass cancelled: %w", err)
		}

		outcome := o.process(fsys, entry, unique, unusable)
		if o.dryRun && outcome.Kind == types.OutcomeMoved {
			reserved[filepath.Join(outcome.Category, outcome.FinalName)] = struct{}{}
		}
		logOutcome(logger, outcome)
		summary.Add(outcome)
		if o.observer != nil {
			o.observer.EntryDone(outcome)
		}
	}

	// Summarizing
	logger.Info("pass finished",
		"moved", summary.Moved,
		"renamed", summary.Renamed,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
	)
	return summary, nil
}

// process classifies one entry and moves it into its category folder.
func (o *Organizer) process(fsys FileSystem, entry types.DirectoryEntry, unique func(dir, name string) string, unusable map[string]error) types.MoveOutcome {
	if entry.IsDir {
		return types.MoveOutcome{Kind: types.OutcomeSkipped, Name: entry.Name, Reason: types.ReasonIsDirectory}
	}
	if o.filter.IsIgnored(entry.Name) {
		return types.MoveOutcome{Kind: types.OutcomeSkipped, Name: entry.Name, Reason: types.ReasonIgnored}
	}

	target := o.index.Classify(entry.Name)
	if err, ok := unusable[target]; ok {
		return types.MoveOutcome{
			Kind:     types.OutcomeFailed,
			Name:     entry.Name,
			Category: target,
			Reason:   err.Error(),
			Err:      err,
		}
	}
	finalName := unique(target, entry.Name)

	if !o.dryRun {
		if err := fsys.Move(entry.Name, filepath.Join(target, finalName)); err != nil {
			return types.MoveOutcome{
				Kind:     types.OutcomeFailed,
				Name:     entry.Name,
				Category: target,
				Reason:   err.Error(),
				Err:      err,
			}
		}
	}

	return types.MoveOutcome{
		Kind:      types.OutcomeMoved,
		Name:      entry.Name,
		Category:  target,
		FinalName: finalName,
	}
}

// EnsureCategoryFolders creates one folder per category name under the root
// of fsys, leaving existing folders untouched. It returns the names it created
// and, keyed by name, the folders that could not be made usable.
func EnsureCategoryFolders(fsys FileSystem, names []string) ([]string, map[string]error) {
	var created []string
	unusable := make(map[string]error)
	for _, name := range names {
		ok, err := fsys.EnsureDir(name)
		if err != nil {
			unusable[name] = fmt.Errorf("%w %q: %w", ErrCategoryFolder, name, err)
			continue
		}
		if ok {
			created = append(created, name)
		}
	}
	return created, unusable
}

func logOutcome(logger *slog.Logger, outcome types.MoveOutcome) {
	switch outcome.Kind {
	case types.OutcomeMoved:
		logger.Debug("entry moved",
			"name", outcome.Name,
			"category", outcome.Category,
			"final_name", outcome.FinalName,
			"renamed", outcome.Renamed(),
		)
	case types.OutcomeSkipped:
		logger.Debug("entry skipped", "name", outcome.Name, "reason", outcome.Reason)
	case types.OutcomeFailed:
		logger.Warn("entry failed", "name", outcome.Name, "category", outcome.Category, "error", outcome.Err)
	}
}
