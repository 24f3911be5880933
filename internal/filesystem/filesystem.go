// Package filesystem provides file system operations for the organized directory.
package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/taigrr/fileorg/internal/types"
)

// ErrNotDirectory is returned when a path that must be a directory is not one.
var ErrNotDirectory = errors.New("not a directory")

// Service provides file system operations rooted at one directory.
type Service struct {
	root string
}

// New creates a new Service for root.
func New(root string) *Service {
	absPath, err := filepath.Abs(root)
	if err != nil {
		absPath = filepath.Clean(root)
	}
	return &Service{root: absPath}
}

// Root returns the absolute directory the service operates on.
func (s *Service) Root() string {
	return s.root
}

// ResolvePath resolves a path relative to the root and validates it. Symlinks
// in the parent directories are followed and must stay inside the root; the
// last element is not followed so symlink entries can be moved themselves.
func (s *Service) ResolvePath(relativePath string) (string, error) {
	absPath, err := s.lexicalPath(relativePath)
	if err != nil {
		return "", err
	}
	if absPath == s.root {
		return absPath, nil
	}
	if err := s.checkReal(filepath.Dir(absPath), relativePath); err != nil {
		return "", err
	}
	return absPath, nil
}

// ResolveDir resolves a directory relative to the root, following every
// symlink, and rejects it unless the real path stays inside the root.
func (s *Service) ResolveDir(relativePath string) (string, error) {
	absPath, err := s.lexicalPath(relativePath)
	if err != nil {
		return "", err
	}
	if err := s.checkReal(absPath, relativePath); err != nil {
		return "", err
	}
	return absPath, nil
}

func (s *Service) lexicalPath(relativePath string) (string, error) {
	relativePath = strings.TrimSpace(relativePath)
	relativePath = strings.TrimPrefix(relativePath, "/")

	absPath, err := filepath.Abs(filepath.Join(s.root, relativePath))
	if err != nil {
		return "", err
	}

	// Security check: ensure path is within root
	relPath, err := filepath.Rel(s.root, absPath)
	if err != nil {
		return "", err
	}
	if escapes(relPath) {
		return "", fmt.Errorf("path traversal not allowed: %s", relativePath)
	}

	return absPath, nil
}

func (s *Service) checkReal(path, relativePath string) error {
	realRoot, err := evalExisting(s.root)
	if err != nil {
		return describe(err, s.root)
	}
	realPath, err := evalExisting(path)
	if err != nil {
		return describe(err, relativePath)
	}
	relPath, err := filepath.Rel(realRoot, realPath)
	if err != nil {
		return err
	}
	if escapes(relPath) {
		return fmt.Errorf("path traversal not allowed: %s resolves outside root", relativePath)
	}
	return nil
}

func escapes(relPath string) bool {
	return relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator))
}

// evalExisting follows symlinks in the longest existing prefix of path and
// appends the missing remainder unchanged.
func evalExisting(path string) (string, error) {
	var rest []string
	for {
		realPath, err := filepath.EvalSymlinks(path)
		if err == nil {
			return filepath.Join(append([]string{realPath}, rest...)...), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(path)
		if parent == path {
			return path, nil
		}
		rest = append([]string{filepath.Base(path)}, rest...)
		path = parent
	}
}

// CheckRoot verifies that the root exists and is a directory.
func (s *Service) CheckRoot() error {
	info, err := os.Stat(s.root)
	if err != nil {
		return describe(err, s.root)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", s.root, ErrNotDirectory)
	}
	return nil
}

// ListEntries lists the immediate children of the root once, sorted by name.
// Symlinks pointing at directories are reported as directories.
func (s *Service) ListEntries() ([]types.DirectoryEntry, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, describe(err, s.root)
	}

	listing := make([]types.DirectoryEntry, 0, len(entries))
	for _, entry := range entries {
		isDir := entry.IsDir()
		if entry.Type()&fs.ModeSymlink != 0 {
			if info, err := os.Stat(filepath.Join(s.root, entry.Name())); err == nil {
				isDir = info.IsDir()
			}
		}
		listing = append(listing, types.DirectoryEntry{
			Name:  entry.Name(),
			IsDir: isDir,
		})
	}
	return listing, nil
}

// EnsureDir creates the named directory under the root unless it already
// exists. It reports whether the directory was created.
func (s *Service) EnsureDir(name string) (bool, error) {
	fullPath, err := s.ResolvePath(name)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(fullPath)
	if err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("%s: %w", name, ErrNotDirectory)
		}
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, describe(err, name)
	}

	if err := os.Mkdir(fullPath, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, describe(err, name)
	}
	return true, nil
}

// Exists checks if a path relative to the root is occupied.
func (s *Service) Exists(path string) bool {
	fullPath, err := s.ResolvePath(path)
	if err != nil {
		return false
	}
	_, err = os.Lstat(fullPath)
	return err == nil
}

// UniquePath returns a name that is free inside dir, starting from name.
func (s *Service) UniquePath(dir, name string) string {
	return UniqueName(dir, name, s.Exists)
}

// Move moves src to dst, both relative to the root. A rename that crosses
// devices falls back to a verified copy followed by removal of the source.
func (s *Service) Move(src, dst string) error {
	srcPath, err := s.ResolvePath(src)
	if err != nil {
		return err
	}
	dstPath, err := s.ResolvePath(dst)
	if err != nil {
		return err
	}

	err = os.Rename(srcPath, dstPath)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return describe(err, src)
	}

	if err := copyFileVerified(srcPath, dstPath); err != nil {
		return fmt.Errorf("failed to copy %s across devices: %w", src, err)
	}
	if err := os.Remove(srcPath); err != nil {
		return fmt.Errorf("failed to delete source file: %s - %w", src, err)
	}
	return nil
}

func describe(err error, path string) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("not found: %s: %w", path, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("permission denied: %s: %w", path, err)
	default:
		return fmt.Errorf("%s: %w", path, err)
	}
}
