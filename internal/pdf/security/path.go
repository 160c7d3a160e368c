// Package security confines file access for conversion requests to the
// configured work directory.
package security

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PathValidator rejects paths that escape the configured work directory.
// Tool surfaces (MCP, HTTP) accept caller-supplied paths, so every BOM,
// template and output path is checked before any file is touched.
type PathValidator struct {
	workDir string
}

// NewPathValidator creates a validator rooted at workDir. The directory
// does not have to exist yet; validation is skipped until it does.
func NewPathValidator(workDir string) (*PathValidator, error) {
	if workDir == "" {
		return nil, fmt.Errorf("work directory cannot be empty")
	}
	return &PathValidator{workDir: workDir}, nil
}

// WorkDir returns the configured work directory.
func (v *PathValidator) WorkDir() string {
	return v.workDir
}

// ValidatePath checks that path resolves to a location inside the work
// directory, following symlinks on both sides.
func (v *PathValidator) ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}
	if _, err := os.Stat(v.workDir); os.IsNotExist(err) {
		return nil
	}

	within, err := v.isWithinWorkDir(path)
	if err != nil {
		return fmt.Errorf("path validation failed: %w", err)
	}
	if !within {
		return fmt.Errorf("path is outside the work directory: %s", path)
	}
	return nil
}

// Resolve makes path absolute, rooting relative paths at the work
// directory, and validates the result.
func (v *PathValidator) Resolve(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("path cannot be empty")
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(v.workDir, path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}
	if err := v.ValidatePath(abs); err != nil {
		return "", err
	}
	return abs, nil
}

func (v *PathValidator) isWithinWorkDir(path string) (bool, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false, fmt.Errorf("failed to resolve path: %w", err)
	}
	absDir, err := filepath.Abs(v.workDir)
	if err != nil {
		return false, fmt.Errorf("failed to resolve work directory: %w", err)
	}

	cleanPath := filepath.Clean(absPath)
	cleanDir := filepath.Clean(absDir)

	realPath := cleanPath
	if info, err := os.Lstat(cleanPath); err == nil && info.Mode()&os.ModeSymlink != 0 {
		if resolved, err := filepath.EvalSymlinks(cleanPath); err == nil {
			realPath = resolved
		}
	}
	realDir := cleanDir
	if resolved, err := filepath.EvalSymlinks(cleanDir); err == nil {
		realDir = resolved
	}

	pathOK := isUnder(cleanPath, cleanDir) || isUnder(cleanPath, realDir)
	realPathOK := isUnder(realPath, cleanDir) || isUnder(realPath, realDir)
	return pathOK && realPathOK, nil
}

func isUnder(path, dir string) bool {
	if path == dir {
		return true
	}
	if !strings.HasSuffix(dir, string(filepath.Separator)) {
		dir += string(filepath.Separator)
	}
	return strings.HasPrefix(path, dir)
}
