// =============================================================================
// CSV to NDO Converter - File Utilities
// =============================================================================
//
// This module provides the file-handling helpers used when writing the
// generated document:
//   - Existence checks for optional input tables
//   - Directory creation for the output path
//   - Atomic writes via a uuid-named temporary file
//
// ATOMIC WRITE STRATEGY:
//   The document is written to a temporary file in the target directory and
//   renamed into place. A half-written vars file fed to the playbook is
//   worse than no file, so the destination either keeps its old content or
//   receives the complete new one.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileExists reports whether the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// EnsureDir creates the directory (and any parents) if it does not exist.
func EnsureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// AtomicWriteFile writes data to path by way of a uuid-named temporary file
// in the same directory, renamed over the destination on success.
//
// PARAMETERS:
//   - path: The destination file path. Its directory is created if needed.
//   - data: The complete file content.
//
// RETURNS:
//   - An error if the directory, temporary file or rename fails. The
//     temporary file is removed on any failure.
func AtomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := EnsureDir(dir); err != nil {
		return err
	}

	// Same-directory temp file so the final rename never crosses a
	// filesystem boundary.
	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))

	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move output into place: %w", err)
	}

	return nil
}
