// Package filex holds small filesystem helpers for the CLI: resolving the
// downloads directory and writing fetched blobs under safe names.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// EnsureSubDir creates (if needed) and returns cwd/dirName.
func EnsureSubDir(dirName string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}

	dir := filepath.Join(cwd, dirName)

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// SafeFilename strips any path components from a server-provided filename.
// An empty or fully stripped name is replaced with a random one so a
// download always lands somewhere.
func SafeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "" || name == "." || name == ".." || name == string(filepath.Separator) {
		return uuid.NewString()
	}
	return name
}

// WriteBlob writes data into dir under a sanitized name and returns the
// final path.
func WriteBlob(dir, name string, data []byte) (string, error) {
	path := filepath.Join(dir, SafeFilename(name))
	if err := os.WriteFile(path, data, 0o660); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
