// Package security provides path and file name validation for written artifacts.
package security

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
)

// maxFilenameLength is the common file name limit across filesystems.
const maxFilenameLength = 255

// ValidateFilename checks that name can be used as a single file name.
// Rejects empty names, path separators, "." and "..", control characters and
// names longer than 255 bytes.
func ValidateFilename(name string) error {
	if name == "" {
		return fmt.Errorf("empty file name")
	}

	if len(name) > maxFilenameLength {
		return fmt.Errorf("file name too long (%d bytes, max %d)", len(name), maxFilenameLength)
	}

	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("file name contains a path separator: %q", name)
	}

	base := strings.TrimSuffix(name, filepath.Ext(name))
	if base == "" || base == "." || base == ".." || name == "." || name == ".." {
		return fmt.Errorf("file name is reserved: %q", name)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("file name contains control characters: %q", name)
		}
	}

	return nil
}

// ValidateFilePath validates a file path relative to baseDir to prevent directory traversal.
func ValidateFilePath(filePath, baseDir string) error {
	if filePath == "" {
		return fmt.Errorf("empty file path")
	}

	if filepath.IsAbs(filePath) {
		return fmt.Errorf("absolute paths are not allowed")
	}

	// Ensure the final path would be within baseDir
	finalPath := filepath.Join(baseDir, filePath)
	cleanFinal := filepath.Clean(finalPath)
	cleanBase := filepath.Clean(baseDir)

	if !strings.HasPrefix(cleanFinal, cleanBase+string(filepath.Separator)) &&
		cleanFinal != cleanBase {
		return fmt.Errorf("file path would escape base directory")
	}

	return nil
}
