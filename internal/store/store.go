// Package store persists rendered identicons.
package store

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmylchreest/identicon/internal/security"
)

// Extension is appended to every stored identicon.
const Extension = ".png"

// Persister stores an encoded image under an identifier and returns where it
// was written. Existing artifacts with the same identifier are replaced.
type Persister interface {
	Save(ctx context.Context, identifier string, data []byte) (string, error)
}

// FilePersister writes identicons to a directory as <identifier>.png.
type FilePersister struct {
	// Dir is the directory where images are written.
	// If empty, the current working directory is used.
	Dir string
}

// NewFilePersister creates a FilePersister writing to dir.
func NewFilePersister(dir string) *FilePersister {
	return &FilePersister{Dir: dir}
}

// DefaultOutputDir returns the directory used when none is configured.
func DefaultOutputDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// FilenameFor returns the file name used for identifier. Identifiers that are
// not safe to use as a file name are replaced by a hash of the identifier.
func FilenameFor(identifier string) string {
	if err := security.ValidateFilename(identifier + Extension); err == nil {
		return identifier + Extension
	}
	hash := sha256.Sum256([]byte(identifier))
	return fmt.Sprintf("%x", hash[:16]) + Extension // Use first 16 bytes (32 hex chars)
}

// Save writes data to <Dir>/<identifier>.png, overwriting any existing file.
// The data is written to a temporary file first and renamed into place so a
// failed write never leaves a truncated image behind.
func (p *FilePersister) Save(ctx context.Context, identifier string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir := p.Dir
	if dir == "" {
		dir = DefaultOutputDir()
	}

	// Create output directory if it doesn't exist.
	if err := os.MkdirAll(dir, 0o755); err != nil { // #nosec G301 - Output directory needs standard permissions
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := FilenameFor(identifier)
	if err := security.ValidateFilePath(filename, dir); err != nil {
		return "", fmt.Errorf("invalid output path: %w", err)
	}
	target := filepath.Join(dir, filename)

	tmp, err := os.CreateTemp(dir, ".identicon-*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil { // #nosec G302 - Images need standard read permissions
		return "", fmt.Errorf("failed to set image permissions: %w", err)
	}
	if err := os.Rename(tmpPath, target); err != nil {
		return "", fmt.Errorf("failed to move image into place: %w", err)
	}

	return target, nil
}
