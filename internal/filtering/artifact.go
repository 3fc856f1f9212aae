// Package filtering holds what both ruleset compilers share: artifact
// persistence, checksums and error sentinels.
package filtering

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
)

const (
	artifactDirPerm  = 0o755
	artifactFilePerm = 0o644
)

// Checksum returns the base64 SHA-256 of data.
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return base64.StdEncoding.EncodeToString(sum[:])
}

// WriteArtifact writes header followed by body to path through a temp file
// and a rename, so a reader never observes a partial ruleset.
func WriteArtifact(path string, header, body []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, artifactDirPerm); err != nil {
		return fmt.Errorf("%w: %w", ErrCreateOutputDir, err)
	}

	file, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteArtifact, err)
	}
	tmpPath := file.Name()

	cleanup := func(cause error) error {
		_ = file.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: %w", ErrWriteArtifact, cause)
	}

	if _, err := file.Write(header); err != nil {
		return cleanup(err)
	}
	if _, err := file.Write(body); err != nil {
		return cleanup(err)
	}
	if err := file.Chmod(artifactFilePerm); err != nil {
		return cleanup(err)
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: %w", ErrWriteArtifact, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: %w", ErrWriteArtifact, err)
	}
	return nil
}

// RemoveArtifact deletes a previously compiled ruleset. A missing file is not an error.
func RemoveArtifact(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}
