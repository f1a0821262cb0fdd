package playground

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rezonia/invoice-playground/internal/craft"
)

// save writes an artifact into the output directory. The bytes land in
// a temp file first and are renamed into place; on any failure the
// temp file is removed so no half-written download lingers.
func (r *Runner) save(artifact *craft.Artifact) (string, error) {
	if err := os.MkdirAll(r.outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(r.outDir, ".download-*")
	if err != nil {
		return "", fmt.Errorf("create download file: %w", err)
	}

	if _, err := tmp.Write(artifact.Data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write %s: %w", artifact.Filename, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write %s: %w", artifact.Filename, err)
	}

	path := filepath.Join(r.outDir, artifact.Filename)
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("save %s: %w", artifact.Filename, err)
	}
	return path, nil
}
