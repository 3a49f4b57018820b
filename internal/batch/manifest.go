package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Manifest describes one completed batch run.
type Manifest struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Frames []string `json:"frames"`
}

// WriteManifest records the rendered frame files next to them.
func WriteManifest(dir string, cfg Config, results []Result) error {
	m := Manifest{Width: cfg.Width, Height: cfg.Height}
	for _, r := range results {
		if r.Success {
			m.Frames = append(m.Frames, filepath.Base(r.Path))
		}
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: manifest: %w", err)
	}
	path := filepath.Join(dir, "manifest.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("batch: manifest: %w", err)
	}
	return nil
}
