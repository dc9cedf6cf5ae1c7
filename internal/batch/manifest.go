package batch

import (
	"encoding/json"
	"fmt"
	"os"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Frame int    `json:"frame"`
	State string `json:"state"`
	Image string `json:"image"`
}

// Manifest describes a rendered frame sequence.
type Manifest struct {
	Creature string          `json:"creature"`
	FPS      int             `json:"fps"`
	Size     int             `json:"size"`
	Frames   []ManifestEntry `json:"frames"`
}

// WriteManifest writes manifest.json to the output directory.
func WriteManifest(path, name string, fps, size int, frames []Frame) error {
	m := Manifest{
		Creature: name,
		FPS:      fps,
		Size:     size,
		Frames:   make([]ManifestEntry, len(frames)),
	}
	for i, fr := range frames {
		m.Frames[i] = ManifestEntry{
			Frame: fr.Index,
			State: fr.State,
			Image: fmt.Sprintf("frame_%04d.webp", fr.Index),
		}
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
