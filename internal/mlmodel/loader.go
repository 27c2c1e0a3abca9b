package mlmodel

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Artifacts bundles the loaded vectorizer and clustering model. Artifacts
// are loaded once at startup and are read-only for the process lifetime.
type Artifacts struct {
	Vectorizer *Vectorizer
	KMeans     *KMeans
}

// Load reads both artifacts from dir and validates that they agree with
// each other. Any failure is returned to the caller; the service treats it
// as non-fatal and runs in rule-based fallback mode.
func Load(dir, vectorizerFile, kmeansFile string) (*Artifacts, error) {
	var vec Vectorizer
	if err := loadJSON(filepath.Join(dir, vectorizerFile), &vec); err != nil {
		return nil, fmt.Errorf("load vectorizer: %w", err)
	}
	if err := vec.Validate(); err != nil {
		return nil, fmt.Errorf("validate vectorizer: %w", err)
	}

	var km KMeans
	if err := loadJSON(filepath.Join(dir, kmeansFile), &km); err != nil {
		return nil, fmt.Errorf("load kmeans model: %w", err)
	}
	if err := km.Validate(); err != nil {
		return nil, fmt.Errorf("validate kmeans model: %w", err)
	}

	if km.Dimensions() != vec.Features() {
		return nil, fmt.Errorf("mlmodel: centroid dimension %d does not match vectorizer features %d",
			km.Dimensions(), vec.Features())
	}

	return &Artifacts{Vectorizer: &vec, KMeans: &km}, nil
}

func loadJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
