package model

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
)

// Bundle couples the fitted scaler with the classifier so inference always
// scales inputs the same way training did.
type Bundle struct {
	Scaler StandardScaler
	Model  LogisticRegression
}

// Train fits the scaler on X, transforms, and fits the classifier.
func Train(X [][]float64, y []int) (*Bundle, error) {
	var b Bundle
	if err := b.Scaler.Fit(X); err != nil {
		return nil, fmt.Errorf("failed to fit scaler: %w", err)
	}
	if err := b.Model.Fit(b.Scaler.TransformAll(X), y); err != nil {
		return nil, fmt.Errorf("failed to fit classifier: %w", err)
	}
	return &b, nil
}

// PredictProba returns the home-win probability for one raw (unscaled)
// feature vector.
func (b *Bundle) PredictProba(x []float64) float64 {
	return b.Model.PredictProba(b.Scaler.Transform(x))
}

// Save persists the bundle as an opaque gob blob.
func (b *Bundle) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create model directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create model file: %w", err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(b); err != nil {
		return fmt.Errorf("failed to encode model: %w", err)
	}
	return nil
}

// LoadBundle reads a bundle persisted by Save.
func LoadBundle(path string) (*Bundle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model file: %w", err)
	}
	defer f.Close()

	var b Bundle
	if err := gob.NewDecoder(f).Decode(&b); err != nil {
		return nil, fmt.Errorf("failed to decode model %s: %w", path, err)
	}
	return &b, nil
}
