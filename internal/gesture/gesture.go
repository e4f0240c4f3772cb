package gestures

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ThatOtherAndrew/dollar/internal/models"
	"gopkg.in/yaml.v3"
)

var ErrGestureNotFound = errors.New("gesture not found")

// LoadGestures reads a template library. A missing file is an empty library.
func LoadGestures(path string) ([]models.GestureConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.GestureConfig{}, nil
		}
		return nil, err
	}

	var gestures []models.GestureConfig
	if err := yaml.Unmarshal(data, &gestures); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for i, g := range gestures {
		if g.Name == "" {
			return nil, fmt.Errorf("parse %s: gesture %d has no name", path, i)
		}
	}
	if gestures == nil {
		gestures = []models.GestureConfig{}
	}
	return gestures, nil
}

// SaveGesture stores g in the library at path, replacing any gesture with the
// same name.
func SaveGesture(path string, g models.GestureConfig) error {
	gestures, err := LoadGestures(path)
	if err != nil {
		return err
	}

	found := false
	for i, existing := range gestures {
		if existing.Name == g.Name {
			gestures[i] = g
			found = true
			break
		}
	}
	if !found {
		gestures = append(gestures, g)
	}

	return writeGestures(path, gestures)
}

func RemoveGesture(path, name string) error {
	gestures, err := LoadGestures(path)
	if err != nil {
		return err
	}

	found := false
	for i, g := range gestures {
		if g.Name == name {
			gestures = append(gestures[:i], gestures[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrGestureNotFound, name)
	}

	return writeGestures(path, gestures)
}

func writeGestures(path string, gestures []models.GestureConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(gestures)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
