package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"woodcut/internal/model"
)

// DefaultPresetsPath returns the default file path for the board preset
// catalog.
func DefaultPresetsPath() string {
	return filepath.Join(DefaultConfigDir(), "boards.json")
}

// SaveBoardPresets saves the board preset catalog to a JSON file.
func SaveBoardPresets(path string, presets []model.BoardPreset) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(presets, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadBoardPresets reads the board preset catalog. If the file does not
// exist, the builtin presets are returned with no error.
func LoadBoardPresets(path string) ([]model.BoardPreset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.BuiltinBoardPresets(), nil
		}
		return nil, err
	}
	var presets []model.BoardPreset
	if err := json.Unmarshal(data, &presets); err != nil {
		return nil, err
	}
	if len(presets) == 0 {
		return model.BuiltinBoardPresets(), nil
	}
	return presets, nil
}

// FindPreset returns the preset with the given name, matching
// case-sensitively, and whether it was found.
func FindPreset(presets []model.BoardPreset, name string) (model.BoardPreset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return model.BoardPreset{}, false
}
