package project

import (
	"path/filepath"
	"testing"

	"woodcut/internal/model"
)

func TestSaveLoadBoardPresets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boards.json")

	presets := []model.BoardPreset{
		model.NewBoardPreset("Birch Ply", 250, 125, 48.0),
		model.NewBoardPreset("OSB", 250, 125, 19.5),
	}
	if err := SaveBoardPresets(path, presets); err != nil {
		t.Fatalf("SaveBoardPresets: %v", err)
	}

	loaded, err := LoadBoardPresets(path)
	if err != nil {
		t.Fatalf("LoadBoardPresets: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 presets, got %d", len(loaded))
	}
	if loaded[0].Name != "Birch Ply" || loaded[0].PricePerBoard != 48.0 {
		t.Errorf("first preset mismatch: %+v", loaded[0])
	}
}

func TestLoadBoardPresetsMissingFileReturnsBuiltins(t *testing.T) {
	loaded, err := LoadBoardPresets(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadBoardPresets: %v", err)
	}
	if len(loaded) != len(model.BuiltinBoardPresets()) {
		t.Errorf("expected builtin presets, got %d entries", len(loaded))
	}
}

func TestFindPreset(t *testing.T) {
	presets := model.BuiltinBoardPresets()

	p, ok := FindPreset(presets, presets[0].Name)
	if !ok {
		t.Fatalf("preset %q not found", presets[0].Name)
	}
	if p.Spec() != (model.BoardSpec{Length: p.Length, Width: p.Width}) {
		t.Errorf("Spec mismatch: %+v", p)
	}

	if _, ok := FindPreset(presets, "No Such Board"); ok {
		t.Error("expected lookup miss")
	}
}
