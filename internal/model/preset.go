package model

import "github.com/google/uuid"

// BoardPreset is a reusable stock board definition: a named size with an
// optional price.
type BoardPreset struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Length        float64 `json:"length"` // cm
	Width         float64 `json:"width"`  // cm
	PricePerBoard float64 `json:"price_per_board"`
}

// NewBoardPreset creates a BoardPreset with a generated ID.
func NewBoardPreset(name string, length, width, price float64) BoardPreset {
	return BoardPreset{
		ID:            uuid.New().String()[:8],
		Name:          name,
		Length:        length,
		Width:         width,
		PricePerBoard: price,
	}
}

// Spec returns the preset's dimensions as a BoardSpec.
func (p BoardPreset) Spec() BoardSpec {
	return BoardSpec{Length: p.Length, Width: p.Width}
}

// BuiltinBoardPresets are the stock sizes offered before the user defines
// any. Sizes are the common metric panel formats in cm.
func BuiltinBoardPresets() []BoardPreset {
	return []BoardPreset{
		NewBoardPreset("Standard 240x120", 240, 120, 0),
		NewBoardPreset("Panel 244x122", 244, 122, 0),
		NewBoardPreset("Half 120x120", 120, 120, 0),
	}
}
