package model

// AppConfig holds application-wide defaults shared by the CLI and the
// HTTP service.
type AppConfig struct {
	// Default stock board dimensions in cm
	BoardLength float64 `json:"board_length"`
	BoardWidth  float64 `json:"board_width"`

	// Report and costing defaults
	MaterialName  string  `json:"material_name"`
	PricePerBoard float64 `json:"price_per_board"` // 0 = no pricing
	WastePercent  float64 `json:"waste_percent"`   // purchase waste factor, e.g. 15 for 15%

	// Offcut detection thresholds in cm / sq cm
	MinOffcutEdge float64 `json:"min_offcut_edge"`
	MinOffcutArea float64 `json:"min_offcut_area"`

	// HTTP service listen address
	ListenAddr string `json:"listen_addr"`
}

// DefaultAppConfig returns the configuration used when no config file
// exists. The 240 x 120 cm board matches the standard full-size panel.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		BoardLength:   240,
		BoardWidth:    120,
		MaterialName:  "Wood Board",
		PricePerBoard: 0,
		WastePercent:  15,
		MinOffcutEdge: 10,
		MinOffcutArea: 400,
		ListenAddr:    ":8080",
	}
}

// Board returns the default stock board as a BoardSpec.
func (c AppConfig) Board() BoardSpec {
	return BoardSpec{Length: c.BoardLength, Width: c.BoardWidth}
}
