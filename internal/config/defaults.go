package config

import (
	"time"

	"lon/internal/virtual"
)

// GetDefaultConfig returns the configuration used when no file overrides it.
func GetDefaultConfig() LonConfig {
	return LonConfig{
		UI: UIConfig{
			Multiplier:     virtual.DefaultMultiplier,
			DefaultLibrary: "tcx",
			SortOrder:      "hue",
			CellWidth:      14,
			CellHeight:     3,
			MaxColumns:     6,
			MinColumns:     3,
			DarkMode:       true,
			ToastTimeout:   time.Second,
		},
	}
}
