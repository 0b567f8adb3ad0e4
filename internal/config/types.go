package config

import (
	"time"
)

// LonConfig is the top-level configuration structure for lon.
type LonConfig struct {
	UI      UIConfig      `yaml:"ui"`
	Catalog CatalogConfig `yaml:"catalog"`
}

// UIConfig controls the terminal browser.
type UIConfig struct {
	Multiplier     int           `yaml:"multiplier"`     // Logical repetitions of each library in the grid
	DefaultLibrary string        `yaml:"defaultLibrary"` // Library key of the tab shown first, e.g. "tcx"
	SortOrder      string        `yaml:"sortOrder"`      // name, hue, saturation or lightness
	CellWidth      int           `yaml:"cellWidth"`
	CellHeight     int           `yaml:"cellHeight"`
	MaxColumns     int           `yaml:"maxColumns"`
	MinColumns     int           `yaml:"minColumns"`
	DarkMode       bool          `yaml:"darkMode"`
	ToastTimeout   time.Duration `yaml:"toastTimeout"`
}

// CatalogConfig selects where colour data is read from.
type CatalogConfig struct {
	// DataDir overrides the bundled resources with tcx.json and
	// solid_coated.json from a directory. Empty means bundled.
	DataDir string `yaml:"dataDir,omitempty"`
}
