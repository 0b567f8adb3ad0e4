package app

import (
	"fmt"

	"lon/internal/catalog"
	"lon/pkg/logging"
)

// Services holds everything built once at startup and shared read-only
// afterwards.
type Services struct {
	Source  catalog.Source
	Catalog *catalog.Catalog

	// DataDir is the directory the catalog was read from, or empty for
	// the embedded resources.
	DataDir string
}

// InitializeServices picks the catalog source and loads the catalog eagerly.
// A configured data directory replaces the bundled resources.
func InitializeServices(cfg *Config) (*Services, error) {
	var (
		src     = catalog.EmbeddedSource()
		from    = "embedded resources"
		dataDir string
	)
	if cfg.LonConfig != nil && cfg.LonConfig.Catalog.DataDir != "" {
		dataDir = cfg.LonConfig.Catalog.DataDir
		src = catalog.DirSource(dataDir)
		from = dataDir
	}

	cat, err := catalog.Load(src)
	if err != nil {
		return nil, fmt.Errorf("load colour catalog from %s: %w", from, err)
	}

	for _, lib := range cat.Libraries() {
		logging.Debug("Services", "Loaded %d colours for %s", cat.Count(lib), lib.ShortName())
	}
	logging.Debug("Services", "Catalog fingerprint %016x", cat.Fingerprint())

	return &Services{
		Source:  src,
		Catalog: cat,
		DataDir: dataDir,
	}, nil
}
