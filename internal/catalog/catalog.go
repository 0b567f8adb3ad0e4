package catalog

import (
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"

	"lon/internal/color"
	"lon/pkg/logging"
)

const subsystem = "Catalog"

// Catalog maps each library to its colours in source order.
type Catalog struct {
	colors      map[color.Library][]color.Color
	fingerprint uint64
}

// Load reads and converts every library from src. Any fatal source error
// aborts the load; entries with an unparseable hex value are skipped.
func Load(src Source) (*Catalog, error) {
	c := &Catalog{colors: make(map[color.Library][]color.Color, len(color.Libraries()))}
	digest := xxhash.New()

	for _, lib := range color.Libraries() {
		data, err := readResource(src, lib)
		if err != nil {
			return nil, err
		}
		colors, err := convert(lib, data)
		if err != nil {
			return nil, err
		}
		c.colors[lib] = colors

		_, _ = digest.WriteString(lib.Key())
		_, _ = digest.Write(data)
	}

	c.fingerprint = digest.Sum64()
	logging.Debug(subsystem, "loaded %d libraries (fingerprint %016x)", len(c.colors), c.fingerprint)
	return c, nil
}

// LoadLibrary reads and converts a single library from src.
func LoadLibrary(src Source, library color.Library) ([]color.Color, error) {
	data, err := readResource(src, library)
	if err != nil {
		return nil, err
	}
	return convert(library, data)
}

func readResource(src Source, library color.Library) ([]byte, error) {
	data, err := src.Open(library)
	if err != nil {
		return nil, sourceError(ErrSourceMissing, library, err)
	}
	if !utf8.Valid(data) {
		return nil, sourceError(ErrSourceEncoding, library, nil)
	}
	return data, nil
}

func convert(library color.Library, data []byte) ([]color.Color, error) {
	entries, err := decodeEntries(library, data)
	if err != nil {
		return nil, sourceError(ErrSourceShape, library, err)
	}

	colors := make([]color.Color, 0, len(entries))
	dropped := 0
	for _, e := range entries {
		c, ok := color.New(e.Name, e.Hex, library)
		if !ok {
			dropped++
			continue
		}
		colors = append(colors, c)
	}

	if dropped > 0 {
		logging.Debug(subsystem, "%s: skipped %d entries with invalid hex", library.Key(), dropped)
	}
	logging.Debug(subsystem, "%s: %d colours", library.Key(), len(colors))
	return colors, nil
}

// Get returns the colours of library in source order, or an empty slice for
// an unknown library. The slice is shared and must not be modified.
func (c *Catalog) Get(library color.Library) []color.Color {
	colors, ok := c.colors[library]
	if !ok {
		return []color.Color{}
	}
	return colors
}

// Count returns the number of colours in library.
func (c *Catalog) Count(library color.Library) int {
	return len(c.Get(library))
}

// Libraries returns the loaded libraries in tab order.
func (c *Catalog) Libraries() []color.Library {
	libs := make([]color.Library, 0, len(c.colors))
	for _, lib := range color.Libraries() {
		if _, ok := c.colors[lib]; ok {
			libs = append(libs, lib)
		}
	}
	return libs
}

// Total returns the number of colours across all libraries.
func (c *Catalog) Total() int {
	total := 0
	for _, colors := range c.colors {
		total += len(colors)
	}
	return total
}

// Fingerprint is an xxhash digest of the raw resources the catalog was
// built from.
func (c *Catalog) Fingerprint() uint64 {
	return c.fingerprint
}
