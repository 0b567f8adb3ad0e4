package catalog

import (
	"gonum.org/v1/gonum/stat"

	"lon/internal/color"
)

// FamilyStat summarises the colours of one family within a library.
type FamilyStat struct {
	Family         color.Family `json:"family" yaml:"family"`
	Count          int          `json:"count" yaml:"count"`
	MeanLightness  float64      `json:"meanLightness" yaml:"meanLightness"`
	StdLightness   float64      `json:"stdLightness" yaml:"stdLightness"`
	MeanSaturation float64      `json:"meanSaturation" yaml:"meanSaturation"`
	StdSaturation  float64      `json:"stdSaturation" yaml:"stdSaturation"`
}

// FamilyStats returns one entry per family present in library, in family
// order. Families with no colours are omitted.
func (c *Catalog) FamilyStats(library color.Library) []FamilyStat {
	lightness := make(map[color.Family][]float64)
	saturation := make(map[color.Family][]float64)
	for _, col := range c.Get(library) {
		lightness[col.Family] = append(lightness[col.Family], float64(col.HSL.L))
		saturation[col.Family] = append(saturation[col.Family], float64(col.HSL.S))
	}

	var stats []FamilyStat
	for _, fam := range color.Families() {
		l := lightness[fam]
		if len(l) == 0 {
			continue
		}
		fs := FamilyStat{Family: fam, Count: len(l)}
		fs.MeanLightness, fs.StdLightness = meanStdDev(l)
		fs.MeanSaturation, fs.StdSaturation = meanStdDev(saturation[fam])
		stats = append(stats, fs)
	}
	return stats
}

// meanStdDev reports a zero deviation for a single sample rather than NaN.
func meanStdDev(x []float64) (float64, float64) {
	if len(x) < 2 {
		return stat.Mean(x, nil), 0
	}
	return stat.MeanStdDev(x, nil)
}
