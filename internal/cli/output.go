package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"

	"lon/internal/catalog"
	"lon/internal/color"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// ParseOutputFormat validates a --output flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s (want table, json or yaml)", s)
	}
}

// Printer writes catalog query results in one output format.
type Printer struct {
	format OutputFormat
	out    io.Writer
}

// NewPrinter creates a printer writing to out.
func NewPrinter(format OutputFormat, out io.Writer) *Printer {
	return &Printer{format: format, out: out}
}

// colorRecord is the serialized form of a colour.
type colorRecord struct {
	Name     string     `json:"name" yaml:"name"`
	Display  string     `json:"displayName" yaml:"displayName"`
	Hex      string     `json:"hex" yaml:"hex"`
	RGB      [3]int     `json:"rgb" yaml:"rgb,flow"`
	HSL      [3]float64 `json:"hsl" yaml:"hsl,flow"`
	Family   string     `json:"family" yaml:"family"`
	Library  string     `json:"library" yaml:"library"`
	Distance *float64   `json:"deltaE,omitempty" yaml:"deltaE,omitempty"`
}

func newColorRecord(c color.Color) colorRecord {
	return colorRecord{
		Name:    c.Name,
		Display: c.DisplayName(),
		Hex:     c.NormalizedHex(),
		RGB:     [3]int{int(c.RGB.R), int(c.RGB.G), int(c.RGB.B)},
		HSL:     [3]float64{round1(float64(c.HSL.H)), round1(float64(c.HSL.S)), round1(float64(c.HSL.L))},
		Family:  c.Family.String(),
		Library: c.Library.Key(),
	}
}

// DeltaE converts a go-colorful CIEDE2000 distance to the usual 0..100 scale.
func DeltaE(distance float64) float64 {
	return distance * 100
}

// PrintColors writes a list of colours.
func (p *Printer) PrintColors(colors []color.Color) error {
	records := make([]colorRecord, len(colors))
	for i, c := range colors {
		records[i] = newColorRecord(c)
	}

	switch p.format {
	case OutputFormatJSON:
		return p.outputJSON(records)
	case OutputFormatYAML:
		return p.outputYAML(records)
	}

	if len(colors) == 0 {
		fmt.Fprintln(p.out, text.FgYellow.Sprint("No colours found"))
		return nil
	}

	t := p.newTable()
	t.AppendHeader(table.Row{"", "NAME", "HEX", "RGB", "HSL", "FAMILY"})
	for _, c := range colors {
		t.AppendRow(table.Row{swatch(c), c.DisplayName(), c.NormalizedHex(), c.RGB.String(), c.HSL.String(), formatFamily(c.Family)})
	}
	t.Render()
	fmt.Fprintf(p.out, "\n%s %s %s\n",
		text.FgHiBlue.Sprint("Total:"),
		text.FgHiWhite.Sprint(len(colors)),
		pluralize("colour", len(colors)))
	return nil
}

// PrintColor writes the detail view for one colour and the colours closest
// to it. nearest may include the colour itself at distance zero; it is
// skipped.
func (p *Printer) PrintColor(c color.Color, nearest []catalog.Match) error {
	var similar []colorRecord
	for _, m := range nearest {
		if m.Color == c {
			continue
		}
		r := newColorRecord(m.Color)
		d := round1(DeltaE(m.Distance))
		r.Distance = &d
		similar = append(similar, r)
	}

	detail := struct {
		colorRecord `yaml:",inline"`
		Similar     []colorRecord `json:"similar,omitempty" yaml:"similar,omitempty"`
	}{newColorRecord(c), similar}

	switch p.format {
	case OutputFormatJSON:
		return p.outputJSON(detail)
	case OutputFormatYAML:
		return p.outputYAML(detail)
	}

	t := p.newTable()
	t.AppendHeader(table.Row{"PROPERTY", "VALUE"})
	t.AppendRows([]table.Row{
		{text.FgYellow.Sprint("Name"), c.DisplayName()},
		{text.FgYellow.Sprint("Swatch"), swatch(c)},
		{text.FgYellow.Sprint("Hex"), c.NormalizedHex()},
		{text.FgYellow.Sprint("RGB"), c.RGB.String()},
		{text.FgYellow.Sprint("HSL"), c.HSL.String()},
		{text.FgYellow.Sprint("Family"), formatFamily(c.Family)},
		{text.FgYellow.Sprint("Library"), c.Library.String()},
	})
	t.Render()

	if len(similar) == 0 {
		return nil
	}
	fmt.Fprintln(p.out)
	return p.printMatches(similar)
}

// PrintMatches writes nearest-colour results for a query that matched no
// colour exactly.
func (p *Printer) PrintMatches(matches []catalog.Match) error {
	records := make([]colorRecord, len(matches))
	for i, m := range matches {
		records[i] = newColorRecord(m.Color)
		d := round1(DeltaE(m.Distance))
		records[i].Distance = &d
	}

	switch p.format {
	case OutputFormatJSON:
		return p.outputJSON(records)
	case OutputFormatYAML:
		return p.outputYAML(records)
	}
	if len(records) == 0 {
		fmt.Fprintln(p.out, text.FgYellow.Sprint("No colours found"))
		return nil
	}
	return p.printMatches(records)
}

func (p *Printer) printMatches(records []colorRecord) error {
	t := p.newTable()
	t.AppendHeader(table.Row{"", "NEAREST", "HEX", "LIBRARY", "ΔE"})
	for _, r := range records {
		rgb := color.RGB{R: uint8(r.RGB[0]), G: uint8(r.RGB[1]), B: uint8(r.RGB[2])}
		t.AppendRow(table.Row{swatchRGB(rgb), r.Display, r.Hex, r.Library, fmt.Sprintf("%.1f", *r.Distance)})
	}
	t.Render()
	return nil
}

// PrintFamilies writes per-family statistics for a library.
func (p *Printer) PrintFamilies(library color.Library, stats []catalog.FamilyStat) error {
	switch p.format {
	case OutputFormatJSON:
		return p.outputJSON(stats)
	case OutputFormatYAML:
		return p.outputYAML(stats)
	}

	t := p.newTable()
	t.SetTitle(library.String())
	t.AppendHeader(table.Row{"FAMILY", "COLOURS", "LIGHTNESS", "SATURATION"})
	total := 0
	for _, s := range stats {
		t.AppendRow(table.Row{
			formatFamily(s.Family),
			s.Count,
			fmt.Sprintf("%5.1f ± %4.1f", s.MeanLightness, s.StdLightness),
			fmt.Sprintf("%5.1f ± %4.1f", s.MeanSaturation, s.StdSaturation),
		})
		total += s.Count
	}
	t.AppendFooter(table.Row{"Total", total, "", ""})
	t.Render()
	return nil
}

// LibraryInfo summarizes one loaded library.
type LibraryInfo struct {
	Key   string `json:"key" yaml:"key"`
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

// CatalogInfo summarizes the loaded catalog.
type CatalogInfo struct {
	Version     string        `json:"version" yaml:"version"`
	Source      string        `json:"source" yaml:"source"`
	Fingerprint string        `json:"fingerprint" yaml:"fingerprint"`
	Libraries   []LibraryInfo `json:"libraries" yaml:"libraries"`
}

// NewCatalogInfo collects the summary for cat.
func NewCatalogInfo(version, source string, cat *catalog.Catalog) CatalogInfo {
	info := CatalogInfo{
		Version:     version,
		Source:      source,
		Fingerprint: fmt.Sprintf("%016x", cat.Fingerprint()),
	}
	for _, lib := range cat.Libraries() {
		info.Libraries = append(info.Libraries, LibraryInfo{Key: lib.Key(), Name: lib.String(), Count: cat.Count(lib)})
	}
	return info
}

// PrintInfo writes the catalog summary.
func (p *Printer) PrintInfo(info CatalogInfo) error {
	switch p.format {
	case OutputFormatJSON:
		return p.outputJSON(info)
	case OutputFormatYAML:
		return p.outputYAML(info)
	}

	t := p.newTable()
	t.AppendHeader(table.Row{"PROPERTY", "VALUE"})
	t.AppendRow(table.Row{text.FgYellow.Sprint("version"), info.Version})
	t.AppendRow(table.Row{text.FgYellow.Sprint("source"), info.Source})
	t.AppendRow(table.Row{text.FgYellow.Sprint("fingerprint"), info.Fingerprint})
	for _, lib := range info.Libraries {
		t.AppendRow(table.Row{text.FgYellow.Sprint(lib.Key), fmt.Sprintf("%s, %d colours", lib.Name, lib.Count)})
	}
	t.Render()
	return nil
}

func (p *Printer) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.SetStyle(table.StyleRounded)
	return t
}

func (p *Printer) outputJSON(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func (p *Printer) outputYAML(v any) error {
	enc := yaml.NewEncoder(p.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to convert to YAML: %w", err)
	}
	return enc.Close()
}

// swatch renders a short block in the colour itself. Terminals without
// colour support get blank space.
func swatch(c color.Color) string {
	return swatchRGB(c.RGB)
}

func swatchRGB(rgb color.RGB) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(color.FormatHex(rgb))).Render("    ")
}

func formatFamily(f color.Family) string {
	switch f {
	case color.Red, color.Pink:
		return text.FgRed.Sprint(f.String())
	case color.Orange, color.Brown:
		return text.FgHiRed.Sprint(f.String())
	case color.Yellow:
		return text.FgYellow.Sprint(f.String())
	case color.Green:
		return text.FgGreen.Sprint(f.String())
	case color.Cyan:
		return text.FgCyan.Sprint(f.String())
	case color.Blue:
		return text.FgBlue.Sprint(f.String())
	case color.Purple:
		return text.FgMagenta.Sprint(f.String())
	default:
		return text.FgHiBlack.Sprint(f.String())
	}
}

func pluralize(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func round1(f float64) float64 {
	return float64(int(f*10+0.5)) / 10
}
