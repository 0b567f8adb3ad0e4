package catalog

import (
	"encoding/json"
	"errors"
	"fmt"

	"lon/internal/color"
)

// Entry is a raw catalog record before conversion.
type Entry struct {
	Name string
	Hex  string
}

var errMissingField = errors.New("missing field")

// tcxDocument is the parallel-array layout used by the TCX resource.
type tcxDocument struct {
	Names  *[]string `json:"names"`
	Values *[]string `json:"values"`
}

// solidCoatedRecord is one element of the Solid Coated resource.
type solidCoatedRecord struct {
	Name *string `json:"name"`
	Hex  *string `json:"hex"`
}

func decodeEntries(library color.Library, data []byte) ([]Entry, error) {
	switch library {
	case color.FashionHomeTCX:
		return decodeTCX(data)
	case color.SolidCoated:
		return decodeSolidCoated(data)
	default:
		return nil, fmt.Errorf("no decoder for library %q", library.Key())
	}
}

// decodeTCX pairs names and values positionally. When the arrays differ in
// length the surplus of the longer one is ignored.
func decodeTCX(data []byte) ([]Entry, error) {
	var doc tcxDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Names == nil {
		return nil, fmt.Errorf("%w %q", errMissingField, "names")
	}
	if doc.Values == nil {
		return nil, fmt.Errorf("%w %q", errMissingField, "values")
	}

	names, values := *doc.Names, *doc.Values
	n := min(len(names), len(values))
	entries := make([]Entry, 0, n)
	for i := range n {
		entries = append(entries, Entry{Name: names[i], Hex: values[i]})
	}
	return entries, nil
}

func decodeSolidCoated(data []byte) ([]Entry, error) {
	var records []solidCoatedRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(records))
	for i, r := range records {
		if r.Name == nil {
			return nil, fmt.Errorf("record %d: %w %q", i, errMissingField, "name")
		}
		if r.Hex == nil {
			return nil, fmt.Errorf("record %d: %w %q", i, errMissingField, "hex")
		}
		entries = append(entries, Entry{Name: *r.Name, Hex: *r.Hex})
	}
	return entries, nil
}
