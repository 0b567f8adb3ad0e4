package color

import (
	"fmt"
	"strings"
)

// Family is the coarse hue category a colour is filed under.
type Family int

const (
	Red Family = iota
	Orange
	Yellow
	Green
	Cyan
	Blue
	Purple
	Pink
	Brown
	Neutral
)

var familyNames = [...]string{
	Red:     "Red",
	Orange:  "Orange",
	Yellow:  "Yellow",
	Green:   "Green",
	Cyan:    "Cyan",
	Blue:    "Blue",
	Purple:  "Purple",
	Pink:    "Pink",
	Brown:   "Brown",
	Neutral: "Neutral",
}

// Families returns every family in display order.
func Families() []Family {
	return []Family{Red, Orange, Yellow, Green, Cyan, Blue, Purple, Pink, Brown, Neutral}
}

// String makes Family satisfy the fmt.Stringer interface.
func (f Family) String() string {
	if f < 0 || int(f) >= len(familyNames) {
		return "Unknown"
	}
	return familyNames[f]
}

// ParseFamily matches a family by name, ignoring case.
func ParseFamily(s string) (Family, error) {
	for _, f := range Families() {
		if strings.EqualFold(strings.TrimSpace(s), f.String()) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown colour family %q", s)
}

func (f Family) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Family) UnmarshalText(text []byte) error {
	parsed, err := ParseFamily(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
