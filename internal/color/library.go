package color

import (
	"fmt"
	"strings"
)

// Library identifies which bundled catalog a colour comes from.
type Library int

const (
	FashionHomeTCX Library = iota
	SolidCoated
)

// Libraries returns every library in tab order.
func Libraries() []Library {
	return []Library{FashionHomeTCX, SolidCoated}
}

// Key is the stable identifier used in config files and CLI flags.
func (l Library) Key() string {
	switch l {
	case FashionHomeTCX:
		return "tcx"
	case SolidCoated:
		return "solid-coated"
	default:
		return "unknown"
	}
}

// ShortName is the label used for tabs and toasts.
func (l Library) ShortName() string {
	switch l {
	case FashionHomeTCX:
		return "TCX"
	case SolidCoated:
		return "Solid Coated"
	default:
		return "Unknown"
	}
}

// String returns the full display name.
func (l Library) String() string {
	switch l {
	case FashionHomeTCX:
		return "Fashion, Home + Interiors (TCX)"
	case SolidCoated:
		return "Solid Coated"
	default:
		return "Unknown"
	}
}

// ParseLibrary accepts a library key or short name, ignoring case.
func ParseLibrary(s string) (Library, error) {
	s = strings.TrimSpace(s)
	for _, l := range Libraries() {
		if strings.EqualFold(s, l.Key()) || strings.EqualFold(s, l.ShortName()) {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown colour library %q", s)
}

func (l Library) MarshalText() ([]byte, error) {
	return []byte(l.Key()), nil
}

func (l *Library) UnmarshalText(text []byte) error {
	parsed, err := ParseLibrary(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
