// Package color holds the colour value types used across lon and the pure
// conversion functions that derive them.
//
// # Core Functionality
//
// The package provides:
//   - Hex parsing and formatting (ParseHex, FormatHex)
//   - RGB to HSL conversion (RGBToHSL)
//   - Deterministic family classification (ClassifyFamily)
//   - The immutable Color value, built once by New
//   - Stable ordering helpers for presentation (Sort)
//
// # Classification
//
// Families are assigned by ordered rules, first match wins:
//   - Neutral: saturation below 10, or lightness below 5 or above 95
//   - Brown: saturation and lightness below 50 with a red/orange hue (below 40 or above 340)
//   - Otherwise a fixed half-open hue bucket (Red, Orange, Yellow, Green, Cyan, Blue,
//     Purple, Pink, wrapping back to Red from 340)
//
// # Usage Example
//
//	c, ok := color.New("Cloud Dancer", "#F0EEE9", color.FashionHomeTCX)
//	if !ok {
//	    // malformed hex, skip the entry
//	}
//	fmt.Println(c.Family, c.HSL)
//
// # Thread Safety
//
// Everything in this package is either a pure function or an immutable value
// and can be used from any goroutine.
package color
