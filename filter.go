package yiv

import (
	"fmt"
	"strings"
)

// Filter identifies a per-pixel transform applied by ApplyFilter.
type Filter int

const (
	Grayscale Filter = iota
	Invert
	Brightness
	Contrast
)

var filterNames = map[Filter]string{
	Grayscale:  "grayscale",
	Invert:     "invert",
	Brightness: "brightness",
	Contrast:   "contrast",
}

// String returns the lowercase name of the filter.
func (f Filter) String() string {
	if name, ok := filterNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Filter(%d)", int(f))
}

// ParseFilter maps a filter name to a Filter. Matching is case-insensitive.
func ParseFilter(name string) (Filter, error) {
	s := strings.ToLower(name)
	for f, n := range filterNames {
		if n == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown filter %q", name)
}

// ApplyFilter runs a per-pixel transform over the buffer in place.
//
// Grayscale sets the first three channels of every pixel to the truncated
// weighted sum 0.3R + 0.59G + 0.11B, leaving alpha untouched; images with
// fewer than three channels are left as-is. The remaining filters operate on
// every byte, alpha included: Invert replaces each byte b with 255-b,
// Brightness with min(255, b+50), and Contrast with the truncated value of
// (b-128)*1.2 + 128 clamped to 0..255.
func (m *Image) ApplyFilter(f Filter) {
	switch f {
	case Grayscale:
		if m.channels < 3 {
			return
		}
		for i := 0; i < len(m.pix); i += m.channels {
			gray := byte(0.3*float64(m.pix[i]) + 0.59*float64(m.pix[i+1]) + 0.11*float64(m.pix[i+2]))
			m.pix[i], m.pix[i+1], m.pix[i+2] = gray, gray, gray
		}

	case Invert:
		for i, b := range m.pix {
			m.pix[i] = 255 - b
		}

	case Brightness:
		for i, b := range m.pix {
			v := int(b) + 50
			if v > 255 {
				v = 255
			}
			m.pix[i] = byte(v)
		}

	case Contrast:
		for i, b := range m.pix {
			v := int((float64(b)-128)*1.2 + 128)
			if v > 255 {
				v = 255
			}
			if v < 0 {
				v = 0
			}
			m.pix[i] = byte(v)
		}
	}
}
