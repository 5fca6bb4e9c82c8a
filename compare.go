package yiv

import "github.com/lucasb-eyer/go-colorful"

// Ready-made comparators for List.Sort. Each reports whether a should sort
// before b.

// ByArea orders images by pixel area, smallest first.
func ByArea(a, b *Image) bool {
	return a.width*a.height < b.width*b.height
}

// ByPath orders images lexicographically by source path.
func ByPath(a, b *Image) bool {
	return a.path < b.path
}

// ByLuminance orders images darkest first, comparing the L component of the
// mean buffer color in Lab space.
func ByLuminance(a, b *Image) bool {
	la, _, _ := meanColor(a).Lab()
	lb, _, _ := meanColor(b).Lab()
	return la < lb
}

// ByHue orders images by the hue angle of the mean buffer color, red through
// violet. Gray means (saturation zero) carry a hue of zero and sort first.
func ByHue(a, b *Image) bool {
	ha, _, _ := meanColor(a).Hsv()
	hb, _, _ := meanColor(b).Hsv()
	return ha < hb
}

// meanColor averages the RGB samples of the buffer. Single-channel buffers
// contribute their gray value to all three components; an empty buffer is
// black.
func meanColor(m *Image) colorful.Color {
	n := m.width * m.height
	if n == 0 {
		return colorful.Color{}
	}

	var r, g, b float64
	if m.channels >= 3 {
		for i := 0; i < len(m.pix); i += m.channels {
			r += float64(m.pix[i])
			g += float64(m.pix[i+1])
			b += float64(m.pix[i+2])
		}
	} else {
		for i := 0; i < len(m.pix); i += m.channels {
			v := float64(m.pix[i])
			r += v
			g += v
			b += v
		}
	}

	scale := 255 * float64(n)
	return colorful.Color{R: r / scale, G: g / scale, B: b / scale}
}
