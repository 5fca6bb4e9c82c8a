package yiv

import "math"

// RotateClockwise rotates the image 90 degrees clockwise in place.
//
// The source pixel at (x, y) moves to row x, column height-1-y of the
// rotated image; width and height swap.
func (m *Image) RotateClockwise() {
	w, h, c := m.width, m.height, m.channels
	rotated := make([]byte, len(m.pix))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src := (y*w + x) * c
			dst := (x*h + (h - 1 - y)) * c
			copy(rotated[dst:dst+c], m.pix[src:src+c])
		}
	}
	m.replace(rotated, h, w, c)
}

// RotateCounterClockwise rotates the image 90 degrees counter-clockwise in
// place. The output is identical to three clockwise rotations.
func (m *Image) RotateCounterClockwise() {
	w, h, c := m.width, m.height, m.channels
	rotated := make([]byte, len(m.pix))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src := (y*w + x) * c
			dst := ((w-1-x)*h + y) * c
			copy(rotated[dst:dst+c], m.pix[src:src+c])
		}
	}
	m.replace(rotated, h, w, c)
}

// Scale resizes the image in place by factor using nearest-neighbor
// sampling: destination (x, y) copies source (int(x/factor), int(y/factor)).
// New dimensions are truncated, so Scale(1.0) is an exact identity.
//
// A factor of zero or less is silently ignored.
func (m *Image) Scale(factor float64) {
	if factor <= 0 {
		return
	}
	w, h, c := m.width, m.height, m.channels
	newW := int(float64(w) * factor)
	newH := int(float64(h) * factor)
	scaled := make([]byte, newW*newH*c)
	for y := 0; y < newH; y++ {
		srcY := int(float64(y) / factor)
		for x := 0; x < newW; x++ {
			srcX := int(float64(x) / factor)
			src := (srcY*w + srcX) * c
			dst := (y*newW + x) * c
			copy(scaled[dst:dst+c], m.pix[src:src+c])
		}
	}
	m.replace(scaled, newW, newH, c)
}

// Thumbnail returns a scaled copy that fits within maxWidth x maxHeight,
// preserving aspect ratio. The receiver is not modified.
//
// An empty image yields an empty copy.
func (m *Image) Thumbnail(maxWidth, maxHeight int) *Image {
	thumb := m.Clone()
	if m.width == 0 || m.height == 0 {
		return thumb
	}
	factor := math.Min(
		float64(maxWidth)/float64(m.width),
		float64(maxHeight)/float64(m.height),
	)
	thumb.Scale(factor)
	return thumb
}
