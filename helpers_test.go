package yiv

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaznbook/yiv/codec"
)

// newTestImage builds an Image with deterministic per-byte values
// pix[i] = (seed + i) % 256.
func newTestImage(t *testing.T, w, h, channels int, seed int) *Image {
	t.Helper()
	pix := make([]byte, w*h*channels)
	for i := range pix {
		pix[i] = byte(seed + i)
	}
	img, err := FromPixels(codec.Pixels{Pix: pix, Width: w, Height: h, Channels: channels})
	if err != nil {
		t.Fatalf("FromPixels failed: %v", err)
	}
	return img
}

// patternNRGBA returns a w x h image whose pixel at (x, y) is
// (x*40, y*40, (x+y)*20, 255) for deterministic content checks.
func patternNRGBA(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 40),
				G: uint8(y * 40),
				B: uint8((x + y) * 20),
				A: 255,
			})
		}
	}
	return img
}

// writePNG encodes img into a fresh file under t.TempDir and returns its path.
func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode test PNG: %v", err)
	}
	return path
}

// bytesEqual compares two pixel buffers.
func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
