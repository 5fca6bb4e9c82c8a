package yiv

import (
	"fmt"

	"github.com/yaznbook/yiv/codec"
)

// Image is a decoded raster image held as raw interleaved pixels.
//
// The zero value is an empty image ready for Load or LoadRegion.
type Image struct {
	width    int
	height   int
	channels int
	pix      []byte
	path     string
}

// Open loads the image file at path into a new Image.
func Open(path string) (*Image, error) {
	img := &Image{}
	if err := img.Load(path); err != nil {
		return nil, err
	}
	return img, nil
}

// FromPixels builds an Image from already-decoded pixels.
//
// The pixel data is copied, so the caller keeps ownership of p.Pix. Fails if
// the buffer length does not match the stated dimensions or the channel
// count is outside 1..4.
func FromPixels(p codec.Pixels) (*Image, error) {
	if p.Channels < 1 || p.Channels > 4 {
		return nil, fmt.Errorf("invalid channel count %d", p.Channels)
	}
	if p.Width < 0 || p.Height < 0 || len(p.Pix) != p.Width*p.Height*p.Channels {
		return nil, fmt.Errorf("pixel buffer length %d does not match %dx%dx%d",
			len(p.Pix), p.Width, p.Height, p.Channels)
	}
	pix := make([]byte, len(p.Pix))
	copy(pix, p.Pix)
	img := &Image{}
	img.replace(pix, p.Width, p.Height, p.Channels)
	return img, nil
}

// Load decodes the image file at path into the receiver, replacing any
// previous contents. On failure the receiver is left untouched.
func (m *Image) Load(path string) error {
	p, err := codec.DecodeFile(path)
	if err != nil {
		return err
	}
	m.path = path
	m.replace(p.Pix, p.Width, p.Height, p.Channels)
	return nil
}

// LoadRegion decodes the file at path and keeps only the w x h rectangle
// whose top-left corner is at (x, y).
//
// The rectangle must lie entirely within the decoded image; otherwise the
// call fails and the receiver is left untouched.
func (m *Image) LoadRegion(path string, x, y, w, h int) error {
	p, err := codec.DecodeFile(path)
	if err != nil {
		return err
	}
	if x < 0 || y < 0 || w < 0 || h < 0 || x+w > p.Width || y+h > p.Height {
		return fmt.Errorf("region (%d,%d)+%dx%d outside image bounds %dx%d",
			x, y, w, h, p.Width, p.Height)
	}

	c := p.Channels
	region := make([]byte, w*h*c)
	for row := 0; row < h; row++ {
		src := ((y+row)*p.Width + x) * c
		copy(region[row*w*c:(row+1)*w*c], p.Pix[src:src+w*c])
	}
	m.path = path
	m.replace(region, w, h, c)
	return nil
}

// SaveAs encodes the image to the file at path in the given format.
//
// PNG, JPEG, BMP and TGA are supported; the remaining declared formats fail
// with codec.ErrUnsupportedFormat.
func (m *Image) SaveAs(path string, f codec.Format) error {
	return codec.EncodeFile(path, f, m.Pixels())
}

// Width returns the image width in pixels.
func (m *Image) Width() int { return m.width }

// Height returns the image height in pixels.
func (m *Image) Height() int { return m.height }

// Channels returns the number of bytes per pixel.
func (m *Image) Channels() int { return m.channels }

// Path returns the file the image was loaded from, if any. It records
// provenance only; the file is never re-read.
func (m *Image) Path() string { return m.path }

// Data returns the raw pixel buffer. The slice aliases internal storage:
// writes through it are visible to the image, and it is invalidated by any
// operation that replaces the buffer.
func (m *Image) Data() []byte { return m.pix }

// Pixels returns the image contents as codec pixels, aliasing the internal
// buffer.
func (m *Image) Pixels() codec.Pixels {
	return codec.Pixels{Pix: m.pix, Width: m.width, Height: m.height, Channels: m.channels}
}

// HasAlpha reports whether the image carries an alpha channel.
func (m *Image) HasAlpha() bool { return m.channels == 4 }

// Metadata returns the metadata value for key.
//
// Not implemented: EXIF parsing is reserved for future use and every lookup
// returns the empty string.
func (m *Image) Metadata(key string) string {
	return ""
}

// Clone returns a deep copy with its own pixel buffer.
func (m *Image) Clone() *Image {
	pix := make([]byte, len(m.pix))
	copy(pix, m.pix)
	return &Image{
		width:    m.width,
		height:   m.height,
		channels: m.channels,
		pix:      pix,
		path:     m.path,
	}
}

// replace swaps in a new pixel buffer together with the dimensions that
// describe it, keeping the len(pix) == width*height*channels invariant.
func (m *Image) replace(pix []byte, w, h, channels int) {
	m.pix = pix
	m.width = w
	m.height = h
	m.channels = channels
}
