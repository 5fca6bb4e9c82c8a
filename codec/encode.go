package codec

import (
	"errors"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/bmp"
)

// ErrUnsupportedFormat is returned when a writer is not available for the
// requested format.
var ErrUnsupportedFormat = errors.New("codec: unsupported encode format")

// JPEGQuality is the fixed quality used by the JPEG writer.
const JPEGQuality = 90

// Encode writes pixels to w in the given format.
//
// GIF, TIFF, WebP and HEIF are declared formats without a writer; encoding
// to them fails with ErrUnsupportedFormat.
func Encode(w io.Writer, f Format, p Pixels) error {
	switch f {
	case PNG, JPEG, BMP:
		img, err := ToImage(p)
		if err != nil {
			return err
		}
		switch f {
		case PNG:
			return png.Encode(w, img)
		case JPEG:
			return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
		default:
			return bmp.Encode(w, img)
		}
	case TGA:
		return encodeTGA(w, p)
	case GIF, TIFF, WEBP, HEIF:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
}

// EncodeFile writes pixels to the file at path in the given format.
//
// The format check runs before the file is created, so asking for an
// unsupported format leaves no file behind.
func EncodeFile(path string, f Format, p Pixels) error {
	switch f {
	case PNG, JPEG, BMP, TGA:
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := Encode(out, f, p); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
