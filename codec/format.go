package codec

import (
	"fmt"
	"strings"
)

// Format identifies an on-disk raster format.
//
// All values are valid targets for ParseFormat and Format.String, but only
// PNG, JPEG, BMP and TGA have an encode path; see Encode.
type Format int

const (
	PNG Format = iota
	JPEG
	BMP
	TGA
	GIF
	TIFF
	WEBP
	HEIF
)

var formatNames = map[Format]string{
	PNG:  "png",
	JPEG: "jpeg",
	BMP:  "bmp",
	TGA:  "tga",
	GIF:  "gif",
	TIFF: "tiff",
	WEBP: "webp",
	HEIF: "heif",
}

// String returns the lowercase canonical name of the format.
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps a format name or file extension to a Format.
//
// Matching is case-insensitive and tolerates a leading dot, so "PNG", "png"
// and ".png" are all accepted. "jpg" and "tif" are recognized aliases.
func ParseFormat(name string) (Format, error) {
	s := strings.ToLower(strings.TrimPrefix(name, "."))
	switch s {
	case "jpg":
		s = "jpeg"
	case "tif":
		s = "tiff"
	}
	for f, n := range formatNames {
		if n == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown image format %q", name)
}
