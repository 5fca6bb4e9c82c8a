package codec

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// TGA image types used in the header.
const (
	tgaTypeTrueColor = 2
	tgaTypeGrayscale = 3
)

// encodeTGA writes an uncompressed Targa file.
//
// The 18-byte header is followed by pixel data in BGR(A) order. The image
// descriptor sets the top-to-bottom origin bit so rows are written in buffer
// order; 32-bit output additionally declares 8 attribute (alpha) bits.
func encodeTGA(w io.Writer, p Pixels) error {
	if len(p.Pix) != p.Width*p.Height*p.Channels {
		return fmt.Errorf("pixel buffer length %d does not match %dx%dx%d",
			len(p.Pix), p.Width, p.Height, p.Channels)
	}
	if p.Width > 0xffff || p.Height > 0xffff {
		return fmt.Errorf("image %dx%d exceeds TGA dimension limit", p.Width, p.Height)
	}

	var imageType, depth, descriptor byte
	switch p.Channels {
	case 1:
		imageType, depth, descriptor = tgaTypeGrayscale, 8, 0x20
	case 2, 4:
		imageType, depth, descriptor = tgaTypeTrueColor, 32, 0x28
	case 3:
		imageType, depth, descriptor = tgaTypeTrueColor, 24, 0x20
	default:
		return fmt.Errorf("unsupported channel count %d", p.Channels)
	}

	var header [18]byte
	header[2] = imageType
	binary.LittleEndian.PutUint16(header[12:14], uint16(p.Width))
	binary.LittleEndian.PutUint16(header[14:16], uint16(p.Height))
	header[16] = depth
	header[17] = descriptor

	bw := bufio.NewWriter(w)
	if _, err := bw.Write(header[:]); err != nil {
		return fmt.Errorf("failed to write TGA header: %w", err)
	}

	switch p.Channels {
	case 1:
		if _, err := bw.Write(p.Pix); err != nil {
			return fmt.Errorf("failed to write TGA pixels: %w", err)
		}
	case 2:
		for i := 0; i < len(p.Pix); i += 2 {
			g, a := p.Pix[i], p.Pix[i+1]
			if _, err := bw.Write([]byte{g, g, g, a}); err != nil {
				return fmt.Errorf("failed to write TGA pixels: %w", err)
			}
		}
	case 3:
		for i := 0; i < len(p.Pix); i += 3 {
			if _, err := bw.Write([]byte{p.Pix[i+2], p.Pix[i+1], p.Pix[i]}); err != nil {
				return fmt.Errorf("failed to write TGA pixels: %w", err)
			}
		}
	case 4:
		for i := 0; i < len(p.Pix); i += 4 {
			if _, err := bw.Write([]byte{p.Pix[i+2], p.Pix[i+1], p.Pix[i], p.Pix[i+3]}); err != nil {
				return fmt.Errorf("failed to write TGA pixels: %w", err)
			}
		}
	}

	return bw.Flush()
}
