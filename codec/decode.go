package codec

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Pixels is a decoded image: 8-bit samples, interleaved, row-major, with no
// padding between rows. len(Pix) is always Width*Height*Channels.
type Pixels struct {
	Pix      []byte
	Width    int
	Height   int
	Channels int
}

// Decode reads and decodes an image from r into raw interleaved pixels.
func Decode(r io.Reader) (Pixels, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return Pixels{}, fmt.Errorf("failed to decode image: %w", err)
	}
	return FromImage(img), nil
}

// DecodeFile decodes the image file at path.
func DecodeFile(path string) (Pixels, error) {
	f, err := os.Open(path)
	if err != nil {
		return Pixels{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// FromImage flattens a decoded image into raw interleaved pixels.
//
// The channel count follows the source color model: Gray and Gray16 produce
// one channel, models carrying alpha produce four, everything else produces
// three. 16-bit samples are scaled down to 8 bits.
func FromImage(img image.Image) Pixels {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	switch src := img.(type) {
	case *image.Gray:
		p := Pixels{Pix: make([]byte, w*h), Width: w, Height: h, Channels: 1}
		for y := 0; y < h; y++ {
			copy(p.Pix[y*w:(y+1)*w], src.Pix[y*src.Stride:y*src.Stride+w])
		}
		return p

	case *image.Gray16:
		p := Pixels{Pix: make([]byte, w*h), Width: w, Height: h, Channels: 1}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				// High byte of the big-endian 16-bit sample.
				p.Pix[y*w+x] = src.Pix[y*src.Stride+2*x]
			}
		}
		return p

	case *image.NRGBA:
		p := Pixels{Pix: make([]byte, w*h*4), Width: w, Height: h, Channels: 4}
		for y := 0; y < h; y++ {
			copy(p.Pix[y*w*4:(y+1)*w*4], src.Pix[y*src.Stride:y*src.Stride+w*4])
		}
		return p

	case *image.RGBA, *image.NRGBA64, *image.RGBA64:
		p := Pixels{Pix: make([]byte, w*h*4), Width: w, Height: h, Channels: 4}
		i := 0
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
				p.Pix[i] = c.R
				p.Pix[i+1] = c.G
				p.Pix[i+2] = c.B
				p.Pix[i+3] = c.A
				i += 4
			}
		}
		return p

	default:
		p := Pixels{Pix: make([]byte, w*h*3), Width: w, Height: h, Channels: 3}
		i := 0
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				r, g, bl, _ := img.At(x, y).RGBA()
				p.Pix[i] = uint8(r >> 8)
				p.Pix[i+1] = uint8(g >> 8)
				p.Pix[i+2] = uint8(bl >> 8)
				i += 3
			}
		}
		return p
	}
}

// ToImage wraps raw pixels in a standard image for encoding or composition.
//
// One channel maps to *image.Gray, two to gray-plus-alpha rendered as
// *image.NRGBA, three to opaque *image.NRGBA, four to *image.NRGBA.
func ToImage(p Pixels) (image.Image, error) {
	if len(p.Pix) != p.Width*p.Height*p.Channels {
		return nil, fmt.Errorf("pixel buffer length %d does not match %dx%dx%d",
			len(p.Pix), p.Width, p.Height, p.Channels)
	}

	switch p.Channels {
	case 1:
		img := image.NewGray(image.Rect(0, 0, p.Width, p.Height))
		for y := 0; y < p.Height; y++ {
			copy(img.Pix[y*img.Stride:y*img.Stride+p.Width], p.Pix[y*p.Width:(y+1)*p.Width])
		}
		return img, nil

	case 2:
		img := image.NewNRGBA(image.Rect(0, 0, p.Width, p.Height))
		for i, j := 0, 0; i < len(p.Pix); i, j = i+2, j+4 {
			g, a := p.Pix[i], p.Pix[i+1]
			img.Pix[j], img.Pix[j+1], img.Pix[j+2], img.Pix[j+3] = g, g, g, a
		}
		return img, nil

	case 3:
		img := image.NewNRGBA(image.Rect(0, 0, p.Width, p.Height))
		for i, j := 0, 0; i < len(p.Pix); i, j = i+3, j+4 {
			img.Pix[j] = p.Pix[i]
			img.Pix[j+1] = p.Pix[i+1]
			img.Pix[j+2] = p.Pix[i+2]
			img.Pix[j+3] = 0xff
		}
		return img, nil

	case 4:
		img := image.NewNRGBA(image.Rect(0, 0, p.Width, p.Height))
		for y := 0; y < p.Height; y++ {
			copy(img.Pix[y*img.Stride:y*img.Stride+p.Width*4], p.Pix[y*p.Width*4:(y+1)*p.Width*4])
		}
		return img, nil

	default:
		return nil, fmt.Errorf("unsupported channel count %d", p.Channels)
	}
}
