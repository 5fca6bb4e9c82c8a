// Package codec converts between raw interleaved pixel buffers and on-disk
// raster formats.
//
// Decoding goes through image.Decode with PNG, JPEG, GIF, BMP, TIFF and WebP
// decoders registered, so any of those formats can be read. The channel count
// of the result follows the decoded color model: grayscale images produce one
// channel, images carrying alpha produce four, everything else produces three.
// Samples are always 8 bits per channel, interleaved, row-major.
//
// Encoding supports PNG, JPEG (fixed quality 90), BMP and TGA. The remaining
// declared formats (GIF, TIFF, WebP, HEIF) have no writer and encoding to
// them fails with ErrUnsupportedFormat.
package codec
