// Package yiv is a small image manipulation library: load a raster file
// (fully or as a sub-rectangle) into a raw pixel buffer, apply geometric
// transforms and per-pixel filters, write the result back out, and keep
// loaded images in a thread-safe ordered list.
//
// # Pixel Model
//
// An Image owns a contiguous byte buffer of 8-bit samples, interleaved and
// row-major, with the channel count taken from the decoded file (1 = gray,
// 3 = RGB, 4 = RGBA). The buffer length is always exactly
// width*height*channels; every operation that changes dimensions replaces
// the buffer and the dimensions together.
//
// # Thread Safety
//
// List is safe for concurrent use; every method holds the list's lock for
// its own duration, and Batch holds it across a whole composite sequence.
// Image carries no locking of its own. A single Image mutated from several
// goroutines must be synchronized by the caller, for example inside a
// List.Batch block.
//
// # Error Handling
//
// Expected failures (unreadable file, undecodable data, invalid region,
// unsupported output format) are reported as error returns and leave the
// receiver untouched. Out-of-range list indices are not errors: mutation is
// a no-op and lookup returns nil.
package yiv
