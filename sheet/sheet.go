// Package sheet composes contact sheets: single images laying out
// thumbnails of every entry in a list on a grid, the way a viewer shows a
// gallery overview.
package sheet

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/yaznbook/yiv"
	"github.com/yaznbook/yiv/codec"
)

// Compose renders every entry of list as a cell on a grid of the given
// column count, with each thumbnail centered in its cellWidth x cellHeight
// cell on a white canvas.
//
// The list is snapshotted under its lock, so entries added or removed
// concurrently cannot tear the sheet. Fails on an empty list or
// non-positive geometry.
func Compose(list *yiv.List, columns, cellWidth, cellHeight int) (*yiv.Image, error) {
	if columns <= 0 || cellWidth <= 0 || cellHeight <= 0 {
		return nil, fmt.Errorf("invalid sheet geometry: %d columns, %dx%d cells",
			columns, cellWidth, cellHeight)
	}

	var thumbs []*yiv.Image
	list.Batch(func(b *yiv.Batch) {
		for i := 0; i < b.Len(); i++ {
			thumbs = append(thumbs, b.At(i).Thumbnail(cellWidth, cellHeight))
		}
	})
	if len(thumbs) == 0 {
		return nil, fmt.Errorf("cannot compose a sheet from an empty list")
	}

	rows := (len(thumbs) + columns - 1) / columns
	canvas := imaging.New(columns*cellWidth, rows*cellHeight, color.NRGBA{255, 255, 255, 255})

	for i, thumb := range thumbs {
		cell, err := codec.ToImage(thumb.Pixels())
		if err != nil {
			return nil, fmt.Errorf("failed to render cell %d: %w", i, err)
		}
		x := (i%columns)*cellWidth + (cellWidth-thumb.Width())/2
		y := (i/columns)*cellHeight + (cellHeight-thumb.Height())/2
		canvas = imaging.Paste(canvas, cell, image.Pt(x, y))
	}

	return yiv.FromPixels(codec.FromImage(canvas))
}
