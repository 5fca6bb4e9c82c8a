package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/histogram"

	"github.com/yaznbook/yiv"
	"github.com/yaznbook/yiv/codec"
	"github.com/yaznbook/yiv/sheet"
)

func run(command string, args []string) error {
	switch command {
	case "info":
		return cmdInfo(args)
	case "convert":
		return cmdConvert(args)
	case "rotate":
		return cmdRotate(args)
	case "scale":
		return cmdScale(args)
	case "filter":
		return cmdFilter(args)
	case "thumb":
		return cmdThumb(args)
	case "region":
		return cmdRegion(args)
	case "sheet":
		return cmdSheet(args)
	default:
		printUsage()
		return fmt.Errorf("unknown command %q", command)
	}
}

// infoResult is the JSON document printed by the info command.
type infoResult struct {
	Path          string           `json:"path"`
	Width         int              `json:"width"`
	Height        int              `json:"height"`
	Channels      int              `json:"channels"`
	HasAlpha      bool             `json:"has_alpha"`
	FileSizeBytes int64            `json:"file_size_bytes"`
	Histogram     map[string][]int `json:"histogram"`
}

func cmdInfo(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: yiv info <file>")
	}
	path := args[0]

	img, err := yiv.Open(path)
	if err != nil {
		return err
	}
	stat, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}
	std, err := codec.ToImage(img.Pixels())
	if err != nil {
		return err
	}

	hist := histogram.NewRGBAHistogram(std)
	result := infoResult{
		Path:          path,
		Width:         img.Width(),
		Height:        img.Height(),
		Channels:      img.Channels(),
		HasAlpha:      img.HasAlpha(),
		FileSizeBytes: stat.Size(),
		Histogram: map[string][]int{
			"r": reduceBins(hist.R.Bins, 8),
			"g": reduceBins(hist.G.Bins, 8),
			"b": reduceBins(hist.B.Bins, 8),
		},
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// reduceBins folds a histogram into n coarse buckets for readable output.
func reduceBins(bins []int, n int) []int {
	if n <= 0 || len(bins) == 0 {
		return nil
	}
	out := make([]int, n)
	for i, v := range bins {
		out[i*n/len(bins)] += v
	}
	return out
}

func cmdConvert(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: yiv convert <in> <out>")
	}
	img, err := yiv.Open(args[0])
	if err != nil {
		return err
	}
	return save(img, args[1])
}

func cmdRotate(args []string) error {
	fs := flag.NewFlagSet("rotate", flag.ContinueOnError)
	dir := fs.String("d", "cw", "rotation direction: cw or ccw")
	if err := fs.Parse(args); err != nil {
		return err
	}
	in, out, err := inOut(fs.Args())
	if err != nil {
		return err
	}

	img, err := yiv.Open(in)
	if err != nil {
		return err
	}
	switch *dir {
	case "cw":
		img.RotateClockwise()
	case "ccw":
		img.RotateCounterClockwise()
	default:
		return fmt.Errorf("unknown rotation direction %q", *dir)
	}
	return save(img, out)
}

func cmdScale(args []string) error {
	fs := flag.NewFlagSet("scale", flag.ContinueOnError)
	factor := fs.Float64("f", 1.0, "scale factor")
	if err := fs.Parse(args); err != nil {
		return err
	}
	in, out, err := inOut(fs.Args())
	if err != nil {
		return err
	}
	if *factor <= 0 {
		return fmt.Errorf("scale factor must be positive, got %v", *factor)
	}

	img, err := yiv.Open(in)
	if err != nil {
		return err
	}
	img.Scale(*factor)
	return save(img, out)
}

func cmdFilter(args []string) error {
	fs := flag.NewFlagSet("filter", flag.ContinueOnError)
	name := fs.String("t", "", "filter name: grayscale, invert, brightness, contrast")
	if err := fs.Parse(args); err != nil {
		return err
	}
	in, out, err := inOut(fs.Args())
	if err != nil {
		return err
	}

	f, err := yiv.ParseFilter(*name)
	if err != nil {
		return err
	}
	img, err := yiv.Open(in)
	if err != nil {
		return err
	}
	img.ApplyFilter(f)
	return save(img, out)
}

func cmdThumb(args []string) error {
	fs := flag.NewFlagSet("thumb", flag.ContinueOnError)
	maxW := fs.Int("w", 128, "maximum thumbnail width")
	maxH := fs.Int("h", 128, "maximum thumbnail height")
	if err := fs.Parse(args); err != nil {
		return err
	}
	in, out, err := inOut(fs.Args())
	if err != nil {
		return err
	}

	img, err := yiv.Open(in)
	if err != nil {
		return err
	}
	return save(img.Thumbnail(*maxW, *maxH), out)
}

func cmdRegion(args []string) error {
	fs := flag.NewFlagSet("region", flag.ContinueOnError)
	x := fs.Int("x", 0, "region left edge")
	y := fs.Int("y", 0, "region top edge")
	w := fs.Int("w", 0, "region width")
	h := fs.Int("h", 0, "region height")
	if err := fs.Parse(args); err != nil {
		return err
	}
	in, out, err := inOut(fs.Args())
	if err != nil {
		return err
	}

	img := &yiv.Image{}
	if err := img.LoadRegion(in, *x, *y, *w, *h); err != nil {
		return err
	}
	return save(img, out)
}

func cmdSheet(args []string) error {
	fs := flag.NewFlagSet("sheet", flag.ContinueOnError)
	cols := fs.Int("cols", 4, "number of grid columns")
	cellW := fs.Int("w", 160, "cell width")
	cellH := fs.Int("h", 120, "cell height")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) < 2 {
		return fmt.Errorf("usage: yiv sheet [-cols N] [-w N] [-h N] <out> <in>...")
	}
	out, inputs := rest[0], rest[1:]

	list := &yiv.List{}
	for _, in := range inputs {
		img, err := yiv.Open(in)
		if err != nil {
			return err
		}
		list.Add(img)
	}
	list.Sort(yiv.ByPath)

	composed, err := sheet.Compose(list, *cols, *cellW, *cellH)
	if err != nil {
		return err
	}
	return save(composed, out)
}

// inOut pulls the input and output paths out of the positional arguments.
func inOut(args []string) (in, out string, err error) {
	if len(args) != 2 {
		return "", "", fmt.Errorf("expected <in> <out>, got %d arguments", len(args))
	}
	return args[0], args[1], nil
}

// save writes img to path in the format named by the path's extension.
func save(img *yiv.Image, path string) error {
	f, err := codec.ParseFormat(filepath.Ext(path))
	if err != nil {
		return err
	}
	return img.SaveAs(path, f)
}
