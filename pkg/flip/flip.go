// Package flip writes 180-degree rotated copies of card images.
//
// Each file is processed on its own: a file that cannot be read, decoded or
// written is reported and the remaining files are still processed.
package flip

import (
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"cardfetch/pkg/logger"
	"cardfetch/pkg/ui"
)

// Result is the outcome for one requested file
type Result struct {
	Name   string
	Output string
	Err    error
}

// Flipper rotates image files in place, writing a sibling copy
type Flipper struct {
	quality int
	suffix  string
	logger  logger.Logger
	printer ui.Printer
}

// New creates a Flipper. JPEG output uses quality, clamped to 1..100.
func New(quality int, suffix string, log logger.Logger, printer ui.Printer) *Flipper {
	if quality < 1 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}
	if log == nil {
		log = logger.GetLogger()
	}
	if printer == nil {
		printer = ui.NewConsole(nil)
	}
	return &Flipper{quality: quality, suffix: suffix, logger: log, printer: printer}
}

// Run flips every name found in dir and returns one Result per name, in order
func (f *Flipper) Run(dir string, names []string) []Result {
	results := make([]Result, 0, len(names))

	for _, name := range names {
		res := Result{Name: name, Output: FlippedName(name, f.suffix)}
		res.Err = f.flipFile(filepath.Join(dir, name), filepath.Join(dir, res.Output))

		if res.Err != nil {
			f.printer.Error(fmt.Sprintf("Error processing %s: %v", name, res.Err))
			f.logger.WithError(res.Err).WarnWithFields("Flip failed", map[string]interface{}{"file": name})
		} else {
			f.printer.Success(fmt.Sprintf("Created %s", res.Output))
			f.logger.DebugWithFields("Flipped image written", map[string]interface{}{
				"file":   name,
				"output": res.Output,
			})
		}
		results = append(results, res)
	}

	f.printer.Info("Finished creating flipped wildcard images")
	return results
}

func (f *Flipper) flipFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	img, format, err := image.Decode(in)
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}
	f.logger.DebugWithFields("Decoded image", map[string]interface{}{"file": src, "format": format})

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	err = f.encode(out, Rotate180(img), filepath.Ext(dst))
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(dst)
		return fmt.Errorf("failed to write %s: %w", filepath.Base(dst), err)
	}
	return nil
}

func (f *Flipper) encode(w io.Writer, img image.Image, ext string) error {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	default:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: f.quality})
	}
}

// Rotate180 returns img turned half a revolution. The result's bounds start
// at (0,0) and output pixel (x,y) is input pixel (W-1-x, H-1-y).
func Rotate180(img image.Image) *image.RGBA {
	b := img.Bounds()
	src := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(src, src.Bounds(), img, b.Min, draw.Src)

	w, h := b.Dx(), b.Dy()
	dst := image.NewRGBA(src.Bounds())
	for y := 0; y < h; y++ {
		srcRow := src.Pix[(h-1-y)*src.Stride:]
		dstRow := dst.Pix[y*dst.Stride:]
		for x := 0; x < w; x++ {
			copy(dstRow[x*4:x*4+4], srcRow[(w-1-x)*4:(w-1-x)*4+4])
		}
	}
	return dst
}

// FlippedName inserts suffix before the extension of name
func FlippedName(name, suffix string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + suffix + ext
}
