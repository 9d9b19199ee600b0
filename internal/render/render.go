// Package render rasterizes encoded bar patterns into images: one filled
// column per '1' cell, quiet zones on both sides and an optional
// human-readable caption beneath the bars. Rendering is deterministic;
// identical inputs produce identical pixels.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/MeKo-Tech/bargo/internal/barcode"
	"github.com/disintegration/imaging"
)

// Render encodes the barcode and draws it according to cfg. Encoding
// failures (such as the unimplemented UPC-A pattern) propagate; a
// partial image is never produced.
func Render(b *barcode.Barcode, cfg Config) (image.Image, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid render config: %w", err)
	}

	pattern, err := b.Encode()
	if err != nil {
		return nil, fmt.Errorf("encoding %s barcode: %w", b.Format(), err)
	}

	caption := ""
	if cfg.Caption {
		caption = b.DisplayText()
	}

	img := drawPattern(pattern, caption, cfg)

	if cfg.Scale != 1.0 {
		w := int(math.Round(float64(img.Bounds().Dx()) * cfg.Scale))
		h := int(math.Round(float64(img.Bounds().Dy()) * cfg.Scale))
		// Nearest neighbor keeps module edges crisp for scanners.
		return imaging.Resize(img, w, h, imaging.NearestNeighbor), nil
	}
	return img, nil
}

// drawPattern paints the cells of pattern onto a white canvas with the
// configured quiet zone, plus a caption band when text is non-empty.
func drawPattern(pattern, caption string, cfg Config) *image.RGBA {
	modules := cfg.QuietZone*2 + len(pattern)
	width := modules * cfg.ModuleWidth
	height := cfg.Height + captionBandHeight(caption)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)

	for i, cell := range pattern {
		if cell != '1' {
			continue
		}
		x0 := (cfg.QuietZone + i) * cfg.ModuleWidth
		bar := image.Rect(x0, 0, x0+cfg.ModuleWidth, cfg.Height)
		draw.Draw(img, bar, &image.Uniform{color.Black}, image.Point{}, draw.Src)
	}

	if caption != "" {
		drawCaption(img, caption, cfg.Height)
	}
	return img
}
