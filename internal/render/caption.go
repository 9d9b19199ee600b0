package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// captionPadding is the vertical gap between the bars and the caption
// text, repeated below the text.
const captionPadding = 4

var captionFace = basicfont.Face7x13

// captionBandHeight returns the extra canvas height needed for text, or
// zero when there is none.
func captionBandHeight(text string) int {
	if text == "" {
		return 0
	}
	return captionFace.Metrics().Height.Ceil() + 2*captionPadding
}

// drawCaption renders the display text centered beneath the bars.
// Captions wider than the canvas are clipped at the image bounds.
func drawCaption(dst *image.RGBA, text string, barBottom int) {
	text = norm.NFC.String(text)

	width := dst.Bounds().Dx()
	textWidth := font.MeasureString(captionFace, text).Ceil()
	x := (width - textWidth) / 2
	if x < 0 {
		x = 0
	}
	y := barBottom + captionPadding + captionFace.Metrics().Ascent.Ceil()

	drawer := &font.Drawer{
		Dst:  dst,
		Src:  &image.Uniform{color.Black},
		Face: captionFace,
		Dot:  fixed.P(x, y),
	}
	drawer.DrawString(text)
}
