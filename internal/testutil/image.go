package testutil

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// IsBlack reports whether c is closer to black than to white. Barcode
// renders are strictly black on white, so a mid-range threshold is
// enough.
func IsBlack(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return (r+g+b)/3 < 0x8000
}

// RowCells samples one pixel per module cell along row y, starting at
// offsetX, and returns the observed '1'/'0' string. Render tests use it
// to recover the bit pattern a barcode image was drawn from.
func RowCells(img image.Image, y, offsetX, moduleWidth, cells int) string {
	out := make([]byte, cells)
	for i := range cells {
		x := offsetX + i*moduleWidth + moduleWidth/2
		if IsBlack(img.At(x, y)) {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out)
}

// AssertWhiteColumn fails the test unless every pixel of column x
// between y0 and y1 is white. Used to check quiet zones and separators.
func AssertWhiteColumn(t *testing.T, img image.Image, x, y0, y1 int) {
	t.Helper()

	for y := y0; y < y1; y++ {
		require.False(t, IsBlack(img.At(x, y)),
			"expected white pixel at (%d,%d)", x, y)
	}
}

// CreateTestImage creates a solid-color image with the given dimensions.
func CreateTestImage(width, height int, backgroundColor color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{backgroundColor}, image.Point{}, draw.Src)
	return img
}

// SaveImage saves an image as PNG to the specified path.
func SaveImage(t *testing.T, img image.Image, path string) {
	t.Helper()

	require.NoError(t, EnsureDir(filepath.Dir(path)), "Failed to create directory for %s", path)

	file, err := os.Create(path) //nolint:gosec // G304: Test file creation with controlled path
	require.NoError(t, err, "Failed to create file %s", path)
	defer func() {
		require.NoError(t, file.Close())
	}()

	err = png.Encode(file, img)
	require.NoError(t, err, "Failed to encode PNG image")
}

// LoadImage loads an image from the specified path.
func LoadImage(t *testing.T, path string) image.Image {
	t.Helper()

	file, err := os.Open(path) //nolint:gosec // G304: Test file reading with controlled path
	require.NoError(t, err, "Failed to open image file %s", path)
	defer func() { _ = file.Close() }()

	img, _, err := image.Decode(file)
	require.NoError(t, err, "Failed to decode image")

	return img
}

// SameImages reports whether two images have identical bounds and
// pixels. Deterministic renders must reproduce exactly.
func SameImages(img1, img2 image.Image) bool {
	if img1.Bounds() != img2.Bounds() {
		return false
	}

	bounds := img1.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r1, g1, b1, a1 := img1.At(x, y).RGBA()
			r2, g2, b2, a2 := img2.At(x, y).RGBA()
			if r1 != r2 || g1 != g2 || b1 != b2 || a1 != a2 {
				return false
			}
		}
	}
	return true
}

// RequireFileNonEmpty fails the test unless path exists and has content.
func RequireFileNonEmpty(t *testing.T, path string) {
	t.Helper()

	info, err := os.Stat(path)
	require.NoError(t, err, "expected %s to exist", path)
	require.Positive(t, info.Size(), fmt.Sprintf("expected %s to be non-empty", path))
}
