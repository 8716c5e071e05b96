package icon

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// FitSize returns the dimensions of a w×h image scaled to fit a size×size
// square with its aspect ratio kept. Both results are at least 1.
func FitSize(w, h, size int) (int, int) {
	if w <= 0 || h <= 0 || size <= 0 {
		return 0, 0
	}
	scale := math.Min(float64(size)/float64(w), float64(size)/float64(h))
	nw := int(math.Round(float64(w) * scale))
	nh := int(math.Round(float64(h) * scale))
	return max(nw, 1), max(nh, 1)
}

// Fit scales img to fit a size×size square, up or down, keeping the aspect
// ratio. Lanczos resampling matches the smooth filtering used for menus.
func Fit(img image.Image, size int) *image.NRGBA {
	b := img.Bounds()
	w, h := FitSize(b.Dx(), b.Dy(), size)
	if w == 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}
	return imaging.Resize(img, w, h, imaging.Lanczos)
}
