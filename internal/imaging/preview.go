package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// Thumbnail scales img down to fit within a size x size box, preserving the
// aspect ratio. Images that already fit are copied unchanged.
func Thumbnail(img image.Image, size int) *image.NRGBA {
	return imaging.Fit(img, size, size, imaging.Lanczos)
}
