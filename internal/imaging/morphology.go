package imaging

import "image"

// The structuring element is a kw x kh rectangle of ones anchored at
// (kw/2, kh/2). Erosion reads the element as is and dilation reads its
// reflection, so opening and closing leave shapes in place even for even
// sizes. Pixels outside the image never participate.

// Dilate replaces each pixel with the maximum under the reflected element.
func Dilate(src *image.Gray, kw, kh int) *image.Gray {
	return morph(src, kw, kh, -1, func(a, b uint8) bool { return a > b })
}

// Erode replaces each pixel with the minimum under the element.
func Erode(src *image.Gray, kw, kh int) *image.Gray {
	return morph(src, kw, kh, 1, func(a, b uint8) bool { return a < b })
}

// CloseGaps is a morphological closing: dilation followed by erosion.
// It fills dark holes smaller than the element.
func CloseGaps(src *image.Gray, kw, kh int) *image.Gray {
	return Erode(Dilate(src, kw, kh), kw, kh)
}

// RemoveSpecks is a morphological opening: erosion followed by dilation.
// It removes bright specks smaller than the element.
func RemoveSpecks(src *image.Gray, kw, kh int) *image.Gray {
	return Dilate(Erode(src, kw, kh), kw, kh)
}

// morph keeps, for each pixel, the neighbor value for which better(candidate,
// current) holds. sign is 1 for the element and -1 for its reflection.
func morph(src *image.Gray, kw, kh, sign int, better func(a, b uint8) bool) *image.Gray {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	ax, ay := kw/2, kh/2
	dst := image.NewGray(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			best := src.Pix[y*src.Stride+x]
			for j := 0; j < kh; j++ {
				sy := y + sign*(j-ay)
				if sy < 0 || sy >= h {
					continue
				}
				row := src.Pix[sy*src.Stride:]
				for i := 0; i < kw; i++ {
					sx := x + sign*(i-ax)
					if sx < 0 || sx >= w {
						continue
					}
					if v := row[sx]; better(v, best) {
						best = v
					}
				}
			}
			dst.Pix[y*dst.Stride+x] = best
		}
	}
	return dst
}
