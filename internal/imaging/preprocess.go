package imaging

import (
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/convolution"
	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"

	apperrors "github.com/ironsheep/dark-pattern-detector/internal/errors"
)

// Fixed preprocessing parameters.
const (
	ThresholdBlockSize = 11
	ThresholdOffset    = 2.0
	ContrastAlpha      = 1.5
	ContrastBeta       = 0.0
	MorphKernelSize    = 2
)

// Luminance weights (ITU-R BT.601).
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// Preprocess converts a color image into a cleaned, binarized grayscale image
// ready for OCR. The result has the same width and height as img.
func Preprocess(img image.Image) (*image.Gray, error) {
	if img == nil {
		return nil, apperrors.NewInvalidImage("image is nil", nil)
	}
	if img.Bounds().Empty() {
		return nil, apperrors.NewInvalidImage("image has empty bounds", nil)
	}

	gray := Grayscale(img)
	binary := AdaptiveThreshold(gray, ThresholdBlockSize, ThresholdOffset)
	scaled := ScaleContrast(binary, ContrastAlpha, ContrastBeta)
	closed := CloseGaps(scaled, MorphKernelSize, MorphKernelSize)
	return RemoveSpecks(closed, MorphKernelSize, MorphKernelSize), nil
}

// Normalize copies img into an *image.NRGBA whose bounds start at (0,0),
// independent of the source's pixel layout.
func Normalize(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

// Grayscale converts img to single-channel luminance with BT.601 weights.
func Grayscale(img image.Image) *image.Gray {
	return redChannel(effect.GrayscaleWithWeights(Normalize(img), lumaR, lumaG, lumaB))
}

// AdaptiveThreshold binarizes src against a Gaussian-weighted local mean over
// a blockSize x blockSize window. A pixel becomes 255 when it is brighter than
// mean-offset and 0 otherwise.
func AdaptiveThreshold(src *image.Gray, blockSize int, offset float64) *image.Gray {
	kernel := gaussianKernel(blockSize)
	// A bias of 0.5 makes bild round the weighted sum instead of truncating it.
	mean := convolution.Convolve(src, kernel.Normalized(), &convolution.Options{
		Bias:      0.5,
		Wrap:      false,
		KeepAlpha: true,
	})

	sb := src.Bounds()
	mb := mean.Bounds()
	w, h := sb.Dx(), sb.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := float64(src.GrayAt(sb.Min.X+x, sb.Min.Y+y).Y)
			m := float64(mean.RGBAAt(mb.Min.X+x, mb.Min.Y+y).R)
			if v > m-offset {
				dst.Pix[y*dst.Stride+x] = 255
			}
		}
	}
	return dst
}

// gaussianKernel builds a size x size Gaussian kernel using the sigma OpenCV
// derives from an aperture when none is given.
func gaussianKernel(size int) *convolution.Kernel {
	sigma := 0.3*((float64(size)-1)*0.5-1) + 0.8
	radius := size / 2

	weights := make([]float64, size)
	for i := range weights {
		d := float64(i - radius)
		weights[i] = math.Exp(-(d * d) / (2 * sigma * sigma))
	}

	k := convolution.NewKernel(size, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			k.Matrix[y*k.Width+x] = weights[y] * weights[x]
		}
	}
	return k
}

// ScaleContrast maps every pixel v to clamp(round(|alpha*v + beta|), 0, 255).
func ScaleContrast(src *image.Gray, alpha, beta float64) *image.Gray {
	scaled := adjust.Apply(src, func(c color.RGBA) color.RGBA {
		v := scaleAbs(c.R, alpha, beta)
		return color.RGBA{R: v, G: v, B: v, A: c.A}
	})
	return redChannel(scaled)
}

func scaleAbs(v uint8, alpha, beta float64) uint8 {
	f := math.Round(math.Abs(alpha*float64(v) + beta))
	if f > 255 {
		return 255
	}
	return uint8(f)
}

// redChannel copies the R channel of an RGBA image into a new Gray image.
func redChannel(src *image.RGBA) *image.Gray {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride:]
		for x := 0; x < w; x++ {
			dst.Pix[y*dst.Stride+x] = row[x*4]
		}
	}
	return dst
}
