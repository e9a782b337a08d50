package imaging

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	apperrors "github.com/ironsheep/dark-pattern-detector/internal/errors"
)

// createStripeImage draws a vertical black stripe on a white background.
func createStripeImage(width, height, x1, x2 int) *image.RGBA {
	img := solidImage(width, height, color.White)
	for y := 0; y < height; y++ {
		for x := x1; x < x2; x++ {
			img.Set(x, y, color.Black)
		}
	}
	return img
}

func TestPreprocess_PreservesDimensions(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
	}{
		{"rgba", solidImage(37, 21, color.RGBA{10, 200, 30, 255})},
		{"gray", image.NewGray(image.Rect(0, 0, 15, 40))},
		{"offset bounds", image.NewNRGBA(image.Rect(5, 7, 25, 19))},
		{"single pixel", solidImage(1, 1, color.White)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Preprocess(tt.img)
			if err != nil {
				t.Fatalf("Preprocess failed: %v", err)
			}
			in := tt.img.Bounds()
			if out.Bounds().Dx() != in.Dx() || out.Bounds().Dy() != in.Dy() {
				t.Errorf("dimensions: got %dx%d, want %dx%d",
					out.Bounds().Dx(), out.Bounds().Dy(), in.Dx(), in.Dy())
			}
		})
	}
}

func TestPreprocess_Deterministic(t *testing.T) {
	img := createStripeImage(40, 30, 15, 25)

	first, err := Preprocess(img)
	if err != nil {
		t.Fatalf("Preprocess failed: %v", err)
	}
	second, err := Preprocess(img)
	if err != nil {
		t.Fatalf("Preprocess failed: %v", err)
	}
	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("Preprocess output differs between identical runs")
	}
}

func TestPreprocess_OutputIsBinary(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.Set(x, y, color.RGBA{uint8(x * 8), uint8(y * 8), uint8((x + y) * 4), 255})
		}
	}

	out, err := Preprocess(img)
	if err != nil {
		t.Fatalf("Preprocess failed: %v", err)
	}
	for i, v := range out.Pix {
		if v != 0 && v != 255 {
			t.Fatalf("pixel %d has value %d, want 0 or 255", i, v)
		}
	}
}

func TestPreprocess_UniformImageIsWhite(t *testing.T) {
	for _, c := range []color.Color{color.White, color.Black, color.RGBA{128, 64, 200, 255}} {
		out, err := Preprocess(solidImage(20, 20, c))
		if err != nil {
			t.Fatalf("Preprocess failed: %v", err)
		}
		for i, v := range out.Pix {
			if v != 255 {
				t.Fatalf("color %v: pixel %d = %d, want 255", c, i, v)
			}
		}
	}
}

func TestPreprocess_KeepsStripeEdges(t *testing.T) {
	out, err := Preprocess(createStripeImage(40, 40, 15, 25))
	if err != nil {
		t.Fatalf("Preprocess failed: %v", err)
	}

	if v := out.GrayAt(2, 20).Y; v != 255 {
		t.Errorf("background pixel: got %d, want 255", v)
	}
	if v := out.GrayAt(18, 20).Y; v != 0 {
		t.Errorf("stripe pixel near the edge: got %d, want 0", v)
	}
}

func TestPreprocess_InvalidImage(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
	}{
		{"nil", nil},
		{"empty bounds", image.NewRGBA(image.Rect(0, 0, 0, 10))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Preprocess(tt.img)
			if !apperrors.IsKind(err, apperrors.KindInvalidImage) {
				t.Errorf("expected invalid_image error, got %v", err)
			}
		})
	}
}

func TestAdaptiveThreshold_BrighterThanMeanMinusOffset(t *testing.T) {
	// a flat image sits exactly at its local mean, which is above mean-offset
	src := image.NewGray(image.Rect(0, 0, 12, 12))
	for i := range src.Pix {
		src.Pix[i] = 90
	}

	out := AdaptiveThreshold(src, ThresholdBlockSize, ThresholdOffset)
	for i, v := range out.Pix {
		if v != 255 {
			t.Fatalf("pixel %d = %d, want 255", i, v)
		}
	}

	// a negative offset flips the comparison for the same flat image
	out = AdaptiveThreshold(src, ThresholdBlockSize, -ThresholdOffset)
	for i, v := range out.Pix {
		if v != 0 {
			t.Fatalf("pixel %d = %d, want 0 with negative offset", i, v)
		}
	}
}

func TestGrayscale_LumaWeights(t *testing.T) {
	tests := []struct {
		name string
		c    color.RGBA
		want uint8
	}{
		{"black", color.RGBA{0, 0, 0, 255}, 0},
		{"white", color.RGBA{255, 255, 255, 255}, 255},
		{"red", color.RGBA{255, 0, 0, 255}, 76},
		{"blue", color.RGBA{0, 0, 255, 255}, 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := solidImage(6, 4, tt.c)
			gray := Grayscale(img)

			if b := gray.Bounds(); b.Dx() != 6 || b.Dy() != 4 {
				t.Fatalf("bounds: got %v", b)
			}
			if got := gray.GrayAt(3, 2).Y; got != tt.want {
				t.Errorf("luma: got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGaussianKernel(t *testing.T) {
	k := gaussianKernel(ThresholdBlockSize)

	if len(k.Matrix) != ThresholdBlockSize*ThresholdBlockSize {
		t.Fatalf("kernel size: got %d entries", len(k.Matrix))
	}

	center := k.Matrix[5*k.Width+5]
	corner := k.Matrix[0]
	if center <= corner {
		t.Errorf("center weight %f should exceed corner weight %f", center, corner)
	}
	if k.Matrix[5*k.Width+0] != k.Matrix[5*k.Width+10] {
		t.Error("kernel should be symmetric")
	}
}

func TestScaleContrast(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 1))
	copy(src.Pix, []uint8{0, 100, 170, 255})

	out := ScaleContrast(src, ContrastAlpha, ContrastBeta)
	want := []uint8{0, 150, 255, 255}
	for i, v := range want {
		if out.Pix[i] != v {
			t.Errorf("pixel %d: got %d, want %d", i, out.Pix[i], v)
		}
	}
}

func TestScaleAbs(t *testing.T) {
	tests := []struct {
		v           uint8
		alpha, beta float64
		want        uint8
	}{
		{10, 1.5, 0, 15},
		{11, 1.5, 0, 17}, // 16.5 rounds away from zero
		{200, 1.5, 0, 255},
		{10, 1, -30, 20}, // absolute value
	}
	for _, tt := range tests {
		if got := scaleAbs(tt.v, tt.alpha, tt.beta); got != tt.want {
			t.Errorf("scaleAbs(%d, %v, %v) = %d, want %d", tt.v, tt.alpha, tt.beta, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 14, 13))
	src.Set(10, 10, color.RGBA{1, 2, 3, 255})

	out := Normalize(src)
	if out.Bounds().Min != (image.Point{}) {
		t.Errorf("Normalize should rebase to origin, got %v", out.Bounds())
	}
	if out.Bounds().Dx() != 4 || out.Bounds().Dy() != 3 {
		t.Errorf("dimensions: got %v", out.Bounds())
	}
	if c := out.NRGBAAt(0, 0); c.R != 1 || c.G != 2 || c.B != 3 {
		t.Errorf("first pixel: got %v", c)
	}
}
