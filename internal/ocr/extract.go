package ocr

import (
	"image"
	"strings"

	apperrors "github.com/ironsheep/dark-pattern-detector/internal/errors"
)

// Recognizer is an OCR engine: it returns the text fragments it finds in img,
// in reading order.
type Recognizer interface {
	Recognize(img image.Image) ([]string, error)
}

// ExtractText runs r on img and joins the fragments with single spaces,
// preserving the engine's order. No fragments yields "" and no error.
// Engine failures are reported as ocr_failure errors and are not retried.
func ExtractText(r Recognizer, img image.Image) (string, error) {
	fragments, err := r.Recognize(img)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindOCRFailure) {
			return "", err
		}
		return "", apperrors.NewOCRFailure("text recognition failed", err)
	}
	return strings.Join(fragments, " "), nil
}
