//go:build !cgo

package ocr

import (
	"image"

	apperrors "github.com/ironsheep/dark-pattern-detector/internal/errors"
)

// Tesseract is unavailable without cgo.
type Tesseract struct{}

var errNoCgo = apperrors.NewOCRFailure("tesseract requires a cgo build", nil)

// NewTesseract always fails in builds without cgo.
func NewTesseract(languages []string, tessdataPrefix string) (*Tesseract, error) {
	return nil, errNoCgo
}

// Recognize always fails in builds without cgo.
func (t *Tesseract) Recognize(img image.Image) ([]string, error) {
	return nil, errNoCgo
}

// Version reports that no engine is linked.
func (t *Tesseract) Version() string { return "unavailable" }

// Close is a no-op.
func (t *Tesseract) Close() error { return nil }
