//go:build cgo

package ocr

import (
	"bytes"
	"fmt"
	"image"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"

	apperrors "github.com/ironsheep/dark-pattern-detector/internal/errors"
)

// Tesseract is a Recognizer backed by a single long-lived gosseract client.
type Tesseract struct {
	mu     sync.Mutex
	client *gosseract.Client
}

// NewTesseract initializes the engine for the given languages (Tesseract
// codes such as "eng"). tessdataPrefix overrides the tessdata directory when
// non-empty.
func NewTesseract(languages []string, tessdataPrefix string) (*Tesseract, error) {
	client := gosseract.NewClient()

	if tessdataPrefix != "" {
		if err := client.SetTessdataPrefix(tessdataPrefix); err != nil {
			client.Close()
			return nil, apperrors.NewOCRFailure("failed to set tessdata path", err)
		}
	}

	if err := client.SetLanguage(languages...); err != nil {
		client.Close()
		return nil, apperrors.NewOCRFailure(fmt.Sprintf("failed to set language %v", languages), err)
	}

	return &Tesseract{client: client}, nil
}

// Recognize returns the trimmed, non-empty text lines Tesseract finds in img.
func (t *Tesseract) Recognize(img image.Image) ([]string, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, apperrors.NewOCRFailure("failed to encode image", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, apperrors.NewOCRFailure("failed to set image", err)
	}

	boxes, err := t.client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, apperrors.NewOCRFailure("OCR failed", err)
	}

	fragments := make([]string, 0, len(boxes))
	for _, box := range boxes {
		if line := strings.TrimSpace(box.Word); line != "" {
			fragments = append(fragments, line)
		}
	}
	return fragments, nil
}

// Version returns the linked Tesseract version.
func (t *Tesseract) Version() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.client.Version()
}

// Close releases the native client.
func (t *Tesseract) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.client.Close()
}
