// Package screen grabs the current contents of the display.
package screen

import (
	"image"

	"github.com/vova616/screenshot"

	apperrors "github.com/ironsheep/dark-pattern-detector/internal/errors"
	"github.com/ironsheep/dark-pattern-detector/internal/logger"
)

// Capturer captures one full-screen image per call.
type Capturer interface {
	Capture() (image.Image, error)
}

// grabFunc is the platform capture primitive.
type grabFunc func() (*image.RGBA, error)

// Display captures the primary screen through the OS display server.
type Display struct {
	grab grabFunc
}

// NewDisplay creates a capturer for the primary screen.
func NewDisplay() *Display {
	return &Display{grab: screenshot.CaptureScreen}
}

// Capture returns the current full-screen image in the host's native layout.
// Permission or display-server failures are reported as screen_capture errors.
func (d *Display) Capture() (image.Image, error) {
	img, err := d.grab()
	if err != nil {
		logger.WithError(err).Error("screen capture failed")
		return nil, apperrors.NewScreenCapture("failed to capture screen", err)
	}
	if img == nil || img.Bounds().Empty() {
		return nil, apperrors.NewScreenCapture("display returned an empty frame", nil)
	}

	logger.WithField("size", img.Bounds().Size().String()).Debug("screen captured")
	return img, nil
}
