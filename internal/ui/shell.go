// Package ui is the desktop window: a capture button, a preview of the
// preprocessed screenshot, the recognized text and the detected patterns.
package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ironsheep/dark-pattern-detector/internal/config"
	"github.com/ironsheep/dark-pattern-detector/internal/detection"
	"github.com/ironsheep/dark-pattern-detector/internal/imaging"
	"github.com/ironsheep/dark-pattern-detector/internal/logger"
	"github.com/ironsheep/dark-pattern-detector/internal/pipeline"
)

const (
	WindowTitle        = "Dark Pattern Detector"
	CaptureButtonLabel = "Capture Screenshot"

	initialText     = "Extracted Text will appear here"
	initialPatterns = "Detected Dark Patterns will appear here"
)

// Runner performs one capture-and-analyze cycle.
type Runner interface {
	Run() (*pipeline.Result, error)
}

// Shell owns the window and its widgets. It holds no results between
// captures beyond what the widgets display.
type Shell struct {
	window      fyne.Window
	runner      Runner
	previewSize int

	captureButton *widget.Button
	preview       *canvas.Image
	heading       *canvas.Text
	textLabel     *widget.Label
	patternLabel  *widget.Label
}

// New builds the window for app. Clicking the button runs runner
// synchronously on the UI goroutine.
func New(app fyne.App, runner Runner, cfg *config.Config) *Shell {
	s := &Shell{
		runner:      runner,
		previewSize: cfg.PreviewSize,
	}

	s.captureButton = widget.NewButton(CaptureButtonLabel, s.Capture)

	s.preview = canvas.NewImageFromImage(nil)
	s.preview.FillMode = canvas.ImageFillContain
	s.preview.Hide()

	s.textLabel = widget.NewLabel(initialText)
	s.textLabel.Wrapping = fyne.TextWrapWord

	s.heading = canvas.NewText("Dark patterns", cfg.Accent())
	s.heading.TextStyle = fyne.TextStyle{Bold: true}

	s.patternLabel = widget.NewLabel(initialPatterns)
	s.patternLabel.Wrapping = fyne.TextWrapWord

	content := container.NewVBox(
		container.NewCenter(s.captureButton),
		container.NewCenter(s.preview),
		s.textLabel,
		s.heading,
		s.patternLabel,
	)

	s.window = app.NewWindow(WindowTitle)
	s.window.SetContent(container.NewVScroll(content))
	s.window.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))
	return s
}

// Capture is the button handler: run the pipeline and render its outcome.
func (s *Shell) Capture() {
	res, err := s.runner.Run()
	if err != nil {
		logger.WithError(err).Warn("capture failed")
		s.RenderError(err)
		return
	}
	s.Render(res)
}

// Render shows a pipeline result in place of whatever was displayed before.
func (s *Shell) Render(res *pipeline.Result) {
	if res.Preprocessed != nil {
		thumb := imaging.Thumbnail(res.Preprocessed, s.previewSize)
		size := thumb.Bounds().Size()
		s.preview.Image = thumb
		s.preview.SetMinSize(fyne.NewSize(float32(size.X), float32(size.Y)))
		s.preview.Show()
		s.preview.Refresh()
	}

	s.textLabel.SetText(detection.TextPanel(res.Text))
	s.patternLabel.SetText(detection.PatternsPanel(res.Matches))
}

// RenderError replaces the panels with a failure message.
func (s *Shell) RenderError(err error) {
	s.textLabel.SetText("Capture failed: " + err.Error())
	s.patternLabel.SetText(initialPatterns)
}

// ShowAndRun shows the window and blocks in the event loop until it closes.
func (s *Shell) ShowAndRun() {
	s.window.ShowAndRun()
}
