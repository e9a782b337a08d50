// Package pipeline runs one capture: screenshot, preprocessing, OCR and
// dark-pattern matching, in that order.
package pipeline

import (
	"image"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/dark-pattern-detector/internal/detection"
	"github.com/ironsheep/dark-pattern-detector/internal/imaging"
	"github.com/ironsheep/dark-pattern-detector/internal/logger"
	"github.com/ironsheep/dark-pattern-detector/internal/ocr"
	"github.com/ironsheep/dark-pattern-detector/internal/screen"
)

// Result holds everything one run produces for display.
type Result struct {
	Preprocessed *image.Gray
	Text         string
	Matches      detection.MatchSet
}

// Report is the serializable view of a Result.
type Report struct {
	Width    int                 `json:"width"`
	Height   int                 `json:"height"`
	Text     string              `json:"text"`
	Patterns map[string][]string `json:"patterns"`
	Summary  []string            `json:"summary"`
}

// Report converts r for JSON output.
func (r *Result) Report() *Report {
	patterns := make(map[string][]string, len(r.Matches))
	for c, found := range r.Matches {
		patterns[string(c)] = found
	}

	rep := &Report{
		Text:     r.Text,
		Patterns: patterns,
		Summary:  r.Matches.Lines(),
	}
	if r.Preprocessed != nil {
		rep.Width = r.Preprocessed.Bounds().Dx()
		rep.Height = r.Preprocessed.Bounds().Dy()
	}
	return rep
}

// Orchestrator owns the collaborators of the capture pipeline. It is built
// once at startup; each Run starts from a fresh screenshot and keeps nothing.
type Orchestrator struct {
	screen     screen.Capturer
	recognizer ocr.Recognizer
	matcher    *detection.Matcher
}

// New wires an orchestrator. A nil matcher selects the built-in phrase table.
func New(sc screen.Capturer, rec ocr.Recognizer, m *detection.Matcher) *Orchestrator {
	if m == nil {
		m = detection.NewMatcher()
	}
	return &Orchestrator{screen: sc, recognizer: rec, matcher: m}
}

// Run captures the full screen and analyzes it.
func (o *Orchestrator) Run() (*Result, error) {
	start := time.Now()
	img, err := o.screen.Capture()
	if err != nil {
		return nil, err
	}
	logger.WithField("elapsed", time.Since(start)).Debug("capture finished")

	return o.Analyze(img)
}

// Analyze preprocesses img, extracts its text and matches dark patterns.
func (o *Orchestrator) Analyze(img image.Image) (*Result, error) {
	start := time.Now()
	pre, err := imaging.Preprocess(img)
	if err != nil {
		return nil, err
	}
	preDone := time.Now()

	text, err := ocr.ExtractText(o.recognizer, pre)
	if err != nil {
		logger.WithError(err).Error("text extraction failed")
		return nil, err
	}
	ocrDone := time.Now()

	matches := o.matcher.Match(text)

	logger.WithFields(logrus.Fields{
		"preprocess": preDone.Sub(start),
		"ocr":        ocrDone.Sub(preDone),
		"chars":      len(text),
		"matches":    matches.Total(),
	}).Debug("analysis finished")

	return &Result{Preprocessed: pre, Text: text, Matches: matches}, nil
}
