// Package ocr turns preprocessed screen images into text using Tesseract.
//
// The engine is wrapped behind the Recognizer interface so the capture
// pipeline can be exercised without a native OCR installation. ExtractText
// joins the fragments a Recognizer returns into the single string the
// pattern matcher scans.
//
// # Prerequisites
//
// The Tesseract engine (via gosseract/v2) requires a cgo build and the
// Tesseract libraries plus language data on the host:
//   - Ubuntu/Debian: apt-get install libtesseract-dev tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// Without cgo, NewTesseract always fails with an ocr_failure error.
//
// # Engine Lifetime
//
// A Tesseract value is created once at startup and reused for every capture,
// so its model load cost is paid a single time. Calls are serialized with a
// mutex because the underlying client is not safe for concurrent use. Close
// releases the native handle.
//
// # Fragments
//
// The engine is asked for text-line boxes only. Each line is trimmed and
// blank lines are dropped; confidences and coordinates are discarded.
package ocr
