// Package errors defines the error taxonomy shared by the capture pipeline.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind categorizes a failure by the pipeline stage that produced it.
type Kind string

const (
	KindInvalidImage  Kind = "invalid_image"
	KindOCRFailure    Kind = "ocr_failure"
	KindScreenCapture Kind = "screen_capture"
	KindConfig        Kind = "config"
)

// AppError is a pipeline failure with its kind and underlying cause.
type AppError struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *AppError) Unwrap() error { return e.Cause }

// NewInvalidImage reports an image the preprocessor cannot work with.
func NewInvalidImage(message string, cause error) *AppError {
	return &AppError{Kind: KindInvalidImage, Message: message, Cause: cause}
}

// NewOCRFailure reports an error raised inside the OCR engine.
func NewOCRFailure(message string, cause error) *AppError {
	return &AppError{Kind: KindOCRFailure, Message: message, Cause: cause}
}

// NewScreenCapture reports a screenshot denied by the OS or display server.
func NewScreenCapture(message string, cause error) *AppError {
	return &AppError{Kind: KindScreenCapture, Message: message, Cause: cause}
}

// NewConfig reports an invalid configuration value.
func NewConfig(message string, cause error) *AppError {
	return &AppError{Kind: KindConfig, Message: message, Cause: cause}
}

// IsKind reports whether any error in err's chain is an AppError of kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}
