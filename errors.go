package codereview

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	ErrNoFile    = errors.New("no file selected")
	ErrNoReport  = errors.New("no report to export")
	ErrNoReports = errors.New("no reports found")
)

// User-facing messages. Submission failures always show the same text; the
// cause only goes to the log.
const (
	SubmissionFailedMessage = "Upload failed. Please check your backend or API key."
	NoFilePrompt            = "Please select a file first!"
)

// SubmissionError describes a failed upload/review round trip: a transport
// error, a non-success status or an unusable response body.
type SubmissionError struct {
	StatusCode int // HTTP status, 0 when no response was received
	Err        error
}

// Error implements the error interface.
func (e *SubmissionError) Error() string {
	cause := "unknown error"
	if e.Err != nil {
		cause = e.Err.Error()
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("review submission failed (HTTP %d): %s", e.StatusCode, cause)
	}
	return "review submission failed: " + cause
}

// Unwrap returns the underlying cause.
func (e *SubmissionError) Unwrap() error {
	return e.Err
}
