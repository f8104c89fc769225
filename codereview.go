// Package codereview provides domain types for submitting source files to a
// review service and presenting the returned feedback.
package codereview

import (
	"context"
	"path/filepath"
)

// File is a source file selected for review.
type File struct {
	Name string // Base name sent as the multipart filename
	Path string // Location on disk, read at submission time
}

// NewFile returns a File handle for the given path.
func NewFile(path string) *File {
	return &File{Name: filepath.Base(path), Path: path}
}

// AcceptedExtensions lists the extensions offered by the file picker.
// The list is advisory: explicit paths are submitted without re-validation.
var AcceptedExtensions = []string{".py", ".js", ".cpp", ".java", ".html", ".txt"}

// Document is a rendered export ready to be written somewhere.
type Document struct {
	Name  string // Suggested file name, e.g. "CodeReview_main.py.pdf"
	Pages int
	Data  []byte
}

// Reviewer submits a file to the review service.
type Reviewer interface {
	// Review uploads the file and returns the service's report verbatim.
	// Any failure of the round trip is returned as a *SubmissionError.
	Review(ctx context.Context, file *File) (*Report, error)
}

// Exporter converts a report into a document.
type Exporter interface {
	Export(report *Report) (*Document, error)
}

// DocumentSaver persists an exported document and returns where it went.
type DocumentSaver interface {
	Save(doc *Document) (string, error)
}

// ReportLoader loads previously received reports from a source.
type ReportLoader interface {
	Load(path string) ([]Report, error)
}

// ReportSaver appends a report to a history file.
type ReportSaver interface {
	Save(path string, report *Report) error
}

// ThemeStore persists the theme flag.
type ThemeStore interface {
	LoadTheme(ctx context.Context) (ThemeMode, error)
	SaveTheme(ctx context.Context, mode ThemeMode) error
}

// Clipboard provides copy-to-clipboard functionality.
type Clipboard interface {
	Copy(content string) error
}

// Viewer runs the interactive review UI.
type Viewer interface {
	// View blocks until the user exits. A non-nil file starts selected.
	View(ctx context.Context, file *File) error
}
