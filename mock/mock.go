// Package mock provides test doubles for codereview interfaces.
package mock

import (
	"context"

	"github.com/fwojciec/codereview"
)

// Compile-time interface verification.
var (
	_ codereview.Reviewer      = (*Reviewer)(nil)
	_ codereview.Exporter      = (*Exporter)(nil)
	_ codereview.DocumentSaver = (*DocumentSaver)(nil)
	_ codereview.ReportLoader  = (*ReportLoader)(nil)
	_ codereview.ReportSaver   = (*ReportSaver)(nil)
	_ codereview.ThemeStore    = (*ThemeStore)(nil)
	_ codereview.Clipboard     = (*Clipboard)(nil)
	_ codereview.Tokenizer     = (*Tokenizer)(nil)
	_ codereview.Viewer        = (*Viewer)(nil)
)

// Reviewer is a mock implementation of codereview.Reviewer.
type Reviewer struct {
	ReviewFn func(ctx context.Context, file *codereview.File) (*codereview.Report, error)
}

func (r *Reviewer) Review(ctx context.Context, file *codereview.File) (*codereview.Report, error) {
	return r.ReviewFn(ctx, file)
}

// Exporter is a mock implementation of codereview.Exporter.
type Exporter struct {
	ExportFn func(report *codereview.Report) (*codereview.Document, error)
}

func (e *Exporter) Export(report *codereview.Report) (*codereview.Document, error) {
	return e.ExportFn(report)
}

// DocumentSaver is a mock implementation of codereview.DocumentSaver.
type DocumentSaver struct {
	SaveFn func(doc *codereview.Document) (string, error)
}

func (s *DocumentSaver) Save(doc *codereview.Document) (string, error) {
	return s.SaveFn(doc)
}

// ReportLoader is a mock implementation of codereview.ReportLoader.
type ReportLoader struct {
	LoadFn func(path string) ([]codereview.Report, error)
}

func (l *ReportLoader) Load(path string) ([]codereview.Report, error) {
	return l.LoadFn(path)
}

// ReportSaver is a mock implementation of codereview.ReportSaver.
type ReportSaver struct {
	SaveFn func(path string, report *codereview.Report) error
}

func (s *ReportSaver) Save(path string, report *codereview.Report) error {
	return s.SaveFn(path, report)
}

// ThemeStore is a mock implementation of codereview.ThemeStore.
type ThemeStore struct {
	LoadThemeFn func(ctx context.Context) (codereview.ThemeMode, error)
	SaveThemeFn func(ctx context.Context, mode codereview.ThemeMode) error
}

func (s *ThemeStore) LoadTheme(ctx context.Context) (codereview.ThemeMode, error) {
	return s.LoadThemeFn(ctx)
}

func (s *ThemeStore) SaveTheme(ctx context.Context, mode codereview.ThemeMode) error {
	return s.SaveThemeFn(ctx, mode)
}

// Clipboard is a mock implementation of codereview.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}

// Tokenizer is a mock implementation of codereview.Tokenizer.
type Tokenizer struct {
	TokenizeLinesFn func(language, source string) [][]codereview.Token
}

func (t *Tokenizer) TokenizeLines(language, source string) [][]codereview.Token {
	return t.TokenizeLinesFn(language, source)
}

// Viewer is a mock implementation of codereview.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, file *codereview.File) error
}

func (v *Viewer) View(ctx context.Context, file *codereview.File) error {
	return v.ViewFn(ctx, file)
}
