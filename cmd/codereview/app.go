package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/fwojciec/codereview"
	clog "github.com/fwojciec/codereview/log"
	"github.com/fwojciec/codereview/markdown"
	"golang.org/x/sync/errgroup"
)

// DefaultJobs is the number of reports exported concurrently.
const DefaultJobs = 4

// Errors returned by App.
var (
	ErrSubmissionFailed = errors.New(codereview.SubmissionFailedMessage)
	ErrUnknownFormat    = errors.New("unknown format: want text, markdown or json")
	ErrNoExporter       = errors.New("pdf export is not configured")
)

// Output formats for the review command.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Pinger checks that the review service is reachable.
type Pinger interface {
	Ping(ctx context.Context) (string, error)
}

// App encapsulates the application logic for testing.
type App struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Reviewer  codereview.Reviewer
	Pinger    Pinger
	Exporter  codereview.Exporter
	Documents codereview.DocumentSaver
	Loader    codereview.ReportLoader
	History   codereview.ReportSaver
	Themes    codereview.ThemeStore
	Viewer    codereview.Viewer

	Jobs int // concurrent exports, DefaultJobs when zero
}

// ReviewOptions configures a one-shot review.
type ReviewOptions struct {
	Path   string
	Format string // text, markdown or json
	PDF    bool   // also export the report as a PDF
	Save   string // JSONL file the report is appended to, "" to skip
}

// View starts the interactive viewer, with path selected when non-empty.
func (a *App) View(ctx context.Context, path string) error {
	var file *codereview.File
	if path != "" {
		file = codereview.NewFile(path)
	}
	return a.Viewer.View(ctx, file)
}

// Review submits one file and prints the report.
func (a *App) Review(ctx context.Context, opts ReviewOptions) error {
	format := opts.Format
	if format == "" {
		format = FormatText
	}
	if format != FormatText && format != FormatMarkdown && format != FormatJSON {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if opts.PDF && (a.Exporter == nil || a.Documents == nil) {
		return ErrNoExporter
	}

	file := codereview.NewFile(opts.Path)
	report, err := a.Reviewer.Review(ctx, file)
	if err != nil {
		a.logger().Error("review failed", "file", file.Name, "error", err)
		return ErrSubmissionFailed
	}
	a.logger().Info("review complete", "file", file.Name)

	if opts.Save != "" {
		if err := a.History.Save(opts.Save, report); err != nil {
			return fmt.Errorf("save report: %w", err)
		}
	}

	if err := a.write(report, format); err != nil {
		return err
	}

	if opts.PDF {
		path, err := a.exportPDF(report)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.Stderr, "Saved", path)
	}
	return nil
}

func (a *App) write(r *codereview.Report, format string) error {
	switch format {
	case FormatMarkdown:
		return markdown.NewWriter(a.Stdout, markdown.WithCode()).Write(r)
	case FormatJSON:
		enc := json.NewEncoder(a.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	default:
		f := &codereview.TextFormatter{}
		_, err := io.WriteString(a.Stdout, f.Format(r))
		return err
	}
}

func (a *App) exportPDF(r *codereview.Report) (string, error) {
	doc, err := a.Exporter.Export(r)
	if err != nil {
		return "", fmt.Errorf("export pdf: %w", err)
	}
	path, err := a.Documents.Save(doc)
	if err != nil {
		return "", fmt.Errorf("save pdf: %w", err)
	}
	return path, nil
}

// Export renders every report found in paths to PDF and prints where each
// one was written, in input order. Documents that would share a name get a
// positional suffix, so reports for the same file never overwrite each other.
func (a *App) Export(ctx context.Context, paths []string) error {
	if a.Exporter == nil || a.Documents == nil {
		return ErrNoExporter
	}

	var reports []codereview.Report
	for _, p := range paths {
		rs, err := a.Loader.Load(p)
		if err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
		reports = append(reports, rs...)
	}

	jobs := a.Jobs
	if jobs <= 0 {
		jobs = DefaultJobs
	}

	// Collect results indexed by original position
	docs := make([]*codereview.Document, len(reports))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i := range reports {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc, err := a.Exporter.Export(&reports[i])
			if err != nil {
				return fmt.Errorf("%s: export pdf: %w", reports[i].FileName, err)
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	uniqueNames(docs)

	saved := make([]string, len(docs))
	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, doc := range docs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			path, err := a.Documents.Save(doc)
			if err != nil {
				return fmt.Errorf("%s: save pdf: %w", reports[i].FileName, err)
			}
			saved[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, p := range saved {
		fmt.Fprintln(a.Stdout, p)
	}
	return nil
}

// uniqueNames renames documents in place so no two share a name. The first
// document keeps its name; later ones get "-2", "-3" and so on before the
// extension.
func uniqueNames(docs []*codereview.Document) {
	used := make(map[string]bool, len(docs))
	for _, doc := range docs {
		name := doc.Name
		ext := filepath.Ext(name)
		stem := strings.TrimSuffix(name, ext)
		for n := 2; used[name]; n++ {
			name = fmt.Sprintf("%s-%d%s", stem, n, ext)
		}
		used[name] = true
		doc.Name = name
	}
}

// Ping prints the review service's greeting.
func (a *App) Ping(ctx context.Context) error {
	msg, err := a.Pinger.Ping(ctx)
	if err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	fmt.Fprintln(a.Stdout, msg)
	return nil
}

// Theme prints the persisted theme, or changes it when arg is light, dark
// or toggle.
func (a *App) Theme(ctx context.Context, arg string) error {
	c, err := codereview.NewThemeController(ctx, a.Themes)
	if err != nil {
		return err
	}

	switch arg {
	case "":
	case "toggle":
		if _, err := c.Toggle(ctx); err != nil {
			return err
		}
	default:
		mode, err := codereview.ParseThemeMode(arg)
		if err != nil {
			return err
		}
		if err := c.Set(ctx, mode); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.Stdout, c.Mode())
	return nil
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return clog.Discard()
	}
	return a.Logger
}
