// Package markdown renders review reports as GitHub-flavored Markdown using
// the nao1215/markdown library.
package markdown

import (
	"io"
	"strings"

	"github.com/fwojciec/codereview"
	"github.com/nao1215/markdown"
)

// Writer outputs reports in Markdown format.
type Writer struct {
	output      io.Writer
	includeCode bool
}

// Option configures a Writer.
type Option func(*Writer)

// WithCode appends the reviewed source as a fenced code block.
func WithCode() Option {
	return func(w *Writer) {
		w.includeCode = true
	}
}

// NewWriter creates a Writer that outputs to the given writer.
func NewWriter(output io.Writer, opts ...Option) *Writer {
	w := &Writer{output: output}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the report. A nil report returns ErrNoReport.
func (w *Writer) Write(r *codereview.Report) error {
	if r == nil {
		return codereview.ErrNoReport
	}

	md := markdown.NewMarkdown(w.output)
	md.H1("Code Review Assistant")
	md.PlainTextf("File: `%s`", r.FileName)
	md.PlainText("")

	if !r.Review.Notes.IsEmpty() {
		md.Warningf("The reviewer returned output it could not structure.")
		md.PlainText("")
		md.CodeBlocks(markdown.SyntaxHighlight(codereview.PlainText), r.Review.Notes.Text)
		md.PlainText("")
	}

	for _, frag := range codereview.Fragments(r) {
		md.H2(frag.Title)
		md.PlainText("")
		switch frag.Kind {
		case codereview.FragmentPlaceholder:
			md.PlainTextf("_%s_", frag.Text)
		case codereview.FragmentDiagnostic:
			md.CodeBlocks(markdown.SyntaxHighlight(codereview.PlainText), frag.Text)
		case codereview.FragmentList:
			if len(frag.Items) > 0 {
				items := make([]string, len(frag.Items))
				for i, item := range frag.Items {
					items[i] = escapeInline(item)
				}
				md.BulletList(items...)
			}
		default:
			md.PlainText(escapeText(frag.Text))
		}
		md.PlainText("")
	}

	if w.includeCode && r.Code != "" {
		md.H2("Code")
		md.PlainText("")
		md.CodeBlocks(markdown.SyntaxHighlight(codereview.DetectLanguage(r.FileName)), r.Code)
		md.PlainText("")
	}

	return md.Build()
}

var punctuation = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"#", `\#`,
	"<", `\<`,
	">", `\>`,
	"|", `\|`,
	"~", `\~`,
)

// escapeText makes reviewer text render literally. Characters with inline
// meaning are backslash-escaped, as are markers that would start a block at
// the beginning of a line.
func escapeText(s string) string {
	lines := strings.Split(punctuation.Replace(s), "\n")
	for i, line := range lines {
		lines[i] = escapeLineStart(line)
	}
	return strings.Join(lines, "\n")
}

// escapeInline escapes text that must stay on one line, such as a list item.
func escapeInline(s string) string {
	return escapeText(strings.Join(strings.Fields(s), " "))
}

func escapeLineStart(line string) string {
	body := strings.TrimLeft(line, " \t")
	indent := line[:len(line)-len(body)]
	if body == "" {
		return line
	}
	switch body[0] {
	case '-', '+', '=':
		return indent + `\` + body
	}
	digits := 0
	for digits < len(body) && body[digits] >= '0' && body[digits] <= '9' {
		digits++
	}
	if digits > 0 && digits < len(body) && (body[digits] == '.' || body[digits] == ')') {
		return indent + body[:digits] + `\` + body[digits:]
	}
	return line
}
