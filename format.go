package codereview

import (
	"fmt"
	"strings"
)

// ReportFormatter renders a report as text for terminals and clipboards.
type ReportFormatter interface {
	Format(r *Report) string
}

// TextFormatter implements ReportFormatter with a plain text layout.
type TextFormatter struct{}

// Format renders the report as plain text. A nil report renders as "".
func (f *TextFormatter) Format(r *Report) string {
	if r == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Code review: %s\n", r.FileName))

	if !r.Review.Notes.IsEmpty() {
		sb.WriteString("\nReviewer output\n")
		writeIndented(&sb, r.Review.Notes.Text)
	}

	for _, frag := range Fragments(r) {
		sb.WriteString("\n")
		sb.WriteString(frag.Title)
		sb.WriteString("\n")
		switch frag.Kind {
		case FragmentList:
			for _, item := range frag.Items {
				sb.WriteString(fmt.Sprintf("  • %s\n", item))
			}
		default:
			writeIndented(&sb, frag.Text)
		}
	}

	return sb.String()
}

// writeIndented writes text with every line indented by two spaces.
func writeIndented(sb *strings.Builder, text string) {
	for _, line := range strings.Split(text, "\n") {
		sb.WriteString("  ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
}
