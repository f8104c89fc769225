package bubbletea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const tabWidth = 8

// ExpandTabs replaces tabs with spaces up to the next 8-column stop. col is
// the display column s starts at, so a token in the middle of a code line
// expands the same way it would in the whole line.
func ExpandTabs(s string, col int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}

	var sb strings.Builder
	for _, r := range s {
		if r != '\t' {
			sb.WriteRune(r)
			col += lipgloss.Width(string(r))
			continue
		}
		n := tabWidth - col%tabWidth
		sb.WriteString(strings.Repeat(" ", n))
		col += n
	}
	return sb.String()
}

// expandBlock expands tabs in each line of a multi-line block, such as raw
// reviewer output.
func expandBlock(text string) string {
	if !strings.ContainsRune(text, '\t') {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = ExpandTabs(line, 0)
	}
	return strings.Join(lines, "\n")
}
