package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/codereview"
)

// codeConfig holds the parameters for renderCode.
type codeConfig struct {
	source    string
	fileName  string
	tokenizer codereview.Tokenizer
	detector  codereview.LanguageDetector
	palette   codereview.Palette
	styles    viewStyles
	renderer  *lipgloss.Renderer
	width     int
}

// renderCode renders source with a line-number gutter. Tokens are colored
// with the palette when a tokenizer supports the detected language.
func renderCode(cfg codeConfig) string {
	if cfg.source == "" {
		return ""
	}

	lines := strings.Split(strings.TrimSuffix(cfg.source, "\n"), "\n")

	language := codereview.DetectLanguage(cfg.fileName)
	if cfg.detector != nil {
		language = cfg.detector.DetectFromName(cfg.fileName)
	}
	var tokens [][]codereview.Token
	if cfg.tokenizer != nil {
		tokens = cfg.tokenizer.TokenizeLines(language, cfg.source)
	}

	gutterWidth := digitWidth(len(lines))

	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		gutter := cfg.styles.lineNumber.Render(fmt.Sprintf(" %*d  ", gutterWidth, i+1))
		sb.WriteString(gutter)

		used := lipgloss.Width(gutter)
		if tokens != nil && i < len(tokens) {
			used += writeTokens(&sb, tokens[i], cfg, used)
		} else {
			text := ExpandTabs(line, 0)
			sb.WriteString(cfg.styles.code.Render(text))
			used += lipgloss.Width(text)
		}

		// Pad to full width so the code background forms a block.
		if used < cfg.width {
			sb.WriteString(cfg.styles.code.Render(strings.Repeat(" ", cfg.width-used)))
		}
	}
	return sb.String()
}

// writeTokens writes a line's tokens and returns the display width written.
func writeTokens(sb *strings.Builder, tokens []codereview.Token, cfg codeConfig, startCol int) int {
	base := cfg.styles.code
	col := startCol
	for _, tok := range tokens {
		text := ExpandTabs(tok.Text, col-startCol)
		ts := cfg.palette.Style(tok.Kind)

		style := base
		if ts.Foreground != "" {
			style = style.Foreground(lipgloss.Color(ts.Foreground))
		}
		if ts.Bold {
			style = style.Bold(true)
		}
		sb.WriteString(style.Render(text))
		col += lipgloss.Width(text)
	}
	return col - startCol
}

// digitWidth returns the number of decimal digits in n.
func digitWidth(n int) int {
	if n <= 0 {
		return 1
	}
	w := 0
	for n > 0 {
		w++
		n /= 10
	}
	return w
}
