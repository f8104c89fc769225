package bubbletea

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/codereview"
)

// viewStyles holds the lipgloss styles derived from a theme.
type viewStyles struct {
	title      lipgloss.Style
	subtitle   lipgloss.Style
	border     lipgloss.Style
	cardTitle  lipgloss.Style
	body       lipgloss.Style
	muted      lipgloss.Style
	diagnostic lipgloss.Style
	errorBar   lipgloss.Style
	prompt     lipgloss.Style
	code       lipgloss.Style
	lineNumber lipgloss.Style
	statusBar  lipgloss.Style
	accent     lipgloss.Style
}

func newViewStyles(theme codereview.Theme, renderer *lipgloss.Renderer) viewStyles {
	s := theme.Styles()
	return viewStyles{
		title:      styleFromColorPair(s.Title, renderer).Bold(true),
		subtitle:   styleFromColorPair(s.Subtitle, renderer),
		border:     styleFromColorPair(codereview.ColorPair{Foreground: s.CardBorder.Foreground}, renderer),
		cardTitle:  styleFromColorPair(s.CardTitle, renderer).Bold(true),
		body:       styleFromColorPair(s.Body, renderer),
		muted:      styleFromColorPair(s.Muted, renderer).Italic(true),
		diagnostic: styleFromColorPair(s.Diagnostic, renderer),
		errorBar:   styleFromColorPair(s.Error, renderer).Bold(true).Padding(0, 1),
		prompt:     styleFromColorPair(s.Prompt, renderer).Bold(true).Padding(1, 3),
		code:       styleFromColorPair(s.Code, renderer),
		lineNumber: styleFromColorPair(codereview.ColorPair{Foreground: s.LineNumber.Foreground, Background: s.Code.Background}, renderer),
		statusBar:  styleFromColorPair(s.StatusBar, renderer),
		accent:     styleFromColorPair(s.Accent, renderer),
	}
}

// styleFromColorPair creates a lipgloss style from a ColorPair.
// If renderer is nil, the default lipgloss renderer is used.
func styleFromColorPair(cp codereview.ColorPair, renderer *lipgloss.Renderer) lipgloss.Style {
	style := newStyle(renderer)
	if cp.Foreground != "" {
		style = style.Foreground(lipgloss.Color(cp.Foreground))
	}
	if cp.Background != "" {
		style = style.Background(lipgloss.Color(cp.Background))
	}
	return style
}

func newStyle(renderer *lipgloss.Renderer) lipgloss.Style {
	if renderer != nil {
		return renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

// plainTheme carries no colors and stands in when no theme is configured.
type plainTheme struct {
	mode codereview.ThemeMode
}

func (t plainTheme) Mode() codereview.ThemeMode  { return t.mode }
func (t plainTheme) Styles() codereview.Styles   { return codereview.Styles{} }
func (t plainTheme) Palette() codereview.Palette { return codereview.Palette{} }
