package codereview

// ColorPair represents a foreground and background color combination.
// Colors should be hex strings in "#RRGGBB" format (e.g., "#ff0000" for red).
// Empty strings are valid and indicate no color override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for all visual elements of the viewer.
type Styles struct {
	Title      ColorPair // Application title
	Subtitle   ColorPair // Tagline under the title
	CardBorder ColorPair // Border around report cards and the code block
	CardTitle  ColorPair // Card headings
	Body       ColorPair // Paragraph and list text
	Muted      ColorPair // Placeholders and toggle hints
	Diagnostic ColorPair // Preformatted reviewer output
	Error      ColorPair // Submission failure banner
	Prompt     ColorPair // Blocking prompt
	Code       ColorPair // Code block text and background
	LineNumber ColorPair // Line numbers in the code gutter
	StatusBar  ColorPair // Bottom status bar
	Accent     ColorPair // Spinner, active controls
}

// Color is a hex color string such as "#cba6f7".
type Color string

// Palette holds the syntax highlighting colors of a theme.
type Palette struct {
	Background  Color
	Foreground  Color
	Keyword     Color
	String      Color
	Number      Color
	Comment     Color
	Operator    Color
	Function    Color
	Type        Color
	Constant    Color
	Punctuation Color
}

// Style returns the token style for kind. Keywords and types are bold.
func (p Palette) Style(kind TokenKind) Style {
	switch kind {
	case TokenKeyword:
		return Style{Foreground: string(p.Keyword), Bold: true}
	case TokenType:
		return Style{Foreground: string(p.Type), Bold: true}
	case TokenString:
		return Style{Foreground: string(p.String)}
	case TokenNumber:
		return Style{Foreground: string(p.Number)}
	case TokenComment:
		return Style{Foreground: string(p.Comment)}
	case TokenOperator:
		return Style{Foreground: string(p.Operator)}
	case TokenFunction:
		return Style{Foreground: string(p.Function)}
	case TokenConstant:
		return Style{Foreground: string(p.Constant)}
	case TokenPunctuation:
		return Style{Foreground: string(p.Punctuation)}
	default:
		return Style{Foreground: string(p.Foreground)}
	}
}

// Theme provides styles for rendering reports.
// Different implementations provide light/dark variants.
type Theme interface {
	Mode() ThemeMode
	Styles() Styles
	Palette() Palette
}
