package codereview

// TokenKind classifies a syntax token for coloring.
type TokenKind int

// Token kinds.
const (
	TokenPlain TokenKind = iota
	TokenKeyword
	TokenType
	TokenString
	TokenNumber
	TokenComment
	TokenOperator
	TokenFunction
	TokenConstant
	TokenPunctuation
)

// Token represents a syntax-highlighted segment of code.
type Token struct {
	Text string    // The text content of this token
	Kind TokenKind // Semantic category, colored by the active palette
}

// Style represents the visual styling for a token.
type Style struct {
	Foreground string // Hex color code (e.g., "#ff0000") or empty for default
	Bold       bool   // Whether the text should be bold
}

// Tokenizer extracts syntax tokens from source code.
type Tokenizer interface {
	// TokenizeLines splits source into per-line tokens for the given language.
	// Returns nil if the language is not supported.
	TokenizeLines(language, source string) [][]Token
}

// LanguageDetector determines the highlighter language from a file name.
type LanguageDetector interface {
	// DetectFromName returns the language name for the given file name.
	// It always returns a value; PlainText when nothing else applies.
	DetectFromName(name string) string
}
