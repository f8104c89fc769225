// Package chroma provides syntax highlighting using the chroma library.
package chroma

import (
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/codereview"
)

// Compile-time interface verification.
var _ codereview.Tokenizer = (*Tokenizer)(nil)

// Tokenizer extracts syntax tokens using chroma.
type Tokenizer struct{}

// NewTokenizer creates a new chroma-based tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// TokenizeLines tokenizes source code with full context, then splits tokens by line.
// This correctly handles multi-line constructs like /* */ comments and docstrings.
// Returns nil if the language is not supported or an error occurs.
// Returns an empty slice for empty source.
func (t *Tokenizer) TokenizeLines(language, source string) [][]codereview.Token {
	if source == "" {
		return [][]codereview.Token{}
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		return nil
	}

	// Coalesce for better performance with consecutive tokens of the same type
	lexer = chromalib.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil
	}

	var allTokens []codereview.Token
	for token := iterator(); token != chromalib.EOF; token = iterator() {
		allTokens = append(allTokens, codereview.Token{
			Text: token.Value,
			Kind: KindOf(token.Type),
		})
	}

	return splitTokensByLine(allTokens)
}

// splitTokensByLine splits a flat list of tokens into per-line token slices.
// Handles tokens that span multiple lines by splitting them at newline boundaries.
// Blank lines are kept as empty slices so line numbers stay aligned.
func splitTokensByLine(tokens []codereview.Token) [][]codereview.Token {
	if len(tokens) == 0 {
		return [][]codereview.Token{}
	}

	var result [][]codereview.Token
	var currentLine []codereview.Token

	for _, tok := range tokens {
		if !strings.Contains(tok.Text, "\n") {
			currentLine = append(currentLine, tok)
			continue
		}

		parts := strings.Split(tok.Text, "\n")
		for i, part := range parts {
			if part != "" {
				currentLine = append(currentLine, codereview.Token{
					Text: part,
					Kind: tok.Kind,
				})
			}
			if i < len(parts)-1 {
				result = append(result, currentLine)
				currentLine = nil
			}
		}
	}

	if len(currentLine) > 0 {
		result = append(result, currentLine)
	}

	return result
}
