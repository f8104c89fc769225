package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/codereview"
)

// KindOf maps a chroma token type to the semantic kind colored by a theme
// palette.
func KindOf(tt chromalib.TokenType) codereview.TokenKind {
	switch tt {
	// Type keywords (handled separately from other keywords)
	case chromalib.KeywordType:
		return codereview.TokenType

	case chromalib.Keyword, chromalib.KeywordConstant, chromalib.KeywordDeclaration,
		chromalib.KeywordNamespace, chromalib.KeywordPseudo, chromalib.KeywordReserved:
		return codereview.TokenKeyword

	case chromalib.Comment, chromalib.CommentHashbang, chromalib.CommentMultiline,
		chromalib.CommentPreproc, chromalib.CommentPreprocFile, chromalib.CommentSingle,
		chromalib.CommentSpecial:
		return codereview.TokenComment

	case chromalib.String, chromalib.StringAffix, chromalib.StringBacktick, chromalib.StringChar,
		chromalib.StringDelimiter, chromalib.StringDoc, chromalib.StringDouble,
		chromalib.StringEscape, chromalib.StringHeredoc, chromalib.StringInterpol,
		chromalib.StringOther, chromalib.StringRegex, chromalib.StringSingle,
		chromalib.StringSymbol:
		return codereview.TokenString

	case chromalib.Number, chromalib.NumberBin, chromalib.NumberFloat, chromalib.NumberHex,
		chromalib.NumberInteger, chromalib.NumberIntegerLong, chromalib.NumberOct:
		return codereview.TokenNumber

	case chromalib.Operator, chromalib.OperatorWord:
		return codereview.TokenOperator

	// HTML tags and attributes read best in the function and type colors
	case chromalib.NameFunction, chromalib.NameFunctionMagic, chromalib.NameTag:
		return codereview.TokenFunction

	case chromalib.NameClass, chromalib.NameAttribute:
		return codereview.TokenType

	case chromalib.NameConstant, chromalib.NameBuiltin:
		return codereview.TokenConstant

	case chromalib.Punctuation:
		return codereview.TokenPunctuation

	default:
		return codereview.TokenPlain
	}
}
