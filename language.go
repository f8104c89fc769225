package codereview

import "strings"

// PlainText is the language used when no mapping applies.
const PlainText = "text"

// languages maps file extensions to highlighter language names.
var languages = map[string]string{
	"py":   "python",
	"js":   "javascript",
	"cpp":  "cpp",
	"java": "java",
	"html": "html",
}

// DetectLanguage returns the highlighter language for filename, taken from
// the text after the last dot. Unknown or missing extensions yield PlainText.
func DetectLanguage(filename string) string {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return PlainText
	}
	if lang, ok := languages[filename[i+1:]]; ok {
		return lang
	}
	return PlainText
}

// Compile-time interface verification.
var _ LanguageDetector = ExtensionDetector{}

// ExtensionDetector implements LanguageDetector with DetectLanguage.
type ExtensionDetector struct{}

// DetectFromName returns DetectLanguage(name).
func (ExtensionDetector) DetectFromName(name string) string {
	return DetectLanguage(name)
}
