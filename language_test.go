package codereview_test

import (
	"testing"

	"github.com/fwojciec/codereview"
	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		want string
	}{
		{"app.py", "python"},
		{"main.js", "javascript"},
		{"engine.cpp", "cpp"},
		{"Main.java", "java"},
		{"index.html", "html"},
		{"notes.txt", "text"},
		{"archive.tar.py", "python"},
		{"Makefile", "text"},
		{"", "text"},
		{"trailing.", "text"},
		{"UPPER.PY", "text"},
		{".py", "python"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, codereview.DetectLanguage(tc.name), "name: %q", tc.name)
	}
}

func TestExtensionDetector(t *testing.T) {
	t.Parallel()

	var d codereview.LanguageDetector = codereview.ExtensionDetector{}

	assert.Equal(t, "python", d.DetectFromName("a.py"))
	assert.Equal(t, codereview.PlainText, d.DetectFromName("a.rs"))
}

func TestNewFile(t *testing.T) {
	t.Parallel()

	f := codereview.NewFile("/tmp/src/main.py")

	assert.Equal(t, "main.py", f.Name)
	assert.Equal(t, "/tmp/src/main.py", f.Path)
}
