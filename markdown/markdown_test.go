package markdown_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fwojciec/codereview"
	"github.com/fwojciec/codereview/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_Write(t *testing.T) {
	t.Parallel()

	report := &codereview.Report{
		FileName: "main.py",
		Code:     "print('hi')\n",
		Review: codereview.Review{
			Readability:   codereview.NewText("Readable."),
			PotentialBugs: codereview.NewList("Off by one", "Unchecked input"),
			Suggestions:   codereview.NewDiagnostic("```raw```"),
		},
	}

	t.Run("writes every section header in order", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, markdown.NewWriter(&buf).Write(report))

		out := buf.String()
		assert.Contains(t, out, "# Code Review Assistant")
		last := -1
		for _, h := range []string{"## Readability", "## Modularity", "## Potential Bugs", "## Suggestions"} {
			idx := strings.Index(out, h)
			require.NotEqual(t, -1, idx, h)
			assert.Greater(t, idx, last, h)
			last = idx
		}
	})

	t.Run("renders each shape", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, markdown.NewWriter(&buf).Write(report))

		out := buf.String()
		assert.Contains(t, out, "File: `main.py`")
		assert.Contains(t, out, "Readable.")
		assert.Contains(t, out, "_No details provided._")
		assert.Contains(t, out, "- Off by one")
		assert.Contains(t, out, "- Unchecked input")
		assert.Contains(t, out, "```raw```")
		assert.NotContains(t, out, "## Code\n")
	})

	t.Run("includes the code when asked", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, markdown.NewWriter(&buf, markdown.WithCode()).Write(report))

		assert.Contains(t, buf.String(), "```python")
		assert.Contains(t, buf.String(), "print('hi')")
	})

	t.Run("shows review notes", func(t *testing.T) {
		t.Parallel()

		r := &codereview.Report{FileName: "a.js", Review: codereview.Review{Notes: codereview.NewDiagnostic("All model attempts failed")}}

		var buf bytes.Buffer
		require.NoError(t, markdown.NewWriter(&buf).Write(r))

		assert.Contains(t, buf.String(), "All model attempts failed")
	})

	t.Run("escapes reviewer text", func(t *testing.T) {
		t.Parallel()

		r := &codereview.Report{
			FileName: "a.py",
			Review: codereview.Review{
				Readability:   codereview.NewText("Use *args and __init__ carefully.\n# not a heading\n1. not a list"),
				PotentialBugs: codereview.NewList("a[0] | b", "- nested\nacross lines"),
			},
		}

		var buf bytes.Buffer
		require.NoError(t, markdown.NewWriter(&buf).Write(r))

		out := buf.String()
		assert.Contains(t, out, `Use \*args and \_\_init\_\_ carefully.`)
		assert.Contains(t, out, "\n\\# not a heading")
		assert.Contains(t, out, "\n1\\. not a list")
		assert.Contains(t, out, `- a\[0\] \| b`)
		assert.Contains(t, out, `- \- nested across lines`)
		assert.NotContains(t, out, "\n# not a heading")
	})

	t.Run("nil report returns ErrNoReport", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := markdown.NewWriter(&buf).Write(nil)

		require.ErrorIs(t, err, codereview.ErrNoReport)
		assert.Empty(t, buf.String())
	})
}
