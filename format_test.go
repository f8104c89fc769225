package codereview_test

import (
	"testing"

	"github.com/fwojciec/codereview"
	"github.com/stretchr/testify/assert"
)

func TestTextFormatter_Format(t *testing.T) {
	t.Parallel()

	t.Run("renders every section in order", func(t *testing.T) {
		t.Parallel()

		r := &codereview.Report{
			FileName: "main.py",
			Review: codereview.Review{
				Readability:   codereview.NewText("Clear."),
				PotentialBugs: codereview.NewList("Null deref", "Race"),
				Suggestions:   codereview.NewDiagnostic("line one\nline two"),
			},
		}

		out := (&codereview.TextFormatter{}).Format(r)

		want := "Code review: main.py\n" +
			"\nReadability\n  Clear.\n" +
			"\nModularity\n  No details provided.\n" +
			"\nPotential Bugs\n  • Null deref\n  • Race\n" +
			"\nSuggestions\n  line one\n  line two\n"
		assert.Equal(t, want, out)
	})

	t.Run("includes reviewer notes first", func(t *testing.T) {
		t.Parallel()

		r := &codereview.Report{
			FileName: "a.js",
			Review:   codereview.Review{Notes: codereview.NewDiagnostic("All model attempts failed")},
		}

		out := (&codereview.TextFormatter{}).Format(r)

		assert.Contains(t, out, "Reviewer output\n  All model attempts failed\n")
	})

	t.Run("nil report renders empty", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, (&codereview.TextFormatter{}).Format(nil))
	})
}
