package codereview_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/codereview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("classifies every section", func(t *testing.T) {
		t.Parallel()

		body := `{
			"file_name": "main.py",
			"code": "print('hi')\n",
			"review": {
				"readability": "Readable.",
				"modularity": 0,
				"potential_bugs": ["Unchecked input", "Off by one"],
				"suggestions": {"error": "model failed"}
			}
		}`

		var r codereview.Report
		require.NoError(t, json.Unmarshal([]byte(body), &r))

		assert.Equal(t, "main.py", r.FileName)
		assert.Equal(t, "print('hi')\n", r.Code)
		assert.Equal(t, codereview.KindText, r.Review.Readability.Kind)
		assert.Equal(t, "Readable.", r.Review.Readability.Text)
		assert.Equal(t, codereview.KindText, r.Review.Modularity.Kind)
		assert.Equal(t, "0", r.Review.Modularity.Text)
		assert.Equal(t, codereview.KindList, r.Review.PotentialBugs.Kind)
		assert.Equal(t, []string{"Unchecked input", "Off by one"}, r.Review.PotentialBugs.Items)
		assert.Equal(t, codereview.KindDiagnostic, r.Review.Suggestions.Kind)
		assert.Equal(t, "model failed", r.Review.Suggestions.Text)
		assert.True(t, r.Review.Notes.IsEmpty())
	})

	t.Run("missing and null sections are empty", func(t *testing.T) {
		t.Parallel()

		var r codereview.Report
		require.NoError(t, json.Unmarshal([]byte(`{"file_name":"a.js","review":{"readability":null}}`), &r))

		for _, s := range r.Review.Sections() {
			assert.True(t, s.Content.IsEmpty(), "section %s", s.Key)
		}
	})

	t.Run("review-level error payload becomes notes", func(t *testing.T) {
		t.Parallel()

		body := `{"file_name":"a.js","code":"","review":{"error":"All model attempts failed","detail":"quota"}}`

		var r codereview.Report
		require.NoError(t, json.Unmarshal([]byte(body), &r))

		assert.Equal(t, codereview.KindDiagnostic, r.Review.Notes.Kind)
		assert.Equal(t, "All model attempts failed", r.Review.Notes.Text)
		assert.True(t, r.Review.Readability.IsEmpty())
	})

	t.Run("raw model output next to sections becomes notes", func(t *testing.T) {
		t.Parallel()

		body := `{"file_name":"a.js","review":{"readability":"ok","_raw_model_output":"not json"}}`

		var r codereview.Report
		require.NoError(t, json.Unmarshal([]byte(body), &r))

		assert.Equal(t, "not json", r.Review.Notes.Text)
		assert.Equal(t, "ok", r.Review.Readability.Text)
	})

	t.Run("review that is not an object becomes notes", func(t *testing.T) {
		t.Parallel()

		var r codereview.Report
		require.NoError(t, json.Unmarshal([]byte(`{"file_name":"a.js","review":"service busy"}`), &r))

		assert.Equal(t, codereview.KindText, r.Review.Notes.Kind)
		assert.Equal(t, "service busy", r.Review.Notes.Text)
	})
}

func TestReview_Sections(t *testing.T) {
	t.Parallel()

	review := codereview.Review{
		Readability:   codereview.NewText("r"),
		Modularity:    codereview.NewText("m"),
		PotentialBugs: codereview.NewList("b"),
		Suggestions:   codereview.NewList("s"),
	}

	sections := review.Sections()

	require.Len(t, sections, 4)
	assert.Equal(t, codereview.KeyReadability, sections[0].Key)
	assert.Equal(t, "Readability", sections[0].Title)
	assert.Equal(t, codereview.KeyModularity, sections[1].Key)
	assert.Equal(t, "Modularity", sections[1].Title)
	assert.Equal(t, codereview.KeyPotentialBugs, sections[2].Key)
	assert.Equal(t, "Potential Bugs", sections[2].Title)
	assert.Equal(t, codereview.KeySuggestions, sections[3].Key)
	assert.Equal(t, "Suggestions", sections[3].Title)
}

func TestReview_MarshalJSON(t *testing.T) {
	t.Parallel()

	body := `{"readability":"ok","modularity":0,"potential_bugs":["a"],"suggestions":null}`

	var review codereview.Review
	require.NoError(t, json.Unmarshal([]byte(body), &review))

	out, err := json.Marshal(review)
	require.NoError(t, err)

	assert.JSONEq(t, body, string(out))
}
