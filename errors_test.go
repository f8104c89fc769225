package codereview_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/codereview"
	"github.com/stretchr/testify/assert"
)

func TestSubmissionError(t *testing.T) {
	t.Parallel()

	t.Run("includes the status code when present", func(t *testing.T) {
		t.Parallel()

		err := &codereview.SubmissionError{StatusCode: 502, Err: errors.New("bad gateway")}

		assert.Equal(t, "review submission failed (HTTP 502): bad gateway", err.Error())
	})

	t.Run("omits the status code for transport errors", func(t *testing.T) {
		t.Parallel()

		err := &codereview.SubmissionError{Err: errors.New("connection refused")}

		assert.Equal(t, "review submission failed: connection refused", err.Error())
	})

	t.Run("unwraps to the cause", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("boom")
		var err error = &codereview.SubmissionError{Err: cause}

		assert.ErrorIs(t, err, cause)

		var subErr *codereview.SubmissionError
		assert.True(t, errors.As(err, &subErr))
	})

	t.Run("handles a missing cause", func(t *testing.T) {
		t.Parallel()

		err := &codereview.SubmissionError{}

		assert.Equal(t, "review submission failed: unknown error", err.Error())
	})
}
