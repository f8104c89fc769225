package clipboard_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/fwojciec/codereview/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand_Copy(t *testing.T) {
	t.Parallel()

	t.Run("pipes content into the command", func(t *testing.T) {
		t.Parallel()

		if runtime.GOOS == "windows" {
			t.Skip("requires a POSIX shell")
		}
		if _, err := exec.LookPath("sh"); err != nil {
			t.Skip("sh not available")
		}

		out := filepath.Join(t.TempDir(), "clip.txt")
		cb := clipboard.NewCommand("sh", "-c", `cat > "$0"`, out)

		require.NoError(t, cb.Copy("copied report text"))

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, "copied report text", string(data))
	})

	t.Run("failing command returns an error", func(t *testing.T) {
		t.Parallel()

		if _, err := exec.LookPath("false"); err != nil {
			t.Skip("false not available")
		}

		err := clipboard.NewCommand("false").Copy("x")

		assert.Error(t, err)
	})

	t.Run("missing command reports unavailable", func(t *testing.T) {
		t.Parallel()

		var empty clipboard.Command

		assert.ErrorIs(t, empty.Copy("x"), clipboard.ErrUnavailable)
	})
}

func TestPBCopy_Copy(t *testing.T) {
	t.Parallel()

	// Skip if pbcopy is not available (non-macOS systems)
	if _, err := exec.LookPath("pbcopy"); err != nil {
		t.Skip("pbcopy not available, skipping clipboard test")
	}

	cb := clipboard.NewPBCopy()
	testContent := "test clipboard content from codereview"

	err := cb.Copy(testContent)
	require.NoError(t, err)

	// Verify by reading back with pbpaste
	if _, err := exec.LookPath("pbpaste"); err != nil {
		t.Skip("pbpaste not available, cannot verify clipboard content")
	}

	out, err := exec.Command("pbpaste").Output()
	require.NoError(t, err)
	assert.Equal(t, testContent, string(out))
}

func TestDetect(t *testing.T) {
	t.Parallel()

	cb := clipboard.Detect()

	if cb.Name() == "" {
		assert.ErrorIs(t, cb.Copy("x"), clipboard.ErrUnavailable)
		return
	}
	_, err := exec.LookPath(cb.Name())
	assert.NoError(t, err)
}
