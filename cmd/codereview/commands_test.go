package main_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/codereview"
	main "github.com/fwojciec/codereview/cmd/codereview"
	chttp "github.com/fwojciec/codereview/http"
	"github.com/fwojciec/codereview/mock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, nil))
}

// recorder is a Builder that hands out a prepared App and records how it
// was asked to build.
type recorder struct {
	app     *main.App
	cfg     main.Config
	tui     bool
	cleaned bool
}

func (r *recorder) build(_ context.Context, cfg main.Config, tui bool) (*main.App, func(), error) {
	r.cfg = cfg
	r.tui = tui
	return r.app, func() { r.cleaned = true }, nil
}

func execute(t *testing.T, r *recorder, args ...string) error {
	t.Helper()
	cmd := main.NewRootCmd(r.build)
	cmd.SetArgs(append([]string{"--config", writeConfig(t, "")}, args...))
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRootCmd_OpensViewer(t *testing.T) {
	t.Parallel()

	var got *codereview.File
	r := &recorder{app: &main.App{
		Viewer: &mock.Viewer{
			ViewFn: func(_ context.Context, file *codereview.File) error {
				got = file
				return nil
			},
		},
	}}

	require.NoError(t, execute(t, r, "src/app.js"))

	assert.True(t, r.tui, "the viewer builds in TUI mode")
	assert.True(t, r.cleaned)
	require.NotNil(t, got)
	assert.Equal(t, "app.js", got.Name)
}

func TestReviewCmd(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	r := &recorder{app: &main.App{Stdout: &stdout, Reviewer: reviewerFor(sampleReport("main.py"))}}

	require.NoError(t, execute(t, r, "review", "--format", "markdown", "main.py"))

	assert.False(t, r.tui)
	assert.Contains(t, stdout.String(), "## Potential Bugs")
}

func TestReviewCmd_RequiresFile(t *testing.T) {
	t.Parallel()

	r := &recorder{app: &main.App{}}

	assert.Error(t, execute(t, r, "review"))
}

func TestExportCmd_Jobs(t *testing.T) {
	t.Parallel()

	r := &recorder{app: &main.App{
		Stdout: io.Discard,
		Loader: &mock.ReportLoader{
			LoadFn: func(_ string) ([]codereview.Report, error) {
				return []codereview.Report{*sampleReport("a.py")}, nil
			},
		},
		Exporter: &mock.Exporter{
			ExportFn: func(_ *codereview.Report) (*codereview.Document, error) {
				return &codereview.Document{Name: "a.pdf"}, nil
			},
		},
		Documents: &mock.DocumentSaver{
			SaveFn: func(doc *codereview.Document) (string, error) {
				return doc.Name, nil
			},
		},
	}}

	require.NoError(t, execute(t, r, "export", "--jobs", "3", "a.jsonl"))

	assert.Equal(t, 3, r.app.Jobs)
}

func TestThemeCmd_RejectsInvalidArgs(t *testing.T) {
	t.Parallel()

	r := &recorder{app: &main.App{}}

	assert.Error(t, execute(t, r, "theme", "sepia"))
}

func TestPingCmd_RejectsArgs(t *testing.T) {
	t.Parallel()

	r := &recorder{app: &main.App{}}

	assert.Error(t, execute(t, r, "ping", "extra"))
}

func TestRootCmd_FlagsOverrideConfig(t *testing.T) {
	t.Parallel()

	r := &recorder{app: &main.App{Pinger: pinger{msg: "ok"}, Stdout: io.Discard}}
	cfgPath := writeConfig(t, "server: http://from-file:9000\noutput_dir: reports\n")

	cmd := main.NewRootCmd(r.build)
	cmd.SetArgs([]string{"--config", cfgPath, "--server", "http://from-flag:1", "--timeout", "5s", "ping"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "http://from-flag:1", r.cfg.Server)
	assert.Equal(t, "reports", r.cfg.OutputDir)
	assert.Equal(t, 5*time.Second, r.cfg.Timeout)
}

func TestLoadConfig(t *testing.T) {
	t.Run("uses defaults", func(t *testing.T) {
		cfg, err := main.LoadConfig(viper.New(), writeConfig(t, ""))

		require.NoError(t, err)
		assert.Equal(t, chttp.DefaultServer, cfg.Server)
		assert.Equal(t, ".", cfg.OutputDir)
		assert.NotEmpty(t, cfg.StateDir)
		assert.Zero(t, cfg.Timeout)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("reads environment variables", func(t *testing.T) {
		t.Setenv("CODEREVIEW_SERVER", "http://from-env:8000")
		t.Setenv("CODEREVIEW_OUTPUT_DIR", "/tmp/pdfs")

		cfg, err := main.LoadConfig(viper.New(), writeConfig(t, "server: http://from-file:9000\n"))

		require.NoError(t, err)
		assert.Equal(t, "http://from-env:8000", cfg.Server)
		assert.Equal(t, "/tmp/pdfs", cfg.OutputDir)
	})

	t.Run("rejects a missing explicit file", func(t *testing.T) {
		_, err := main.LoadConfig(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))

		assert.Error(t, err)
	})

	t.Run("rejects invalid log levels", func(t *testing.T) {
		_, err := main.LoadConfig(viper.New(), writeConfig(t, "log_level: loud\n"))

		assert.ErrorContains(t, err, "invalid log level")
	})

	t.Run("rejects negative timeouts", func(t *testing.T) {
		_, err := main.LoadConfig(viper.New(), writeConfig(t, "timeout: -1s\n"))

		assert.ErrorContains(t, err, "invalid timeout")
	})
}
