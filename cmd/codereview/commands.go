package main

import (
	"context"

	chttp "github.com/fwojciec/codereview/http"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// flagKeys maps persistent flags to config keys.
var flagKeys = map[string]string{
	"server":     "server",
	"output-dir": "output_dir",
	"state-dir":  "state_dir",
	"timeout":    "timeout",
	"log-level":  "log_level",
}

// NewRootCmd builds the command tree. build is called once per command,
// after the configuration is resolved.
func NewRootCmd(build Builder) *cobra.Command {
	v := viper.New()
	var (
		configFile string
		cfg        Config
	)

	var run runFunc = func(cmd *cobra.Command, tui bool, fn func(ctx context.Context, app *App) error) error {
		ctx := cmd.Context()
		app, cleanup, err := build(ctx, cfg, tui)
		if err != nil {
			return err
		}
		if cleanup != nil {
			defer cleanup()
		}
		return fn(ctx, app)
	}

	root := &cobra.Command{
		Use:   "codereview [FILE]",
		Short: "Submit source files for review and read the feedback",
		Long: `codereview uploads a source file to a code review service and shows the
returned readability, modularity, potential bugs and suggestions as cards.
Without a subcommand it opens the interactive viewer, with FILE selected
when given.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = LoadConfig(v, configFile)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return run(cmd, true, func(ctx context.Context, app *App) error {
				return app.View(ctx, path)
			})
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "Config file (default $XDG_CONFIG_HOME/codereview/config.yaml)")
	pf.String("server", chttp.DefaultServer, "Review service base URL")
	pf.String("output-dir", ".", "Directory PDF exports are written to")
	pf.String("state-dir", "", "Directory for the theme database and log (default $XDG_STATE_HOME/codereview)")
	pf.Duration("timeout", 0, "Request timeout, 0 for none")
	pf.String("log-level", "info", "Log level: debug, info, warn or error")
	for name, key := range flagKeys {
		_ = v.BindPFlag(key, pf.Lookup(name))
	}

	root.AddCommand(
		newReviewCmd(run),
		newExportCmd(run),
		newPingCmd(run),
		newThemeCmd(run),
	)
	return root
}

type runFunc func(cmd *cobra.Command, tui bool, fn func(ctx context.Context, app *App) error) error

func newReviewCmd(run runFunc) *cobra.Command {
	var opts ReviewOptions
	cmd := &cobra.Command{
		Use:   "review FILE",
		Short: "Review a file and print the report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Path = args[0]
			return run(cmd, false, func(ctx context.Context, app *App) error {
				return app.Review(ctx, opts)
			})
		},
	}
	cmd.Flags().StringVarP(&opts.Format, "format", "f", FormatText, "Output format: text, markdown or json")
	cmd.Flags().BoolVar(&opts.PDF, "pdf", false, "Also export the report as a PDF")
	cmd.Flags().StringVar(&opts.Save, "save", "", "Append the report to a JSONL file")
	return cmd
}

func newExportCmd(run runFunc) *cobra.Command {
	var jobs int
	cmd := &cobra.Command{
		Use:   "export REPORT...",
		Short: "Render saved reports (.json or .jsonl) as PDFs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, false, func(ctx context.Context, app *App) error {
				app.Jobs = jobs
				return app.Export(ctx, args)
			})
		},
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", DefaultJobs, "Number of reports rendered concurrently")
	return cmd
}

func newPingCmd(run runFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the review service is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, false, func(ctx context.Context, app *App) error {
				return app.Ping(ctx)
			})
		},
	}
}

func newThemeCmd(run runFunc) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Show or change the viewer theme",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"light", "dark", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var arg string
			if len(args) == 1 {
				arg = args[0]
			}
			return run(cmd, false, func(ctx context.Context, app *App) error {
				return app.Theme(ctx, arg)
			})
		},
	}
}
