package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/codereview"
)

// Compile-time check that Viewer implements codereview.Viewer.
var _ codereview.Viewer = (*Viewer)(nil)

// Viewer implements codereview.Viewer using a Bubble Tea TUI.
type Viewer struct {
	opts []ModelOption
}

// NewViewer creates a Viewer whose models are built with opts.
func NewViewer(opts ...ModelOption) *Viewer {
	return &Viewer{opts: opts}
}

// View displays the viewer and blocks until the user exits or ctx is done.
func (v *Viewer) View(ctx context.Context, file *codereview.File) error {
	opts := append([]ModelOption{WithContext(ctx)}, v.opts...)
	if file != nil {
		opts = append(opts, WithInitialFile(file.Path))
	}
	m := NewModel(opts...)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
