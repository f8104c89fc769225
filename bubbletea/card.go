package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/codereview"
)

// Card displays one review section and remembers whether it is expanded.
// Collapsing never discards the fragment.
type Card struct {
	index    int
	fragment codereview.Fragment
	open     bool
}

// NewCard returns an expanded card. index is the 1-based toggle key; zero
// renders a card without a toggle hint.
func NewCard(index int, fragment codereview.Fragment) Card {
	return Card{index: index, fragment: fragment, open: true}
}

// Open reports whether the card body is shown.
func (c Card) Open() bool {
	return c.open
}

// Fragment returns the section's display decision.
func (c Card) Fragment() codereview.Fragment {
	return c.fragment
}

// Toggle flips between expanded and collapsed.
func (c *Card) Toggle() {
	c.open = !c.open
}

// Hint is the toggle label shown next to the title.
func (c Card) Hint() string {
	if c.open {
		return "Hide"
	}
	return "Show"
}

// cards builds the cards for a report in display order.
func cards(r *codereview.Report) []Card {
	frags := codereview.Fragments(r)
	out := make([]Card, len(frags))
	for i, f := range frags {
		out[i] = NewCard(i+1, f)
	}
	return out
}

// view renders the card in a rounded box of the given outer width.
func (c Card) view(st viewStyles, width int) string {
	inner := width - 4 // border and padding
	if inner < 10 {
		inner = 10
	}

	header := st.cardTitle.Render(c.fragment.Title)
	if c.index > 0 {
		hint := st.muted.Italic(false).Render(fmt.Sprintf("[%d] %s", c.index, c.Hint()))
		gap := inner - lipgloss.Width(header) - lipgloss.Width(hint)
		if gap < 1 {
			gap = 1
		}
		header += strings.Repeat(" ", gap) + hint
	}

	body := header
	if c.open {
		body += "\n\n" + c.renderBody(st, inner)
	}

	return st.border.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(st.border.GetForeground()).
		Padding(0, 1).
		Width(width - 2).
		Render(body)
}

func (c Card) renderBody(st viewStyles, width int) string {
	f := c.fragment
	switch f.Kind {
	case codereview.FragmentPlaceholder:
		return st.muted.Width(width).Render(f.Text)
	case codereview.FragmentDiagnostic:
		return st.diagnostic.Width(width).Render(expandBlock(f.Text))
	case codereview.FragmentList:
		if len(f.Items) == 0 {
			return ""
		}
		items := make([]string, len(f.Items))
		for i, item := range f.Items {
			bullet := st.accent.Render("• ")
			items[i] = lipgloss.JoinHorizontal(lipgloss.Top, bullet, st.body.Width(width-2).Render(item))
		}
		return strings.Join(items, "\n")
	default:
		return st.body.Width(width).Render(f.Text)
	}
}
