package codereview

// FragmentKind identifies how a card body is displayed.
type FragmentKind int

// Fragment kinds.
const (
	FragmentPlaceholder FragmentKind = iota // Muted "no details" text
	FragmentDiagnostic                      // Preformatted reviewer output
	FragmentList                            // One bullet per item
	FragmentParagraph                       // Single block of text
)

// PlaceholderText is shown on cards without content.
const PlaceholderText = "No details provided."

// Fragment is the display decision for one report card.
type Fragment struct {
	Title string
	Kind  FragmentKind
	Text  string   // Placeholder, diagnostic or paragraph text
	Items []string // List items
}

// RenderCard decides how a section is displayed. It is total: every
// Content maps to exactly one fragment kind.
func RenderCard(title string, content Content) Fragment {
	switch content.Kind {
	case KindDiagnostic:
		return Fragment{Title: title, Kind: FragmentDiagnostic, Text: content.Text}
	case KindList:
		items := content.Items
		if items == nil {
			items = []string{}
		}
		return Fragment{Title: title, Kind: FragmentList, Items: items}
	case KindText:
		return Fragment{Title: title, Kind: FragmentParagraph, Text: content.Text}
	default:
		return Fragment{Title: title, Kind: FragmentPlaceholder, Text: PlaceholderText}
	}
}

// Fragments renders the report's four sections in display order.
func Fragments(r *Report) []Fragment {
	if r == nil {
		return nil
	}
	sections := r.Review.Sections()
	fragments := make([]Fragment, 0, len(sections))
	for _, s := range sections {
		fragments = append(fragments, RenderCard(s.Title, s.Content))
	}
	return fragments
}
