package fpdf

import (
	"fmt"

	"github.com/fwojciec/codereview"
)

// Page geometry in millimetres, with font sizes in points.
const (
	MarginLeft    = 10.0
	TitleY        = 20.0
	FileY         = 30.0
	StartY        = 45.0
	TopY          = 20.0
	BottomLimit   = 270.0
	HeaderAdvance = 7.0
	LineHeight    = 6.0
	SectionGap    = 5.0
	WrapWidth     = 180.0

	TitleSize = 16.0
	BodySize  = 12.0
)

// Title is printed at the top of the first page.
const Title = "Code Review Assistant"

// NoDetails stands in for an empty section.
const NoDetails = "No details."

// Bullet prefixes every wrapped item.
const Bullet = "• "

// Item is one positioned run of text.
type Item struct {
	X, Y float64
	Text string
	Bold bool
	Size float64
}

// Page holds the items emitted on one page, in order.
type Page struct {
	Items []Item
}

// Typesetter encodes text for the document font and wraps it to a width.
type Typesetter interface {
	Encode(s string) string
	Wrap(s string, width float64) []string
}

// Layout positions the report on pages. It is a pure function of the
// report and the typesetter's metrics. A nil report yields no pages.
func Layout(r *codereview.Report, ts Typesetter) []Page {
	if r == nil {
		return nil
	}

	l := &layout{ts: ts, y: StartY}
	l.pages = []Page{{}}
	l.emit(Item{X: MarginLeft, Y: TitleY, Text: ts.Encode(Title), Size: TitleSize})
	l.emit(Item{X: MarginLeft, Y: FileY, Text: ts.Encode(fmt.Sprintf("File: %s", r.FileName)), Size: BodySize})

	for _, s := range r.Review.Sections() {
		l.breakIfFull()
		l.emit(Item{X: MarginLeft, Y: l.y, Text: ts.Encode(s.Title), Bold: true, Size: BodySize})
		l.y += HeaderAdvance

		for _, item := range sectionItems(s.Content) {
			for _, line := range ts.Wrap(Bullet+item, WrapWidth) {
				l.breakIfFull()
				l.emit(Item{X: MarginLeft, Y: l.y, Text: line, Size: BodySize})
				l.y += LineHeight
			}
		}
		l.y += SectionGap
	}

	return l.pages
}

type layout struct {
	ts    Typesetter
	pages []Page
	y     float64
}

func (l *layout) emit(item Item) {
	p := &l.pages[len(l.pages)-1]
	p.Items = append(p.Items, item)
}

func (l *layout) breakIfFull() {
	if l.y > BottomLimit {
		l.pages = append(l.pages, Page{})
		l.y = TopY
	}
}

// sectionItems returns the bullet texts for a section. Lists contribute
// one item per element and may contribute none.
func sectionItems(c codereview.Content) []string {
	switch c.Kind {
	case codereview.KindList:
		return c.Items
	case codereview.KindText, codereview.KindDiagnostic:
		return []string{c.Text}
	default:
		return []string{NoDetails}
	}
}
