package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/ryanrauch/restaurant-ai-landing/internal/content"
)

// DisclosureState is the open/closed state of one FAQ entry.
type DisclosureState int

const (
	Collapsed DisclosureState = iota
	Expanded
)

func (s DisclosureState) String() string {
	if s == Expanded {
		return "expanded"
	}
	return "collapsed"
}

// Disclosure pairs an FAQ entry with its own open flag. It is a value:
// toggling returns a new Disclosure and never touches any other entry.
type Disclosure struct {
	Entry content.FAQEntry
	Open  bool
}

// NewDisclosure returns a collapsed disclosure for entry.
func NewDisclosure(entry content.FAQEntry) Disclosure {
	return Disclosure{Entry: entry}
}

func (d Disclosure) Toggle() Disclosure {
	d.Open = !d.Open
	return d
}

func (d Disclosure) State() DisclosureState {
	if d.Open {
		return Expanded
	}
	return Collapsed
}

// Disclosures returns one collapsed disclosure per entry, in order.
func Disclosures(entries []content.FAQEntry) []Disclosure {
	out := make([]Disclosure, len(entries))
	for i, e := range entries {
		out[i] = NewDisclosure(e)
	}
	return out
}

// FAQItem renders a native details element; the browser owns toggling
// after the first paint, starting from d's state.
func FAQItem(d Disclosure) g.Node {
	return h.Details(
		h.Class("group rounded-xl border border-gray-200 p-4"),
		g.If(d.Open, g.Attr("open")),
		h.Summary(
			h.Class("flex cursor-pointer list-none items-center justify-between gap-4"),
			h.H4(h.Class("text-base font-semibold text-gray-900"), g.Text(d.Entry.Question)),
			h.Span(
				h.Class("shrink-0 rounded-full border p-1 text-gray-500 transition group-open:rotate-180"),
				g.Attr("aria-hidden", "true"),
				g.Text("▾"),
			),
		),
		h.P(h.Class("mt-3 text-sm text-gray-600"), g.Text(d.Entry.Answer)),
	)
}
