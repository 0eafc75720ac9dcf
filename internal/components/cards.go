package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/ryanrauch/restaurant-ai-landing/internal/content"
)

func Stat(s content.Stat) g.Node {
	return h.Div(
		h.Class("rounded-2xl border border-gray-200 p-6 text-center shadow-sm"),
		h.Div(h.Class("text-3xl font-semibold tracking-tight lg:text-4xl"), g.Text(s.Value)),
		h.Div(h.Class("mt-1 text-sm text-gray-500"), g.Text(s.Label)),
	)
}

// Feature renders a titled card led by the feature's icon, or the check
// mark when it has none.
func Feature(f content.Feature) g.Node {
	icon := Check()
	if f.Icon != "" {
		icon = Icon(f.Icon, "")
	}

	return h.Div(
		h.Class("rounded-2xl border border-gray-200 p-6 shadow-sm"),
		h.Div(
			h.Class("flex items-start gap-3"),
			h.Div(h.Class("mt-1 text-primary-600"), icon),
			h.Div(
				h.H4(h.Class("text-base font-semibold"), g.Text(f.Title)),
				h.P(h.Class("mt-1 text-sm text-gray-600"), g.Text(f.Description)),
			),
		),
	)
}

// Step renders the n-th how-it-works card, numbered from 1.
func Step(n int, s content.Step) g.Node {
	return h.Div(
		h.Class("rounded-2xl border border-gray-200 p-6 shadow-sm"),
		h.Div(h.Class("text-sm font-semibold"), g.Text(strconv.Itoa(n)+". "+s.Title)),
		h.P(h.Class("mt-2 text-sm text-gray-600"), g.Text(s.Description)),
	)
}

func Metric(m content.Metric) g.Node {
	return h.Div(
		h.Class("rounded-xl border border-gray-200 p-4"),
		h.Div(h.Class("text-2xl font-semibold"), g.Text(m.Value)),
		h.Div(g.Text(m.Label)),
	)
}

// pricingStyle is the set of class attributes a pricing card varies on.
type pricingStyle struct {
	card, period, description, list, bullet, cta string
}

var (
	plainPricing = pricingStyle{
		card:        "border-gray-200 bg-white",
		period:      "text-gray-500",
		description: "text-gray-600",
		list:        "text-gray-700",
		bullet:      "text-gray-900",
		cta:         "bg-gray-900 text-white hover:bg-gray-800",
	}
	highlightedPricing = pricingStyle{
		card:        "border-gray-900 bg-gray-900 text-white",
		period:      "text-white/70",
		description: "text-white/80",
		list:        "text-white",
		bullet:      "text-white",
		cta:         "bg-white text-gray-900 hover:opacity-90",
	}
)

// PricingCard renders one tier. Highlighting changes class attributes and
// adds the "Popular" badge; the tier's content is emitted identically.
func PricingCard(t content.PricingTier, bookingURL string) g.Node {
	style := plainPricing
	if t.Highlighted {
		style = highlightedPricing
	}

	return h.Div(
		h.Class(classes("flex flex-col rounded-2xl border p-6 shadow-sm", style.card)),
		g.Attr("data-tier", t.Tier),
		h.Div(
			h.Class("flex items-baseline justify-between"),
			h.H3(h.Class("text-lg font-semibold"), g.Text(t.Tier)),
			g.If(t.Highlighted, h.Span(h.Class("rounded-full bg-white/10 px-3 py-1 text-xs"), g.Text("Popular"))),
		),
		h.Div(
			h.Class("mt-4 flex items-end gap-1"),
			h.Div(h.Class("text-3xl font-semibold lg:text-4xl"), g.Text(t.Price)),
			h.Div(h.Class(classes("pb-1 text-sm", style.period)), g.Text("/month")),
		),
		h.P(h.Class(classes("mt-2 text-sm", style.description)), g.Text(t.Description)),
		h.Ul(
			h.Class(classes("mt-4 space-y-2 text-sm", style.list)),
			g.Group(g.Map(t.Features, func(f string) g.Node {
				return h.Li(
					h.Class("flex items-start gap-2"),
					h.Span(h.Class(classes("mt-0.5", style.bullet)), Check()),
					h.Span(g.Text(f)),
				)
			})),
		),
		h.A(
			h.Href(bookingURL),
			h.Class(classes("mt-6 inline-flex items-center justify-center rounded-xl px-4 py-2 text-sm font-medium transition", style.cta)),
			g.Text(t.CTAText),
		),
	)
}
