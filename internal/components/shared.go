package components

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Check is the decorative check-mark icon used by lists and default feature cards.
func Check() g.Node {
	return g.El("svg",
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		h.Class("h-5 w-5"),
		g.Attr("aria-hidden", "true"),
		g.El("path",
			g.Attr("d", "M20 6L9 17l-5-5"),
			g.Attr("stroke", "currentColor"),
			g.Attr("stroke-width", "2"),
			g.Attr("stroke-linecap", "round"),
			g.Attr("stroke-linejoin", "round"),
		),
	)
}

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return ""
	}
	return strings.Replace(parts[0], "--", ":", 1)
}

// Icon renders an iconify glyph such as "lucide--phone". A non-empty
// ariaLabel makes it an image; otherwise it is hidden from assistive tech.
func Icon(iconClass, ariaLabel string) g.Node {
	classes := "iconify inline-block h-5 w-5"
	if ariaLabel != "" {
		return h.Span(
			h.Class(classes),
			g.Attr("data-icon", convertIconName(iconClass)),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return h.Span(
		h.Class(classes),
		g.Attr("data-icon", convertIconName(iconClass)),
		g.Attr("aria-hidden", "true"),
	)
}

// Logo is the brand monogram followed by the brand name.
func Logo(brand string) g.Node {
	return h.A(
		h.Href("#"),
		h.Class("flex items-center gap-2 font-semibold"),
		h.Span(
			h.Class("inline-flex h-8 w-8 items-center justify-center rounded-xl bg-gray-900 text-white"),
			g.Text("AI"),
		),
		h.Span(g.Text(brand)),
	)
}

// CheckItem is a list row led by a check mark.
func CheckItem(text string) g.Node {
	return h.Li(
		h.Class("flex items-start gap-2"),
		Check(),
		g.Text(text),
	)
}

func classes(base, extra string) string {
	return strings.TrimSpace(base + " " + extra)
}

// Section is the centered, width-constrained container every page block sits in.
func Section(id, class string, children ...g.Node) g.Node {
	return h.Section(
		g.If(id != "", h.ID(id)),
		h.Class(classes("mx-auto w-full max-w-7xl px-4 sm:px-6 lg:px-8", class)),
		g.Group(children),
	)
}

// SectionHeading is the centered title block opening most sections.
func SectionHeading(title, lead string) g.Node {
	return h.Div(
		h.Class("mx-auto max-w-3xl text-center"),
		h.H2(h.Class("text-3xl font-semibold tracking-tight"), g.Text(title)),
		g.If(lead != "", h.P(h.Class("mt-3 text-gray-600"), g.Text(lead))),
	)
}
