// Package page composes the landing page from its content and owns the
// application shell that mounts it.
package page

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	c "github.com/ryanrauch/restaurant-ai-landing/internal/components"
	"github.com/ryanrauch/restaurant-ai-landing/internal/content"
	"github.com/ryanrauch/restaurant-ai-landing/internal/seo"
)

// Section anchors used by the nav and CTAs.
const (
	AnchorHero     = "hero"
	AnchorValue    = "value"
	AnchorHow      = "how"
	AnchorFeatures = "features"
	AnchorPricing  = "pricing"
	AnchorFAQ      = "faq"
)

// LandingPage renders the page body in its fixed section order.
func LandingPage(site content.Site) g.Node {
	return Div(
		Class("min-h-screen bg-white text-gray-900"),
		navbar(site),
		hero(site),
		stats(site),
		valueProps(site),
		howItWorks(site),
		features(site),
		analytics(site),
		pricing(site),
		demoCTA(site),
		faq(site),
		footer(site),
	)
}

// StructuredData is the head block describing the product to search engines.
func StructuredData(site content.Site) g.Node {
	return seo.JSONLD(seo.ForSite(site))
}

func navLink(anchor, label string) g.Node {
	return A(Href("#"+anchor), Class("text-sm text-gray-600 hover:text-gray-900"), g.Text(label))
}

func navbar(site content.Site) g.Node {
	return Nav(
		Class("sticky top-0 z-40 w-full border-b border-gray-200 bg-white/80 backdrop-blur"),
		c.Section("", "flex h-16 items-center justify-between",
			c.Logo(site.Brand.Name),
			Div(
				Class("hidden items-center gap-6 md:flex"),
				navLink(AnchorHow, "How it works"),
				navLink(AnchorFeatures, "Features"),
				navLink(AnchorPricing, "Pricing"),
				navLink(AnchorFAQ, "FAQ"),
				A(
					Href(site.Brand.BookingURL),
					Class("rounded-xl bg-gray-900 px-4 py-2 text-sm font-medium text-white hover:bg-gray-800"),
					g.Text("Book a demo"),
				),
			),
		),
	)
}

func hero(site content.Site) g.Node {
	hc := site.Hero

	return c.Section(AnchorHero, "grid grid-cols-1 items-center gap-10 py-16 lg:grid-cols-2 lg:py-24",
		Div(
			H1(Class("text-4xl font-semibold tracking-tight sm:text-5xl"), g.Text(hc.Headline)),
			P(Class("mt-4 text-lg text-gray-600"), g.Text(site.Expand(hc.Lead))),
			Div(
				Class("mt-6 flex flex-wrap gap-3"),
				A(
					Href(site.Brand.BookingURL),
					Class("rounded-xl bg-gray-900 px-5 py-3 text-sm font-medium text-white hover:bg-gray-800"),
					g.Text(hc.PrimaryCTA),
				),
				A(
					Href("#"+AnchorPricing),
					Class("rounded-xl border border-gray-300 px-5 py-3 text-sm font-medium hover:bg-gray-50"),
					g.Text(hc.SecondaryCTA),
				),
			),
			Div(
				Class("mt-6 flex items-center gap-4 text-sm text-gray-500"),
				g.Group(g.Map(hc.Badges, func(b string) g.Node {
					return Div(Class("flex items-center gap-2"), c.Check(), g.Text(b))
				})),
			),
		),
		Div(
			Div(
				Class("relative rounded-3xl border border-gray-200 p-4 shadow-lg"),
				Div(
					Class("rounded-2xl bg-gray-50 p-6"),
					Div(Class("text-sm font-semibold text-gray-800"), g.Text(hc.PreviewTitle)),
					P(Class("mt-1 text-sm text-gray-600"), g.Text(hc.PreviewNote)),
					Div(
						ID("call-widget"),
						Class("mt-4 rounded-xl border border-dashed border-gray-300 p-6 text-center text-sm text-gray-500"),
						g.Text(hc.WidgetNote),
					),
					Div(
						Class("mt-4 text-xs text-gray-500"),
						g.Text("Prefer phone? Call our demo line: "),
						Span(Class("font-medium text-gray-700"), g.Text(site.Brand.DemoNumber)),
					),
				),
			),
		),
	)
}

func stats(site content.Site) g.Node {
	return c.Section("", "py-10",
		Div(
			Class("grid grid-cols-1 gap-4 sm:grid-cols-3"),
			g.Group(g.Map(site.Stats, c.Stat)),
		),
	)
}

func valueProps(site content.Site) g.Node {
	return c.Section(AnchorValue, "py-16 lg:py-20",
		c.SectionHeading(site.Expand(site.Value.Title), site.Expand(site.Value.Lead)),
		Div(
			Class("mt-10 grid grid-cols-1 gap-4 md:grid-cols-2"),
			g.Group(g.Map(site.ValueProps, c.Feature)),
		),
	)
}

func howItWorks(site content.Site) g.Node {
	steps := make([]g.Node, len(site.Steps))
	for i, s := range site.Steps {
		steps[i] = c.Step(i+1, s)
	}

	return c.Section(AnchorHow, "py-16",
		c.SectionHeading(site.How.Title, site.How.Lead),
		Div(Class("mt-10 grid grid-cols-1 gap-6 lg:grid-cols-3"), g.Group(steps)),
	)
}

func features(site content.Site) g.Node {
	return c.Section(AnchorFeatures, "py-16",
		Div(
			Class("grid grid-cols-1 gap-6 lg:grid-cols-3"),
			g.Group(g.Map(site.Features, c.Feature)),
		),
	)
}

func analytics(site content.Site) g.Node {
	a := site.Analytics

	return c.Section("", "py-16",
		Div(
			Class("grid grid-cols-1 items-center gap-10 lg:grid-cols-2"),
			Div(
				H3(Class("text-2xl font-semibold tracking-tight"), g.Text(a.Title)),
				P(Class("mt-3 text-gray-600"), g.Text(a.Lead)),
				Ul(
					Class("mt-6 space-y-3 text-sm text-gray-700"),
					g.Group(g.Map(a.Bullets, c.CheckItem)),
				),
			),
			Div(
				Class("rounded-3xl border border-gray-200 p-4 shadow-sm"),
				Div(
					Class("aspect-[16/10] w-full rounded-2xl bg-gradient-to-br from-gray-50 to-gray-100 p-6"),
					Div(Class("text-sm font-semibold text-gray-700"), g.Text(a.PreviewTitle)),
					Div(
						Class("mt-4 grid grid-cols-2 gap-4 text-xs text-gray-600"),
						g.Group(g.Map(a.Metrics, c.Metric)),
					),
				),
			),
		),
	)
}

func pricing(site content.Site) g.Node {
	return c.Section(AnchorPricing, "py-16",
		c.SectionHeading(site.Pricing.Title, site.Pricing.Lead),
		Div(
			Class("mt-10 grid grid-cols-1 gap-6 lg:grid-cols-3"),
			g.Group(g.Map(site.Tiers, func(t content.PricingTier) g.Node {
				return c.PricingCard(t, site.Brand.BookingURL)
			})),
		),
		g.If(site.PricingNote != "",
			P(Class("mt-4 text-center text-xs text-gray-500"), g.Text(site.PricingNote)),
		),
	)
}

func demoCTA(site content.Site) g.Node {
	return c.Section("", "py-16",
		Div(
			Class("rounded-3xl bg-gray-900 px-8 py-12 text-white"),
			Div(
				Class("grid grid-cols-1 items-center gap-8 lg:grid-cols-3"),
				Div(
					Class("lg:col-span-2"),
					H3(Class("text-2xl font-semibold"), g.Text(site.Demo.Title)),
					P(
						Class("mt-2 text-white/80"),
						g.Text("Call the demo line "),
						Span(Class("font-semibold text-white"), g.Text(site.Brand.DemoNumber)),
						g.Text(" "+site.Expand(site.Demo.Lead)),
					),
				),
				Div(
					Class("flex gap-3"),
					A(
						Href(site.Brand.BookingURL),
						Class("inline-flex items-center justify-center rounded-xl bg-white px-5 py-3 text-sm font-medium text-gray-900 hover:opacity-90"),
						g.Text("Book a demo"),
					),
					A(
						Href("#"+AnchorHero),
						Class("inline-flex items-center justify-center rounded-xl border border-white/20 px-5 py-3 text-sm font-medium text-white hover:bg-white/10"),
						g.Text("Try web demo"),
					),
				),
			),
		),
	)
}

func faq(site content.Site) g.Node {
	return c.Section(AnchorFAQ, "py-16",
		c.SectionHeading("FAQ", ""),
		Div(
			Class("mt-8 grid grid-cols-1 gap-4 md:grid-cols-2"),
			g.Group(g.Map(c.Disclosures(site.FAQ), c.FAQItem)),
		),
	)
}

func footer(site content.Site) g.Node {
	return Footer(
		Class("border-t border-gray-200"),
		c.Section("", "flex flex-col items-center justify-between gap-6 py-10 md:flex-row",
			Div(
				Class("text-sm text-gray-600"),
				g.Textf("© %d %s. All rights reserved.", site.Year, site.Brand.Name),
			),
			Div(
				Class("flex items-center gap-6 text-sm"),
				A(Href("mailto:"+site.Brand.ContactEmail), Class("text-gray-600 hover:text-gray-900"), g.Text("Contact")),
				A(Href("#"), Class("text-gray-600 hover:text-gray-900"), g.Text("Privacy")),
				A(Href("#"), Class("text-gray-600 hover:text-gray-900"), g.Text("Terms")),
			),
		),
	)
}
