package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	OGImage     string
	// AssetBase prefixes static asset URLs. Empty means DefaultAssetBase.
	AssetBase string
	// Head holds extra head nodes such as structured data.
	Head []g.Node
}

// DefaultAssetBase is where the server mounts the embedded assets.
const DefaultAssetBase = "/static/"

const tailwindCDN = "https://cdn.tailwindcss.com"

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.AssetBase == "" {
		config.AssetBase = DefaultAssetBase
	}
	if config.OGImage == "" {
		config.OGImage = config.AssetBase + "images/og-image.svg"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1.0")),
				h.TitleEl(g.Text(config.Title)),
				g.If(config.Description != "", h.Meta(h.Name("description"), h.Content(config.Description))),

				h.Meta(g.Attr("property", "og:title"), h.Content(config.Title)),
				g.If(config.Description != "", h.Meta(g.Attr("property", "og:description"), h.Content(config.Description))),
				h.Meta(g.Attr("property", "og:type"), h.Content("website")),
				h.Meta(g.Attr("property", "og:image"), h.Content(config.OGImage)),

				h.Link(h.Rel("icon"), h.Href(config.AssetBase+"images/favicon.svg"), h.Type("image/svg+xml")),
				h.Link(h.Rel("stylesheet"), h.Href(config.AssetBase+"styles.css")),

				h.Script(h.Src(tailwindCDN)),
				h.Script(h.Src("https://code.iconify.design/1/1.0.7/iconify.min.js"), h.Defer()),
				g.Group(config.Head),
			),
			h.Body(
				g.Group(content),
			),
		),
	})
}
