// Package seo builds the schema.org structured-data block embedded in the
// landing page head.
package seo

import (
	"bytes"
	"encoding/json"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/ryanrauch/restaurant-ai-landing/internal/content"
)

// SoftwareApplication is the JSON-LD document. Field order is the
// serialization order.
type SoftwareApplication struct {
	Context             string         `json:"@context"`
	Type                string         `json:"@type"`
	Name                string         `json:"name"`
	ApplicationCategory string         `json:"applicationCategory"`
	OperatingSystem     string         `json:"operatingSystem"`
	Description         string         `json:"description"`
	Offers              AggregateOffer `json:"offers"`
}

// AggregateOffer is the price range of all pricing tiers.
type AggregateOffer struct {
	Type          string `json:"@type"`
	LowPrice      int    `json:"lowPrice"`
	HighPrice     int    `json:"highPrice"`
	PriceCurrency string `json:"priceCurrency"`
}

// ForSite builds the structured data from the site's SEO fields.
func ForSite(site content.Site) SoftwareApplication {
	return SoftwareApplication{
		Context:             "https://schema.org",
		Type:                "SoftwareApplication",
		Name:                site.Expand(site.SEO.Name),
		ApplicationCategory: "BusinessApplication",
		OperatingSystem:     "Web",
		Description:         site.SEO.Description,
		Offers: AggregateOffer{
			Type:          "AggregateOffer",
			LowPrice:      site.SEO.LowPrice,
			HighPrice:     site.SEO.HighPrice,
			PriceCurrency: site.SEO.Currency,
		},
	}
}

// JSON returns the compact encoding. HTML escaping stays on so the output
// can never close the surrounding script element.
func (a SoftwareApplication) JSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(a); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// JSONLD renders the application/ld+json script element.
func JSONLD(a SoftwareApplication) g.Node {
	data, err := a.JSON()
	if err != nil {
		return nil
	}
	return Script(Type("application/ld+json"), g.Raw(string(data)))
}
