// Package content holds the literal copy and configuration records the
// landing page is rendered from. Values are defined at authoring time and
// never mutated; every helper returns a copy.
package content

import "strings"

// Brand holds the global constants substituted into the page at render time.
type Brand struct {
	Name         string `yaml:"name"`
	ContactEmail string `yaml:"contact_email"`
	DemoNumber   string `yaml:"demo_number"`
	BookingURL   string `yaml:"booking_url"`
}

// Stat is a headline number shown in the social-proof strip.
type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Feature is a titled card. An empty Icon renders the default check mark.
type Feature struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon,omitempty"`
}

// Step is one numbered card in the how-it-works section.
type Step struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Metric is a tile in the dashboard preview.
type Metric struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// PricingTier describes one pricing card. Price is the display string;
// Amount is the monthly USD price used for the structured-data offer and is
// zero for tiers quoted on request.
type PricingTier struct {
	Tier        string   `yaml:"tier"`
	Price       string   `yaml:"price"`
	Amount      int      `yaml:"amount"`
	Description string   `yaml:"description"`
	Features    []string `yaml:"features"`
	CTAText     string   `yaml:"cta_text"`
	Highlighted bool     `yaml:"highlighted"`
}

// FAQEntry is a question with its answer.
type FAQEntry struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// SEO carries the fields of the search-engine structured-data block.
type SEO struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	LowPrice    int    `yaml:"low_price"`
	HighPrice   int    `yaml:"high_price"`
	Currency    string `yaml:"currency"`
}

// Hero is the copy of the first screen.
type Hero struct {
	Headline     string   `yaml:"headline"`
	Lead         string   `yaml:"lead"`
	PrimaryCTA   string   `yaml:"primary_cta"`
	SecondaryCTA string   `yaml:"secondary_cta"`
	Badges       []string `yaml:"badges"`
	PreviewTitle string   `yaml:"preview_title"`
	PreviewNote  string   `yaml:"preview_note"`
	WidgetNote   string   `yaml:"widget_note"`
}

// Heading is a section title with optional supporting paragraph.
type Heading struct {
	Title string `yaml:"title"`
	Lead  string `yaml:"lead,omitempty"`
}

// Analytics is the copy of the analytics snapshot section.
type Analytics struct {
	Title        string   `yaml:"title"`
	Lead         string   `yaml:"lead"`
	Bullets      []string `yaml:"bullets"`
	PreviewTitle string   `yaml:"preview_title"`
	Metrics      []Metric `yaml:"metrics"`
}

// Site is the whole content set of the landing page.
type Site struct {
	Brand       Brand         `yaml:"brand"`
	MetaDesc    string        `yaml:"meta_description"`
	Hero        Hero          `yaml:"hero"`
	Stats       []Stat        `yaml:"stats"`
	Value       Heading       `yaml:"value"`
	ValueProps  []Feature     `yaml:"value_props"`
	How         Heading       `yaml:"how"`
	Steps       []Step        `yaml:"steps"`
	Features    []Feature     `yaml:"features"`
	Analytics   Analytics     `yaml:"analytics"`
	Pricing     Heading       `yaml:"pricing"`
	Tiers       []PricingTier `yaml:"tiers"`
	PricingNote string        `yaml:"pricing_note"`
	Demo        Heading       `yaml:"demo"`
	FAQ         []FAQEntry    `yaml:"faq"`
	SEO         SEO           `yaml:"seo"`
	Year        int           `yaml:"year"`
}

// WithBrand returns a copy of s whose brand fields are replaced by the
// non-empty fields of b.
func (s Site) WithBrand(b Brand) Site {
	if b.Name != "" {
		s.Brand.Name = b.Name
	}
	if b.ContactEmail != "" {
		s.Brand.ContactEmail = b.ContactEmail
	}
	if b.DemoNumber != "" {
		s.Brand.DemoNumber = b.DemoNumber
	}
	if b.BookingURL != "" {
		s.Brand.BookingURL = b.BookingURL
	}
	return s
}

// Expand substitutes the {brand} and {demo} placeholders of a copy string.
func (s Site) Expand(text string) string {
	return placeholders(s.Brand).Replace(text)
}

func placeholders(b Brand) *strings.Replacer {
	return strings.NewReplacer("{brand}", b.Name, "{demo}", b.DemoNumber)
}

// WithYear returns a copy of s with the copyright year set.
func (s Site) WithYear(year int) Site {
	s.Year = year
	return s
}

// PriceRange returns the lowest and highest numeric tier amounts. Tiers
// without an amount are ignored; ok is false when no tier has one.
func (s Site) PriceRange() (low, high int, ok bool) {
	for _, t := range s.Tiers {
		if t.Amount <= 0 {
			continue
		}
		if !ok || t.Amount < low {
			low = t.Amount
		}
		if !ok || t.Amount > high {
			high = t.Amount
		}
		ok = true
	}
	return low, high, ok
}
