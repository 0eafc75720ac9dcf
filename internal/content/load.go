package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrMissingBrand   = errors.New("brand name and contact email are required")
	ErrNoPricing      = errors.New("at least one pricing tier is required")
	ErrHighlightCount = errors.New("at most one pricing tier may be highlighted")
	ErrOfferMismatch  = errors.New("structured-data price range does not match pricing tiers")
	ErrEmptyFAQ       = errors.New("faq entries need a question and an answer")
)

// LoadFile overlays the YAML document at path onto base. Scalar fields
// present in the file replace the base value; lists present in the file
// replace the whole base list.
func LoadFile(path string, base Site) (Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Site{}, fmt.Errorf("read content file: %w", err)
	}
	return Parse(data, base)
}

// Parse overlays a YAML document onto base. Unknown keys are rejected.
func Parse(data []byte, base Site) (Site, error) {
	site := base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&site); err != nil {
		if errors.Is(err, io.EOF) {
			return base, nil
		}
		return Site{}, fmt.Errorf("parse content: %w", err)
	}
	return site, nil
}

// Validate reports the first inconsistency in s.
func (s Site) Validate() error {
	if s.Brand.Name == "" || s.Brand.ContactEmail == "" {
		return ErrMissingBrand
	}
	if len(s.Tiers) == 0 {
		return ErrNoPricing
	}

	highlighted := 0
	for _, t := range s.Tiers {
		if t.Highlighted {
			highlighted++
		}
	}
	if highlighted > 1 {
		return fmt.Errorf("%w: %d highlighted", ErrHighlightCount, highlighted)
	}

	if low, high, ok := s.PriceRange(); ok && (low != s.SEO.LowPrice || high != s.SEO.HighPrice) {
		return fmt.Errorf("%w: tiers span %d-%d, offer says %d-%d",
			ErrOfferMismatch, low, high, s.SEO.LowPrice, s.SEO.HighPrice)
	}

	for i, f := range s.FAQ {
		if f.Question == "" || f.Answer == "" {
			return fmt.Errorf("%w: entry %d", ErrEmptyFAQ, i)
		}
	}
	return nil
}
