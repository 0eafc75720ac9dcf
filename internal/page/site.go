package page

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ryanrauch/restaurant-ai-landing/internal/config"
	"github.com/ryanrauch/restaurant-ai-landing/internal/content"
	"github.com/ryanrauch/restaurant-ai-landing/internal/logger"
)

// LoadSite assembles the page content: built-in copy, then the optional
// YAML overlay, then brand overrides from the environment. The copyright
// year is fixed here so every render of the resulting Site is identical.
func LoadSite(cfg *config.Config, log *slog.Logger) (content.Site, error) {
	return loadSite(cfg, log, time.Now())
}

func loadSite(cfg *config.Config, log *slog.Logger, now time.Time) (content.Site, error) {
	log = log.With(logger.Scope("content"))
	site := content.Default()

	if cfg.ContentFile != "" {
		var err error
		site, err = content.LoadFile(cfg.ContentFile, site)
		if err != nil {
			return content.Site{}, err
		}
		log.Info("content overlay loaded", slog.String("file", cfg.ContentFile))
	}

	site = site.WithBrand(content.Brand{
		Name:         cfg.Brand.Name,
		ContactEmail: cfg.Brand.ContactEmail,
		DemoNumber:   cfg.Brand.DemoNumber,
		BookingURL:   cfg.Brand.BookingURL,
	})
	if site.Year == 0 {
		site = site.WithYear(now.Year())
	}

	if err := site.Validate(); err != nil {
		return content.Site{}, fmt.Errorf("invalid content: %w", err)
	}

	log.Debug("site content ready",
		slog.String("brand", site.Brand.Name),
		slog.Int("tiers", len(site.Tiers)),
		slog.Int("faq", len(site.FAQ)),
	)
	return site, nil
}
