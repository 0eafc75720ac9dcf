package page

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"go.uber.org/fx"
	g "maragu.dev/gomponents"

	"github.com/ryanrauch/restaurant-ai-landing/internal/components"
	"github.com/ryanrauch/restaurant-ai-landing/internal/content"
	"github.com/ryanrauch/restaurant-ai-landing/internal/logger"
	"github.com/ryanrauch/restaurant-ai-landing/internal/metrics"
)

var Module = fx.Module("page",
	fx.Provide(LoadSite),
	fx.Provide(NewApp),
)

// DocumentTitle is the browser title set when the app mounts.
const DocumentTitle = "VTable.ai | Smart Reservations"

// Render targets. Exported documents reference their assets relative to
// index.html so they keep working under any publish prefix.
const (
	TargetHTTP   = "http"
	TargetExport = "export"

	exportAssetBase = "static/"
)

// App is the entry shell: it mounts once, fixing the document title, and
// renders the landing page inside the document layout.
type App struct {
	site  content.Site
	log   *slog.Logger
	mount sync.Once
	title string
}

// NewApp creates an unmounted app for site.
func NewApp(site content.Site, log *slog.Logger) *App {
	return &App{
		site: site,
		log:  log.With(logger.Scope("page")),
	}
}

// Mount runs the one-time mount effect. Later calls are no-ops.
func (a *App) Mount() {
	a.mount.Do(func() {
		a.title = DocumentTitle
		a.log.Debug("app mounted", slog.String("title", a.title))
	})
}

// Title is the document title, empty before the first mount.
func (a *App) Title() string {
	return a.title
}

// Site returns the content the app renders.
func (a *App) Site() content.Site {
	return a.site
}

// Render writes the full HTML document, mounting first if needed.
func (a *App) Render(ctx context.Context, w io.Writer) error {
	return a.render(ctx, w, components.DefaultAssetBase)
}

func (a *App) render(ctx context.Context, w io.Writer, assetBase string) error {
	a.Mount()

	if err := ctx.Err(); err != nil {
		return err
	}

	doc := components.Layout(
		components.PageConfig{
			Title:       a.title,
			Description: a.site.MetaDesc,
			AssetBase:   assetBase,
			Head:        []g.Node{StructuredData(a.site)},
		},
		LandingPage(a.site),
	)
	if err := doc.Render(w); err != nil {
		return fmt.Errorf("render landing page: %w", err)
	}
	return nil
}

// HTML renders the document into memory and records render metrics under
// target. TargetExport switches asset URLs to paths relative to the document.
func (a *App) HTML(ctx context.Context, target string) ([]byte, error) {
	start := time.Now()

	assetBase := components.DefaultAssetBase
	if target == TargetExport {
		assetBase = exportAssetBase
	}

	var buf bytes.Buffer
	if err := a.render(ctx, &buf, assetBase); err != nil {
		metrics.PageRenders.WithLabelValues(target, "error").Inc()
		a.log.Error("render failed", slog.String("target", target), logger.Error(err))
		return nil, err
	}

	metrics.PageRenders.WithLabelValues(target, "ok").Inc()
	metrics.PageRenderSeconds.Observe(time.Since(start).Seconds())
	metrics.PageBytes.Set(float64(buf.Len()))
	return buf.Bytes(), nil
}
