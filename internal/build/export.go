// Package build writes the rendered landing site to disk and publishes the
// result to object storage.
package build

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/ryanrauch/restaurant-ai-landing/internal/logger"
	"github.com/ryanrauch/restaurant-ai-landing/internal/page"
)

// IndexFile is the document written at the root of an export.
const IndexFile = "index.html"

// Renderer produces the full landing document.
type Renderer interface {
	HTML(ctx context.Context, target string) ([]byte, error)
}

// File is one entry of an export, relative to the export root.
type File struct {
	Path string
	Size int64
}

// Exporter renders the page and copies the static assets next to it.
type Exporter struct {
	app    Renderer
	assets fs.FS
	log    *slog.Logger
}

// NewExporter creates an exporter. assets is copied under static/.
func NewExporter(app Renderer, assets fs.FS, log *slog.Logger) *Exporter {
	return &Exporter{
		app:    app,
		assets: assets,
		log:    log.With(logger.Scope("export")),
	}
}

// Export writes index.html and static/** into dir, creating it if needed.
// Files are returned in write order, index first.
func (e *Exporter) Export(ctx context.Context, dir string) ([]File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	html, err := e.app.HTML(ctx, page.TargetExport)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(dir, IndexFile), html, 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", IndexFile, err)
	}
	files := []File{{Path: IndexFile, Size: int64(len(html))}}

	err = fs.WalkDir(e.assets, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		data, err := fs.ReadFile(e.assets, name)
		if err != nil {
			return err
		}

		rel := path.Join("static", name)
		target := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return err
		}

		files = append(files, File{Path: rel, Size: int64(len(data))})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("copy static assets: %w", err)
	}

	e.log.Info("site exported",
		slog.String("dir", dir),
		slog.Int("files", len(files)),
	)
	return files, nil
}
