package build

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/ryanrauch/restaurant-ai-landing/internal/logger"
	"github.com/ryanrauch/restaurant-ai-landing/internal/metrics"
	"github.com/ryanrauch/restaurant-ai-landing/internal/storage"
)

// DefaultConcurrency bounds parallel uploads.
const DefaultConcurrency = 4

const (
	indexCacheControl  = "no-cache"
	staticCacheControl = "public, max-age=3600"
)

// Uploader stores one object.
type Uploader interface {
	Upload(ctx context.Context, key string, data io.Reader, size int64, opts storage.UploadOptions) (*storage.UploadResult, error)
}

// Publisher uploads an export directory to object storage.
type Publisher struct {
	up          Uploader
	concurrency int
	log         *slog.Logger
}

// NewPublisher creates a publisher with DefaultConcurrency.
func NewPublisher(up Uploader, log *slog.Logger) *Publisher {
	return &Publisher{
		up:          up,
		concurrency: DefaultConcurrency,
		log:         log.With(logger.Scope("publish")),
	}
}

// WithConcurrency sets the upload limit. Values below one mean one.
func (p *Publisher) WithConcurrency(n int) *Publisher {
	p.concurrency = max(n, 1)
	return p
}

// Publish uploads every regular file under dir, keyed by prefix plus its
// slash-separated path relative to dir. The first failure cancels the
// remaining uploads. Results are sorted by key.
func (p *Publisher) Publish(ctx context.Context, dir, prefix string) ([]storage.UploadResult, error) {
	names, err := listFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("nothing to publish in %s", dir)
	}

	results := make([]storage.UploadResult, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, name := range names {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			key, err := storage.ObjectKey(prefix, name)
			if err != nil {
				return err
			}

			res, err := p.upload(ctx, filepath.Join(dir, filepath.FromSlash(name)), key, name)
			if err != nil {
				metrics.PublishedObjects.WithLabelValues("error").Inc()
				return fmt.Errorf("publish %s: %w", name, err)
			}
			metrics.PublishedObjects.WithLabelValues("ok").Inc()

			results[i] = *res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		p.log.Error("publish failed", logger.Error(err))
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Key < results[j].Key })

	p.log.Info("site published",
		slog.String("dir", dir),
		slog.String("prefix", prefix),
		slog.Int("objects", len(results)),
	)
	return results, nil
}

func (p *Publisher) upload(ctx context.Context, file, key, name string) (*storage.UploadResult, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	return p.up.Upload(ctx, key, f, info.Size(), uploadOptions(name))
}

func uploadOptions(name string) storage.UploadOptions {
	opts := storage.UploadOptions{
		ContentType:  mime.TypeByExtension(path.Ext(name)),
		CacheControl: staticCacheControl,
	}
	if opts.ContentType == "" {
		opts.ContentType = "application/octet-stream"
	}
	if name == IndexFile {
		opts.CacheControl = indexCacheControl
	}
	return opts
}

// listFiles returns the slash-separated paths of regular files under dir.
func listFiles(dir string) ([]string, error) {
	var names []string
	err := fs.WalkDir(os.DirFS(dir), ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			names = append(names, name)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	return names, nil
}
