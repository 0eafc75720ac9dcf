package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanrauch/restaurant-ai-landing/internal/config"
	"github.com/ryanrauch/restaurant-ai-landing/internal/content"
	"github.com/ryanrauch/restaurant-ai-landing/internal/page"
	"github.com/ryanrauch/restaurant-ai-landing/internal/storage"
	"github.com/ryanrauch/restaurant-ai-landing/internal/version"
)

func newRouter(t *testing.T, site content.Site, cfg *config.Config) *chi.Mux {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := storage.NewService(cfg, log)
	require.NoError(t, err)
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(page.NewApp(site, log), store, log))
	return r
}

func serve(r http.Handler, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestLandingPage(t *testing.T) {
	r := newRouter(t, content.Default().WithYear(2025), &config.Config{})

	rec := serve(r, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "<!DOCTYPE html>"))

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, page.DocumentTitle, doc.Find("title").Text())
	assert.Equal(t, 3, doc.Find("div[data-tier]").Length())
}

func TestLandingPage_Head(t *testing.T) {
	r := newRouter(t, content.Default().WithYear(2025), &config.Config{})

	rec := serve(r, http.MethodHead, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Zero(t, rec.Body.Len())
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name        string
		site        content.Site
		cfg         *config.Config
		wantCode    int
		wantStatus  string
		wantStorage string
	}{
		{
			name:        "healthy without storage",
			site:        content.Default(),
			cfg:         &config.Config{},
			wantCode:    http.StatusOK,
			wantStatus:  "healthy",
			wantStorage: "disabled",
		},
		{
			name: "healthy with storage",
			site: content.Default(),
			cfg: &config.Config{Storage: config.StorageConfig{
				Bucket: "site", AccessKeyID: "ak", SecretAccessKey: "sk",
			}},
			wantCode:    http.StatusOK,
			wantStatus:  "healthy",
			wantStorage: "configured",
		},
		{
			name:        "invalid content",
			site:        content.Site{},
			cfg:         &config.Config{},
			wantCode:    http.StatusServiceUnavailable,
			wantStatus:  "unhealthy",
			wantStorage: "disabled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(newRouter(t, tt.site, tt.cfg), http.MethodGet, "/health")
			assert.Equal(t, tt.wantCode, rec.Code)

			var resp HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, version.Version, resp.Version)
			assert.NotEmpty(t, resp.Timestamp)
			assert.Equal(t, tt.wantStatus, resp.Checks["content"].Status)
			assert.Equal(t, tt.wantStorage, resp.Checks["storage"].Status)
		})
	}
}

func TestHealthz(t *testing.T) {
	rec := serve(newRouter(t, content.Default(), &config.Config{}), http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		wantCode int
		wantErr  string
	}{
		{"unknown path", http.MethodGet, "/menu", http.StatusNotFound, "not_found"},
		{"wrong method", http.MethodPost, "/", http.StatusMethodNotAllowed, "method_not_allowed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(newRouter(t, content.Default(), &config.Config{}), tt.method, tt.path)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

			var resp struct {
				Error struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantErr, resp.Error.Code)
			assert.NotEmpty(t, resp.Error.Message)
		})
	}
}
