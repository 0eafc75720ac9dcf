package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Page rendering metrics
	PageRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "landing_page_renders_total",
		Help: "Total number of landing page renders",
	}, []string{"target", "result"})

	PageRenderSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "landing_page_render_seconds",
		Help:    "Time spent rendering the landing page document",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 10),
	})

	PageBytes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "landing_page_bytes",
		Help: "Size in bytes of the most recently rendered landing page",
	})

	// HTTP metrics
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "landing_http_requests_total",
		Help: "Total HTTP requests served by route pattern and status",
	}, []string{"route", "status"})

	// Publishing metrics
	PublishedObjects = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "landing_published_objects_total",
		Help: "Total objects uploaded to the site bucket",
	}, []string{"result"})
)
