package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// httpRequestsTotal counts handled requests by route and status
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "company_graph_http_requests_total",
		Help: "Total HTTP requests by route, method and status",
	}, []string{"route", "method", "status"})

	// httpRequestDuration tracks request latency by route
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "company_graph_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14), // 0.5ms to ~4s
	}, []string{"route"})

	// chartRenderDuration tracks chart rendering latency by result
	chartRenderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "company_graph_chart_render_duration_seconds",
		Help:    "Chart render duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	}, []string{"result"})

	graphNodes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "company_graph_nodes",
		Help: "Companies in the relationship graph",
	})

	graphEdges = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "company_graph_edges",
		Help: "Edges in the relationship graph by relation",
	}, []string{"relation"})
)

// ObserveRequest records one handled HTTP request
func ObserveRequest(route, method string, status int, latency time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(route).Observe(latency.Seconds())
}

// ObserveChartRender records one chart render attempt
func ObserveChartRender(d time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	chartRenderDuration.WithLabelValues(result).Observe(d.Seconds())
}

// SetGraphSize publishes the graph's node count and per-relation edge counts
func SetGraphSize(nodes int, edgesByRelation map[string]int) {
	graphNodes.Set(float64(nodes))
	for rel, n := range edgesByRelation {
		graphEdges.WithLabelValues(rel).Set(float64(n))
	}
}
