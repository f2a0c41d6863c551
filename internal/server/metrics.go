package server

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/matzehuels/wordcast/pkg/observability"
)

const namespace = "wordcast"

// PrometheusHooks records pipeline and HTTP events as Prometheus metrics.
// It implements both [observability.PipelineHooks] and
// [observability.HTTPHooks].
type PrometheusHooks struct {
	layouts         *prometheus.CounterVec
	wordsPlaced     prometheus.Counter
	wordsUnplaced   prometheus.Counter
	evaluations     prometheus.Counter
	budgetExhausted prometheus.Counter
	layoutDuration  prometheus.Histogram
	renders         *prometheus.CounterVec
	renderDuration  prometheus.Histogram

	inFlight        prometheus.Gauge
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestErrors   *prometheus.CounterVec
}

var (
	_ observability.PipelineHooks = (*PrometheusHooks)(nil)
	_ observability.HTTPHooks     = (*PrometheusHooks)(nil)
)

// NewPrometheusHooks registers the wordcast metrics with reg.
func NewPrometheusHooks(reg prometheus.Registerer) *PrometheusHooks {
	f := promauto.With(reg)
	return &PrometheusHooks{
		layouts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "layouts_total",
			Help:      "Layout runs by result.",
		}, []string{"result"}),
		wordsPlaced: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "words_placed_total",
			Help:      "Words placed across all layouts.",
		}),
		wordsUnplaced: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "words_unplaced_total",
			Help:      "Words that found no free position.",
		}),
		evaluations: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidate_evaluations_total",
			Help:      "Spiral candidates tested for overlap.",
		}),
		budgetExhausted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "budget_exhausted_total",
			Help:      "Layouts stopped by the evaluation budget.",
		}),
		layoutDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "layout_duration_seconds",
			Help:      "Time spent placing words.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
		}),
		renders: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Render runs by formats and result.",
		}, []string{"formats", "result"}),
		renderDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Time spent rendering artifacts.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
		}),
		inFlight: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Requests currently being served.",
		}),
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		requestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		requestErrors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_errors_total",
			Help:      "HTTP requests answered with an error body.",
		}, []string{"method", "route"}),
	}
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func (h *PrometheusHooks) OnLayoutStart(context.Context, int) {}

func (h *PrometheusHooks) OnLayoutComplete(_ context.Context, stats observability.LayoutStats, dur time.Duration, err error) {
	h.layouts.WithLabelValues(result(err)).Inc()
	h.layoutDuration.Observe(dur.Seconds())
	if err != nil {
		return
	}
	h.wordsPlaced.Add(float64(stats.Placed))
	h.wordsUnplaced.Add(float64(stats.Unplaced))
	h.evaluations.Add(float64(stats.Evaluations))
	if stats.BudgetExhausted {
		h.budgetExhausted.Inc()
	}
}

func (h *PrometheusHooks) OnRenderStart(context.Context, []string) {}

func (h *PrometheusHooks) OnRenderComplete(_ context.Context, formats []string, dur time.Duration, err error) {
	h.renders.WithLabelValues(strings.Join(formats, ","), result(err)).Inc()
	h.renderDuration.Observe(dur.Seconds())
}

func (h *PrometheusHooks) OnRequest(context.Context, string, string) {
	h.inFlight.Inc()
}

func (h *PrometheusHooks) OnResponse(_ context.Context, method, route string, status int, dur time.Duration) {
	h.inFlight.Dec()
	h.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	h.requestDuration.WithLabelValues(method, route).Observe(dur.Seconds())
}

func (h *PrometheusHooks) OnError(_ context.Context, method, route string, _ error) {
	h.requestErrors.WithLabelValues(method, route).Inc()
}
