package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector groups the service metrics. A nil *Collector records nothing.
type Collector struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	scoresComputed      *prometheus.CounterVec
	scoreRejections     *prometheus.CounterVec
	dailyScore          prometheus.Histogram
}

// NewCollector creates the metrics and registers them with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "snacc_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"path", "method", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "snacc_http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),
		scoresComputed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "snacc_scores_computed_total",
				Help: "Scores computed, by kind",
			},
			[]string{"kind"},
		),
		scoreRejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "snacc_score_rejections_total",
				Help: "Score requests rejected as invalid input, by kind",
			},
			[]string{"kind"},
		),
		dailyScore: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "snacc_daily_score",
				Help:    "Distribution of computed daily Snacc Scores",
				Buckets: []float64{10, 25, 50, 75, 100, 110, 125, 150, 200, 300},
			},
		),
	}

	reg.MustRegister(
		c.httpRequestsTotal,
		c.httpRequestDuration,
		c.scoresComputed,
		c.scoreRejections,
		c.dailyScore,
	)
	return c
}

func (c *Collector) ObserveRequest(path, method, status string, seconds float64) {
	if c == nil {
		return
	}
	c.httpRequestsTotal.WithLabelValues(path, method, status).Inc()
	c.httpRequestDuration.WithLabelValues(path, method).Observe(seconds)
}

func (c *Collector) ScoreComputed(kind string) {
	if c == nil {
		return
	}
	c.scoresComputed.WithLabelValues(kind).Inc()
}

func (c *Collector) ScoreRejected(kind string) {
	if c == nil {
		return
	}
	c.scoreRejections.WithLabelValues(kind).Inc()
}

func (c *Collector) ObserveDailyScore(score float64) {
	if c == nil {
		return
	}
	c.dailyScore.Observe(score)
}
