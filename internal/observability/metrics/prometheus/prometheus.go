package prometheus

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var requestMetrics = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Request durations by status code and operation.",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"status", "op"},
)

func init() {
	prometheus.MustRegister(requestMetrics)
}

func ObserveRequest(d time.Duration, status int, op string) {
	requestMetrics.With(
		prometheus.Labels{
			"status": strconv.Itoa(status),
			"op":     op,
		},
	).Observe(d.Seconds())
}

type Metric struct {
	srv *http.Server
	log *zap.Logger
}

func New(port int, log *zap.Logger) *Metric {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &Metric{
		srv: &http.Server{
			Addr:    fmt.Sprintf(":%v", port),
			Handler: mux,
		},
		log: log,
	}
}

// Start serves /metrics until ctx is cancelled.
func (m *Metric) Start(ctx context.Context) {
	go func() {
		<-ctx.Done()
		if err := m.srv.Shutdown(context.Background()); err != nil {
			m.log.Warn("error shutting down metrics server", zap.Error(err))
		}
	}()

	err := m.srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		m.log.Warn("metrics server error", zap.Error(err))
	}
}
