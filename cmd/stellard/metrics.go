package main

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MetricsCollector struct {
	tickDuration     prometheus.Histogram
	framesTotal      prometheus.Counter
	connectedClients prometheus.Gauge
	requestsTotal    *prometheus.CounterVec
}

func NewMetricsCollector() *MetricsCollector {
	m := &MetricsCollector{
		tickDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sim_tick_duration_seconds",
				Help:    "Time spent advancing the world per tick",
				Buckets: prometheus.ExponentialBuckets(1e-5, 4, 8),
			},
		),
		framesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "ws_frames_sent_total",
				Help: "Total snapshot frames sent to websocket clients",
			},
		),
		connectedClients: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "ws_connected_clients",
				Help: "Currently connected websocket clients",
			},
		),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_requests_total",
				Help: "Total API requests",
			},
			[]string{"endpoint"},
		),
	}

	// Register metrics
	prometheus.MustRegister(m.tickDuration)
	prometheus.MustRegister(m.framesTotal)
	prometheus.MustRegister(m.connectedClients)
	prometheus.MustRegister(m.requestsTotal)

	return m
}

func (m *MetricsCollector) ObserveTick(d time.Duration) {
	m.tickDuration.Observe(d.Seconds())
}

func (m *MetricsCollector) RecordFrame() {
	m.framesTotal.Inc()
}

func (m *MetricsCollector) ClientConnected() {
	m.connectedClients.Inc()
}

func (m *MetricsCollector) ClientDisconnected() {
	m.connectedClients.Dec()
}

func (m *MetricsCollector) RecordRequest(endpoint string) {
	m.requestsTotal.WithLabelValues(endpoint).Inc()
}

func (m *MetricsCollector) Handler() http.Handler {
	return promhttp.Handler()
}
