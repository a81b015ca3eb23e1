// Package prom exposes chart recompute activity as Prometheus
// metrics.
package prom

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	fwchart "github.com/desweemerl/fwchart/lib"
)

// Metrics is a fwchart.Observer with exposition as a Prometheus
// metrics endpoint.
type Metrics struct {
	recomputeSecondsHistogram prometheus.Histogram
	recomputeTotalCounter     prometheus.Counter
	samplesInCounter          prometheus.Counter
	pointsOutCounter          prometheus.Counter
	seriesGauge               prometheus.Gauge
}

var _ fwchart.Observer = (*Metrics)(nil)

// NewMetrics returns a new Metrics instance that must be registered
// with a Prometheus registry before recompute passes are observed.
func NewMetrics() *Metrics {
	return &Metrics{
		recomputeSecondsHistogram: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "chart_recompute_seconds",
			Help:    "Duration of chart recompute passes",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		recomputeTotalCounter: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chart_recompute_total",
			Help: "Total number of chart recompute passes",
		}),
		samplesInCounter: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chart_samples_in_total",
			Help: "Samples scanned by recompute passes",
		}),
		pointsOutCounter: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chart_points_out_total",
			Help: "Decimated points produced by recompute passes",
		}),
		seriesGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "chart_series",
			Help: "Series present in the last recompute pass",
		}),
	}
}

// Register registers all the Metrics collectors with the given
// registry, returning the first registration error, if any.
func (pm *Metrics) Register(r prometheus.Registerer) error {
	for _, c := range pm.collectors() {
		if err := r.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// MustRegister is like Register but panics on registration errors.
func (pm *Metrics) MustRegister(r prometheus.Registerer) {
	r.MustRegister(pm.collectors()...)
}

func (pm *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		pm.recomputeSecondsHistogram,
		pm.recomputeTotalCounter,
		pm.samplesInCounter,
		pm.pointsOutCounter,
		pm.seriesGauge,
	}
}

// Observe implements the fwchart.Observer interface, recording the
// stats of one recompute pass.
func (pm *Metrics) Observe(s fwchart.RecomputeStats) {
	pm.recomputeSecondsHistogram.Observe(s.Duration.Seconds())
	pm.recomputeTotalCounter.Inc()
	pm.samplesInCounter.Add(float64(s.SamplesIn))
	pm.pointsOutCounter.Add(float64(s.PointsOut))
	pm.seriesGauge.Set(float64(s.Series))
}

// NewHandler returns a new http.Handler that exposes the metrics
// registered in the given registry in the Prometheus exposition
// format.
func NewHandler(reg *prometheus.Registry, startTime time.Time) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{
		ProcessStartTime: startTime,
	})
}
