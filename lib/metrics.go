package fwchart

import (
	"fmt"
	"math"

	pquantile "github.com/bmizerany/perks/quantile"
	gk "github.com/dgryski/go-gk"
	"github.com/influxdata/tdigest"
	squantile "github.com/streadway/quantile"
)

// An Estimator estimates quantiles of a stream of values.
type Estimator interface {
	Add(value float64)
	Get(quantile float64) float64
}

// reportQuantiles are the quantiles computed by Metrics and the ones
// targeted estimators are tuned for.
var reportQuantiles = []float64{0.5, 0.9, 0.95, 0.99}

type tdigestEstimator struct{ *tdigest.TDigest }

func (e tdigestEstimator) Add(v float64)         { e.TDigest.Add(v, 1) }
func (e tdigestEstimator) Get(q float64) float64 { return e.TDigest.Quantile(q) }

// NewTdigestEstimator returns a t-digest based Estimator with the
// given compression factor.
func NewTdigestEstimator(compression float64) Estimator {
	return tdigestEstimator{TDigest: tdigest.NewWithCompression(compression)}
}

type streadwayEstimator struct{ *squantile.Estimator }

func (e streadwayEstimator) Add(v float64)         { e.Estimator.Add(v) }
func (e streadwayEstimator) Get(q float64) float64 { return e.Estimator.Get(q) }

// NewQuantileEstimator returns an Estimator tuned for the report
// quantiles with the given error bound.
func NewQuantileEstimator(epsilon float64) Estimator {
	estimates := make([]squantile.Estimate, 0, len(reportQuantiles))
	for _, q := range reportQuantiles {
		estimates = append(estimates, squantile.Known(q, epsilon))
	}
	return streadwayEstimator{Estimator: squantile.New(estimates...)}
}

type gkEstimator struct{ *gk.Stream }

func (e gkEstimator) Add(v float64)         { e.Stream.Insert(v) }
func (e gkEstimator) Get(q float64) float64 { return e.Stream.Query(q) }

// NewGkEstimator returns a Greenwald-Khanna based Estimator with the
// given error bound.
func NewGkEstimator(epsilon float64) Estimator {
	return gkEstimator{Stream: gk.New(epsilon)}
}

type perksEstimator struct{ *pquantile.Stream }

func (e perksEstimator) Add(v float64)         { e.Stream.Insert(v) }
func (e perksEstimator) Get(q float64) float64 { return e.Stream.Query(q) }

// NewPerksEstimator returns a targeted-quantile Estimator tuned for
// the report quantiles.
func NewPerksEstimator() Estimator {
	return perksEstimator{Stream: pquantile.NewTargeted(reportQuantiles...)}
}

// NewEstimator returns the Estimator implementation with the given
// name: tdigest, quantile, gk or perks.
func NewEstimator(name string) (Estimator, error) {
	switch name {
	case "", "tdigest":
		return NewTdigestEstimator(100), nil
	case "quantile":
		return NewQuantileEstimator(0.001), nil
	case "gk":
		return NewGkEstimator(0.001), nil
	case "perks":
		return NewPerksEstimator(), nil
	default:
		return nil, fmt.Errorf("unsupported estimator: %s", name)
	}
}

// Metrics holds the stats computed out of the Y values of a Series.
type Metrics struct {
	Count   int     `json:"count"`
	Skipped int     `json:"skipped"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Mean    float64 `json:"mean"`
	P50     float64 `json:"p50"`
	P90     float64 `json:"p90"`
	P95     float64 `json:"p95"`
	P99     float64 `json:"p99"`
}

// NewMetrics computes a Metrics struct out of the given series using
// the given quantile Estimator. Samples with non-finite coordinates
// are counted as skipped.
func NewMetrics(s Series, est Estimator) *Metrics {
	m := &Metrics{Min: math.NaN(), Max: math.NaN()}

	var sum float64
	for _, p := range s {
		if !finiteSample(p) {
			m.Skipped++
			continue
		}
		m.Count++
		sum += p.Y
		if math.IsNaN(m.Min) || p.Y < m.Min {
			m.Min = p.Y
		}
		if math.IsNaN(m.Max) || p.Y > m.Max {
			m.Max = p.Y
		}
		est.Add(p.Y)
	}

	if m.Count == 0 {
		return m
	}

	m.Mean = sum / float64(m.Count)
	m.P50 = est.Get(0.5)
	m.P90 = est.Get(0.9)
	m.P95 = est.Get(0.95)
	m.P99 = est.Get(0.99)

	return m
}

// RobustDomain returns the Y domain clipped to the [q, 1-q] quantile
// span of the series, shielding auto-scaled axes from stray outliers.
// It degrades to the plain extent for very short series.
func RobustDomain(s Series, q float64, est Estimator) Domain {
	_, ext := s.Extent()
	if q <= 0 || q >= 0.5 {
		return ext
	}

	n := 0
	for _, p := range s {
		if !finiteSample(p) {
			continue
		}
		est.Add(p.Y)
		n++
	}
	if n < 16 {
		return ext
	}

	lo, hi := est.Get(q), est.Get(1-q)
	if !isFinite(lo) || !isFinite(hi) || lo > hi {
		return ext
	}
	return Domain{Min: lo, Max: hi}
}
