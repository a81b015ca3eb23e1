package fwchart

import (
	"math"
	"testing"
)

func TestNewMetrics(t *testing.T) {
	t.Parallel()

	s := make(Series, 0, 10002)
	for i := 1; i <= 10000; i++ {
		s = append(s, Sample{X: float64(i), Y: float64(i)})
	}
	s = append(s, Sample{X: math.NaN(), Y: 1}, Sample{X: 1, Y: math.Inf(1)})

	m := NewMetrics(s, NewTdigestEstimator(100))

	if got, want := m.Count, 10000; got != want {
		t.Errorf("Count: got %d, want %d", got, want)
	}
	if got, want := m.Skipped, 2; got != want {
		t.Errorf("Skipped: got %d, want %d", got, want)
	}
	if m.Min != 1 || m.Max != 10000 {
		t.Errorf("extremes: got [%v, %v], want [1, 10000]", m.Min, m.Max)
	}
	if got, want := m.Mean, 5000.5; got != want {
		t.Errorf("Mean: got %v, want %v", got, want)
	}
	for _, q := range []struct {
		name string
		got  float64
		want float64
	}{
		{"P50", m.P50, 5000},
		{"P90", m.P90, 9000},
		{"P95", m.P95, 9500},
		{"P99", m.P99, 9900},
	} {
		if math.Abs(q.got-q.want) > 0.02*q.want {
			t.Errorf("%s: got %v, want ~%v", q.name, q.got, q.want)
		}
	}
}

func TestNewMetrics_Empty(t *testing.T) {
	t.Parallel()

	m := NewMetrics(nil, NewTdigestEstimator(100))
	if m.Count != 0 || m.Skipped != 0 {
		t.Errorf("got %+v", m)
	}
	if !math.IsNaN(m.Min) || !math.IsNaN(m.Max) {
		t.Errorf("extremes: got [%v, %v], want NaN", m.Min, m.Max)
	}
}

func TestEstimators(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"tdigest", "quantile", "gk", "perks"} {
		est, err := NewEstimator(name)
		if err != nil {
			t.Fatal(err)
		}
		for i := 1; i <= 1000; i++ {
			est.Add(float64(i))
		}
		if got, want := est.Get(0.5), 500.0; math.Abs(got-want) > 0.05*want {
			t.Errorf("%s: P50 got %v, want ~%v", name, got, want)
		}
	}

	if _, err := NewEstimator("bogus"); err == nil {
		t.Error("bogus estimator: got nil error")
	}
	if est, err := NewEstimator(""); err != nil || est == nil {
		t.Errorf("default estimator: got %v, %v", est, err)
	}
}

func TestRobustDomain(t *testing.T) {
	t.Parallel()

	s := make(Series, 0, 101)
	for i := 0; i < 100; i++ {
		s = append(s, Sample{X: float64(i), Y: float64(i)})
	}
	s = append(s, Sample{X: 100, Y: 1e9})

	d := RobustDomain(s, 0.05, NewTdigestEstimator(100))
	if d.Max >= 1e9 {
		t.Errorf("outlier not clipped: %+v", d)
	}
	if d.Min > 20 || d.Max < 80 {
		t.Errorf("domain too narrow: %+v", d)
	}

	// Short series keep their plain extent.
	short := Series{{X: 0, Y: 1}, {X: 1, Y: 100}}
	d = RobustDomain(short, 0.05, NewTdigestEstimator(100))
	if d.Min != 1 || d.Max != 100 {
		t.Errorf("short series: got %+v, want extent", d)
	}

	// Out-of-range quantiles degrade to the extent.
	d = RobustDomain(s, 0, NewTdigestEstimator(100))
	if d.Min != 0 || d.Max != 1e9 {
		t.Errorf("q=0: got %+v, want extent", d)
	}
}
