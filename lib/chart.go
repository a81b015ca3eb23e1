package fwchart

import (
	"errors"
	"sort"
	"sync"
	"time"
)

// ErrUnsortedSeries is returned by AddSeries for series not ordered
// ascending by X.
var ErrUnsortedSeries = errors.New("fwchart: series not ordered by x")

// Config holds the axis and rendering configuration of a Chart.
type Config struct {
	// Width and Height are the pixel extents of the plotting area.
	Width, Height float64
	// XDensity and YDensity are the target tick counts per axis.
	XDensity, YDensity int
	// OnlyInteger forces integer y-axis boundaries, for count-like
	// series.
	OnlyInteger bool
	// RobustY, when > 0, clips the auto y domain to the
	// [RobustY, 1-RobustY] quantile span of the data.
	RobustY float64
	// Location is the calendar frame for time axes. Nil means UTC.
	Location *time.Location
}

// RecomputeStats describes one completed recompute pass.
type RecomputeStats struct {
	Duration  time.Duration
	Series    int
	SamplesIn int
	PointsOut int
}

// An Observer is notified after every recompute pass.
type Observer interface {
	Observe(RecomputeStats)
}

// Opt is a functional option type for Chart.
type Opt func(*Chart)

// Size returns an Opt that sets the pixel extents of the chart.
func Size(width, height float64) Opt {
	return func(c *Chart) { c.cfg.Width, c.cfg.Height = width, height }
}

// Densities returns an Opt that sets the target tick counts.
func Densities(x, y int) Opt {
	return func(c *Chart) { c.cfg.XDensity, c.cfg.YDensity = x, y }
}

// OnlyInteger returns an Opt that forces integer y-axis boundaries.
func OnlyInteger() Opt {
	return func(c *Chart) { c.cfg.OnlyInteger = true }
}

// RobustY returns an Opt that clips the auto y domain to the
// [q, 1-q] quantile span of the data.
func RobustY(q float64) Opt {
	return func(c *Chart) { c.cfg.RobustY = q }
}

// Location returns an Opt that sets the calendar frame of time axes.
func Location(loc *time.Location) Opt {
	return func(c *Chart) { c.cfg.Location = loc }
}

// WithObserver returns an Opt that registers a recompute Observer.
func WithObserver(o Observer) Opt {
	return func(c *Chart) { c.obs = o }
}

type chartSeries struct {
	samples    Series
	timestamps bool
}

// A Chart owns the computed state of one chart instance: its series,
// axes, decimated points and tooltip index. Chart instances share no
// state with each other. All methods are safe for concurrent use.
type Chart struct {
	mu         sync.Mutex
	cfg        Config
	series     map[string]*chartSeries
	names      []string
	hint       Domain
	formatters map[string]TooltipFormatter
	obs        Observer
	sched      *scheduler

	x, y   *Axis
	points map[string][]Point
	index  *TooltipIndex
	owner  map[*Point]string
}

// New returns a Chart with the given Opts applied.
func New(opts ...Opt) *Chart {
	c := &Chart{
		cfg:        Config{Width: 800, Height: 400, XDensity: 8, YDensity: 5},
		series:     map[string]*chartSeries{},
		formatters: map[string]TooltipFormatter{},
		hint:       AutoDomain(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.sched = newScheduler()
	return c
}

// Close stops the deferred-recompute worker. Pending requests that
// have not started are dropped.
func (c *Chart) Close() { c.sched.close() }

// AddSeries registers the named series. The flag marks X values as
// millisecond timestamps, which selects the calendar x axis.
func (c *Chart) AddSeries(name string, s Series, timestamps bool) error {
	if !s.Sorted() {
		return ErrUnsortedSeries
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.series[name]; !ok {
		c.names = append(c.names, name)
		sort.Strings(c.names)
	}
	c.series[name] = &chartSeries{samples: s, timestamps: timestamps}
	return nil
}

// RemoveSeries drops the named series.
func (c *Chart) RemoveSeries(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.series[name]; !ok {
		return
	}
	delete(c.series, name)
	for i, n := range c.names {
		if n == name {
			c.names = append(c.names[:i], c.names[i+1:]...)
			break
		}
	}
}

// SetFormatter registers the tooltip formatter for the named series.
func (c *Chart) SetFormatter(series string, f TooltipFormatter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.formatters[series] = f
}

// SetDomainHint installs an externally supplied zoom window for the
// x axis. An invalid hint (min > max) degrades to auto on recompute.
func (c *Chart) SetDomainHint(d Domain) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hint = d
}

// RequestRecompute defers a full recompute (range rebuild plus
// decimation) so the caller returns immediately. Bursts of requests
// coalesce: only the state at the time the deferred pass runs is
// computed, and passes never overlap.
func (c *Chart) RequestRecompute() {
	c.sched.submit(c.Recompute)
}

// Recompute synchronously rebuilds axes, decimated points and the
// tooltip index from the current series, hint and config.
func (c *Chart) Recompute() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recomputeLocked()
}

func (c *Chart) recomputeLocked() {
	began := time.Now()

	dataX, dataY := AutoDomain(), AutoDomain()
	timestamps := len(c.names) > 0
	samplesIn := 0
	for _, name := range c.names {
		s := c.series[name]
		ex, ey := s.samples.Extent()
		if c.cfg.RobustY > 0 {
			ey = RobustDomain(s.samples, c.cfg.RobustY, NewTdigestEstimator(100))
		}
		dataX = dataX.Union(ex)
		dataY = dataY.Union(ey)
		timestamps = timestamps && s.timestamps
		samplesIn += len(s.samples)
	}

	dx := c.hint.Merge(dataX)
	if !dx.Valid() {
		dx = dataX
	}

	var xr Range
	if timestamps {
		xr = BuildTimeIn(dx.Min, dx.Max, c.cfg.XDensity, c.cfg.Location)
	} else {
		xr = BuildLinear(dx.Min, dx.Max, c.cfg.XDensity, false, false)
	}
	yr := BuildLinear(dataY.Min, dataY.Max, c.cfg.YDensity, false, c.cfg.OnlyInteger)

	c.x = NewAxis(xr, c.cfg.Width)
	c.y = NewAxis(yr, c.cfg.Height)

	c.points = make(map[string][]Point, len(c.names))
	total := 0
	for _, name := range c.names {
		pts := Decimate(c.series[name].samples, c.x, c.y)
		c.points[name] = pts
		total += len(pts)
	}

	// One flat slice backs the tooltip index so a hit can be traced
	// back to its owning series.
	all := make([]Point, 0, total)
	for _, name := range c.names {
		all = append(all, c.points[name]...)
	}
	c.index = NewTooltipIndex(all)
	c.owner = make(map[*Point]string, len(all))
	i := 0
	for _, name := range c.names {
		for range c.points[name] {
			c.owner[&all[i]] = name
			i++
		}
	}

	if c.obs != nil {
		c.obs.Observe(RecomputeStats{
			Duration:  time.Since(began),
			Series:    len(c.names),
			SamplesIn: samplesIn,
			PointsOut: total,
		})
	}
}

// Axes returns the axes of the last recompute pass, or nil before the
// first one.
func (c *Chart) Axes() (x, y *Axis) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.x, c.y
}

// Points returns the decimated points of the named series from the
// last recompute pass.
func (c *Chart) Points(name string) []Point {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.points[name]
}

// QueryTooltip returns the series name and point nearest to the given
// pixel position within radius, or "" and nil.
func (c *Chart) QueryTooltip(x, y, radius int) (string, *Point) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.index == nil {
		return "", nil
	}
	p := c.index.Query(x, y, radius)
	if p == nil {
		return "", nil
	}
	return c.owner[p], p
}

// TooltipLines renders the tooltip for a point of the named series,
// resolving the formatter through the per-series lookup map. Series
// without a registered formatter fall back to the time or value
// formatter depending on their x kind.
func (c *Chart) TooltipLines(series string, p Point) []string {
	c.mu.Lock()
	f, ok := c.formatters[series]
	if !ok {
		if s, found := c.series[series]; found && s.timestamps {
			f = TimeFormatter("")
		} else {
			f = ValueFormatter()
		}
	}
	c.mu.Unlock()
	return f.Format(p)
}

// ComputeAxis builds the range and pixel geometry of a single axis
// from a resolved domain. Invalid domains degrade to the empty
// sentinel range.
func ComputeAxis(d Domain, pixels float64, density int, onlyInteger, timestamps bool, loc *time.Location) *Axis {
	if !d.Valid() {
		d = AutoDomain()
	}
	var r Range
	if timestamps {
		r = BuildTimeIn(d.Min, d.Max, density, loc)
	} else {
		r = BuildLinear(d.Min, d.Max, density, false, onlyInteger)
	}
	return NewAxis(r, pixels)
}
