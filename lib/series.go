package fwchart

import (
	"errors"
	"math"
	"sort"
	"time"

	tsz "github.com/tsenart/go-tsz"
)

// A Sample is a single observation in a series. X is either a plain
// value or a millisecond timestamp, depending on the series.
type Sample struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Time returns the sample's X interpreted as a millisecond timestamp.
func (s Sample) Time() time.Time {
	ms := int64(s.X)
	rem := s.X - float64(ms)
	return time.UnixMilli(ms).Add(time.Duration(rem * float64(time.Millisecond)))
}

// A Series is a sequence of Samples ordered ascending by X.
// Duplicate X values are permitted.
type Series []Sample

// Sort orders the series ascending by X.
func (s Series) Sort() {
	sort.SliceStable(s, func(i, j int) bool { return s[i].X < s[j].X })
}

// Sorted reports whether the series is ordered ascending by X.
// Samples with non-finite X are ignored.
func (s Series) Sorted() bool {
	prev := math.Inf(-1)
	for _, p := range s {
		if !isFinite(p.X) {
			continue
		}
		if p.X < prev {
			return false
		}
		prev = p.X
	}
	return true
}

// Extent returns the X and Y extents of the series, skipping samples
// with non-finite coordinates. Both domains are auto when the series
// holds no finite sample.
func (s Series) Extent() (x, y Domain) {
	x, y = AutoDomain(), AutoDomain()
	for _, p := range s {
		if !isFinite(p.X) || !isFinite(p.Y) {
			continue
		}
		x = x.include(p.X)
		y = y.include(p.Y)
	}
	return x, y
}

// A Domain is the [Min, Max] span an axis must cover. A NaN bound
// means "derive from data".
type Domain struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// AutoDomain returns a Domain with both bounds derived from data.
func AutoDomain() Domain {
	nan := math.NaN()
	return Domain{Min: nan, Max: nan}
}

// Auto reports whether both bounds are unset.
func (d Domain) Auto() bool { return math.IsNaN(d.Min) && math.IsNaN(d.Max) }

// Valid reports whether the set bounds of the domain are ordered.
func (d Domain) Valid() bool {
	return math.IsNaN(d.Min) || math.IsNaN(d.Max) || d.Min <= d.Max
}

// Merge fills the unset bounds of d from the given fallback domain.
// An invalid d degrades to the fallback entirely.
func (d Domain) Merge(fallback Domain) Domain {
	if !d.Valid() {
		return fallback
	}
	if math.IsNaN(d.Min) {
		d.Min = fallback.Min
	}
	if math.IsNaN(d.Max) {
		d.Max = fallback.Max
	}
	return d
}

// Union expands d to also cover the other domain.
func (d Domain) Union(other Domain) Domain {
	if math.IsNaN(d.Min) || other.Min < d.Min {
		d.Min = other.Min
	}
	if math.IsNaN(d.Max) || other.Max > d.Max {
		d.Max = other.Max
	}
	return d
}

func (d Domain) include(v float64) Domain {
	if math.IsNaN(d.Min) || v < d.Min {
		d.Min = v
	}
	if math.IsNaN(d.Max) || v > d.Max {
		d.Max = v
	}
	return d
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ErrMonotonicTimestamp is returned by Buffer.Add when timestamps
// regress.
var ErrMonotonicTimestamp = errors.New("fwchart: non monotonically increasing timestamp")

var errBufferFinished = errors.New("fwchart: buffer already materialized")

// A Buffer is an in-memory series of timestamped values with high
// compression of both timestamps and values. It is meant for ingesting
// large streams before materializing them as a Series. It's not safe
// for concurrent use.
type Buffer struct {
	prev     uint64
	data     *tsz.Series
	len      int
	finished bool
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{data: tsz.New(0)}
}

// Add appends a value at the given millisecond timestamp, which must
// not regress below the previously added one.
func (b *Buffer) Add(tms uint64, v float64) error {
	if b.finished {
		return errBufferFinished
	}
	if b.prev > tms {
		return ErrMonotonicTimestamp
	}
	b.data.Push(tms, v)
	b.prev = tms
	b.len++
	return nil
}

// Len returns the number of buffered values.
func (b *Buffer) Len() int { return b.len }

// Samples materializes the buffer as a Series ordered by timestamp.
// No values may be added afterwards.
func (b *Buffer) Samples() (Series, error) {
	if !b.finished {
		b.data.Finish()
		b.finished = true
	}
	s := make(Series, 0, b.len)
	it := b.data.Iter()
	for it.Next() {
		t, v := it.Values()
		s = append(s, Sample{X: float64(t), Y: v})
	}
	return s, it.Err()
}
