package fwchart

import (
	"fmt"
	"strconv"
	"strings"
)

// Buckets represents a Histogram's value buckets. The last bucket is
// open ended.
type Buckets []float64

// Histogram is a bucketed distribution of series values.
type Histogram struct {
	Buckets Buckets
	Counts  []uint64
	Total   uint64
}

// Observe finds the right bucket for the given value and increases
// its count by one as well as the total count. Non-finite values are
// skipped.
func (h *Histogram) Observe(v float64) {
	if !isFinite(v) {
		return
	}
	if len(h.Counts) != len(h.Buckets) {
		h.Counts = make([]uint64, len(h.Buckets))
	}

	var i int
	for ; i < len(h.Buckets)-1; i++ {
		if v >= h.Buckets[i] && v < h.Buckets[i+1] {
			break
		}
	}

	h.Total++
	h.Counts[i]++
}

// Nth returns the nth bucket represented as a string.
func (bs Buckets) Nth(i int) (left, right string) {
	if i >= len(bs)-1 {
		return formatValue(bs[i]), "+Inf"
	}
	return formatValue(bs[i]), formatValue(bs[i+1])
}

// UnmarshalText implements the encoding.TextUnmarshaler interface,
// parsing buckets in the form [0,10,100,1000].
func (bs *Buckets) UnmarshalText(value []byte) error {
	if len(value) < 2 || value[0] != '[' || value[len(value)-1] != ']' {
		return fmt.Errorf("bad buckets: %s", value)
	}
	for _, v := range strings.Split(string(value[1:len(value)-1]), ",") {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return err
		}
		*bs = append(*bs, f)
	}
	if len(*bs) == 0 {
		return fmt.Errorf("bad buckets: %s", value)
	}
	return nil
}
