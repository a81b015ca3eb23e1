package fwchart

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
)

// A Reporter function writes out a report to the given io.Writer and
// returns an error in case of failure.
type Reporter func(io.Writer) error

// Report is an adapter method calling the Reporter function itself
// with the given parameters.
func (rep Reporter) Report(w io.Writer) error { return rep(w) }

// NewTextReporter returns a Reporter that writes out Metrics and an
// optional Histogram as aligned, formatted text.
func NewTextReporter(m *Metrics, h *Histogram) Reporter {
	return func(w io.Writer) error {
		tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.StripEscape)

		fmt.Fprintf(tw, "Samples\t[total, skipped]\t%d, %d\n", m.Count, m.Skipped)
		fmt.Fprintf(tw, "Values\t[min, mean, max]\t%s, %s, %s\n",
			formatValue(m.Min), formatValue(m.Mean), formatValue(m.Max))
		fmt.Fprintf(tw, "Quantiles\t[50, 90, 95, 99]\t%s, %s, %s, %s\n",
			formatValue(m.P50), formatValue(m.P90), formatValue(m.P95), formatValue(m.P99))

		if h != nil {
			fmt.Fprintf(tw, "\nBucket\t\tCount\n")
			for i, count := range h.Counts {
				left, right := h.Buckets.Nth(i)
				fmt.Fprintf(tw, "[%s,\t%s]\t%d\n", left, right, count)
			}
		}

		return tw.Flush()
	}
}

// NewJSONReporter returns a Reporter that writes out Metrics as JSON.
func NewJSONReporter(m *Metrics) Reporter {
	return func(w io.Writer) error {
		return json.NewEncoder(w).Encode(m)
	}
}

// NewAxisReporter returns a Reporter that writes out the segments of
// an axis as aligned, formatted text: tick boundaries, sizes, weights
// and allotted pixel lengths.
func NewAxisReporter(a *Axis) Reporter {
	return func(w io.Writer) error {
		tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.StripEscape)

		if a.Range.Single != nil {
			fmt.Fprintf(tw, "Single\t%s\t%v\n",
				formatValue(a.Range.Single.Value), a.Range.Single.Labels)
			return tw.Flush()
		}

		fmt.Fprintf(tw, "Min\tMax\tSize\tWeight\tPixels\tLabels\n")
		for i, seg := range a.Range.Segments {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%.6g\t%.2f\t%v\n",
				formatValue(seg.Min.Value), formatValue(seg.Max.Value),
				formatValue(seg.Size), seg.Weight, a.SegmentLength(i), seg.Max.Labels)
		}
		return tw.Flush()
	}
}

// NewPointsReporter returns a Reporter that writes out decimated
// points as newline delimited JSON.
func NewPointsReporter(points []Point) Reporter {
	return func(w io.Writer) error {
		bw := bufio.NewWriter(w)
		for i := range points {
			data, err := points[i].MarshalJSON()
			if err != nil {
				return err
			}
			if _, err = bw.Write(data); err != nil {
				return err
			}
			if err = bw.WriteByte('\n'); err != nil {
				return err
			}
		}
		return bw.Flush()
	}
}
