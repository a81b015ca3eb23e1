package fwchart

import (
	"math"

	"github.com/c2h5oh/datasize"
)

type cell struct{ x, y int }

// A TooltipIndex is a transient spatial index of decimated points,
// keyed by rounded pixel coordinates. It is rebuilt on every render
// pass and discarded with it.
type TooltipIndex struct {
	cells map[cell]*Point
}

// NewTooltipIndex indexes the given points by pixel cell. When
// several points share a cell the earliest one wins, keeping lookup
// deterministic.
func NewTooltipIndex(points []Point) *TooltipIndex {
	ix := &TooltipIndex{cells: make(map[cell]*Point, len(points))}
	for i := range points {
		c := cell{x: int(math.Round(points[i].PixelX)), y: int(math.Round(points[i].PixelY))}
		if _, ok := ix.cells[c]; !ok {
			ix.cells[c] = &points[i]
		}
	}
	return ix
}

// Query returns the indexed point nearest to the pixel position
// within the given radius, or nil. The exact cell is probed first;
// on a miss the search expands ring by ring in a diamond, probing
// vertical neighbors before horizontal ones within each ring, and
// returns the first hit.
func (ix *TooltipIndex) Query(x, y, radius int) *Point {
	if p, ok := ix.cells[cell{x, y}]; ok {
		return p
	}
	for d := 1; d <= radius; d++ {
		probes := [4]cell{{x, y - d}, {x, y + d}, {x - d, y}, {x + d, y}}
		for _, c := range probes {
			if p, ok := ix.cells[c]; ok {
				return p
			}
		}
		for i := 1; i < d; i++ {
			j := d - i
			diag := [4]cell{{x - i, y - j}, {x + i, y - j}, {x - i, y + j}, {x + i, y + j}}
			for _, c := range diag {
				if p, ok := ix.cells[c]; ok {
					return p
				}
			}
		}
	}
	return nil
}

// Len returns the number of occupied cells.
func (ix *TooltipIndex) Len() int { return len(ix.cells) }

// A TooltipFormatter renders the tooltip lines for a point. Charts
// resolve the formatter through a per-series lookup map.
type TooltipFormatter interface {
	Format(p Point) []string
}

// TooltipFormatterFunc adapts a function to the TooltipFormatter
// interface.
type TooltipFormatterFunc func(p Point) []string

// Format implements the TooltipFormatter interface.
func (f TooltipFormatterFunc) Format(p Point) []string { return f(p) }

// ValueFormatter renders plain x/y value lines.
func ValueFormatter() TooltipFormatter {
	return TooltipFormatterFunc(func(p Point) []string {
		return []string{formatValue(p.X), formatValue(p.Y)}
	})
}

// TimeFormatter renders the x value as a timestamp line followed by
// the y value.
func TimeFormatter(layout string) TooltipFormatter {
	if layout == "" {
		layout = "2006-01-02 15:04:05.000"
	}
	return TooltipFormatterFunc(func(p Point) []string {
		return []string{p.Time().UTC().Format(layout), formatValue(p.Y)}
	})
}

// ByteFormatter renders the y value as a human readable byte size,
// for series measuring data volumes.
func ByteFormatter() TooltipFormatter {
	return TooltipFormatterFunc(func(p Point) []string {
		if p.Y < 0 || !isFinite(p.Y) {
			return []string{formatValue(p.X), formatValue(p.Y)}
		}
		return []string{
			formatValue(p.X),
			datasize.ByteSize(math.Round(p.Y)).HumanReadable(),
		}
	})
}
