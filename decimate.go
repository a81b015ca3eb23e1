package main

import (
	"flag"
	"fmt"
	"os"
	"syscall"

	fwchart "github.com/desweemerl/fwchart/lib"
	"github.com/desweemerl/fwchart/internal/flagutil"
)

const decimateUsage = `Usage: fwchart decimate [options] [<file>...]

Reduces the input series to at most four representative samples per
pixel column, preserving local extremes, and writes the decimated
points as newline delimited JSON.

Arguments:
  <file>  A file with samples encoded in one of the supported
          encodings (gob | json | csv) [default: stdin]

Options:
  --domain   X domain as "min:max" or "auto". [default: auto]
  --width    Plot area pixel width. [default: 800]
  --height   Plot area pixel height. [default: 400]
  --time     Treat x values as millisecond timestamps.
  --density  Target number of x ticks. [default: 8]

Examples:
  cat samples.json | fwchart decimate -width=640 -height=480 > points.json
  fwchart decimate -domain=0:1000 samples.csv`

func decimateCmd() command {
	fs := flag.NewFlagSet("fwchart decimate", flag.ExitOnError)
	opts := &decimateOpts{
		domain:   fwchart.AutoDomain(),
		maxBytes: -1,
		out:      os.NewFile(uintptr(syscall.Stdout), "stdout"),
	}

	fs.Var(&flagutil.Domain{Domain: &opts.domain}, "domain", "X domain [min:max | auto]")
	fs.Float64Var(&opts.width, "width", 800, "Plot area pixel width")
	fs.Float64Var(&opts.height, "height", 400, "Plot area pixel height")
	fs.BoolVar(&opts.timestamps, "time", false, "Treat x values as millisecond timestamps")
	fs.IntVar(&opts.density, "density", 8, "Target number of x ticks")
	fs.Var(&flagutil.Size{Bytes: &opts.maxBytes}, "max-input", "Max bytes to read per input [default: unlimited]")
	fs.Var(&flagutil.File{
		File:  opts.out,
		Flags: os.O_WRONLY | os.O_TRUNC | os.O_CREATE,
		Mode:  0666,
	}, "output", "Output file")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, decimateUsage)
	}

	return command{fs, func(args []string) error {
		fs.Parse(args)
		opts.files = fs.Args()
		if len(opts.files) == 0 {
			opts.files = append(opts.files, "stdin")
		}
		return decimate(opts)
	}}
}

type decimateOpts struct {
	files      []string
	domain     fwchart.Domain
	width      float64
	height     float64
	timestamps bool
	density    int
	maxBytes   int64
	out        *os.File
}

func decimate(opts *decimateOpts) error {
	series, err := readSeries(opts.files, opts.maxBytes)
	if err != nil {
		return err
	}

	ex, ey := series.Extent()
	dx := opts.domain.Merge(ex)

	x := fwchart.ComputeAxis(dx, opts.width, opts.density, false, opts.timestamps, nil)
	y := fwchart.ComputeAxis(ey, opts.height, 5, false, false, nil)

	points := fwchart.Decimate(series, x, y)

	defer opts.out.Close()
	return fwchart.NewPointsReporter(points).Report(opts.out)
}
