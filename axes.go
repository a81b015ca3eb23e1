package main

import (
	"flag"
	"fmt"
	"os"
	"syscall"

	fwchart "github.com/desweemerl/fwchart/lib"
	"github.com/desweemerl/fwchart/internal/flagutil"
)

const axesUsage = `Usage: fwchart axes [options] [<file>...]

Computes the tick segments and pixel geometry of an axis covering the
given domain, or the extent of the samples read from the input files.

Arguments:
  <file>  A file with samples encoded in one of the supported
          encodings (gob | json | csv) [default: none]

Options:
  --domain    Domain as "min:max", open bounds allowed ("min:", ":max"),
              or "auto" to derive it from the input samples.
  --density   Target number of ticks. [default: 8]
  --width     Axis pixel length. [default: 800]
  --time      Treat values as millisecond timestamps (calendar axis).
  --integer   Force integer axis boundaries.
  --extended  Extend ticks to the full step grid enclosing the domain.

Examples:
  fwchart axes -domain=3:97 -density=5 -width=800
  fwchart axes -time -domain=auto samples.json`

func axesCmd() command {
	fs := flag.NewFlagSet("fwchart axes", flag.ExitOnError)
	opts := &axesOpts{
		domain:   fwchart.AutoDomain(),
		maxBytes: -1,
		out:      os.NewFile(uintptr(syscall.Stdout), "stdout"),
	}

	fs.Var(&flagutil.Domain{Domain: &opts.domain}, "domain", "Axis domain [min:max | auto]")
	fs.IntVar(&opts.density, "density", 8, "Target number of ticks")
	fs.Float64Var(&opts.width, "width", 800, "Axis pixel length")
	fs.BoolVar(&opts.timestamps, "time", false, "Treat values as millisecond timestamps")
	fs.BoolVar(&opts.onlyInteger, "integer", false, "Force integer axis boundaries")
	fs.BoolVar(&opts.extended, "extended", false, "Extend ticks to the full step grid")
	fs.Var(&flagutil.Size{Bytes: &opts.maxBytes}, "max-input", "Max bytes to read per input [default: unlimited]")
	fs.Var(&flagutil.File{
		File:  opts.out,
		Flags: os.O_WRONLY | os.O_TRUNC | os.O_CREATE,
		Mode:  0666,
	}, "output", "Output file")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, axesUsage)
	}

	return command{fs, func(args []string) error {
		fs.Parse(args)
		opts.files = fs.Args()
		return axes(opts)
	}}
}

type axesOpts struct {
	files       []string
	domain      fwchart.Domain
	density     int
	width       float64
	timestamps  bool
	onlyInteger bool
	extended    bool
	maxBytes    int64
	out         *os.File
}

func axes(opts *axesOpts) error {
	domain := opts.domain
	if len(opts.files) > 0 {
		series, err := readSeries(opts.files, opts.maxBytes)
		if err != nil {
			return err
		}
		ext, _ := series.Extent()
		domain = domain.Merge(ext)
	}

	var r fwchart.Range
	switch {
	case opts.timestamps:
		r = fwchart.BuildTime(domain.Min, domain.Max, opts.density)
	default:
		r = fwchart.BuildLinear(domain.Min, domain.Max, opts.density, opts.extended, opts.onlyInteger)
	}
	axis := fwchart.NewAxis(r, opts.width)

	defer opts.out.Close()
	return fwchart.NewAxisReporter(axis).Report(opts.out)
}
