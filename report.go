package main

import (
	"flag"
	"fmt"
	"os"
	"syscall"

	fwchart "github.com/desweemerl/fwchart/lib"
	"github.com/desweemerl/fwchart/internal/flagutil"
)

const reportUsage = `Usage: fwchart report [options] [<file>...]

Outputs a report of the values of the input series.

Arguments:
  <file>  A file with samples encoded in one of the supported
          encodings (gob | json | csv) [default: stdin]

Options:
  --type       Report type with options [text, json,
               hist[buckets]] [default: text]
  --estimator  Quantile estimator [tdigest, quantile, gk, perks]
               [default: tdigest]
  --output     Output file [default: stdout]

Examples:
  fwchart report samples.csv
  cat samples.json | fwchart report -type='hist[0,10,100,1000]'
  fwchart report -type=json -estimator=gk samples.json`

func reportCmd() command {
	fs := flag.NewFlagSet("fwchart report", flag.ExitOnError)
	typ := fs.String("type", "text", "Report type with options [text, json, hist[buckets]]")
	estimator := fs.String("estimator", "tdigest", "Quantile estimator [tdigest, quantile, gk, perks]")
	out := os.NewFile(uintptr(syscall.Stdout), "stdout")
	fs.Var(&flagutil.File{
		File:  out,
		Flags: os.O_WRONLY | os.O_TRUNC | os.O_CREATE,
		Mode:  0666,
	}, "output", "Output file")
	var maxBytes int64 = -1
	fs.Var(&flagutil.Size{Bytes: &maxBytes}, "max-input", "Max bytes to read per input [default: unlimited]")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, reportUsage)
	}

	return command{fs, func(args []string) error {
		fs.Parse(args)
		files := fs.Args()
		if len(files) == 0 {
			files = append(files, "stdin")
		}
		return report(files, *typ, *estimator, out, maxBytes)
	}}
}

func report(files []string, typ, estimator string, out *os.File, maxBytes int64) error {
	series, err := readSeries(files, maxBytes)
	if err != nil {
		return err
	}

	est, err := fwchart.NewEstimator(estimator)
	if err != nil {
		return err
	}
	m := fwchart.NewMetrics(series, est)

	var rep fwchart.Reporter
	switch {
	case typ == "text":
		rep = fwchart.NewTextReporter(m, nil)
	case typ == "json":
		rep = fwchart.NewJSONReporter(m)
	case len(typ) > 4 && typ[:4] == "hist":
		var buckets fwchart.Buckets
		if err := buckets.UnmarshalText([]byte(typ[4:])); err != nil {
			return err
		}
		h := &fwchart.Histogram{Buckets: buckets}
		for _, s := range series {
			h.Observe(s.Y)
		}
		rep = fwchart.NewTextReporter(m, h)
	default:
		return fmt.Errorf("unsupported report type: %s", typ)
	}

	defer out.Close()
	return rep.Report(out)
}
