package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/desweemerl/fwchart/internal/flagutil"
	"github.com/desweemerl/fwchart/lib/plot"
)

const plotUsage = `Usage: fwchart plot [options] [<file>...]

Outputs a self contained HTML page with an interactive plot of the
input series, one overlaid line per input file. Sample x values must
be millisecond timestamps in ascending order.

Arguments:
  <file>  A file with samples encoded in one of the supported
          encodings (gob | json | csv) [default: stdin]

Options:
  --title      Title and header of the resulting HTML page.
               [default: Fwchart Plot]
  --width      Plot area pixel width. [default: 800]
  --height     Plot area pixel height. [default: 400]
  --threshold  Threshold of data points to downsample series to.
               Series with less than --threshold number of points
               are not downsampled. [default: 4000]
  --names      Comma separated list of series names overriding the
               input file names, matched by position.

Examples:
  cat samples.json | fwchart plot > plot.html
  fwchart plot -title="Latency" series1.json series2.json > plot.html`

func plotCmd() command {
	fs := flag.NewFlagSet("fwchart plot", flag.ExitOnError)
	title := fs.String("title", "Fwchart Plot", "Title and header of the resulting HTML page")
	width := fs.Float64("width", 800, "Plot area pixel width")
	height := fs.Float64("height", 400, "Plot area pixel height")
	threshold := fs.Int("threshold", 4000, "Threshold of data points above which series are downsampled.")
	out := os.NewFile(uintptr(syscall.Stdout), "stdout")
	fs.Var(&flagutil.File{
		File:  out,
		Flags: os.O_WRONLY | os.O_TRUNC | os.O_CREATE,
		Mode:  0666,
	}, "output", "Output file")
	var names []string
	fs.Var(&flagutil.StringList{List: &names}, "names", "Series names overriding the file names (comma separated list)")
	var maxBytes int64 = -1
	fs.Var(&flagutil.Size{Bytes: &maxBytes}, "max-input", "Max bytes to read per input [default: unlimited]")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, plotUsage)
	}

	return command{fs, func(args []string) error {
		fs.Parse(args)
		files := fs.Args()
		if len(files) == 0 {
			files = append(files, "stdin")
		}
		return plotRun(files, names, *title, *width, *height, *threshold, out, maxBytes)
	}}
}

func plotRun(files, names []string, title string, width, height float64, threshold int, out *os.File, maxBytes int64) error {
	p := plot.New(
		plot.Title(title),
		plot.Size(width, height),
		plot.Downsample(threshold),
	)

	for i, f := range files {
		series, err := readSeries([]string{f}, maxBytes)
		if err != nil {
			return err
		}
		name := seriesName(f, names, i)
		for _, s := range series {
			if err := p.Add(name, s.Time(), s.Y); err != nil {
				return fmt.Errorf("%s: %w", f, err)
			}
		}
	}

	defer out.Close()
	_, err := p.WriteTo(out)
	return err
}

// seriesName resolves the display name of the i-th input: the i-th
// entry of the -names list when given, the file base name otherwise.
func seriesName(file string, names []string, i int) string {
	if i < len(names) && names[i] != "" {
		return names[i]
	}
	return strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
}
