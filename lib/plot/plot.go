// Package plot renders the engine's computed axes and decimated
// series as a self contained interactive HTML page.
package plot

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"math"
	"sort"
	"strconv"
	"time"

	fwchart "github.com/desweemerl/fwchart/lib"
	"github.com/desweemerl/fwchart/lib/lttb"
)

// A Plot represents an interactive HTML time series plot of sample
// values over time.
type Plot struct {
	title     string
	width     float64
	height    float64
	threshold int
	series    map[string]*series
}

type series struct {
	name string
	buf  *fwchart.Buffer
}

// Opt is a functional option type for Plot.
type Opt func(*Plot)

// Title returns an Opt that sets the title of a Plot.
func Title(title string) Opt {
	return func(p *Plot) { p.title = title }
}

// Size returns an Opt that sets the pixel extents of the plotting
// area used for axis computation and decimation.
func Size(width, height float64) Opt {
	return func(p *Plot) { p.width, p.height = width, height }
}

// Downsample returns an Opt that enables extra LTTB downsampling to
// the given threshold number of points per series after decimation.
func Downsample(threshold int) Opt {
	return func(p *Plot) { p.threshold = threshold }
}

// New returns a Plot with the given Opts applied.
func New(opts ...Opt) *Plot {
	p := &Plot{
		width:  800,
		height: 400,
		series: map[string]*series{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Add buffers the given observation into the named series. Values
// must be added in timestamp order per series.
func (p *Plot) Add(name string, t time.Time, v float64) error {
	s, ok := p.series[name]
	if !ok {
		s = &series{name: name, buf: fwchart.NewBuffer()}
		p.series[name] = s
	}
	return s.buf.Add(uint64(t.UnixMilli()), v)
}

// WriteTo computes axes and decimated points for all buffered series
// and writes the HTML plot to the given io.Writer.
func (p *Plot) WriteTo(w io.Writer) (n int64, err error) {
	type dygraphsOpts struct {
		Title       string   `json:"title"`
		Labels      []string `json:"labels,omitempty"`
		YLabel      string   `json:"ylabel"`
		XLabel      string   `json:"xlabel"`
		Legend      string   `json:"legend"`
		ShowRoller  bool     `json:"showRoller"`
		StrokeWidth float64  `json:"strokeWidth"`
	}

	type plotData struct {
		Title  string
		Width  int
		Height int
		Data   template.JS
		Opts   template.JS
	}

	dp, labels, err := p.data()
	if err != nil {
		return 0, err
	}

	var sz int
	if len(dp) > 0 {
		sz = len(dp) * len(dp[0]) * 12 // heuristic
	}
	data := dp.append(make([]byte, 0, sz))

	opts := dygraphsOpts{
		Title:       p.title,
		Labels:      labels,
		YLabel:      "Value",
		XLabel:      "Time (ms since epoch)",
		Legend:      "always",
		ShowRoller:  true,
		StrokeWidth: 1.3,
	}

	optsJSON, err := json.MarshalIndent(&opts, "    ", " ")
	if err != nil {
		return 0, err
	}

	cw := countingWriter{w: w}
	err = plotTemplate.Execute(&cw, &plotData{
		Title:  p.title,
		Width:  int(p.width),
		Height: int(p.height),
		Data:   template.JS(data),
		Opts:   template.JS(optsJSON),
	})

	return cw.n, err
}

// data runs each buffered series through the decimation engine,
// optionally LTTB-downsampled further, and merges them into one
// dygraphs data table.
func (p *Plot) data() (dataPoints, []string, error) {
	names := make([]string, 0, len(p.series))
	for name := range p.series {
		names = append(names, name)
	}
	sort.Strings(names)

	chart := fwchart.New(fwchart.Size(p.width, p.height))
	defer chart.Close()

	var count int
	for _, name := range names {
		samples, err := p.series[name].buf.Samples()
		if err != nil {
			return nil, nil, err
		}
		if err = chart.AddSeries(name, samples, true); err != nil {
			return nil, nil, fmt.Errorf("series %q: %w", name, err)
		}
		count += len(samples)
	}
	chart.Recompute()

	var (
		size   = 1 + len(names)
		nan    = math.NaN()
		labels = make([]string, size)
		data   = make(dataPoints, 0, count)
	)
	labels[0] = "Time"

	for i, name := range names {
		points := chart.Points(name)

		ps := make([]lttb.Point, len(points))
		for j, pt := range points {
			ps[j] = lttb.Point{X: pt.X, Y: pt.Y}
		}
		if p.threshold > 2 && p.threshold < len(ps) {
			down, err := lttb.Downsample(ps, p.threshold)
			if err != nil {
				return nil, nil, fmt.Errorf("series %q: %w", name, err)
			}
			ps = down
		}

		for _, pt := range ps {
			row := make([]float64, size)
			for j := range row {
				row[j] = nan
			}
			row[0], row[i+1] = pt.X, pt.Y
			data = append(data, row)
		}
		labels[i+1] = name
	}

	sort.Sort(data)

	return data, labels, nil
}

type countingWriter struct {
	n int64
	w io.Writer
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

type dataPoints [][]float64

func (ps dataPoints) Len() int { return len(ps) }

func (ps dataPoints) Less(i, j int) bool {
	// Sort by the time column.
	return ps[i][0] < ps[j][0]
}

func (ps dataPoints) Swap(i, j int) {
	ps[i], ps[j] = ps[j], ps[i]
}

func (ps dataPoints) append(buf []byte) []byte {
	buf = append(buf, "[\n  "...)

	for i, p := range ps {
		buf = append(buf, "  ["...)

		for j, f := range p {
			if math.IsNaN(f) {
				buf = append(buf, "NaN"...)
			} else {
				buf = strconv.AppendFloat(buf, f, 'f', -1, 64)
			}

			if j < len(p)-1 {
				buf = append(buf, ',')
			}
		}

		if buf = append(buf, "]"...); i < len(ps)-1 {
			buf = append(buf, ",\n  "...)
		}
	}

	return append(buf, "  ]"...)
}

var plotTemplate = template.Must(template.New("plot").Parse(`<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/dygraph/2.2.1/dygraph.min.css">
  <script src="https://cdnjs.cloudflare.com/ajax/libs/dygraph/2.2.1/dygraph.min.js"></script>
</head>
<body>
  <div id="plot" style="width: {{.Width}}px; height: {{.Height}}px"></div>
  <script>
  new Dygraph(
    document.getElementById("plot"),
    {{.Data}},
    {{.Opts}}
  );
  </script>
</body>
</html>
`))
