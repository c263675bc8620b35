// Package hist computes grey-level histograms and plots them as bar
// charts. Chart construction is delegated to gonum.org/v1/plot; this
// package only arranges the data the way the course's plots look:
// grey-level abscissa, frequency ordinate, one bar series per channel.
package hist

import (
	"fmt"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/essex-vision/sxcv/array"
	"github.com/essex-vision/sxcv/display"
)

// Compute builds the 256-bin grey-level histogram of an image.
//
// x holds the bin values 0..255. y holds one row of occurrence counts per
// channel: a single row for a monochrome image, one per channel otherwise.
// Samples outside [0, 255] (possible in Int arrays) are ignored rather
// than clamped, so mask arrays do not distort bin 0. Images of rank
// outside {2, 3} yield an error wrapping array.ErrInvalidShape.
func Compute(im *array.Image) (x []float64, y [][]float64, err error) {
	if r := im.Rank(); r != 2 && r != 3 {
		return nil, nil, fmt.Errorf("%w: I have a %d-dimensional image", array.ErrInvalidShape, r)
	}

	x = make([]float64, 256)
	for i := range x {
		x[i] = float64(i)
	}

	nc := im.Channels()
	if nc == 0 {
		counts := make([]float64, 256)
		for _, v := range im.Pix {
			if v >= 0 && v < 256 {
				counts[v]++
			}
		}
		return x, [][]float64{counts}, nil
	}

	y = make([][]float64, nc)
	for c := range y {
		y[c] = make([]float64, 256)
	}
	for i, v := range im.Pix {
		if v >= 0 && v < 256 {
			y[i%nc][v]++
		}
	}
	return x, y, nil
}

// DefaultColors is the colour sequence used for multi-channel histograms
// when the caller does not supply one.
var DefaultColors = []string{"blue", "green", "red"}

// names maps the colour names the labs use to hex values go-colorful can
// parse. Unknown names are assumed to be hex strings already.
var names = map[string]string{
	"blue":    "#0000ff",
	"green":   "#00a000",
	"red":     "#ff0000",
	"grey":    "#808080",
	"gray":    "#808080",
	"black":   "#000000",
	"cyan":    "#00c0c0",
	"magenta": "#c000c0",
	"yellow":  "#c0c000",
	"white":   "#ffffff",
}

func parseColor(name string) (colorful.Color, error) {
	s := strings.ToLower(name)
	if hex, ok := names[s]; ok {
		s = hex
	}
	col, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("cannot parse colour %q: %w", name, err)
	}
	return col, nil
}

// Plot builds a histogram bar chart from the data Compute produces.
//
// y may hold a single row (monochrome, plotted grey) or one row per
// channel, coloured from colors in order; colors defaults to
// DefaultColors and cycles if there are more channels than colours.
// Every row must be the same length as x.
func Plot(x []float64, y [][]float64, title string, colors []string) (*plot.Plot, error) {
	if len(colors) == 0 {
		colors = DefaultColors
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "grey level"
	p.Y.Label.Text = "frequency"
	p.X.Min = 0
	p.X.Max = float64(len(x))
	p.Add(plotter.NewGrid())

	for c, row := range y {
		if len(row) != len(x) {
			return nil, fmt.Errorf("channel %d has %d values, want %d", c, len(row), len(x))
		}
		name := "grey"
		if len(y) > 1 {
			name = colors[c%len(colors)]
		}
		col, err := parseColor(name)
		if err != nil {
			return nil, err
		}

		bars, err := plotter.NewBarChart(plotter.Values(row), vg.Points(2))
		if err != nil {
			return nil, fmt.Errorf("cannot build bar chart: %w", err)
		}
		bars.Color = col
		bars.LineStyle.Width = 0
		p.Add(bars)
	}

	return p, nil
}

// Show plots a histogram and displays it through the dispatcher, so it
// appears wherever images do: a window normally, the terminal when a
// sixel keyword is set. A nil Displayer uses the package default.
//
// The chart is rendered to a temporary PNG which is removed before Show
// returns.
func Show(d *display.Displayer, x []float64, y [][]float64, title string, colors []string) error {
	p, err := Plot(x, y, title, colors)
	if err != nil {
		return err
	}

	f, err := os.CreateTemp("", "sxcv-hist-*.png")
	if err != nil {
		return fmt.Errorf("cannot create temporary plot file: %w", err)
	}
	name := f.Name()
	f.Close()
	defer os.Remove(name)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, name); err != nil {
		return fmt.Errorf("cannot render histogram: %w", err)
	}

	im, err := array.Open(name)
	if err != nil {
		return err
	}
	if d == nil {
		return display.Show(im, title, 0, true)
	}
	return d.Show(im, title, 0, true)
}
