// Package chart renders financial line charts as PNG images.
package chart

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Point is one year on the chart
type Point struct {
	Year      int
	Revenue   float64
	NetIncome float64
}

// Options controls the rendered image size
type Options struct {
	WidthInches  float64
	HeightInches float64
}

// DefaultOptions matches a 640x480 figure at 100 dpi
var DefaultOptions = Options{WidthInches: 6.4, HeightInches: 4.8}

var (
	revenueColor   = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	netIncomeColor = color.RGBA{R: 255, G: 127, B: 14, A: 255}
)

// Renderer draws revenue and net income against year. Every call builds its
// own plot, so a Renderer is safe for concurrent use.
type Renderer struct {
	opts Options
}

// NewRenderer creates a renderer. Non-positive sizes fall back to DefaultOptions.
func NewRenderer(opts Options) *Renderer {
	if opts.WidthInches <= 0 {
		opts.WidthInches = DefaultOptions.WidthInches
	}
	if opts.HeightInches <= 0 {
		opts.HeightInches = DefaultOptions.HeightInches
	}
	return &Renderer{opts: opts}
}

// RenderPNG draws the chart titled after company and returns PNG bytes
func (r *Renderer) RenderPNG(company string, points []Point) ([]byte, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("no data points for %s", company)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Financials of %s", company)
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Amount"
	p.X.Tick.Marker = yearTicks{}
	p.Add(plotter.NewGrid())

	revenue := make(plotter.XYs, len(points))
	netIncome := make(plotter.XYs, len(points))
	for i, pt := range points {
		revenue[i].X = float64(pt.Year)
		revenue[i].Y = pt.Revenue
		netIncome[i].X = float64(pt.Year)
		netIncome[i].Y = pt.NetIncome
	}

	if err := addLine(p, "Revenue", revenue, revenueColor); err != nil {
		return nil, err
	}
	if err := addLine(p, "Net Income", netIncome, netIncomeColor); err != nil {
		return nil, err
	}
	p.Legend.Top = true
	p.Legend.Left = true

	w, err := p.WriterTo(vg.Length(r.opts.WidthInches)*vg.Inch, vg.Length(r.opts.HeightInches)*vg.Inch, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to create png canvas: %w", err)
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderBase64 is RenderPNG with the bytes base64 encoded
func (r *Renderer) RenderBase64(company string, points []Point) (string, error) {
	png, err := r.RenderPNG(company, points)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}

func addLine(p *plot.Plot, label string, xys plotter.XYs, c color.Color) error {
	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("failed to build %s line: %w", label, err)
	}
	line.Color = c
	line.Width = vg.Points(1.5)
	p.Add(line)
	p.Legend.Add(label, line)
	return nil
}

// yearTicks places one labeled tick per whole year
type yearTicks struct{}

func (yearTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for y := int(min); float64(y) <= max; y++ {
		if float64(y) < min {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: float64(y), Label: fmt.Sprintf("%d", y)})
	}
	return ticks
}
