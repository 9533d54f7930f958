// Package charts renders the dashboard chart widgets as inline SVG.
package charts

import (
	"fmt"
	"html"
	"html/template"
	"math"
	"strings"

	"github.com/zenmed-health/zenmed/internal/sampledata"
)

// Size is the SVG viewBox of a chart.
type Size struct {
	Width  float64
	Height float64
}

// DefaultSize matches the card height used on the dashboard pages.
var DefaultSize = Size{Width: 480, Height: 220}

const (
	padLeft   = 40.0
	padRight  = 12.0
	padTop    = 12.0
	padBottom = 28.0
	gridLines = 4
)

const (
	ColorPrimary   = "hsl(195, 80%, 40%)"
	ColorSecondary = "hsl(152, 55%, 45%)"
	ColorInfo      = "hsl(210, 80%, 55%)"
	colorGrid      = "hsl(210, 15%, 89%)"
	colorAxis      = "hsl(210, 10%, 45%)"
)

type plot struct {
	size     Size
	min, max float64
}

func newPlot(size Size, s sampledata.Series) plot {
	min, max := s.Min, s.Max
	if max <= min {
		min, max = seriesBounds(s.Points)
	}
	return plot{size: size, min: min, max: max}
}

func (p plot) width() float64  { return p.size.Width - padLeft - padRight }
func (p plot) height() float64 { return p.size.Height - padTop - padBottom }

// y maps a value onto the vertical axis, clamped to the domain.
func (p plot) y(v float64) float64 {
	v = math.Max(p.min, math.Min(p.max, v))
	return padTop + (p.max-v)/(p.max-p.min)*p.height()
}

func seriesBounds(points []sampledata.Point) (float64, float64) {
	if len(points) == 0 {
		return 0, 1
	}
	min, max := points[0].Value, points[0].Value
	for _, pt := range points[1:] {
		min = math.Min(min, pt.Value)
		max = math.Max(max, pt.Value)
	}
	if min == max {
		max = min + 1
	}
	return min, max
}

func (p plot) open(b *strings.Builder, label string) {
	fmt.Fprintf(b, `<svg class="chart" viewBox="0 0 %g %g" role="img" aria-label="%s" preserveAspectRatio="none">`,
		p.size.Width, p.size.Height, html.EscapeString(label))
	for i := 0; i <= gridLines; i++ {
		v := p.min + (p.max-p.min)*float64(i)/gridLines
		y := p.y(v)
		fmt.Fprintf(b, `<line x1="%g" y1="%.1f" x2="%g" y2="%.1f" stroke="%s" stroke-dasharray="3 3"/>`,
			padLeft, y, p.size.Width-padRight, y, colorGrid)
		fmt.Fprintf(b, `<text x="%g" y="%.1f" font-size="11" text-anchor="end" fill="%s">%s</text>`,
			padLeft-6, y+4, colorAxis, formatTick(v))
	}
}

func (p plot) xLabel(b *strings.Builder, x float64, label string) {
	fmt.Fprintf(b, `<text x="%.1f" y="%g" font-size="11" text-anchor="middle" fill="%s">%s</text>`,
		x, p.size.Height-8, colorAxis, html.EscapeString(label))
}

func formatTick(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int(v))
	}
	return fmt.Sprintf("%.1f", v)
}

// Line renders s as a line chart with a dot per point.
func Line(s sampledata.Series, size Size, color string) template.HTML {
	p := newPlot(size, s)
	var b strings.Builder
	p.open(&b, s.Title)

	n := len(s.Points)
	xs := make([]float64, n)
	coords := make([]string, n)
	for i, pt := range s.Points {
		if n == 1 {
			xs[i] = padLeft + p.width()/2
		} else {
			xs[i] = padLeft + p.width()*float64(i)/float64(n-1)
		}
		coords[i] = fmt.Sprintf("%.1f,%.1f", xs[i], p.y(pt.Value))
		p.xLabel(&b, xs[i], pt.Label)
	}
	if n > 0 {
		fmt.Fprintf(&b, `<polyline fill="none" stroke="%s" stroke-width="2" points="%s"/>`, html.EscapeString(color), strings.Join(coords, " "))
	}
	for i, pt := range s.Points {
		fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="4" fill="%s"><title>%s: %s</title></circle>`,
			xs[i], p.y(pt.Value), html.EscapeString(color), html.EscapeString(pt.Label), formatTick(pt.Value))
	}

	b.WriteString(`</svg>`)
	return template.HTML(b.String())
}

// Bar renders s as a bar chart.
func Bar(s sampledata.Series, size Size, color string) template.HTML {
	p := newPlot(size, s)
	var b strings.Builder
	p.open(&b, s.Title)

	n := len(s.Points)
	if n > 0 {
		band := p.width() / float64(n)
		barW := band * 0.6
		base := p.y(p.min)
		for i, pt := range s.Points {
			cx := padLeft + band*(float64(i)+0.5)
			top := p.y(pt.Value)
			fmt.Fprintf(&b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="4" fill="%s"><title>%s: %s</title></rect>`,
				cx-barW/2, top, barW, base-top, html.EscapeString(color), html.EscapeString(pt.Label), formatTick(pt.Value))
			p.xLabel(&b, cx, pt.Label)
		}
	}

	b.WriteString(`</svg>`)
	return template.HTML(b.String())
}

// Donut renders slices as a ring, one stroked arc per slice.
func Donut(title string, slices []sampledata.Slice, size Size) template.HTML {
	const stroke = 30.0
	cx, cy := size.Width/2, size.Height/2
	r := math.Min(size.Width, size.Height)/2 - stroke/2 - 4
	circumference := 2 * math.Pi * r

	total := 0.0
	for _, s := range slices {
		total += s.Value
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg class="chart donut" viewBox="0 0 %g %g" role="img" aria-label="%s">`,
		size.Width, size.Height, html.EscapeString(title))

	offset := 0.0
	for _, s := range slices {
		if total <= 0 {
			break
		}
		length := circumference * s.Value / total
		fmt.Fprintf(&b, `<circle cx="%g" cy="%g" r="%.1f" fill="none" stroke="%s" stroke-width="%g" stroke-dasharray="%.2f %.2f" stroke-dashoffset="%.2f" transform="rotate(-90 %g %g)"><title>%s: %s</title></circle>`,
			cx, cy, r, html.EscapeString(s.Color), stroke, length, circumference-length, -offset, cx, cy,
			html.EscapeString(s.Name), formatTick(s.Value))
		offset += length
	}

	b.WriteString(`</svg>`)
	return template.HTML(b.String())
}
