package view

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/zenmed-health/zenmed/internal/charts"
	"github.com/zenmed-health/zenmed/internal/sampledata"
)

// Funcs returns the template functions available to every page.
func Funcs(logger zerolog.Logger) template.FuncMap {
	md := newMarkdown(logger)
	return template.FuncMap{
		"markdown": md.block,
		"inline":   md.inline,
		"icon":     Icon,
		"line": func(s sampledata.Series, color string) template.HTML {
			return charts.Line(s, charts.DefaultSize, color)
		},
		"bar": func(s sampledata.Series, color string) template.HTML {
			return charts.Bar(s, charts.DefaultSize, color)
		},
		"donut": func(title string, slices []sampledata.Slice) template.HTML {
			return charts.Donut(title, slices, charts.Size{Width: 220, Height: 220})
		},
		"stars": func(n int) string {
			if n < 0 {
				n = 0
			}
			return strings.Repeat("★", n)
		},
		"color": chartColor,
		// css marks a color from the fixed sample data as safe for a style attribute.
		"css": func(s string) template.CSS { return template.CSS(s) },
		"inc": func(i int) int { return i + 1 },
		"initial": func(s string) string {
			for _, r := range s {
				return string(r)
			}
			return ""
		},
	}
}

type markdown struct {
	md     goldmark.Markdown
	logger zerolog.Logger
}

func newMarkdown(logger zerolog.Logger) markdown {
	return markdown{
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		logger: logger,
	}
}

// block renders src as HTML. Raw HTML in src is dropped by goldmark.
func (m markdown) block(src string) template.HTML {
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(src), &buf); err != nil {
		m.logger.Warn().Err(err).Msg("converting markdown")
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}

// inline renders a single paragraph without its wrapping <p>.
func (m markdown) inline(src string) template.HTML {
	out := strings.TrimSpace(string(m.block(src)))
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return template.HTML(out)
}

func chartColor(name string) string {
	switch name {
	case "secondary":
		return charts.ColorSecondary
	case "info":
		return charts.ColorInfo
	default:
		return charts.ColorPrimary
	}
}
