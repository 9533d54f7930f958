package view

import (
	"html/template"
)

var glyphs = map[string]string{
	"activity":         "〰",
	"alert":            "⚠",
	"bar-chart":        "📊",
	"bell":             "🔔",
	"brain":            "🧠",
	"camera":           "📷",
	"check":            "✔",
	"droplets":         "💧",
	"dumbbell":         "🏋",
	"globe":            "🌐",
	"heart":            "❤",
	"heart-pulse":      "💓",
	"layout-dashboard": "▦",
	"line-chart":       "📈",
	"log-out":          "⎋",
	"mail":             "✉",
	"map-pin":          "📍",
	"phone":            "☎",
	"pill":             "💊",
	"settings":         "⚙",
	"shield":           "🛡",
	"star":             "★",
	"target":           "◎",
	"trending-down":    "↘",
	"trending-up":      "↗",
	"user-plus":        "👤",
	"users":            "👥",
	"utensils":         "🍽",
	"chevron-left":     "«",
	"chevron-right":    "»",
	"plus":             "+",
	"trash":            "🗑",
	"pause":            "⏸",
	"play":             "▶",
	"water":            "💧",
}

// Icon renders a named icon as an aria-hidden glyph. Unknown names render a
// bullet so layout does not shift.
func Icon(name string) template.HTML {
	g, ok := glyphs[name]
	if !ok {
		g = "•"
	}
	return template.HTML(`<span class="icon icon-` + template.HTMLEscapeString(name) + `" aria-hidden="true">` + g + `</span>`)
}
