// Package view renders full HTML pages from html/template sources that share
// one layout, stylesheet and function map.
package view

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/zenmed-health/zenmed/internal/sampledata"
	"github.com/zenmed-health/zenmed/internal/session"
)

// NotFoundPage is the name of the built-in 404 page.
const NotFoundPage = "not-found"

// Page is the data every layout rendering receives.
type Page struct {
	Title     string
	AppName   string
	BodyClass string
	Toast     *session.Toast
	Year      int
	Data      any
}

// Renderer holds one parsed template set per page.
type Renderer struct {
	base   *template.Template
	pages  map[string]*template.Template
	logger zerolog.Logger
	now    func() time.Time
}

// New parses the shared layout and registers the not-found page.
func New(logger zerolog.Logger) *Renderer {
	base := template.Must(template.New("layout").Funcs(Funcs(logger)).Parse(layoutTemplate))
	r := &Renderer{
		base:   base,
		pages:  make(map[string]*template.Template),
		logger: logger.With().Str("component", "view").Logger(),
		now:    time.Now,
	}
	r.MustAdd(NotFoundPage, notFoundTemplate)
	return r
}

// Add registers a page built from the layout plus sources. The sources must
// define a "body" template between them.
func (r *Renderer) Add(name string, sources ...string) error {
	t, err := r.base.Clone()
	if err != nil {
		return fmt.Errorf("cloning layout for %s: %w", name, err)
	}
	for _, src := range sources {
		if _, err := t.Parse(src); err != nil {
			return fmt.Errorf("parsing %s: %w", name, err)
		}
	}
	if t.Lookup("body") == nil {
		return fmt.Errorf("page %s defines no body", name)
	}
	r.pages[name] = t
	return nil
}

// MustAdd is Add for package-level page tables; it panics on a bad template.
func (r *Renderer) MustAdd(name string, sources ...string) {
	if err := r.Add(name, sources...); err != nil {
		panic(err)
	}
}

// Has reports whether name is registered.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

// Render executes page name into a buffer and writes it with status. A
// failing template is logged and answered with a plain 500.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, p Page) {
	t, ok := r.pages[name]
	if !ok {
		r.logger.Error().Str("page", name).Msg("unknown page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if p.AppName == "" {
		p.AppName = sampledata.AppName
	}
	if p.Year == 0 {
		p.Year = r.now().Year()
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", p); err != nil {
		r.logger.Error().Err(err).Str("page", name).Msg("render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// NotFound renders the 404 page.
func (r *Renderer) NotFound(w http.ResponseWriter, toast *session.Toast) {
	r.Render(w, http.StatusNotFound, NotFoundPage, Page{Title: "Page Not Found", BodyClass: "public", Toast: toast})
}

// ServeCSS serves the stylesheet referenced by the layout.
func (r *Renderer) ServeCSS(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write([]byte(cssContent))
}
