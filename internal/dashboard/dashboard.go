// Package dashboard serves the sidebar frame and the eight pages rendered
// inside it, plus the sidebar and reminder actions.
package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/zenmed-health/zenmed/internal/metrics"
	"github.com/zenmed-health/zenmed/internal/reminders"
	"github.com/zenmed-health/zenmed/internal/routes"
	"github.com/zenmed-health/zenmed/internal/session"
	"github.com/zenmed-health/zenmed/internal/view"
)

// SidebarTogglePath flips the collapsed flag of the frame.
const SidebarTogglePath = "/dashboard/sidebar/toggle"

// page is one content page of the frame.
type page struct {
	route   routes.Route
	source  string
	content func(r *http.Request, st *session.State) any
}

// Dashboard provides the dashboard frame and its pages.
type Dashboard struct {
	views    *view.Renderer
	sessions *session.Manager
	metrics  *metrics.Metrics
	logger   zerolog.Logger
	pages    []page
}

// New creates a Dashboard and registers its page templates with views.
func New(views *view.Renderer, sessions *session.Manager, m *metrics.Metrics, logger zerolog.Logger) *Dashboard {
	d := &Dashboard{
		views:    views,
		sessions: sessions,
		metrics:  m,
		logger:   logger.With().Str("component", "dashboard").Logger(),
	}
	d.pages = []page{
		{route: mustRoute(routes.Dashboard), source: overviewTemplate, content: overviewContent},
		{route: mustRoute(routes.Glucose), source: glucoseTemplate, content: glucoseContent},
		{route: mustRoute(routes.Exercises), source: exercisesTemplate, content: exercisesContent},
		{route: mustRoute(routes.Posture), source: postureTemplate, content: postureContent},
		{route: mustRoute(routes.Nutrition), source: nutritionTemplate, content: nutritionContent},
		{route: mustRoute(routes.Reminders), source: remindersTemplate, content: remindersContent},
		{route: mustRoute(routes.Analytics), source: analyticsTemplate, content: analyticsContent},
		{route: mustRoute(routes.Doctor), source: doctorTemplate, content: doctorContent},
	}
	for _, p := range d.pages {
		views.MustAdd(templateName(p.route), frameTemplate, p.source)
	}
	return d
}

// RegisterRoutes mounts all dashboard routes onto the given router.
func (d *Dashboard) RegisterRoutes(r chi.Router) {
	for _, p := range d.pages {
		r.Get(p.route.Path, d.servePage(p))
	}
	r.Post(SidebarTogglePath, d.handleToggleSidebar)
	r.Post(routes.Reminders+"/{id:[0-9]+}/toggle", d.reminderAction("toggle", (*reminders.List).Toggle))
	r.Post(routes.Reminders+"/{id:[0-9]+}/delete", d.reminderAction("delete", (*reminders.List).Delete))
}

func templateName(r routes.Route) string {
	return "dashboard/" + string(r.Page)
}

func mustRoute(path string) routes.Route {
	r, ok := routes.Lookup(path)
	if !ok || !r.InFrame {
		panic("dashboard: no frame route for " + path)
	}
	return r
}
