// Package site serves the public pages: the landing page with its contact
// form, and the login and registration forms.
package site

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/zenmed-health/zenmed/internal/metrics"
	"github.com/zenmed-health/zenmed/internal/routes"
	"github.com/zenmed-health/zenmed/internal/sampledata"
	"github.com/zenmed-health/zenmed/internal/session"
	"github.com/zenmed-health/zenmed/internal/view"
)

// ContactPath receives the landing page contact form.
const ContactPath = "/contact"

const (
	pageLanding  = "site/landing"
	pageLogin    = "site/login"
	pageRegister = "site/register"
)

// Site renders the public pages.
type Site struct {
	views    *view.Renderer
	sessions *session.Manager
	metrics  *metrics.Metrics
	logger   zerolog.Logger
}

// New creates a Site and registers its page templates with views.
func New(views *view.Renderer, sessions *session.Manager, m *metrics.Metrics, logger zerolog.Logger) *Site {
	views.MustAdd(pageLanding, landingTemplate)
	views.MustAdd(pageLogin, authAsideTemplate, loginTemplate)
	views.MustAdd(pageRegister, authAsideTemplate, registerTemplate)
	return &Site{
		views:    views,
		sessions: sessions,
		metrics:  m,
		logger:   logger.With().Str("component", "site").Logger(),
	}
}

// RegisterRoutes mounts the public pages and form handlers onto r.
func (s *Site) RegisterRoutes(r chi.Router) {
	r.Get(routes.Landing, s.handleLanding)
	r.Post(ContactPath, s.handleContact)
	r.Get(routes.Login, s.handleLogin)
	r.Post(routes.Login, s.handleLoginSubmit)
	r.Get(routes.Register, s.handleRegister)
	r.Post(routes.Register, s.handleRegisterSubmit)
}

// enter records a visit to a public page and returns the toast to show.
func (s *Site) enter(ctx context.Context, path string) *session.Toast {
	s.metrics.IncPageView(path)
	return s.sessions.EnterPublic(ctx)
}

type contactForm struct {
	Name    string
	Email   string
	Message string
}

func (f contactForm) complete() bool {
	return f.Name != "" && f.Email != "" && f.Message != ""
}

type landingData struct {
	NavLinks       []sampledata.Link
	HeroHighlights []sampledata.Feature
	Features       []sampledata.Feature
	Steps          []sampledata.Step
	Testimonials   []sampledata.Testimonial
	FAQs           []sampledata.FAQ
	ContactBlurb   string
	ContactLines   []sampledata.ContactLine
	FooterCredit   string
	Contact        contactForm
}

func newLandingData(form contactForm) landingData {
	return landingData{
		NavLinks:       sampledata.NavLinks,
		HeroHighlights: sampledata.HeroHighlights,
		Features:       sampledata.Features,
		Steps:          sampledata.Steps,
		Testimonials:   sampledata.Testimonials,
		FAQs:           sampledata.FAQs,
		ContactBlurb:   sampledata.ContactBlurb,
		ContactLines:   sampledata.ContactLines,
		FooterCredit:   sampledata.FooterCredit,
		Contact:        form,
	}
}

type loginForm struct {
	Email    string
	Password string
}

func (f loginForm) complete() bool {
	return f.Email != "" && f.Password != ""
}

type registerForm struct {
	Role      string
	FirstName string
	LastName  string
	Email     string
	Password  string
}

func (f registerForm) complete() bool {
	return f.FirstName != "" && f.LastName != "" && f.Email != "" && f.Password != ""
}

type registerData struct {
	Roles []sampledata.Role
	Form  registerForm
}
