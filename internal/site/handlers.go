package site

import (
	"net/http"

	"github.com/zenmed-health/zenmed/internal/routes"
	"github.com/zenmed-health/zenmed/internal/sampledata"
	"github.com/zenmed-health/zenmed/internal/session"
	"github.com/zenmed-health/zenmed/internal/view"
)

// A form missing a required field is answered the way a browser would block
// it: the same form again, no message, no navigation.
const statusIncomplete = http.StatusUnprocessableEntity

func (s *Site) handleLanding(w http.ResponseWriter, r *http.Request) {
	toast := s.enter(r.Context(), routes.Landing)
	s.renderLanding(w, http.StatusOK, toast, contactForm{})
}

func (s *Site) renderLanding(w http.ResponseWriter, status int, toast *session.Toast, form contactForm) {
	s.views.Render(w, status, pageLanding, view.Page{
		Title:     "AI-Powered Diabetes Management",
		BodyClass: "public",
		Toast:     toast,
		Data:      newLandingData(form),
	})
}

func (s *Site) handleContact(w http.ResponseWriter, r *http.Request) {
	form := contactForm{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Message: r.PostFormValue("message"),
	}
	if !form.complete() {
		toast := s.enter(r.Context(), routes.Landing)
		s.renderLanding(w, statusIncomplete, toast, form)
		return
	}

	s.metrics.IncForm("contact")
	s.sessions.Update(r.Context(), func(st *session.State) {
		st.Toast = &session.Toast{Title: "Message sent!", Description: "We'll get back to you soon."}
	})
	s.logger.Debug().Msg("contact form submitted")
	http.Redirect(w, r, routes.Landing+"#contact", http.StatusSeeOther)
}

func (s *Site) handleLogin(w http.ResponseWriter, r *http.Request) {
	toast := s.enter(r.Context(), routes.Login)
	s.renderLogin(w, http.StatusOK, toast, loginForm{})
}

func (s *Site) renderLogin(w http.ResponseWriter, status int, toast *session.Toast, form loginForm) {
	form.Password = ""
	s.views.Render(w, status, pageLogin, view.Page{
		Title:     "Sign In",
		BodyClass: "public",
		Toast:     toast,
		Data:      form,
	})
}

func (s *Site) handleLoginSubmit(w http.ResponseWriter, r *http.Request) {
	form := loginForm{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	if !form.complete() {
		toast := s.enter(r.Context(), routes.Login)
		s.renderLogin(w, statusIncomplete, toast, form)
		return
	}
	s.metrics.IncForm("login")
	http.Redirect(w, r, routes.Dashboard, http.StatusSeeOther)
}

func (s *Site) handleRegister(w http.ResponseWriter, r *http.Request) {
	toast := s.enter(r.Context(), routes.Register)
	s.renderRegister(w, http.StatusOK, toast, registerForm{Role: sampledata.DefaultRole})
}

func (s *Site) renderRegister(w http.ResponseWriter, status int, toast *session.Toast, form registerForm) {
	form.Password = ""
	s.views.Render(w, status, pageRegister, view.Page{
		Title:     "Create Account",
		BodyClass: "public",
		Toast:     toast,
		Data:      registerData{Roles: sampledata.Roles, Form: form},
	})
}

func (s *Site) handleRegisterSubmit(w http.ResponseWriter, r *http.Request) {
	form := registerForm{
		Role:      r.PostFormValue("role"),
		FirstName: r.PostFormValue("first_name"),
		LastName:  r.PostFormValue("last_name"),
		Email:     r.PostFormValue("email"),
		Password:  r.PostFormValue("password"),
	}
	if !sampledata.ValidRole(form.Role) {
		form.Role = sampledata.DefaultRole
	}
	if !form.complete() {
		toast := s.enter(r.Context(), routes.Register)
		s.renderRegister(w, statusIncomplete, toast, form)
		return
	}
	s.metrics.IncForm("register")
	http.Redirect(w, r, routes.Dashboard, http.StatusSeeOther)
}
