// Package routes is the single source of truth for the page paths the web
// shell serves.
package routes

// Page identifies a renderable page.
type Page string

const (
	PageLanding   Page = "landing"
	PageLogin     Page = "login"
	PageRegister  Page = "register"
	PageOverview  Page = "overview"
	PageGlucose   Page = "glucose"
	PageExercises Page = "exercises"
	PagePosture   Page = "posture"
	PageNutrition Page = "nutrition"
	PageReminders Page = "reminders"
	PageAnalytics Page = "analytics"
	PageDoctor    Page = "doctor"
	PageNotFound  Page = "not-found"
)

const (
	Landing   = "/"
	Login     = "/login"
	Register  = "/register"
	Dashboard = "/dashboard"
	Glucose   = "/dashboard/glucose"
	Exercises = "/dashboard/exercises"
	Posture   = "/dashboard/posture"
	Nutrition = "/dashboard/nutrition"
	Reminders = "/dashboard/reminders"
	Analytics = "/dashboard/analytics"
	Doctor    = "/dashboard/doctor"
)

// Route maps a path to a page.
type Route struct {
	Path  string
	Page  Page
	Title string
	// InFrame is true for pages rendered inside the dashboard frame.
	InFrame bool
}

var table = []Route{
	{Path: Landing, Page: PageLanding, Title: "AI-Powered Diabetes Management"},
	{Path: Login, Page: PageLogin, Title: "Sign In"},
	{Path: Register, Page: PageRegister, Title: "Create Account"},
	{Path: Dashboard, Page: PageOverview, Title: "Dashboard", InFrame: true},
	{Path: Glucose, Page: PageGlucose, Title: "Glucose Tracking", InFrame: true},
	{Path: Exercises, Page: PageExercises, Title: "Exercise Programs", InFrame: true},
	{Path: Posture, Page: PagePosture, Title: "AI Posture Correction", InFrame: true},
	{Path: Nutrition, Page: PageNutrition, Title: "Nutrition Plan", InFrame: true},
	{Path: Reminders, Page: PageReminders, Title: "Smart Reminders", InFrame: true},
	{Path: Analytics, Page: PageAnalytics, Title: "Recovery Analytics", InFrame: true},
	{Path: Doctor, Page: PageDoctor, Title: "Doctor Portal", InFrame: true},
}

// NotFound is the fallback for every undeclared path.
var NotFound = Route{Page: PageNotFound, Title: "Page Not Found"}

// Table returns a copy of the declared routes in declaration order.
func Table() []Route {
	out := make([]Route, len(table))
	copy(out, table)
	return out
}

// Lookup returns the route whose path equals path exactly.
func Lookup(path string) (Route, bool) {
	for _, r := range table {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// Resolve returns the route for path, or NotFound.
func Resolve(path string) Route {
	if r, ok := Lookup(path); ok {
		return r
	}
	return NotFound
}

// IsDashboard reports whether path is a declared dashboard page.
func IsDashboard(path string) bool {
	r, ok := Lookup(path)
	return ok && r.InFrame
}
