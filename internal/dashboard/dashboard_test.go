package dashboard

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/zenmed-health/zenmed/internal/metrics"
	"github.com/zenmed-health/zenmed/internal/routes"
	"github.com/zenmed-health/zenmed/internal/session"
	"github.com/zenmed-health/zenmed/internal/view"
)

const testSessionID = "6a0d2f4e-1b3c-4d5e-8f70-9a1b2c3d4e5f"

type testEnv struct {
	dashboard *Dashboard
	store     *session.MemoryStore
	metrics   *metrics.Metrics
}

func setupTest(t *testing.T) *testEnv {
	t.Helper()
	logger := zerolog.New(io.Discard)
	store := session.NewMemoryStore(time.Hour)
	sessions := session.NewManager(store, session.Options{CookieName: "sid"}, logger)
	m := metrics.New("test")
	return &testEnv{
		dashboard: New(view.New(logger), sessions, m, logger),
		store:     store,
		metrics:   m,
	}
}

func setupRouter(e *testEnv) chi.Router {
	r := chi.NewRouter()
	r.Use(e.dashboard.sessions.Middleware)
	e.dashboard.RegisterRoutes(r)
	return r
}

func do(r http.Handler, method, path string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.AddCookie(&http.Cookie{Name: "sid", Value: testSessionID})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(t *testing.T, r http.Handler, path string) string {
	t.Helper()
	w := do(r, http.MethodGet, path, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET %s: expected 200, got %d", path, w.Code)
	}
	return w.Body.String()
}

func post(t *testing.T, r http.Handler, path string, form url.Values) string {
	t.Helper()
	if form == nil {
		form = url.Values{}
	}
	w := do(r, http.MethodPost, path, form)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("POST %s: expected 303, got %d", path, w.Code)
	}
	return w.Header().Get("Location")
}

func TestEachRouteRendersItsPage(t *testing.T) {
	e := setupTest(t)
	r := setupRouter(e)

	for _, rt := range routes.Table() {
		if !rt.InFrame {
			continue
		}
		body := get(t, r, rt.Path)
		if n := strings.Count(body, "data-page="); n != 1 {
			t.Errorf("%s: expected one page, found %d", rt.Path, n)
		}
		if !strings.Contains(body, `data-page="`+string(rt.Page)+`"`) {
			t.Errorf("%s: expected page %s", rt.Path, rt.Page)
		}
		if !strings.Contains(body, `class="sidebar"`) {
			t.Errorf("%s: expected the frame", rt.Path)
		}
	}
}

func TestSidebarHighlightIsExact(t *testing.T) {
	e := setupTest(t)
	r := setupRouter(e)

	body := get(t, r, "/dashboard/glucose")
	if n := strings.Count(body, `aria-current="page"`); n != 1 {
		t.Fatalf("expected exactly one active link, got %d", n)
	}
	if !strings.Contains(body, `href="/dashboard/glucose" class="nav-link active"`) {
		t.Error("expected Glucose Tracking to be active")
	}
	if !strings.Contains(body, `href="/dashboard" class="nav-link">`) {
		t.Error("Dashboard must not be active on a sub-page")
	}

	body = get(t, r, "/dashboard")
	if !strings.Contains(body, `href="/dashboard" class="nav-link active"`) {
		t.Error("expected Dashboard to be active on /dashboard")
	}
}

func TestToggleCollapse(t *testing.T) {
	e := setupTest(t)
	r := setupRouter(e)

	body := get(t, r, "/dashboard/glucose")
	if n := strings.Count(body, `class="nav-label"`); n != 10 {
		t.Fatalf("expected 10 labels when expanded, got %d", n)
	}
	if !strings.Contains(body, `class="app-name"`) {
		t.Fatal("expected app name when expanded")
	}

	loc := post(t, r, SidebarTogglePath, url.Values{"return": {"/dashboard/glucose"}})
	if loc != "/dashboard/glucose" {
		t.Fatalf("expected redirect back, got %q", loc)
	}

	body = get(t, r, "/dashboard/glucose")
	if n := strings.Count(body, `class="nav-label"`); n != 0 {
		t.Errorf("expected labels hidden, got %d", n)
	}
	if strings.Contains(body, `class="app-name"`) {
		t.Error("expected app name hidden")
	}
	if n := strings.Count(body, `class="nav-link`); n != 10 {
		t.Errorf("expected all links to remain, got %d", n)
	}
	if !strings.Contains(body, `href="/dashboard/glucose" class="nav-link active"`) {
		t.Error("active route must not change")
	}

	post(t, r, SidebarTogglePath, url.Values{"return": {"/dashboard/glucose"}})
	body = get(t, r, "/dashboard/glucose")
	if n := strings.Count(body, `class="nav-label"`); n != 10 {
		t.Errorf("expected labels back, got %d", n)
	}
}

func TestCollapsedPersistsAcrossFramePages(t *testing.T) {
	e := setupTest(t)
	r := setupRouter(e)

	post(t, r, SidebarTogglePath, url.Values{"return": {"/dashboard"}})
	for _, path := range []string{"/dashboard/exercises", "/dashboard/doctor"} {
		if strings.Contains(get(t, r, path), `class="nav-label"`) {
			t.Errorf("%s: expected sidebar to stay collapsed", path)
		}
	}
}

func TestToggleReturnStaysInDashboard(t *testing.T) {
	e := setupTest(t)
	r := setupRouter(e)

	cases := map[string]string{
		"":                               "/dashboard",
		"/":                              "/dashboard",
		"/login":                         "/dashboard",
		"/dashboard/unknown":             "/dashboard",
		"https://evil.example/dashboard": "/dashboard",
		"//evil.example/dashboard":       "/dashboard",
		"/dashboard/reminders":           "/dashboard/reminders",
		"/dashboard/exercises?tab=rehab": "/dashboard/exercises?tab=rehab",
	}
	for ret, want := range cases {
		if got := post(t, r, SidebarTogglePath, url.Values{"return": {ret}}); got != want {
			t.Errorf("return %q: expected %q, got %q", ret, want, got)
		}
	}
}

// reminderRow returns the markup of one reminder row, or "" if absent.
func reminderRow(body, id string) string {
	start := strings.Index(body, `data-reminder="`+id+`"`)
	if start < 0 {
		return ""
	}
	rest := body[start+1:]
	if end := strings.Index(rest, "data-reminder="); end >= 0 {
		return rest[:end]
	}
	return rest
}

func TestRemindersToggle(t *testing.T) {
	e := setupTest(t)
	r := setupRouter(e)

	body := get(t, r, "/dashboard/reminders")
	row := reminderRow(body, "5")
	if !strings.Contains(row, "Resume") {
		t.Fatalf("expected seeded id 5 inactive, row: %s", row)
	}

	for _, want := range []string{"Pause", "Resume"} {
		loc := post(t, r, "/dashboard/reminders/5/toggle", nil)
		if loc != "/dashboard/reminders" {
			t.Fatalf("expected redirect to reminders, got %q", loc)
		}
		row = reminderRow(get(t, r, "/dashboard/reminders"), "5")
		if !strings.Contains(row, want) {
			t.Errorf("expected %s after toggle, row: %s", want, row)
		}
	}
	if got := testutil.ToFloat64(e.metrics.ReminderActions.WithLabelValues("toggle")); got != 2 {
		t.Errorf("expected 2 toggle actions, got %v", got)
	}
}

func TestRemindersDelete(t *testing.T) {
	e := setupTest(t)
	r := setupRouter(e)

	body := get(t, r, "/dashboard/reminders")
	if n := strings.Count(body, "data-reminder="); n != 5 {
		t.Fatalf("expected 5 reminders, got %d", n)
	}
	if !strings.Contains(body, `data-count="water">1<`) {
		t.Error("expected one water reminder")
	}

	post(t, r, "/dashboard/reminders/3/delete", nil)
	body = get(t, r, "/dashboard/reminders")
	if n := strings.Count(body, "data-reminder="); n != 4 {
		t.Fatalf("expected 4 reminders, got %d", n)
	}
	if strings.Contains(body, "Drink Water") {
		t.Error("expected Drink Water removed")
	}
	for _, label := range []string{"Metformin 500mg", "Morning Walk", "Insulin Injection", "Shoulder Rehab"} {
		if !strings.Contains(body, label) {
			t.Errorf("expected %q to remain", label)
		}
	}
	if !strings.Contains(body, `data-count="water">0<`) {
		t.Error("expected water count to drop to 0")
	}
}

func TestReminderUnknownIDIsNoop(t *testing.T) {
	e := setupTest(t)
	r := setupRouter(e)

	get(t, r, "/dashboard/reminders")
	post(t, r, "/dashboard/reminders/99/toggle", nil)
	post(t, r, "/dashboard/reminders/99/delete", nil)
	post(t, r, "/dashboard/reminders/99999999999999999999/delete", nil)

	body := get(t, r, "/dashboard/reminders")
	if n := strings.Count(body, "data-reminder="); n != 5 {
		t.Errorf("expected 5 reminders, got %d", n)
	}
	if got := testutil.ToFloat64(e.metrics.ReminderActions.WithLabelValues("delete")); got != 0 {
		t.Errorf("expected no delete actions, got %v", got)
	}

	if w := do(r, http.MethodPost, "/dashboard/reminders/abc/toggle", url.Values{}); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for non-numeric id, got %d", w.Code)
	}
}

func TestRemindersResetOnNavigation(t *testing.T) {
	e := setupTest(t)
	r := setupRouter(e)

	get(t, r, "/dashboard/reminders")
	post(t, r, "/dashboard/reminders/3/delete", nil)
	get(t, r, "/dashboard/analytics")

	st, err := e.store.Get(context.Background(), testSessionID)
	if err != nil || st == nil {
		t.Fatalf("expected stored state, got %v, %v", st, err)
	}
	if st.Reminders != nil {
		t.Error("expected reminders dropped after leaving the page")
	}

	body := get(t, r, "/dashboard/reminders")
	if n := strings.Count(body, "data-reminder="); n != 5 {
		t.Errorf("expected a fresh list of 5, got %d", n)
	}
}

func TestRemindersSurviveCollapseToggle(t *testing.T) {
	e := setupTest(t)
	r := setupRouter(e)

	get(t, r, "/dashboard/reminders")
	post(t, r, "/dashboard/reminders/3/delete", nil)
	post(t, r, SidebarTogglePath, url.Values{"return": {"/dashboard/reminders"}})

	body := get(t, r, "/dashboard/reminders")
	if n := strings.Count(body, "data-reminder="); n != 4 {
		t.Errorf("expected 4 reminders, got %d", n)
	}
}

func TestExerciseTabs(t *testing.T) {
	e := setupTest(t)
	r := setupRouter(e)

	body := get(t, r, "/dashboard/exercises")
	if !strings.Contains(body, "Gentle Walking") || strings.Contains(body, "Shoulder Mobility") {
		t.Error("expected beginner tab by default")
	}
	if n := strings.Count(body, "Done</span>"); n != 2 {
		t.Errorf("expected 2 completed exercises, got %d", n)
	}
	if n := strings.Count(body, " Start</button>"); n != 2 {
		t.Errorf("expected 2 start buttons, got %d", n)
	}

	body = get(t, r, "/dashboard/exercises?tab=rehab")
	if !strings.Contains(body, "Shoulder Mobility") || strings.Contains(body, "Gentle Walking") {
		t.Error("expected rehab tab")
	}
	if !strings.Contains(body, `class="tab active" aria-current="true">Rehabilitation`) {
		t.Error("expected rehab tab highlighted")
	}

	body = get(t, r, "/dashboard/exercises?tab=bogus")
	if !strings.Contains(body, "Gentle Walking") {
		t.Error("expected unknown tab to fall back to beginner")
	}
}

func TestNutritionTabs(t *testing.T) {
	e := setupTest(t)
	r := setupRouter(e)

	body := get(t, r, "/dashboard/nutrition")
	if !strings.Contains(body, "Idli (3 pcs) with Sambar") {
		t.Error("expected breakfast by default")
	}
	body = get(t, r, "/dashboard/nutrition?tab=snacks")
	if !strings.Contains(body, "Buttermilk (Moru)") || strings.Contains(body, "Oats Pongal") {
		t.Error("expected snacks tab")
	}
	if n := strings.Count(body, "Safe</span>"); n != 3 {
		t.Errorf("expected 3 safe badges, got %d", n)
	}
}

func TestDoctorGlucoseStyles(t *testing.T) {
	e := setupTest(t)
	r := setupRouter(e)

	body := get(t, r, "/dashboard/doctor")
	for _, want := range []string{
		`class="value-critical">265 mg/dL`,
		`class="value-warning">68 mg/dL`,
		`class="value-normal">118 mg/dL`,
		`class="badge badge-critical">critical`,
		"Active Alerts (3)",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %q", want)
		}
	}
	if n := strings.Count(body, `class="patient"`); n != 5 {
		t.Errorf("expected 5 patients, got %d", n)
	}
}

func TestPostureGrades(t *testing.T) {
	e := setupTest(t)
	r := setupRouter(e)

	body := get(t, r, "/dashboard/posture")
	counts := map[string]int{`data-grade="excellent"`: 2, `data-grade="good"`: 1, `data-grade="needs-work"`: 1}
	for marker, want := range counts {
		if got := strings.Count(body, marker); got != want {
			t.Errorf("%s: expected %d, got %d", marker, want, got)
		}
	}
}

func TestChartsRender(t *testing.T) {
	e := setupTest(t)
	r := setupRouter(e)

	if n := strings.Count(get(t, r, "/dashboard"), `<svg class="chart`); n != 2 {
		t.Errorf("overview: expected 2 charts, got %d", n)
	}
	body := get(t, r, "/dashboard/analytics")
	if n := strings.Count(body, `<svg class="chart`); n != 4 {
		t.Errorf("analytics: expected 4 charts, got %d", n)
	}
	if strings.Contains(body, "ZgotmplZ") {
		t.Error("legend style was rejected by the template escaper")
	}
}

func TestOverviewRecommendationLinks(t *testing.T) {
	e := setupTest(t)
	r := setupRouter(e)

	body := get(t, r, "/dashboard")
	if !strings.Contains(body, `<a href="/dashboard/reminders">Set a reminder?</a>`) {
		t.Error("expected markdown link in recommendations")
	}
	if got := testutil.ToFloat64(e.metrics.PageViews.WithLabelValues("/dashboard")); got != 1 {
		t.Errorf("expected 1 page view, got %v", got)
	}
}
