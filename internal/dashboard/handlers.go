package dashboard

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/zenmed-health/zenmed/internal/reminders"
	"github.com/zenmed-health/zenmed/internal/routes"
	"github.com/zenmed-health/zenmed/internal/sampledata"
	"github.com/zenmed-health/zenmed/internal/session"
	"github.com/zenmed-health/zenmed/internal/view"
)

func (d *Dashboard) servePage(p page) http.HandlerFunc {
	name := templateName(p.route)
	return func(w http.ResponseWriter, r *http.Request) {
		d.metrics.IncPageView(p.route.Path)
		st, toast := d.enter(r.Context(), p.route.Path)

		d.views.Render(w, http.StatusOK, name, view.Page{
			Title:     p.route.Title,
			BodyClass: "dashboard",
			Toast:     toast,
			Data: pageData{
				Frame:   newFrame(p.route.Path, r.URL.RequestURI(), st.Collapsed),
				Content: p.content(r, st),
			},
		})
	}
}

func (d *Dashboard) handleToggleSidebar(w http.ResponseWriter, r *http.Request) {
	st := d.sessions.Update(r.Context(), func(st *session.State) {
		st.Collapsed = !st.Collapsed
	})
	d.logger.Debug().Bool("collapsed", st.Collapsed).Msg("sidebar toggled")
	http.Redirect(w, r, safeReturn(r.PostFormValue("return")), http.StatusSeeOther)
}

// reminderAction applies fn to the session's reminder list. Unknown ids
// change nothing; either way the browser goes back to the reminders page.
func (d *Dashboard) reminderAction(action string, fn func(*reminders.List, int) bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err == nil {
			changed := false
			d.sessions.Update(r.Context(), func(st *session.State) {
				if st.Reminders == nil {
					st.Reminders = reminders.Seed()
				}
				changed = fn(st.Reminders, id)
			})
			if changed {
				d.metrics.IncReminderAction(action)
			}
		}
		http.Redirect(w, r, routes.Reminders, http.StatusSeeOther)
	}
}

type overviewData struct {
	Greeting        string
	Cards           []sampledata.StatCard
	WeeklyGlucose   sampledata.Series
	WeeklyExercise  sampledata.Series
	Recommendations []sampledata.Recommendation
}

func overviewContent(*http.Request, *session.State) any {
	return overviewData{
		Greeting:        sampledata.Greeting,
		Cards:           sampledata.SummaryCards,
		WeeklyGlucose:   sampledata.WeeklyGlucose,
		WeeklyExercise:  sampledata.WeeklyExercise,
		Recommendations: sampledata.Recommendations,
	}
}

type glucoseData struct {
	Stats    []sampledata.StatCard
	Trend    sampledata.Series
	Readings []sampledata.Reading
}

func glucoseContent(*http.Request, *session.State) any {
	return glucoseData{
		Stats:    sampledata.GlucoseStats,
		Trend:    sampledata.MonthlyGlucose,
		Readings: sampledata.TodayReadings,
	}
}

type tabLink struct {
	sampledata.Category
	Active bool
}

func tabs(cats []sampledata.Category, current string) []tabLink {
	out := make([]tabLink, len(cats))
	for i, c := range cats {
		out[i] = tabLink{Category: c, Active: c.Key == current}
	}
	return out
}

type exercisesData struct {
	Stats     []sampledata.StatCard
	Tabs      []tabLink
	Exercises []sampledata.Exercise
}

func exercisesContent(r *http.Request, _ *session.State) any {
	tab := sampledata.LookupTab(sampledata.ExerciseCategories, r.URL.Query().Get("tab"))
	return exercisesData{
		Stats:     sampledata.ExerciseStats,
		Tabs:      tabs(sampledata.ExerciseCategories, tab),
		Exercises: sampledata.Exercises[tab],
	}
}

type postureData struct {
	Stats   []sampledata.StatCard
	History []sampledata.PostureSession
}

func postureContent(*http.Request, *session.State) any {
	return postureData{Stats: sampledata.PostureStats, History: sampledata.PostureHistory}
}

type nutritionData struct {
	Stats []sampledata.StatCard
	Tabs  []tabLink
	Meals []sampledata.Meal
}

func nutritionContent(r *http.Request, _ *session.State) any {
	tab := sampledata.LookupTab(sampledata.MealCategories, r.URL.Query().Get("tab"))
	return nutritionData{
		Stats: sampledata.NutritionStats,
		Tabs:  tabs(sampledata.MealCategories, tab),
		Meals: sampledata.Meals[tab],
	}
}

type remindersData struct {
	Items  []reminders.Reminder
	Counts reminders.Counts
}

func remindersContent(_ *http.Request, st *session.State) any {
	list := st.Reminders
	if list == nil {
		list = reminders.Seed()
	}
	return remindersData{Items: list.Items, Counts: list.Counts()}
}

type analyticsData struct {
	Cards       []sampledata.StatCard
	SugarTrend  sampledata.Series
	Consistency sampledata.Series
	Diet        []sampledata.Slice
	Posture     sampledata.Series
}

func analyticsContent(*http.Request, *session.State) any {
	return analyticsData{
		Cards:       sampledata.AnalyticsCards,
		SugarTrend:  sampledata.SugarTrend,
		Consistency: sampledata.ExerciseConsistency,
		Diet:        sampledata.DietAdherence,
		Posture:     sampledata.PostureProgress,
	}
}

type doctorData struct {
	Alerts   []sampledata.Alert
	Patients []sampledata.Patient
}

func doctorContent(*http.Request, *session.State) any {
	return doctorData{Alerts: sampledata.PatientAlerts, Patients: sampledata.Patients}
}
