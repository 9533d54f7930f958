package sampledata

// Point is one sample of a chart series.
type Point struct {
	Label string
	Value float64
}

// Series is a named chart series with a fixed y-axis domain.
type Series struct {
	Title  string
	Points []Point
	Min    float64
	Max    float64
}

// StatCard is a headline figure on a dashboard page.
type StatCard struct {
	Icon   string
	Label  string
	Value  string
	Unit   string
	Status string
	Trend  string
	Tone   string // success, info, warning, primary
}

// Recommendation is an AI tip on the overview page. Text is markdown.
type Recommendation struct {
	Icon string
	Text string
	Kind string // success, info, warning
}

// Reading is one glucose reading of the day.
type Reading struct {
	Time   string
	Value  int
	Kind   string
	Status string // normal, elevated
}

// Exercise is one entry of an exercise program.
type Exercise struct {
	Name      string
	Duration  string
	Reps      string
	Calories  int
	Completed bool
}

// Category is a tab of exercises or meals.
type Category struct {
	Key   string
	Label string
}

// PostureSession is one analysed exercise session.
type PostureSession struct {
	Date     string
	Exercise string
	Score    int
	Feedback string
}

// Grade returns the feedback tier of the session.
func (p PostureSession) Grade() Grade { return PostureGrade(p.Score) }

// Meal is one dish of a nutrition plan.
type Meal struct {
	Name     string
	Carbs    int
	GI       string
	Calories int
	Safe     bool
}

// Slice is one sector of a donut chart.
type Slice struct {
	Name  string
	Value float64
	Color string
}

// Patient is a row of the doctor portal table.
type Patient struct {
	Name        string
	Age         int
	Type        string
	LastGlucose int
	Status      string // stable, warning, critical
	Alerts      int
}

// GlucoseLevel returns the severity of the patient's last reading.
func (p Patient) GlucoseLevel() Severity { return GlucoseLevel(p.LastGlucose) }

// Alert is a patient alert in the doctor portal.
type Alert struct {
	Patient  string
	Type     string
	Value    string
	Time     string
	Severity string
}

// Feature is a landing page feature tile.
type Feature struct {
	Icon        string
	Title       string
	Description string
}

// Step is a how-it-works step.
type Step struct {
	Icon        string
	Title       string
	Description string
}

// Testimonial is a landing page quote.
type Testimonial struct {
	Name   string
	Role   string
	Text   string
	Rating int
}

// FAQ is a question with a markdown answer.
type FAQ struct {
	Question string
	Answer   string
}

// Link is a labelled href.
type Link struct {
	Label string
	Href  string
}

// ContactLine is one contact detail.
type ContactLine struct {
	Icon  string
	Label string
}

// Role is a registration role option.
type Role struct {
	Value string
	Label string
	Desc  string
}
