// Package sampledata holds the fixed sample records every page renders,
// plus the threshold rules that pick a visual severity for them.
package sampledata

// Overview page.

const Greeting = "Good Morning, Priya 👋"

var SummaryCards = []StatCard{
	{Icon: "droplets", Label: "Blood Glucose", Value: "118 mg/dL", Status: "Normal", Tone: "primary"},
	{Icon: "dumbbell", Label: "Exercises Done", Value: "5/7", Status: "On Track", Tone: "secondary"},
	{Icon: "utensils", Label: "Diet Adherence", Value: "82%", Status: "Good", Tone: "warning"},
	{Icon: "heart", Label: "Health Score", Value: "78/100", Status: "Improving", Tone: "success"},
}

var WeeklyGlucose = Series{
	Title: "Blood Glucose (This Week)",
	Points: []Point{
		{"Mon", 120}, {"Tue", 145}, {"Wed", 110}, {"Thu", 135},
		{"Fri", 125}, {"Sat", 140}, {"Sun", 118},
	},
	Min: 0, Max: 160,
}

var WeeklyExercise = Series{
	Title: "Exercise Minutes (This Week)",
	Points: []Point{
		{"Mon", 30}, {"Tue", 45}, {"Wed", 20}, {"Thu", 35},
		{"Fri", 50}, {"Sat", 25}, {"Sun", 40},
	},
	Min: 0, Max: 60,
}

var Recommendations = []Recommendation{
	{Icon: "check", Text: "Great job completing your **morning walk** today!", Kind: "success"},
	{Icon: "trending-up", Text: "Your glucose levels are trending down this week. Keep it up!", Kind: "info"},
	{Icon: "alert", Text: "You missed your **evening medication** yesterday. [Set a reminder?](/dashboard/reminders)", Kind: "warning"},
	{Icon: "brain", Text: "Try the new [shoulder rehab exercise](/dashboard/exercises?tab=rehab) added to your program.", Kind: "info"},
}

// Glucose page.

var GlucoseStats = []StatCard{
	{Label: "Current Level", Value: "118", Unit: "mg/dL", Trend: "8% from yesterday", Tone: "success"},
	{Label: "7-Day Average", Value: "127", Unit: "mg/dL", Trend: "Improving", Tone: "success"},
	{Label: "HbA1c Estimate", Value: "6.2", Unit: "%", Trend: "Within target", Tone: "primary"},
}

var MonthlyGlucose = Series{
	Title: "Blood Sugar Trend (February)",
	Points: []Point{
		{"Feb 1", 130}, {"Feb 3", 125}, {"Feb 5", 142}, {"Feb 7", 118}, {"Feb 9", 135},
		{"Feb 11", 120}, {"Feb 13", 115}, {"Feb 15", 128}, {"Feb 17", 122}, {"Feb 18", 118},
	},
	Min: 80, Max: 200,
}

var TodayReadings = []Reading{
	{Time: "7:00 AM", Value: 105, Kind: "Fasting", Status: "normal"},
	{Time: "9:30 AM", Value: 145, Kind: "Post-Breakfast", Status: "normal"},
	{Time: "1:00 PM", Value: 160, Kind: "Post-Lunch", Status: "elevated"},
	{Time: "6:30 PM", Value: 132, Kind: "Pre-Dinner", Status: "normal"},
	{Time: "9:00 PM", Value: 118, Kind: "Post-Dinner", Status: "normal"},
}

// Exercises page.

var ExerciseStats = []StatCard{
	{Label: "Today's Progress", Value: "2/4", Trend: "exercises completed"},
	{Label: "Streak", Value: "5", Icon: "star", Trend: "consecutive days"},
	{Label: "Calories Burned", Value: "105", Trend: "today"},
}

var ExerciseCategories = []Category{
	{Key: "beginner", Label: "Beginner"},
	{Key: "intermediate", Label: "Intermediate"},
	{Key: "rehab", Label: "Rehabilitation"},
}

var Exercises = map[string][]Exercise{
	"beginner": {
		{Name: "Gentle Walking", Duration: "15 min", Reps: "—", Calories: 60, Completed: true},
		{Name: "Chair Squats", Duration: "10 min", Reps: "3×10", Calories: 45, Completed: true},
		{Name: "Arm Circles", Duration: "5 min", Reps: "3×15", Calories: 20},
		{Name: "Seated Leg Lifts", Duration: "10 min", Reps: "3×12", Calories: 35},
	},
	"intermediate": {
		{Name: "Brisk Walking", Duration: "25 min", Reps: "—", Calories: 120},
		{Name: "Resistance Band Rows", Duration: "15 min", Reps: "4×12", Calories: 80},
		{Name: "Step-Ups", Duration: "10 min", Reps: "3×15", Calories: 70},
		{Name: "Wall Push-Ups", Duration: "10 min", Reps: "3×10", Calories: 55},
	},
	"rehab": {
		{Name: "Shoulder Mobility", Duration: "10 min", Reps: "3×8", Calories: 25},
		{Name: "Ankle Rotations", Duration: "5 min", Reps: "3×10", Calories: 15},
		{Name: "Neck Stretches", Duration: "5 min", Reps: "3×6", Calories: 10},
		{Name: "Hip Flexor Stretch", Duration: "10 min", Reps: "3×8", Calories: 20},
	},
}

// AI posture page.

var PostureStats = []StatCard{
	{Label: "Average Score", Value: "87.5", Trend: "Good posture", Tone: "success"},
	{Label: "Sessions", Value: "24", Trend: "this month"},
	{Label: "Improvement", Value: "+12%", Trend: "since last week", Tone: "success"},
}

var PostureHistory = []PostureSession{
	{Date: "Feb 18", Exercise: "Chair Squats", Score: 92, Feedback: "Excellent form! Keep your back straight."},
	{Date: "Feb 17", Exercise: "Wall Push-Ups", Score: 78, Feedback: "Elbows slightly too wide. Adjust angle."},
	{Date: "Feb 16", Exercise: "Step-Ups", Score: 85, Feedback: "Good knee alignment. Watch your balance."},
	{Date: "Feb 15", Exercise: "Arm Circles", Score: 95, Feedback: "Perfect range of motion!"},
}

// Nutrition page.

var NutritionStats = []StatCard{
	{Label: "Daily Calories", Value: "1,650", Trend: "recommended"},
	{Label: "Total Carbs", Value: "180g", Trend: "daily target"},
	{Label: "Protein", Value: "65g", Trend: "daily target"},
	{Label: "Fiber", Value: "30g", Trend: "daily target"},
}

var MealCategories = []Category{
	{Key: "breakfast", Label: "🌅 Breakfast"},
	{Key: "lunch", Label: "☀️ Lunch"},
	{Key: "dinner", Label: "🌙 Dinner"},
	{Key: "snacks", Label: "🍎 Snacks"},
}

var Meals = map[string][]Meal{
	"breakfast": {
		{Name: "Idli (3 pcs) with Sambar", Carbs: 35, GI: "Low", Calories: 180, Safe: true},
		{Name: "Ragi Dosa with Chutney", Carbs: 28, GI: "Low", Calories: 150, Safe: true},
		{Name: "Oats Pongal", Carbs: 30, GI: "Medium", Calories: 200, Safe: true},
	},
	"lunch": {
		{Name: "Brown Rice with Rasam & Vegetables", Carbs: 45, GI: "Medium", Calories: 320, Safe: true},
		{Name: "Millets with Sambar & Greens", Carbs: 38, GI: "Low", Calories: 280, Safe: true},
		{Name: "Chapati (2) with Dal & Sabzi", Carbs: 42, GI: "Medium", Calories: 300, Safe: true},
	},
	"dinner": {
		{Name: "Ragi Mudde with Soppu Saaru", Carbs: 32, GI: "Low", Calories: 220, Safe: true},
		{Name: "Vegetable Soup with Multigrain Bread", Carbs: 25, GI: "Low", Calories: 180, Safe: true},
		{Name: "Dosa (2) with Coconut Chutney", Carbs: 30, GI: "Medium", Calories: 200, Safe: true},
	},
	"snacks": {
		{Name: "Sundal (Chickpea Salad)", Carbs: 15, GI: "Low", Calories: 90, Safe: true},
		{Name: "Buttermilk (Moru)", Carbs: 5, GI: "Low", Calories: 40, Safe: true},
		{Name: "Mixed Nuts (handful)", Carbs: 8, GI: "Low", Calories: 120, Safe: true},
	},
}

// Analytics page.

var AnalyticsCards = []StatCard{
	{Icon: "trending-down", Label: "Sugar Trend", Value: "↓ Improving", Tone: "success"},
	{Icon: "activity", Label: "Exercise Score", Value: "90%", Tone: "primary"},
	{Icon: "target", Label: "Diet Adherence", Value: "82%", Tone: "secondary"},
	{Icon: "trending-up", Label: "Posture Score", Value: "92/100", Tone: "info"},
}

var SugarTrend = Series{
	Title: "Sugar Trend Prediction",
	Points: []Point{
		{"W1", 145}, {"W2", 138}, {"W3", 132}, {"W4", 128}, {"W5", 125}, {"W6", 120},
	},
	Min: 100, Max: 160,
}

var ExerciseConsistency = Series{
	Title: "Exercise Consistency",
	Points: []Point{
		{"W1", 60}, {"W2", 70}, {"W3", 75}, {"W4", 80}, {"W5", 85}, {"W6", 90},
	},
	Min: 0, Max: 100,
}

var DietAdherence = []Slice{
	{Name: "Followed", Value: 82, Color: "hsl(152, 55%, 45%)"},
	{Name: "Skipped", Value: 18, Color: "hsl(210, 15%, 89%)"},
}

var PostureProgress = Series{
	Title: "Posture Score Progress",
	Points: []Point{
		{"1", 65}, {"5", 72}, {"10", 78}, {"15", 83}, {"20", 87}, {"24", 92},
	},
	Min: 50, Max: 100,
}

// Doctor portal.

var Patients = []Patient{
	{Name: "Priya Natarajan", Age: 52, Type: "Type 2", LastGlucose: 118, Status: "stable", Alerts: 0},
	{Name: "Rajan Krishnan", Age: 64, Type: "Type 2", LastGlucose: 265, Status: "critical", Alerts: 2},
	{Name: "Lakshmi Venkat", Age: 45, Type: "Type 1", LastGlucose: 95, Status: "stable", Alerts: 0},
	{Name: "Suresh Mani", Age: 58, Type: "Type 2", LastGlucose: 68, Status: "warning", Alerts: 1},
	{Name: "Meera Bala", Age: 41, Type: "Type 2", LastGlucose: 132, Status: "stable", Alerts: 0},
}

var PatientAlerts = []Alert{
	{Patient: "Rajan Krishnan", Type: "High Glucose", Value: "265 mg/dL", Time: "2 hours ago", Severity: "critical"},
	{Patient: "Rajan Krishnan", Type: "Missed Exercise", Value: "3 days", Time: "Today", Severity: "warning"},
	{Patient: "Suresh Mani", Type: "Low Glucose", Value: "68 mg/dL", Time: "4 hours ago", Severity: "critical"},
}

// LookupTab returns key if it names one of cats, otherwise the first category.
func LookupTab(cats []Category, key string) string {
	for _, c := range cats {
		if c.Key == key {
			return key
		}
	}
	if len(cats) == 0 {
		return ""
	}
	return cats[0].Key
}
