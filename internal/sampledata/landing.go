package sampledata

const AppName = "ZenMed"

var NavLinks = []Link{
	{Label: "Features", Href: "#features"},
	{Label: "How It Works", Href: "#how-it-works"},
	{Label: "Testimonials", Href: "#testimonials"},
	{Label: "FAQ", Href: "#faq"},
	{Label: "Contact", Href: "#contact"},
}

var HeroHighlights = []Feature{
	{Icon: "brain", Title: "AI Posture Correction"},
	{Icon: "heart", Title: "Health Monitoring"},
	{Icon: "shield", Title: "Doctor Alerts"},
}

var Features = []Feature{
	{Icon: "camera", Title: "AI Posture Correction", Description: "Real-time pose detection with skeleton overlay and exercise form analysis using AI."},
	{Icon: "activity", Title: "Exercise Programs", Description: "Guided beginner to advanced rehabilitation exercises with video demos and rep tracking."},
	{Icon: "utensils", Title: "Localized Nutrition", Description: "Personalized meal plans based on your region, featuring glycemic index data for every dish."},
	{Icon: "line-chart", Title: "Glucose Tracking", Description: "Log readings, import CSV data, and visualize trends with weekly and monthly charts."},
	{Icon: "bell", Title: "Smart Reminders", Description: "Never miss medication, exercise, or water intake with intelligent activity reminders."},
	{Icon: "brain", Title: "Recovery Analytics", Description: "AI-powered insights, sugar trend predictions, and exportable health reports."},
	{Icon: "users", Title: "Doctor & Caregiver Portal", Description: "Caregivers and doctors can monitor patients, view reports, and send recommendations."},
	{Icon: "globe", Title: "Multi-Language", Description: "Full support for English and Tamil with easy language switching throughout the app."},
}

var Steps = []Step{
	{Icon: "user-plus", Title: "Sign Up", Description: "Create your patient, doctor, or caregiver account in seconds."},
	{Icon: "settings", Title: "Set Up Profile", Description: "Enter your health data, food preferences, and exercise goals."},
	{Icon: "heart-pulse", Title: "Follow Your Plan", Description: "Get AI-personalized exercises, nutrition, and reminders daily."},
	{Icon: "bar-chart", Title: "Track Progress", Description: "Monitor glucose, posture scores, and recovery analytics over time."},
}

var Testimonials = []Testimonial{
	{
		Name:   "Priya Natarajan",
		Role:   "Type 2 Diabetes Patient",
		Text:   "ZenMed's nutrition plans using local Tamil Nadu meals made managing my diet so much easier. The glucose tracker is a lifesaver!",
		Rating: 5,
	},
	{
		Name:   "Dr. Ramesh Kumar",
		Role:   "Endocrinologist",
		Text:   "The caregiver dashboard gives me real-time visibility into my patients' progress. The alert system catches critical glucose levels instantly.",
		Rating: 5,
	},
	{
		Name:   "Anitha Selvam",
		Role:   "Caregiver",
		Text:   "I can monitor my mother's exercise and medication compliance from anywhere. The reminders keep her on track every day.",
		Rating: 5,
	},
}

var FAQs = []FAQ{
	{
		Question: "Is ZenMed suitable for Type 1 and Type 2 diabetes?",
		Answer:   "Yes! ZenMed supports **both Type 1 and Type 2** diabetes with personalized exercise programs and nutrition plans tailored to your condition.",
	},
	{
		Question: "How does the AI posture correction work?",
		Answer:   "We use advanced pose detection to analyze your exercise form in real-time via your webcam. The system provides instant feedback and corrections to ensure safe rehabilitation exercises.",
	},
	{
		Question: "Can my doctor access my health data?",
		Answer:   "Absolutely. Your doctor or caregiver can be linked to your account and will receive real-time alerts for:\n\n- critical glucose levels\n- missed exercises\n\nThey can also send you recommendations.",
	},
	{
		Question: "Are the nutrition plans region-specific?",
		Answer:   "Yes! Our nutrition engine generates meal plans based on your location and food preferences, including traditional Tamil Nadu meals with full *glycemic index* data.",
	},
	{
		Question: "Is my health data secure?",
		Answer:   "We use end-to-end encryption, HIPAA-compliant storage, and role-based access control to ensure your health data is always protected.",
	},
}

const ContactBlurb = "Have questions about ZenMed? Reach out and our team will respond **within 24 hours**."

var ContactLines = []ContactLine{
	{Icon: "mail", Label: "support@zenmed.health"},
	{Icon: "phone", Label: "+91 98765 43210"},
	{Icon: "map-pin", Label: "Chennai, Tamil Nadu, India"},
}

const FooterCredit = "Built by Team ZenMed: Subetha T, Sruthi S, Sarwina M"

var Roles = []Role{
	{Value: "patient", Label: "Patient", Desc: "Track your health journey"},
	{Value: "doctor", Label: "Doctor", Desc: "Monitor your patients"},
	{Value: "caregiver", Label: "Caregiver", Desc: "Support loved ones"},
}

// DefaultRole is preselected on the registration form.
const DefaultRole = "patient"

// ValidRole reports whether v is one of Roles.
func ValidRole(v string) bool {
	for _, r := range Roles {
		if r.Value == v {
			return true
		}
	}
	return false
}
