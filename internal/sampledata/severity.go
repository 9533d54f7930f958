package sampledata

// Severity is the visual class a value is rendered with.
type Severity string

const (
	SeverityNormal   Severity = "normal"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Glucose thresholds in mg/dL for the patient table.
const (
	GlucoseHigh = 250
	GlucoseLow  = 70
)

// GlucoseLevel classifies a glucose reading: above GlucoseHigh is critical,
// below GlucoseLow is a warning, anything else is normal. Both bounds are
// exclusive.
func GlucoseLevel(mg int) Severity {
	switch {
	case mg > GlucoseHigh:
		return SeverityCritical
	case mg < GlucoseLow:
		return SeverityWarning
	default:
		return SeverityNormal
	}
}

// Grade is the feedback tier of a posture session.
type Grade string

const (
	GradeExcellent Grade = "excellent"
	GradeGood      Grade = "good"
	GradeNeedsWork Grade = "needs-work"
)

// PostureGrade maps a 0-100 posture score to a grade.
func PostureGrade(score int) Grade {
	switch {
	case score >= 90:
		return GradeExcellent
	case score >= 80:
		return GradeGood
	default:
		return GradeNeedsWork
	}
}

// Label is the display text of the grade.
func (g Grade) Label() string {
	switch g {
	case GradeExcellent:
		return "Excellent"
	case GradeGood:
		return "Good"
	default:
		return "Needs Work"
	}
}
