package reminders

// Type categorizes what a reminder is for.
type Type string

const (
	TypeMedicine Type = "medicine"
	TypeExercise Type = "exercise"
	TypeWater    Type = "water"
)

// Reminder is a scheduled-activity record held in session memory only.
type Reminder struct {
	ID     int    `json:"id"`
	Type   Type   `json:"type"`
	Label  string `json:"label"`
	Time   string `json:"time"`
	Days   string `json:"days"`
	Active bool   `json:"active"`
}

// Counts holds the number of reminders per type.
type Counts struct {
	Medicine int
	Exercise int
	Water    int
}

// Icon names the glyph shown next to reminders of this type.
func (t Type) Icon() string {
	switch t {
	case TypeMedicine:
		return "pill"
	case TypeExercise:
		return "dumbbell"
	case TypeWater:
		return "droplets"
	default:
		return "bell"
	}
}
