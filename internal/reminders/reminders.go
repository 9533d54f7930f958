// Package reminders holds the in-memory reminder list behind the reminders
// page. Lists are plain values owned by one session; callers serialise access.
package reminders

// seed is the fixed initial list every session starts from.
var seed = []Reminder{
	{ID: 1, Type: TypeMedicine, Label: "Metformin 500mg", Time: "08:00 AM", Days: "Daily", Active: true},
	{ID: 2, Type: TypeExercise, Label: "Morning Walk", Time: "06:30 AM", Days: "Mon-Fri", Active: true},
	{ID: 3, Type: TypeWater, Label: "Drink Water", Time: "Every 2 hours", Days: "Daily", Active: true},
	{ID: 4, Type: TypeMedicine, Label: "Insulin Injection", Time: "07:00 PM", Days: "Daily", Active: true},
	{ID: 5, Type: TypeExercise, Label: "Shoulder Rehab", Time: "05:00 PM", Days: "Mon, Wed, Fri", Active: false},
}

// List is an ordered set of reminders with unique IDs.
type List struct {
	Items []Reminder `json:"items"`
}

// Seed returns a fresh copy of the initial reminder list.
func Seed() *List {
	items := make([]Reminder, len(seed))
	copy(items, seed)
	return &List{Items: items}
}

// Len returns the number of reminders in the list.
func (l *List) Len() int { return len(l.Items) }

// Get returns the reminder with the given id.
func (l *List) Get(id int) (Reminder, bool) {
	for _, r := range l.Items {
		if r.ID == id {
			return r, true
		}
	}
	return Reminder{}, false
}

// Toggle flips the active flag of the reminder with the given id.
// It reports whether a reminder matched; an unknown id changes nothing.
func (l *List) Toggle(id int) bool {
	for i := range l.Items {
		if l.Items[i].ID == id {
			l.Items[i].Active = !l.Items[i].Active
			return true
		}
	}
	return false
}

// Delete removes the reminder with the given id, keeping the order of the rest.
// It reports whether a reminder was removed.
func (l *List) Delete(id int) bool {
	for i := range l.Items {
		if l.Items[i].ID == id {
			l.Items = append(l.Items[:i:i], l.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Counts tallies the reminders in the list per type.
func (l *List) Counts() Counts {
	var c Counts
	for _, r := range l.Items {
		switch r.Type {
		case TypeMedicine:
			c.Medicine++
		case TypeExercise:
			c.Exercise++
		case TypeWater:
			c.Water++
		}
	}
	return c
}
