package session

import (
	"context"

	"github.com/zenmed-health/zenmed/internal/reminders"
)

// Toast is a one-shot notice shown on the next rendered page.
type Toast struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// State is the view state of one browser. None of it is health data; it is
// the server-side stand-in for component-local UI state.
type State struct {
	// Collapsed is the dashboard sidebar flag.
	Collapsed bool `json:"collapsed"`
	// Reminders is the reminders page list; nil until the page is opened.
	Reminders *reminders.List `json:"reminders,omitempty"`
	// Toast is consumed by the next render.
	Toast *Toast `json:"toast,omitempty"`
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	c := *s
	if s.Reminders != nil {
		items := make([]reminders.Reminder, len(s.Reminders.Items))
		copy(items, s.Reminders.Items)
		c.Reminders = &reminders.List{Items: items}
	}
	if s.Toast != nil {
		t := *s.Toast
		c.Toast = &t
	}
	return &c
}

// Store persists session state by session ID for the lifetime of the process
// (memory) or of the TTL (redis).
type Store interface {
	// Get returns the state for id, or nil with no error when there is none.
	Get(ctx context.Context, id string) (*State, error)
	// Put saves the state for id and refreshes its expiry.
	Put(ctx context.Context, id string, st *State) error
	// Delete drops the state for id.
	Delete(ctx context.Context, id string) error
}
