// Package session keeps per-browser view state (sidebar flag, reminder list,
// pending toast) behind an opaque cookie.
package session

import (
	"context"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type ctxKey struct{}

// Options configures the session cookie.
type Options struct {
	CookieName string
	Secure     bool
}

// Manager issues session cookies and serialises state updates per session.
type Manager struct {
	store  Store
	opts   Options
	logger zerolog.Logger

	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

// NewManager creates a Manager on top of store.
func NewManager(store Store, opts Options, logger zerolog.Logger) *Manager {
	if opts.CookieName == "" {
		opts.CookieName = "zenmed_session"
	}
	return &Manager{
		store:  store,
		opts:   opts,
		logger: logger.With().Str("component", "session").Logger(),
		locks:  make(map[string]*sessionLock),
	}
}

// lock acquires the lock for one session ID. Entries are dropped once no
// request holds or waits for them.
func (m *Manager) lock(id string) (unlock func()) {
	m.mu.Lock()
	l, ok := m.locks[id]
	if !ok {
		l = &sessionLock{}
		m.locks[id] = l
	}
	l.refs++
	m.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		m.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(m.locks, id)
		}
		m.mu.Unlock()
	}
}

// Middleware makes sure every request carries a session ID, issuing a new
// cookie when the browser has none or sends a malformed one.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(m.opts.CookieName); err == nil {
			if _, err := uuid.Parse(c.Value); err == nil {
				id = c.Value
			}
		}
		if id == "" {
			id = uuid.New().String()
			http.SetCookie(w, &http.Cookie{
				Name:     m.opts.CookieName,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				Secure:   m.opts.Secure,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r.WithContext(WithID(r.Context(), id)))
	})
}

// WithID returns a context carrying the session ID.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// IDFromContext returns the session ID set by Middleware.
func IDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// Load returns the current state. Missing sessions and store failures yield
// a fresh state; failures are logged.
func (m *Manager) Load(ctx context.Context) *State {
	id := IDFromContext(ctx)
	if id == "" {
		return &State{}
	}
	st, err := m.store.Get(ctx, id)
	if err != nil {
		m.logger.Error().Err(err).Str("session_id", id).Msg("load session")
		return &State{}
	}
	if st == nil {
		return &State{}
	}
	return st
}

// Update applies fn to the current state and saves the result. The returned
// state is what fn left behind, even when saving fails.
func (m *Manager) Update(ctx context.Context, fn func(*State)) *State {
	id := IDFromContext(ctx)
	if id == "" {
		st := &State{}
		fn(st)
		return st
	}

	unlock := m.lock(id)
	defer unlock()

	st := m.Load(ctx)
	fn(st)
	if err := m.store.Put(ctx, id, st); err != nil {
		m.logger.Error().Err(err).Str("session_id", id).Msg("save session")
	}
	return st
}

// PopToast returns the pending toast, if any, and clears it.
func (m *Manager) PopToast(ctx context.Context) *Toast {
	var t *Toast
	m.Update(ctx, func(st *State) {
		t = st.Toast
		st.Toast = nil
	})
	return t
}

// EnterPublic applies the rules for rendering a page outside the dashboard
// frame: the frame's collapsed flag and the reminder list are dropped. It
// returns the pending toast, which is consumed.
func (m *Manager) EnterPublic(ctx context.Context) *Toast {
	var t *Toast
	m.Update(ctx, func(st *State) {
		st.Collapsed = false
		st.Reminders = nil
		t = st.Toast
		st.Toast = nil
	})
	return t
}
