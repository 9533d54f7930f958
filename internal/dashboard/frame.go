package dashboard

import (
	"context"
	"net/url"

	"github.com/zenmed-health/zenmed/internal/reminders"
	"github.com/zenmed-health/zenmed/internal/routes"
	"github.com/zenmed-health/zenmed/internal/session"
)

type navLink struct {
	routes.NavItem
	Active bool
}

// frame is what the sidebar needs to render.
type frame struct {
	Nav       []navLink
	Collapsed bool
	// Return is where the collapse toggle sends the browser back to.
	Return string
}

type pageData struct {
	Frame   frame
	Content any
}

func newFrame(currentPath, requestURI string, collapsed bool) frame {
	items := routes.Nav()
	nav := make([]navLink, len(items))
	for i, it := range items {
		nav[i] = navLink{NavItem: it, Active: routes.Active(it, currentPath)}
	}
	return frame{Nav: nav, Collapsed: collapsed, Return: requestURI}
}

// enter applies the view-state rules for opening a frame page: the reminder
// list lives only while the reminders page is shown, and a pending toast is
// consumed. The returned state is the one the page renders from.
func (d *Dashboard) enter(ctx context.Context, path string) (*session.State, *session.Toast) {
	var toast *session.Toast
	st := d.sessions.Update(ctx, func(st *session.State) {
		if path == routes.Reminders {
			if st.Reminders == nil {
				st.Reminders = reminders.Seed()
			}
		} else {
			st.Reminders = nil
		}
		toast = st.Toast
		st.Toast = nil
	})
	return st, toast
}

// safeReturn keeps the toggle redirect inside the dashboard. Anything that
// is not a declared frame page, including absolute URLs, falls back to
// /dashboard.
func safeReturn(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "" || u.Host != "" || u.User != nil {
		return routes.Dashboard
	}
	if !routes.IsDashboard(u.Path) {
		return routes.Dashboard
	}
	if u.RawQuery != "" {
		return u.Path + "?" + u.RawQuery
	}
	return u.Path
}
