package routes

// NavItem is one link of the dashboard sidebar.
type NavItem struct {
	Icon  string
	Label string
	Path  string
}

var nav = []NavItem{
	{Icon: "layout-dashboard", Label: "Dashboard", Path: Dashboard},
	{Icon: "droplets", Label: "Glucose Tracking", Path: Glucose},
	{Icon: "dumbbell", Label: "Exercises", Path: Exercises},
	{Icon: "camera", Label: "AI Posture", Path: Posture},
	{Icon: "utensils", Label: "Nutrition", Path: Nutrition},
	{Icon: "bell", Label: "Reminders", Path: Reminders},
	{Icon: "bar-chart", Label: "Analytics", Path: Analytics},
	{Icon: "users", Label: "Doctor Portal", Path: Doctor},
}

// Nav returns the sidebar items in display order.
func Nav() []NavItem {
	out := make([]NavItem, len(nav))
	copy(out, nav)
	return out
}

// Active reports whether item is the page at currentPath. Only an exact
// match counts, so /dashboard is not active on /dashboard/glucose.
func Active(item NavItem, currentPath string) bool {
	return item.Path == currentPath
}
