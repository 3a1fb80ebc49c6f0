package middleware

import "strings"

// Route anchors of the dashboard surface.
const (
	DashboardPath = "/dashboard"
	LoginPath     = "/login"
)

// Decision is the outcome of the authorization gate for one request.
type Decision int

const (
	// DecisionAllow lets the request through to its handler.
	DecisionAllow Decision = iota
	// DecisionRedirectLogin sends an unauthenticated visitor to the login page.
	DecisionRedirectLogin
	// DecisionRedirectDashboard sends an already signed-in visitor off the login page.
	DecisionRedirectDashboard
)

// Decide evaluates the access rules for a request path and session state.
// It is a pure function of its two arguments; the protected namespace is
// the /dashboard prefix and it fails closed.
func Decide(path string, authenticated bool) Decision {
	onDashboard := path == DashboardPath || strings.HasPrefix(path, DashboardPath+"/")
	switch {
	case onDashboard && authenticated:
		return DecisionAllow
	case onDashboard:
		return DecisionRedirectLogin
	case authenticated && path == LoginPath:
		return DecisionRedirectDashboard
	default:
		return DecisionAllow
	}
}
