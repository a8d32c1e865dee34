package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// GateAction is the outcome of classifying one request path against the
// session cookies.
type GateAction int

// Possible gate outcomes.
const (
	GatePass GateAction = iota
	GateLoginRedirect
	GateDashboardRedirect
)

// Route prefix lists. API and auth endpoints answer their own 401s, so the
// gate only steers the page routes: dashboard pages need a session, the
// login and registration pages bounce users who already have one.
var (
	publicPrefixes = []string{
		"/api",
		"/auth",
		"/book",
		"/metrics",
		"/test",
	}
	protectedPrefixes = []string{
		"/dashboard",
	}
	authPrefixes = []string{
		"/login",
		"/register",
	}
)

// ClassifyRoute decides what the gate does with a request. It is pure: the
// only inputs are the path and whether either session cookie is present.
func ClassifyRoute(path string, hasSession bool) GateAction {
	if hasPrefix(path, publicPrefixes) {
		return GatePass
	}

	if hasPrefix(path, protectedPrefixes) && !hasSession {
		return GateLoginRedirect
	}

	if hasPrefix(path, authPrefixes) && hasSession {
		return GateDashboardRedirect
	}

	return GatePass
}

func hasPrefix(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}

	return false
}

// RouteGate redirects browser navigation based on cookie presence. It does
// no token validation and no I/O; expired cookies are caught later by the
// auth middleware of whatever API call the page makes.
type RouteGate struct{}

// NewRouteGate creates the gate.
func NewRouteGate() *RouteGate {
	return &RouteGate{}
}

// Handle applies the classification.
func (g *RouteGate) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		switch ClassifyRoute(c.Request().URL.Path, g.hasSession(c)) {
		case GateLoginRedirect:
			return c.Redirect(http.StatusFound, "/login")
		case GateDashboardRedirect:
			return c.Redirect(http.StatusFound, "/dashboard")
		default:
			return next(c)
		}
	}
}

func (g *RouteGate) hasSession(c echo.Context) bool {
	for _, name := range []string{CookieAccessToken, CookieRefreshToken} {
		if cookie, err := c.Cookie(name); err == nil && cookie.Value != "" {
			return true
		}
	}

	return false
}
