package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyRoute(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		hasSession bool
		want       GateAction
	}{
		{"api is always public", "/api/appointments", false, GatePass},
		{"auth endpoints answer their own 401s", "/auth/login", false, GatePass},
		{"booking page is public", "/book/some-business", false, GatePass},
		{"metrics scrape passes", "/metrics", false, GatePass},
		{"root passes", "/", false, GatePass},
		{"anonymous dashboard redirects to login", "/dashboard", false, GateLoginRedirect},
		{"anonymous dashboard subpage redirects", "/dashboard/settings", false, GateLoginRedirect},
		{"session holder reaches dashboard", "/dashboard", true, GatePass},
		{"session holder bounced off login", "/login", true, GateDashboardRedirect},
		{"session holder bounced off register", "/register", true, GateDashboardRedirect},
		{"anonymous login page passes", "/login", false, GatePass},
		{"prefix needs a path boundary", "/dashboards", false, GatePass},
		{"unknown page passes", "/precios", false, GatePass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyRoute(tt.path, tt.hasSession))
		})
	}
}

func gateContext(t *testing.T, path string, cookies ...*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestRouteGate_RedirectsAnonymousDashboard(t *testing.T) {
	gate := NewRouteGate()
	c, rec := gateContext(t, "/dashboard")

	nextCalled := false
	err := gate.Handle(func(echo.Context) error {
		nextCalled = true

		return nil
	})(c)

	require.NoError(t, err)
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestRouteGate_BouncesSessionOffLogin(t *testing.T) {
	gate := NewRouteGate()
	c, rec := gateContext(t, "/login", &http.Cookie{Name: CookieAccessToken, Value: "token"})

	err := gate.Handle(func(echo.Context) error { return nil })(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get(echo.HeaderLocation))
}

// An expired access token with a live refresh cookie still counts as a
// session: the dashboard's first API call refreshes it.
func TestRouteGate_RefreshCookieCounts(t *testing.T) {
	gate := NewRouteGate()
	c, rec := gateContext(t, "/dashboard", &http.Cookie{Name: CookieRefreshToken, Value: "token"})

	nextCalled := false
	err := gate.Handle(func(echo.Context) error {
		nextCalled = true

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouteGate_PublicPathPassesThrough(t *testing.T) {
	gate := NewRouteGate()
	c, rec := gateContext(t, "/api/appointments")

	err := gate.Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
