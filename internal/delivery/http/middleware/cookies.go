package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Session cookie names. The two token cookies are HttpOnly; the business
// mirror is readable by the frontend so the route gate and the dashboard
// can tell which tenant is active without calling the API.
const (
	CookieAccessToken     = "turnos-access-token"
	CookieRefreshToken    = "turnos-refresh-token"
	CookieCurrentBusiness = "current_business_id"
)

// SetAuthCookies writes the token pair after a login or refresh.
func SetAuthCookies(c echo.Context, accessToken, refreshToken string, accessTTL, refreshTTL time.Duration, secure bool) {
	c.SetCookie(tokenCookie(CookieAccessToken, accessToken, accessTTL, secure))
	c.SetCookie(tokenCookie(CookieRefreshToken, refreshToken, refreshTTL, secure))
}

// ClearAuthCookies expires both token cookies on logout.
func ClearAuthCookies(c echo.Context, secure bool) {
	c.SetCookie(expiredCookie(CookieAccessToken, true, secure))
	c.SetCookie(expiredCookie(CookieRefreshToken, true, secure))
}

// SetBusinessCookie mirrors the active business id for the frontend. A nil
// id clears the cookie.
func SetBusinessCookie(c echo.Context, businessID uuid.UUID, ttl time.Duration, secure bool) {
	if businessID == uuid.Nil {
		c.SetCookie(expiredCookie(CookieCurrentBusiness, false, secure))

		return
	}

	cookie := tokenCookie(CookieCurrentBusiness, businessID.String(), ttl, secure)
	cookie.HttpOnly = false

	c.SetCookie(cookie)
}

func tokenCookie(name, value string, ttl time.Duration, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func expiredCookie(name string, httpOnly, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: httpOnly,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
