package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"

	"turnos/config"
	"turnos/internal/delivery/http/middleware"
	"turnos/internal/delivery/http/validator"
	"turnos/internal/domain/constants"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newJSONContext builds an echo context the way the server assembles it:
// request validator mounted, JSON content type when a body is present.
func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// authenticate stores claims in the context under the same keys the auth
// middleware uses.
func authenticate(c echo.Context, userID, sessionID, businessID uuid.UUID) {
	c.Set("userID", userID)
	c.Set("sessionID", sessionID)
	c.Set("businessID", businessID)
	c.Set("roles", []string{"owner"})
}

// renderError materializes an error a handler returned, the way the
// server's central HTTPErrorHandler would.
func renderError(c echo.Context, err error) {
	middleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(err, c)
}

func developConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvDevelop

	return cfg
}

// cookieByName finds one Set-Cookie entry of the recorded response.
func cookieByName(rec *httptest.ResponseRecorder, name string) *cookieResult {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return &cookieResult{
				Value:    cookie.Value,
				MaxAge:   cookie.MaxAge,
				HTTPOnly: cookie.HttpOnly,
				Secure:   cookie.Secure,
			}
		}
	}

	return nil
}

type cookieResult struct {
	Value    string
	MaxAge   int
	HTTPOnly bool
	Secure   bool
}
