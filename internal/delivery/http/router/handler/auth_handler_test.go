package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"turnos/internal/delivery/http/middleware"
	"turnos/internal/domain/entity"
	domainerrors "turnos/internal/domain/errors"
	mockUC "turnos/internal/mocks/usecase"
	"turnos/internal/usecase"
)

func newAuthOutput(businessID uuid.UUID) *usecase.AuthOutput {
	return &usecase.AuthOutput{
		UserID:           uuid.New(),
		SessionID:        uuid.New(),
		AccessToken:      "access-jwt",
		RefreshToken:     "refresh-jwt",
		RefreshExpiresAt: time.Now().Add(7 * 24 * time.Hour),
		ActiveBusinessID: businessID,
		User: &entity.User{
			ID:    uuid.New(),
			Email: "laura@example.com",
			Name:  "Laura Gómez",
		},
	}
}

func TestAuthHandler_Login_SetsSessionCookies(t *testing.T) {
	mockAuth := mockUC.NewMockAuthUsecase(t)
	h := &AuthHandler{authUC: mockAuth, cfg: developConfig(), logger: newDiscardLogger()}

	businessID := uuid.New()
	output := newAuthOutput(businessID)

	mockAuth.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "laura@example.com", Password: "contraseña-segura"}).
		Return(output, nil)

	c, rec := newJSONContext(http.MethodPost, "/auth/login",
		`{"email": "laura@example.com", "password": "contraseña-segura"}`)

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"access_token":"access-jwt"`)
	assert.Contains(t, body, businessID.String())

	access := cookieByName(rec, middleware.CookieAccessToken)
	require.NotNil(t, access)
	assert.Equal(t, "access-jwt", access.Value)
	assert.True(t, access.HTTPOnly)
	assert.False(t, access.Secure, "cookies stay plain http in develop")

	refresh := cookieByName(rec, middleware.CookieRefreshToken)
	require.NotNil(t, refresh)
	assert.Equal(t, "refresh-jwt", refresh.Value)
	assert.True(t, refresh.HTTPOnly)

	// The business mirror is readable by the frontend.
	mirror := cookieByName(rec, middleware.CookieCurrentBusiness)
	require.NotNil(t, mirror)
	assert.Equal(t, businessID.String(), mirror.Value)
	assert.False(t, mirror.HTTPOnly)
}

func TestAuthHandler_Login_NoBusinessClearsMirror(t *testing.T) {
	mockAuth := mockUC.NewMockAuthUsecase(t)
	h := &AuthHandler{authUC: mockAuth, cfg: developConfig(), logger: newDiscardLogger()}

	mockAuth.EXPECT().Login(mock.Anything, mock.Anything).Return(newAuthOutput(uuid.Nil), nil)

	c, rec := newJSONContext(http.MethodPost, "/auth/login",
		`{"email": "laura@example.com", "password": "contraseña-segura"}`)

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	mirror := cookieByName(rec, middleware.CookieCurrentBusiness)
	require.NotNil(t, mirror)
	assert.Empty(t, mirror.Value)
	assert.Equal(t, -1, mirror.MaxAge)
}

func TestAuthHandler_Login_SecureCookiesOutsideDevelop(t *testing.T) {
	mockAuth := mockUC.NewMockAuthUsecase(t)
	cfg := developConfig()
	cfg.Env.Env = "production"
	h := &AuthHandler{authUC: mockAuth, cfg: cfg, logger: newDiscardLogger()}

	mockAuth.EXPECT().Login(mock.Anything, mock.Anything).Return(newAuthOutput(uuid.New()), nil)

	c, rec := newJSONContext(http.MethodPost, "/auth/login",
		`{"email": "laura@example.com", "password": "contraseña-segura"}`)

	require.NoError(t, h.Login(c))

	for _, name := range []string{middleware.CookieAccessToken, middleware.CookieRefreshToken, middleware.CookieCurrentBusiness} {
		cookie := cookieByName(rec, name)
		require.NotNil(t, cookie, name)
		assert.True(t, cookie.Secure, name)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mockAuth := mockUC.NewMockAuthUsecase(t)
	h := &AuthHandler{authUC: mockAuth, cfg: developConfig(), logger: newDiscardLogger()}

	mockAuth.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	c, rec := newJSONContext(http.MethodPost, "/auth/login",
		`{"email": "laura@example.com", "password": "incorrecta"}`)

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"invalid_credentials"`)
	assert.Empty(t, rec.Result().Cookies(), "failed logins must not touch cookies")
}

// The cookie wins over the body so a stale body token cannot hijack a
// browser session.
func TestAuthHandler_Refresh_CookieTakesPrecedence(t *testing.T) {
	mockAuth := mockUC.NewMockAuthUsecase(t)
	h := &AuthHandler{authUC: mockAuth, cfg: developConfig(), logger: newDiscardLogger()}

	mockAuth.EXPECT().Refresh(mock.Anything, "cookie-token").Return(newAuthOutput(uuid.New()), nil)

	c, rec := newJSONContext(http.MethodPost, "/auth/refresh", `{"refresh_token": "body-token"}`)
	c.Request().AddCookie(&http.Cookie{Name: middleware.CookieRefreshToken, Value: "cookie-token"})

	require.NoError(t, h.Refresh(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_Refresh_BodyFallback(t *testing.T) {
	mockAuth := mockUC.NewMockAuthUsecase(t)
	h := &AuthHandler{authUC: mockAuth, cfg: developConfig(), logger: newDiscardLogger()}

	mockAuth.EXPECT().Refresh(mock.Anything, "body-token").Return(newAuthOutput(uuid.New()), nil)

	c, rec := newJSONContext(http.MethodPost, "/auth/refresh", `{"refresh_token": "body-token"}`)

	require.NoError(t, h.Refresh(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_Refresh_MissingToken(t *testing.T) {
	mockAuth := mockUC.NewMockAuthUsecase(t)
	h := &AuthHandler{authUC: mockAuth, cfg: developConfig(), logger: newDiscardLogger()}

	c, rec := newJSONContext(http.MethodPost, "/auth/refresh", "")

	require.NoError(t, h.Refresh(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"refresh_token_invalid"`)
}

func TestAuthHandler_Refresh_RotatedTokenRejected(t *testing.T) {
	mockAuth := mockUC.NewMockAuthUsecase(t)
	h := &AuthHandler{authUC: mockAuth, cfg: developConfig(), logger: newDiscardLogger()}

	mockAuth.EXPECT().Refresh(mock.Anything, "stale-token").Return(nil, domainerrors.ErrRefreshTokenInvalid)

	c, rec := newJSONContext(http.MethodPost, "/auth/refresh", `{"refresh_token": "stale-token"}`)

	require.NoError(t, h.Refresh(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"refresh_token_invalid"`)
}

func TestAuthHandler_Logout_ClearsCookies(t *testing.T) {
	mockAuth := mockUC.NewMockAuthUsecase(t)
	h := &AuthHandler{authUC: mockAuth, cfg: developConfig(), logger: newDiscardLogger()}

	sessionID := uuid.New()
	mockAuth.EXPECT().Logout(mock.Anything, sessionID).Return(nil)

	c, rec := newJSONContext(http.MethodPost, "/auth/logout", "")
	authenticate(c, uuid.New(), sessionID, uuid.New())

	require.NoError(t, h.Logout(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	for _, name := range []string{middleware.CookieAccessToken, middleware.CookieRefreshToken, middleware.CookieCurrentBusiness} {
		cookie := cookieByName(rec, name)
		require.NotNil(t, cookie, name)
		assert.Empty(t, cookie.Value, name)
		assert.Equal(t, -1, cookie.MaxAge, name)
	}
}

func TestAuthHandler_Logout_RequiresSession(t *testing.T) {
	mockAuth := mockUC.NewMockAuthUsecase(t)
	h := &AuthHandler{authUC: mockAuth, cfg: developConfig(), logger: newDiscardLogger()}

	c, rec := newJSONContext(http.MethodPost, "/auth/logout", "")

	require.NoError(t, h.Logout(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_LogoutAll(t *testing.T) {
	mockAuth := mockUC.NewMockAuthUsecase(t)
	h := &AuthHandler{authUC: mockAuth, cfg: developConfig(), logger: newDiscardLogger()}

	userID := uuid.New()
	mockAuth.EXPECT().LogoutAll(mock.Anything, userID).Return(nil)

	c, rec := newJSONContext(http.MethodPost, "/auth/logout-all", "")
	authenticate(c, userID, uuid.New(), uuid.Nil)

	require.NoError(t, h.LogoutAll(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Se cerraron todas las sesiones")
}
