package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turnos/internal/domain/service"
	mockSvc "turnos/internal/mocks/service"
)

func accessClaims(businessID uuid.UUID) *service.Claims {
	return &service.Claims{
		UserID:     uuid.New(),
		SessionID:  uuid.New(),
		BusinessID: businessID,
		Roles:      []string{"owner"},
		Type:       "access",
	}
}

func authContext(header, cookie string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/business/profile", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: CookieAccessToken, Value: cookie})
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate_BearerHeader(t *testing.T) {
	mockToken := mockSvc.NewMockTokenService(t)
	m := &AuthMiddleware{tokenSvc: mockToken}

	claims := accessClaims(uuid.New())
	mockToken.EXPECT().ValidateToken("valid-jwt").Return(claims, nil)

	c, rec := authContext("Bearer valid-jwt", "")

	nextCalled := false
	err := m.Authenticate(func(c echo.Context) error {
		nextCalled = true

		userID, ok := GetUserID(c)
		require.True(t, ok)
		assert.Equal(t, claims.UserID, userID)

		sessionID, ok := GetSessionID(c)
		require.True(t, ok)
		assert.Equal(t, claims.SessionID, sessionID)

		businessID, ok := GetBusinessID(c)
		require.True(t, ok)
		assert.Equal(t, claims.BusinessID, businessID)

		roles, ok := GetRoles(c)
		require.True(t, ok)
		assert.Equal(t, []string{"owner"}, roles)

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// Browser sessions carry the token in the HttpOnly cookie instead of the
// Authorization header.
func TestAuthMiddleware_Authenticate_CookieFallback(t *testing.T) {
	mockToken := mockSvc.NewMockTokenService(t)
	m := &AuthMiddleware{tokenSvc: mockToken}

	mockToken.EXPECT().ValidateToken("cookie-jwt").Return(accessClaims(uuid.Nil), nil)

	c, rec := authContext("", "cookie-jwt")

	err := m.Authenticate(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Authenticate_HeaderWinsOverCookie(t *testing.T) {
	mockToken := mockSvc.NewMockTokenService(t)
	m := &AuthMiddleware{tokenSvc: mockToken}

	mockToken.EXPECT().ValidateToken("header-jwt").Return(accessClaims(uuid.Nil), nil)

	c, _ := authContext("Bearer header-jwt", "cookie-jwt")

	err := m.Authenticate(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
}

func TestAuthMiddleware_Authenticate_MissingToken(t *testing.T) {
	mockToken := mockSvc.NewMockTokenService(t)
	m := &AuthMiddleware{tokenSvc: mockToken}

	c, rec := authContext("", "")

	nextCalled := false
	err := m.Authenticate(func(echo.Context) error {
		nextCalled = true

		return nil
	})(c)

	require.NoError(t, err)
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"unauthorized"`)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	mockToken := mockSvc.NewMockTokenService(t)
	m := &AuthMiddleware{tokenSvc: mockToken}

	mockToken.EXPECT().ValidateToken("expired-jwt").Return(nil, errors.New("token is expired"))

	c, rec := authContext("Bearer expired-jwt", "")

	err := m.Authenticate(func(echo.Context) error { return nil })(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"invalid_token"`)
}

// A refresh token must not open API access even though it is a valid JWT.
func TestAuthMiddleware_Authenticate_RefreshTokenRejected(t *testing.T) {
	mockToken := mockSvc.NewMockTokenService(t)
	m := &AuthMiddleware{tokenSvc: mockToken}

	claims := accessClaims(uuid.Nil)
	claims.Type = "refresh"
	mockToken.EXPECT().ValidateToken("refresh-jwt").Return(claims, nil)

	c, rec := authContext("Bearer refresh-jwt", "")

	err := m.Authenticate(func(echo.Context) error { return nil })(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "El token no es un token de acceso")
}

func TestAuthMiddleware_RequireBusinessContext(t *testing.T) {
	m := &AuthMiddleware{}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/business/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", uuid.New())
	c.Set("businessID", uuid.New())

	err := m.RequireBusinessContext(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_RequireBusinessContext_NoneActive(t *testing.T) {
	m := &AuthMiddleware{}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/business/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", uuid.New())
	c.Set("businessID", uuid.Nil)

	nextCalled := false
	err := m.RequireBusinessContext(func(echo.Context) error {
		nextCalled = true

		return nil
	})(c)

	require.NoError(t, err)
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No hay un negocio activo en la sesión")
}
