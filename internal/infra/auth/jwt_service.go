// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"turnos/config"
	"turnos/internal/domain/service"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour

	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	accessTTL := defaultAccessTTL
	refreshTTL := defaultRefreshTTL
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			refreshTTL = cfg.Auth.RefreshTokenTTL
		}
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}, nil
}

// GenerateTokens creates a new access token and refresh token pair for one
// session. The access token carries the roles and the active business so
// tenant-scoped authorization stays stateless.
func (s *jwtService) GenerateTokens(userID, sessionID, businessID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.generateToken(userID, sessionID, businessID, roles, s.accessTTL, s.accessSecret, tokenTypeAccess)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.generateToken(userID, sessionID, uuid.Nil, nil, s.refreshTTL, s.refreshSecret, tokenTypeRefresh)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ValidateToken checks a token string against both signing keys and returns
// the decoded claims. The token type claim must match the key that verified
// it, so an access token can never pass as a refresh token.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims, accessErr := s.parseWithSecret(tokenString, s.accessSecret, tokenTypeAccess)
	if accessErr == nil {
		return claims, nil
	}

	claims, refreshErr := s.parseWithSecret(tokenString, s.refreshSecret, tokenTypeRefresh)
	if refreshErr == nil {
		return claims, nil
	}

	return nil, errors.Wrap(accessErr, "token invalid for both keys")
}

// HashToken returns the hex SHA-256 digest of a token. Session rows store
// this digest, so a leaked database dump exposes no usable refresh tokens.
func (s *jwtService) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// GetRefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(userID, sessionID, businessID uuid.UUID, roles []string, ttl time.Duration, secret, tokenType string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID.String(),     // Subject (who the token is for)
		"sid":  sessionID.String(),  // Session this token belongs to
		"iat":  now.Unix(),          // Issued At
		"exp":  now.Add(ttl).Unix(), // Expiration Time
		"type": tokenType,           // Type of token (access or refresh)
	}
	// Only the access token carries authorization context.
	if roles != nil {
		claims["roles"] = roles
	}
	if businessID != uuid.Nil {
		claims["bid"] = businessID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

func (s *jwtService) parseWithSecret(tokenString, secret, wantType string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	tokenType, _ := mapClaims["type"].(string)
	if tokenType != wantType {
		return nil, errors.Errorf("unexpected token type %q", tokenType)
	}

	return buildClaims(mapClaims, tokenType)
}

func buildClaims(mapClaims jwt.MapClaims, tokenType string) (*service.Claims, error) {
	userID, err := parseUUIDClaim(mapClaims, "sub")
	if err != nil {
		return nil, err
	}
	sessionID, err := parseUUIDClaim(mapClaims, "sid")
	if err != nil {
		return nil, err
	}

	claims := &service.Claims{
		UserID:    userID,
		SessionID: sessionID,
		Type:      tokenType,
	}

	// bid is optional: sessions without a selected business issue tokens
	// without it.
	if raw, ok := mapClaims["bid"].(string); ok {
		businessID, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.Wrap(err, "parse bid claim")
		}
		claims.BusinessID = businessID
	}

	if rawRoles, ok := mapClaims["roles"].([]any); ok {
		roles := make([]string, 0, len(rawRoles))
		for _, r := range rawRoles {
			if s, ok := r.(string); ok {
				roles = append(roles, s)
			}
		}
		claims.Roles = roles
	}

	return claims, nil
}

func parseUUIDClaim(mapClaims jwt.MapClaims, key string) (uuid.UUID, error) {
	raw, ok := mapClaims[key].(string)
	if !ok {
		return uuid.Nil, errors.Errorf("missing %s claim", key)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "parse %s claim", key)
	}

	return id, nil
}
