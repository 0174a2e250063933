package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/enterprise-data-api/internal/models"
	appErrors "github.com/noah-isme/enterprise-data-api/pkg/errors"
)

func newTestAuthService() *AuthService {
	return NewAuthService(AuthConfig{
		AccessTokenSecret: "secret",
		AccessTokenExpiry: 15 * time.Minute,
		Issuer:            "enterprise-data-api",
		Audience:          []string{"admin-portal"},
	})
}

func TestAuthServiceIssueAndValidate(t *testing.T) {
	svc := newTestAuthService()

	token, err := svc.IssueToken("user-1", "admin@example.com", models.RoleEnterpriseAdmin, []string{"ee5e6b3a-069a-4947-bb8d-d2dbc323396c"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, models.RoleEnterpriseAdmin, claims.Role)
	assert.True(t, claims.CanAccessEnterprise("ee5e6b3a069a4947bb8dd2dbc323396c"))
}

func TestAuthServiceRejectsExpiredToken(t *testing.T) {
	svc := newTestAuthService()
	token, err := svc.IssueToken("user-1", "admin@example.com", models.RoleStaff, nil)
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(time.Hour) }
	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceRejectsWrongSecretAndMethod(t *testing.T) {
	svc := newTestAuthService()

	other := NewAuthService(AuthConfig{AccessTokenSecret: "other", Issuer: "enterprise-data-api", Audience: []string{"admin-portal"}})
	forged, err := other.IssueToken("user-1", "x@example.com", models.RoleStaff, nil)
	require.NoError(t, err)
	_, err = svc.ValidateToken(forged)
	require.Error(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &models.JWTClaims{UserID: "user-1", Role: models.RoleStaff})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.ValidateToken(raw)
	require.Error(t, err)
}

func TestAuthServiceRejectsWrongAudience(t *testing.T) {
	svc := newTestAuthService()
	other := NewAuthService(AuthConfig{AccessTokenSecret: "secret", Issuer: "enterprise-data-api", Audience: []string{"lms"}})

	token, err := other.IssueToken("user-1", "x@example.com", models.RoleStaff, nil)
	require.NoError(t, err)
	_, err = svc.ValidateToken(token)
	require.Error(t, err)
}
