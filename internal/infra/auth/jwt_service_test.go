package auth

import (
	"testing"
	"time"

	"canteen/config"
	"canteen/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, ttl time.Duration) *jwtService {
	t.Helper()

	cfg := &config.Config{Session: &config.SessionConfig{TokenTTL: ttl}}
	cfg.SecretKey.Session = "test-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	concrete, ok := svc.(*jwtService)
	require.True(t, ok)

	return concrete
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{Session: &config.SessionConfig{TokenTTL: time.Hour}}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestService(t, time.Hour)

	token, err := svc.GenerateToken("1", entity.RoleAdmin)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.UserID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newTestService(t, -time.Minute)

	token, err := svc.GenerateToken("3", entity.RoleMember)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	svc := newTestService(t, time.Hour)
	other := newTestService(t, time.Hour)
	other.secret = "different-secret"

	token, err := other.GenerateToken("1", entity.RoleAdmin)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsTamperedRole(t *testing.T) {
	svc := newTestService(t, time.Hour)

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
