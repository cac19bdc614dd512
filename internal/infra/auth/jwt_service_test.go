package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compras/config"
	"compras/internal/domain/entity"
)

func newTestTokenService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret-for-tests"
	cfg.SecretKey.Refresh = "refresh-secret-for-tests"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	jwtSvc, ok := svc.(*jwtService)
	require.True(t, ok)

	return jwtSvc
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)
	require.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestTokenService(t)

	access, refresh, err := svc.GenerateTokens("ana@empresa_com", entity.RoleAprovador)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, "ana@empresa_com", claims.UID)
	assert.Equal(t, entity.RoleAprovador, claims.Role)
	assert.Equal(t, tokenTypeAccess, claims.Type)
}

func TestJWTService_RefreshTokenCarriesNoRole(t *testing.T) {
	svc := newTestTokenService(t)

	_, refresh, err := svc.GenerateTokens("ana@empresa_com", entity.RoleAdmin)
	require.NoError(t, err)

	claims, err := svc.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "ana@empresa_com", claims.UID)
	assert.Empty(t, claims.Role)
}

func TestJWTService_RejectsCrossTypeTokens(t *testing.T) {
	svc := newTestTokenService(t)

	access, refresh, err := svc.GenerateTokens("ana@empresa_com", entity.RoleUser)
	require.NoError(t, err)

	_, err = svc.ValidateToken(refresh)
	require.Error(t, err)

	_, err = svc.ValidateRefreshToken(access)
	require.Error(t, err)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := newTestTokenService(t)

	access, _, err := svc.GenerateTokens("ana@empresa_com", entity.RoleUser)
	require.NoError(t, err)

	_, err = svc.ValidateToken(access + "x")
	require.Error(t, err)
}
