package auth

import (
	"testing"

	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/config"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-do-not-use"
	cfg.JWT.ExpirationHours = 24
	cfg.JWT.Issuer = "tmr-backend"
	return cfg
}

func TestGenerateAndValidateToken(t *testing.T) {
	mgr := NewJWTManager(testConfig())

	user := &models.User{ID: 7, Email: "staff@tmr.lk", Role: "staff", IsActive: true}
	token, err := mgr.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := mgr.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "staff@tmr.lk", claims.Email)
	assert.Equal(t, "staff", claims.Role)
	assert.True(t, claims.IsActive)
	assert.Equal(t, "tmr-backend", claims.Issuer)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	mgr := NewJWTManager(testConfig())
	token, err := mgr.GenerateToken(&models.User{ID: 1, Email: "a@b.lk", Role: "admin"})
	require.NoError(t, err)

	other := testConfig()
	other.JWT.Secret = "different-secret"
	_, err = NewJWTManager(other).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	mgr := NewJWTManager(testConfig())
	_, err := mgr.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, VerifyPassword(hash, "s3cret-password"))
	assert.False(t, VerifyPassword(hash, "wrong-password"))
}
