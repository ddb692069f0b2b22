package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tapnex/store_api/internal/config"
	"github.com/tapnex/store_api/internal/utils"
)

func newAuthService(t *testing.T, password string) *AdminAuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return NewAdminAuthService(config.AdminConfig{
		Email:        "admin@tapnex.store",
		PasswordHash: string(hash),
	}, "test-secret")
}

func TestLoginSuccess(t *testing.T) {
	svc := newAuthService(t, "correct horse")

	token, err := svc.Login("admin@tapnex.store", "correct horse")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := utils.ValidateJWT("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, "admin@tapnex.store", claims.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(t, "correct horse")
	_, err := svc.Login("admin@tapnex.store", "wrong")
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginWrongEmail(t *testing.T) {
	svc := newAuthService(t, "correct horse")
	_, err := svc.Login("someone@else.com", "correct horse")
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginUnconfiguredAdmin(t *testing.T) {
	svc := NewAdminAuthService(config.AdminConfig{}, "test-secret")
	_, err := svc.Login("admin@tapnex.store", "anything")
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}
