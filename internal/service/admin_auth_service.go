package service

import (
	"crypto/subtle"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/tapnex/store_api/internal/config"
	"github.com/tapnex/store_api/internal/utils"
)

// AdminAuthService authenticates the single admin account configured through
// the environment. There is no user table; the upstream owns all data and the
// admin surface only needs one operator login.
type AdminAuthService struct {
	admin     config.AdminConfig
	jwtSecret string
}

func NewAdminAuthService(admin config.AdminConfig, jwtSecret string) *AdminAuthService {
	return &AdminAuthService{
		admin:     admin,
		jwtSecret: jwtSecret,
	}
}

// Login verifies credentials and issues a session token.
func (s *AdminAuthService) Login(email, password string) (string, error) {
	if s.admin.Email == "" || s.admin.PasswordHash == "" {
		log.Warn().Msg("Admin login attempted but no admin account is configured")
		return "", utils.ErrInvalidCredentials
	}

	if subtle.ConstantTimeCompare([]byte(email), []byte(s.admin.Email)) != 1 {
		return "", utils.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password)); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return utils.GenerateJWT(s.jwtSecret, email)
}
