// FILE: internal/service/auth_service.go
package service

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"swim-coach-be/internal/config"
	"swim-coach-be/internal/pkg/logger"
	"swim-coach-be/internal/pkg/serverutils"
	"swim-coach-be/pkg/authtoken"
)

type IAuthService interface {
	Enabled() bool
	Login(password string) (string, error)
	Verify(token string) (bool, error)
}

type authService struct {
	cfg    config.AuthConfig
	logger logger.ILogger
}

func NewAuthService(cfg config.AuthConfig, logger logger.ILogger) IAuthService {
	return &authService{cfg: cfg, logger: logger}
}

func (s *authService) Enabled() bool {
	return s.cfg.Enabled
}

// Login checks the site password and issues a fresh session token. The bcrypt
// hash takes precedence when configured; the plaintext fallback still uses a
// constant-time comparison.
func (s *authService) Login(password string) (string, error) {
	if s.cfg.SitePasswordHash == "" && s.cfg.SitePassword == "" || s.cfg.SessionSecret == "" {
		return "", serverutils.NewConfigError("Auth is not configured", "set SITE_PASSWORD and AUTH_SESSION_SECRET")
	}

	if !s.passwordMatches(password) {
		s.logger.Warn("auth", "failed login attempt", nil)
		return "", serverutils.NewAuthError("Invalid password")
	}

	token, err := authtoken.Issue(s.cfg.SessionSecret)
	if err != nil {
		return "", serverutils.NewConfigError("Failed to issue session token", "")
	}
	return token, nil
}

func (s *authService) Verify(token string) (bool, error) {
	if s.cfg.SessionSecret == "" {
		return false, serverutils.NewConfigError("Auth is not configured", "set AUTH_SESSION_SECRET")
	}
	return authtoken.Verify(token, s.cfg.SessionSecret), nil
}

func (s *authService) passwordMatches(password string) bool {
	if password == "" {
		return false
	}
	if s.cfg.SitePasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.cfg.SitePasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(s.cfg.SitePassword), []byte(password)) == 1
}
