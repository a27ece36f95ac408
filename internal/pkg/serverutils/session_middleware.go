// FILE: internal/pkg/serverutils/session_middleware.go
package serverutils

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"swim-coach-be/pkg/authtoken"
)

// SessionCookieName is host-locked: the __Host- prefix binds the cookie to
// the exact host, Path=/ and Secure.
const SessionCookieName = "__Host-swimcoach_auth"

// IsSecureRequest reports whether the request arrived over HTTPS, either
// directly or via a forwarding proxy. Localhost is treated as insecure so the
// Secure cookie attribute is omitted in local development.
func IsSecureRequest(ctx *fiber.Ctx) bool {
	if strings.EqualFold(ctx.Get("X-Forwarded-Proto"), "https") {
		return true
	}
	host := strings.ToLower(ctx.Hostname())
	return !strings.Contains(host, "localhost") && !strings.Contains(host, "127.0.0.1")
}

// SessionMiddleware guards routes behind the signed session cookie. When auth
// is disabled the guard is a pass-through.
func SessionMiddleware(secret string, enabled bool) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if !enabled {
			return ctx.Next()
		}
		if secret == "" {
			return NewConfigError("Auth is not configured", "set AUTH_SESSION_SECRET")
		}
		token := ctx.Cookies(SessionCookieName)
		if !authtoken.Verify(token, secret) {
			return NewAuthError("Authentication required")
		}
		return ctx.Next()
	}
}
