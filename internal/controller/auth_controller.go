// FILE: internal/controller/auth_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"swim-coach-be/internal/dto"
	"swim-coach-be/internal/pkg/serverutils"
	"swim-coach-be/internal/service"
	"swim-coach-be/pkg/authtoken"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Status(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Get("/status", c.Status)
	h.Post("/login", c.Login)
	h.Post("/logout", c.Logout)
}

func (c *authController) Status(ctx *fiber.Ctx) error {
	if !c.service.Enabled() {
		return ctx.JSON(dto.AuthStatusResponse{Authenticated: true, AuthEnabled: false})
	}

	authenticated, err := c.service.Verify(ctx.Cookies(serverutils.SessionCookieName))
	if err != nil {
		return err
	}
	return ctx.JSON(dto.AuthStatusResponse{Authenticated: authenticated, AuthEnabled: true})
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	if !c.service.Enabled() {
		return ctx.JSON(fiber.Map{"success": true, "authEnabled": false, "bypassed": true})
	}

	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewInputError("Invalid JSON body")
	}

	token, err := c.service.Login(req.Password)
	if err != nil {
		return err
	}

	ctx.Cookie(c.sessionCookie(ctx, token, authtoken.SessionTTL))
	return ctx.JSON(fiber.Map{"success": true, "authEnabled": true})
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	if !c.service.Enabled() {
		return ctx.JSON(fiber.Map{"success": true, "authEnabled": false, "bypassed": true})
	}

	// Clearing is unconditional; there is no server-side session to revoke.
	ctx.Cookie(c.sessionCookie(ctx, "", -time.Hour))
	return ctx.JSON(fiber.Map{"success": true, "authEnabled": true})
}

func (c *authController) sessionCookie(ctx *fiber.Ctx, token string, ttl time.Duration) *fiber.Cookie {
	// Expires is set alongside MaxAge: a negative TTL serializes as a past
	// Expires, which is what actually deletes the cookie.
	return &fiber.Cookie{
		Name:     serverutils.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   serverutils.IsSecureRequest(ctx),
	}
}
