package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/cyclenote/internal/security"
)

const ownerSubject = "owner"

var errInvalidToken = errors.New("invalid auth token")

type authClaims struct {
	jwt.RegisteredClaims
}

type loginInput struct {
	Password string `json:"password" form:"password"`
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	key := clientKey(c)
	now := handler.now()
	if handler.loginThrottle.blocked(key, now) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	input := loginInput{}
	if err := c.BodyParser(&input); err != nil || strings.TrimSpace(input.Password) == "" {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := security.CheckPassword(handler.ownerPasswordHash, input.Password); err != nil {
		handler.loginThrottle.recordFailure(key, now)
		handler.logger.Warn("login rejected")
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	handler.loginThrottle.reset(key)

	token, err := handler.buildToken(now)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  now.Add(handler.tokenTTL),
	})
	return c.JSON(fiber.Map{"token": token, "expires_at": now.Add(handler.tokenTTL).UTC()})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  handler.now().Add(-1 * time.Hour),
	})
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	if err := handler.parseToken(requestToken(c)); err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.Next()
}

func (handler *Handler) buildToken(now time.Time) (string, error) {
	claims := authClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ownerSubject,
			ExpiresAt: jwt.NewNumericDate(now.Add(handler.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}

func (handler *Handler) parseToken(raw string) error {
	if raw == "" {
		return errInvalidToken
	}

	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		return handler.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(handler.now))
	if err != nil || !token.Valid {
		return errInvalidToken
	}
	if claims.Subject != ownerSubject {
		return errInvalidToken
	}
	return nil
}

func requestToken(c *fiber.Ctx) string {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return strings.TrimSpace(c.Cookies(authCookieName))
}
