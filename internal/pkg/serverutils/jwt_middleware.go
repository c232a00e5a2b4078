package serverutils

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	LocalUserID = "user_id"
	LocalRole   = "role"

	TokenTTL = 24 * time.Hour
)

func IssueToken(secret string, userId uint, role string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userId,
		"role":    role,
		"exp":     time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// NewJwtMiddleware verifies the bearer token and stores user_id and role in
// the request locals.
func NewJwtMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenStr == "" {
			return Fail(ctx, fiber.StatusUnauthorized, "Missing token")
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			return Fail(ctx, fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return Fail(ctx, fiber.StatusUnauthorized, "Invalid claims")
		}
		// Numeric claims decode as float64.
		id, ok := claims["user_id"].(float64)
		if !ok {
			return Fail(ctx, fiber.StatusUnauthorized, "Invalid claims")
		}
		role, _ := claims["role"].(string)

		ctx.Locals(LocalUserID, uint(id))
		ctx.Locals(LocalRole, role)
		return ctx.Next()
	}
}

// RequireRole must run after the JWT middleware.
func RequireRole(role string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if r, _ := ctx.Locals(LocalRole).(string); r != role {
			return Fail(ctx, fiber.StatusForbidden, "Forbidden")
		}
		return ctx.Next()
	}
}
