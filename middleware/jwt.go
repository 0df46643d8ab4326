package middleware

import (
	"fmt"
	"strings"
	"time"

	"aipartners/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// AuthClaims is the decoded token payload. It is trusted for authorization
// without a store round-trip.
type AuthClaims struct {
	ID    uint
	Email string
	Name  string
	Role  string
}

// GenerateJWT generates a session token for the user, valid for 7 days
func GenerateJWT(userID uint, email, name, role string) (string, error) {
	claims := jwt.MapClaims{
		"id":    userID,
		"email": email,
		"name":  name,
		"role":  role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(7 * 24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// JWTMiddleware checks for a valid Bearer token in the request. A missing
// header is 401, a bad or expired token is 403.
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ErrorResponse(c, fiber.StatusUnauthorized, "인증이 필요합니다")
	}

	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})

	if err != nil || !token.Valid {
		return ErrorResponse(c, fiber.StatusForbidden, "유효하지 않은 토큰입니다")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["id"] == nil {
		return ErrorResponse(c, fiber.StatusForbidden, "유효하지 않은 토큰입니다")
	}

	// JWT numbers decode as float64
	userID, ok := claims["id"].(float64)
	if !ok {
		return ErrorResponse(c, fiber.StatusForbidden, "유효하지 않은 토큰입니다")
	}

	user := AuthClaims{ID: uint(userID)}
	user.Email, _ = claims["email"].(string)
	user.Name, _ = claims["name"].(string)
	user.Role, _ = claims["role"].(string)

	c.Locals("user", user)

	return c.Next()
}

// RequireAdmin is the authorization policy for every mutating admin route.
// It must run after JWTMiddleware.
func RequireAdmin(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(AuthClaims)
	if !ok {
		return ErrorResponse(c, fiber.StatusUnauthorized, "인증이 필요합니다")
	}
	if user.Role != "admin" {
		return ErrorResponse(c, fiber.StatusForbidden, "관리자 권한이 필요합니다")
	}
	return c.Next()
}

// ErrorResponse writes the uniform error body used across all handlers
func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"error": message,
	})
}

// MessageResponse writes a plain localized confirmation body
func MessageResponse(c *fiber.Ctx, message string) error {
	return c.JSON(fiber.Map{
		"message": message,
	})
}

// ValidationErrorResponse reports per-field validation failures
func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"error":  "입력값이 올바르지 않습니다",
		"fields": errors,
	})
}
