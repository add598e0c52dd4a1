package handlers

import (
	"fmt"
	"strconv"
	"time"

	"staffdesk/config"
	"staffdesk/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	sessions  *SessionManager
	jwtSecret string
)

// InitHandlers wires the handler package to its session registry and config.
func InitHandlers(m *SessionManager, cfg *config.Config) {
	sessions = m
	jwtSecret = cfg.JWTSecret
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates against the roster and returns a bearer token plus the
// session subject.
func Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := sessions.Login(req.Username, req.Password)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized, err)
	}

	token, err := generateToken(user)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Logout destroys the server-side session. The token becomes useless even
// before it expires, because no controller is registered for it anymore.
func Logout(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int)
	sessions.Logout(userID)
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// generateToken creates a JWT token for the given session subject
func generateToken(user *models.User) (string, error) {
	if jwtSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  strconv.Itoa(user.ID),          // Subject (user ID as string)
		"role": string(user.Role),              // Role (cached in token)
		"iss":  "staffdesk-api",                // Issuer
		"exp":  now.Add(time.Hour * 24).Unix(), // Expiration (24 hours)
		"iat":  now.Unix(),                     // Issued at
		"jti":  uuid.NewString(),               // JWT ID (unique identifier)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}
