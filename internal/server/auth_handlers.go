package server

import (
	"fmt"
	"time"

	"friendconnect/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SignupRequest is the legacy signup body. The "username" field carries the
// email address.
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest is the legacy login body.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Signup godoc
// @Summary Create an account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "signup payload"
// @Success 200 {object} map[string]interface{}
// @Failure 411 {object} models.ErrorResponse
// @Router /auth/signup [post]
func (s *Server) Signup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusLengthRequired,
			models.NewValidationError("Invalid inputs"))
	}
	if err := s.validate.Struct(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusLengthRequired,
			models.NewValidationError("Invalid inputs"))
	}

	user, err := s.authService.SignUp(c.UserContext(), req.Name, req.Username, req.Password)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusLengthRequired, err)
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Account successfully created!",
		"user":    user,
		"token":   token,
	})
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "login payload"
// @Success 200 {object} map[string]interface{}
// @Failure 411 {object} models.ErrorResponse
// @Router /auth/login [post]
func (s *Server) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusLengthRequired,
			models.NewValidationError("Incorrect inputs"))
	}
	if err := s.validate.Struct(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusLengthRequired,
			models.NewValidationError("Incorrect inputs"))
	}

	user, err := s.authService.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusLengthRequired, err)
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":  user,
		"token": token,
	})
}

// generateToken creates a JWT for the given user ID. Tokens carry no
// expiration claim: existing clients hold tokens issued without one, and
// verification must keep accepting them.
func (s *Server) generateToken(userID uint) (string, error) {
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"userId": userID,        // Legacy user id claim
		"iss":    tokenIssuer,   // Issuer
		"aud":    tokenAudience, // Audience
		"iat":    now.Unix(),    // Issued at
		"jti":    s.generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// generateJTI creates a unique JWT ID
func (s *Server) generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}
