package server

import (
	"fmt"
	"strconv"
	"time"

	"postboard/internal/models"
	"postboard/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenIssuer   = "postboard-api"
	tokenAudience = "postboard-client"
	tokenTTL      = 24 * time.Hour
)

// Register handles POST /api/register
func (s *Server) Register(c *fiber.Ctx) error {
	var req struct {
		Name         string `json:"name"`
		MobileNumber string `json:"mobile_number"`
		Address      string `json:"address"`
		Password     string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.Register(c.UserContext(), service.RegisterInput{
		Name:         req.Name,
		MobileNumber: req.MobileNumber,
		Address:      req.Address,
		Password:     req.Password,
	})
	if err != nil {
		return respondServiceError(c, err, fiber.StatusBadRequest)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login handles POST /api/login
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		MobileNumber string `json:"mobile_number"`
		Password     string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.Login(c.UserContext(), req.MobileNumber, req.Password)
	if err != nil {
		return respondServiceError(c, err, fiber.StatusUnauthorized)
	}

	token, err := s.generateToken(user.ID, user.MobileNumber)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// generateToken creates a signed JWT embedding the user ID and mobile number
// with a fixed 24-hour expiry.
func (s *Server) generateToken(userID uint, mobileNumber string) (string, error) {
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":    strconv.FormatUint(uint64(userID), 10),
		"mobile": mobileNumber,
		"iss":    tokenIssuer,
		"aud":    tokenAudience,
		"exp":    now.Add(tokenTTL).Unix(),
		"iat":    now.Unix(),
		"nbf":    now.Unix(),
		"jti":    uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}
