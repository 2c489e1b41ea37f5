package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"icebreaker_server/dto"
	"icebreaker_server/internal/middleware"
	"icebreaker_server/internal/repository"
)

type AuthController struct {
	Users     *repository.UserRepo
	JWTSecret string
}

// Login godoc
// @Summary Admin login
// @Description Exchange email and password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body dto.LoginRequestDTO true "Login Request"
// @Success 200 {object} dto.LoginResponseDTO
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (ctl *AuthController) Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.LoginRequestDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		if body.Email == "" || body.Password == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email and password are required"})
		}

		user, err := ctl.Users.FindByEmail(c.Context(), body.Email)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if user.PasswordHash == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
		}

		claims := middleware.MyClaims{
			UID:  user.UserID,
			Role: user.Role,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   user.UserID,
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			},
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte(ctl.JWTSecret))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to sign token"})
		}

		return c.JSON(dto.LoginResponseDTO{Token: signed, UID: user.UserID, Role: user.Role})
	}
}
