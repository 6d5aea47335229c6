package middleware_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"mentorloop/internal/dto"
	"mentorloop/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type mockAuthService struct {
	CreateTokenFunc   func(subject string) (string, error)
	ValidateTokenFunc func(tokenString string) (*dto.AuthClaims, error)
}

func (m *mockAuthService) CreateToken(subject string) (string, error) {
	return m.CreateTokenFunc(subject)
}

func (m *mockAuthService) ValidateToken(tokenString string) (*dto.AuthClaims, error) {
	return m.ValidateTokenFunc(tokenString)
}

func setupProtectedApp(auth *mockAuthService) *fiber.App {
	app := fiber.New()
	app.Get("/protected", middleware.Protected(auth), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(middleware.SubjectKey).(string))
	})
	return app
}

func TestProtected_ValidToken(t *testing.T) {
	auth := &mockAuthService{
		ValidateTokenFunc: func(tokenString string) (*dto.AuthClaims, error) {
			assert.Equal(t, "good-token", tokenString)
			return &dto.AuthClaims{Subject: "teacher"}, nil
		},
	}
	app := setupProtectedApp(auth)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestProtected_MissingHeader(t *testing.T) {
	app := setupProtectedApp(&mockAuthService{})

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtected_WrongScheme(t *testing.T) {
	app := setupProtectedApp(&mockAuthService{})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtected_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		ValidateTokenFunc: func(tokenString string) (*dto.AuthClaims, error) {
			return nil, errors.New("invalid jwt token")
		},
	}
	app := setupProtectedApp(auth)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
