package service

import (
	"errors"
	"fmt"
	"time"

	"mentorloop/internal/config"
	"mentorloop/internal/dto"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired    = errors.New("token has expired")
	ErrInvalidJWTToken = errors.New("invalid jwt token")
)

// AuthService issues and validates the bearer tokens that protect the
// authoring routes. There are no user accounts; a token simply names
// its holder.
type AuthService interface {
	CreateToken(subject string) (string, error)
	ValidateToken(tokenString string) (*dto.AuthClaims, error)
}

type authServiceImpl struct {
	secret []byte
	ttl    time.Duration
}

// NewAuthService creates an AuthService from the configured secret.
func NewAuthService(cfg config.AuthConfig) (AuthService, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret cannot be empty")
	}
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &authServiceImpl{secret: []byte(cfg.JWTSecret), ttl: ttl}, nil
}

func (s *authServiceImpl) CreateToken(subject string) (string, error) {
	if subject == "" {
		return "", fmt.Errorf("token subject cannot be empty")
	}

	now := time.Now()
	claims := dto.AuthClaims{
		Subject: subject,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *authServiceImpl) ValidateToken(tokenString string) (*dto.AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidJWTToken
	}

	claims, ok := token.Claims.(*dto.AuthClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidJWTToken
	}
	return claims, nil
}
