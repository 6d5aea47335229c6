package dto

import "github.com/golang-jwt/jwt/v5"

// AuthClaims are the claims carried by an authoring token.
type AuthClaims struct {
	Subject string `json:"sub_name"`
	jwt.RegisteredClaims
}
