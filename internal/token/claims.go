package token

import "github.com/golang-jwt/jwt/v5"

// Claims identifies the learner a bearer token was issued to.
type Claims struct {
	UserID uint   `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
