package token

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lshigami/cybersolutions/config"
)

//go:generate mockgen -source=./generator.go -destination=./mocks/generator.mock.go -package=tokenmocks Generator

const Issuer = "cybersolutions-api"

// Generator issues a signed token for a user.
type Generator interface {
	GenerateToken(userID uint, email string) (string, error)
}

// JWTTokenGen signs HS256 tokens.
type JWTTokenGen struct {
	key     []byte
	issuer  string
	expire  time.Duration
	nowFunc func() time.Time
}

func NewJWTTokenGen(cfg *config.Config) Generator {
	return &JWTTokenGen{
		key:     []byte(cfg.JWT.Secret),
		issuer:  Issuer,
		expire:  cfg.JWT.ExpiresIn,
		nowFunc: time.Now,
	}
}

func (t *JWTTokenGen) GenerateToken(userID uint, email string) (string, error) {
	nowTime := t.nowFunc()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(nowTime),
			ExpiresAt: jwt.NewNumericDate(nowTime.Add(t.expire)),
		},
	})
	return token.SignedString(t.key)
}
