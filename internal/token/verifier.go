package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lshigami/cybersolutions/config"
)

var ErrInvalidToken = errors.New("invalid token")

type Verifier interface {
	Verify(token string) (*Claims, error)
}

type JWTTokenVerifier struct {
	key     []byte
	nowFunc func() time.Time
}

func NewJWTTokenVerifier(cfg *config.Config) Verifier {
	return &JWTTokenVerifier{
		key:     []byte(cfg.JWT.Secret),
		nowFunc: time.Now,
	}
}

func (j *JWTTokenVerifier) Verify(token string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(token, &Claims{},
		func(token *jwt.Token) (interface{}, error) {
			return j.key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(j.nowFunc),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	clm, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, ErrInvalidToken
	}
	if clm.UserID == 0 {
		return nil, fmt.Errorf("%w: missing user id", ErrInvalidToken)
	}
	return clm, nil
}
