package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Unix(1688443200, 0)
}

func TestJWTTokenGen_GenerateToken(t *testing.T) {
	gen := &JWTTokenGen{
		key:     []byte("key"),
		issuer:  "test",
		expire:  15 * time.Minute,
		nowFunc: fixedNow,
	}

	tok, err := gen.GenerateToken(42, "foo@example.com")
	require.NoError(t, err)

	claims := &Claims{}
	_, _, err = jwt.NewParser().ParseUnverified(tok, claims)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "foo@example.com", claims.Email)
	assert.Equal(t, "test", claims.Issuer)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, fixedNow().Add(15*time.Minute).Unix(), claims.ExpiresAt.Unix())
}

func TestJWTTokenVerifier_Verify(t *testing.T) {
	gen := &JWTTokenGen{key: []byte("key"), issuer: Issuer, expire: 15 * time.Minute, nowFunc: fixedNow}
	valid, err := gen.GenerateToken(7, "bar@example.com")
	require.NoError(t, err)

	otherKey := &JWTTokenGen{key: []byte("other"), issuer: Issuer, expire: 15 * time.Minute, nowFunc: fixedNow}
	forged, err := otherKey.GenerateToken(7, "bar@example.com")
	require.NoError(t, err)

	noUser := &JWTTokenGen{key: []byte("key"), issuer: Issuer, expire: 15 * time.Minute, nowFunc: fixedNow}
	anonymous, err := noUser.GenerateToken(0, "")
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 7}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	testCases := []struct {
		name     string
		token    string
		now      time.Time
		wantUser uint
		wantErr  bool
	}{
		{name: "valid token", token: valid, now: fixedNow().Add(time.Minute), wantUser: 7},
		{name: "expired", token: valid, now: fixedNow().Add(time.Hour), wantErr: true},
		{name: "wrong key", token: forged, now: fixedNow(), wantErr: true},
		{name: "no user id", token: anonymous, now: fixedNow(), wantErr: true},
		{name: "alg none", token: unsigned, now: fixedNow(), wantErr: true},
		{name: "garbage", token: "not-a-jwt", now: fixedNow(), wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := &JWTTokenVerifier{key: []byte("key"), nowFunc: func() time.Time { return tc.now }}
			claims, err := v.Verify(tc.token)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantUser, claims.UserID)
		})
	}
}
