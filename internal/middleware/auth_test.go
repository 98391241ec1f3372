package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/cybersolutions/config"
	"github.com/lshigami/cybersolutions/internal/dto"
	"github.com/lshigami/cybersolutions/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequireAuth(t *testing.T) {
	cfg := &config.Config{JWT: config.JWT{Secret: "middleware-secret", ExpiresIn: time.Hour}}
	valid, err := token.NewJWTTokenGen(cfg).GenerateToken(21, "ana@example.com")
	require.NoError(t, err)
	foreign, err := token.NewJWTTokenGen(&config.Config{JWT: config.JWT{Secret: "other", ExpiresIn: time.Hour}}).GenerateToken(21, "ana@example.com")
	require.NoError(t, err)

	testCases := []struct {
		name       string
		header     string
		wantCode   int
		wantMsg    string
		wantUserID uint
	}{
		{name: "valid token", header: "Bearer " + valid, wantCode: http.StatusOK, wantUserID: 21},
		{name: "missing header", header: "", wantCode: http.StatusUnauthorized, wantMsg: "Access denied. No token provided"},
		{name: "not a bearer header", header: "Basic abc", wantCode: http.StatusUnauthorized, wantMsg: "Access denied. No token provided"},
		{name: "empty bearer", header: "Bearer ", wantCode: http.StatusUnauthorized, wantMsg: "Access denied. No token provided"},
		{name: "signed with another key", header: "Bearer " + foreign, wantCode: http.StatusUnauthorized, wantMsg: "Invalid or expired token"},
		{name: "garbage", header: "Bearer not.a.jwt", wantCode: http.StatusUnauthorized, wantMsg: "Invalid or expired token"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			var gotID uint
			r.GET("/private", RequireAuth(token.NewJWTTokenVerifier(cfg)), func(ctx *gin.Context) {
				gotID, _ = UserID(ctx)
				ctx.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			recorder := httptest.NewRecorder()
			r.ServeHTTP(recorder, req)

			assert.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantMsg != "" {
				var body dto.ErrorResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
				assert.False(t, body.Success)
				assert.Equal(t, tc.wantMsg, body.Message)
			}
			assert.Equal(t, tc.wantUserID, gotID)
		})
	}
}

func TestRequireAdminKey(t *testing.T) {
	testCases := []struct {
		name     string
		key      string
		header   string
		wantCode int
	}{
		{name: "matching key", key: "s3cret", header: "s3cret", wantCode: http.StatusNoContent},
		{name: "wrong key", key: "s3cret", header: "guess", wantCode: http.StatusForbidden},
		{name: "missing header", key: "s3cret", wantCode: http.StatusForbidden},
		{name: "admin disabled", key: "", header: "", wantCode: http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.POST("/admin", RequireAdminKey(tc.key), func(ctx *gin.Context) {
				ctx.Status(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodPost, "/admin", nil)
			if tc.header != "" {
				req.Header.Set(AdminKeyHeader, tc.header)
			}
			recorder := httptest.NewRecorder()
			r.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
		})
	}
}

func TestUserID_Missing(t *testing.T) {
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := UserID(ctx)
	assert.False(t, ok)

	ctx.Set(ContextUserIDKey, "7")
	_, ok = UserID(ctx)
	assert.False(t, ok)
}
