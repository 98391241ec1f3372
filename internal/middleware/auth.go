package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/cybersolutions/internal/dto"
	"github.com/lshigami/cybersolutions/internal/token"
	"github.com/rs/zerolog/log"
)

const (
	ContextUserIDKey = "userID"
	ContextEmailKey  = "userEmail"

	AdminKeyHeader = "X-Admin-Key"
)

// RequireAuth rejects requests without a valid "Authorization: Bearer <jwt>"
// header and stores the token's user id in the gin context.
func RequireAuth(verifier token.Verifier) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(raw) == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Access denied. No token provided"})
			return
		}

		claims, err := verifier.Verify(strings.TrimSpace(raw))
		if err != nil {
			log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("RequireAuth: Rejected bearer token")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
			return
		}

		ctx.Set(ContextUserIDKey, claims.UserID)
		ctx.Set(ContextEmailKey, claims.Email)
		ctx.Next()
	}
}

// UserID returns the authenticated user id set by RequireAuth.
func UserID(ctx *gin.Context) (uint, bool) {
	v, ok := ctx.Get(ContextUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}

// RequireAdminKey guards admin routes with a shared key. An empty key
// disables the routes entirely.
func RequireAdminKey(key string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		provided := ctx.GetHeader(AdminKeyHeader)
		if key == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Admin access denied"})
			return
		}
		ctx.Next()
	}
}
