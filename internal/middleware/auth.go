package middleware

import (
	"net/http"
	"strings"

	"github.com/Vedant005/SkillBridge-Backend/internal/auth"
	"github.com/Vedant005/SkillBridge-Backend/internal/logger"
	"github.com/Vedant005/SkillBridge-Backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const (
	ContextAccountID   = "accountID"
	ContextAccountKind = "accountKind"

	AccessTokenCookie = "accessToken"
)

// AuthMiddleware verifies the access token taken from the accessToken
// cookie or, failing that, a bearer header. Any authenticated principal
// passes; there is no further role differentiation.
func AuthMiddleware(accessSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractAccessToken(c)
		if tokenStr == "" {
			abortUnauthorized(c, "Unauthorized request")
			return
		}

		claims, err := auth.ParseAccessToken(accessSecret, tokenStr)
		if err != nil {
			abortUnauthorized(c, "Invalid access token")
			return
		}

		c.Set(ContextAccountID, claims.AccountID)
		c.Set(ContextAccountKind, string(claims.Kind))

		ctx := logger.WithAccountID(c.Request.Context(), claims.AccountID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func extractAccessToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, apperrors.ErrorResponse{
		StatusCode: http.StatusUnauthorized,
		Message:    message,
		Success:    false,
	})
}
