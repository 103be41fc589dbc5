package middleware

import (
	"errors"
	"net/http"
	"strings"

	"vaxbook/config"
	"vaxbook/database"
	"vaxbook/database/repository"
	"vaxbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// tokenFromRequest reads the token from the custom auth header, falling back
// to a bearer Authorization header.
func tokenFromRequest(c *gin.Context) string {
	if token := strings.TrimSpace(c.GetHeader(config.DefaultAuthHeader)); token != "" {
		return token
	}
	if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return ""
}

// JWTAuthMiddleware requires a valid token for an existing user and stores
// "userID" and "claims" on the context.
func JWTAuthMiddleware(userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			utils.JSONError(c, http.StatusUnauthorized, "No token, authorization denied", "")
			return
		}

		claims, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "Token is not valid", err.Error())
			return
		}

		if _, err := userRepo.GetByID(c.Request.Context(), claims.UserID); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				utils.JSONError(c, http.StatusUnauthorized, "Token is not valid", "user no longer exists")
				return
			}
			utils.GetLogger().Error("Auth lookup failed", zap.String("userId", claims.UserID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Server error", "")
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("claims", claims)
		c.Next()
	}
}
