package middleware

import (
	"net/http"
	"strings"

	userRepo "routinely/database/repository/user"
	"routinely/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// JWTAuthMiddleware authenticates requests using a Bearer token. The token's
// hash must match the cached hash for the user, falling back to the stored
// hash in the database when the cache entry has expired.
func JWTAuthMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or malformed Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			logger.Warn("Invalid auth token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		tokenHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + userID
		authClient := utils.GetAuthCacheClient()

		cachedHash, err := authClient.Get(c.Request.Context(), cacheKey).Result()
		if err == nil {
			if cachedHash != tokenHash {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session revoked"})
				return
			}
			authClient.Expire(c.Request.Context(), cacheKey, utils.AuthCacheTTL)
			c.Set("userID", userID)
			c.Next()
			return
		}

		// Cache miss: verify against the stored hash and re-prime the cache.
		usr, err := repo.GetByIDWithProjection(userID, bson.M{"tokenHash": 1})
		if err != nil || usr == nil {
			logger.Warn("Auth lookup failed", zap.String("userID", userID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		if usr.TokenHash == "" || usr.TokenHash != tokenHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session revoked"})
			return
		}
		if err := authClient.Set(c.Request.Context(), cacheKey, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
			logger.Warn("Failed to prime auth cache", zap.String("userID", userID), zap.Error(err))
		}

		c.Set("userID", userID)
		c.Next()
	}
}
