package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/dto"
	"videotube/domain/repository"
	"videotube/infrastructure/security"
)

// Auth authenticates the request with the access token, taken from the
// accessToken cookie or a Bearer Authorization header, and stores the
// authenticated user's id under "user_id".
func Auth(tokenManager security.ITokenManager, userRepository repository.IUser) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := extractToken(ctx)
		if tokenString == "" {
			abortUnauthorized(ctx, "Unauthorized request")
			return
		}

		claims, err := tokenManager.VerifyAccessToken(tokenString)
		if err != nil {
			abortUnauthorized(ctx, "Invalid access token")
			return
		}

		id, err := bson.ObjectIDFromHex(claims.ID)
		if err != nil {
			abortUnauthorized(ctx, "Invalid access token")
			return
		}
		if _, err := userRepository.GetByID(ctx.Request.Context(), id); err != nil {
			abortUnauthorized(ctx, "Invalid access token")
			return
		}

		ctx.Set("user_id", claims.ID)
		ctx.Next()
	}
}

func extractToken(ctx *gin.Context) string {
	if cookie, err := ctx.Cookie("accessToken"); err == nil && cookie != "" {
		return cookie
	}
	authorization := ctx.Request.Header.Get("Authorization")
	if after, ok := strings.CutPrefix(authorization, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return ""
}

func abortUnauthorized(ctx *gin.Context, message string) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, message, nil))
}
