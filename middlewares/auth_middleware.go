package middlewares

import (
	"net/http"
	"strings"

	"grocery-recipe/constants"
	"grocery-recipe/services"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware(authService services.IAuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(ctx)
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		user, err := authService.GetUserFromToken(ctx.Request.Context(), tokenString)
		if err != nil {
			LoggerFromContext(ctx).WithError(err).Debug("token rejected")
			abortUnauthorized(ctx)
			return
		}

		ctx.Set(constants.ContextUserKey, user)
		ctx.Set(constants.ContextTokenKey, tokenString)

		ctx.Next()
	}
}

func abortUnauthorized(ctx *gin.Context) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"message": constants.ErrUnauthorized,
		"success": false,
	})
}
