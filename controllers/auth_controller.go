package controllers

import (
	"net/http"

	"grocery-recipe/constants"
	"grocery-recipe/dto"
	"grocery-recipe/middlewares"
	"grocery-recipe/services"

	"github.com/gin-gonic/gin"
)

type IAuthController interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
	Profile(ctx *gin.Context)
	Logout(ctx *gin.Context)
}

type AuthController struct {
	service services.IAuthService
}

func NewAuthController(service services.IAuthService) IAuthController {
	return &AuthController{service: service}
}

func (c *AuthController) Register(ctx *gin.Context) {
	var fields map[string]interface{}
	if err := ctx.ShouldBindJSON(&fields); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrInvalidInput, "success": false})
		return
	}

	user, err := c.service.Register(ctx.Request.Context(), fields)
	if err != nil {
		middlewares.LoggerFromContext(ctx).WithError(err).Error("registration failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"message": constants.MsgRegistrationFailed,
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": constants.MsgRegistrationSuccess,
		"success": true,
		"data":    user,
	})
}

func (c *AuthController) Login(ctx *gin.Context) {
	var input dto.LoginInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrInvalidInput, "success": false})
		return
	}

	email, password := input.Credentials()
	result, err := c.service.Login(ctx.Request.Context(), email, password)
	if err != nil {
		middlewares.LoggerFromContext(ctx).WithError(err).Error("login failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"message": constants.MsgLoginFailed,
			"success": false,
			"error":   err.Error(),
		})
		return
	}
	if len(result.Users) == 0 {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": constants.MsgInvalidCredentials, "success": false})
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Message: constants.MsgLoginSuccess,
		Success: true,
		Data:    result.Users,
		Token:   result.Token,
	})
}

// Profile AuthMiddlewareの後で使う
func (c *AuthController) Profile(ctx *gin.Context) {
	user, exists := ctx.Get(constants.ContextUserKey)
	if !exists {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

func (c *AuthController) Logout(ctx *gin.Context) {
	tokenString := ctx.GetString(constants.ContextTokenKey)
	if tokenString == "" {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	if err := c.service.Logout(ctx.Request.Context(), tokenString); err != nil {
		middlewares.LoggerFromContext(ctx).WithError(err).Error("logout failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": constants.ErrUnexpected, "success": false})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgLogoutSuccess, "success": true})
}
