package controllers

import (
	"net/http"
	"strings"

	"grocery-recipe/constants"
	"grocery-recipe/dto"
	"grocery-recipe/middlewares"
	"grocery-recipe/services"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type IRecipeController interface {
	GetRecipe(ctx *gin.Context)
}

type RecipeController struct {
	service services.IRecipeService
}

func NewRecipeController(service services.IRecipeService) IRecipeController {
	return &RecipeController{service: service}
}

func (c *RecipeController) GetRecipe(ctx *gin.Context) {
	var input dto.RecipeInput
	if err := ctx.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.UserEmail) == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.MsgMissingUserEmail, "success": false})
		return
	}

	recipe, err := c.service.Suggest(ctx.Request.Context(), input.UserEmail, input.FoodType)
	if err != nil {
		if errors.Is(err, services.ErrNoItems) {
			ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgNoItemsFound, "success": true})
			return
		}
		middlewares.LoggerFromContext(ctx).WithError(err).Error("recipe generation failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrServer, "success": false})
		return
	}

	ctx.JSON(http.StatusOK, recipe)
}
