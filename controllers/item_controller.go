package controllers

import (
	"net/http"
	"strings"

	"grocery-recipe/constants"
	"grocery-recipe/dto"
	"grocery-recipe/middlewares"
	"grocery-recipe/services"

	"github.com/gin-gonic/gin"
)

type IItemController interface {
	FindByEmail(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type ItemController struct {
	service services.IItemService
}

func NewItemController(service services.IItemService) IItemController {
	return &ItemController{service: service}
}

func (c *ItemController) FindByEmail(ctx *gin.Context) {
	var input dto.MyItemsInput
	if err := ctx.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.Email) == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.MsgEmailRequired, "success": false})
		return
	}

	items, err := c.service.FindByEmail(ctx.Request.Context(), input.Email)
	if err != nil {
		middlewares.LoggerFromContext(ctx).WithError(err).Error("could not list items")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected, "success": false})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": items, "success": true})
}

// Create 入力チェックはモデル側のバリデーションに任せるので、失敗はすべて500
func (c *ItemController) Create(ctx *gin.Context) {
	var input dto.CreateItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		c.fail(ctx, constants.MsgItemAddFailed, err)
		return
	}

	newItem, err := c.service.Create(ctx.Request.Context(), input)
	if err != nil {
		c.fail(ctx, constants.MsgItemAddFailed, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgItemAdded, "success": true, "data": newItem})
}

// Update 存在しないIDでも200でdataはnullになる
func (c *ItemController) Update(ctx *gin.Context) {
	var input dto.UpdateItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		c.fail(ctx, constants.MsgItemUpdateFailed, err)
		return
	}

	updatedItem, err := c.service.Update(ctx.Request.Context(), ctx.Param("id"), input)
	if err != nil {
		c.fail(ctx, constants.MsgItemUpdateFailed, err)
		return
	}

	var data interface{}
	if updatedItem != nil {
		data = updatedItem
	}
	ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgItemUpdated, "success": true, "data": data})
}

func (c *ItemController) Delete(ctx *gin.Context) {
	if err := c.service.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		c.fail(ctx, constants.MsgItemDeleteFailed, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgItemDeleted, "success": true})
}

func (c *ItemController) fail(ctx *gin.Context, message string, err error) {
	middlewares.LoggerFromContext(ctx).WithError(err).Error(message)
	ctx.JSON(http.StatusInternalServerError, gin.H{
		"message": message,
		"success": false,
		"error":   err.Error(),
	})
}
