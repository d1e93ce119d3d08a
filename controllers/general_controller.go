package controllers

import (
	"context"
	"net/http"
	"time"

	"grocery-recipe/constants"
	"grocery-recipe/middlewares"

	"github.com/gin-gonic/gin"
)

// Pinger repositories.Storeが満たす
type Pinger interface {
	Ping(ctx context.Context) error
}

type IGeneralController interface {
	Home(ctx *gin.Context)
	Sample(ctx *gin.Context)
	Health(ctx *gin.Context)
}

type GeneralController struct {
	store Pinger
}

func NewGeneralController(store Pinger) IGeneralController {
	return &GeneralController{store: store}
}

func (c *GeneralController) Home(ctx *gin.Context) {
	ctx.String(http.StatusOK, constants.MsgGreeting)
}

func (c *GeneralController) Sample(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgSampleWorking, "success": true})
}

func (c *GeneralController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if err := c.store.Ping(pingCtx); err != nil {
		middlewares.LoggerFromContext(ctx).WithError(err).Warn("health check failed")
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
