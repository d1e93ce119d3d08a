package middlewares

import (
	"time"

	"grocery-recipe/constants"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestLogger リクエストIDを採番し、リクエスト単位のロガーをコンテキストに載せる
func RequestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(constants.HeaderRequestID)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		ctx.Header(constants.HeaderRequestID, requestID)

		entry := logrus.WithField("requestId", requestID)
		ctx.Set(constants.ContextLoggerKey, entry)

		start := time.Now()
		ctx.Next()

		fields := logrus.Fields{
			"method":   ctx.Request.Method,
			"path":     ctx.Request.URL.Path,
			"status":   ctx.Writer.Status(),
			"latency":  time.Since(start).String(),
			"clientIp": ctx.ClientIP(),
		}
		if len(ctx.Errors) > 0 {
			entry.WithFields(fields).Warn(ctx.Errors.String())
			return
		}
		entry.WithFields(fields).Info("request completed")
	}
}

// LoggerFromContext リクエスト単位のロガーを返す。RequestLoggerの外では標準のロガー
func LoggerFromContext(ctx *gin.Context) *logrus.Entry {
	if v, ok := ctx.Get(constants.ContextLoggerKey); ok {
		if entry, ok := v.(*logrus.Entry); ok {
			return entry
		}
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
