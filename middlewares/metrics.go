package middlewares

import (
	"strconv"
	"time"

	"grocery-recipe/infra"

	"github.com/gin-gonic/gin"
)

func Metrics() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		infra.HTTPRequestsInFlight.Inc()
		defer infra.HTTPRequestsInFlight.Dec()

		start := time.Now()
		ctx.Next()

		// ルートのパターンでまとめる。未定義のパスはラベルが増えないよう1つにする
		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}
		infra.HTTPRequestDuration.WithLabelValues(ctx.Request.Method, path).Observe(time.Since(start).Seconds())
		infra.HTTPRequestsTotal.WithLabelValues(ctx.Request.Method, path, strconv.Itoa(ctx.Writer.Status())).Inc()
	}
}
