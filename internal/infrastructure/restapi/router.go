package restapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// SetupRouter wires the proxy routes. allowOrigins empty means any origin.
func SetupRouter(h *Handler, logger *zap.Logger, allowOrigins []string) *gin.Engine {
	router := gin.New()

	corsConfig := cors.DefaultConfig()
	if len(allowOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = allowOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))
	router.Use(ZapLoggerMiddleware(logger))
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/endpoints", h.ListEndpoints)
		api.POST("/summary", h.Summarize)

		v1 := api.Group("/v1")
		v1.GET("/:group", h.CallEndpoint)
		v1.GET("/:group/:op", h.CallEndpoint)
		v1.POST("/:group/:op", h.CallEndpoint)
	}

	return router
}
