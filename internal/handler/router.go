package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter wires the handlers into a gin engine.
func NewRouter(contactInfo *ContactInfoHandler, verification *VerificationHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	widgets := r.Group("/widgets/contact-info")
	widgets.GET("/defaults", contactInfo.Defaults)
	widgets.GET("/:id", contactInfo.Get)
	widgets.PUT("/:id", contactInfo.Save)
	widgets.DELETE("/:id", contactInfo.Delete)
	widgets.POST("/:id/render", contactInfo.Render)

	r.GET("/map-link", MapLink)

	modules := r.Group("/modules/verification-tools")
	modules.POST("/activate", verification.Activate)
	modules.GET("/configure", verification.Configure)
	modules.GET("/codes", verification.Codes)
	modules.PUT("/codes", verification.UpdateCodes)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// requestLogger logs method, path, status and duration of every request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.RequestURI()).
			Int("status", c.Writer.Status()).
			Int("bytes", c.Writer.Size()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}
