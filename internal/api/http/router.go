package httpapi

import "github.com/gin-gonic/gin"

// SetupRouter настраивает маршруты REST API.
func SetupRouter(h *Handler) *gin.Engine {
	r := gin.Default()

	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/damage-classes", h.DamageClasses)
		api.GET("/repair-costs", h.RepairCosts)
		api.POST("/detect", h.Detect)
		api.POST("/compare", h.Compare)
	}

	return r
}
