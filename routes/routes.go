package routes

import (
	"github.com/nevilhulspas/caltrack/controllers"
	"github.com/nevilhulspas/caltrack/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter(pf *controllers.ParseFoodController, dash *controllers.DashboardController) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.POST("/parse-food", pf.ParseFood)

	r.GET("/dashboard-api", dash.ListLogs)
	r.DELETE("/dashboard-api", dash.DeleteLog)

	return r
}
