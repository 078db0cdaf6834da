package routes

import (
	"storefront-backend/config"
	"storefront-backend/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	api := r.Group("/api")
	{
		// Import/export routes
		api.POST("/import", controllers.ImportCSV)
		api.GET("/export/:model_type", controllers.ExportCSV)
		api.GET("/error-logs/:filename", controllers.DownloadErrorLog)

		// Record routes
		api.GET("/customers", controllers.GetCustomers)
		api.GET("/products", controllers.GetProducts)

		orders := api.Group("/orders")
		{
			orders.GET("", controllers.GetOrders)
			orders.PUT("/:id", controllers.UpdateOrder)
			orders.DELETE("/:id", controllers.DeleteOrder)
		}
	}

	return r
}
