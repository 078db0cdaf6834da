package controllers

import (
	"net/http"
	"storefront-backend/config"
	"storefront-backend/services"
	"storefront-backend/utils"

	"github.com/gin-gonic/gin"
)

// ExportCSV streams all rows of an entity as CSV, with the column order the
// matching import expects.
func ExportCSV(c *gin.Context) {
	modelType := c.Param("model_type")

	svc := services.NewImportService(config.DB)
	ctx := c.Request.Context()

	c.Header("Content-Type", "text/csv")

	var err error
	switch modelType {
	case "customer":
		c.Header("Content-Disposition", `attachment; filename="customers.csv"`)
		err = svc.ExportCustomers(ctx, c.Writer)
	case "product":
		c.Header("Content-Disposition", `attachment; filename="products.csv"`)
		err = svc.ExportProducts(ctx, c.Writer)
	case "order":
		c.Header("Content-Disposition", `attachment; filename="orders.csv"`)
		err = svc.ExportOrders(ctx, c.Writer)
	default:
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid model type")
		return
	}

	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to export "+modelType+" records")
	}
}
