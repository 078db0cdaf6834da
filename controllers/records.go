package controllers

import (
	"errors"
	"net/http"
	"storefront-backend/config"
	"storefront-backend/models"
	"storefront-backend/repository"
	"storefront-backend/services"
	"storefront-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetCustomers lists all customers.
func GetCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := config.DB.Order("created_at").Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GetProducts lists all products.
func GetProducts(c *gin.Context) {
	var products []models.Product
	if err := config.DB.Order("created_at").Find(&products).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve products")
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetOrders lists all orders with their customer and product.
func GetOrders(c *gin.Context) {
	var orders []models.Order
	if err := config.DB.Preload("Customer").Preload("Product").
		Order("order_date desc").Find(&orders).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve orders")
		return
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateOrder edits an order's quantity, status and total amount. The stock
// of the linked product moves by the quantity delta.
func UpdateOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	var body struct {
		Quantity    int     `json:"quantity" binding:"required"`
		Status      string  `json:"status" binding:"required"`
		TotalAmount float64 `json:"total_amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "quantity, status and total_amount are required")
		return
	}

	svc := services.NewImportService(config.DB)
	order, err := svc.UpdateOrder(c.Request.Context(), orderID, services.OrderUpdate{
		Quantity:    body.Quantity,
		Status:      body.Status,
		TotalAmount: body.TotalAmount,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		case errors.Is(err, repository.ErrNotEnough), errors.Is(err, repository.ErrInvalidInput):
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update order")
		}
		return
	}

	c.JSON(http.StatusOK, order)
}

// DeleteOrder deletes an order, restoring its quantity to the product stock.
func DeleteOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	svc := services.NewImportService(config.DB)
	if err := svc.DeleteOrder(c.Request.Context(), orderID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete order")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
