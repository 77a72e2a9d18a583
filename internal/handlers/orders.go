package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/orders"
)

// GetOrderStatus is the customer-facing lookup: both the order id and
// the email must match (email case-insensitively) or the order is
// reported as not found.
func GetOrderStatus(orderService *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders/status"
		defer handlePanic(c, route)

		orderID := c.Query("orderId")
		email := c.Query("email")
		if orderID == "" || email == "" {
			respondWithError(c, http.StatusBadRequest, route, "orderId and email are required")
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		order, err := orderService.GetForCustomer(ctx, orderID, email)
		if err != nil {
			respondError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"orderId":     order.OrderID,
			"status":      order.Status,
			"date":        order.Date,
			"totalAmount": order.TotalAmount,
			"items":       order.Items,
			"receiptUrl":  order.ReceiptURL,
		})
	}
}
