package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/models"
	"storefront-backend/internal/orders"
)

// AdminMailer is the slice of the mail surface the back-office uses.
type AdminMailer interface {
	SendInvoice(order *models.Order) error
	SendThankYou(order *models.Order) error
}

// AdminListOrders returns every order for the dashboard, newest first.
func AdminListOrders(orderService *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/orders"
		defer handlePanic(c, route)

		ctx, cancel := requestContext(c)
		defer cancel()

		list, err := orderService.ListAll(ctx)
		if err != nil {
			respondError(c, route, err)
			return
		}
		if list == nil {
			list = []models.Order{}
		}

		c.JSON(http.StatusOK, list)
	}
}

func AdminGetOrder(orderService *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/orders/:id"
		defer handlePanic(c, route)

		ctx, cancel := requestContext(c)
		defer cancel()

		order, err := orderService.Get(ctx, c.Param("id"))
		if err != nil {
			respondError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AdminUpdateStatus overwrites an order's status with any of the known
// values. Transition validity is deliberately not checked.
func AdminUpdateStatus(orderService *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /admin/api/orders/:id/status"
		defer handlePanic(c, route)

		var req updateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "status is required")
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		if err := orderService.UpdateStatus(ctx, c.Param("id"), models.OrderStatus(req.Status)); err != nil {
			respondError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "status updated"})
	}
}

// AdminSendInvoice emails the invoice built from the order's current
// snapshot. Here the send is the requested operation, so a relay
// failure is surfaced instead of swallowed.
func AdminSendInvoice(orderService *orders.Service, mail AdminMailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/orders/:id/send-invoice"
		defer handlePanic(c, route)

		ctx, cancel := requestContext(c)
		defer cancel()

		order, err := orderService.Get(ctx, c.Param("id"))
		if err != nil {
			respondError(c, route, err)
			return
		}

		if err := mail.SendInvoice(order); err != nil {
			respondError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func AdminSendThankYou(orderService *orders.Service, mail AdminMailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/orders/:id/send-thank-you"
		defer handlePanic(c, route)

		ctx, cancel := requestContext(c)
		defer cancel()

		order, err := orderService.Get(ctx, c.Param("id"))
		if err != nil {
			respondError(c, route, err)
			return
		}

		if err := mail.SendThankYou(order); err != nil {
			respondError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
