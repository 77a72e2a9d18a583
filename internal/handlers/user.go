package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/apperr"
	"storefront-backend/internal/middleware"
	"storefront-backend/internal/models"
	"storefront-backend/internal/orders"
	"storefront-backend/internal/store"
)

// GetProfile returns the caller's profile; absent profiles come back as
// zero values so a fresh user sees empty prefill fields, not an error.
func GetProfile(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /user/profile"
		defer handlePanic(c, route)

		identity, ok := middleware.CurrentIdentity(c)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, route, "unauthorized")
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		profile, err := users.Find(ctx, identity.UserID)
		if apperr.IsNotFound(err) {
			profile = &models.UserProfile{UserID: identity.UserID, CartItems: []models.CartItem{}}
		} else if err != nil {
			respondError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, profile)
	}
}

type updateProfileRequest struct {
	FullName      *string            `json:"fullName"`
	Address       *string            `json:"address"`
	ContactNumber *string            `json:"contactNumber"`
	CartItems     *[]models.CartItem `json:"cartItems"`
}

// UpdateProfile upserts the caller's profile. Only provided fields
// change; the cart mirror is overwritten wholesale when present
// (last write wins, no merge).
func UpdateProfile(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /user/profile"
		defer handlePanic(c, route)

		identity, ok := middleware.CurrentIdentity(c)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, route, "unauthorized")
			return
		}

		var req updateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		profile, err := users.Find(ctx, identity.UserID)
		if apperr.IsNotFound(err) {
			profile = &models.UserProfile{UserID: identity.UserID}
		} else if err != nil {
			respondError(c, route, err)
			return
		}

		if req.FullName != nil {
			profile.FullName = *req.FullName
		}
		if req.Address != nil {
			profile.Address = *req.Address
		}
		if req.ContactNumber != nil {
			profile.ContactNumber = *req.ContactNumber
		}
		if req.CartItems != nil {
			profile.CartItems = *req.CartItems
		}

		if err := users.Upsert(ctx, profile); err != nil {
			respondError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, profile)
	}
}

// GetUserOrders lists the caller's orders, most recent first.
func GetUserOrders(orderService *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /user/orders"
		defer handlePanic(c, route)

		identity, ok := middleware.CurrentIdentity(c)
		if !ok || identity.Email == "" {
			respondWithError(c, http.StatusUnauthorized, route, "unauthorized")
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		list, err := orderService.ListForEmail(ctx, identity.Email)
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

// GetUserOrder fetches one of the caller's orders; an id belonging to a
// different email is not found.
func GetUserOrder(orderService *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /user/orders/:id"
		defer handlePanic(c, route)

		identity, ok := middleware.CurrentIdentity(c)
		if !ok || identity.Email == "" {
			respondWithError(c, http.StatusUnauthorized, route, "unauthorized")
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		order, err := orderService.GetForCustomer(ctx, c.Param("id"), identity.Email)
		if err != nil {
			respondError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, order)
	}
}
