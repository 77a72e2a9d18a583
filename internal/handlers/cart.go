package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"storefront-backend/internal/cart"
	"storefront-backend/internal/middleware"
	"storefront-backend/internal/models"
	"storefront-backend/internal/store"
)

const sessionCookieName = "storefront-session"
const sessionCookieMaxAge = 30 * 24 * 60 * 60

// CartDeps bundles the collaborators every cart endpoint needs.
type CartDeps struct {
	Carts     store.CartStore
	Users     store.UserStore
	JWTSecret string
}

// sessionID returns the caller's cart session id, minting one on first
// contact.
func sessionID(c *gin.Context) string {
	if id, err := c.Cookie(sessionCookieName); err == nil && id != "" {
		return id
	}
	id := uuid.NewString()
	c.SetCookie(sessionCookieName, id, sessionCookieMaxAge, "/", "", false, true)
	return id
}

// buildLedger restores the caller's cart: the authenticated profile
// mirror wins when non-empty, then the durable session cart, then the
// cookie snapshot.
func (d CartDeps) buildLedger(ctx context.Context, c *gin.Context) (*cart.Ledger, cart.RemoteCart) {
	ledger := cart.NewLedger(
		cart.SessionStore{Carts: d.Carts, SessionID: sessionID(c)},
		cart.CookieStore{C: c},
	)

	var remote cart.RemoteCart
	if identity, ok := middleware.OptionalIdentity(c, d.JWTSecret); ok {
		remote = cart.ProfileCart{Users: d.Users, UserID: identity.UserID}
	}

	ledger.Restore(ctx, remote)
	return ledger, remote
}

func cartResponse(ledger *cart.Ledger) gin.H {
	total := ledger.Total()
	return gin.H{
		"items":       ledger.Items(),
		"total":       total,
		"shippingFee": ledger.ShippingFee(),
	}
}

func GetCart(deps CartDeps) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /cart"
		defer handlePanic(c, route)

		ctx, cancel := requestContext(c)
		defer cancel()

		ledger, _ := deps.buildLedger(ctx, c)
		c.JSON(http.StatusOK, cartResponse(ledger))
	}
}

type addCartItemRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
}

func AddCartItem(deps CartDeps) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /cart/items"
		defer handlePanic(c, route)

		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		ledger, remote := deps.buildLedger(ctx, c)
		added := ledger.AddItem(ctx, models.CartItem{
			ProductID: req.ProductID,
			Name:      req.Name,
			Price:     req.Price,
			Image:     req.Image,
			Quantity:  1,
		})
		if !added {
			resp := cartResponse(ledger)
			resp["message"] = "already in bag"
			c.JSON(http.StatusOK, resp)
			return
		}

		ledger.SyncRemote(ctx, remote)
		c.JSON(http.StatusCreated, cartResponse(ledger))
	}
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

func UpdateCartItem(deps CartDeps) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /cart/items/:productId"
		defer handlePanic(c, route)

		var req updateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}
		if req.Quantity < 1 {
			// the ledger stores quantities verbatim; clamping happens here
			req.Quantity = 1
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		ledger, remote := deps.buildLedger(ctx, c)
		ledger.UpdateQuantity(ctx, c.Param("productId"), req.Quantity)
		ledger.SyncRemote(ctx, remote)
		c.JSON(http.StatusOK, cartResponse(ledger))
	}
}

func RemoveCartItem(deps CartDeps) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /cart/items/:productId"
		defer handlePanic(c, route)

		ctx, cancel := requestContext(c)
		defer cancel()

		ledger, remote := deps.buildLedger(ctx, c)
		ledger.RemoveItem(ctx, c.Param("productId"))
		ledger.SyncRemote(ctx, remote)
		c.JSON(http.StatusOK, cartResponse(ledger))
	}
}

func ClearCart(deps CartDeps) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /cart"
		defer handlePanic(c, route)

		ctx, cancel := requestContext(c)
		defer cancel()

		ledger, remote := deps.buildLedger(ctx, c)
		ledger.Clear(ctx)
		ledger.SyncRemote(ctx, remote)
		c.JSON(http.StatusOK, cartResponse(ledger))
	}
}
