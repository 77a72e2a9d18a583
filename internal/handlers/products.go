package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/catalog"
)

// GetProducts lists the catalog. Query params: repeated "category" and
// "color" filters plus a "sort" order.
func GetProducts(catalogService *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products"
		defer handlePanic(c, route)

		ctx, cancel := requestContext(c)
		defer cancel()

		filter := catalog.Filter{
			Categories: c.QueryArray("category"),
			Colors:     c.QueryArray("color"),
			Sort:       c.Query("sort"),
		}

		products, err := catalogService.List(ctx, filter)
		if err != nil {
			respondError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, products)
	}
}

func GetProduct(catalogService *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products/:id"
		defer handlePanic(c, route)

		ctx, cancel := requestContext(c)
		defer cancel()

		product, err := catalogService.Get(ctx, c.Param("id"))
		if err != nil {
			respondError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
