// Package pricing holds the money helpers shared across checkout,
// orders and email rendering.
package pricing

import (
	"fmt"

	"storefront-backend/internal/models"
)

// FreeShippingThreshold is the subtotal at and above which shipping is
// free; below it the flat fee applies.
const (
	FreeShippingThreshold = 500.0
	FlatShippingFee       = 75.0
)

// ShippingFee is a pure function of the subtotal.
func ShippingFee(subtotal float64) float64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return FlatShippingFee
}

// ItemsSubtotal sums price × quantity over order line items.
func ItemsSubtotal(items []models.OrderItem) float64 {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	return subtotal
}

// OrderTotal is the subtotal plus its shipping fee.
func OrderTotal(items []models.OrderItem) float64 {
	subtotal := ItemsSubtotal(items)
	return subtotal + ShippingFee(subtotal)
}

// FormatPrice renders an amount for display, e.g. "₱75.00".
func FormatPrice(amount float64) string {
	return fmt.Sprintf("₱%.2f", amount)
}
