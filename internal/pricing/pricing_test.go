package pricing

import (
	"testing"

	"storefront-backend/internal/models"
)

func TestShippingFee(t *testing.T) {
	tests := []struct {
		subtotal float64
		want     float64
	}{
		{0, 75},
		{100, 75},
		{499.99, 75},
		{500, 0},
		{500.01, 0},
		{800, 0},
	}
	for _, tc := range tests {
		if got := ShippingFee(tc.subtotal); got != tc.want {
			t.Errorf("ShippingFee(%v) = %v, want %v", tc.subtotal, got, tc.want)
		}
	}
}

func TestItemsSubtotal(t *testing.T) {
	items := []models.OrderItem{
		{ID: "p1", Name: "Candle", Price: 300, Quantity: 1},
		{ID: "p2", Name: "Diffuser", Price: 250, Quantity: 2},
	}
	if got := ItemsSubtotal(items); got != 800 {
		t.Fatalf("expected subtotal 800, got %v", got)
	}
}

func TestOrderTotalAboveThreshold(t *testing.T) {
	items := []models.OrderItem{
		{ID: "p1", Price: 300, Quantity: 1},
		{ID: "p2", Price: 250, Quantity: 2},
	}
	if got := OrderTotal(items); got != 800 {
		t.Fatalf("expected total 800 (free shipping), got %v", got)
	}
}

func TestOrderTotalBelowThreshold(t *testing.T) {
	items := []models.OrderItem{
		{ID: "p1", Price: 100, Quantity: 1},
	}
	if got := OrderTotal(items); got != 175 {
		t.Fatalf("expected total 175 (100 + 75 fee), got %v", got)
	}
}

func TestFormatPrice(t *testing.T) {
	if got := FormatPrice(75); got != "₱75.00" {
		t.Fatalf("expected ₱75.00, got %s", got)
	}
	if got := FormatPrice(1234.5); got != "₱1234.50" {
		t.Fatalf("expected ₱1234.50, got %s", got)
	}
}
