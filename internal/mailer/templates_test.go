package mailer

import (
	"strings"
	"testing"
	"time"

	"storefront-backend/internal/models"
)

func sampleOrder() *models.Order {
	return &models.Order{
		OrderID:       "ORD-abc123",
		CustomerName:  "Maria Santos",
		Email:         "maria@example.com",
		ContactNumber: "09171234567",
		Address:       "123 Mabini St, Manila",
		PaymentMethod: "GCash",
		Items: []models.OrderItem{
			{ID: "p1", Name: "Lavender Candle", Price: 300, Quantity: 2},
			{ID: "p2", Name: "Reed Diffuser", Price: 250, Quantity: 1},
		},
		TotalAmount: 850,
		Date:        time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC),
	}
}

func TestRenderInvoiceFreeShipping(t *testing.T) {
	html, err := renderInvoice(sampleOrder())
	if err != nil {
		t.Fatalf("renderInvoice: %v", err)
	}
	for _, want := range []string{
		"ORD-abc123",
		"Maria Santos",
		"March 14, 2025",
		"Lavender Candle",
		"Subtotal: ₱850.00",
		"Shipping: Free",
		"Total: ₱850.00",
		"₱600.00", // 300 x 2 line total
	} {
		if !strings.Contains(html, want) {
			t.Errorf("invoice missing %q", want)
		}
	}
}

func TestRenderInvoiceChargesShipping(t *testing.T) {
	order := sampleOrder()
	order.Items = []models.OrderItem{{ID: "p1", Name: "Wax Melt", Price: 100, Quantity: 1}}
	order.TotalAmount = 175

	html, err := renderInvoice(order)
	if err != nil {
		t.Fatalf("renderInvoice: %v", err)
	}
	if !strings.Contains(html, "Shipping: ₱75.00") {
		t.Error("expected the flat shipping fee on the invoice")
	}
	if !strings.Contains(html, "Total: ₱175.00") {
		t.Error("expected total including shipping")
	}
}

func TestRenderConfirmation(t *testing.T) {
	html, err := renderConfirmation(sampleOrder())
	if err != nil {
		t.Fatalf("renderConfirmation: %v", err)
	}
	if !strings.Contains(html, "Thank you for your order!") {
		t.Error("missing greeting")
	}
	if !strings.Contains(html, "ORD-abc123") {
		t.Error("missing order id")
	}
	if !strings.Contains(html, "Lavender Candle x 2") {
		t.Error("missing line item")
	}
}

func TestRenderAdminNotification(t *testing.T) {
	html, err := renderAdminNotification(sampleOrder())
	if err != nil {
		t.Fatalf("renderAdminNotification: %v", err)
	}
	for _, want := range []string{"Maria Santos", "09171234567", "GCash", "₱850.00"} {
		if !strings.Contains(html, want) {
			t.Errorf("admin notification missing %q", want)
		}
	}
}

func TestRenderThankYou(t *testing.T) {
	html, err := renderThankYou(sampleOrder(), "Hearth & Home")
	if err != nil {
		t.Fatalf("renderThankYou: %v", err)
	}
	if !strings.Contains(html, "Thank you, Maria Santos!") {
		t.Error("missing personalized greeting")
	}
	if !strings.Contains(html, "Hearth &amp; Home") {
		t.Error("missing store name")
	}
}
