// Package orders is the durable order ledger: the single authority for
// order status and totals.
package orders

import (
	"context"
	"log"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"storefront-backend/internal/apperr"
	"storefront-backend/internal/models"
	"storefront-backend/internal/pricing"
	"storefront-backend/internal/store"
)

// CustomerInfo carries the billing details collected at checkout.
// Email is optional; orders without one are stored with "N/A" and are
// not reachable through customer-facing lookups.
type CustomerInfo struct {
	Name          string
	Email         string
	ContactNumber string
	Address       string
}

type Service struct {
	store store.OrderStore
}

func NewService(orderStore store.OrderStore) *Service {
	return &Service{store: orderStore}
}

// NewOrderID generates an order identifier. UUID-based rather than
// timestamp-based, so concurrent checkouts cannot collide.
func NewOrderID() string {
	return "ORD-" + uuid.NewString()
}

// Create validates the submission and appends a new Pending order,
// returning its generated id. The caller-supplied total must equal
// subtotal plus shipping fee to the cent.
func (s *Service) Create(ctx context.Context, info CustomerInfo, items []models.OrderItem, paymentMethod string, totalAmount float64) (string, error) {
	if strings.TrimSpace(info.Name) == "" {
		return "", apperr.Validation("customer name is required")
	}
	if strings.TrimSpace(info.ContactNumber) == "" {
		return "", apperr.Validation("contact number is required")
	}
	if strings.TrimSpace(info.Address) == "" {
		return "", apperr.Validation("address is required")
	}
	if strings.TrimSpace(paymentMethod) == "" {
		return "", apperr.Validation("payment method is required")
	}
	if len(items) == 0 {
		return "", apperr.Validation("order must contain at least one item")
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return "", apperr.Validation("quantity must be greater than zero")
		}
	}

	expected := pricing.OrderTotal(items)
	if math.Abs(expected-totalAmount) > 0.005 {
		return "", apperr.Validation("total amount %.2f does not match computed total %.2f", totalAmount, expected)
	}

	email := strings.TrimSpace(info.Email)
	if email == "" {
		email = "N/A"
	}

	order := models.Order{
		OrderID:       NewOrderID(),
		Date:          time.Now(),
		CustomerName:  strings.TrimSpace(info.Name),
		Email:         email,
		ContactNumber: strings.TrimSpace(info.ContactNumber),
		Address:       strings.TrimSpace(info.Address),
		PaymentMethod: paymentMethod,
		Items:         items,
		TotalAmount:   totalAmount,
		Status:        models.StatusPending,
	}

	if err := s.store.Insert(ctx, &order); err != nil {
		return "", err
	}

	log.Println("[ORDER] [INFO] order created:", order.OrderID)
	return order.OrderID, nil
}

// Get fetches one order by id.
func (s *Service) Get(ctx context.Context, orderID string) (*models.Order, error) {
	return s.store.FindByID(ctx, orderID)
}

// GetForCustomer fetches one order by id and email. A mismatched email
// is NotFound even when the id exists, so customers cannot probe
// other people's orders. The email-less placeholder never matches:
// anyone could type "N/A".
func (s *Service) GetForCustomer(ctx context.Context, orderID, email string) (*models.Order, error) {
	if strings.TrimSpace(orderID) == "" || strings.TrimSpace(email) == "" {
		return nil, apperr.Validation("order id and email are required")
	}
	if isPlaceholderEmail(email) {
		return nil, apperr.NotFound("order")
	}
	return s.store.FindByIDAndEmail(ctx, orderID, email)
}

// UpdateStatus overwrites the status field. Any known status may follow
// any other; only unknown values are rejected.
func (s *Service) UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	if !models.ValidStatus(status) {
		return apperr.Validation("unknown status %q", status)
	}
	if err := s.store.UpdateStatus(ctx, orderID, status); err != nil {
		return err
	}
	log.Printf("[ORDER] [INFO] order %s status set to %s", orderID, status)
	return nil
}

// AttachReceipt links a receipt URL to the order and forces status Paid,
// overwriting whatever status the order previously had. Receipt upload
// always means "payment recorded".
func (s *Service) AttachReceipt(ctx context.Context, orderID, receiptURL string) error {
	if strings.TrimSpace(receiptURL) == "" {
		return apperr.Validation("receipt url is required")
	}
	if err := s.store.AttachReceipt(ctx, orderID, receiptURL); err != nil {
		return err
	}
	log.Println("[ORDER] [INFO] receipt attached to order:", orderID)
	return nil
}

// ListForEmail returns a customer's orders, most recent first. The
// email-less placeholder matches nothing.
func (s *Service) ListForEmail(ctx context.Context, email string) ([]models.Order, error) {
	if strings.TrimSpace(email) == "" {
		return nil, apperr.Validation("email is required")
	}
	if isPlaceholderEmail(email) {
		return nil, nil
	}
	return s.store.ListByEmail(ctx, email)
}

func isPlaceholderEmail(email string) bool {
	return strings.EqualFold(strings.TrimSpace(email), "N/A")
}

// ListAll returns every order, most recent first.
func (s *Service) ListAll(ctx context.Context) ([]models.Order, error) {
	return s.store.ListAll(ctx)
}
