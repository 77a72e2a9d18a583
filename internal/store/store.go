// Package store abstracts the row-oriented backing stores behind keyed
// interfaces so services never depend on a concrete database and
// lookups never degrade into full-table scans.
package store

import (
	"context"

	"storefront-backend/internal/models"
)

// Row is one raw catalog record as the catalog source delivers it:
// every field a string, numeric and structured fields still unparsed.
type Row map[string]string

// CatalogSource is the read interface over the product dataset.
type CatalogSource interface {
	Rows(ctx context.Context) ([]Row, error)
}

// OrderStore is the durable order ledger. Implementations return
// apperr.NotFound when no row matches and apperr.Upstream on backend
// failures. Email matching is case-insensitive.
type OrderStore interface {
	Insert(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, orderID string) (*models.Order, error)
	FindByIDAndEmail(ctx context.Context, orderID, email string) (*models.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) error
	AttachReceipt(ctx context.Context, orderID, receiptURL string) error
	ListByEmail(ctx context.Context, email string) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
}

// UserStore keeps per-user checkout prefill data and the mirrored cart.
type UserStore interface {
	Find(ctx context.Context, userID string) (*models.UserProfile, error)
	Upsert(ctx context.Context, profile *models.UserProfile) error
}

// CartStore persists anonymous session carts keyed by a session id.
type CartStore interface {
	Load(ctx context.Context, sessionID string) ([]models.CartItem, error)
	Save(ctx context.Context, sessionID string, items []models.CartItem) error
}

// FeedbackStore appends to the feedback log. Entries are never read
// back by this service.
type FeedbackStore interface {
	Append(ctx context.Context, entry *models.Feedback) error
}
