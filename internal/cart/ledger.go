// Package cart maintains the in-progress item selection for a
// not-yet-submitted order, persisted redundantly so it survives reloads
// even when one storage mechanism is unavailable.
package cart

import (
	"context"
	"log"

	"storefront-backend/internal/models"
	"storefront-backend/internal/pricing"
)

// Store is one persistence backend for a cart snapshot. Backends are
// consulted in priority order on load and all written through on every
// mutation. Write failures are the caller's problem only to log; the
// in-memory ledger stays authoritative for the session.
type Store interface {
	Load(ctx context.Context) ([]models.CartItem, error)
	Save(ctx context.Context, items []models.CartItem) error
}

// RemoteCart is the per-user profile mirror. When authenticated and
// non-empty it takes precedence over local backends on load.
type RemoteCart interface {
	Load(ctx context.Context) ([]models.CartItem, error)
	Save(ctx context.Context, items []models.CartItem) error
}

// Ledger holds the authoritative in-memory cart for one session.
type Ledger struct {
	items  []models.CartItem
	stores []Store
}

// NewLedger builds an empty ledger writing through to stores in the
// given priority order.
func NewLedger(stores ...Store) *Ledger {
	return &Ledger{stores: stores}
}

// Restore loads the cart. The remote profile wins when it holds a
// non-empty cart; otherwise the first local backend yielding a
// non-empty snapshot is used. Backend failures are logged and skipped.
func (l *Ledger) Restore(ctx context.Context, remote RemoteCart) {
	if remote != nil {
		items, err := remote.Load(ctx)
		if err != nil {
			log.Println("[CART] [WARN] remote cart load failed:", err)
		} else if len(items) > 0 {
			l.items = items
			return
		}
	}
	for _, backend := range l.stores {
		items, err := backend.Load(ctx)
		if err != nil {
			log.Println("[CART] [WARN] cart load failed:", err)
			continue
		}
		if len(items) > 0 {
			l.items = items
			return
		}
	}
}

// AddItem inserts the product with quantity 1. When the product is
// already present the ledger is untouched and false is returned
// ("already in bag").
func (l *Ledger) AddItem(ctx context.Context, item models.CartItem) bool {
	for _, existing := range l.items {
		if existing.ProductID == item.ProductID {
			return false
		}
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	l.items = append(l.items, item)
	l.persist(ctx)
	return true
}

// RemoveItem deletes the entry if present; absent ids are a no-op.
func (l *Ledger) RemoveItem(ctx context.Context, productID string) {
	kept := l.items[:0]
	for _, item := range l.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	l.items = kept
	l.persist(ctx)
}

// UpdateQuantity replaces the quantity verbatim. Clamping to ≥1 is the
// caller's responsibility, as it was in the original storefront UI.
func (l *Ledger) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	for i := range l.items {
		if l.items[i].ProductID == productID {
			l.items[i].Quantity = quantity
			break
		}
	}
	l.persist(ctx)
}

// Clear empties the ledger; used after successful order submission.
func (l *Ledger) Clear(ctx context.Context) {
	l.items = nil
	l.persist(ctx)
}

// Items returns a copy of the current entries.
func (l *Ledger) Items() []models.CartItem {
	copied := make([]models.CartItem, len(l.items))
	copy(copied, l.items)
	return copied
}

// Total recomputes Σ(price × quantity) on every read.
func (l *Ledger) Total() float64 {
	var total float64
	for _, item := range l.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// ShippingFee is the fee the current subtotal incurs.
func (l *Ledger) ShippingFee() float64 {
	return pricing.ShippingFee(l.Total())
}

// SyncRemote overwrites the remote profile cart with the local cart,
// last write wins, no merge. Best-effort: failures are only logged.
func (l *Ledger) SyncRemote(ctx context.Context, remote RemoteCart) {
	if remote == nil {
		return
	}
	if err := remote.Save(ctx, l.Items()); err != nil {
		log.Println("[CART] [WARN] remote cart sync failed:", err)
	}
}

func (l *Ledger) persist(ctx context.Context) {
	for _, backend := range l.stores {
		if err := backend.Save(ctx, l.items); err != nil {
			log.Println("[CART] [WARN] cart save failed:", err)
		}
	}
}
