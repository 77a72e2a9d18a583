package store

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"storefront-backend/internal/apperr"
	"storefront-backend/internal/models"
)

// In-memory store implementations. They back the service tests and make
// the binary runnable without a database for local experiments.

// MemoryOrderStore keeps orders in a map keyed by order id.
type MemoryOrderStore struct {
	mu     sync.Mutex
	orders map[string]models.Order
}

func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{orders: make(map[string]models.Order)}
}

func (s *MemoryOrderStore) Insert(_ context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.orders[order.OrderID]; exists {
		return apperr.Upstream("order store", errDuplicateOrderID)
	}
	order.EmailKey = strings.ToLower(strings.TrimSpace(order.Email))
	s.orders[order.OrderID] = *order
	return nil
}

var errDuplicateOrderID = errors.New("duplicate order id")

func (s *MemoryOrderStore) FindByID(_ context.Context, orderID string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		return nil, apperr.NotFound("order")
	}
	return &order, nil
}

func (s *MemoryOrderStore) FindByIDAndEmail(_ context.Context, orderID, email string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok || order.EmailKey != strings.ToLower(strings.TrimSpace(email)) {
		return nil, apperr.NotFound("order")
	}
	return &order, nil
}

func (s *MemoryOrderStore) UpdateStatus(_ context.Context, orderID string, status models.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		return apperr.NotFound("order")
	}
	order.Status = status
	s.orders[orderID] = order
	return nil
}

func (s *MemoryOrderStore) AttachReceipt(_ context.Context, orderID, receiptURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		return apperr.NotFound("order")
	}
	order.ReceiptURL = receiptURL
	order.Status = models.StatusPaid
	s.orders[orderID] = order
	return nil
}

func (s *MemoryOrderStore) ListByEmail(_ context.Context, email string) ([]models.Order, error) {
	key := strings.ToLower(strings.TrimSpace(email))
	s.mu.Lock()
	defer s.mu.Unlock()
	var orders []models.Order
	for _, order := range s.orders {
		if order.EmailKey == key {
			orders = append(orders, order)
		}
	}
	sortByDateDesc(orders)
	return orders, nil
}

func (s *MemoryOrderStore) ListAll(_ context.Context) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := make([]models.Order, 0, len(s.orders))
	for _, order := range s.orders {
		orders = append(orders, order)
	}
	sortByDateDesc(orders)
	return orders, nil
}

func sortByDateDesc(orders []models.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Date.After(orders[j].Date)
	})
}

// MemoryCatalogSource serves a fixed set of raw rows.
type MemoryCatalogSource struct {
	rows []Row
}

func NewMemoryCatalogSource(rows []Row) *MemoryCatalogSource {
	return &MemoryCatalogSource{rows: rows}
}

func (s *MemoryCatalogSource) Rows(_ context.Context) ([]Row, error) {
	return s.rows, nil
}

// MemoryUserStore keeps user profiles in a map.
type MemoryUserStore struct {
	mu       sync.Mutex
	profiles map[string]models.UserProfile
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{profiles: make(map[string]models.UserProfile)}
}

func (s *MemoryUserStore) Find(_ context.Context, userID string) (*models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.profiles[userID]
	if !ok {
		return nil, apperr.NotFound("user profile")
	}
	return &profile, nil
}

func (s *MemoryUserStore) Upsert(_ context.Context, profile *models.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.UserID] = *profile
	return nil
}

// MemoryCartStore keeps session carts in a map.
type MemoryCartStore struct {
	mu    sync.Mutex
	carts map[string][]models.CartItem
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[string][]models.CartItem)}
}

func (s *MemoryCartStore) Load(_ context.Context, sessionID string) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.carts[sessionID]
	copied := make([]models.CartItem, len(items))
	copy(copied, items)
	return copied, nil
}

func (s *MemoryCartStore) Save(_ context.Context, sessionID string, items []models.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]models.CartItem, len(items))
	copy(copied, items)
	s.carts[sessionID] = copied
	return nil
}

// MemoryFeedbackStore collects feedback entries in a slice.
type MemoryFeedbackStore struct {
	mu      sync.Mutex
	Entries []models.Feedback
}

func NewMemoryFeedbackStore() *MemoryFeedbackStore {
	return &MemoryFeedbackStore{}
}

func (s *MemoryFeedbackStore) Append(_ context.Context, entry *models.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Entries = append(s.Entries, *entry)
	return nil
}
