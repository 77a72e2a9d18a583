package cart

import (
	"context"
	"errors"
	"testing"

	"storefront-backend/internal/apperr"
	"storefront-backend/internal/models"
	"storefront-backend/internal/store"
)

// flakyUserStore wraps a real store and fails reads on demand while
// leaving writes working.
type flakyUserStore struct {
	store.UserStore
	findErr error
	upserts int
}

func (s *flakyUserStore) Find(ctx context.Context, userID string) (*models.UserProfile, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.UserStore.Find(ctx, userID)
}

func (s *flakyUserStore) Upsert(ctx context.Context, profile *models.UserProfile) error {
	s.upserts++
	return s.UserStore.Upsert(ctx, profile)
}

func TestProfileCartSavePreservesProfileFields(t *testing.T) {
	ctx := context.Background()
	users := store.NewMemoryUserStore()
	if err := users.Upsert(ctx, &models.UserProfile{
		UserID:        "user_1",
		FullName:      "Maria Santos",
		Address:       "123 Mabini St",
		ContactNumber: "09171234567",
	}); err != nil {
		t.Fatalf("seeding profile: %v", err)
	}

	remote := ProfileCart{Users: users, UserID: "user_1"}
	items := []models.CartItem{{ProductID: "p1", Name: "Candle", Price: 300, Quantity: 1}}
	if err := remote.Save(ctx, items); err != nil {
		t.Fatalf("Save: %v", err)
	}

	profile, err := users.Find(ctx, "user_1")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if profile.FullName != "Maria Santos" || profile.Address != "123 Mabini St" {
		t.Fatalf("profile fields lost: %+v", profile)
	}
	if len(profile.CartItems) != 1 || profile.CartItems[0].ProductID != "p1" {
		t.Fatalf("cart not mirrored: %+v", profile.CartItems)
	}
}

func TestProfileCartSaveCreatesMissingProfile(t *testing.T) {
	ctx := context.Background()
	users := store.NewMemoryUserStore()

	remote := ProfileCart{Users: users, UserID: "user_new"}
	items := []models.CartItem{{ProductID: "p1", Name: "Candle", Price: 300, Quantity: 1}}
	if err := remote.Save(ctx, items); err != nil {
		t.Fatalf("Save: %v", err)
	}

	profile, err := users.Find(ctx, "user_new")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(profile.CartItems) != 1 {
		t.Fatalf("cart not mirrored: %+v", profile.CartItems)
	}
}

func TestProfileCartSaveRefusesToClobberOnReadFailure(t *testing.T) {
	ctx := context.Background()
	users := store.NewMemoryUserStore()
	if err := users.Upsert(ctx, &models.UserProfile{
		UserID:   "user_1",
		FullName: "Maria Santos",
		Address:  "123 Mabini St",
	}); err != nil {
		t.Fatalf("seeding profile: %v", err)
	}

	flaky := &flakyUserStore{
		UserStore: users,
		findErr:   apperr.Upstream("user store", errors.New("read timeout")),
	}
	remote := ProfileCart{Users: flaky, UserID: "user_1"}

	items := []models.CartItem{{ProductID: "p1", Name: "Candle", Price: 300, Quantity: 1}}
	if err := remote.Save(ctx, items); err == nil {
		t.Fatal("expected the read failure to be surfaced")
	}
	if flaky.upserts != 0 {
		t.Fatalf("no write should happen after a failed read, got %d", flaky.upserts)
	}

	profile, err := users.Find(ctx, "user_1")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if profile.FullName != "Maria Santos" || profile.Address != "123 Mabini St" {
		t.Fatalf("profile fields lost: %+v", profile)
	}
}

func TestProfileCartLoadMissingProfile(t *testing.T) {
	remote := ProfileCart{Users: store.NewMemoryUserStore(), UserID: "user_absent"}
	items, err := remote.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if items != nil {
		t.Fatalf("expected empty cart for absent profile, got %+v", items)
	}
}
