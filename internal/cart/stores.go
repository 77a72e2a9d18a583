package cart

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/apperr"
	"storefront-backend/internal/models"
	"storefront-backend/internal/store"
)

const (
	cartCookieName   = "storefront-cart"
	cartCookieMaxAge = 30 * 24 * 60 * 60
)

// SessionStore adapts the durable session-cart collection to one
// session's Store.
type SessionStore struct {
	Carts     store.CartStore
	SessionID string
}

func (s SessionStore) Load(ctx context.Context) ([]models.CartItem, error) {
	return s.Carts.Load(ctx, s.SessionID)
}

func (s SessionStore) Save(ctx context.Context, items []models.CartItem) error {
	return s.Carts.Save(ctx, s.SessionID, items)
}

// CookieStore keeps the cart snapshot in a browser cookie as
// base64-encoded JSON, the second redundant backend.
type CookieStore struct {
	C *gin.Context
}

func (s CookieStore) Load(_ context.Context) ([]models.CartItem, error) {
	raw, err := s.C.Cookie(cartCookieName)
	if err != nil || raw == "" {
		return nil, nil
	}
	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, err
	}
	var items []models.CartItem
	if err := json.Unmarshal(decoded, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s CookieStore) Save(_ context.Context, items []models.CartItem) error {
	if items == nil {
		items = []models.CartItem{}
	}
	encoded, err := json.Marshal(items)
	if err != nil {
		return err
	}
	value := base64.StdEncoding.EncodeToString(encoded)
	s.C.SetCookie(cartCookieName, value, cartCookieMaxAge, "/", "", false, true)
	return nil
}

// ProfileCart adapts an authenticated user's profile record to a
// RemoteCart. Saving preserves the other profile fields.
type ProfileCart struct {
	Users  store.UserStore
	UserID string
}

func (p ProfileCart) Load(ctx context.Context) ([]models.CartItem, error) {
	profile, err := p.Users.Find(ctx, p.UserID)
	if apperr.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return profile.CartItems, nil
}

func (p ProfileCart) Save(ctx context.Context, items []models.CartItem) error {
	profile, err := p.Users.Find(ctx, p.UserID)
	if apperr.IsNotFound(err) {
		profile = &models.UserProfile{UserID: p.UserID}
	} else if err != nil {
		// Upsert replaces the whole document; writing a fresh profile
		// here would erase the saved name and address over a transient
		// read failure.
		return err
	}
	profile.CartItems = items
	return p.Users.Upsert(ctx, profile)
}
