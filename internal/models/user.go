package models

import "time"

// CartItem is a product snapshot plus a quantity. The price is the
// price at the time the item was added (post-discount), never
// re-fetched live.
type CartItem struct {
	ProductID string  `bson:"productId" json:"productId"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	Image     string  `bson:"image,omitempty" json:"image,omitempty"`
	Quantity  int     `bson:"quantity" json:"quantity"`
}

// UserProfile mirrors checkout prefill data and the current cart for an
// authenticated user. UserID is the external identity provider's id.
type UserProfile struct {
	UserID        string     `bson:"userId" json:"userId"`
	FullName      string     `bson:"fullName" json:"fullName"`
	Address       string     `bson:"address" json:"address"`
	ContactNumber string     `bson:"contactNumber" json:"contactNumber"`
	CartItems     []CartItem `bson:"cartItems" json:"cartItems"`
	UpdatedAt     time.Time  `bson:"updatedAt" json:"updatedAt"`
}
