package models

import "time"

// Badge is a storefront label attached to a product. A badge of type
// "sale" may carry a discount percentage that lowers the effective price.
type Badge struct {
	Type     string  `json:"type"`
	Label    string  `json:"label"`
	Discount float64 `json:"discount,omitempty"`
}

// Product is the typed view of one catalog row. Products are read-only
// from this service; the catalog is mutated by external tooling.
type Product struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Price           float64   `json:"price"`
	DiscountedPrice float64   `json:"discountedPrice,omitempty"`
	Image           string    `json:"image"`
	Images          []string  `json:"images,omitempty"`
	Category        string    `json:"category"`
	ProductType     string    `json:"productType,omitempty"`
	IsActive        bool      `json:"isActive"`
	Rating          int       `json:"rating"`
	Description     string    `json:"description,omitempty"`
	Badges          []Badge   `json:"badges,omitempty"`
	Color           string    `json:"color,omitempty"`
	Stock           int       `json:"stock"`
	SoldOut         bool      `json:"soldOut"`
	CreatedAt       time.Time `json:"createdAt,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt,omitempty"`
}

// EffectivePrice is the price a cart entry snapshots at add time: the
// discounted price when a sale badge applies, the list price otherwise.
func (p Product) EffectivePrice() float64 {
	if p.DiscountedPrice > 0 && p.DiscountedPrice < p.Price {
		return p.DiscountedPrice
	}
	return p.Price
}
