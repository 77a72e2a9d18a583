// Package catalog is the read-only view over the product dataset.
package catalog

import (
	"context"
	"log"
	"sort"
	"strings"

	"storefront-backend/internal/apperr"
	"storefront-backend/internal/models"
	"storefront-backend/internal/store"
)

const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortNewest    = "newest"
	SortRating    = "rating"
)

// Filter narrows and orders a product listing. Category and color
// matching is case-insensitive; empty slices match everything.
type Filter struct {
	Categories []string
	Colors     []string
	Sort       string
}

type Service struct {
	source store.CatalogSource
}

func NewService(source store.CatalogSource) *Service {
	return &Service{source: source}
}

// List returns the parsed catalog, filtered and sorted. Malformed rows
// are logged and skipped rather than failing the whole listing.
func (s *Service) List(ctx context.Context, filter Filter) ([]models.Product, error) {
	rows, err := s.source.Rows(ctx)
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(rows))
	for _, row := range rows {
		product, err := ParseRow(row)
		if err != nil {
			log.Println("[CATALOG] [WARN] skipping row:", err)
			continue
		}
		if !matchFold(filter.Categories, product.Category) {
			continue
		}
		if !matchFold(filter.Colors, product.Color) {
			continue
		}
		products = append(products, product)
	}

	sortProducts(products, filter.Sort)
	return products, nil
}

// Get returns one product by id.
func (s *Service) Get(ctx context.Context, id string) (models.Product, error) {
	products, err := s.List(ctx, Filter{})
	if err != nil {
		return models.Product{}, err
	}
	for _, product := range products {
		if product.ID == id {
			return product, nil
		}
	}
	return models.Product{}, apperr.NotFound("product")
}

func matchFold(wanted []string, value string) bool {
	if len(wanted) == 0 {
		return true
	}
	for _, candidate := range wanted {
		if strings.EqualFold(strings.TrimSpace(candidate), value) {
			return true
		}
	}
	return false
}

func sortProducts(products []models.Product, order string) {
	switch order {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() < products[j].EffectivePrice()
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() > products[j].EffectivePrice()
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	}
}
