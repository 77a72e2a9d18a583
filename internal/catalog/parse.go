package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"storefront-backend/internal/models"
	"storefront-backend/internal/store"
)

// ParseRow coerces one raw catalog row into a typed product. The source
// delivers every field as a string: prices and stock need numeric
// parsing, flags are spreadsheet booleans, the image field packs a
// gallery behind pipe separators and badges arrive as a JSON array.
func ParseRow(row store.Row) (models.Product, error) {
	id := strings.TrimSpace(row["id"])
	name := strings.TrimSpace(row["name"])
	if id == "" || name == "" {
		return models.Product{}, fmt.Errorf("row missing id or name")
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(row["price"]), 64)
	if err != nil {
		return models.Product{}, fmt.Errorf("product %s: bad price %q", id, row["price"])
	}

	badges, err := parseBadges(row["badges"])
	if err != nil {
		return models.Product{}, fmt.Errorf("product %s: bad badges: %w", id, err)
	}

	rating, _ := strconv.Atoi(strings.TrimSpace(row["rating"]))
	stock, _ := strconv.Atoi(strings.TrimSpace(row["stock"]))

	mainImage, gallery := splitImages(row["image"])
	active := parseSheetBool(row["isActive"], true)

	product := models.Product{
		ID:          id,
		Name:        name,
		Price:       price,
		Image:       mainImage,
		Images:      gallery,
		Category:    strings.TrimSpace(row["category"]),
		ProductType: strings.TrimSpace(row["productType"]),
		IsActive:    active,
		Rating:      rating,
		Description: row["description"],
		Badges:      badges,
		Color:       strings.TrimSpace(row["color"]),
		Stock:       stock,
		SoldOut:     !active || stock == 0 || parseSheetBool(row["soldOut"], false),
		CreatedAt:   parseSheetTime(row["createdAt"]),
		UpdatedAt:   parseSheetTime(row["updatedAt"]),
	}

	if discount := saleDiscount(badges); discount > 0 {
		product.DiscountedPrice = price * (1 - discount/100)
	}

	return product, nil
}

// splitImages treats a pipe-delimited image field as main image plus
// gallery; a plain value is just the main image.
func splitImages(raw string) (string, []string) {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "|") {
		return raw, nil
	}
	parts := strings.Split(raw, "|")
	images := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			images = append(images, trimmed)
		}
	}
	if len(images) == 0 {
		return "", nil
	}
	return images[0], images[1:]
}

func parseBadges(raw string) ([]models.Badge, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var badges []models.Badge
	if err := json.Unmarshal([]byte(raw), &badges); err != nil {
		return nil, err
	}
	return badges, nil
}

func saleDiscount(badges []models.Badge) float64 {
	for _, badge := range badges {
		if badge.Type == "sale" && badge.Discount > 0 {
			return badge.Discount
		}
	}
	return 0
}

// parseSheetBool accepts the spreadsheet spellings of a boolean.
func parseSheetBool(raw string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return fallback
	}
}

func parseSheetTime(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
