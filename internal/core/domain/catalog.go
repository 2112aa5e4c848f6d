package domain

import "errors"

var ErrItemNotFound = errors.New("catalog item not found")

// CatalogItem is a purchasable product. IDs are assigned once at creation
// and stay stable for the life of the record.
type CatalogItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageRef    string  `json:"image"`
}
