package domain

// CartLine ties a quantity of one catalog item to one owner. The composite
// key (OwnerID, ItemID) is unique: at most one line per account per item.
// Quantity is at least 1 while the line exists; dropping to zero deletes it.
type CartLine struct {
	OwnerID  string `json:"ownerId"`
	ItemID   int64  `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// CartViewLine is a cart line joined with its catalog item for display.
type CartViewLine struct {
	Item      CatalogItem
	Quantity  int
	LineTotal float64
}

// CartView is the aggregated cart for one owner. Lines referencing items no
// longer in the catalog are filtered out before aggregation.
type CartView struct {
	Lines      []CartViewLine
	GrandTotal float64
}
