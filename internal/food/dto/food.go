package dto

// StockUpdate is the narrow update path: only count and quantity are
// mutable. Pointer fields distinguish "absent" from "zero"; absent fields
// are left untouched in the store.
type StockUpdate struct {
	Count    *int64 `json:"count"`
	Quantity *int   `json:"quantity"`
}

// DetailsUpdate is the full metadata update path. Same presence semantics as
// StockUpdate: only fields present in the request body are written.
type DetailsUpdate struct {
	Name        *string  `json:"name"`
	Image       *string  `json:"image"`
	Category    *string  `json:"category"`
	Quantity    *int     `json:"quantity"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Origin      *string  `json:"origin"`
}
