package domain

import "github.com/google/uuid"

// CartLineRequest is the raw client-submitted shape. Quantity arrives
// as a JSON number or string, so it is decoded loosely and coerced
// during normalization.
type CartLineRequest struct {
	ProductID string      `json:"productId"`
	Quantity  interface{} `json:"quantity"`
}

// CartLine is a normalized line item: non-empty product id, positive
// integer quantity, one line per product.
type CartLine struct {
	ProductID string
	Quantity  int
}

type CheckoutResult struct {
	OrderID    uuid.UUID
	TotalCents int64
}
