package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart          = errors.New("cart has no valid items")
	ErrInvalidSession     = errors.New("invalid or expired session")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
)

// MissingProductsError reports cart lines referencing unknown product
// ids. Raised before any write, so a mixed cart has no partial effect.
type MissingProductsError struct {
	IDs []string
}

func (e *MissingProductsError) Error() string {
	return fmt.Sprintf("product(s) not found: %s", strings.Join(e.IDs, ", "))
}

// InsufficientStockError is raised by the fast-path stock check or by
// the conditional decrement inside the checkout transaction. Either
// way the transaction leaves no trace.
type InsufficientStockError struct {
	ProductID   uuid.UUID
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s", e.ProductName)
}
