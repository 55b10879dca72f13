package services

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	types "github.com/fedaykin-adel/sietch-shop/internal/domain"
)

// NormalizeCart turns the raw client-submitted item list into a
// canonical line-item list. Entries that fail coercion (empty product
// id, unparseable or non-integral quantity, quantity <= 0) are
// dropped rather than rejecting the whole cart. Repeated product ids
// are merged by summing quantities, keeping first-occurrence order,
// so the checkout engine issues exactly one decrement per product.
// Pure function: no store access, no side effects.
func NormalizeCart(raw []types.CartLineRequest) ([]types.CartLine, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyCart
	}

	index := make(map[string]int)
	lines := make([]types.CartLine, 0, len(raw))
	for _, item := range raw {
		productID := strings.TrimSpace(item.ProductID)
		if productID == "" {
			continue
		}
		quantity, ok := coerceQuantity(item.Quantity)
		if !ok || quantity <= 0 {
			continue
		}
		if at, seen := index[productID]; seen {
			lines[at].Quantity += quantity
			continue
		}
		index[productID] = len(lines)
		lines = append(lines, types.CartLine{ProductID: productID, Quantity: quantity})
	}

	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	return lines, nil
}

func coerceQuantity(v interface{}) (int, bool) {
	switch q := v.(type) {
	case int:
		return q, true
	case int64:
		return int(q), true
	case float64:
		if math.IsNaN(q) || math.IsInf(q, 0) || q != math.Trunc(q) {
			return 0, false
		}
		return int(q), true
	case json.Number:
		return parseQuantityString(q.String())
	case string:
		return parseQuantityString(q)
	default:
		return 0, false
	}
}

func parseQuantityString(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	// "3.0" style input still counts as an integral quantity.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}
