// Package picking defines the picking order records reviewed by the operator
// and the Source interface used to load them.
package picking

import (
	"context"
	"errors"
	"strconv"
	"strings"
)

// suffixLen is the number of trailing characters of a picking number that
// operators read off the label.
const suffixLen = 4

// ErrNoOrders is returned when a source yields an empty order sequence.
var ErrNoOrders = errors.New("no picking orders")

// Item is a single line of a picking order.
type Item struct {
	ProductName string `yaml:"product_name" json:"product_name"`
	Quantity    string `yaml:"quantity"     json:"quantity"`
}

// Order is one picking order: identifier, customer and line items.
type Order struct {
	PickingNo    string `yaml:"picking_no"    json:"picking_no"`
	CustomerName string `yaml:"customer_name" json:"customer_name"`
	Items        []Item `yaml:"items"         json:"items"`
}

// Source supplies the full, ordered set of orders for a review session.
type Source interface {
	Orders(ctx context.Context) ([]Order, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) ([]Order, error)

// Orders calls f(ctx).
func (f SourceFunc) Orders(ctx context.Context) ([]Order, error) {
	return f(ctx)
}

// SplitPickingNo splits a picking number into the leading part and the
// trailing suffix that is rendered emphasised.
func SplitPickingNo(no string) (prefix, suffix string) {
	runes := []rune(no)
	if len(runes) <= suffixLen {
		return "", no
	}
	cut := len(runes) - suffixLen
	return string(runes[:cut]), string(runes[cut:])
}

// TotalQuantity sums the item quantities of an order. Quantities are free-form
// strings; ok is false when any of them is not a whole number.
func (o Order) TotalQuantity() (total int, ok bool) {
	for _, it := range o.Items {
		n, err := strconv.Atoi(strings.TrimSpace(it.Quantity))
		if err != nil {
			return 0, false
		}
		total += n
	}
	return total, true
}

// Find returns the position of the order with the given picking number.
func Find(orders []Order, pickingNo string) (int, bool) {
	for i, o := range orders {
		if o.PickingNo == pickingNo {
			return i, true
		}
	}
	return -1, false
}
