package model

import (
	"fmt"
	"strings"
)

// VariantKey identifies a unique cart slot: the same product in the
// same colour and size always lands in the same slot.
type VariantKey struct {
	ProductID string
	Color     string
	Size      string
}

// String renders the key in its wire form, e.g. "P001|Beige|M".
func (k VariantKey) String() string {
	return fmt.Sprintf("%s|%s|%s", k.ProductID, k.Color, k.Size)
}

// ParseVariantKey parses the wire form produced by String.
func ParseVariantKey(s string) (VariantKey, error) {
	parts := strings.SplitN(s, "|", 3)
	if len(parts) != 3 || parts[0] == "" {
		return VariantKey{}, fmt.Errorf("invalid line item key: %q", s)
	}
	return VariantKey{ProductID: parts[0], Color: parts[1], Size: parts[2]}, nil
}

// LineItem is one product+variant selection with a quantity, either
// sitting in a cart or frozen into an order. Price is copied from the
// catalogue when the item is added and never updated afterwards.
type LineItem struct {
	ID            string  `json:"id"`
	ProductID     string  `json:"productId"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	SelectedColor string  `json:"selectedColor"`
	SelectedSize  string  `json:"selectedSize"`
	ImageURL      string  `json:"imageUrl"`
	Category      string  `json:"category"`
}

// Key returns the composite identity of the line item.
func (li *LineItem) Key() VariantKey {
	return VariantKey{ProductID: li.ProductID, Color: li.SelectedColor, Size: li.SelectedSize}
}

// Cart is an insertion-ordered collection of line items, unique by
// variant key, scoped to one shopper session.
type Cart struct {
	Items []LineItem `json:"items"`
}

// find returns the index of the slot with the given key, or -1.
func (c *Cart) find(key VariantKey) int {
	for i := range c.Items {
		if c.Items[i].Key() == key {
			return i
		}
	}
	return -1
}

// Add merges the item into the cart. An existing slot with the same
// variant key has its quantity incremented; otherwise the item is
// appended, preserving first-seen order. Quantities below 1 are
// coerced to 1. The resulting slot is returned.
func (c *Cart) Add(item LineItem) LineItem {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	item.ID = item.Key().String()

	if i := c.find(item.Key()); i >= 0 {
		c.Items[i].Quantity += item.Quantity
		return c.Items[i]
	}
	c.Items = append(c.Items, item)
	return item
}

// SetQuantity sets the quantity of the slot with the given key,
// clamped to a minimum of 1. Unknown keys are a no-op: removal is an
// explicit separate operation, never a side effect of a quantity edit.
func (c *Cart) SetQuantity(key VariantKey, quantity int) {
	i := c.find(key)
	if i < 0 {
		return
	}
	if quantity < 1 {
		quantity = 1
	}
	c.Items[i].Quantity = quantity
}

// Remove deletes the slot with the given key if present.
func (c *Cart) Remove(key VariantKey) {
	i := c.find(key)
	if i < 0 {
		return
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// IsEmpty reports whether the cart holds no items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Subtotal recomputes the cart subtotal from the current items on
// every call.
func (c *Cart) Subtotal() float64 {
	var total float64
	for i := range c.Items {
		total += c.Items[i].Price * float64(c.Items[i].Quantity)
	}
	return total
}
