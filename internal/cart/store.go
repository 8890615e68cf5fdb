// Package cart maintains the authoritative in-session set of line
// items: identity and merge rules, derived totals, and best-effort
// durable persistence across reloads.
package cart

import (
	"context"

	"atelier-store/internal/model"

	"github.com/rs/zerolog"
)

// Persistence is the durable storage port for a session cart. Load
// returns an empty slice for a missing record; implementations must
// also degrade corrupt records to an empty slice rather than fail.
type Persistence interface {
	Load(ctx context.Context, sessionID string) ([]model.LineItem, error)
	Save(ctx context.Context, sessionID string, items []model.LineItem) error
}

// Store is the cart for one shopper session. In-memory state is the
// source of truth for the running session; every mutation is written
// through to the persistence port, but a failed write never rolls the
// mutation back.
type Store struct {
	sessionID   string
	cart        model.Cart
	persistence Persistence
	logger      zerolog.Logger
}

// Load reads the session's cart from durable storage. Any load
// failure degrades to an empty cart, never an error: a shopper with a
// corrupt record starts fresh instead of being locked out.
func Load(ctx context.Context, sessionID string, p Persistence, logger zerolog.Logger) *Store {
	s := &Store{
		sessionID:   sessionID,
		persistence: p,
		logger:      logger.With().Str("component", "cart").Str("session_id", sessionID).Logger(),
	}

	items, err := p.Load(ctx, sessionID)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to load cart, starting empty")
		return s
	}
	s.cart.Items = items
	return s
}

// AddItem validates the variant selection and merges the product into
// the cart. When the product defines colour or size options the
// corresponding selection is mandatory; its absence is reported as a
// validation failure, never silently defaulted. Returns the resulting
// slot state.
func (s *Store) AddItem(ctx context.Context, product *model.Product, quantity int, color, size string) (model.LineItem, error) {
	if product.RequiresColor() && color == "" {
		return model.LineItem{}, model.ErrMissingColor
	}
	if product.RequiresSize() && size == "" {
		return model.LineItem{}, model.ErrMissingSize
	}

	slot := s.cart.Add(model.LineItem{
		ProductID:     product.ID,
		Name:          product.Name,
		Price:         product.Price,
		Quantity:      quantity,
		SelectedColor: color,
		SelectedSize:  size,
		ImageURL:      product.ImageURL,
		Category:      product.Category,
	})

	s.persist(ctx)
	return slot, nil
}

// UpdateQuantity sets the quantity of an existing slot, clamped to a
// minimum of 1. Unknown keys are a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, key model.VariantKey, quantity int) {
	s.cart.SetQuantity(key, quantity)
	s.persist(ctx)
}

// RemoveItem deletes the slot with the given key if present.
func (s *Store) RemoveItem(ctx context.Context, key model.VariantKey) {
	s.cart.Remove(key)
	s.persist(ctx)
}

// Clear empties the cart and persists the empty state. Called once,
// after a successful order placement.
func (s *Store) Clear(ctx context.Context) {
	s.cart.Clear()
	s.persist(ctx)
}

// Items returns a copy of the current line items in insertion order.
func (s *Store) Items() []model.LineItem {
	items := make([]model.LineItem, len(s.cart.Items))
	copy(items, s.cart.Items)
	return items
}

// Subtotal recomputes the cart subtotal from current state.
func (s *Store) Subtotal() float64 {
	return s.cart.Subtotal()
}

// IsEmpty reports whether the cart holds no items.
func (s *Store) IsEmpty() bool {
	return s.cart.IsEmpty()
}

// persist writes the full cart state through to durable storage.
// Durability is best effort: failures are logged and the in-memory
// mutation stands.
func (s *Store) persist(ctx context.Context) {
	if err := s.persistence.Save(ctx, s.sessionID, s.cart.Items); err != nil {
		s.logger.Warn().Err(err).Int("item_count", len(s.cart.Items)).Msg("failed to persist cart")
	}
}
