package service

import (
	"context"

	"atelier-store/internal/model"

	"github.com/google/uuid"
)

// ProductService defines read operations over the product catalogue.
type ProductService interface {
	// GetAll retrieves all products with pagination.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)
}

// CartService defines operations on the session cart.
type CartService interface {
	// Get retrieves the current cart state for a session.
	Get(ctx context.Context, sessionID string) (*model.CartResponse, error)

	// AddItem validates the variant selection and merges the product
	// into the session cart, returning the resulting slot state.
	AddItem(ctx context.Context, sessionID string, req *model.AddItemRequest) (*model.LineItem, error)

	// UpdateQuantity sets the quantity of an existing cart slot,
	// clamped to a minimum of 1.
	UpdateQuantity(ctx context.Context, sessionID string, key model.VariantKey, quantity int) (*model.CartResponse, error)

	// RemoveItem deletes a cart slot if present.
	RemoveItem(ctx context.Context, sessionID string, key model.VariantKey) (*model.CartResponse, error)
}

// OrderService defines checkout and order lifecycle operations.
type OrderService interface {
	// Checkout places an order from the session cart and clears the
	// cart on success.
	Checkout(ctx context.Context, sessionID string, req *model.CheckoutRequest) (*model.Order, error)

	// PlaceOrder creates an administrator-entered order from explicit
	// line items.
	PlaceOrder(ctx context.Context, req *model.ManualOrderRequest, createdBy string) (*model.Order, error)

	// GetByID retrieves an order by its ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// List retrieves orders newest first with pagination.
	List(ctx context.Context, limit, offset int) ([]model.Order, error)

	// TransitionStatus moves an order to a new status on behalf of an
	// administrative actor, enforcing the lifecycle rules.
	TransitionStatus(ctx context.Context, id uuid.UUID, newStatus string, actor string) (*model.Order, error)
}
