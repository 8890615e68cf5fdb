package repository

import (
	"context"

	"atelier-store/internal/model"

	"github.com/google/uuid"
)

// ProductRepository defines read access to the product catalogue.
type ProductRepository interface {
	// GetAll retrieves all products with pagination support.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns nil, nil
	// when the product does not exist.
	GetByID(ctx context.Context, id string) (*model.Product, error)
}

// OrderRepository defines the interface for order data access
// operations. Orders are append-only documents; the only field ever
// updated after creation is the status.
type OrderRepository interface {
	// Create inserts a new order and returns the identity assigned by
	// the database.
	Create(ctx context.Context, order *model.Order) (uuid.UUID, error)

	// GetByID retrieves an order by its ID. Returns nil, nil when the
	// order does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// List retrieves orders newest first with pagination support.
	List(ctx context.Context, limit, offset int) ([]model.Order, error)

	// UpdateStatus writes the status column of a single order.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.Status) error
}
