package service

import (
	"context"
	"fmt"

	"atelier-store/internal/cart"
	"atelier-store/internal/model"
	"atelier-store/internal/repository"

	"github.com/rs/zerolog"
)

// cartService implements CartService.
type cartService struct {
	productRepo repository.ProductRepository
	persistence cart.Persistence
	logger      zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(
	productRepo repository.ProductRepository,
	persistence cart.Persistence,
	logger zerolog.Logger,
) CartService {
	return &cartService{
		productRepo: productRepo,
		persistence: persistence,
		logger:      logger.With().Str("service", "cart").Logger(),
	}
}

// Get retrieves the current cart state for a session.
func (s *cartService) Get(ctx context.Context, sessionID string) (*model.CartResponse, error) {
	store := cart.Load(ctx, sessionID, s.persistence, s.logger)
	return cartResponse(store), nil
}

// AddItem validates the variant selection and merges the product into
// the session cart.
func (s *cartService) AddItem(ctx context.Context, sessionID string, req *model.AddItemRequest) (*model.LineItem, error) {
	if req == nil || req.ProductID == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Product ID is required")
	}
	if req.Quantity <= 0 {
		s.logger.Warn().
			Str("product_id", req.ProductID).
			Int("quantity", req.Quantity).
			Msg("invalid quantity")
		return nil, model.ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", req.ProductID).Msg("failed to look up product")
		return nil, fmt.Errorf("failed to look up product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	store := cart.Load(ctx, sessionID, s.persistence, s.logger)
	slot, err := store.AddItem(ctx, product, req.Quantity, req.SelectedColor, req.SelectedSize)
	if err != nil {
		s.logger.Warn().
			Str("product_id", req.ProductID).
			Err(err).
			Msg("variant selection rejected")
		return nil, err
	}

	s.logger.Info().
		Str("session_id", sessionID).
		Str("line_item", slot.ID).
		Int("quantity", slot.Quantity).
		Msg("item added to cart")

	return &slot, nil
}

// UpdateQuantity sets the quantity of an existing cart slot.
func (s *cartService) UpdateQuantity(ctx context.Context, sessionID string, key model.VariantKey, quantity int) (*model.CartResponse, error) {
	store := cart.Load(ctx, sessionID, s.persistence, s.logger)
	store.UpdateQuantity(ctx, key, quantity)
	return cartResponse(store), nil
}

// RemoveItem deletes a cart slot if present.
func (s *cartService) RemoveItem(ctx context.Context, sessionID string, key model.VariantKey) (*model.CartResponse, error) {
	store := cart.Load(ctx, sessionID, s.persistence, s.logger)
	store.RemoveItem(ctx, key)
	return cartResponse(store), nil
}

func cartResponse(store *cart.Store) *model.CartResponse {
	return &model.CartResponse{
		Items:    store.Items(),
		Subtotal: store.Subtotal(),
	}
}
