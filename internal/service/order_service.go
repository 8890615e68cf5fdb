package service

import (
	"context"
	"fmt"
	"time"

	"atelier-store/internal/cart"
	"atelier-store/internal/model"
	"atelier-store/internal/notify"
	"atelier-store/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// notifyTimeout bounds the detached notification dispatch.
const notifyTimeout = 10 * time.Second

// orderService implements OrderService.
type orderService struct {
	orderRepo   repository.OrderRepository
	persistence cart.Persistence
	notifier    notify.Notifier
	baseURL     string
	logger      zerolog.Logger
}

// NewOrderService creates a new order service. baseURL is the public
// address used to build order and tracking links in notifications.
func NewOrderService(
	orderRepo repository.OrderRepository,
	persistence cart.Persistence,
	notifier notify.Notifier,
	baseURL string,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		persistence: persistence,
		notifier:    notifier,
		baseURL:     baseURL,
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

// Checkout places an order from the session cart. Totals are computed
// once here and frozen into the order; the cart is cleared only after
// the order has been durably created, so a failed checkout leaves the
// cart intact for a retry.
func (s *orderService) Checkout(ctx context.Context, sessionID string, req *model.CheckoutRequest) (*model.Order, error) {
	payment, err := s.validateCheckoutRequest(req)
	if err != nil {
		return nil, err
	}

	store := cart.Load(ctx, sessionID, s.persistence, s.logger)
	if store.IsEmpty() {
		return nil, model.ErrEmptyCart
	}

	order, err := s.createOrder(ctx, req, payment, store.Items(), nil)
	if err != nil {
		return nil, err
	}

	store.Clear(ctx)

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("session_id", sessionID).
		Float64("total", order.TotalAmount).
		Msg("order placed from cart")

	return order, nil
}

// PlaceOrder creates an administrator-entered order from explicit
// line items. Items are run through the cart merge rules so duplicate
// variants collapse into one slot and quantities are clamped.
func (s *orderService) PlaceOrder(ctx context.Context, req *model.ManualOrderRequest, createdBy string) (*model.Order, error) {
	if req == nil || len(req.Items) == 0 {
		return nil, model.ErrEmptyCart
	}

	payment, err := s.validateCheckoutRequest(&req.CheckoutRequest)
	if err != nil {
		return nil, err
	}

	var merged model.Cart
	for _, item := range req.Items {
		if item.ProductID == "" {
			return nil, model.NewDomainError(model.ErrCodeMissingField, "Product ID is required on every line item")
		}
		merged.Add(item)
	}

	var creator *string
	if createdBy != "" {
		creator = &createdBy
	}

	order, err := s.createOrder(ctx, &req.CheckoutRequest, payment, merged.Items, creator)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("created_by", createdBy).
		Msg("manual order placed")

	return order, nil
}

// createOrder freezes the line items and totals into a Pending order,
// hands it to the repository for identity assignment, and dispatches
// the new-order notification.
func (s *orderService) createOrder(
	ctx context.Context,
	req *model.CheckoutRequest,
	payment model.PaymentMethod,
	items []model.LineItem,
	createdBy *string,
) (*model.Order, error) {
	totals := model.ComputeTotals(items, payment)

	order := &model.Order{
		UserID:          req.UserID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
		Items:           items,
		Subtotal:        totals.Subtotal,
		Shipping:        totals.Shipping,
		Tax:             totals.Tax,
		CODCharge:       totals.CODCharge,
		TotalAmount:     totals.Total,
		PaymentMethod:   payment,
		Status:          model.StatusPending,
		CreatedBy:       createdBy,
	}

	if _, err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.dispatch(func(ctx context.Context) error {
		return s.notifier.OrderPlaced(ctx, notify.OrderPlacedEvent{
			Envelope: notify.Envelope{
				OrderID:    order.ID.String(),
				OccurredAt: time.Now(),
			},
			CustomerName: order.CustomerName,
			Total:        order.TotalAmount,
			ItemSummary:  notify.ItemSummary(order.Items),
			OrderLink:    fmt.Sprintf("%s/admin/orders/%s", s.baseURL, order.ID),
		})
	})

	return order, nil
}

// GetByID retrieves an order by its ID.
func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}
	return order, nil
}

// List retrieves orders newest first.
func (s *orderService) List(ctx context.Context, limit, offset int) ([]model.Order, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	orders, err := s.orderRepo.List(ctx, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// TransitionStatus moves an order to a new status. The transition is
// validated against the persisted status; the write is a partial
// update of the status column alone, last write wins.
func (s *orderService) TransitionStatus(ctx context.Context, id uuid.UUID, newStatus string, actor string) (*model.Order, error) {
	status, err := model.ParseStatus(newStatus)
	if err != nil {
		s.logger.Warn().
			Str("order_id", id.String()).
			Str("status", newStatus).
			Str("actor", actor).
			Msg("unknown order status")
		return nil, err
	}

	order, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := model.ValidateTransition(order.Status, status); err != nil {
		s.logger.Warn().
			Str("order_id", id.String()).
			Str("from", string(order.Status)).
			Str("to", string(status)).
			Str("actor", actor).
			Err(err).
			Msg("status transition rejected")
		return nil, err
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to update order status")
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	order.Status = status

	trackingLink := ""
	if status == model.StatusShipped {
		trackingLink = fmt.Sprintf("%s/orders/%s", s.baseURL, order.ID)
	}

	s.dispatch(func(ctx context.Context) error {
		return s.notifier.OrderStatusChanged(ctx, notify.StatusChangedEvent{
			Envelope: notify.Envelope{
				OrderID:    order.ID.String(),
				OccurredAt: time.Now(),
			},
			CustomerEmail: order.CustomerEmail,
			NewStatus:     string(status),
			ItemSummary:   notify.ItemSummary(order.Items),
			Total:         order.TotalAmount,
			TrackingLink:  trackingLink,
		})
	})

	s.logger.Info().
		Str("order_id", id.String()).
		Str("status", string(status)).
		Str("actor", actor).
		Msg("order status updated")

	return order, nil
}

// validateCheckoutRequest checks the customer and payment fields. The
// monetary side needs no validation here: totals are derived, never
// submitted.
func (s *orderService) validateCheckoutRequest(req *model.CheckoutRequest) (model.PaymentMethod, error) {
	if req == nil {
		return "", model.NewDomainError(model.ErrCodeMissingField, "Checkout request is required")
	}
	if req.CustomerName == "" {
		return "", model.NewDomainError(model.ErrCodeMissingField, "Customer name is required")
	}
	if req.CustomerEmail == "" {
		return "", model.NewDomainError(model.ErrCodeMissingField, "Customer email is required")
	}
	if req.ShippingAddress == "" {
		return "", model.NewDomainError(model.ErrCodeMissingField, "Shipping address is required")
	}
	return model.ParsePaymentMethod(req.PaymentMethod)
}

// dispatch runs a notification call on a detached context so it
// neither blocks nor fails the originating operation. Failures are
// logged and swallowed.
func (s *orderService) dispatch(fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("notification dispatch failed")
		}
	}()
}
