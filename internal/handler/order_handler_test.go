package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"atelier-store/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderService is a mock implementation of OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Checkout(ctx context.Context, sessionID string, req *model.CheckoutRequest) (*model.Order, error) {
	args := m.Called(ctx, sessionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) PlaceOrder(ctx context.Context, req *model.ManualOrderRequest, createdBy string) (*model.Order, error) {
	args := m.Called(ctx, req, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) List(ctx context.Context, limit, offset int) ([]model.Order, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderService) TransitionStatus(ctx context.Context, id uuid.UUID, newStatus string, actor string) (*model.Order, error) {
	args := m.Called(ctx, id, newStatus, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func testOrder(id uuid.UUID) *model.Order {
	return &model.Order{
		ID:            id,
		CustomerName:  "Margaux Devereaux",
		CustomerEmail: "margaux@example.com",
		Items: []model.LineItem{
			{ID: "P001|Beige|M", ProductID: "P001", Name: "Classic Trench Coat", Price: 189.99, Quantity: 1, SelectedColor: "Beige", SelectedSize: "M"},
		},
		Subtotal:      189.99,
		Shipping:      350.00,
		Tax:           35.00,
		TotalAmount:   574.99,
		PaymentMethod: model.PaymentBankTransfer,
		Status:        model.StatusPending,
		OrderDate:     time.Now(),
	}
}

func TestOrderHandler_Checkout(t *testing.T) {
	logger := zerolog.Nop()
	orderID := uuid.New()

	validBody := &model.CheckoutRequest{
		CustomerName:    "Margaux Devereaux",
		CustomerEmail:   "margaux@example.com",
		ShippingAddress: "14 Rue des Lilas, Makati",
		PaymentMethod:   "bank_transfer",
	}

	tests := []struct {
		name           string
		sessionID      string
		rawBody        string
		requestBody    *model.CheckoutRequest
		mockReturn     *model.Order
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			sessionID:      "session-1",
			requestBody:    validBody,
			mockReturn:     testOrder(orderID),
			expectedStatus: http.StatusCreated,
			expectService:  true,
		},
		{
			name:           "Missing session header",
			sessionID:      "",
			requestBody:    validBody,
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Invalid JSON",
			sessionID:      "session-1",
			rawBody:        "{not json",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Empty cart",
			sessionID:      "session-1",
			requestBody:    validBody,
			mockError:      model.ErrEmptyCart,
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name:           "Missing customer name",
			sessionID:      "session-1",
			requestBody:    &model.CheckoutRequest{PaymentMethod: "card"},
			mockError:      model.NewDomainError(model.ErrCodeMissingField, "Customer name is required"),
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name:           "Service error",
			sessionID:      "session-1",
			requestBody:    validBody,
			mockError:      errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			handler := NewOrderHandler(mockService, logger)

			if tt.expectService {
				mockService.On("Checkout", mock.Anything, tt.sessionID, mock.AnythingOfType("*model.CheckoutRequest")).
					Return(tt.mockReturn, tt.mockError)
			}

			body := []byte(tt.rawBody)
			if tt.requestBody != nil {
				var err error
				body, err = json.Marshal(tt.requestBody)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewReader(body))
			if tt.sessionID != "" {
				req.Header.Set(SessionHeader, tt.sessionID)
			}
			rec := httptest.NewRecorder()

			handler.Checkout(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusCreated {
				var got model.Order
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, orderID, got.ID)
				assert.Equal(t, model.StatusPending, got.Status)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestOrderHandler_Create(t *testing.T) {
	logger := zerolog.Nop()
	orderID := uuid.New()

	t.Run("Success with admin actor", func(t *testing.T) {
		mockService := new(MockOrderService)
		handler := NewOrderHandler(mockService, logger)

		order := testOrder(orderID)
		creator := "admin@atelier.example"
		order.CreatedBy = &creator
		mockService.On("PlaceOrder", mock.Anything, mock.AnythingOfType("*model.ManualOrderRequest"), "admin@atelier.example").
			Return(order, nil)

		body, err := json.Marshal(&model.ManualOrderRequest{
			CheckoutRequest: model.CheckoutRequest{
				CustomerName:    "Margaux Devereaux",
				CustomerEmail:   "margaux@example.com",
				ShippingAddress: "14 Rue des Lilas, Makati",
				PaymentMethod:   "bank_transfer",
			},
			Items: []model.LineItem{
				{ProductID: "P001", Name: "Classic Trench Coat", Price: 189.99, Quantity: 1, SelectedColor: "Beige", SelectedSize: "M"},
			},
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/orders", bytes.NewReader(body))
		req.Header.Set(AdminUserHeader, "admin@atelier.example")
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		mockService := new(MockOrderService)
		handler := NewOrderHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/orders", bytes.NewReader([]byte("{broken")))
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "PlaceOrder")
	})

	t.Run("Empty items", func(t *testing.T) {
		mockService := new(MockOrderService)
		handler := NewOrderHandler(mockService, logger)

		mockService.On("PlaceOrder", mock.Anything, mock.AnythingOfType("*model.ManualOrderRequest"), "").
			Return(nil, model.ErrEmptyCart)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/orders", bytes.NewReader([]byte(`{"items":[]}`)))
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOrderHandler_List(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockOrderService)
		handler := NewOrderHandler(mockService, logger)

		orders := []model.Order{*testOrder(uuid.New()), *testOrder(uuid.New())}
		mockService.On("List", mock.Anything, 10, 5).Return(orders, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/orders?limit=10&offset=5", nil)
		rec := httptest.NewRecorder()

		handler.List(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got []model.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Len(t, got, 2)
		mockService.AssertExpectations(t)
	})

	t.Run("Nil result serialises as empty array", func(t *testing.T) {
		mockService := new(MockOrderService)
		handler := NewOrderHandler(mockService, logger)

		mockService.On("List", mock.Anything, 0, 0).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
		rec := httptest.NewRecorder()

		handler.List(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("Service error", func(t *testing.T) {
		mockService := new(MockOrderService)
		handler := NewOrderHandler(mockService, logger)

		mockService.On("List", mock.Anything, 0, 0).Return(nil, errors.New("database error"))

		req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
		rec := httptest.NewRecorder()

		handler.List(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestOrderHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()
	orderID := uuid.New()

	tests := []struct {
		name           string
		path           string
		mockReturn     *model.Order
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			path:           "/api/admin/orders/" + orderID.String(),
			mockReturn:     testOrder(orderID),
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Not found",
			path:           "/api/admin/orders/" + orderID.String(),
			mockError:      model.ErrOrderNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Invalid ID format",
			path:           "/api/admin/orders/not-a-uuid",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			handler := NewOrderHandler(mockService, logger)

			if tt.expectService {
				mockService.On("GetByID", mock.Anything, orderID).Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()

			handler.GetByID(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	logger := zerolog.Nop()
	orderID := uuid.New()

	shipped := testOrder(orderID)
	shipped.Status = model.StatusShipped

	tests := []struct {
		name           string
		path           string
		rawBody        string
		status         string
		mockReturn     *model.Order
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			path:           "/api/admin/orders/" + orderID.String() + "/status",
			status:         "Shipped",
			mockReturn:     shipped,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Unknown status",
			path:           "/api/admin/orders/" + orderID.String() + "/status",
			status:         "Misplaced",
			mockError:      model.ErrInvalidStatus,
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name:           "Terminal order",
			path:           "/api/admin/orders/" + orderID.String() + "/status",
			status:         "Processing",
			mockError:      model.ErrOrderTerminal,
			expectedStatus: http.StatusConflict,
			expectService:  true,
		},
		{
			name:           "Return before delivery",
			path:           "/api/admin/orders/" + orderID.String() + "/status",
			status:         "Returned",
			mockError:      model.ErrReturnNotAllowed,
			expectedStatus: http.StatusConflict,
			expectService:  true,
		},
		{
			name:           "Order not found",
			path:           "/api/admin/orders/" + orderID.String() + "/status",
			status:         "Processing",
			mockError:      model.ErrOrderNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Invalid JSON",
			path:           "/api/admin/orders/" + orderID.String() + "/status",
			rawBody:        "{not json",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Invalid ID format",
			path:           "/api/admin/orders/not-a-uuid/status",
			status:         "Processing",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			handler := NewOrderHandler(mockService, logger)

			if tt.expectService {
				mockService.On("TransitionStatus", mock.Anything, orderID, tt.status, "ops@atelier.example").
					Return(tt.mockReturn, tt.mockError)
			}

			body := []byte(tt.rawBody)
			if tt.rawBody == "" {
				var err error
				body, err = json.Marshal(&model.StatusUpdateRequest{Status: tt.status})
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPatch, tt.path, bytes.NewReader(body))
			req.Header.Set(AdminUserHeader, "ops@atelier.example")
			rec := httptest.NewRecorder()

			handler.UpdateStatus(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				var got model.Order
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, model.StatusShipped, got.Status)
			}
			mockService.AssertExpectations(t)
		})
	}
}
