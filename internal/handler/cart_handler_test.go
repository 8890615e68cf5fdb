package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"atelier-store/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCartService is a mock implementation of CartService.
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) Get(ctx context.Context, sessionID string) (*model.CartResponse, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartResponse), args.Error(1)
}

func (m *MockCartService) AddItem(ctx context.Context, sessionID string, req *model.AddItemRequest) (*model.LineItem, error) {
	args := m.Called(ctx, sessionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LineItem), args.Error(1)
}

func (m *MockCartService) UpdateQuantity(ctx context.Context, sessionID string, key model.VariantKey, quantity int) (*model.CartResponse, error) {
	args := m.Called(ctx, sessionID, key, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartResponse), args.Error(1)
}

func (m *MockCartService) RemoveItem(ctx context.Context, sessionID string, key model.VariantKey) (*model.CartResponse, error) {
	args := m.Called(ctx, sessionID, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartResponse), args.Error(1)
}

func trenchSlot() *model.LineItem {
	return &model.LineItem{
		ID:            "P001|Beige|M",
		ProductID:     "P001",
		Name:          "Classic Trench Coat",
		Price:         189.99,
		Quantity:      1,
		SelectedColor: "Beige",
		SelectedSize:  "M",
	}
}

func TestCartHandler_Get(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockCartService)
		handler := NewCartHandler(mockService, logger)

		mockService.On("Get", mock.Anything, "session-1").Return(&model.CartResponse{
			Items:    []model.LineItem{*trenchSlot()},
			Subtotal: 189.99,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		req.Header.Set(SessionHeader, "session-1")
		rec := httptest.NewRecorder()

		handler.Get(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got model.CartResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Len(t, got.Items, 1)
		assert.InDelta(t, 189.99, got.Subtotal, 0.001)
		mockService.AssertExpectations(t)
	})

	t.Run("Missing session header", func(t *testing.T) {
		mockService := new(MockCartService)
		handler := NewCartHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		rec := httptest.NewRecorder()

		handler.Get(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "Get")
	})
}

func TestCartHandler_AddItem(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		rawBody        string
		requestBody    *model.AddItemRequest
		mockReturn     *model.LineItem
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			requestBody:    &model.AddItemRequest{ProductID: "P001", Quantity: 1, SelectedColor: "Beige", SelectedSize: "M"},
			mockReturn:     trenchSlot(),
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Missing variant selection",
			requestBody:    &model.AddItemRequest{ProductID: "P001", Quantity: 1},
			mockError:      model.ErrMissingColor,
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name:           "Invalid quantity",
			requestBody:    &model.AddItemRequest{ProductID: "P001", Quantity: 0, SelectedColor: "Beige", SelectedSize: "M"},
			mockError:      model.ErrInvalidQuantity,
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name:           "Product not found",
			requestBody:    &model.AddItemRequest{ProductID: "P999", Quantity: 1},
			mockError:      model.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Invalid JSON",
			rawBody:        "{not json",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Service error",
			requestBody:    &model.AddItemRequest{ProductID: "P001", Quantity: 1, SelectedColor: "Beige", SelectedSize: "M"},
			mockError:      errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCartService)
			handler := NewCartHandler(mockService, logger)

			if tt.expectService {
				mockService.On("AddItem", mock.Anything, "session-1", mock.AnythingOfType("*model.AddItemRequest")).
					Return(tt.mockReturn, tt.mockError)
			}

			body := []byte(tt.rawBody)
			if tt.requestBody != nil {
				var err error
				body, err = json.Marshal(tt.requestBody)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/cart/items", bytes.NewReader(body))
			req.Header.Set(SessionHeader, "session-1")
			rec := httptest.NewRecorder()

			handler.AddItem(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				var got model.LineItem
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, "P001|Beige|M", got.ID)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestCartHandler_UpdateItem(t *testing.T) {
	logger := zerolog.Nop()
	key := model.VariantKey{ProductID: "P001", Color: "Beige", Size: "M"}

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockCartService)
		handler := NewCartHandler(mockService, logger)

		mockService.On("UpdateQuantity", mock.Anything, "session-1", key, 3).Return(&model.CartResponse{
			Items:    []model.LineItem{{ID: key.String(), ProductID: "P001", Quantity: 3, Price: 189.99}},
			Subtotal: 569.97,
		}, nil)

		body, err := json.Marshal(&model.UpdateQuantityRequest{Quantity: 3})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPut, "/api/cart/items/"+url.PathEscape(key.String()), bytes.NewReader(body))
		req.Header.Set(SessionHeader, "session-1")
		rec := httptest.NewRecorder()

		handler.UpdateItem(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Malformed key", func(t *testing.T) {
		mockService := new(MockCartService)
		handler := NewCartHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodPut, "/api/cart/items/justone", bytes.NewReader([]byte(`{"quantity":3}`)))
		req.Header.Set(SessionHeader, "session-1")
		rec := httptest.NewRecorder()

		handler.UpdateItem(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "UpdateQuantity")
	})

	t.Run("Missing session header", func(t *testing.T) {
		mockService := new(MockCartService)
		handler := NewCartHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodPut, "/api/cart/items/P001%7CBeige%7CM", bytes.NewReader([]byte(`{"quantity":3}`)))
		rec := httptest.NewRecorder()

		handler.UpdateItem(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "UpdateQuantity")
	})
}

func TestCartHandler_RemoveItem(t *testing.T) {
	logger := zerolog.Nop()
	key := model.VariantKey{ProductID: "P001", Color: "Beige", Size: "M"}

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockCartService)
		handler := NewCartHandler(mockService, logger)

		mockService.On("RemoveItem", mock.Anything, "session-1", key).Return(&model.CartResponse{
			Items:    []model.LineItem{},
			Subtotal: 0,
		}, nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/cart/items/"+url.PathEscape(key.String()), nil)
		req.Header.Set(SessionHeader, "session-1")
		rec := httptest.NewRecorder()

		handler.RemoveItem(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got model.CartResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Empty(t, got.Items)
		mockService.AssertExpectations(t)
	})

	t.Run("Malformed key", func(t *testing.T) {
		mockService := new(MockCartService)
		handler := NewCartHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodDelete, "/api/cart/items/%7C%7C", nil)
		req.Header.Set(SessionHeader, "session-1")
		rec := httptest.NewRecorder()

		handler.RemoveItem(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "RemoveItem")
	})
}
