package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"atelier-store/internal/model"
	"atelier-store/internal/service"

	"github.com/rs/zerolog"
)

// SessionHeader carries the shopper's session identity on storefront
// requests.
const SessionHeader = "X-Session-ID"

// CartHandler handles cart-related HTTP requests.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	cart, err := h.service.Get(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

// AddItem handles POST /api/cart/items requests.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req model.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	slot, err := h.service.AddItem(r.Context(), sessionID, &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, slot)
}

// UpdateItem handles PUT /api/cart/items/{key} requests.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	key, ok := h.itemKey(w, r)
	if !ok {
		return
	}

	var req model.UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	cart, err := h.service.UpdateQuantity(r.Context(), sessionID, key, req.Quantity)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

// RemoveItem handles DELETE /api/cart/items/{key} requests.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	key, ok := h.itemKey(w, r)
	if !ok {
		return
	}

	cart, err := h.service.RemoveItem(r.Context(), sessionID, key)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

// sessionID extracts the session identity from the request header.
func (h *CartHandler) sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	sessionID := r.Header.Get(SessionHeader)
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "session ID is required", h.logger)
		return "", false
	}
	return sessionID, true
}

// itemKey extracts and parses the line item key from the request path.
// Expecting path: /api/cart/items/{key}
func (h *CartHandler) itemKey(w http.ResponseWriter, r *http.Request) (model.VariantKey, bool) {
	raw := strings.TrimPrefix(r.URL.Path, "/api/cart/items/")
	if raw == "" || raw == r.URL.Path {
		writeError(w, http.StatusBadRequest, "line item key is required", h.logger)
		return model.VariantKey{}, false
	}

	if unescaped, err := url.PathUnescape(raw); err == nil {
		raw = unescaped
	}

	key, err := model.ParseVariantKey(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid line item key", h.logger)
		return model.VariantKey{}, false
	}

	return key, true
}
