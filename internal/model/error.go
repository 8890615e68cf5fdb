package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeMissingField     = "MISSING_FIELD"
	ErrCodeMissingVariant   = "MISSING_VARIANT_SELECTION"
	ErrCodeInvalidQuantity  = "INVALID_QUANTITY"
	ErrCodeEmptyCart        = "EMPTY_CART"
	ErrCodeInvalidPayment   = "INVALID_PAYMENT_METHOD"
	ErrCodeProductNotFound  = "PRODUCT_NOT_FOUND"
	ErrCodeOrderNotFound    = "ORDER_NOT_FOUND"
	ErrCodeInvalidStatus    = "INVALID_STATUS"
	ErrCodeOrderTerminal    = "ORDER_TERMINAL"
	ErrCodeReturnNotAllowed = "RETURN_REQUIRES_DELIVERY"
	ErrCodeUnauthorised     = "UNAUTHORIZED"
	ErrCodeForbidden        = "FORBIDDEN"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrMissingColor     = NewDomainError(ErrCodeMissingVariant, "A colour selection is required for this product")
	ErrMissingSize      = NewDomainError(ErrCodeMissingVariant, "A size selection is required for this product")
	ErrInvalidQuantity  = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrEmptyCart        = NewDomainError(ErrCodeEmptyCart, "Order must contain at least one item")
	ErrProductNotFound  = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrOrderNotFound    = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrInvalidStatus    = NewDomainError(ErrCodeInvalidStatus, "Unknown order status")
	ErrOrderTerminal    = NewDomainError(ErrCodeOrderTerminal, "Order is in a terminal status and cannot be changed")
	ErrReturnNotAllowed = NewDomainError(ErrCodeReturnNotAllowed, "Orders can only be returned after delivery")
)
