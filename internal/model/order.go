package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod identifies how the customer chose to pay.
type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentBankTransfer   PaymentMethod = "bank_transfer"
	PaymentCard           PaymentMethod = "card"
)

// ParsePaymentMethod validates a raw payment method value.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentCashOnDelivery, PaymentBankTransfer, PaymentCard:
		return PaymentMethod(s), nil
	}
	return "", NewDomainError(ErrCodeInvalidPayment, "Unknown payment method")
}

// Order is the frozen snapshot of a completed checkout. Everything
// except Status is immutable after creation; the monetary breakdown is
// computed once at placement and never recalculated from the catalogue.
type Order struct {
	ID              uuid.UUID     `json:"id" db:"id"`
	UserID          *string       `json:"userId" db:"user_id"`
	CustomerName    string        `json:"customerName" db:"customer_name"`
	CustomerEmail   string        `json:"customerEmail" db:"customer_email"`
	CustomerPhone   string        `json:"customerPhone" db:"customer_phone"`
	ShippingAddress string        `json:"shippingAddress" db:"shipping_address"`
	Items           []LineItem    `json:"items" db:"items"`
	Subtotal        float64       `json:"subtotal" db:"subtotal"`
	Shipping        float64       `json:"shipping" db:"shipping"`
	Tax             float64       `json:"tax" db:"tax"`
	CODCharge       float64       `json:"codCharge" db:"cod_charge"`
	TotalAmount     float64       `json:"totalAmount" db:"total_amount"`
	PaymentMethod   PaymentMethod `json:"paymentMethod" db:"payment_method"`
	Status          Status        `json:"status" db:"status"`
	CreatedBy       *string       `json:"createdBy,omitempty" db:"created_by"`
	OrderDate       time.Time     `json:"orderDate" db:"order_date"`
}

// CheckoutRequest is the payload for placing an order from the
// session cart.
type CheckoutRequest struct {
	UserID          *string `json:"userId,omitempty"`
	CustomerName    string  `json:"customerName"`
	CustomerEmail   string  `json:"customerEmail"`
	CustomerPhone   string  `json:"customerPhone"`
	ShippingAddress string  `json:"shippingAddress"`
	PaymentMethod   string  `json:"paymentMethod"`
}

// ManualOrderRequest is the payload for administrator-entered orders,
// carrying explicit line items instead of a session cart.
type ManualOrderRequest struct {
	CheckoutRequest
	Items []LineItem `json:"items"`
}

// StatusUpdateRequest is the payload for an administrative status change.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// AddItemRequest is the payload for adding a product to the cart.
type AddItemRequest struct {
	ProductID     string `json:"productId"`
	Quantity      int    `json:"quantity"`
	SelectedColor string `json:"selectedColor"`
	SelectedSize  string `json:"selectedSize"`
}

// UpdateQuantityRequest is the payload for a cart quantity edit.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse is the cart state returned to the storefront.
type CartResponse struct {
	Items    []LineItem `json:"items"`
	Subtotal float64    `json:"subtotal"`
}
