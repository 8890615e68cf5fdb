package model

// Flat checkout charges, per store policy. Tax is a flat amount, not a
// percentage of the subtotal, and the COD charge applies only to
// cash-on-delivery orders.
const (
	ShippingFee = 350.00
	TaxAmount   = 35.00
	CODCharge   = 50.00
)

// Totals is the monetary breakdown frozen into an order at placement.
type Totals struct {
	Subtotal  float64 `json:"subtotal"`
	Shipping  float64 `json:"shipping"`
	Tax       float64 `json:"tax"`
	CODCharge float64 `json:"codCharge"`
	Total     float64 `json:"total"`
}

// ComputeTotals derives the checkout totals from the submitted line
// items and payment method alone. An empty item list yields all-zero
// totals; otherwise the flat shipping and tax charges apply, plus the
// COD surcharge for cash-on-delivery orders.
func ComputeTotals(items []LineItem, payment PaymentMethod) Totals {
	if len(items) == 0 {
		return Totals{}
	}

	var subtotal float64
	for i := range items {
		subtotal += items[i].Price * float64(items[i].Quantity)
	}

	t := Totals{
		Subtotal: subtotal,
		Shipping: ShippingFee,
		Tax:      TaxAmount,
	}
	if payment == PaymentCashOnDelivery {
		t.CODCharge = CODCharge
	}
	t.Total = t.Subtotal + t.Shipping + t.Tax + t.CODCharge
	return t
}
