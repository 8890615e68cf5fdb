package model

import "time"

// Product represents an item in the boutique catalogue.
type Product struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Price     float64   `json:"price" db:"price"`
	Category  string    `json:"category" db:"category"`
	ImageURL  string    `json:"imageUrl" db:"image_url"`
	Colors    []string  `json:"colors" db:"colors"`
	Sizes     []string  `json:"sizes" db:"sizes"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// RequiresColor reports whether a colour must be chosen before the
// product can be added to a cart.
func (p *Product) RequiresColor() bool {
	return len(p.Colors) > 0
}

// RequiresSize reports whether a size must be chosen before the
// product can be added to a cart.
func (p *Product) RequiresSize() bool {
	return len(p.Sizes) > 0
}
