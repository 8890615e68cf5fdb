// Command seed creates the database schema and loads a sample
// boutique catalogue, for local development and demos.
package main

import (
	"context"
	"fmt"
	"os"

	"atelier-store/internal/config"
	"atelier-store/internal/database"
)

const schema = `
CREATE TABLE IF NOT EXISTS products (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	price      DOUBLE PRECISION NOT NULL,
	category   TEXT NOT NULL DEFAULT '',
	image_url  TEXT NOT NULL DEFAULT '',
	colors     TEXT[] NOT NULL DEFAULT '{}',
	sizes      TEXT[] NOT NULL DEFAULT '{}',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS carts (
	session_id TEXT PRIMARY KEY,
	items      JSONB NOT NULL DEFAULT '[]',
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS orders (
	id               UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id          TEXT,
	customer_name    TEXT NOT NULL,
	customer_email   TEXT NOT NULL,
	customer_phone   TEXT NOT NULL DEFAULT '',
	shipping_address TEXT NOT NULL,
	items            JSONB NOT NULL,
	subtotal         DOUBLE PRECISION NOT NULL,
	shipping         DOUBLE PRECISION NOT NULL,
	tax              DOUBLE PRECISION NOT NULL,
	cod_charge       DOUBLE PRECISION NOT NULL,
	total_amount     DOUBLE PRECISION NOT NULL,
	payment_method   TEXT NOT NULL,
	status           TEXT NOT NULL DEFAULT 'Pending',
	created_by       TEXT,
	order_date       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_orders_order_date ON orders (order_date DESC);
`

type sampleProduct struct {
	id       string
	name     string
	price    float64
	category string
	imageURL string
	colors   []string
	sizes    []string
}

var catalogue = []sampleProduct{
	{"P001", "Classic Trench Coat", 189.99, "Outerwear", "/images/trench-coat.jpg",
		[]string{"Beige", "Black", "Navy"}, []string{"S", "M", "L", "XL"}},
	{"P002", "Silk Blouse", 79.50, "Tops", "/images/silk-blouse.jpg",
		[]string{"Ivory", "Blush", "Black"}, []string{"XS", "S", "M", "L"}},
	{"P003", "Tailored Wool Trousers", 120.00, "Bottoms", "/images/wool-trousers.jpg",
		[]string{"Charcoal", "Camel"}, []string{"S", "M", "L"}},
	{"P004", "Cashmere Scarf", 65.00, "Accessories", "/images/cashmere-scarf.jpg",
		[]string{"Grey", "Burgundy"}, nil},
	{"P005", "Leather Tote", 245.00, "Accessories", "/images/leather-tote.jpg",
		nil, nil},
	{"P006", "Pleated Midi Skirt", 95.00, "Bottoms", "/images/midi-skirt.jpg",
		[]string{"Emerald", "Black"}, []string{"XS", "S", "M", "L", "XL"}},
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	ctx := context.Background()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	logger.Info().Msg("schema created")

	query := `
		INSERT INTO products (id, name, price, category, image_url, colors, sizes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING
	`
	for _, p := range catalogue {
		if _, err := pool.Exec(ctx, query, p.id, p.name, p.price, p.category, p.imageURL, p.colors, p.sizes); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.id, err)
		}
	}

	logger.Info().Int("count", len(catalogue)).Msg("catalogue seeded")
	return nil
}
