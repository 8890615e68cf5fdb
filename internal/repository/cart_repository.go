package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"atelier-store/internal/cart"
	"atelier-store/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// cartRepository persists session carts as one JSON document per
// session key, implementing the cart.Persistence port.
type cartRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCartRepository creates a new PostgreSQL-backed cart store.
func NewCartRepository(pool *pgxpool.Pool, logger zerolog.Logger) cart.Persistence {
	return &cartRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "cart").Logger(),
	}
}

// Load reads the cart document for a session. A missing row or a
// document that no longer parses both yield an empty cart; a corrupt
// record must never lock a shopper out of their cart.
func (r *cartRepository) Load(ctx context.Context, sessionID string) ([]model.LineItem, error) {
	query := `
		SELECT items
		FROM carts
		WHERE session_id = $1
	`

	var raw []byte
	err := r.pool.QueryRow(ctx, query, sessionID).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []model.LineItem{}, nil
		}
		r.logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to load cart")
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var items []model.LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		r.logger.Warn().Err(err).Str("session_id", sessionID).Msg("corrupt cart document, returning empty cart")
		return []model.LineItem{}, nil
	}

	return items, nil
}

// Save writes the full cart state for a session, last write wins.
func (r *cartRepository) Save(ctx context.Context, sessionID string, items []model.LineItem) error {
	if items == nil {
		items = []model.LineItem{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	query := `
		INSERT INTO carts (session_id, items, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (session_id)
		DO UPDATE SET items = EXCLUDED.items, updated_at = EXCLUDED.updated_at
	`

	_, err = r.pool.Exec(ctx, query, sessionID, raw, time.Now())
	if err != nil {
		r.logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to save cart")
		return fmt.Errorf("failed to save cart: %w", err)
	}

	r.logger.Debug().Str("session_id", sessionID).Int("item_count", len(items)).Msg("cart saved")
	return nil
}
