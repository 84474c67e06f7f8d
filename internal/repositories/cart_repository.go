package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/anayakhandelwal/artisan-gallery-platform/internal/models"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/utils"
	"github.com/google/uuid"
)

// CartRepository is the server-side per-user cart store. Items live as a
// single JSON document per user; ReplaceCart always stores the caller's full
// list, so concurrent write-throughs settle on the last complete snapshot.
type CartRepository interface {
	FetchCart(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error)
	ReplaceCart(ctx context.Context, userID uuid.UUID, items []models.CartItem) error
	MergeCart(ctx context.Context, userID uuid.UUID, items []models.CartItem) ([]models.CartItem, error)
}

type cartRepository struct {
	DB *sql.DB
}

func NewCartRepo(db *sql.DB) CartRepository {
	return &cartRepository{DB: db}
}

func (r *cartRepository) FetchCart(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT items
		FROM carts
		WHERE user_id = $1
	`

	var itemsJSON []byte

	err := r.DB.QueryRowContext(dbCtx, query, userID).Scan(&itemsJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// no cart yet is an empty cart, not an error
			return []models.CartItem{}, nil
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	var items []models.CartItem
	if err := json.Unmarshal(itemsJSON, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart items: %w", err)
	}

	return items, nil
}

func (r *cartRepository) ReplaceCart(ctx context.Context, userID uuid.UUID, items []models.CartItem) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	if items == nil {
		items = []models.CartItem{}
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart items: %w", err)
	}

	query := `
		INSERT INTO carts (user_id, items, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET items = $2, updated_at = NOW()
	`

	result, err := r.DB.ExecContext(dbCtx, query, userID, itemsJSON)
	if err != nil {
		return fmt.Errorf("failed to replace the cart: %w", err)
	}

	updatedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updatedRows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// MergeCart folds a guest cart into the stored one: matching composite keys
// add quantities, new lines are stamped with the merge time. The merged list
// is written back and returned.
func (r *cartRepository) MergeCart(ctx context.Context, userID uuid.UUID, items []models.CartItem) ([]models.CartItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin merge transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		SELECT items
		FROM carts
		WHERE user_id = $1
		FOR UPDATE
	`

	var stored []models.CartItem

	var itemsJSON []byte

	err = tx.QueryRowContext(dbCtx, query, userID).Scan(&itemsJSON)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		// first cart for this user
	case err != nil:
		return nil, fmt.Errorf("querying database: %w", err)
	default:
		if err := json.Unmarshal(itemsJSON, &stored); err != nil {
			return nil, fmt.Errorf("failed to unmarshal cart items: %w", err)
		}
	}

	merged := mergeItems(stored, items, time.Now())

	mergedJSON, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cart items: %w", err)
	}

	upsert := `
		INSERT INTO carts (user_id, items, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET items = $2, updated_at = NOW()
	`

	if _, err := tx.ExecContext(dbCtx, upsert, userID, mergedJSON); err != nil {
		return nil, fmt.Errorf("failed to store merged cart: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit merge: %w", err)
	}

	return merged, nil
}

func mergeItems(stored, incoming []models.CartItem, mergedAt time.Time) []models.CartItem {

	merged := make([]models.CartItem, len(stored))
	copy(merged, stored)

	for _, item := range incoming {

		found := false

		for i := range merged {
			if merged[i].Key() == item.Key() {
				merged[i].Quantity += item.Quantity
				found = true

				break
			}
		}

		if !found {
			stamped := item
			stampedAt := mergedAt
			stamped.AddedAt = &stampedAt
			merged = append(merged, stamped)
		}
	}

	return merged
}
