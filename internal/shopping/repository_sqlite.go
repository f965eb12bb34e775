package shopping

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SQLiteRepository stores the active shopping list as a JSON blob, one
// row at most.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a shopping list repository backed by db.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Current(ctx context.Context) (*List, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, items, created_at, updated_at FROM shopping_lists ORDER BY created_at DESC LIMIT 1`)

	var list List
	var itemsJSON string
	if err := row.Scan(&list.ID, &itemsJSON, &list.CreatedAt, &list.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get shopping list: %w", err)
	}

	if err := json.Unmarshal([]byte(itemsJSON), &list.Items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal shopping list items: %w", err)
	}
	return &list, nil
}

func (r *SQLiteRepository) Replace(ctx context.Context, list *List) error {
	if list.ID == "" {
		list.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if list.CreatedAt.IsZero() {
		list.CreatedAt = now
	}
	list.UpdatedAt = now

	itemsJSON, err := json.Marshal(list.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal shopping list items: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// One active list at a time.
	if _, err := tx.ExecContext(ctx, `DELETE FROM shopping_lists`); err != nil {
		return fmt.Errorf("failed to clear previous shopping list: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO shopping_lists (id, items, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		list.ID, string(itemsJSON), list.CreatedAt, list.UpdatedAt); err != nil {
		return fmt.Errorf("failed to insert shopping list: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit shopping list: %w", err)
	}
	return nil
}
