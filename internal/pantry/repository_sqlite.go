package pantry

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fresh-pantry/internal/shared"
)

// SQLiteRepository is the database-backed pantry repository.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLiteRepository.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const itemColumns = `id, name, quantity, unit, category, min_threshold, typical_purchase, expiry_date, version, created_at, updated_at`

func (r *SQLiteRepository) List(ctx context.Context) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+itemColumns+` FROM pantry_items ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list pantry items: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pantry item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *SQLiteRepository) Get(ctx context.Context, id string) (*Item, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM pantry_items WHERE id = ?`, id)
	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pantry item %s: %w", id, err)
	}
	return item, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, item *Item) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	item.Version = 1

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pantry_items (`+itemColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Name, item.Quantity, item.Unit, string(item.Category),
		item.MinThreshold, item.TypicalPurchase, nullableTime(item.ExpiryDate),
		item.Version, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert pantry item: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Update(ctx context.Context, item *Item) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
		UPDATE pantry_items
		SET name = ?, quantity = ?, unit = ?, category = ?, min_threshold = ?,
		    typical_purchase = ?, expiry_date = ?, version = version + 1, updated_at = ?
		WHERE id = ? AND version = ?`,
		item.Name, item.Quantity, item.Unit, string(item.Category), item.MinThreshold,
		item.TypicalPurchase, nullableTime(item.ExpiryDate), now,
		item.ID, item.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update pantry item %s: %w", item.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		// Either the row is gone or another writer bumped the version.
		if _, getErr := r.Get(ctx, item.ID); getErr == ErrNotFound {
			return ErrNotFound
		}
		return ErrConflict
	}

	item.Version++
	item.UpdatedAt = now
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pantry_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete pantry item %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) Merge(ctx context.Context, survivor *Item, removeIDs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin merge transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	res, err := tx.ExecContext(ctx, `
		UPDATE pantry_items
		SET quantity = ?, min_threshold = ?, typical_purchase = ?, expiry_date = ?,
		    version = version + 1, updated_at = ?
		WHERE id = ? AND version = ?`,
		survivor.Quantity, survivor.MinThreshold, survivor.TypicalPurchase,
		nullableTime(survivor.ExpiryDate), now, survivor.ID, survivor.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update merge survivor %s: %w", survivor.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return ErrConflict
	}

	for _, id := range removeIDs {
		if _, err := tx.ExecContext(ctx, `DELETE FROM pantry_items WHERE id = ?`, id); err != nil {
			return fmt.Errorf("failed to remove merged pantry item %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit merge: %w", err)
	}

	survivor.Version++
	survivor.UpdatedAt = now
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*Item, error) {
	var item Item
	var category string
	var expiry sql.NullTime

	err := row.Scan(
		&item.ID, &item.Name, &item.Quantity, &item.Unit, &category,
		&item.MinThreshold, &item.TypicalPurchase, &expiry,
		&item.Version, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.Category = shared.ParseCategory(category)
	if expiry.Valid {
		t := expiry.Time
		item.ExpiryDate = &t
	}
	return &item, nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
