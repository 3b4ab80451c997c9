package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/brand-auditor/internal/types"
)

// SaveBrandKit stores a synthesized kit as a JSONB document and returns its ID.
// Saving a kit with a brand name that already exists replaces the stored
// document for that brand.
func (db *DB) SaveBrandKit(ctx context.Context, kit *types.BrandKit) (uuid.UUID, error) {
	doc, err := json.Marshal(kit)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal brand kit: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO brand_kits (brand_name, kit)
		 VALUES ($1, $2)
		 ON CONFLICT (brand_name) DO UPDATE SET kit = $2, updated_at = NOW()
		 RETURNING id`,
		kit.BrandName, doc,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save brand kit: %w", err)
	}
	return id, nil
}

// GetBrandKit retrieves a stored kit by ID. Returns nil without error when the
// kit does not exist.
func (db *DB) GetBrandKit(ctx context.Context, kitID uuid.UUID) (*types.BrandKit, error) {
	var doc []byte
	err := db.pool.QueryRow(ctx,
		`SELECT kit FROM brand_kits WHERE id = $1`,
		kitID,
	).Scan(&doc)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get brand kit: %w", err)
	}

	var kit types.BrandKit
	if err := json.Unmarshal(doc, &kit); err != nil {
		return nil, fmt.Errorf("failed to unmarshal brand kit %s: %w", kitID, err)
	}
	return &kit, nil
}

// GetBrandKitByName retrieves a stored kit by its brand name.
func (db *DB) GetBrandKitByName(ctx context.Context, brandName string) (*types.BrandKit, uuid.UUID, error) {
	var doc []byte
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`SELECT id, kit FROM brand_kits WHERE brand_name = $1`,
		brandName,
	).Scan(&id, &doc)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, uuid.Nil, nil
		}
		return nil, uuid.Nil, fmt.Errorf("failed to get brand kit %q: %w", brandName, err)
	}

	var kit types.BrandKit
	if err := json.Unmarshal(doc, &kit); err != nil {
		return nil, uuid.Nil, fmt.Errorf("failed to unmarshal brand kit %q: %w", brandName, err)
	}
	return &kit, id, nil
}

// ListBrandKits retrieves kit metadata ordered by most recently updated. The
// JSONB documents are omitted from listings.
func (db *DB) ListBrandKits(ctx context.Context, limit int) ([]KitRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, brand_name, created_at, updated_at
		 FROM brand_kits ORDER BY updated_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list brand kits: %w", err)
	}
	defer rows.Close()

	var kits []KitRecord
	for rows.Next() {
		var k KitRecord
		if err := rows.Scan(&k.ID, &k.BrandName, &k.CreatedAt, &k.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan brand kit: %w", err)
		}
		kits = append(kits, k)
	}
	return kits, nil
}

// DeleteBrandKit deletes a kit and all its audit runs (via cascade)
func (db *DB) DeleteBrandKit(ctx context.Context, kitID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM brand_kits WHERE id = $1`, kitID)
	if err != nil {
		return fmt.Errorf("failed to delete brand kit: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("brand kit not found: %s", kitID)
	}
	return nil
}
