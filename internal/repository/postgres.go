package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"contact-info-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema creates the widget and option tables
const Schema = `
	CREATE TABLE IF NOT EXISTS contact_info_widgets (
		instance_id VARCHAR(191) PRIMARY KEY,
		title TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		hours TEXT NOT NULL DEFAULT '',
		show_map BOOLEAN NOT NULL DEFAULT FALSE,
		lat DOUBLE PRECISION NOT NULL DEFAULT 0,
		lon DOUBLE PRECISION NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS options (
		name VARCHAR(191) PRIMARY KEY,
		value JSONB NOT NULL
	);
`

// Repository implements the widget and option stores on PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// CreateSchema creates the tables if they do not exist yet
func (r *Repository) CreateSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// GetContactInfo returns the stored widget instance, or nil when it does not exist
func (r *Repository) GetContactInfo(ctx context.Context, instanceID string) (*models.AddressRecord, error) {
	sql := `
		SELECT
			instance_id,
			title,
			address,
			phone,
			hours,
			show_map,
			lat,
			lon,
			updated_at
		FROM contact_info_widgets
		WHERE instance_id = $1
	`

	var rec models.AddressRecord
	err := r.db.QueryRow(ctx, sql, instanceID).Scan(
		&rec.InstanceID,
		&rec.Title,
		&rec.Address,
		&rec.Phone,
		&rec.Hours,
		&rec.ShowMap,
		&rec.Lat,
		&rec.Lon,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to load contact info %q: %w", instanceID, err)
	}

	return &rec, nil
}

// SaveContactInfo upserts a widget instance. Concurrent saves of one instance: last write wins.
func (r *Repository) SaveContactInfo(ctx context.Context, rec *models.AddressRecord) error {
	sql := `
		INSERT INTO contact_info_widgets (instance_id, title, address, phone, hours, show_map, lat, lon, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		ON CONFLICT (instance_id) DO UPDATE
		SET title = EXCLUDED.title,
			address = EXCLUDED.address,
			phone = EXCLUDED.phone,
			hours = EXCLUDED.hours,
			show_map = EXCLUDED.show_map,
			lat = EXCLUDED.lat,
			lon = EXCLUDED.lon,
			updated_at = EXCLUDED.updated_at
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, sql,
		rec.InstanceID,
		rec.Title,
		rec.Address,
		rec.Phone,
		rec.Hours,
		rec.ShowMap,
		rec.Lat,
		rec.Lon,
	).Scan(&rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("repository: failed to save contact info %q: %w", rec.InstanceID, err)
	}

	return nil
}

// DeleteContactInfo removes a widget instance. Deleting a missing instance is not an error.
func (r *Repository) DeleteContactInfo(ctx context.Context, instanceID string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM contact_info_widgets WHERE instance_id = $1`, instanceID); err != nil {
		return fmt.Errorf("repository: failed to delete contact info %q: %w", instanceID, err)
	}
	return nil
}

// GetOption returns the option value, or nil when the option does not exist
func (r *Repository) GetOption(ctx context.Context, name string) (json.RawMessage, error) {
	var value []byte
	err := r.db.QueryRow(ctx, `SELECT value FROM options WHERE name = $1`, name).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to load option %q: %w", name, err)
	}
	return json.RawMessage(value), nil
}

// AddOption stores the option only if it does not exist yet and reports whether it was added
func (r *Repository) AddOption(ctx context.Context, name string, value json.RawMessage) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO options (name, value) VALUES ($1, $2)
		ON CONFLICT (name) DO NOTHING
	`, name, []byte(value))
	if err != nil {
		return false, fmt.Errorf("repository: failed to add option %q: %w", name, err)
	}
	return tag.RowsAffected() == 1, nil
}

// UpdateOption creates or replaces the option value
func (r *Repository) UpdateOption(ctx context.Context, name string, value json.RawMessage) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO options (name, value) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value
	`, name, []byte(value))
	if err != nil {
		return fmt.Errorf("repository: failed to update option %q: %w", name, err)
	}
	return nil
}
