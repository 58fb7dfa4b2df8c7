package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the Postgres schema for the store directory.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createStoresQuery := `
	CREATE TABLE IF NOT EXISTS stores (
		store_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		display_name TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		address_line1 TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		region TEXT NOT NULL DEFAULT '',
		country TEXT NOT NULL DEFAULT '',
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		resolved_at TIMESTAMPTZ
	);
	`

	createCityIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_stores_city
	ON stores(city);
	`

	statements := []string{
		createStoresQuery,
		createCityIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type StoreSeed struct {
	StoreID      string `json:"store_id"`
	Name         string `json:"name"`
	DisplayName  string `json:"display_name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Description  string `json:"description"`
	AddressLine1 string `json:"address_line1"`
	City         string `json:"city"`
	Region       string `json:"region"`
	Country      string `json:"country"`
}

// Populate the stores table from a JSON file. Reseeding updates the
// descriptive and address fields but leaves previously resolved
// coordinates in place, so the persisted cache tier survives.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed stores: read %q: %w", jsonPath, err)
	}

	var data []StoreSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed stores: parse json: %w", err)
	}

	rows := make([]StoreSeed, 0, len(data))
	for i, item := range data {
		id := strings.TrimSpace(item.StoreID)
		if id == "" {
			return fmt.Errorf("seed stores: empty store_id at index %d", i+1)
		}

		name := strings.TrimSpace(item.Name)
		if name == "" {
			return fmt.Errorf("seed stores: store_id=%q: name cannot be empty", id)
		}

		item.StoreID = id
		item.Name = name
		rows = append(rows, item)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed stores: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO stores (
		store_id,
		name,
		display_name,
		phone,
		email,
		description,
		address_line1,
		city,
		region,
		country
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (store_id) DO UPDATE
	SET name = EXCLUDED.name,
		display_name = EXCLUDED.display_name,
		phone = EXCLUDED.phone,
		email = EXCLUDED.email,
		description = EXCLUDED.description,
		address_line1 = EXCLUDED.address_line1,
		city = EXCLUDED.city,
		region = EXCLUDED.region,
		country = EXCLUDED.country;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed stores: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range rows {
		_, err := stmt.Exec(
			s.StoreID,
			s.Name,
			s.DisplayName,
			s.Phone,
			s.Email,
			s.Description,
			s.AddressLine1,
			s.City,
			s.Region,
			s.Country,
		)
		if err != nil {
			return fmt.Errorf("seed stores: insert store_id=%q: %w", s.StoreID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed stores: commit tx: %w", err)
	}

	return nil
}
