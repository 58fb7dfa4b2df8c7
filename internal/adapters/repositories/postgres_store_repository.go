package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/learngermanghana/sedifex-stores/internal/domain"
	"github.com/learngermanghana/sedifex-stores/internal/platform/obs"
)

// Postgres-backed implementation of the StoreRepository port.
type PostgresStoreRepository struct{ DB *sql.DB }

func NewPostgresStoreRepository(db *sql.DB) *PostgresStoreRepository {
	return &PostgresStoreRepository{DB: db}
}

// Return all stores in the directory, including any persisted coordinates.
func (s *PostgresStoreRepository) ListStores(ctx context.Context) (_ []*domain.Store, err error) {
	defer obs.Time(ctx, "stores.ListStores")(&err)

	if s.DB == nil {
		return nil, errors.New("postgres store repository: DB is nil")
	}

	query := `
	SELECT
		store_id,
		name,
		display_name,
		phone,
		email,
		description,
		address_line1,
		city,
		region,
		country,
		latitude,
		longitude,
		resolved_at
	FROM stores
	ORDER BY store_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stores: query stores table: %w", err)
	}
	defer rows.Close()

	stores := make([]*domain.Store, 0, 64)
	for rows.Next() {
		var st domain.Store
		var lat, lon sql.NullFloat64
		var resolvedAt sql.NullTime

		err := rows.Scan(
			&st.StoreID,
			&st.Name,
			&st.DisplayName,
			&st.Phone,
			&st.Email,
			&st.Description,
			&st.AddressLine1,
			&st.City,
			&st.Region,
			&st.Country,
			&lat,
			&lon,
			&resolvedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("list stores: scan row: %w", err)
		}

		if lat.Valid && lon.Valid {
			st.Coordinates = &domain.Coordinates{Lat: lat.Float64, Lon: lon.Float64}
		}
		if resolvedAt.Valid {
			t := resolvedAt.Time
			st.ResolvedAt = &t
		}

		stores = append(stores, &st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stores: row iteration: %w", err)
	}

	return stores, nil
}

// Persist resolved coordinates onto a single store row.
func (s *PostgresStoreRepository) SaveCoordinates(
	ctx context.Context,
	storeID string,
	coords domain.Coordinates,
	resolvedAt time.Time,
) (err error) {
	defer obs.Time(ctx, "stores.SaveCoordinates")(&err)

	if s.DB == nil {
		return errors.New("postgres store repository: DB is nil")
	}

	query := `
	UPDATE stores
	SET latitude = $2,
		longitude = $3,
		resolved_at = $4
	WHERE store_id = $1;
	`
	res, err := s.DB.ExecContext(ctx, query, storeID, coords.Lat, coords.Lon, resolvedAt)
	if err != nil {
		return fmt.Errorf("save coordinates store_id=%q: %w", storeID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("save coordinates store_id=%q: rows affected: %w", storeID, err)
	}
	if n == 0 {
		return fmt.Errorf("save coordinates store_id=%q: no such store", storeID)
	}

	return nil
}
