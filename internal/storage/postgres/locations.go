package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hmorales/wedplan/internal/models"
	"github.com/hmorales/wedplan/internal/storage"
)

const locationColumns = `id, name, address, city, country, description, map_url,
	created_at, updated_at`

func scanLocation(scanner interface{ Scan(...any) error }) (*models.Location, error) {
	l := &models.Location{}
	var address, city, country, description, mapURL sql.NullString
	err := scanner.Scan(
		&l.ID, &l.Name, &address, &city, &country, &description, &mapURL,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	l.Address = strPtr(address)
	l.City = strPtr(city)
	l.Country = strPtr(country)
	l.Description = strPtr(description)
	l.MapURL = strPtr(mapURL)
	return l, nil
}

// CreateLocation persists a new location, assigning ID and timestamps.
func (s *PostgresStore) CreateLocation(ctx context.Context, location *models.Location) error {
	if location.ID == "" {
		location.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	location.CreatedAt = now
	location.UpdatedAt = now

	_, err := s.exec(ctx,
		`INSERT INTO locations (`+locationColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		location.ID, location.Name, nullStr(location.Address), nullStr(location.City),
		nullStr(location.Country), nullStr(location.Description), nullStr(location.MapURL),
		location.CreatedAt, location.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert location: %w", err)
	}
	return nil
}

// GetLocation retrieves a location by ID.
func (s *PostgresStore) GetLocation(ctx context.Context, id string) (*models.Location, error) {
	location, err := scanLocation(s.queryRow(ctx,
		`SELECT `+locationColumns+` FROM locations WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("location %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	return location, nil
}

// ListLocations retrieves all locations ordered by name.
func (s *PostgresStore) ListLocations(ctx context.Context) ([]models.Location, error) {
	rows, err := s.query(ctx,
		`SELECT `+locationColumns+` FROM locations ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	defer rows.Close()

	var locations []models.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate locations: %w", err)
	}
	return locations, nil
}

// UpdateLocation writes the full location record back.
func (s *PostgresStore) UpdateLocation(ctx context.Context, location *models.Location) error {
	location.UpdatedAt = time.Now().Unix()

	res, err := s.exec(ctx,
		`UPDATE locations SET name = ?, address = ?, city = ?, country = ?,
		 description = ?, map_url = ?, updated_at = ? WHERE id = ?`,
		location.Name, nullStr(location.Address), nullStr(location.City),
		nullStr(location.Country), nullStr(location.Description), nullStr(location.MapURL),
		location.UpdatedAt, location.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update location: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("location %s: %w", location.ID, storage.ErrNotFound)
	}
	return nil
}

// DeleteLocation removes a location by ID. Events and activities referencing
// it keep existing with their location cleared.
func (s *PostgresStore) DeleteLocation(ctx context.Context, id string) error {
	res, err := s.exec(ctx, "DELETE FROM locations WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("location %s: %w", id, storage.ErrNotFound)
	}
	return nil
}
