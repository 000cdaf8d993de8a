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

const eventColumns = `id, name, description, date, start_time, end_time, location_id, attire,
	created_at, updated_at`

func scanEvent(scanner interface{ Scan(...any) error }) (*models.Event, error) {
	e := &models.Event{}
	var description, startTime, endTime, locationID, attire sql.NullString
	err := scanner.Scan(
		&e.ID, &e.Name, &description, &e.Date, &startTime, &endTime, &locationID, &attire,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Description = strPtr(description)
	e.StartTime = strPtr(startTime)
	e.EndTime = strPtr(endTime)
	e.LocationID = strPtr(locationID)
	e.Attire = strPtr(attire)
	return e, nil
}

// CreateEvent persists a new event, assigning ID and timestamps.
func (s *PostgresStore) CreateEvent(ctx context.Context, event *models.Event) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	event.CreatedAt = now
	event.UpdatedAt = now

	_, err := s.exec(ctx,
		`INSERT INTO events (`+eventColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		event.ID, event.Name, nullStr(event.Description), event.Date,
		nullStr(event.StartTime), nullStr(event.EndTime), nullStr(event.LocationID),
		nullStr(event.Attire), event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// GetEvent retrieves an event by ID.
func (s *PostgresStore) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	event, err := scanEvent(s.queryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("event %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

// ListEvents retrieves all events in chronological order.
func (s *PostgresStore) ListEvents(ctx context.Context) ([]models.Event, error) {
	rows, err := s.query(ctx,
		`SELECT `+eventColumns+` FROM events ORDER BY date, start_time`)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}
	return events, nil
}

// UpdateEvent writes the full event record back.
func (s *PostgresStore) UpdateEvent(ctx context.Context, event *models.Event) error {
	event.UpdatedAt = time.Now().Unix()

	res, err := s.exec(ctx,
		`UPDATE events SET name = ?, description = ?, date = ?, start_time = ?,
		 end_time = ?, location_id = ?, attire = ?, updated_at = ? WHERE id = ?`,
		event.Name, nullStr(event.Description), event.Date,
		nullStr(event.StartTime), nullStr(event.EndTime), nullStr(event.LocationID),
		nullStr(event.Attire), event.UpdatedAt, event.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("event %s: %w", event.ID, storage.ErrNotFound)
	}
	return nil
}

// DeleteEvent removes an event by ID.
func (s *PostgresStore) DeleteEvent(ctx context.Context, id string) error {
	res, err := s.exec(ctx, "DELETE FROM events WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("event %s: %w", id, storage.ErrNotFound)
	}
	return nil
}
