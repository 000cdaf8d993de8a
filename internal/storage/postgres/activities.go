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

const activityColumns = `id, name, description, date, start_time, end_time, location_id,
	cost_per_person, host_subsidy, created_at, updated_at`

func scanActivity(scanner interface{ Scan(...any) error }) (*models.Activity, error) {
	a := &models.Activity{}
	var description, date, startTime, endTime, locationID sql.NullString
	var costPerPerson, hostSubsidy sql.NullFloat64
	err := scanner.Scan(
		&a.ID, &a.Name, &description, &date, &startTime, &endTime, &locationID,
		&costPerPerson, &hostSubsidy, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.Description = strPtr(description)
	a.Date = strPtr(date)
	a.StartTime = strPtr(startTime)
	a.EndTime = strPtr(endTime)
	a.LocationID = strPtr(locationID)
	a.CostPerPerson = floatPtr(costPerPerson)
	a.HostSubsidy = floatPtr(hostSubsidy)
	return a, nil
}

// CreateActivity persists a new activity, assigning ID and timestamps.
func (s *PostgresStore) CreateActivity(ctx context.Context, activity *models.Activity) error {
	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	activity.CreatedAt = now
	activity.UpdatedAt = now

	_, err := s.exec(ctx,
		`INSERT INTO activities (`+activityColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		activity.ID, activity.Name, nullStr(activity.Description), nullStr(activity.Date),
		nullStr(activity.StartTime), nullStr(activity.EndTime), nullStr(activity.LocationID),
		nullFloat(activity.CostPerPerson), nullFloat(activity.HostSubsidy),
		activity.CreatedAt, activity.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert activity: %w", err)
	}
	return nil
}

// GetActivity retrieves an activity by ID.
func (s *PostgresStore) GetActivity(ctx context.Context, id string) (*models.Activity, error) {
	activity, err := scanActivity(s.queryRow(ctx,
		`SELECT `+activityColumns+` FROM activities WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("activity %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}
	return activity, nil
}

// ListActivities retrieves all activities ordered by date.
func (s *PostgresStore) ListActivities(ctx context.Context) ([]models.Activity, error) {
	return s.queryActivities(ctx,
		`SELECT `+activityColumns+` FROM activities ORDER BY date, start_time`)
}

// ListPricedActivities retrieves activities with a cost per person set.
func (s *PostgresStore) ListPricedActivities(ctx context.Context) ([]models.Activity, error) {
	return s.queryActivities(ctx,
		`SELECT `+activityColumns+` FROM activities WHERE cost_per_person IS NOT NULL ORDER BY date, start_time`)
}

// ListSubsidizedActivities retrieves activities with a host subsidy set.
func (s *PostgresStore) ListSubsidizedActivities(ctx context.Context) ([]models.Activity, error) {
	return s.queryActivities(ctx,
		`SELECT `+activityColumns+` FROM activities WHERE host_subsidy IS NOT NULL ORDER BY date, start_time`)
}

func (s *PostgresStore) queryActivities(ctx context.Context, query string, args ...any) ([]models.Activity, error) {
	rows, err := s.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate activities: %w", err)
	}
	return activities, nil
}

// UpdateActivity writes the full activity record back.
func (s *PostgresStore) UpdateActivity(ctx context.Context, activity *models.Activity) error {
	activity.UpdatedAt = time.Now().Unix()

	res, err := s.exec(ctx,
		`UPDATE activities SET name = ?, description = ?, date = ?, start_time = ?,
		 end_time = ?, location_id = ?, cost_per_person = ?, host_subsidy = ?,
		 updated_at = ? WHERE id = ?`,
		activity.Name, nullStr(activity.Description), nullStr(activity.Date),
		nullStr(activity.StartTime), nullStr(activity.EndTime), nullStr(activity.LocationID),
		nullFloat(activity.CostPerPerson), nullFloat(activity.HostSubsidy),
		activity.UpdatedAt, activity.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update activity: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("activity %s: %w", activity.ID, storage.ErrNotFound)
	}
	return nil
}

// DeleteActivity removes an activity by ID. RSVPs for it cascade.
func (s *PostgresStore) DeleteActivity(ctx context.Context, id string) error {
	res, err := s.exec(ctx, "DELETE FROM activities WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("activity %s: %w", id, storage.ErrNotFound)
	}
	return nil
}
