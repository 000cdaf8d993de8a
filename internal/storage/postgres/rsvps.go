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

const rsvpColumns = `id, guest_id, activity_id, status, guest_count, notes, responded_at,
	created_at, updated_at`

func scanRSVP(scanner interface{ Scan(...any) error }) (*models.RSVP, error) {
	r := &models.RSVP{}
	var guestCount, respondedAt sql.NullInt64
	var notes sql.NullString
	err := scanner.Scan(
		&r.ID, &r.GuestID, &r.ActivityID, &r.Status, &guestCount, &notes, &respondedAt,
		&r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	r.GuestCount = intPtr(guestCount)
	r.Notes = strPtr(notes)
	r.RespondedAt = int64Ptr(respondedAt)
	return r, nil
}

// CreateRSVP persists a new RSVP, assigning ID and timestamps. Returns
// storage.ErrConflict when the guest already has an RSVP for the activity.
func (s *PostgresStore) CreateRSVP(ctx context.Context, rsvp *models.RSVP) error {
	if rsvp.ID == "" {
		rsvp.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	rsvp.CreatedAt = now
	rsvp.UpdatedAt = now

	_, err := s.exec(ctx,
		`INSERT INTO rsvps (`+rsvpColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rsvp.ID, rsvp.GuestID, rsvp.ActivityID, rsvp.Status,
		nullInt(rsvp.GuestCount), nullStr(rsvp.Notes), nullInt64(rsvp.RespondedAt),
		rsvp.CreatedAt, rsvp.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("guest %s already responded to activity %s: %w",
			rsvp.GuestID, rsvp.ActivityID, storage.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to insert rsvp: %w", err)
	}
	return nil
}

// GetRSVP retrieves an RSVP by ID.
func (s *PostgresStore) GetRSVP(ctx context.Context, id string) (*models.RSVP, error) {
	rsvp, err := scanRSVP(s.queryRow(ctx,
		`SELECT `+rsvpColumns+` FROM rsvps WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("rsvp %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get rsvp: %w", err)
	}
	return rsvp, nil
}

// ListRSVPsByActivity retrieves all RSVPs for an activity.
func (s *PostgresStore) ListRSVPsByActivity(ctx context.Context, activityID string) ([]models.RSVP, error) {
	rows, err := s.query(ctx,
		`SELECT `+rsvpColumns+` FROM rsvps WHERE activity_id = ? ORDER BY created_at`,
		activityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rsvps: %w", err)
	}
	defer rows.Close()

	var rsvps []models.RSVP
	for rows.Next() {
		r, err := scanRSVP(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rsvp: %w", err)
		}
		rsvps = append(rsvps, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rsvps: %w", err)
	}
	return rsvps, nil
}

// UpdateRSVP writes the full RSVP record back.
func (s *PostgresStore) UpdateRSVP(ctx context.Context, rsvp *models.RSVP) error {
	rsvp.UpdatedAt = time.Now().Unix()

	res, err := s.exec(ctx,
		`UPDATE rsvps SET status = ?, guest_count = ?, notes = ?, responded_at = ?,
		 updated_at = ? WHERE id = ?`,
		rsvp.Status, nullInt(rsvp.GuestCount), nullStr(rsvp.Notes),
		nullInt64(rsvp.RespondedAt), rsvp.UpdatedAt, rsvp.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update rsvp: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("rsvp %s: %w", rsvp.ID, storage.ErrNotFound)
	}
	return nil
}

// DeleteRSVP removes an RSVP by ID.
func (s *PostgresStore) DeleteRSVP(ctx context.Context, id string) error {
	res, err := s.exec(ctx, "DELETE FROM rsvps WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete rsvp: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("rsvp %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

// CountAttending returns the number of "attending" RSVPs for an activity.
func (s *PostgresStore) CountAttending(ctx context.Context, activityID string) (int, error) {
	var count int
	err := s.queryRow(ctx,
		`SELECT COUNT(*) FROM rsvps WHERE activity_id = ? AND status = ?`,
		activityID, models.RSVPAttending).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attending rsvps: %w", err)
	}
	return count, nil
}
