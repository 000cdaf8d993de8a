package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hmorales/wedplan/internal/models"
	"github.com/hmorales/wedplan/internal/storage"
)

const guestColumns = `id, group_id, first_name, last_name, email, phone, age_type, guest_type,
	dietary_restrictions, plus_one_name, plus_one_attending, arrival_date, departure_date,
	airport_code, flight_number, invitation_sent, invitation_sent_date, rsvp_deadline, notes,
	created_at, updated_at`

func scanGuest(scanner interface{ Scan(...any) error }) (*models.Guest, error) {
	g := &models.Guest{}
	var email, phone, dietary, plusOne, arrival, departure, airport, flight, sentDate, deadline, notes sql.NullString
	err := scanner.Scan(
		&g.ID, &g.GroupID, &g.FirstName, &g.LastName, &email, &phone, &g.AgeType, &g.GuestType,
		&dietary, &plusOne, &g.PlusOneAttending, &arrival, &departure,
		&airport, &flight, &g.InvitationSent, &sentDate, &deadline, &notes,
		&g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	g.Email = strPtr(email)
	g.Phone = strPtr(phone)
	g.DietaryRestrictions = strPtr(dietary)
	g.PlusOneName = strPtr(plusOne)
	g.ArrivalDate = strPtr(arrival)
	g.DepartureDate = strPtr(departure)
	g.AirportCode = strPtr(airport)
	g.FlightNumber = strPtr(flight)
	g.InvitationSentDate = strPtr(sentDate)
	g.RSVPDeadline = strPtr(deadline)
	g.Notes = strPtr(notes)
	return g, nil
}

// CreateGuest persists a new guest, assigning ID and timestamps.
func (s *SQLiteStore) CreateGuest(ctx context.Context, guest *models.Guest) error {
	if guest.ID == "" {
		guest.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	guest.CreatedAt = now
	guest.UpdatedAt = now

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO guests (`+guestColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		guest.ID, guest.GroupID, guest.FirstName, guest.LastName,
		nullStr(guest.Email), nullStr(guest.Phone), guest.AgeType, guest.GuestType,
		nullStr(guest.DietaryRestrictions), nullStr(guest.PlusOneName), guest.PlusOneAttending,
		nullStr(guest.ArrivalDate), nullStr(guest.DepartureDate),
		nullStr(guest.AirportCode), nullStr(guest.FlightNumber),
		guest.InvitationSent, nullStr(guest.InvitationSentDate), nullStr(guest.RSVPDeadline),
		nullStr(guest.Notes), guest.CreatedAt, guest.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert guest: %w", err)
	}
	return nil
}

// GetGuest retrieves a guest by ID.
func (s *SQLiteStore) GetGuest(ctx context.Context, id string) (*models.Guest, error) {
	guest, err := scanGuest(s.db.QueryRowContext(ctx,
		`SELECT `+guestColumns+` FROM guests WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("guest %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get guest: %w", err)
	}
	return guest, nil
}

// ListGuests retrieves all guests ordered by last then first name.
func (s *SQLiteStore) ListGuests(ctx context.Context) ([]models.Guest, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+guestColumns+` FROM guests ORDER BY last_name, first_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}
	defer rows.Close()

	var guests []models.Guest
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan guest: %w", err)
		}
		guests = append(guests, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate guests: %w", err)
	}
	return guests, nil
}

// UpdateGuest writes the full guest record back.
func (s *SQLiteStore) UpdateGuest(ctx context.Context, guest *models.Guest) error {
	guest.UpdatedAt = time.Now().Unix()

	res, err := s.db.ExecContext(ctx,
		`UPDATE guests SET group_id = ?, first_name = ?, last_name = ?, email = ?, phone = ?,
		 age_type = ?, guest_type = ?, dietary_restrictions = ?, plus_one_name = ?,
		 plus_one_attending = ?, arrival_date = ?, departure_date = ?, airport_code = ?,
		 flight_number = ?, invitation_sent = ?, invitation_sent_date = ?, rsvp_deadline = ?,
		 notes = ?, updated_at = ? WHERE id = ?`,
		guest.GroupID, guest.FirstName, guest.LastName,
		nullStr(guest.Email), nullStr(guest.Phone), guest.AgeType, guest.GuestType,
		nullStr(guest.DietaryRestrictions), nullStr(guest.PlusOneName), guest.PlusOneAttending,
		nullStr(guest.ArrivalDate), nullStr(guest.DepartureDate),
		nullStr(guest.AirportCode), nullStr(guest.FlightNumber),
		guest.InvitationSent, nullStr(guest.InvitationSentDate), nullStr(guest.RSVPDeadline),
		nullStr(guest.Notes), guest.UpdatedAt, guest.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update guest: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("guest %s: %w", guest.ID, storage.ErrNotFound)
	}
	return nil
}

// DeleteGuest removes a guest by ID.
func (s *SQLiteStore) DeleteGuest(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM guests WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete guest: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("guest %s: %w", id, storage.ErrNotFound)
	}
	return nil
}
