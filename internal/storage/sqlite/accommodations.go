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

const accommodationColumns = `id, name, address, description, website_url, created_at, updated_at`

func scanAccommodation(scanner interface{ Scan(...any) error }) (*models.Accommodation, error) {
	a := &models.Accommodation{}
	var address, description, websiteURL sql.NullString
	err := scanner.Scan(
		&a.ID, &a.Name, &address, &description, &websiteURL, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.Address = strPtr(address)
	a.Description = strPtr(description)
	a.WebsiteURL = strPtr(websiteURL)
	return a, nil
}

// CreateAccommodation persists a new accommodation, assigning ID and timestamps.
func (s *SQLiteStore) CreateAccommodation(ctx context.Context, accommodation *models.Accommodation) error {
	if accommodation.ID == "" {
		accommodation.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	accommodation.CreatedAt = now
	accommodation.UpdatedAt = now

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO accommodations (`+accommodationColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		accommodation.ID, accommodation.Name, nullStr(accommodation.Address),
		nullStr(accommodation.Description), nullStr(accommodation.WebsiteURL),
		accommodation.CreatedAt, accommodation.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert accommodation: %w", err)
	}
	return nil
}

// GetAccommodation retrieves an accommodation by ID.
func (s *SQLiteStore) GetAccommodation(ctx context.Context, id string) (*models.Accommodation, error) {
	accommodation, err := scanAccommodation(s.db.QueryRowContext(ctx,
		`SELECT `+accommodationColumns+` FROM accommodations WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("accommodation %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get accommodation: %w", err)
	}
	return accommodation, nil
}

// ListAccommodations retrieves all accommodations ordered by name.
func (s *SQLiteStore) ListAccommodations(ctx context.Context) ([]models.Accommodation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+accommodationColumns+` FROM accommodations ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list accommodations: %w", err)
	}
	defer rows.Close()

	var accommodations []models.Accommodation
	for rows.Next() {
		a, err := scanAccommodation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan accommodation: %w", err)
		}
		accommodations = append(accommodations, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accommodations: %w", err)
	}
	return accommodations, nil
}

// UpdateAccommodation writes the full accommodation record back.
func (s *SQLiteStore) UpdateAccommodation(ctx context.Context, accommodation *models.Accommodation) error {
	accommodation.UpdatedAt = time.Now().Unix()

	res, err := s.db.ExecContext(ctx,
		`UPDATE accommodations SET name = ?, address = ?, description = ?,
		 website_url = ?, updated_at = ? WHERE id = ?`,
		accommodation.Name, nullStr(accommodation.Address), nullStr(accommodation.Description),
		nullStr(accommodation.WebsiteURL), accommodation.UpdatedAt, accommodation.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update accommodation: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("accommodation %s: %w", accommodation.ID, storage.ErrNotFound)
	}
	return nil
}

// DeleteAccommodation removes an accommodation by ID. Its room types and
// their assignments cascade.
func (s *SQLiteStore) DeleteAccommodation(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM accommodations WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete accommodation: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("accommodation %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

const roomTypeColumns = `id, accommodation_id, name, capacity, total_rooms, price_per_night,
	host_subsidy_per_night, created_at, updated_at`

func scanRoomType(scanner interface{ Scan(...any) error }) (*models.RoomType, error) {
	rt := &models.RoomType{}
	var subsidy sql.NullFloat64
	err := scanner.Scan(
		&rt.ID, &rt.AccommodationID, &rt.Name, &rt.Capacity, &rt.TotalRooms,
		&rt.PricePerNight, &subsidy, &rt.CreatedAt, &rt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rt.HostSubsidyPerNight = floatPtr(subsidy)
	return rt, nil
}

// CreateRoomType persists a new room type, assigning ID and timestamps.
func (s *SQLiteStore) CreateRoomType(ctx context.Context, roomType *models.RoomType) error {
	if roomType.ID == "" {
		roomType.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	roomType.CreatedAt = now
	roomType.UpdatedAt = now

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO room_types (`+roomTypeColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		roomType.ID, roomType.AccommodationID, roomType.Name, roomType.Capacity,
		roomType.TotalRooms, roomType.PricePerNight, nullFloat(roomType.HostSubsidyPerNight),
		roomType.CreatedAt, roomType.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert room type: %w", err)
	}
	return nil
}

// GetRoomType retrieves a room type by ID.
func (s *SQLiteStore) GetRoomType(ctx context.Context, id string) (*models.RoomType, error) {
	roomType, err := scanRoomType(s.db.QueryRowContext(ctx,
		`SELECT `+roomTypeColumns+` FROM room_types WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("room type %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get room type: %w", err)
	}
	return roomType, nil
}

// ListRoomTypes retrieves the room types of an accommodation ordered by name.
func (s *SQLiteStore) ListRoomTypes(ctx context.Context, accommodationID string) ([]models.RoomType, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+roomTypeColumns+` FROM room_types WHERE accommodation_id = ? ORDER BY name`,
		accommodationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list room types: %w", err)
	}
	defer rows.Close()

	var roomTypes []models.RoomType
	for rows.Next() {
		rt, err := scanRoomType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan room type: %w", err)
		}
		roomTypes = append(roomTypes, *rt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate room types: %w", err)
	}
	return roomTypes, nil
}

// DeleteRoomType removes a room type by ID. Its assignments cascade.
func (s *SQLiteStore) DeleteRoomType(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM room_types WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete room type: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("room type %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

const roomAssignmentColumns = `id, room_type_id, guest_id, check_in, check_out, created_at`

func scanRoomAssignment(scanner interface{ Scan(...any) error }) (*models.RoomAssignment, error) {
	ra := &models.RoomAssignment{}
	err := scanner.Scan(
		&ra.ID, &ra.RoomTypeID, &ra.GuestID, &ra.CheckIn, &ra.CheckOut, &ra.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return ra, nil
}

// CreateRoomAssignment books a guest into a room type. Returns
// storage.ErrConflict when the guest is already assigned to that room type.
func (s *SQLiteStore) CreateRoomAssignment(ctx context.Context, assignment *models.RoomAssignment) error {
	if assignment.ID == "" {
		assignment.ID = uuid.New().String()
	}
	assignment.CreatedAt = time.Now().Unix()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO room_assignments (`+roomAssignmentColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		assignment.ID, assignment.RoomTypeID, assignment.GuestID,
		assignment.CheckIn, assignment.CheckOut, assignment.CreatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("guest %s already assigned to room type %s: %w",
			assignment.GuestID, assignment.RoomTypeID, storage.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to insert room assignment: %w", err)
	}
	return nil
}

// GetRoomAssignment retrieves a room assignment by ID.
func (s *SQLiteStore) GetRoomAssignment(ctx context.Context, id string) (*models.RoomAssignment, error) {
	assignment, err := scanRoomAssignment(s.db.QueryRowContext(ctx,
		`SELECT `+roomAssignmentColumns+` FROM room_assignments WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("room assignment %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get room assignment: %w", err)
	}
	return assignment, nil
}

// ListRoomAssignments retrieves the assignments for a room type ordered by check-in.
func (s *SQLiteStore) ListRoomAssignments(ctx context.Context, roomTypeID string) ([]models.RoomAssignment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+roomAssignmentColumns+` FROM room_assignments WHERE room_type_id = ? ORDER BY check_in`,
		roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list room assignments: %w", err)
	}
	defer rows.Close()

	var assignments []models.RoomAssignment
	for rows.Next() {
		ra, err := scanRoomAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan room assignment: %w", err)
		}
		assignments = append(assignments, *ra)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate room assignments: %w", err)
	}
	return assignments, nil
}

// DeleteRoomAssignment removes a room assignment by ID.
func (s *SQLiteStore) DeleteRoomAssignment(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM room_assignments WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete room assignment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("room assignment %s: %w", id, storage.ErrNotFound)
	}
	return nil
}
