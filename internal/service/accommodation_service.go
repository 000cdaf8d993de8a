package service

import (
	"context"
	"log/slog"

	"github.com/hmorales/wedplan/internal/calculator"
	"github.com/hmorales/wedplan/internal/models"
	"github.com/hmorales/wedplan/internal/result"
	"github.com/hmorales/wedplan/internal/sanitize"
	"github.com/hmorales/wedplan/internal/storage"
)

// AccommodationService manages accommodations, room types, room assignments,
// and derived room costs.
type AccommodationService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewAccommodationService creates a new accommodation service.
func NewAccommodationService(store storage.Store, logger *slog.Logger) *AccommodationService {
	return &AccommodationService{store: store, logger: logger}
}

// Create validates and persists a new accommodation.
func (s *AccommodationService) Create(ctx context.Context, in *models.CreateAccommodationInput) (accommodation *models.Accommodation, rerr *result.Error) {
	defer result.Recover(&rerr)

	if in.Name == "" {
		return nil, result.Issues([]result.Issue{{Field: "name", Message: "name is required"}})
	}

	accommodation = &models.Accommodation{
		Name:        in.Name,
		Address:     in.Address,
		Description: sanitize.TextPtr(in.Description),
		WebsiteURL:  in.WebsiteURL,
	}
	if err := s.store.CreateAccommodation(ctx, accommodation); err != nil {
		s.logger.Error("Failed to create accommodation", "error", err)
		return nil, result.FromStore(err, "Accommodation not found")
	}

	s.logger.Info("Accommodation created", "accommodation_id", accommodation.ID, "name", accommodation.Name)
	return accommodation, nil
}

// Get retrieves an accommodation by ID.
func (s *AccommodationService) Get(ctx context.Context, id string) (accommodation *models.Accommodation, rerr *result.Error) {
	defer result.Recover(&rerr)

	accommodation, err := s.store.GetAccommodation(ctx, id)
	if err != nil {
		return nil, result.FromStore(err, "Accommodation not found")
	}
	return accommodation, nil
}

// List retrieves all accommodations.
func (s *AccommodationService) List(ctx context.Context) (accommodations []models.Accommodation, rerr *result.Error) {
	defer result.Recover(&rerr)

	accommodations, err := s.store.ListAccommodations(ctx)
	if err != nil {
		return nil, result.FromStore(err, "Accommodations not found")
	}
	return accommodations, nil
}

// Update applies a partial edit to an existing accommodation.
func (s *AccommodationService) Update(ctx context.Context, id string, in *models.UpdateAccommodationInput) (accommodation *models.Accommodation, rerr *result.Error) {
	defer result.Recover(&rerr)

	accommodation, err := s.store.GetAccommodation(ctx, id)
	if err != nil {
		return nil, result.FromStore(err, "Accommodation not found")
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, result.Issues([]result.Issue{{Field: "name", Message: "name cannot be empty"}})
		}
		accommodation.Name = *in.Name
	}
	if in.Address != nil {
		accommodation.Address = in.Address.Value
	}
	if in.Description != nil {
		accommodation.Description = sanitize.TextPtr(in.Description.Value)
	}
	if in.WebsiteURL != nil {
		accommodation.WebsiteURL = in.WebsiteURL.Value
	}

	if err := s.store.UpdateAccommodation(ctx, accommodation); err != nil {
		return nil, result.FromStore(err, "Accommodation not found")
	}
	return accommodation, nil
}

// Delete removes an accommodation by ID along with its room types.
func (s *AccommodationService) Delete(ctx context.Context, id string) (rerr *result.Error) {
	defer result.Recover(&rerr)

	if err := s.store.DeleteAccommodation(ctx, id); err != nil {
		return result.FromStore(err, "Accommodation not found")
	}
	s.logger.Info("Accommodation deleted", "accommodation_id", id)
	return nil
}

// CreateRoomType validates and persists a room type under an accommodation.
func (s *AccommodationService) CreateRoomType(ctx context.Context, in *models.CreateRoomTypeInput) (roomType *models.RoomType, rerr *result.Error) {
	defer result.Recover(&rerr)

	var issues []result.Issue
	if in.AccommodationID == "" {
		issues = append(issues, result.Issue{Field: "accommodationId", Message: "accommodationId is required"})
	}
	if in.Name == "" {
		issues = append(issues, result.Issue{Field: "name", Message: "name is required"})
	}
	if in.Capacity < 1 {
		issues = append(issues, result.Issue{Field: "capacity", Message: "capacity must be at least 1"})
	}
	if in.TotalRooms < 1 {
		issues = append(issues, result.Issue{Field: "totalRooms", Message: "totalRooms must be at least 1"})
	}
	if in.PricePerNight < 0 {
		issues = append(issues, result.Issue{Field: "pricePerNight", Message: "pricePerNight cannot be negative"})
	}
	if in.HostSubsidyPerNight != nil {
		if *in.HostSubsidyPerNight < 0 {
			issues = append(issues, result.Issue{Field: "hostSubsidyPerNight", Message: "hostSubsidyPerNight cannot be negative"})
		} else if *in.HostSubsidyPerNight > in.PricePerNight {
			issues = append(issues, result.Issue{Field: "hostSubsidyPerNight", Message: "hostSubsidyPerNight cannot exceed pricePerNight"})
		}
	}
	if len(issues) > 0 {
		return nil, result.Issues(issues)
	}

	if _, err := s.store.GetAccommodation(ctx, in.AccommodationID); err != nil {
		return nil, result.FromStore(err, "Accommodation not found")
	}

	roomType = &models.RoomType{
		AccommodationID:     in.AccommodationID,
		Name:                in.Name,
		Capacity:            in.Capacity,
		TotalRooms:          in.TotalRooms,
		PricePerNight:       in.PricePerNight,
		HostSubsidyPerNight: in.HostSubsidyPerNight,
	}
	if err := s.store.CreateRoomType(ctx, roomType); err != nil {
		s.logger.Error("Failed to create room type", "error", err)
		return nil, result.FromStore(err, "Room type not found")
	}

	s.logger.Info("Room type created", "room_type_id", roomType.ID, "accommodation_id", roomType.AccommodationID)
	return roomType, nil
}

// ListRoomTypes retrieves the room types of an accommodation.
func (s *AccommodationService) ListRoomTypes(ctx context.Context, accommodationID string) (roomTypes []models.RoomType, rerr *result.Error) {
	defer result.Recover(&rerr)

	if _, err := s.store.GetAccommodation(ctx, accommodationID); err != nil {
		return nil, result.FromStore(err, "Accommodation not found")
	}

	roomTypes, err := s.store.ListRoomTypes(ctx, accommodationID)
	if err != nil {
		return nil, result.FromStore(err, "Room types not found")
	}
	return roomTypes, nil
}

// DeleteRoomType removes a room type along with its assignments.
func (s *AccommodationService) DeleteRoomType(ctx context.Context, id string) (rerr *result.Error) {
	defer result.Recover(&rerr)

	if err := s.store.DeleteRoomType(ctx, id); err != nil {
		return result.FromStore(err, "Room type not found")
	}
	s.logger.Info("Room type deleted", "room_type_id", id)
	return nil
}

// AssignRoom books a guest into a room type. The stay must have a strictly
// positive length and the guest must not already hold a booking for the room
// type (conflict).
func (s *AccommodationService) AssignRoom(ctx context.Context, in *models.CreateRoomAssignmentInput) (assignment *models.RoomAssignment, rerr *result.Error) {
	defer result.Recover(&rerr)

	var issues []result.Issue
	if in.RoomTypeID == "" {
		issues = append(issues, result.Issue{Field: "roomTypeId", Message: "roomTypeId is required"})
	}
	if in.GuestID == "" {
		issues = append(issues, result.Issue{Field: "guestId", Message: "guestId is required"})
	}
	if len(issues) > 0 {
		return nil, result.Issues(issues)
	}

	if _, err := calculator.Nights(in.CheckIn, in.CheckOut); err != nil {
		return nil, result.Validation(err.Error(), []result.Issue{
			{Field: "checkOut", Message: "checkOut must be after checkIn"},
		})
	}

	if _, err := s.store.GetRoomType(ctx, in.RoomTypeID); err != nil {
		return nil, result.FromStore(err, "Room type not found")
	}
	if _, err := s.store.GetGuest(ctx, in.GuestID); err != nil {
		return nil, result.FromStore(err, "Guest not found")
	}

	assignment = &models.RoomAssignment{
		RoomTypeID: in.RoomTypeID,
		GuestID:    in.GuestID,
		CheckIn:    in.CheckIn,
		CheckOut:   in.CheckOut,
	}
	if err := s.store.CreateRoomAssignment(ctx, assignment); err != nil {
		s.logger.Error("Failed to assign room", "error", err)
		return nil, result.FromStore(err, "Room assignment not found")
	}

	s.logger.Info("Room assigned",
		"assignment_id", assignment.ID, "room_type_id", assignment.RoomTypeID, "guest_id", assignment.GuestID)
	return assignment, nil
}

// ListRoomAssignments retrieves the assignments for a room type.
func (s *AccommodationService) ListRoomAssignments(ctx context.Context, roomTypeID string) (assignments []models.RoomAssignment, rerr *result.Error) {
	defer result.Recover(&rerr)

	if _, err := s.store.GetRoomType(ctx, roomTypeID); err != nil {
		return nil, result.FromStore(err, "Room type not found")
	}

	assignments, err := s.store.ListRoomAssignments(ctx, roomTypeID)
	if err != nil {
		return nil, result.FromStore(err, "Room assignments not found")
	}
	return assignments, nil
}

// UnassignRoom removes a room assignment by ID.
func (s *AccommodationService) UnassignRoom(ctx context.Context, id string) (rerr *result.Error) {
	defer result.Recover(&rerr)

	if err := s.store.DeleteRoomAssignment(ctx, id); err != nil {
		return result.FromStore(err, "Room assignment not found")
	}
	s.logger.Info("Room assignment deleted", "assignment_id", id)
	return nil
}

// CalculateRoomCost derives the cost of a stay in a room type.
func (s *AccommodationService) CalculateRoomCost(ctx context.Context, in *models.RoomCostInput) (cost *models.RoomCost, rerr *result.Error) {
	defer result.Recover(&rerr)

	roomType, err := s.store.GetRoomType(ctx, in.RoomTypeID)
	if err != nil {
		return nil, result.FromStore(err, "Room type not found")
	}

	cost, err = calculator.RoomCost(roomType, in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, result.Validation(err.Error(), []result.Issue{
			{Field: "checkOut", Message: "checkOut must be after checkIn"},
		})
	}
	return cost, nil
}
