package service

import (
	"context"
	"math"
	"testing"

	"github.com/hmorales/wedplan/internal/models"
	"github.com/hmorales/wedplan/internal/result"
)

func TestCreateRoomTypeSubsidyValidation(t *testing.T) {
	store := newTestStore(t)
	svc := NewAccommodationService(store, testLogger())
	ctx := context.Background()

	hotel, rerr := svc.Create(ctx, &models.CreateAccommodationInput{Name: "Casa del Mar"})
	if rerr != nil {
		t.Fatalf("Create failed: %v", rerr)
	}

	_, rerr = svc.CreateRoomType(ctx, &models.CreateRoomTypeInput{
		AccommodationID:     hotel.ID,
		Name:                "Suite",
		Capacity:            2,
		TotalRooms:          3,
		PricePerNight:       200,
		HostSubsidyPerNight: fptr(250),
	})
	if rerr == nil || rerr.Code != result.CodeValidation {
		t.Errorf("Expected VALIDATION_ERROR for subsidy > price, got %v", rerr)
	}
}

func TestAssignRoomRejectsInvertedDates(t *testing.T) {
	store := newTestStore(t)
	svc := NewAccommodationService(store, testLogger())
	ctx := context.Background()

	hotel, _ := svc.Create(ctx, &models.CreateAccommodationInput{Name: "Casa del Mar"})
	room, rerr := svc.CreateRoomType(ctx, &models.CreateRoomTypeInput{
		AccommodationID: hotel.ID,
		Name:            "Double",
		Capacity:        2,
		TotalRooms:      5,
		PricePerNight:   180,
	})
	if rerr != nil {
		t.Fatalf("CreateRoomType failed: %v", rerr)
	}

	guest := &models.Guest{
		GroupID: "g1", FirstName: "Alice", LastName: "Smith",
		AgeType: models.AgeAdult, GuestType: models.GuestWedding,
	}
	if err := store.CreateGuest(ctx, guest); err != nil {
		t.Fatalf("CreateGuest failed: %v", err)
	}

	for _, tc := range []struct {
		name              string
		checkIn, checkOut string
	}{
		{"checkout before checkin", "2026-06-05", "2026-06-01"},
		{"same day", "2026-06-01", "2026-06-01"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, rerr := svc.AssignRoom(ctx, &models.CreateRoomAssignmentInput{
				RoomTypeID: room.ID,
				GuestID:    guest.ID,
				CheckIn:    tc.checkIn,
				CheckOut:   tc.checkOut,
			})
			if rerr == nil || rerr.Code != result.CodeValidation {
				t.Errorf("Expected VALIDATION_ERROR, got %v", rerr)
			}
		})
	}
}

func TestAssignRoomDuplicateIsConflict(t *testing.T) {
	store := newTestStore(t)
	svc := NewAccommodationService(store, testLogger())
	ctx := context.Background()

	hotel, _ := svc.Create(ctx, &models.CreateAccommodationInput{Name: "Casa del Mar"})
	room, _ := svc.CreateRoomType(ctx, &models.CreateRoomTypeInput{
		AccommodationID: hotel.ID, Name: "Double", Capacity: 2, TotalRooms: 5, PricePerNight: 180,
	})

	guest := &models.Guest{
		GroupID: "g1", FirstName: "Bob", LastName: "Jones",
		AgeType: models.AgeAdult, GuestType: models.GuestWedding,
	}
	if err := store.CreateGuest(ctx, guest); err != nil {
		t.Fatalf("CreateGuest failed: %v", err)
	}

	in := &models.CreateRoomAssignmentInput{
		RoomTypeID: room.ID, GuestID: guest.ID,
		CheckIn: "2026-06-01", CheckOut: "2026-06-05",
	}
	if _, rerr := svc.AssignRoom(ctx, in); rerr != nil {
		t.Fatalf("AssignRoom failed: %v", rerr)
	}
	if _, rerr := svc.AssignRoom(ctx, in); rerr == nil || rerr.Code != result.CodeConflict {
		t.Errorf("Expected CONFLICT, got %v", rerr)
	}
}

func TestCalculateRoomCost(t *testing.T) {
	store := newTestStore(t)
	svc := NewAccommodationService(store, testLogger())
	ctx := context.Background()

	hotel, _ := svc.Create(ctx, &models.CreateAccommodationInput{Name: "Casa del Mar"})
	room, rerr := svc.CreateRoomType(ctx, &models.CreateRoomTypeInput{
		AccommodationID:     hotel.ID,
		Name:                "Ocean View",
		Capacity:            2,
		TotalRooms:          5,
		PricePerNight:       200,
		HostSubsidyPerNight: fptr(50),
	})
	if rerr != nil {
		t.Fatalf("CreateRoomType failed: %v", rerr)
	}

	cost, rerr := svc.CalculateRoomCost(ctx, &models.RoomCostInput{
		RoomTypeID: room.ID,
		CheckIn:    "2024-06-01",
		CheckOut:   "2024-06-05",
	})
	if rerr != nil {
		t.Fatalf("CalculateRoomCost failed: %v", rerr)
	}
	if cost.NumberOfNights != 4 {
		t.Errorf("Got %d nights, want 4", cost.NumberOfNights)
	}
	if math.Abs(cost.TotalCost-800) > 0.01 {
		t.Errorf("Got total %.2f, want 800", cost.TotalCost)
	}
	if math.Abs(cost.TotalSubsidy-200) > 0.01 {
		t.Errorf("Got subsidy %.2f, want 200", cost.TotalSubsidy)
	}
	if math.Abs(cost.GuestCost-600) > 0.01 {
		t.Errorf("Got guest cost %.2f, want 600", cost.GuestCost)
	}
}

func TestCalculateRoomCostMissingRoomType(t *testing.T) {
	svc := NewAccommodationService(newTestStore(t), testLogger())

	_, rerr := svc.CalculateRoomCost(context.Background(), &models.RoomCostInput{
		RoomTypeID: "no-such-room",
		CheckIn:    "2024-06-01",
		CheckOut:   "2024-06-05",
	})
	if rerr == nil || rerr.Code != result.CodeNotFound {
		t.Errorf("Expected NOT_FOUND, got %v", rerr)
	}
}
