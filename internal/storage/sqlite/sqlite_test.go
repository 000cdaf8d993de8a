package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hmorales/wedplan/internal/models"
	"github.com/hmorales/wedplan/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "wedplan-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	dbPath := filepath.Join(tempDir, "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func strp(s string) *string { return &s }

func TestGuestStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateGuest generates ID and timestamps", func(t *testing.T) {
		guest := &models.Guest{
			GroupID:   "smith-family",
			FirstName: "Alice",
			LastName:  "Smith",
			AgeType:   models.AgeAdult,
			GuestType: models.GuestWedding,
			Email:     strp("alice@example.com"),
		}

		if err := store.CreateGuest(ctx, guest); err != nil {
			t.Fatalf("CreateGuest failed: %v", err)
		}

		if guest.ID == "" {
			t.Error("Expected guest ID to be generated")
		}
		if guest.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("GetGuest retrieves complete guest", func(t *testing.T) {
		original := &models.Guest{
			GroupID:             "jones-family",
			FirstName:           "Bob",
			LastName:            "Jones",
			AgeType:             models.AgeAdult,
			GuestType:           models.GuestWeddingParty,
			DietaryRestrictions: strp("vegetarian"),
			ArrivalDate:         strp("2026-05-14"),
			DepartureDate:       strp("2026-05-18"),
			InvitationSent:      true,
		}

		if err := store.CreateGuest(ctx, original); err != nil {
			t.Fatalf("CreateGuest failed: %v", err)
		}

		retrieved, err := store.GetGuest(ctx, original.ID)
		if err != nil {
			t.Fatalf("GetGuest failed: %v", err)
		}

		if retrieved.FirstName != "Bob" || retrieved.LastName != "Jones" {
			t.Errorf("Got name %s %s, want Bob Jones", retrieved.FirstName, retrieved.LastName)
		}
		if retrieved.DietaryRestrictions == nil || *retrieved.DietaryRestrictions != "vegetarian" {
			t.Errorf("Got dietary restrictions %v, want vegetarian", retrieved.DietaryRestrictions)
		}
		if retrieved.Email != nil {
			t.Errorf("Expected nil email, got %v", *retrieved.Email)
		}
		if !retrieved.InvitationSent {
			t.Error("Expected invitation sent to survive round trip")
		}
	})

	t.Run("GetGuest returns ErrNotFound for missing ID", func(t *testing.T) {
		_, err := store.GetGuest(ctx, "no-such-id")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("UpdateGuest persists edits", func(t *testing.T) {
		guest := &models.Guest{
			GroupID:   "lee-family",
			FirstName: "Carol",
			LastName:  "Lee",
			AgeType:   models.AgeAdult,
			GuestType: models.GuestWedding,
		}
		if err := store.CreateGuest(ctx, guest); err != nil {
			t.Fatalf("CreateGuest failed: %v", err)
		}

		guest.Phone = strp("+52 555 0100")
		guest.PlusOneAttending = true
		if err := store.UpdateGuest(ctx, guest); err != nil {
			t.Fatalf("UpdateGuest failed: %v", err)
		}

		retrieved, err := store.GetGuest(ctx, guest.ID)
		if err != nil {
			t.Fatalf("GetGuest failed: %v", err)
		}
		if retrieved.Phone == nil || *retrieved.Phone != "+52 555 0100" {
			t.Errorf("Got phone %v, want +52 555 0100", retrieved.Phone)
		}
		if !retrieved.PlusOneAttending {
			t.Error("Expected plus-one attending to be true")
		}
	})

	t.Run("UpdateGuest returns ErrNotFound for missing ID", func(t *testing.T) {
		err := store.UpdateGuest(ctx, &models.Guest{
			ID:        "no-such-id",
			GroupID:   "g",
			FirstName: "X",
			LastName:  "Y",
			AgeType:   models.AgeAdult,
			GuestType: models.GuestWedding,
		})
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("DeleteGuest removes the record", func(t *testing.T) {
		guest := &models.Guest{
			GroupID:   "doe-family",
			FirstName: "Dan",
			LastName:  "Doe",
			AgeType:   models.AgeChild,
			GuestType: models.GuestWedding,
		}
		if err := store.CreateGuest(ctx, guest); err != nil {
			t.Fatalf("CreateGuest failed: %v", err)
		}
		if err := store.DeleteGuest(ctx, guest.ID); err != nil {
			t.Fatalf("DeleteGuest failed: %v", err)
		}
		if _, err := store.GetGuest(ctx, guest.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound after delete, got %v", err)
		}
	})
}

func TestVendorStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	seed := []models.Vendor{
		{Name: "Luz Fotografia", Category: models.CategoryPhotography, PricingModel: models.PricingFlatRate, BaseCost: 2500, PaymentStatus: models.PaymentUnpaid},
		{Name: "Sabor Catering", Category: models.CategoryCatering, PricingModel: models.PricingPerPerson, BaseCost: 85, PaymentStatus: models.PaymentPartial, AmountPaid: 40},
		{Name: "Mariachi del Mar", Category: models.CategoryMusic, PricingModel: models.PricingHourly, BaseCost: 300, PaymentStatus: models.PaymentPaid, AmountPaid: 300},
	}
	for i := range seed {
		if err := store.CreateVendor(ctx, &seed[i]); err != nil {
			t.Fatalf("CreateVendor failed: %v", err)
		}
	}

	t.Run("ListVendors without filter returns all", func(t *testing.T) {
		vendors, err := store.ListVendors(ctx, models.VendorFilter{})
		if err != nil {
			t.Fatalf("ListVendors failed: %v", err)
		}
		if len(vendors) != 3 {
			t.Errorf("Got %d vendors, want 3", len(vendors))
		}
	})

	t.Run("ListVendors filters by category", func(t *testing.T) {
		vendors, err := store.ListVendors(ctx, models.VendorFilter{Category: models.CategoryCatering})
		if err != nil {
			t.Fatalf("ListVendors failed: %v", err)
		}
		if len(vendors) != 1 || vendors[0].Name != "Sabor Catering" {
			t.Errorf("Got %v, want only Sabor Catering", vendors)
		}
	})

	t.Run("ListVendors combines filters", func(t *testing.T) {
		vendors, err := store.ListVendors(ctx, models.VendorFilter{
			Category:      models.CategoryMusic,
			PaymentStatus: models.PaymentUnpaid,
		})
		if err != nil {
			t.Fatalf("ListVendors failed: %v", err)
		}
		if len(vendors) != 0 {
			t.Errorf("Got %d vendors, want 0", len(vendors))
		}
	})

	t.Run("CountVendorsByStatus", func(t *testing.T) {
		count, err := store.CountVendorsByStatus(ctx, models.PaymentPaid)
		if err != nil {
			t.Fatalf("CountVendorsByStatus failed: %v", err)
		}
		if count != 1 {
			t.Errorf("Got %d paid vendors, want 1", count)
		}

		total, err := store.CountVendors(ctx)
		if err != nil {
			t.Fatalf("CountVendors failed: %v", err)
		}
		if total != 3 {
			t.Errorf("Got %d vendors, want 3", total)
		}
	})

	t.Run("UpdateVendor persists payment fields", func(t *testing.T) {
		v := seed[0]
		v.AmountPaid = 2500
		v.PaymentStatus = models.PaymentPaid
		if err := store.UpdateVendor(ctx, &v); err != nil {
			t.Fatalf("UpdateVendor failed: %v", err)
		}

		retrieved, err := store.GetVendor(ctx, v.ID)
		if err != nil {
			t.Fatalf("GetVendor failed: %v", err)
		}
		if retrieved.PaymentStatus != models.PaymentPaid {
			t.Errorf("Got status %s, want paid", retrieved.PaymentStatus)
		}
		if retrieved.AmountPaid != 2500 {
			t.Errorf("Got amount paid %.2f, want 2500", retrieved.AmountPaid)
		}
	})
}

func TestActivityAndRSVPStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	guest := &models.Guest{
		GroupID:   "g1",
		FirstName: "Eve",
		LastName:  "Adams",
		AgeType:   models.AgeAdult,
		GuestType: models.GuestWedding,
	}
	if err := store.CreateGuest(ctx, guest); err != nil {
		t.Fatalf("CreateGuest failed: %v", err)
	}

	cost := 75.0
	subsidy := 25.0
	priced := &models.Activity{Name: "Snorkeling", CostPerPerson: &cost, HostSubsidy: &subsidy}
	free := &models.Activity{Name: "Beach Walk"}
	for _, a := range []*models.Activity{priced, free} {
		if err := store.CreateActivity(ctx, a); err != nil {
			t.Fatalf("CreateActivity failed: %v", err)
		}
	}

	t.Run("ListPricedActivities excludes free activities", func(t *testing.T) {
		activities, err := store.ListPricedActivities(ctx)
		if err != nil {
			t.Fatalf("ListPricedActivities failed: %v", err)
		}
		if len(activities) != 1 || activities[0].Name != "Snorkeling" {
			t.Errorf("Got %v, want only Snorkeling", activities)
		}
	})

	t.Run("ListSubsidizedActivities excludes unsubsidized", func(t *testing.T) {
		activities, err := store.ListSubsidizedActivities(ctx)
		if err != nil {
			t.Fatalf("ListSubsidizedActivities failed: %v", err)
		}
		if len(activities) != 1 || activities[0].Name != "Snorkeling" {
			t.Errorf("Got %v, want only Snorkeling", activities)
		}
	})

	t.Run("CreateRSVP rejects duplicate guest and activity pair", func(t *testing.T) {
		rsvp := &models.RSVP{
			GuestID:    guest.ID,
			ActivityID: priced.ID,
			Status:     models.RSVPAttending,
		}
		if err := store.CreateRSVP(ctx, rsvp); err != nil {
			t.Fatalf("CreateRSVP failed: %v", err)
		}

		dup := &models.RSVP{
			GuestID:    guest.ID,
			ActivityID: priced.ID,
			Status:     models.RSVPDeclined,
		}
		if err := store.CreateRSVP(ctx, dup); !errors.Is(err, storage.ErrConflict) {
			t.Errorf("Expected ErrConflict, got %v", err)
		}
	})

	t.Run("CountAttending counts only attending", func(t *testing.T) {
		other := &models.Guest{
			GroupID:   "g2",
			FirstName: "Frank",
			LastName:  "Berg",
			AgeType:   models.AgeAdult,
			GuestType: models.GuestWedding,
		}
		if err := store.CreateGuest(ctx, other); err != nil {
			t.Fatalf("CreateGuest failed: %v", err)
		}
		declined := &models.RSVP{
			GuestID:    other.ID,
			ActivityID: priced.ID,
			Status:     models.RSVPDeclined,
		}
		if err := store.CreateRSVP(ctx, declined); err != nil {
			t.Fatalf("CreateRSVP failed: %v", err)
		}

		count, err := store.CountAttending(ctx, priced.ID)
		if err != nil {
			t.Fatalf("CountAttending failed: %v", err)
		}
		if count != 1 {
			t.Errorf("Got %d attending, want 1", count)
		}
	})

	t.Run("DeleteActivity cascades RSVPs", func(t *testing.T) {
		if err := store.DeleteActivity(ctx, priced.ID); err != nil {
			t.Fatalf("DeleteActivity failed: %v", err)
		}
		rsvps, err := store.ListRSVPsByActivity(ctx, priced.ID)
		if err != nil {
			t.Fatalf("ListRSVPsByActivity failed: %v", err)
		}
		if len(rsvps) != 0 {
			t.Errorf("Got %d rsvps after cascade, want 0", len(rsvps))
		}
	})
}

func TestAccommodationStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	hotel := &models.Accommodation{Name: "Casa del Mar", Address: strp("Playa 1")}
	if err := store.CreateAccommodation(ctx, hotel); err != nil {
		t.Fatalf("CreateAccommodation failed: %v", err)
	}

	subsidy := 50.0
	room := &models.RoomType{
		AccommodationID:     hotel.ID,
		Name:                "Ocean View Double",
		Capacity:            2,
		TotalRooms:          10,
		PricePerNight:       180,
		HostSubsidyPerNight: &subsidy,
	}
	if err := store.CreateRoomType(ctx, room); err != nil {
		t.Fatalf("CreateRoomType failed: %v", err)
	}

	guest := &models.Guest{
		GroupID:   "g1",
		FirstName: "Grace",
		LastName:  "Chen",
		AgeType:   models.AgeAdult,
		GuestType: models.GuestWedding,
	}
	if err := store.CreateGuest(ctx, guest); err != nil {
		t.Fatalf("CreateGuest failed: %v", err)
	}

	t.Run("ListRoomTypes scopes to accommodation", func(t *testing.T) {
		roomTypes, err := store.ListRoomTypes(ctx, hotel.ID)
		if err != nil {
			t.Fatalf("ListRoomTypes failed: %v", err)
		}
		if len(roomTypes) != 1 {
			t.Fatalf("Got %d room types, want 1", len(roomTypes))
		}
		rt := roomTypes[0]
		if rt.HostSubsidyPerNight == nil || *rt.HostSubsidyPerNight != 50 {
			t.Errorf("Got subsidy %v, want 50", rt.HostSubsidyPerNight)
		}
	})

	t.Run("CreateRoomAssignment rejects duplicate guest in room type", func(t *testing.T) {
		assignment := &models.RoomAssignment{
			RoomTypeID: room.ID,
			GuestID:    guest.ID,
			CheckIn:    "2026-05-14",
			CheckOut:   "2026-05-18",
		}
		if err := store.CreateRoomAssignment(ctx, assignment); err != nil {
			t.Fatalf("CreateRoomAssignment failed: %v", err)
		}

		dup := &models.RoomAssignment{
			RoomTypeID: room.ID,
			GuestID:    guest.ID,
			CheckIn:    "2026-05-15",
			CheckOut:   "2026-05-16",
		}
		if err := store.CreateRoomAssignment(ctx, dup); !errors.Is(err, storage.ErrConflict) {
			t.Errorf("Expected ErrConflict, got %v", err)
		}
	})

	t.Run("DeleteAccommodation cascades room types and assignments", func(t *testing.T) {
		if err := store.DeleteAccommodation(ctx, hotel.ID); err != nil {
			t.Fatalf("DeleteAccommodation failed: %v", err)
		}
		if _, err := store.GetRoomType(ctx, room.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected room type to cascade, got %v", err)
		}
	})
}

func TestAdminUserStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := models.NewAdminUser("planner@example.com", "Planner", "hash")
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	t.Run("GetUserByEmail", func(t *testing.T) {
		retrieved, err := store.GetUserByEmail(ctx, "planner@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if retrieved.ID != user.ID {
			t.Errorf("Got ID %s, want %s", retrieved.ID, user.ID)
		}
	})

	t.Run("Duplicate email returns ErrConflict", func(t *testing.T) {
		dup := models.NewAdminUser("planner@example.com", "Other", "hash2")
		if err := store.CreateUser(ctx, dup); !errors.Is(err, storage.ErrConflict) {
			t.Errorf("Expected ErrConflict, got %v", err)
		}
	})
}
