package service

import (
	"context"
	"math"
	"testing"

	"github.com/hmorales/wedplan/internal/models"
	"github.com/hmorales/wedplan/internal/result"
)

func TestActivityCreateSubsidyValidation(t *testing.T) {
	svc := NewActivityService(newTestStore(t), testLogger())
	ctx := context.Background()

	_, rerr := svc.Create(ctx, &models.CreateActivityInput{
		Name:          "Snorkeling",
		CostPerPerson: fptr(50),
		HostSubsidy:   fptr(60),
	})
	if rerr == nil || rerr.Code != result.CodeValidation {
		t.Errorf("Expected VALIDATION_ERROR for subsidy > cost, got %v", rerr)
	}
}

func TestActivityCostExtrapolation(t *testing.T) {
	store := newTestStore(t)
	svc := NewActivityService(store, testLogger())
	ctx := context.Background()

	activity, rerr := svc.Create(ctx, &models.CreateActivityInput{
		Name:          "Snorkeling",
		CostPerPerson: fptr(50),
		HostSubsidy:   fptr(10),
	})
	if rerr != nil {
		t.Fatalf("Create failed: %v", rerr)
	}

	// 4 attending, 1 declined; only attending count.
	for i := 0; i < 5; i++ {
		guest := &models.Guest{
			GroupID: "g1", FirstName: "Guest", LastName: string(rune('A' + i)),
			AgeType: models.AgeAdult, GuestType: models.GuestWedding,
		}
		if err := store.CreateGuest(ctx, guest); err != nil {
			t.Fatalf("CreateGuest failed: %v", err)
		}
		status := models.RSVPAttending
		if i == 4 {
			status = models.RSVPDeclined
		}
		rsvp := &models.RSVP{GuestID: guest.ID, ActivityID: activity.ID, Status: status}
		if err := store.CreateRSVP(ctx, rsvp); err != nil {
			t.Fatalf("CreateRSVP failed: %v", err)
		}
	}

	cost, rerr := svc.Cost(ctx, activity.ID)
	if rerr != nil {
		t.Fatalf("Cost failed: %v", rerr)
	}
	if cost.AttendeeCount != 4 {
		t.Errorf("Got %d attendees, want 4", cost.AttendeeCount)
	}
	if math.Abs(cost.TotalCost-200) > 0.01 {
		t.Errorf("Got total %.2f, want 200", cost.TotalCost)
	}
	if math.Abs(cost.TotalSubsidy-40) > 0.01 {
		t.Errorf("Got subsidy %.2f, want 40", cost.TotalSubsidy)
	}
	if math.Abs(cost.NetCost-160) > 0.01 {
		t.Errorf("Got net %.2f, want 160", cost.NetCost)
	}
}

func TestActivityUpdateCrossFieldValidation(t *testing.T) {
	svc := NewActivityService(newTestStore(t), testLogger())
	ctx := context.Background()

	activity, rerr := svc.Create(ctx, &models.CreateActivityInput{
		Name:          "Welcome Dinner",
		CostPerPerson: fptr(80),
		HostSubsidy:   fptr(80),
	})
	if rerr != nil {
		t.Fatalf("Create failed: %v", rerr)
	}

	// Lowering cost below the existing subsidy must be rejected.
	_, rerr = svc.Update(ctx, activity.ID, &models.UpdateActivityInput{
		CostPerPerson: fptr(60),
	})
	if rerr == nil || rerr.Code != result.CodeValidation {
		t.Errorf("Expected VALIDATION_ERROR, got %v", rerr)
	}
}
