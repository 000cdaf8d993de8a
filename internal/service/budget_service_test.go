package service

import (
	"context"
	"math"
	"testing"

	"github.com/hmorales/wedplan/internal/models"
	"github.com/hmorales/wedplan/internal/result"
	"github.com/hmorales/wedplan/internal/storage/sqlite"
)

func fptr(v float64) *float64 { return &v }

// seedBudgetData creates two vendors (2000 photography with 500 paid, 1000
// catering unpaid) and one activity (50/person, 10 subsidy, 4 attending).
func seedBudgetData(t *testing.T, store *sqlite.SQLiteStore) {
	t.Helper()
	ctx := context.Background()

	vendors := []models.Vendor{
		{Name: "Luz Fotografia", Category: models.CategoryPhotography, PricingModel: models.PricingFlatRate,
			BaseCost: 2000, AmountPaid: 500, PaymentStatus: models.PaymentPartial},
		{Name: "Sabor Catering", Category: models.CategoryCatering, PricingModel: models.PricingPerPerson,
			BaseCost: 1000, PaymentStatus: models.PaymentUnpaid},
	}
	for i := range vendors {
		if err := store.CreateVendor(ctx, &vendors[i]); err != nil {
			t.Fatalf("CreateVendor failed: %v", err)
		}
	}

	activity := &models.Activity{Name: "Snorkeling", CostPerPerson: fptr(50), HostSubsidy: fptr(10)}
	if err := store.CreateActivity(ctx, activity); err != nil {
		t.Fatalf("CreateActivity failed: %v", err)
	}

	for i := 0; i < 4; i++ {
		guest := &models.Guest{
			GroupID:   "g1",
			FirstName: "Guest",
			LastName:  string(rune('A' + i)),
			AgeType:   models.AgeAdult,
			GuestType: models.GuestWedding,
		}
		if err := store.CreateGuest(ctx, guest); err != nil {
			t.Fatalf("CreateGuest failed: %v", err)
		}
		rsvp := &models.RSVP{GuestID: guest.ID, ActivityID: activity.ID, Status: models.RSVPAttending}
		if err := store.CreateRSVP(ctx, rsvp); err != nil {
			t.Fatalf("CreateRSVP failed: %v", err)
		}
	}
}

func TestCalculateTotalDecomposition(t *testing.T) {
	store := newTestStore(t)
	seedBudgetData(t, store)
	svc := NewBudgetService(store, testLogger())

	breakdown, rerr := svc.CalculateTotal(context.Background(), models.BudgetOptions{})
	if rerr != nil {
		t.Fatalf("CalculateTotal failed: %v", rerr)
	}

	// Vendors: 2000 + 1000 = 3000. Activity: 50 × 4 = 200. Gross = 3200.
	if math.Abs(breakdown.Totals.GrossTotal-3200) > 0.01 {
		t.Errorf("Got gross %.2f, want 3200", breakdown.Totals.GrossTotal)
	}
	// Subsidies: 10 × 4 = 40. Net = 3160.
	if math.Abs(breakdown.Totals.TotalSubsidies-40) > 0.01 {
		t.Errorf("Got subsidies %.2f, want 40", breakdown.Totals.TotalSubsidies)
	}
	if math.Abs(breakdown.Totals.NetTotal-3160) > 0.01 {
		t.Errorf("Got net %.2f, want 3160", breakdown.Totals.NetTotal)
	}
	// Paid: 500. Balance = 3160 − 500 = 2660.
	if math.Abs(breakdown.Totals.BalanceDue-2660) > 0.01 {
		t.Errorf("Got balance %.2f, want 2660", breakdown.Totals.BalanceDue)
	}

	// Gross must equal the sum of the blocks it is built from.
	var blockSum float64
	for _, block := range breakdown.Vendors {
		blockSum += block.TotalCost
	}
	blockSum += breakdown.Activities.TotalCost
	if math.Abs(breakdown.Totals.GrossTotal-blockSum) > 0.01 {
		t.Errorf("Gross %.2f does not match block sum %.2f", breakdown.Totals.GrossTotal, blockSum)
	}
}

func TestCalculateTotalAccommodationBlockIsZero(t *testing.T) {
	store := newTestStore(t)
	seedBudgetData(t, store)
	ctx := context.Background()

	// Even with a real room assignment on file, the accommodation block
	// stays empty.
	hotel := &models.Accommodation{Name: "Casa del Mar"}
	if err := store.CreateAccommodation(ctx, hotel); err != nil {
		t.Fatalf("CreateAccommodation failed: %v", err)
	}
	room := &models.RoomType{AccommodationID: hotel.ID, Name: "Double", Capacity: 2, TotalRooms: 5, PricePerNight: 180}
	if err := store.CreateRoomType(ctx, room); err != nil {
		t.Fatalf("CreateRoomType failed: %v", err)
	}

	svc := NewBudgetService(store, testLogger())
	breakdown, rerr := svc.CalculateTotal(ctx, models.BudgetOptions{})
	if rerr != nil {
		t.Fatalf("CalculateTotal failed: %v", rerr)
	}
	if breakdown.Accommodations.TotalCost != 0 || breakdown.Accommodations.NetCost != 0 {
		t.Errorf("Expected zero accommodation block, got %+v", breakdown.Accommodations)
	}
	if len(breakdown.Accommodations.Accommodations) != 0 {
		t.Errorf("Expected empty accommodation list, got %v", breakdown.Accommodations.Accommodations)
	}
}

func TestCalculateTotalOptionFlags(t *testing.T) {
	store := newTestStore(t)
	seedBudgetData(t, store)
	svc := NewBudgetService(store, testLogger())
	ctx := context.Background()

	off := false
	vendorsOnly, rerr := svc.CalculateTotal(ctx, models.BudgetOptions{IncludeActivities: &off})
	if rerr != nil {
		t.Fatalf("CalculateTotal failed: %v", rerr)
	}
	if math.Abs(vendorsOnly.Totals.GrossTotal-3000) > 0.01 {
		t.Errorf("Got gross %.2f, want 3000 with activities excluded", vendorsOnly.Totals.GrossTotal)
	}
	if vendorsOnly.Totals.TotalSubsidies != 0 {
		t.Errorf("Got subsidies %.2f, want 0", vendorsOnly.Totals.TotalSubsidies)
	}

	photographyOnly, rerr := svc.CalculateTotal(ctx, models.BudgetOptions{
		IncludeActivities: &off,
		VendorCategories:  []models.VendorCategory{models.CategoryPhotography},
	})
	if rerr != nil {
		t.Fatalf("CalculateTotal failed: %v", rerr)
	}
	if math.Abs(photographyOnly.Totals.GrossTotal-2000) > 0.01 {
		t.Errorf("Got gross %.2f, want 2000 for photography only", photographyOnly.Totals.GrossTotal)
	}
}

func TestCalculateTotalRejectsUnknownCategory(t *testing.T) {
	svc := NewBudgetService(newTestStore(t), testLogger())

	_, rerr := svc.CalculateTotal(context.Background(), models.BudgetOptions{
		VendorCategories: []models.VendorCategory{"carpentry"},
	})
	if rerr == nil || rerr.Code != result.CodeValidation {
		t.Errorf("Expected VALIDATION_ERROR, got %v", rerr)
	}
}

func TestBudgetSummaryPaymentProgress(t *testing.T) {
	store := newTestStore(t)
	seedBudgetData(t, store)
	svc := NewBudgetService(store, testLogger())

	summary, rerr := svc.Summary(context.Background())
	if rerr != nil {
		t.Fatalf("Summary failed: %v", rerr)
	}
	if summary.VendorCount != 2 {
		t.Errorf("Got vendor count %d, want 2", summary.VendorCount)
	}
	if summary.UnpaidVendorCount != 1 {
		t.Errorf("Got unpaid count %d, want 1", summary.UnpaidVendorCount)
	}
	// 500 / 3160 × 100 = 15.8228... → 15.82 after rounding.
	if math.Abs(summary.PaymentProgress-15.82) > 0.001 {
		t.Errorf("Got progress %.4f, want 15.82", summary.PaymentProgress)
	}
}

func TestPaymentStatusReportBuckets(t *testing.T) {
	store := newTestStore(t)
	seedBudgetData(t, store)
	ctx := context.Background()

	paid := &models.Vendor{Name: "Flores y Mas", Category: models.CategoryFlowers,
		PricingModel: models.PricingFlatRate, BaseCost: 600, AmountPaid: 600, PaymentStatus: models.PaymentPaid}
	if err := store.CreateVendor(ctx, paid); err != nil {
		t.Fatalf("CreateVendor failed: %v", err)
	}

	svc := NewBudgetService(store, testLogger())
	report, rerr := svc.PaymentStatusReport(ctx)
	if rerr != nil {
		t.Fatalf("PaymentStatusReport failed: %v", rerr)
	}

	if len(report.UnpaidVendors) != 1 || report.TotalUnpaid != 1000 {
		t.Errorf("Got %d unpaid totaling %.2f, want 1 totaling 1000", len(report.UnpaidVendors), report.TotalUnpaid)
	}
	if len(report.PartiallyPaidVendors) != 1 || report.TotalPartial != 500 {
		t.Errorf("Got %d partial totaling %.2f, want 1 totaling 500", len(report.PartiallyPaidVendors), report.TotalPartial)
	}
	if len(report.PaidVendors) != 1 || report.TotalPaid != 600 {
		t.Errorf("Got %d paid totaling %.2f, want 1 totaling 600", len(report.PaidVendors), report.TotalPaid)
	}
	if report.PartiallyPaidVendors[0].BalanceDue != 1500 {
		t.Errorf("Got partial balance %.2f, want 1500", report.PartiallyPaidVendors[0].BalanceDue)
	}
}

func TestTrackSubsidies(t *testing.T) {
	store := newTestStore(t)
	seedBudgetData(t, store)
	svc := NewBudgetService(store, testLogger())

	tracking, rerr := svc.TrackSubsidies(context.Background())
	if rerr != nil {
		t.Fatalf("TrackSubsidies failed: %v", rerr)
	}
	if len(tracking.ActivitySubsidies) != 1 {
		t.Fatalf("Got %d subsidy lines, want 1", len(tracking.ActivitySubsidies))
	}
	line := tracking.ActivitySubsidies[0]
	if line.EstimatedAttendees != 4 || math.Abs(line.TotalSubsidy-40) > 0.01 {
		t.Errorf("Got %d attendees totaling %.2f, want 4 totaling 40", line.EstimatedAttendees, line.TotalSubsidy)
	}
	if math.Abs(tracking.GrandTotalSubsidies-40) > 0.01 {
		t.Errorf("Got grand total %.2f, want 40", tracking.GrandTotalSubsidies)
	}
	if tracking.TotalAccommodationSubsidies != 0 {
		t.Errorf("Got accommodation subsidies %.2f, want 0", tracking.TotalAccommodationSubsidies)
	}
}
