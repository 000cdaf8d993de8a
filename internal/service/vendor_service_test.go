package service

import (
	"context"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/hmorales/wedplan/internal/models"
	"github.com/hmorales/wedplan/internal/result"
	"github.com/hmorales/wedplan/internal/storage/sqlite"
)

func newTestStore(t *testing.T) *sqlite.SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "wedplan-service-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestVendorCreateStartsUnpaid(t *testing.T) {
	svc := NewVendorService(newTestStore(t), testLogger())
	ctx := context.Background()

	vendor, rerr := svc.Create(ctx, &models.CreateVendorInput{
		Name:         "Luz Fotografia",
		Category:     models.CategoryPhotography,
		PricingModel: models.PricingFlatRate,
		BaseCost:     2500,
	})
	if rerr != nil {
		t.Fatalf("Create failed: %v", rerr)
	}
	if vendor.PaymentStatus != models.PaymentUnpaid {
		t.Errorf("Got status %s, want unpaid", vendor.PaymentStatus)
	}
	if vendor.AmountPaid != 0 {
		t.Errorf("Got amount paid %.2f, want 0", vendor.AmountPaid)
	}
}

func TestVendorCreateValidation(t *testing.T) {
	svc := NewVendorService(newTestStore(t), testLogger())
	ctx := context.Background()

	_, rerr := svc.Create(ctx, &models.CreateVendorInput{
		Name:         "",
		Category:     "carpentry",
		PricingModel: models.PricingFlatRate,
		BaseCost:     -5,
	})
	if rerr == nil {
		t.Fatal("Expected validation error")
	}
	if rerr.Code != result.CodeValidation {
		t.Errorf("Got code %s, want VALIDATION_ERROR", rerr.Code)
	}
	issues, ok := rerr.Details.([]result.Issue)
	if !ok {
		t.Fatalf("Expected issue list details, got %T", rerr.Details)
	}
	if len(issues) != 3 {
		t.Errorf("Got %d issues, want 3: %v", len(issues), issues)
	}
}

func TestRecordPaymentFullPayMarksPaid(t *testing.T) {
	svc := NewVendorService(newTestStore(t), testLogger())
	ctx := context.Background()

	vendor, rerr := svc.Create(ctx, &models.CreateVendorInput{
		Name:         "Luz Fotografia",
		Category:     models.CategoryPhotography,
		PricingModel: models.PricingFlatRate,
		BaseCost:     2500,
	})
	if rerr != nil {
		t.Fatalf("Create failed: %v", rerr)
	}

	info, rerr := svc.RecordPayment(ctx, &models.RecordPaymentInput{
		VendorID: vendor.ID,
		Amount:   2500,
	})
	if rerr != nil {
		t.Fatalf("RecordPayment failed: %v", rerr)
	}
	if info.PaymentStatus != models.PaymentPaid {
		t.Errorf("Got status %s, want paid", info.PaymentStatus)
	}
	if math.Abs(info.BalanceDue) > 0.01 {
		t.Errorf("Got balance %.2f, want 0", info.BalanceDue)
	}
}

func TestRecordPaymentPartial(t *testing.T) {
	svc := NewVendorService(newTestStore(t), testLogger())
	ctx := context.Background()

	vendor, _ := svc.Create(ctx, &models.CreateVendorInput{
		Name:         "Sabor Catering",
		Category:     models.CategoryCatering,
		PricingModel: models.PricingPerPerson,
		BaseCost:     1000,
	})

	info, rerr := svc.RecordPayment(ctx, &models.RecordPaymentInput{VendorID: vendor.ID, Amount: 400})
	if rerr != nil {
		t.Fatalf("RecordPayment failed: %v", rerr)
	}
	if info.PaymentStatus != models.PaymentPartial {
		t.Errorf("Got status %s, want partial", info.PaymentStatus)
	}
	if math.Abs(info.BalanceDue-600) > 0.01 {
		t.Errorf("Got balance %.2f, want 600", info.BalanceDue)
	}
}

func TestRecordPaymentExceedingBalanceLeavesVendorUnchanged(t *testing.T) {
	store := newTestStore(t)
	svc := NewVendorService(store, testLogger())
	ctx := context.Background()

	vendor, _ := svc.Create(ctx, &models.CreateVendorInput{
		Name:         "Mariachi del Mar",
		Category:     models.CategoryMusic,
		PricingModel: models.PricingHourly,
		BaseCost:     1000,
	})
	if _, rerr := svc.RecordPayment(ctx, &models.RecordPaymentInput{VendorID: vendor.ID, Amount: 900}); rerr != nil {
		t.Fatalf("RecordPayment failed: %v", rerr)
	}

	_, rerr := svc.RecordPayment(ctx, &models.RecordPaymentInput{VendorID: vendor.ID, Amount: 200})
	if rerr == nil {
		t.Fatal("Expected validation error for overpayment")
	}
	if rerr.Code != result.CodeValidation {
		t.Errorf("Got code %s, want VALIDATION_ERROR", rerr.Code)
	}

	// The rejected payment must leave the record untouched.
	current, err := store.GetVendor(ctx, vendor.ID)
	if err != nil {
		t.Fatalf("GetVendor failed: %v", err)
	}
	if current.AmountPaid != 900 {
		t.Errorf("Got amount paid %.2f, want 900", current.AmountPaid)
	}
	if current.PaymentStatus != models.PaymentPartial {
		t.Errorf("Got status %s, want partial", current.PaymentStatus)
	}
}

func TestRecordPaymentRejectsNonPositiveAmount(t *testing.T) {
	svc := NewVendorService(newTestStore(t), testLogger())
	ctx := context.Background()

	for _, amount := range []float64{0, -50} {
		_, rerr := svc.RecordPayment(ctx, &models.RecordPaymentInput{VendorID: "irrelevant", Amount: amount})
		if rerr == nil || rerr.Code != result.CodeValidation {
			t.Errorf("Amount %.2f: expected VALIDATION_ERROR, got %v", amount, rerr)
		}
	}
}

func TestRecordPaymentVendorNotFound(t *testing.T) {
	svc := NewVendorService(newTestStore(t), testLogger())
	ctx := context.Background()

	_, rerr := svc.RecordPayment(ctx, &models.RecordPaymentInput{VendorID: "no-such-vendor", Amount: 100})
	if rerr == nil || rerr.Code != result.CodeNotFound {
		t.Errorf("Expected NOT_FOUND, got %v", rerr)
	}
}
