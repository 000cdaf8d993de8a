package report

import (
	"bytes"
	"testing"

	"github.com/hmorales/wedplan/internal/models"
)

func sampleBreakdown() *models.BudgetBreakdown {
	return &models.BudgetBreakdown{
		Vendors: []models.VendorCategoryBudget{
			{
				Category:   models.CategoryPhotography,
				TotalCost:  2000,
				AmountPaid: 500,
				BalanceDue: 1500,
				Vendors: []models.VendorBudgetLine{
					{ID: "v1", Name: "Luz Fotografia", Cost: 2000, Paid: 500, Balance: 1500, PaymentStatus: models.PaymentPartial},
				},
			},
		},
		Activities: models.ActivityBudget{
			TotalCost:    200,
			TotalSubsidy: 40,
			NetCost:      160,
			Activities: []models.ActivityBudgetLine{
				{ID: "a1", Name: "Snorkeling", CostPerPerson: 50, HostSubsidy: 10, EstimatedAttendees: 4, TotalCost: 200, NetCost: 160},
			},
		},
		Totals: models.BudgetTotals{GrossTotal: 2200, TotalSubsidies: 40, TotalPaid: 500, NetTotal: 2160, BalanceDue: 1660},
	}
}

func TestBuildBudgetXLSX(t *testing.T) {
	data, err := BuildBudgetXLSX(sampleBreakdown())
	if err != nil {
		t.Fatalf("BuildBudgetXLSX failed: %v", err)
	}
	// XLSX files are zip archives.
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Errorf("Expected zip magic bytes, got %q", data[:2])
	}
}

func TestBuildPaymentStatusPDF(t *testing.T) {
	report := &models.PaymentStatusReport{
		UnpaidVendors: []models.UnpaidVendor{
			{ID: "v2", Name: "Sabor Catering", Category: models.CategoryCatering, BaseCost: 1000},
		},
		PartiallyPaidVendors: []models.PartiallyPaidVendor{
			{ID: "v1", Name: "Luz Fotografia", Category: models.CategoryPhotography, BaseCost: 2000, AmountPaid: 500, BalanceDue: 1500},
		},
		PaidVendors: []models.PaidVendor{
			{ID: "v3", Name: "Flores y Mas", Category: models.CategoryFlowers, AmountPaid: 600},
		},
		TotalUnpaid:  1000,
		TotalPartial: 500,
		TotalPaid:    600,
	}

	data, err := BuildPaymentStatusPDF(report)
	if err != nil {
		t.Fatalf("BuildPaymentStatusPDF failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("Expected PDF magic bytes, got %q", data[:4])
	}
}
