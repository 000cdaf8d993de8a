package calculator

import (
	"math"
	"testing"

	"github.com/hmorales/wedplan/internal/models"
)

func TestPaymentStatus(t *testing.T) {
	tests := []struct {
		name       string
		baseCost   float64
		amountPaid float64
		want       models.PaymentStatus
	}{
		{"nothing paid", 2500.00, 0, models.PaymentUnpaid},
		{"partial payment", 1000.00, 400.00, models.PaymentPartial},
		{"exactly covered", 2500.00, 2500.00, models.PaymentPaid},
		{"overpaid", 1000.00, 1000.50, models.PaymentPaid},
		{"within tolerance of covered", 1000.00, 999.995, models.PaymentPaid},
		{"one cent short beyond tolerance", 1000.00, 999.98, models.PaymentPartial},
		{"zero cost zero paid", 0, 0, models.PaymentUnpaid},
		{"zero cost with payment", 0, 0.01, models.PaymentPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PaymentStatus(tt.baseCost, tt.amountPaid)
			if got != tt.want {
				t.Errorf("PaymentStatus(%v, %v) = %v, want %v", tt.baseCost, tt.amountPaid, got, tt.want)
			}
		})
	}
}

func TestPaymentStatusIdempotent(t *testing.T) {
	// Identical inputs must always yield identical output; the status is a
	// total function of the two amounts, not of any previous state.
	for _, paid := range []float64{0, 0.01, 499.99, 500, 999.99, 1000, 1234.56} {
		first := PaymentStatus(1000, paid)
		second := PaymentStatus(1000, paid)
		if first != second {
			t.Errorf("PaymentStatus(1000, %v) not stable: %v then %v", paid, first, second)
		}
	}
}

func TestVendorBalance(t *testing.T) {
	if got := VendorBalance(2500, 1000); math.Abs(got-1500) > MoneyTolerance {
		t.Errorf("VendorBalance(2500, 1000) = %v, want 1500", got)
	}
	if got := VendorBalance(2500, 2500); math.Abs(got) > MoneyTolerance {
		t.Errorf("VendorBalance(2500, 2500) = %v, want 0", got)
	}
}
