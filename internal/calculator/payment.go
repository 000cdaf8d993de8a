// Package calculator holds the pure cost and payment computations. Nothing in
// here touches storage; callers fetch inputs and persist outputs.
package calculator

import "github.com/hmorales/wedplan/internal/models"

// MoneyTolerance absorbs binary floating-point drift when comparing amounts.
const MoneyTolerance = 0.01

// PaymentStatus computes the payment state for a vendor from absolute values:
// unpaid iff nothing has been paid, paid iff the base cost is covered (within
// tolerance), partial otherwise. It is recomputed from scratch on every call,
// so identical inputs always yield identical output.
func PaymentStatus(baseCost, amountPaid float64) models.PaymentStatus {
	switch {
	case amountPaid == 0:
		return models.PaymentUnpaid
	case amountPaid >= baseCost-MoneyTolerance:
		return models.PaymentPaid
	default:
		return models.PaymentPartial
	}
}

// VendorBalance computes the outstanding balance for a vendor. In a consistent
// state (amountPaid <= baseCost) the result is never negative.
func VendorBalance(baseCost, amountPaid float64) float64 {
	return baseCost - amountPaid
}
