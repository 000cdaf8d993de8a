package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hmorales/wedplan/internal/calculator"
	"github.com/hmorales/wedplan/internal/models"
	"github.com/hmorales/wedplan/internal/result"
	"github.com/hmorales/wedplan/internal/sanitize"
	"github.com/hmorales/wedplan/internal/storage"
)

// VendorService manages vendors and payment recording.
type VendorService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewVendorService creates a new vendor service.
func NewVendorService(store storage.Store, logger *slog.Logger) *VendorService {
	return &VendorService{store: store, logger: logger}
}

func validateVendorInput(in *models.CreateVendorInput) []result.Issue {
	var issues []result.Issue
	if in.Name == "" {
		issues = append(issues, result.Issue{Field: "name", Message: "name is required"})
	}
	if !models.ValidCategory(in.Category) {
		issues = append(issues, result.Issue{Field: "category", Message: fmt.Sprintf("unknown category %q", in.Category)})
	}
	if !models.ValidPricingModel(in.PricingModel) {
		issues = append(issues, result.Issue{Field: "pricingModel", Message: fmt.Sprintf("unknown pricing model %q", in.PricingModel)})
	}
	if in.BaseCost < 0 {
		issues = append(issues, result.Issue{Field: "baseCost", Message: "baseCost cannot be negative"})
	}
	return issues
}

// Create validates and persists a new vendor. New vendors start unpaid.
func (s *VendorService) Create(ctx context.Context, in *models.CreateVendorInput) (vendor *models.Vendor, rerr *result.Error) {
	defer result.Recover(&rerr)

	if issues := validateVendorInput(in); len(issues) > 0 {
		return nil, result.Issues(issues)
	}

	vendor = &models.Vendor{
		Name:          in.Name,
		Category:      in.Category,
		ContactName:   in.ContactName,
		ContactEmail:  in.ContactEmail,
		ContactPhone:  in.ContactPhone,
		PricingModel:  in.PricingModel,
		BaseCost:      in.BaseCost,
		PaymentStatus: models.PaymentUnpaid,
		AmountPaid:    0,
		Notes:         sanitize.TextPtr(in.Notes),
	}
	if err := s.store.CreateVendor(ctx, vendor); err != nil {
		s.logger.Error("Failed to create vendor", "error", err)
		return nil, result.FromStore(err, "Vendor not found")
	}

	s.logger.Info("Vendor created", "vendor_id", vendor.ID, "category", vendor.Category)
	return vendor, nil
}

// Get retrieves a vendor by ID.
func (s *VendorService) Get(ctx context.Context, id string) (vendor *models.Vendor, rerr *result.Error) {
	defer result.Recover(&rerr)

	vendor, err := s.store.GetVendor(ctx, id)
	if err != nil {
		return nil, result.FromStore(err, "Vendor not found")
	}
	return vendor, nil
}

// List retrieves vendors matching the filter.
func (s *VendorService) List(ctx context.Context, filter models.VendorFilter) (vendors []models.Vendor, rerr *result.Error) {
	defer result.Recover(&rerr)

	var issues []result.Issue
	if filter.Category != "" && !models.ValidCategory(filter.Category) {
		issues = append(issues, result.Issue{Field: "category", Message: fmt.Sprintf("unknown category %q", filter.Category)})
	}
	if filter.PricingModel != "" && !models.ValidPricingModel(filter.PricingModel) {
		issues = append(issues, result.Issue{Field: "pricingModel", Message: fmt.Sprintf("unknown pricing model %q", filter.PricingModel)})
	}
	if filter.PaymentStatus != "" && !models.ValidPaymentStatus(filter.PaymentStatus) {
		issues = append(issues, result.Issue{Field: "paymentStatus", Message: fmt.Sprintf("unknown payment status %q", filter.PaymentStatus)})
	}
	if len(issues) > 0 {
		return nil, result.Issues(issues)
	}

	vendors, err := s.store.ListVendors(ctx, filter)
	if err != nil {
		return nil, result.FromStore(err, "Vendors not found")
	}
	return vendors, nil
}

// Update applies a partial edit to an existing vendor. Edits that touch
// BaseCost or AmountPaid recompute PaymentStatus from the resulting pair.
func (s *VendorService) Update(ctx context.Context, id string, in *models.UpdateVendorInput) (vendor *models.Vendor, rerr *result.Error) {
	defer result.Recover(&rerr)

	vendor, err := s.store.GetVendor(ctx, id)
	if err != nil {
		return nil, result.FromStore(err, "Vendor not found")
	}

	var issues []result.Issue
	if in.Name != nil {
		if *in.Name == "" {
			issues = append(issues, result.Issue{Field: "name", Message: "name cannot be empty"})
		}
		vendor.Name = *in.Name
	}
	if in.Category != nil {
		if !models.ValidCategory(*in.Category) {
			issues = append(issues, result.Issue{Field: "category", Message: fmt.Sprintf("unknown category %q", *in.Category)})
		}
		vendor.Category = *in.Category
	}
	if in.PricingModel != nil {
		if !models.ValidPricingModel(*in.PricingModel) {
			issues = append(issues, result.Issue{Field: "pricingModel", Message: fmt.Sprintf("unknown pricing model %q", *in.PricingModel)})
		}
		vendor.PricingModel = *in.PricingModel
	}
	if in.BaseCost != nil {
		if *in.BaseCost < 0 {
			issues = append(issues, result.Issue{Field: "baseCost", Message: "baseCost cannot be negative"})
		}
		vendor.BaseCost = *in.BaseCost
	}
	if in.AmountPaid != nil {
		if *in.AmountPaid < 0 {
			issues = append(issues, result.Issue{Field: "amountPaid", Message: "amountPaid cannot be negative"})
		}
		vendor.AmountPaid = *in.AmountPaid
	}
	if in.PaymentStatus != nil && !models.ValidPaymentStatus(*in.PaymentStatus) {
		issues = append(issues, result.Issue{Field: "paymentStatus", Message: fmt.Sprintf("unknown payment status %q", *in.PaymentStatus)})
	}
	if len(issues) > 0 {
		return nil, result.Issues(issues)
	}

	if in.ContactName != nil {
		vendor.ContactName = in.ContactName.Value
	}
	if in.ContactEmail != nil {
		vendor.ContactEmail = in.ContactEmail.Value
	}
	if in.ContactPhone != nil {
		vendor.ContactPhone = in.ContactPhone.Value
	}
	if in.Notes != nil {
		vendor.Notes = sanitize.TextPtr(in.Notes.Value)
	}

	switch {
	case in.PaymentStatus != nil:
		vendor.PaymentStatus = *in.PaymentStatus
	case in.BaseCost != nil || in.AmountPaid != nil:
		vendor.PaymentStatus = calculator.PaymentStatus(vendor.BaseCost, vendor.AmountPaid)
	}

	if err := s.store.UpdateVendor(ctx, vendor); err != nil {
		return nil, result.FromStore(err, "Vendor not found")
	}
	return vendor, nil
}

// Delete removes a vendor by ID.
func (s *VendorService) Delete(ctx context.Context, id string) (rerr *result.Error) {
	defer result.Recover(&rerr)

	if err := s.store.DeleteVendor(ctx, id); err != nil {
		return result.FromStore(err, "Vendor not found")
	}
	s.logger.Info("Vendor deleted", "vendor_id", id)
	return nil
}

// RecordPayment adds a payment to a vendor's running total.
//
// The payment must be positive and must not push the total past the base cost
// (0.01 tolerance). Validation happens before the write: a rejected payment
// leaves the vendor untouched. On success the payment status is recomputed
// and the updated balance view is returned.
func (s *VendorService) RecordPayment(ctx context.Context, in *models.RecordPaymentInput) (info *models.VendorPaymentInfo, rerr *result.Error) {
	defer result.Recover(&rerr)

	if in.Amount <= 0 {
		return nil, result.Validation("Payment amount must be positive", []result.Issue{
			{Field: "amount", Message: "amount must be greater than zero"},
		})
	}

	vendor, err := s.store.GetVendor(ctx, in.VendorID)
	if err != nil {
		return nil, result.FromStore(err, "Vendor not found")
	}

	newTotal := vendor.AmountPaid + in.Amount
	if newTotal > vendor.BaseCost+calculator.MoneyTolerance {
		return nil, result.Validation(
			fmt.Sprintf("Payment of %.2f exceeds remaining balance of %.2f",
				in.Amount, calculator.VendorBalance(vendor.BaseCost, vendor.AmountPaid)),
			[]result.Issue{{Field: "amount", Message: "payment exceeds remaining balance"}},
		)
	}

	vendor.AmountPaid = newTotal
	vendor.PaymentStatus = calculator.PaymentStatus(vendor.BaseCost, vendor.AmountPaid)

	if err := s.store.UpdateVendor(ctx, vendor); err != nil {
		s.logger.Error("Failed to record payment", "vendor_id", vendor.ID, "error", err)
		return nil, result.FromStore(err, "Vendor not found")
	}

	s.logger.Info("Payment recorded",
		"vendor_id", vendor.ID, "amount", in.Amount, "status", vendor.PaymentStatus)

	return &models.VendorPaymentInfo{
		VendorID:      vendor.ID,
		VendorName:    vendor.Name,
		BaseCost:      vendor.BaseCost,
		AmountPaid:    vendor.AmountPaid,
		BalanceDue:    calculator.VendorBalance(vendor.BaseCost, vendor.AmountPaid),
		PaymentStatus: vendor.PaymentStatus,
	}, nil
}
