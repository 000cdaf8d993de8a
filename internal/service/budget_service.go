package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/hmorales/wedplan/internal/calculator"
	"github.com/hmorales/wedplan/internal/models"
	"github.com/hmorales/wedplan/internal/result"
	"github.com/hmorales/wedplan/internal/storage"
)

// BudgetService derives budget breakdowns, payment reports, and subsidy
// tracking from vendors, activities, and RSVPs. It never writes.
type BudgetService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewBudgetService creates a new budget service.
func NewBudgetService(store storage.Store, logger *slog.Logger) *BudgetService {
	return &BudgetService{store: store, logger: logger}
}

func includeFlag(p *bool) bool {
	return p == nil || *p
}

// CalculateTotal builds the full budget breakdown.
//
// The vendor block groups vendors by category (optionally restricted to the
// categories in options) and feeds grossTotal and totalPaid. The activity
// block extrapolates each priced activity over its attending count and feeds
// grossTotal and totalSubsidies. The accommodation block stays zero: the
// room-assignment join was never wired into aggregation, and the placeholder
// is kept deliberately rather than silently filled in.
func (s *BudgetService) CalculateTotal(ctx context.Context, options models.BudgetOptions) (breakdown *models.BudgetBreakdown, rerr *result.Error) {
	defer result.Recover(&rerr)

	var issues []result.Issue
	for _, c := range options.VendorCategories {
		if !models.ValidCategory(c) {
			issues = append(issues, result.Issue{Field: "vendorCategories", Message: fmt.Sprintf("unknown category %q", c)})
		}
	}
	if len(issues) > 0 {
		return nil, result.Issues(issues)
	}

	breakdown = &models.BudgetBreakdown{
		Vendors:        []models.VendorCategoryBudget{},
		Activities:     models.ActivityBudget{Activities: []models.ActivityBudgetLine{}},
		Accommodations: models.AccommodationBudget{Accommodations: []string{}},
	}

	if includeFlag(options.IncludeVendors) {
		vendorBlocks, err := s.vendorBlocks(ctx, options.VendorCategories)
		if err != nil {
			return nil, result.FromStore(err, "Vendors not found")
		}
		breakdown.Vendors = vendorBlocks
		for _, block := range vendorBlocks {
			breakdown.Totals.GrossTotal += block.TotalCost
			breakdown.Totals.TotalPaid += block.AmountPaid
		}
	}

	if includeFlag(options.IncludeActivities) {
		activityBudget, err := s.activityBlock(ctx)
		if err != nil {
			return nil, result.FromStore(err, "Activities not found")
		}
		breakdown.Activities = *activityBudget
		breakdown.Totals.GrossTotal += activityBudget.TotalCost
		breakdown.Totals.TotalSubsidies += activityBudget.TotalSubsidy
	}

	// Accommodation totals are always zero, so IncludeAccommodations only
	// controls whether the empty block appears in serialized output.

	breakdown.Totals.NetTotal = breakdown.Totals.GrossTotal - breakdown.Totals.TotalSubsidies
	breakdown.Totals.BalanceDue = breakdown.Totals.NetTotal - breakdown.Totals.TotalPaid
	return breakdown, nil
}

func (s *BudgetService) vendorBlocks(ctx context.Context, categories []models.VendorCategory) ([]models.VendorCategoryBudget, error) {
	vendors, err := s.store.ListVendors(ctx, models.VendorFilter{})
	if err != nil {
		return nil, err
	}

	wanted := func(c models.VendorCategory) bool {
		if len(categories) == 0 {
			return true
		}
		for _, w := range categories {
			if w == c {
				return true
			}
		}
		return false
	}

	byCategory := make(map[models.VendorCategory][]models.VendorBudgetLine)
	for _, v := range vendors {
		if !wanted(v.Category) {
			continue
		}
		byCategory[v.Category] = append(byCategory[v.Category], models.VendorBudgetLine{
			ID:            v.ID,
			Name:          v.Name,
			Cost:          v.BaseCost,
			Paid:          v.AmountPaid,
			Balance:       calculator.VendorBalance(v.BaseCost, v.AmountPaid),
			PaymentStatus: v.PaymentStatus,
		})
	}

	var blocks []models.VendorCategoryBudget
	for _, category := range models.VendorCategories {
		lines, ok := byCategory[category]
		if !ok {
			continue
		}
		block := models.VendorCategoryBudget{Category: category, Vendors: lines}
		for _, line := range lines {
			block.TotalCost += line.Cost
			block.AmountPaid += line.Paid
			block.BalanceDue += line.Balance
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

func (s *BudgetService) activityBlock(ctx context.Context) (*models.ActivityBudget, error) {
	activities, err := s.store.ListPricedActivities(ctx)
	if err != nil {
		return nil, err
	}

	budget := &models.ActivityBudget{Activities: []models.ActivityBudgetLine{}}
	for _, a := range activities {
		attendees, err := s.store.CountAttending(ctx, a.ID)
		if err != nil {
			return nil, err
		}
		cost := calculator.ActivityCost(&a, attendees)
		budget.Activities = append(budget.Activities, models.ActivityBudgetLine{
			ID:                 a.ID,
			Name:               a.Name,
			CostPerPerson:      cost.CostPerPerson,
			HostSubsidy:        cost.HostSubsidy,
			EstimatedAttendees: cost.AttendeeCount,
			TotalCost:          cost.TotalCost,
			NetCost:            cost.NetCost,
		})
		budget.TotalCost += cost.TotalCost
		budget.TotalSubsidy += cost.TotalSubsidy
	}
	budget.NetCost = budget.TotalCost - budget.TotalSubsidy
	return budget, nil
}

// Summary condenses the full breakdown into the dashboard view. Payment
// progress is the paid share of the net total as a percentage, rounded to
// two decimals.
func (s *BudgetService) Summary(ctx context.Context) (summary *models.BudgetSummary, rerr *result.Error) {
	defer result.Recover(&rerr)

	breakdown, berr := s.CalculateTotal(ctx, models.BudgetOptions{})
	if berr != nil {
		return nil, berr
	}

	vendorCount, err := s.store.CountVendors(ctx)
	if err != nil {
		return nil, result.FromStore(err, "Vendors not found")
	}
	unpaidCount, err := s.store.CountVendorsByStatus(ctx, models.PaymentUnpaid)
	if err != nil {
		return nil, result.FromStore(err, "Vendors not found")
	}

	summary = &models.BudgetSummary{
		TotalBudget:       breakdown.Totals.NetTotal,
		TotalPaid:         breakdown.Totals.TotalPaid,
		TotalSubsidies:    breakdown.Totals.TotalSubsidies,
		BalanceDue:        breakdown.Totals.BalanceDue,
		VendorCount:       vendorCount,
		UnpaidVendorCount: unpaidCount,
	}
	if breakdown.Totals.NetTotal > 0 {
		summary.PaymentProgress = math.Round(breakdown.Totals.TotalPaid/breakdown.Totals.NetTotal*100*100) / 100
	}
	return summary, nil
}

// PaymentStatusReport buckets every vendor by payment status with per-bucket
// totals.
func (s *BudgetService) PaymentStatusReport(ctx context.Context) (report *models.PaymentStatusReport, rerr *result.Error) {
	defer result.Recover(&rerr)

	vendors, err := s.store.ListVendors(ctx, models.VendorFilter{})
	if err != nil {
		return nil, result.FromStore(err, "Vendors not found")
	}

	report = &models.PaymentStatusReport{
		UnpaidVendors:        []models.UnpaidVendor{},
		PartiallyPaidVendors: []models.PartiallyPaidVendor{},
		PaidVendors:          []models.PaidVendor{},
	}
	for _, v := range vendors {
		switch calculator.PaymentStatus(v.BaseCost, v.AmountPaid) {
		case models.PaymentUnpaid:
			report.UnpaidVendors = append(report.UnpaidVendors, models.UnpaidVendor{
				ID:       v.ID,
				Name:     v.Name,
				Category: v.Category,
				BaseCost: v.BaseCost,
			})
			report.TotalUnpaid += v.BaseCost
		case models.PaymentPartial:
			report.PartiallyPaidVendors = append(report.PartiallyPaidVendors, models.PartiallyPaidVendor{
				ID:         v.ID,
				Name:       v.Name,
				Category:   v.Category,
				BaseCost:   v.BaseCost,
				AmountPaid: v.AmountPaid,
				BalanceDue: calculator.VendorBalance(v.BaseCost, v.AmountPaid),
			})
			report.TotalPartial += v.AmountPaid
		case models.PaymentPaid:
			report.PaidVendors = append(report.PaidVendors, models.PaidVendor{
				ID:         v.ID,
				Name:       v.Name,
				Category:   v.Category,
				AmountPaid: v.AmountPaid,
			})
			report.TotalPaid += v.AmountPaid
		}
	}
	return report, nil
}

// TrackSubsidies aggregates host subsidies across activities. Accommodation
// subsidies share the same unwired placeholder as the accommodation budget
// block.
func (s *BudgetService) TrackSubsidies(ctx context.Context) (tracking *models.SubsidyTracking, rerr *result.Error) {
	defer result.Recover(&rerr)

	activities, err := s.store.ListSubsidizedActivities(ctx)
	if err != nil {
		return nil, result.FromStore(err, "Activities not found")
	}

	tracking = &models.SubsidyTracking{
		ActivitySubsidies:      []models.ActivitySubsidy{},
		AccommodationSubsidies: []string{},
	}
	for _, a := range activities {
		attendees, err := s.store.CountAttending(ctx, a.ID)
		if err != nil {
			return nil, result.FromStore(err, "Activities not found")
		}
		subsidyPerPerson := 0.0
		if a.HostSubsidy != nil {
			subsidyPerPerson = *a.HostSubsidy
		}
		total := subsidyPerPerson * float64(attendees)
		tracking.ActivitySubsidies = append(tracking.ActivitySubsidies, models.ActivitySubsidy{
			ActivityID:         a.ID,
			ActivityName:       a.Name,
			SubsidyPerPerson:   subsidyPerPerson,
			EstimatedAttendees: attendees,
			TotalSubsidy:       total,
		})
		tracking.TotalActivitySubsidies += total
	}
	tracking.GrandTotalSubsidies = tracking.TotalActivitySubsidies + tracking.TotalAccommodationSubsidies
	return tracking, nil
}
