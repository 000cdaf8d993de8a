package models

// BudgetOptions selects which blocks the budget aggregator includes.
// Nil include flags default to true.
type BudgetOptions struct {
	IncludeVendors        *bool            `json:"includeVendors"`
	IncludeActivities     *bool            `json:"includeActivities"`
	IncludeAccommodations *bool            `json:"includeAccommodations"`
	VendorCategories      []VendorCategory `json:"vendorCategories"`
}

// VendorBudgetLine is one vendor's slice of a category block.
type VendorBudgetLine struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Cost          float64       `json:"cost"`
	Paid          float64       `json:"paid"`
	Balance       float64       `json:"balance"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
}

// VendorCategoryBudget groups vendors of one category with block totals.
type VendorCategoryBudget struct {
	Category   VendorCategory     `json:"category"`
	TotalCost  float64            `json:"totalCost"`
	AmountPaid float64            `json:"amountPaid"`
	BalanceDue float64            `json:"balanceDue"`
	Vendors    []VendorBudgetLine `json:"vendors"`
}

// ActivityBudgetLine is one activity's attendee-weighted cost.
type ActivityBudgetLine struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	CostPerPerson      float64 `json:"costPerPerson"`
	HostSubsidy        float64 `json:"hostSubsidy"`
	EstimatedAttendees int     `json:"estimatedAttendees"`
	TotalCost          float64 `json:"totalCost"`
	NetCost            float64 `json:"netCost"`
}

// ActivityBudget aggregates activity costs.
type ActivityBudget struct {
	TotalCost    float64              `json:"totalCost"`
	TotalSubsidy float64              `json:"totalSubsidy"`
	NetCost      float64              `json:"netCost"`
	Activities   []ActivityBudgetLine `json:"activities"`
}

// AccommodationBudget aggregates accommodation costs. The room-assignment
// join is not wired into aggregation, so this block is always zero/empty.
type AccommodationBudget struct {
	TotalCost      float64  `json:"totalCost"`
	TotalSubsidy   float64  `json:"totalSubsidy"`
	NetCost        float64  `json:"netCost"`
	Accommodations []string `json:"accommodations"`
}

// BudgetTotals holds the bottom line.
type BudgetTotals struct {
	GrossTotal     float64 `json:"grossTotal"`
	TotalSubsidies float64 `json:"totalSubsidies"`
	TotalPaid      float64 `json:"totalPaid"`
	NetTotal       float64 `json:"netTotal"`
	BalanceDue     float64 `json:"balanceDue"`
}

// BudgetBreakdown is the full derived budget view.
type BudgetBreakdown struct {
	Vendors        []VendorCategoryBudget `json:"vendors"`
	Activities     ActivityBudget         `json:"activities"`
	Accommodations AccommodationBudget    `json:"accommodations"`
	Totals         BudgetTotals           `json:"totals"`
}

// BudgetSummary is the condensed dashboard view.
type BudgetSummary struct {
	TotalBudget       float64 `json:"totalBudget"`
	TotalPaid         float64 `json:"totalPaid"`
	TotalSubsidies    float64 `json:"totalSubsidies"`
	BalanceDue        float64 `json:"balanceDue"`
	VendorCount       int     `json:"vendorCount"`
	UnpaidVendorCount int     `json:"unpaidVendorCount"`
	PaymentProgress   float64 `json:"paymentProgress"`
}

// UnpaidVendor is a payment report entry for a vendor with no payments.
type UnpaidVendor struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Category VendorCategory `json:"category"`
	BaseCost float64        `json:"baseCost"`
}

// PartiallyPaidVendor is a payment report entry with an outstanding balance.
type PartiallyPaidVendor struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Category   VendorCategory `json:"category"`
	BaseCost   float64        `json:"baseCost"`
	AmountPaid float64        `json:"amountPaid"`
	BalanceDue float64        `json:"balanceDue"`
}

// PaidVendor is a payment report entry for a fully paid vendor.
type PaidVendor struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Category   VendorCategory `json:"category"`
	AmountPaid float64        `json:"amountPaid"`
}

// PaymentStatusReport buckets vendors by payment status.
type PaymentStatusReport struct {
	UnpaidVendors        []UnpaidVendor        `json:"unpaidVendors"`
	PartiallyPaidVendors []PartiallyPaidVendor `json:"partiallyPaidVendors"`
	PaidVendors          []PaidVendor          `json:"paidVendors"`
	TotalUnpaid          float64               `json:"totalUnpaid"`
	TotalPartial         float64               `json:"totalPartial"`
	TotalPaid            float64               `json:"totalPaid"`
}

// ActivitySubsidy is one activity's extrapolated subsidy.
type ActivitySubsidy struct {
	ActivityID         string  `json:"activityId"`
	ActivityName       string  `json:"activityName"`
	SubsidyPerPerson   float64 `json:"subsidyPerPerson"`
	EstimatedAttendees int     `json:"estimatedAttendees"`
	TotalSubsidy       float64 `json:"totalSubsidy"`
}

// SubsidyTracking aggregates host subsidies. Accommodation subsidies share
// the same unwired placeholder as the accommodation budget block.
type SubsidyTracking struct {
	ActivitySubsidies           []ActivitySubsidy `json:"activitySubsidies"`
	AccommodationSubsidies      []string          `json:"accommodationSubsidies"`
	TotalActivitySubsidies      float64           `json:"totalActivitySubsidies"`
	TotalAccommodationSubsidies float64           `json:"totalAccommodationSubsidies"`
	GrandTotalSubsidies         float64           `json:"grandTotalSubsidies"`
}
