package models

// VendorCategory is the fixed set of vendor categories used for budget grouping.
type VendorCategory string

const (
	CategoryPhotography    VendorCategory = "photography"
	CategoryFlowers        VendorCategory = "flowers"
	CategoryCatering       VendorCategory = "catering"
	CategoryMusic          VendorCategory = "music"
	CategoryTransportation VendorCategory = "transportation"
	CategoryDecoration     VendorCategory = "decoration"
	CategoryOther          VendorCategory = "other"
)

// VendorCategories lists every valid category, in display order.
var VendorCategories = []VendorCategory{
	CategoryPhotography,
	CategoryFlowers,
	CategoryCatering,
	CategoryMusic,
	CategoryTransportation,
	CategoryDecoration,
	CategoryOther,
}

// PricingModel describes how a vendor charges.
type PricingModel string

const (
	PricingFlatRate  PricingModel = "flat_rate"
	PricingHourly    PricingModel = "hourly"
	PricingPerPerson PricingModel = "per_person"
)

// PaymentStatus is derived from (baseCost, amountPaid) and never stored as
// independent mutable state: unpaid iff amountPaid == 0, paid iff
// amountPaid >= baseCost (0.01 tolerance), partial otherwise.
type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

// Vendor represents a hired service provider.
//
// Invariant at rest: AmountPaid <= BaseCost (within 0.01), enforced at the
// payment-recording boundary rather than on raw updates.
type Vendor struct {
	// ID is the unique identifier for the vendor (UUID format).
	ID string `json:"id"`

	Name     string         `json:"name"`
	Category VendorCategory `json:"category"`

	ContactName  *string `json:"contactName"`
	ContactEmail *string `json:"contactEmail"`
	ContactPhone *string `json:"contactPhone"`

	PricingModel PricingModel `json:"pricingModel"`

	// BaseCost is the total contracted amount.
	BaseCost float64 `json:"baseCost"`

	// PaymentStatus is recomputed whenever a payment is recorded.
	PaymentStatus PaymentStatus `json:"paymentStatus"`

	// AmountPaid is the running total of recorded payments.
	AmountPaid float64 `json:"amountPaid"`

	Notes *string `json:"notes"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// CreateVendorInput is the payload for creating a vendor. New vendors always
// start with AmountPaid=0 and PaymentStatus=unpaid.
type CreateVendorInput struct {
	Name         string         `json:"name"`
	Category     VendorCategory `json:"category"`
	ContactName  *string        `json:"contactName"`
	ContactEmail *string        `json:"contactEmail"`
	ContactPhone *string        `json:"contactPhone"`
	PricingModel PricingModel   `json:"pricingModel"`
	BaseCost     float64        `json:"baseCost"`
	Notes        *string        `json:"notes"`
}

// UpdateVendorInput carries optional field edits. Direct edits do not pass
// through the payment recorder; callers editing BaseCost or AmountPaid own
// the consistency of PaymentStatus.
type UpdateVendorInput struct {
	Name          *string         `json:"name"`
	Category      *VendorCategory `json:"category"`
	ContactName   *NullableString `json:"contactName"`
	ContactEmail  *NullableString `json:"contactEmail"`
	ContactPhone  *NullableString `json:"contactPhone"`
	PricingModel  *PricingModel   `json:"pricingModel"`
	BaseCost      *float64        `json:"baseCost"`
	AmountPaid    *float64        `json:"amountPaid"`
	PaymentStatus *PaymentStatus  `json:"paymentStatus"`
	Notes         *NullableString `json:"notes"`
}

// VendorFilter narrows vendor listings.
type VendorFilter struct {
	Category      VendorCategory `json:"category,omitempty"`
	PricingModel  PricingModel   `json:"pricingModel,omitempty"`
	PaymentStatus PaymentStatus  `json:"paymentStatus,omitempty"`
}

// RecordPaymentInput is the payload for recording a vendor payment.
type RecordPaymentInput struct {
	VendorID string  `json:"vendorId"`
	Amount   float64 `json:"amount"`
}

// VendorPaymentInfo is the balance view returned after recording a payment.
type VendorPaymentInfo struct {
	VendorID      string        `json:"vendorId"`
	VendorName    string        `json:"vendorName"`
	BaseCost      float64       `json:"baseCost"`
	AmountPaid    float64       `json:"amountPaid"`
	BalanceDue    float64       `json:"balanceDue"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
}

// ValidCategory reports whether c is one of the fixed vendor categories.
func ValidCategory(c VendorCategory) bool {
	for _, v := range VendorCategories {
		if v == c {
			return true
		}
	}
	return false
}

// ValidPricingModel reports whether p is a known pricing model.
func ValidPricingModel(p PricingModel) bool {
	switch p {
	case PricingFlatRate, PricingHourly, PricingPerPerson:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether s is a known payment status.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentUnpaid, PaymentPartial, PaymentPaid:
		return true
	}
	return false
}
