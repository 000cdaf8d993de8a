// Package models defines the core domain models for the wedding planner.
//
// # Entities
//
//   - Guest: an invited person, the unit of CSV import/export
//   - Vendor: a hired service provider with payment tracking
//   - Activity: an optional outing with per-person cost and host subsidy
//   - Event: a scheduled wedding event (ceremony, dinner, ...)
//   - Location: a venue referenced by events and activities
//   - Accommodation / RoomType / RoomAssignment: lodging and room bookings
//   - RSVP: a guest's response to an activity invitation
//
// # Derived values
//
// BudgetBreakdown, BudgetSummary, PaymentStatusReport, SubsidyTracking and
// RoomCost are computed, never persisted. Vendor payment status is likewise
// derived: it is always a pure function of (baseCost, amountPaid), recomputed
// on every payment rather than incremented from previous state.
//
// # Conventions
//
// 1. IDs are UUID strings assigned by the store.
// 2. Dates cross the wire as ISO "2006-01-02" strings; timestamps are Unix seconds.
// 3. Money is float64 compared with a 0.01 tolerance.
// 4. Nullable columns map to pointer fields; empty CSV fields map to nil.
package models
