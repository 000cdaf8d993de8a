// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/hmorales/wedplan/internal/models"
)

// ErrNotFound is returned when the requested entity does not exist.
// Implementations map their driver's "no rows" condition to this error.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned on uniqueness violations, e.g. assigning the same
// guest to the same room twice. Implementations map their driver's
// unique-constraint error to this error.
var ErrConflict = errors.New("conflict")

// Store is the full persistence interface consumed by the service layer.
// Create operations assign IDs and timestamps; Update operations write the
// full record and return ErrNotFound for missing IDs.
//
// The abstraction allows swapping backends (SQLite for local use and tests,
// PostgreSQL for hosted deployments) without changing the services.
type Store interface {
	GuestStore
	VendorStore
	ActivityStore
	EventStore
	LocationStore
	AccommodationStore
	RSVPStore
	AdminUserStore

	// Close releases any resources held by the store.
	Close() error
}

// GuestStore persists guests.
type GuestStore interface {
	CreateGuest(ctx context.Context, guest *models.Guest) error
	GetGuest(ctx context.Context, id string) (*models.Guest, error)
	ListGuests(ctx context.Context) ([]models.Guest, error)
	UpdateGuest(ctx context.Context, guest *models.Guest) error
	DeleteGuest(ctx context.Context, id string) error
}

// VendorStore persists vendors and answers the counts used by budget reports.
type VendorStore interface {
	CreateVendor(ctx context.Context, vendor *models.Vendor) error
	GetVendor(ctx context.Context, id string) (*models.Vendor, error)
	ListVendors(ctx context.Context, filter models.VendorFilter) ([]models.Vendor, error)
	UpdateVendor(ctx context.Context, vendor *models.Vendor) error
	DeleteVendor(ctx context.Context, id string) error
	CountVendors(ctx context.Context) (int, error)
	CountVendorsByStatus(ctx context.Context, status models.PaymentStatus) (int, error)
}

// ActivityStore persists activities.
type ActivityStore interface {
	CreateActivity(ctx context.Context, activity *models.Activity) error
	GetActivity(ctx context.Context, id string) (*models.Activity, error)
	ListActivities(ctx context.Context) ([]models.Activity, error)
	// ListPricedActivities returns activities with a non-null cost per person.
	ListPricedActivities(ctx context.Context) ([]models.Activity, error)
	// ListSubsidizedActivities returns activities with a non-null host subsidy.
	ListSubsidizedActivities(ctx context.Context) ([]models.Activity, error)
	UpdateActivity(ctx context.Context, activity *models.Activity) error
	DeleteActivity(ctx context.Context, id string) error
}

// EventStore persists events.
type EventStore interface {
	CreateEvent(ctx context.Context, event *models.Event) error
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	ListEvents(ctx context.Context) ([]models.Event, error)
	UpdateEvent(ctx context.Context, event *models.Event) error
	DeleteEvent(ctx context.Context, id string) error
}

// LocationStore persists locations.
type LocationStore interface {
	CreateLocation(ctx context.Context, location *models.Location) error
	GetLocation(ctx context.Context, id string) (*models.Location, error)
	ListLocations(ctx context.Context) ([]models.Location, error)
	UpdateLocation(ctx context.Context, location *models.Location) error
	DeleteLocation(ctx context.Context, id string) error
}

// AccommodationStore persists accommodations, room types and room assignments.
type AccommodationStore interface {
	CreateAccommodation(ctx context.Context, accommodation *models.Accommodation) error
	GetAccommodation(ctx context.Context, id string) (*models.Accommodation, error)
	ListAccommodations(ctx context.Context) ([]models.Accommodation, error)
	UpdateAccommodation(ctx context.Context, accommodation *models.Accommodation) error
	DeleteAccommodation(ctx context.Context, id string) error

	CreateRoomType(ctx context.Context, roomType *models.RoomType) error
	GetRoomType(ctx context.Context, id string) (*models.RoomType, error)
	ListRoomTypes(ctx context.Context, accommodationID string) ([]models.RoomType, error)
	DeleteRoomType(ctx context.Context, id string) error

	// CreateRoomAssignment returns ErrConflict when the guest is already
	// assigned to the room type.
	CreateRoomAssignment(ctx context.Context, assignment *models.RoomAssignment) error
	GetRoomAssignment(ctx context.Context, id string) (*models.RoomAssignment, error)
	ListRoomAssignments(ctx context.Context, roomTypeID string) ([]models.RoomAssignment, error)
	DeleteRoomAssignment(ctx context.Context, id string) error
}

// RSVPStore persists RSVPs and answers attendee counts.
type RSVPStore interface {
	// CreateRSVP returns ErrConflict when the guest already has an RSVP for
	// the activity.
	CreateRSVP(ctx context.Context, rsvp *models.RSVP) error
	GetRSVP(ctx context.Context, id string) (*models.RSVP, error)
	ListRSVPsByActivity(ctx context.Context, activityID string) ([]models.RSVP, error)
	UpdateRSVP(ctx context.Context, rsvp *models.RSVP) error
	DeleteRSVP(ctx context.Context, id string) error

	// CountAttending returns the number of RSVPs for the activity with
	// status "attending". This is the attendee count used by activity cost
	// extrapolation.
	CountAttending(ctx context.Context, activityID string) (int, error)
}

// AdminUserStore persists planner accounts for the admin API.
type AdminUserStore interface {
	CreateUser(ctx context.Context, user *models.AdminUser) error
	GetUserByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	GetUserByID(ctx context.Context, id string) (*models.AdminUser, error)
}
