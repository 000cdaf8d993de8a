package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hmorales/wedplan/internal/guestcsv"
	"github.com/hmorales/wedplan/internal/models"
	"github.com/hmorales/wedplan/internal/result"
	"github.com/hmorales/wedplan/internal/sanitize"
	"github.com/hmorales/wedplan/internal/storage"
)

// GuestService manages the guest list, including CSV export and import.
type GuestService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewGuestService creates a new guest service.
func NewGuestService(store storage.Store, logger *slog.Logger) *GuestService {
	return &GuestService{store: store, logger: logger}
}

func validateGuestInput(in *models.CreateGuestInput) []result.Issue {
	var issues []result.Issue
	if in.GroupID == "" {
		issues = append(issues, result.Issue{Field: "groupId", Message: "groupId is required"})
	}
	if in.FirstName == "" {
		issues = append(issues, result.Issue{Field: "firstName", Message: "firstName is required"})
	}
	if in.LastName == "" {
		issues = append(issues, result.Issue{Field: "lastName", Message: "lastName is required"})
	}
	if !models.ValidAgeType(in.AgeType) {
		issues = append(issues, result.Issue{Field: "ageType", Message: fmt.Sprintf("unknown age type %q", in.AgeType)})
	}
	if !models.ValidGuestType(in.GuestType) {
		issues = append(issues, result.Issue{Field: "guestType", Message: fmt.Sprintf("unknown guest type %q", in.GuestType)})
	}
	return issues
}

func guestFromInput(in *models.CreateGuestInput) *models.Guest {
	return &models.Guest{
		GroupID:             in.GroupID,
		FirstName:           in.FirstName,
		LastName:            in.LastName,
		Email:               in.Email,
		Phone:               in.Phone,
		AgeType:             in.AgeType,
		GuestType:           in.GuestType,
		DietaryRestrictions: sanitize.TextPtr(in.DietaryRestrictions),
		PlusOneName:         sanitize.TextPtr(in.PlusOneName),
		PlusOneAttending:    in.PlusOneAttending,
		ArrivalDate:         in.ArrivalDate,
		DepartureDate:       in.DepartureDate,
		AirportCode:         in.AirportCode,
		FlightNumber:        in.FlightNumber,
		InvitationSent:      in.InvitationSent,
		InvitationSentDate:  in.InvitationSentDate,
		RSVPDeadline:        in.RSVPDeadline,
		Notes:               sanitize.TextPtr(in.Notes),
	}
}

// Create validates and persists a new guest.
func (s *GuestService) Create(ctx context.Context, in *models.CreateGuestInput) (guest *models.Guest, rerr *result.Error) {
	defer result.Recover(&rerr)

	if issues := validateGuestInput(in); len(issues) > 0 {
		return nil, result.Issues(issues)
	}

	guest = guestFromInput(in)
	if err := s.store.CreateGuest(ctx, guest); err != nil {
		s.logger.Error("Failed to create guest", "error", err)
		return nil, result.FromStore(err, "Guest not found")
	}

	s.logger.Info("Guest created", "guest_id", guest.ID, "group_id", guest.GroupID)
	return guest, nil
}

// Get retrieves a guest by ID.
func (s *GuestService) Get(ctx context.Context, id string) (guest *models.Guest, rerr *result.Error) {
	defer result.Recover(&rerr)

	guest, err := s.store.GetGuest(ctx, id)
	if err != nil {
		return nil, result.FromStore(err, "Guest not found")
	}
	return guest, nil
}

// List retrieves all guests.
func (s *GuestService) List(ctx context.Context) (guests []models.Guest, rerr *result.Error) {
	defer result.Recover(&rerr)

	guests, err := s.store.ListGuests(ctx)
	if err != nil {
		return nil, result.FromStore(err, "Guests not found")
	}
	return guests, nil
}

// Update applies a partial edit to an existing guest.
func (s *GuestService) Update(ctx context.Context, id string, in *models.UpdateGuestInput) (guest *models.Guest, rerr *result.Error) {
	defer result.Recover(&rerr)

	guest, err := s.store.GetGuest(ctx, id)
	if err != nil {
		return nil, result.FromStore(err, "Guest not found")
	}

	var issues []result.Issue
	if in.GroupID != nil {
		if *in.GroupID == "" {
			issues = append(issues, result.Issue{Field: "groupId", Message: "groupId cannot be empty"})
		}
		guest.GroupID = *in.GroupID
	}
	if in.FirstName != nil {
		if *in.FirstName == "" {
			issues = append(issues, result.Issue{Field: "firstName", Message: "firstName cannot be empty"})
		}
		guest.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		if *in.LastName == "" {
			issues = append(issues, result.Issue{Field: "lastName", Message: "lastName cannot be empty"})
		}
		guest.LastName = *in.LastName
	}
	if in.AgeType != nil {
		if !models.ValidAgeType(*in.AgeType) {
			issues = append(issues, result.Issue{Field: "ageType", Message: fmt.Sprintf("unknown age type %q", *in.AgeType)})
		}
		guest.AgeType = *in.AgeType
	}
	if in.GuestType != nil {
		if !models.ValidGuestType(*in.GuestType) {
			issues = append(issues, result.Issue{Field: "guestType", Message: fmt.Sprintf("unknown guest type %q", *in.GuestType)})
		}
		guest.GuestType = *in.GuestType
	}
	if len(issues) > 0 {
		return nil, result.Issues(issues)
	}

	if in.Email != nil {
		guest.Email = in.Email.Value
	}
	if in.Phone != nil {
		guest.Phone = in.Phone.Value
	}
	if in.DietaryRestrictions != nil {
		guest.DietaryRestrictions = sanitize.TextPtr(in.DietaryRestrictions.Value)
	}
	if in.PlusOneName != nil {
		guest.PlusOneName = sanitize.TextPtr(in.PlusOneName.Value)
	}
	if in.PlusOneAttending != nil {
		guest.PlusOneAttending = *in.PlusOneAttending
	}
	if in.ArrivalDate != nil {
		guest.ArrivalDate = in.ArrivalDate.Value
	}
	if in.DepartureDate != nil {
		guest.DepartureDate = in.DepartureDate.Value
	}
	if in.AirportCode != nil {
		guest.AirportCode = in.AirportCode.Value
	}
	if in.FlightNumber != nil {
		guest.FlightNumber = in.FlightNumber.Value
	}
	if in.InvitationSent != nil {
		guest.InvitationSent = *in.InvitationSent
	}
	if in.InvitationSentDate != nil {
		guest.InvitationSentDate = in.InvitationSentDate.Value
	}
	if in.RSVPDeadline != nil {
		guest.RSVPDeadline = in.RSVPDeadline.Value
	}
	if in.Notes != nil {
		guest.Notes = sanitize.TextPtr(in.Notes.Value)
	}

	if err := s.store.UpdateGuest(ctx, guest); err != nil {
		return nil, result.FromStore(err, "Guest not found")
	}
	return guest, nil
}

// Delete removes a guest by ID.
func (s *GuestService) Delete(ctx context.Context, id string) (rerr *result.Error) {
	defer result.Recover(&rerr)

	if err := s.store.DeleteGuest(ctx, id); err != nil {
		return result.FromStore(err, "Guest not found")
	}
	s.logger.Info("Guest deleted", "guest_id", id)
	return nil
}

// ExportCSV serializes the full guest list into the fixed CSV format.
func (s *GuestService) ExportCSV(ctx context.Context) (csv string, rerr *result.Error) {
	defer result.Recover(&rerr)

	guests, err := s.store.ListGuests(ctx)
	if err != nil {
		return "", result.FromStore(err, "Guests not found")
	}
	return guestcsv.Export(guests), nil
}

// ImportFailure describes one record that failed to persist during an import.
type ImportFailure struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// ImportSummary reports the outcome of a CSV import.
type ImportSummary struct {
	Created  []models.Guest  `json:"created"`
	Failures []ImportFailure `json:"failures,omitempty"`
}

// ImportCSV parses a CSV document and persists every row.
//
// Validation runs over the whole batch before any write: a header problem or
// any failing line rejects the import with VALIDATION_ERROR and nothing is
// persisted. Once validation passes, rows are persisted one at a time; if any
// create fails the outcome is PARTIAL_IMPORT_FAILURE carrying both the guests
// that were created and the per-line failures.
func (s *GuestService) ImportCSV(ctx context.Context, content string) (summary *ImportSummary, rerr *result.Error) {
	defer result.Recover(&rerr)

	rows, lineErrs, err := guestcsv.Parse(content)
	if err != nil {
		return nil, result.Validation(err.Error(), nil)
	}

	var issues []result.Issue
	for _, le := range lineErrs {
		issues = append(issues, result.Issue{
			Field:   fmt.Sprintf("line %d", le.Line),
			Message: le.Message,
		})
	}
	for _, row := range rows {
		for _, issue := range validateGuestInput(&row.Guest) {
			issues = append(issues, result.Issue{
				Field:   fmt.Sprintf("line %d: %s", row.Line, issue.Field),
				Message: issue.Message,
			})
		}
	}
	if len(issues) > 0 {
		return nil, result.Issues(issues)
	}

	summary = &ImportSummary{}
	for _, row := range rows {
		guest := guestFromInput(&row.Guest)
		if err := s.store.CreateGuest(ctx, guest); err != nil {
			s.logger.Error("Import row failed", "line", row.Line, "error", err)
			summary.Failures = append(summary.Failures, ImportFailure{
				Line:    row.Line,
				Message: err.Error(),
			})
			continue
		}
		summary.Created = append(summary.Created, *guest)
	}

	if len(summary.Failures) > 0 {
		return nil, &result.Error{
			Code:    result.CodePartialImport,
			Message: fmt.Sprintf("%d of %d rows failed to import", len(summary.Failures), len(rows)),
			Details: summary,
		}
	}

	s.logger.Info("Guests imported", "count", len(summary.Created))
	return summary, nil
}
