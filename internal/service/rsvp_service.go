package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hmorales/wedplan/internal/models"
	"github.com/hmorales/wedplan/internal/result"
	"github.com/hmorales/wedplan/internal/sanitize"
	"github.com/hmorales/wedplan/internal/storage"
)

// RSVPService manages guest responses to activity invitations.
type RSVPService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewRSVPService creates a new RSVP service.
func NewRSVPService(store storage.Store, logger *slog.Logger) *RSVPService {
	return &RSVPService{store: store, logger: logger}
}

// Create records a guest's response to an activity. Both the guest and the
// activity must exist; a second RSVP for the same pair is a conflict.
func (s *RSVPService) Create(ctx context.Context, in *models.CreateRSVPInput) (rsvp *models.RSVP, rerr *result.Error) {
	defer result.Recover(&rerr)

	var issues []result.Issue
	if in.GuestID == "" {
		issues = append(issues, result.Issue{Field: "guestId", Message: "guestId is required"})
	}
	if in.ActivityID == "" {
		issues = append(issues, result.Issue{Field: "activityId", Message: "activityId is required"})
	}
	if in.Status == "" {
		in.Status = models.RSVPPending
	}
	if !models.ValidRSVPStatus(in.Status) {
		issues = append(issues, result.Issue{Field: "status", Message: fmt.Sprintf("unknown status %q", in.Status)})
	}
	if in.GuestCount != nil && *in.GuestCount < 1 {
		issues = append(issues, result.Issue{Field: "guestCount", Message: "guestCount must be at least 1"})
	}
	if len(issues) > 0 {
		return nil, result.Issues(issues)
	}

	if _, err := s.store.GetGuest(ctx, in.GuestID); err != nil {
		return nil, result.FromStore(err, "Guest not found")
	}
	if _, err := s.store.GetActivity(ctx, in.ActivityID); err != nil {
		return nil, result.FromStore(err, "Activity not found")
	}

	rsvp = &models.RSVP{
		GuestID:    in.GuestID,
		ActivityID: in.ActivityID,
		Status:     in.Status,
		GuestCount: in.GuestCount,
		Notes:      sanitize.TextPtr(in.Notes),
	}
	if rsvp.Status != models.RSVPPending {
		now := time.Now().Unix()
		rsvp.RespondedAt = &now
	}

	if err := s.store.CreateRSVP(ctx, rsvp); err != nil {
		s.logger.Error("Failed to create rsvp", "error", err)
		return nil, result.FromStore(err, "RSVP not found")
	}

	s.logger.Info("RSVP recorded",
		"rsvp_id", rsvp.ID, "guest_id", rsvp.GuestID, "activity_id", rsvp.ActivityID, "status", rsvp.Status)
	return rsvp, nil
}

// Get retrieves an RSVP by ID.
func (s *RSVPService) Get(ctx context.Context, id string) (rsvp *models.RSVP, rerr *result.Error) {
	defer result.Recover(&rerr)

	rsvp, err := s.store.GetRSVP(ctx, id)
	if err != nil {
		return nil, result.FromStore(err, "RSVP not found")
	}
	return rsvp, nil
}

// ListByActivity retrieves every RSVP for an activity.
func (s *RSVPService) ListByActivity(ctx context.Context, activityID string) (rsvps []models.RSVP, rerr *result.Error) {
	defer result.Recover(&rerr)

	rsvps, err := s.store.ListRSVPsByActivity(ctx, activityID)
	if err != nil {
		return nil, result.FromStore(err, "RSVPs not found")
	}
	return rsvps, nil
}

// Update applies a partial edit to an RSVP. The first transition away from
// "pending" stamps RespondedAt.
func (s *RSVPService) Update(ctx context.Context, id string, in *models.UpdateRSVPInput) (rsvp *models.RSVP, rerr *result.Error) {
	defer result.Recover(&rerr)

	rsvp, err := s.store.GetRSVP(ctx, id)
	if err != nil {
		return nil, result.FromStore(err, "RSVP not found")
	}

	var issues []result.Issue
	if in.Status != nil && !models.ValidRSVPStatus(*in.Status) {
		issues = append(issues, result.Issue{Field: "status", Message: fmt.Sprintf("unknown status %q", *in.Status)})
	}
	if in.GuestCount != nil && *in.GuestCount < 1 {
		issues = append(issues, result.Issue{Field: "guestCount", Message: "guestCount must be at least 1"})
	}
	if len(issues) > 0 {
		return nil, result.Issues(issues)
	}

	if in.Status != nil {
		if *in.Status != models.RSVPPending && rsvp.RespondedAt == nil {
			now := time.Now().Unix()
			rsvp.RespondedAt = &now
		}
		rsvp.Status = *in.Status
	}
	if in.GuestCount != nil {
		rsvp.GuestCount = in.GuestCount
	}
	if in.Notes != nil {
		rsvp.Notes = sanitize.TextPtr(in.Notes.Value)
	}

	if err := s.store.UpdateRSVP(ctx, rsvp); err != nil {
		return nil, result.FromStore(err, "RSVP not found")
	}
	return rsvp, nil
}

// Delete removes an RSVP by ID.
func (s *RSVPService) Delete(ctx context.Context, id string) (rerr *result.Error) {
	defer result.Recover(&rerr)

	if err := s.store.DeleteRSVP(ctx, id); err != nil {
		return result.FromStore(err, "RSVP not found")
	}
	s.logger.Info("RSVP deleted", "rsvp_id", id)
	return nil
}
