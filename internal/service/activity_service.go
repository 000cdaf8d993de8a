package service

import (
	"context"
	"log/slog"

	"github.com/hmorales/wedplan/internal/calculator"
	"github.com/hmorales/wedplan/internal/models"
	"github.com/hmorales/wedplan/internal/result"
	"github.com/hmorales/wedplan/internal/sanitize"
	"github.com/hmorales/wedplan/internal/storage"
)

// ActivityService manages activities and their derived costs.
type ActivityService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewActivityService creates a new activity service.
func NewActivityService(store storage.Store, logger *slog.Logger) *ActivityService {
	return &ActivityService{store: store, logger: logger}
}

func validateActivityCosts(costPerPerson, hostSubsidy *float64) []result.Issue {
	var issues []result.Issue
	if costPerPerson != nil && *costPerPerson < 0 {
		issues = append(issues, result.Issue{Field: "costPerPerson", Message: "costPerPerson cannot be negative"})
	}
	if hostSubsidy != nil && *hostSubsidy < 0 {
		issues = append(issues, result.Issue{Field: "hostSubsidy", Message: "hostSubsidy cannot be negative"})
	}
	if costPerPerson != nil && hostSubsidy != nil && *hostSubsidy > *costPerPerson {
		issues = append(issues, result.Issue{Field: "hostSubsidy", Message: "hostSubsidy cannot exceed costPerPerson"})
	}
	if costPerPerson == nil && hostSubsidy != nil && *hostSubsidy > 0 {
		issues = append(issues, result.Issue{Field: "hostSubsidy", Message: "hostSubsidy requires costPerPerson"})
	}
	return issues
}

// Create validates and persists a new activity.
func (s *ActivityService) Create(ctx context.Context, in *models.CreateActivityInput) (activity *models.Activity, rerr *result.Error) {
	defer result.Recover(&rerr)

	var issues []result.Issue
	if in.Name == "" {
		issues = append(issues, result.Issue{Field: "name", Message: "name is required"})
	}
	issues = append(issues, validateActivityCosts(in.CostPerPerson, in.HostSubsidy)...)
	if len(issues) > 0 {
		return nil, result.Issues(issues)
	}

	activity = &models.Activity{
		Name:          in.Name,
		Description:   sanitize.TextPtr(in.Description),
		Date:          in.Date,
		StartTime:     in.StartTime,
		EndTime:       in.EndTime,
		LocationID:    in.LocationID,
		CostPerPerson: in.CostPerPerson,
		HostSubsidy:   in.HostSubsidy,
	}
	if err := s.store.CreateActivity(ctx, activity); err != nil {
		s.logger.Error("Failed to create activity", "error", err)
		return nil, result.FromStore(err, "Activity not found")
	}

	s.logger.Info("Activity created", "activity_id", activity.ID, "name", activity.Name)
	return activity, nil
}

// Get retrieves an activity by ID.
func (s *ActivityService) Get(ctx context.Context, id string) (activity *models.Activity, rerr *result.Error) {
	defer result.Recover(&rerr)

	activity, err := s.store.GetActivity(ctx, id)
	if err != nil {
		return nil, result.FromStore(err, "Activity not found")
	}
	return activity, nil
}

// List retrieves all activities.
func (s *ActivityService) List(ctx context.Context) (activities []models.Activity, rerr *result.Error) {
	defer result.Recover(&rerr)

	activities, err := s.store.ListActivities(ctx)
	if err != nil {
		return nil, result.FromStore(err, "Activities not found")
	}
	return activities, nil
}

// Update applies a partial edit to an existing activity.
func (s *ActivityService) Update(ctx context.Context, id string, in *models.UpdateActivityInput) (activity *models.Activity, rerr *result.Error) {
	defer result.Recover(&rerr)

	activity, err := s.store.GetActivity(ctx, id)
	if err != nil {
		return nil, result.FromStore(err, "Activity not found")
	}

	var issues []result.Issue
	if in.Name != nil {
		if *in.Name == "" {
			issues = append(issues, result.Issue{Field: "name", Message: "name cannot be empty"})
		}
		activity.Name = *in.Name
	}
	cost := activity.CostPerPerson
	subsidy := activity.HostSubsidy
	if in.CostPerPerson != nil {
		cost = in.CostPerPerson
	}
	if in.HostSubsidy != nil {
		subsidy = in.HostSubsidy
	}
	issues = append(issues, validateActivityCosts(cost, subsidy)...)
	if len(issues) > 0 {
		return nil, result.Issues(issues)
	}
	activity.CostPerPerson = cost
	activity.HostSubsidy = subsidy

	if in.Description != nil {
		activity.Description = sanitize.TextPtr(in.Description.Value)
	}
	if in.Date != nil {
		activity.Date = in.Date.Value
	}
	if in.StartTime != nil {
		activity.StartTime = in.StartTime.Value
	}
	if in.EndTime != nil {
		activity.EndTime = in.EndTime.Value
	}
	if in.LocationID != nil {
		activity.LocationID = in.LocationID.Value
	}

	if err := s.store.UpdateActivity(ctx, activity); err != nil {
		return nil, result.FromStore(err, "Activity not found")
	}
	return activity, nil
}

// Delete removes an activity by ID.
func (s *ActivityService) Delete(ctx context.Context, id string) (rerr *result.Error) {
	defer result.Recover(&rerr)

	if err := s.store.DeleteActivity(ctx, id); err != nil {
		return result.FromStore(err, "Activity not found")
	}
	s.logger.Info("Activity deleted", "activity_id", id)
	return nil
}

// Cost extrapolates the activity's total cost from its attending RSVP count.
func (s *ActivityService) Cost(ctx context.Context, id string) (cost *models.ActivityCost, rerr *result.Error) {
	defer result.Recover(&rerr)

	activity, err := s.store.GetActivity(ctx, id)
	if err != nil {
		return nil, result.FromStore(err, "Activity not found")
	}

	attendees, err := s.store.CountAttending(ctx, id)
	if err != nil {
		return nil, result.FromStore(err, "Activity not found")
	}

	c := calculator.ActivityCost(activity, attendees)
	return &c, nil
}
