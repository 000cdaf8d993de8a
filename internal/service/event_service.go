package service

import (
	"context"
	"log/slog"

	"github.com/hmorales/wedplan/internal/models"
	"github.com/hmorales/wedplan/internal/result"
	"github.com/hmorales/wedplan/internal/sanitize"
	"github.com/hmorales/wedplan/internal/storage"
)

// EventService manages the wedding event schedule.
type EventService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewEventService creates a new event service.
func NewEventService(store storage.Store, logger *slog.Logger) *EventService {
	return &EventService{store: store, logger: logger}
}

// Create validates and persists a new event.
func (s *EventService) Create(ctx context.Context, in *models.CreateEventInput) (event *models.Event, rerr *result.Error) {
	defer result.Recover(&rerr)

	var issues []result.Issue
	if in.Name == "" {
		issues = append(issues, result.Issue{Field: "name", Message: "name is required"})
	}
	if in.Date == "" {
		issues = append(issues, result.Issue{Field: "date", Message: "date is required"})
	}
	if len(issues) > 0 {
		return nil, result.Issues(issues)
	}

	event = &models.Event{
		Name:        in.Name,
		Description: sanitize.TextPtr(in.Description),
		Date:        in.Date,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		LocationID:  in.LocationID,
		Attire:      in.Attire,
	}
	if err := s.store.CreateEvent(ctx, event); err != nil {
		s.logger.Error("Failed to create event", "error", err)
		return nil, result.FromStore(err, "Event not found")
	}

	s.logger.Info("Event created", "event_id", event.ID, "name", event.Name)
	return event, nil
}

// Get retrieves an event by ID.
func (s *EventService) Get(ctx context.Context, id string) (event *models.Event, rerr *result.Error) {
	defer result.Recover(&rerr)

	event, err := s.store.GetEvent(ctx, id)
	if err != nil {
		return nil, result.FromStore(err, "Event not found")
	}
	return event, nil
}

// List retrieves all events in chronological order.
func (s *EventService) List(ctx context.Context) (events []models.Event, rerr *result.Error) {
	defer result.Recover(&rerr)

	events, err := s.store.ListEvents(ctx)
	if err != nil {
		return nil, result.FromStore(err, "Events not found")
	}
	return events, nil
}

// Update applies a partial edit to an existing event.
func (s *EventService) Update(ctx context.Context, id string, in *models.UpdateEventInput) (event *models.Event, rerr *result.Error) {
	defer result.Recover(&rerr)

	event, err := s.store.GetEvent(ctx, id)
	if err != nil {
		return nil, result.FromStore(err, "Event not found")
	}

	var issues []result.Issue
	if in.Name != nil {
		if *in.Name == "" {
			issues = append(issues, result.Issue{Field: "name", Message: "name cannot be empty"})
		}
		event.Name = *in.Name
	}
	if in.Date != nil {
		if *in.Date == "" {
			issues = append(issues, result.Issue{Field: "date", Message: "date cannot be empty"})
		}
		event.Date = *in.Date
	}
	if len(issues) > 0 {
		return nil, result.Issues(issues)
	}

	if in.Description != nil {
		event.Description = sanitize.TextPtr(in.Description.Value)
	}
	if in.StartTime != nil {
		event.StartTime = in.StartTime.Value
	}
	if in.EndTime != nil {
		event.EndTime = in.EndTime.Value
	}
	if in.LocationID != nil {
		event.LocationID = in.LocationID.Value
	}
	if in.Attire != nil {
		event.Attire = in.Attire.Value
	}

	if err := s.store.UpdateEvent(ctx, event); err != nil {
		return nil, result.FromStore(err, "Event not found")
	}
	return event, nil
}

// Delete removes an event by ID.
func (s *EventService) Delete(ctx context.Context, id string) (rerr *result.Error) {
	defer result.Recover(&rerr)

	if err := s.store.DeleteEvent(ctx, id); err != nil {
		return result.FromStore(err, "Event not found")
	}
	s.logger.Info("Event deleted", "event_id", id)
	return nil
}
