package service

import (
	"context"
	"log/slog"

	"github.com/hmorales/wedplan/internal/models"
	"github.com/hmorales/wedplan/internal/result"
	"github.com/hmorales/wedplan/internal/sanitize"
	"github.com/hmorales/wedplan/internal/storage"
)

// LocationService manages venues.
type LocationService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewLocationService creates a new location service.
func NewLocationService(store storage.Store, logger *slog.Logger) *LocationService {
	return &LocationService{store: store, logger: logger}
}

// Create validates and persists a new location.
func (s *LocationService) Create(ctx context.Context, in *models.CreateLocationInput) (location *models.Location, rerr *result.Error) {
	defer result.Recover(&rerr)

	if in.Name == "" {
		return nil, result.Issues([]result.Issue{{Field: "name", Message: "name is required"}})
	}

	location = &models.Location{
		Name:        in.Name,
		Address:     in.Address,
		City:        in.City,
		Country:     in.Country,
		Description: sanitize.TextPtr(in.Description),
		MapURL:      in.MapURL,
	}
	if err := s.store.CreateLocation(ctx, location); err != nil {
		s.logger.Error("Failed to create location", "error", err)
		return nil, result.FromStore(err, "Location not found")
	}

	s.logger.Info("Location created", "location_id", location.ID, "name", location.Name)
	return location, nil
}

// Get retrieves a location by ID.
func (s *LocationService) Get(ctx context.Context, id string) (location *models.Location, rerr *result.Error) {
	defer result.Recover(&rerr)

	location, err := s.store.GetLocation(ctx, id)
	if err != nil {
		return nil, result.FromStore(err, "Location not found")
	}
	return location, nil
}

// List retrieves all locations.
func (s *LocationService) List(ctx context.Context) (locations []models.Location, rerr *result.Error) {
	defer result.Recover(&rerr)

	locations, err := s.store.ListLocations(ctx)
	if err != nil {
		return nil, result.FromStore(err, "Locations not found")
	}
	return locations, nil
}

// Update applies a partial edit to an existing location.
func (s *LocationService) Update(ctx context.Context, id string, in *models.UpdateLocationInput) (location *models.Location, rerr *result.Error) {
	defer result.Recover(&rerr)

	location, err := s.store.GetLocation(ctx, id)
	if err != nil {
		return nil, result.FromStore(err, "Location not found")
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, result.Issues([]result.Issue{{Field: "name", Message: "name cannot be empty"}})
		}
		location.Name = *in.Name
	}
	if in.Address != nil {
		location.Address = in.Address.Value
	}
	if in.City != nil {
		location.City = in.City.Value
	}
	if in.Country != nil {
		location.Country = in.Country.Value
	}
	if in.Description != nil {
		location.Description = sanitize.TextPtr(in.Description.Value)
	}
	if in.MapURL != nil {
		location.MapURL = in.MapURL.Value
	}

	if err := s.store.UpdateLocation(ctx, location); err != nil {
		return nil, result.FromStore(err, "Location not found")
	}
	return location, nil
}

// Delete removes a location by ID.
func (s *LocationService) Delete(ctx context.Context, id string) (rerr *result.Error) {
	defer result.Recover(&rerr)

	if err := s.store.DeleteLocation(ctx, id); err != nil {
		return result.FromStore(err, "Location not found")
	}
	s.logger.Info("Location deleted", "location_id", id)
	return nil
}
