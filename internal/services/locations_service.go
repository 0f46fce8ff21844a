package services

import (
	"context"
	"time"

	"github.com/architeacher/inventory/internal/domain/model"
	"github.com/architeacher/inventory/internal/ports"
)

type LocationsService struct {
	tx              ports.Transactor
	locations       ports.LocationsRepository
	locationHistory ports.LocationHistoryRepository
	devices         ports.DevicesRepository
	history         ports.HistoryRepository
	now             func() time.Time
}

func NewLocationsService(
	tx ports.Transactor,
	locations ports.LocationsRepository,
	locationHistory ports.LocationHistoryRepository,
	devices ports.DevicesRepository,
	history ports.HistoryRepository,
) *LocationsService {
	return &LocationsService{
		tx:              tx,
		locations:       locations,
		locationHistory: locationHistory,
		devices:         devices,
		history:         history,
		now:             utcNow,
	}
}

func (s *LocationsService) CreateLocation(ctx context.Context, name, description string) (*model.Location, error) {
	location, err := model.NewLocation(name, description)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.ensureNameFree(ctx, name, model.LocationID{}); err != nil {
			return err
		}

		return s.locations.Create(ctx, location)
	})
	if err != nil {
		return nil, err
	}

	return location, nil
}

func (s *LocationsService) GetLocation(ctx context.Context, id model.LocationID) (*model.Location, error) {
	return s.locations.FetchByID(ctx, id)
}

func (s *LocationsService) FindLocationByName(ctx context.Context, name string) (*model.Location, error) {
	return s.locations.FetchByName(ctx, name)
}

func (s *LocationsService) ListLocations(ctx context.Context) ([]*model.Location, error) {
	return s.locations.List(ctx)
}

// UpdateLocation overwrites name and description and logs the change when anything differs.
func (s *LocationsService) UpdateLocation(ctx context.Context, id model.LocationID, name, description string) (*model.Location, error) {
	var updated *model.Location

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		location, err := s.locations.FetchByID(ctx, id)
		if err != nil {
			return err
		}

		if name != location.Name {
			if err := s.ensureNameFree(ctx, name, id); err != nil {
				return err
			}
		}

		entry, changed, err := location.Update(name, description, s.now())
		if err != nil {
			return err
		}

		updated = location

		if !changed {
			return nil
		}

		if err := s.locations.Update(ctx, location); err != nil {
			return err
		}

		return s.locationHistory.Append(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteLocation unassigns every device at the location, logging one LOCATION_UNASSIGNED entry
// per device, then removes the location together with its own history.
func (s *LocationsService) DeleteLocation(ctx context.Context, id model.LocationID) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.locations.FetchByID(ctx, id); err != nil {
			return err
		}

		detached, err := s.devices.DetachFromLocation(ctx, id)
		if err != nil {
			return err
		}

		now := s.now()

		entries := make([]model.HistoryEntry, 0, len(detached))
		for _, device := range detached {
			entries = append(entries, device.MoveTo(nil, now).HistoryEntry(model.ActionLocationUnassigned, now))
		}

		if len(entries) > 0 {
			if err := s.history.Append(ctx, entries...); err != nil {
				return err
			}
		}

		return s.locations.Delete(ctx, id)
	})
}

func (s *LocationsService) LocationHistory(ctx context.Context, id model.LocationID) ([]*model.LocationHistoryEntry, error) {
	if _, err := s.locations.FetchByID(ctx, id); err != nil {
		return nil, err
	}

	return s.locationHistory.ListByLocation(ctx, id)
}

// ensureNameFree fails when a location other than self already uses name.
func (s *LocationsService) ensureNameFree(ctx context.Context, name string, self model.LocationID) error {
	existing, err := s.locations.FetchByName(ctx, name)
	if err != nil {
		return err
	}

	if existing != nil && existing.ID != self {
		return model.ErrDuplicateLocationName
	}

	return nil
}
