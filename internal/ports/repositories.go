package ports

import (
	"context"

	"github.com/architeacher/inventory/internal/domain/model"
)

type (
	LocationsRepository interface {
		Create(ctx context.Context, location *model.Location) error

		// FetchByID returns model.ErrLocationNotFound when the location is absent.
		FetchByID(ctx context.Context, id model.LocationID) (*model.Location, error)

		// FetchByName returns nil, nil when no location carries the name.
		FetchByName(ctx context.Context, name string) (*model.Location, error)

		List(ctx context.Context) ([]*model.Location, error)
		Update(ctx context.Context, location *model.Location) error
		Delete(ctx context.Context, id model.LocationID) error
		Exists(ctx context.Context, id model.LocationID) (bool, error)
	}

	// DevicesRepository persists the scalar device record. Ports live in PortsRepository.
	DevicesRepository interface {
		Create(ctx context.Context, device *model.Device) error

		// FetchByID resolves the device location but leaves Ports empty.
		FetchByID(ctx context.Context, id model.DeviceID) (*model.Device, error)

		// FetchForUpdate is FetchByID holding a row lock until the surrounding transaction ends.
		FetchForUpdate(ctx context.Context, id model.DeviceID) (*model.Device, error)

		List(ctx context.Context) ([]*model.Device, error)
		Update(ctx context.Context, device *model.Device) error
		Delete(ctx context.Context, id model.DeviceID) error

		// DetachFromLocation clears the location of every device assigned to id and returns those devices as they were.
		DetachFromLocation(ctx context.Context, id model.LocationID) ([]*model.Device, error)
	}

	PortsRepository interface {
		DeleteByDevice(ctx context.Context, deviceID model.DeviceID) error
		InsertAll(ctx context.Context, ports []model.Port) error

		// ListByDevices groups ports per device in insertion order.
		ListByDevices(ctx context.Context, deviceIDs ...model.DeviceID) (map[model.DeviceID][]model.Port, error)
	}

	HistoryRepository interface {
		Append(ctx context.Context, entries ...model.HistoryEntry) error

		// List returns entries newest first.
		List(ctx context.Context, filter model.HistoryFilter) ([]*model.HistoryEntry, error)
	}

	LocationHistoryRepository interface {
		Append(ctx context.Context, entry model.LocationHistoryEntry) error
		ListByLocation(ctx context.Context, id model.LocationID) ([]*model.LocationHistoryEntry, error)
	}
)
