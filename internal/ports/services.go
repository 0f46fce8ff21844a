//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

//counterfeiter:generate -o ../mocks/fake_devices_service.go . DevicesService
//counterfeiter:generate -o ../mocks/fake_locations_service.go . LocationsService
//counterfeiter:generate -o ../mocks/fake_history_service.go . HistoryService

import (
	"context"

	"github.com/architeacher/inventory/internal/domain/model"
)

type (
	CreateDeviceParams struct {
		IP          string
		Status      string
		Description string
		Protocol    string
		LocationID  *model.LocationID
		Ports       []model.PortSpec
	}

	// DevicesService is the device mutation workflow. Every mutation is atomic and
	// returns the device with its location and ports resolved.
	DevicesService interface {
		CreateDevice(ctx context.Context, params CreateDeviceParams) (*model.Device, error)
		GetDevice(ctx context.Context, id model.DeviceID) (*model.Device, error)
		ListDevices(ctx context.Context) ([]*model.Device, error)
		UpdateDevice(ctx context.Context, id model.DeviceID, update model.DeviceUpdate) (*model.Device, error)
		AssignLocation(ctx context.Context, id model.DeviceID, locationID model.LocationID) (*model.Device, error)
		ChangeLocation(ctx context.Context, id model.DeviceID, locationID model.LocationID) (*model.Device, error)
		ChangeStatus(ctx context.Context, id model.DeviceID, status string) (*model.Device, error)
		ReplacePorts(ctx context.Context, id model.DeviceID, ports []model.PortSpec) (*model.Device, error)
		DeleteDevice(ctx context.Context, id model.DeviceID) error
	}

	LocationsService interface {
		CreateLocation(ctx context.Context, name, description string) (*model.Location, error)
		GetLocation(ctx context.Context, id model.LocationID) (*model.Location, error)

		// FindLocationByName returns nil, nil when the name is free.
		FindLocationByName(ctx context.Context, name string) (*model.Location, error)

		ListLocations(ctx context.Context) ([]*model.Location, error)
		UpdateLocation(ctx context.Context, id model.LocationID, name, description string) (*model.Location, error)
		DeleteLocation(ctx context.Context, id model.LocationID) error
		LocationHistory(ctx context.Context, id model.LocationID) ([]*model.LocationHistoryEntry, error)
	}

	HistoryService interface {
		ListHistory(ctx context.Context, filter model.HistoryFilter) ([]*model.HistoryEntry, error)
	}
)
