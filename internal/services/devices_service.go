package services

import (
	"context"
	"time"

	"github.com/architeacher/inventory/internal/domain/model"
	"github.com/architeacher/inventory/internal/ports"
)

// DevicesService is the device mutation workflow. Each mutation reads the device under a row
// lock, applies the change, replaces ports when asked to and appends at most one history entry,
// all inside a single unit of work.
type DevicesService struct {
	tx        ports.Transactor
	devices   ports.DevicesRepository
	portSets  ports.PortsRepository
	locations ports.LocationsRepository
	history   ports.HistoryRepository
	now       func() time.Time
}

func NewDevicesService(
	tx ports.Transactor,
	devices ports.DevicesRepository,
	portSets ports.PortsRepository,
	locations ports.LocationsRepository,
	history ports.HistoryRepository,
) *DevicesService {
	return &DevicesService{
		tx:        tx,
		devices:   devices,
		portSets:  portSets,
		locations: locations,
		history:   history,
		now:       utcNow,
	}
}

func (s *DevicesService) CreateDevice(ctx context.Context, params ports.CreateDeviceParams) (*model.Device, error) {
	device, err := model.NewDevice(model.NewDeviceParams{
		IP:          params.IP,
		Status:      params.Status,
		Description: params.Description,
		Protocol:    params.Protocol,
		LocationID:  params.LocationID,
	})
	if err != nil {
		return nil, err
	}

	portSet, err := model.NewPortSet(device.ID, params.Ports)
	if err != nil {
		return nil, err
	}

	var created *model.Device

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if params.LocationID != nil {
			if err := s.ensureLocation(ctx, *params.LocationID); err != nil {
				return err
			}
		}

		if err := s.devices.Create(ctx, device); err != nil {
			return err
		}

		// A fresh device owns no ports, so the replacement is a plain insert.
		if err := s.portSets.InsertAll(ctx, portSet); err != nil {
			return err
		}

		created, err = s.load(ctx, device.ID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *DevicesService) GetDevice(ctx context.Context, id model.DeviceID) (*model.Device, error) {
	return s.load(ctx, id)
}

func (s *DevicesService) ListDevices(ctx context.Context) ([]*model.Device, error) {
	devices, err := s.devices.List(ctx)
	if err != nil {
		return nil, err
	}

	if len(devices) == 0 {
		return devices, nil
	}

	ids := make([]model.DeviceID, 0, len(devices))
	for _, device := range devices {
		ids = append(ids, device.ID)
	}

	portsByDevice, err := s.portSets.ListByDevices(ctx, ids...)
	if err != nil {
		return nil, err
	}

	for _, device := range devices {
		device.Ports = portsOf(portsByDevice, device.ID)
	}

	return devices, nil
}

func (s *DevicesService) UpdateDevice(ctx context.Context, id model.DeviceID, update model.DeviceUpdate) (*model.Device, error) {
	var updated *model.Device

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		device, err := s.devices.FetchForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if update.IsEmpty() {
			updated, err = s.load(ctx, id)

			return err
		}

		if locationID, ok := update.LocationID.Get(); ok && locationID != nil {
			if err := s.ensureLocation(ctx, *locationID); err != nil {
				return err
			}
		}

		now := s.now()

		transition, err := device.Apply(update, now)
		if err != nil {
			return err
		}

		if err := s.devices.Update(ctx, device); err != nil {
			return err
		}

		if specs, ok := update.Ports.Get(); ok {
			if err := s.replacePorts(ctx, id, specs); err != nil {
				return err
			}
		}

		if transition.Changed() {
			if err := s.history.Append(ctx, transition.HistoryEntry(model.ActionDeviceUpdated, now)); err != nil {
				return err
			}
		}

		updated, err = s.load(ctx, id)

		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *DevicesService) AssignLocation(ctx context.Context, id model.DeviceID, locationID model.LocationID) (*model.Device, error) {
	return s.moveDevice(ctx, id, locationID, model.ActionLocationAssigned)
}

func (s *DevicesService) ChangeLocation(ctx context.Context, id model.DeviceID, locationID model.LocationID) (*model.Device, error) {
	return s.moveDevice(ctx, id, locationID, model.ActionLocationChanged)
}

func (s *DevicesService) ChangeStatus(ctx context.Context, id model.DeviceID, status string) (*model.Device, error) {
	var updated *model.Device

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		device, err := s.devices.FetchForUpdate(ctx, id)
		if err != nil {
			return err
		}

		now := s.now()

		transition, err := device.SetStatus(status, now)
		if err != nil {
			return err
		}

		if err := s.record(ctx, device, transition, model.ActionStatusChanged, now); err != nil {
			return err
		}

		updated, err = s.load(ctx, id)

		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *DevicesService) ReplacePorts(ctx context.Context, id model.DeviceID, specs []model.PortSpec) (*model.Device, error) {
	if err := model.ValidatePortSpecs(specs); err != nil {
		return nil, err
	}

	var updated *model.Device

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.devices.FetchForUpdate(ctx, id); err != nil {
			return err
		}

		if err := s.replacePorts(ctx, id, specs); err != nil {
			return err
		}

		var err error
		updated, err = s.load(ctx, id)

		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteDevice removes the device and its ports. Its history is kept.
func (s *DevicesService) DeleteDevice(ctx context.Context, id model.DeviceID) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.devices.FetchForUpdate(ctx, id); err != nil {
			return err
		}

		return s.devices.Delete(ctx, id)
	})
}

func (s *DevicesService) moveDevice(ctx context.Context, id model.DeviceID, locationID model.LocationID, action model.Action) (*model.Device, error) {
	var updated *model.Device

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		device, err := s.devices.FetchForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if err := s.ensureLocation(ctx, locationID); err != nil {
			return err
		}

		now := s.now()

		if err := s.record(ctx, device, device.MoveTo(&locationID, now), action, now); err != nil {
			return err
		}

		updated, err = s.load(ctx, id)

		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// record persists device and its history entry, or nothing when the transition changed nothing.
func (s *DevicesService) record(ctx context.Context, device *model.Device, t model.Transition, action model.Action, at time.Time) error {
	if !t.Changed() {
		return nil
	}

	if err := s.devices.Update(ctx, device); err != nil {
		return err
	}

	return s.history.Append(ctx, t.HistoryEntry(action, at))
}

func (s *DevicesService) replacePorts(ctx context.Context, id model.DeviceID, specs []model.PortSpec) error {
	portSet, err := model.NewPortSet(id, specs)
	if err != nil {
		return err
	}

	if err := s.portSets.DeleteByDevice(ctx, id); err != nil {
		return err
	}

	return s.portSets.InsertAll(ctx, portSet)
}

func (s *DevicesService) ensureLocation(ctx context.Context, id model.LocationID) error {
	exists, err := s.locations.Exists(ctx, id)
	if err != nil {
		return err
	}

	if !exists {
		return model.ErrUnknownLocation
	}

	return nil
}

func (s *DevicesService) load(ctx context.Context, id model.DeviceID) (*model.Device, error) {
	device, err := s.devices.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}

	portsByDevice, err := s.portSets.ListByDevices(ctx, id)
	if err != nil {
		return nil, err
	}

	device.Ports = portsOf(portsByDevice, id)

	return device, nil
}

func portsOf(portsByDevice map[model.DeviceID][]model.Port, id model.DeviceID) []model.Port {
	if set, ok := portsByDevice[id]; ok {
		return set
	}

	return []model.Port{}
}

func utcNow() time.Time {
	return time.Now().UTC()
}
