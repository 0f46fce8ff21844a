package services_test

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/architeacher/inventory/internal/domain/model"
)

// memoryStore backs every repository in these tests. Its transactor snapshots the whole store
// and restores it when the unit of work fails, which is what postgres does for us in production.
type memoryStore struct {
	mu              sync.Mutex
	locations       map[model.LocationID]model.Location
	devices         map[model.DeviceID]model.Device
	ports           map[model.DeviceID][]model.Port
	history         []model.HistoryEntry
	locationHistory []model.LocationHistoryEntry
	failures        map[string]error

	commits   int
	rollbacks int
}

type snapshot struct {
	locations       map[model.LocationID]model.Location
	devices         map[model.DeviceID]model.Device
	ports           map[model.DeviceID][]model.Port
	history         []model.HistoryEntry
	locationHistory []model.LocationHistoryEntry
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		locations: map[model.LocationID]model.Location{},
		devices:   map[model.DeviceID]model.Device{},
		ports:     map[model.DeviceID][]model.Port{},
		failures:  map[string]error{},
	}
}

func (s *memoryStore) failOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failures[op] = err
}

func (s *memoryStore) injected(op string) error {
	return s.failures[op]
}

func (s *memoryStore) snapshot() snapshot {
	portsCopy := make(map[model.DeviceID][]model.Port, len(s.ports))
	for id, set := range s.ports {
		portsCopy[id] = slices.Clone(set)
	}

	return snapshot{
		locations:       maps.Clone(s.locations),
		devices:         maps.Clone(s.devices),
		ports:           portsCopy,
		history:         slices.Clone(s.history),
		locationHistory: slices.Clone(s.locationHistory),
	}
}

func (s *memoryStore) restore(snap snapshot) {
	s.locations = snap.locations
	s.devices = snap.devices
	s.ports = snap.ports
	s.history = snap.history
	s.locationHistory = snap.locationHistory
}

func (s *memoryStore) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	snap := s.snapshot()
	s.mu.Unlock()

	if err := fn(ctx); err != nil {
		s.mu.Lock()
		s.restore(snap)
		s.rollbacks++
		s.mu.Unlock()

		return err
	}

	s.mu.Lock()
	s.commits++
	s.mu.Unlock()

	return nil
}

func (s *memoryStore) historyEntries() []model.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.history)
}

func (s *memoryStore) portsOf(id model.DeviceID) []model.Port {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.ports[id])
}

func (s *memoryStore) deviceCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.devices)
}

type locationsRepo struct{ *memoryStore }

func (r locationsRepo) Create(_ context.Context, location *model.Location) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.injected("locations.Create"); err != nil {
		return err
	}

	for _, existing := range r.locations {
		if existing.Name == location.Name {
			return model.ErrDuplicateLocationName
		}
	}

	r.locations[location.ID] = *location

	return nil
}

func (r locationsRepo) FetchByID(_ context.Context, id model.LocationID) (*model.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	location, ok := r.locations[id]
	if !ok {
		return nil, model.ErrLocationNotFound
	}

	return &location, nil
}

func (r locationsRepo) FetchByName(_ context.Context, name string) (*model.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, location := range r.locations {
		if location.Name == name {
			return &location, nil
		}
	}

	return nil, nil
}

func (r locationsRepo) List(_ context.Context) ([]*model.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*model.Location, 0, len(r.locations))
	for _, location := range r.locations {
		result = append(result, &location)
	}

	slices.SortFunc(result, func(a, b *model.Location) int { return strings.Compare(a.Name, b.Name) })

	return result, nil
}

func (r locationsRepo) Update(_ context.Context, location *model.Location) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.locations[location.ID]; !ok {
		return model.ErrLocationNotFound
	}

	r.locations[location.ID] = *location

	return nil
}

func (r locationsRepo) Delete(_ context.Context, id model.LocationID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.locations[id]; !ok {
		return model.ErrLocationNotFound
	}

	delete(r.locations, id)

	r.locationHistory = slices.DeleteFunc(r.locationHistory, func(e model.LocationHistoryEntry) bool {
		return e.LocationID == id
	})

	return nil
}

func (r locationsRepo) Exists(_ context.Context, id model.LocationID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.locations[id]

	return ok, nil
}

type devicesRepo struct{ *memoryStore }

func (r devicesRepo) Create(_ context.Context, device *model.Device) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.injected("devices.Create"); err != nil {
		return err
	}

	stored := *device
	stored.Location = nil
	stored.Ports = nil
	r.devices[device.ID] = stored

	return nil
}

func (r devicesRepo) FetchByID(_ context.Context, id model.DeviceID) (*model.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.resolve(id)
}

func (r devicesRepo) FetchForUpdate(_ context.Context, id model.DeviceID) (*model.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.resolve(id)
}

func (r devicesRepo) resolve(id model.DeviceID) (*model.Device, error) {
	device, ok := r.devices[id]
	if !ok {
		return nil, model.ErrDeviceNotFound
	}

	if device.LocationID != nil {
		if location, ok := r.locations[*device.LocationID]; ok {
			device.Location = &location
		}
	}

	return &device, nil
}

func (r devicesRepo) List(_ context.Context) ([]*model.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := slices.SortedFunc(maps.Keys(r.devices), func(a, b model.DeviceID) int {
		return strings.Compare(a.String(), b.String())
	})

	result := make([]*model.Device, 0, len(ids))
	for _, id := range ids {
		device, _ := r.resolve(id)
		result = append(result, device)
	}

	return result, nil
}

func (r devicesRepo) Update(_ context.Context, device *model.Device) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.injected("devices.Update"); err != nil {
		return err
	}

	if _, ok := r.devices[device.ID]; !ok {
		return model.ErrDeviceNotFound
	}

	stored := *device
	stored.Location = nil
	stored.Ports = nil
	r.devices[device.ID] = stored

	return nil
}

func (r devicesRepo) Delete(_ context.Context, id model.DeviceID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.devices[id]; !ok {
		return model.ErrDeviceNotFound
	}

	delete(r.devices, id)
	delete(r.ports, id)

	return nil
}

func (r devicesRepo) DetachFromLocation(_ context.Context, id model.LocationID) ([]*model.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var detached []*model.Device

	for deviceID, device := range r.devices {
		if !model.SameLocation(device.LocationID, &id) {
			continue
		}

		before := device
		detached = append(detached, &before)

		device.LocationID = nil
		r.devices[deviceID] = device
	}

	return detached, nil
}

type portsRepo struct{ *memoryStore }

func (r portsRepo) DeleteByDevice(_ context.Context, deviceID model.DeviceID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.ports, deviceID)

	return nil
}

func (r portsRepo) InsertAll(_ context.Context, set []model.Port) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.injected("ports.InsertAll"); err != nil {
		return err
	}

	for _, port := range set {
		r.ports[port.DeviceID] = append(r.ports[port.DeviceID], port)
	}

	return nil
}

func (r portsRepo) ListByDevices(_ context.Context, deviceIDs ...model.DeviceID) (map[model.DeviceID][]model.Port, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make(map[model.DeviceID][]model.Port, len(deviceIDs))
	for _, id := range deviceIDs {
		if set, ok := r.ports[id]; ok {
			result[id] = slices.Clone(set)
		}
	}

	return result, nil
}

type historyRepo struct{ *memoryStore }

func (r historyRepo) Append(_ context.Context, entries ...model.HistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.injected("history.Append"); err != nil {
		return err
	}

	r.history = append(r.history, entries...)

	return nil
}

func (r historyRepo) List(_ context.Context, filter model.HistoryFilter) ([]*model.HistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*model.HistoryEntry, 0, len(r.history))
	for i := len(r.history) - 1; i >= 0; i-- {
		entry := r.history[i]
		if filter.DeviceID != nil && entry.DeviceID != *filter.DeviceID {
			continue
		}

		result = append(result, &entry)
	}

	return result, nil
}

type locationHistoryRepo struct{ *memoryStore }

func (r locationHistoryRepo) Append(_ context.Context, entry model.LocationHistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.locationHistory = append(r.locationHistory, entry)

	return nil
}

func (r locationHistoryRepo) ListByLocation(_ context.Context, id model.LocationID) ([]*model.LocationHistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*model.LocationHistoryEntry
	for i := len(r.locationHistory) - 1; i >= 0; i-- {
		entry := r.locationHistory[i]
		if entry.LocationID == id {
			result = append(result, &entry)
		}
	}

	return result, nil
}
