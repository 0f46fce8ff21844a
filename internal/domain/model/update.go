package model

import (
	"bytes"
	"encoding/json"
	"time"
)

// Optional distinguishes a field that was omitted from one that was explicitly set, including to null.
type Optional[T any] struct {
	Value   T
	Present bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Present: true}
}

func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Present
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true

	if bytes.Equal(data, []byte("null")) {
		var zero T
		o.Value = zero

		return nil
	}

	return json.Unmarshal(data, &o.Value)
}

// DeviceUpdate is a partial update. A present LocationID holding nil unassigns the device.
type DeviceUpdate struct {
	IP          Optional[string]
	Status      Optional[string]
	Description Optional[string]
	Protocol    Optional[string]
	LocationID  Optional[*LocationID]
	Ports       Optional[[]PortSpec]
}

func (u DeviceUpdate) IsEmpty() bool {
	return !u.IP.Present &&
		!u.Status.Present &&
		!u.Description.Present &&
		!u.Protocol.Present &&
		!u.LocationID.Present &&
		!u.Ports.Present
}

// Transition captures the before and after image of the audited fields of one mutation.
type Transition struct {
	DeviceID        DeviceID
	OldStatus       string
	NewStatus       string
	OldLocationID   *LocationID
	NewLocationID   *LocationID
	StatusChanged   bool
	LocationChanged bool
}

func (t Transition) Changed() bool {
	return t.StatusChanged || t.LocationChanged
}

// HistoryEntry builds the audit row for t. Both sides of each pair are always filled.
func (t Transition) HistoryEntry(action Action, at time.Time) HistoryEntry {
	return HistoryEntry{
		ID:            NewHistoryID(),
		DeviceID:      t.DeviceID,
		Action:        action,
		OldStatus:     t.OldStatus,
		NewStatus:     t.NewStatus,
		OldLocationID: copyLocationID(t.OldLocationID),
		NewLocationID: copyLocationID(t.NewLocationID),
		Timestamp:     at,
	}
}

func copyLocationID(id *LocationID) *LocationID {
	if id == nil {
		return nil
	}

	c := *id

	return &c
}
