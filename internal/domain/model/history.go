package model

import "time"

type Action string

const (
	ActionDeviceUpdated      Action = "DEVICE_UPDATED"
	ActionStatusChanged      Action = "STATUS_CHANGED"
	ActionLocationAssigned   Action = "LOCATION_ASSIGNED"
	ActionLocationChanged    Action = "LOCATION_CHANGED"
	ActionLocationUnassigned Action = "LOCATION_UNASSIGNED"
	ActionLocationUpdated    Action = "LOCATION_UPDATED"
)

func (a Action) String() string {
	return string(a)
}

// HistoryEntry is one row of the device audit trail. It is never updated once written.
type HistoryEntry struct {
	ID            HistoryID
	DeviceID      DeviceID
	Action        Action
	OldStatus     string
	NewStatus     string
	OldLocationID *LocationID
	NewLocationID *LocationID
	Timestamp     time.Time
}

type LocationHistoryEntry struct {
	ID             HistoryID
	LocationID     LocationID
	Action         Action
	OldName        string
	NewName        string
	OldDescription string
	NewDescription string
	Timestamp      time.Time
}

type HistoryFilter struct {
	DeviceID *DeviceID
}
