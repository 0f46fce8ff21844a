package model

import (
	"fmt"

	"github.com/google/uuid"
)

type (
	LocationID struct{ uuid.UUID }
	DeviceID   struct{ uuid.UUID }
	PortID     struct{ uuid.UUID }
	HistoryID  struct{ uuid.UUID }
)

func newV7() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

func parseUUID(kind, s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s id %q", ErrInvalidID, kind, s)
	}

	return id, nil
}

func NewLocationID() LocationID { return LocationID{UUID: newV7()} }

func ParseLocationID(s string) (LocationID, error) {
	id, err := parseUUID("location", s)

	return LocationID{UUID: id}, err
}

func (id LocationID) String() string { return id.UUID.String() }

func (id LocationID) IsZero() bool { return id.UUID == uuid.Nil }

func NewDeviceID() DeviceID { return DeviceID{UUID: newV7()} }

func ParseDeviceID(s string) (DeviceID, error) {
	id, err := parseUUID("device", s)

	return DeviceID{UUID: id}, err
}

func (id DeviceID) String() string { return id.UUID.String() }

func (id DeviceID) IsZero() bool { return id.UUID == uuid.Nil }

func NewPortID() PortID { return PortID{UUID: newV7()} }

func (id PortID) String() string { return id.UUID.String() }

func NewHistoryID() HistoryID { return HistoryID{UUID: newV7()} }

func (id HistoryID) String() string { return id.UUID.String() }

// SameLocation compares two optional location references.
func SameLocation(a, b *LocationID) bool {
	switch {
	case a == nil && b == nil:
		return true
	case a == nil || b == nil:
		return false
	default:
		return a.UUID == b.UUID
	}
}
