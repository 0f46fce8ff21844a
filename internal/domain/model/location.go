package model

import (
	"strings"
	"time"
)

const maxNameLength = 255

type Location struct {
	ID          LocationID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewLocation(name, description string) (*Location, error) {
	if err := validateLocation(name); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	return &Location{
		ID:          NewLocationID(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Update overwrites both fields and reports the change; ok is false when nothing differs.
func (l *Location) Update(name, description string, at time.Time) (entry LocationHistoryEntry, ok bool, err error) {
	if err := validateLocation(name); err != nil {
		return LocationHistoryEntry{}, false, err
	}

	if name == l.Name && description == l.Description {
		return LocationHistoryEntry{}, false, nil
	}

	entry = LocationHistoryEntry{
		ID:             NewHistoryID(),
		LocationID:     l.ID,
		Action:         ActionLocationUpdated,
		OldName:        l.Name,
		NewName:        name,
		OldDescription: l.Description,
		NewDescription: description,
		Timestamp:      at,
	}

	l.Name = name
	l.Description = description
	l.UpdatedAt = at

	return entry, true, nil
}

func validateLocation(name string) error {
	errs := NewValidationErrors()

	switch {
	case strings.TrimSpace(name) == "":
		errs.Add("name", "must not be blank")
	case len(name) > maxNameLength:
		errs.Add("name", "must not exceed 255 characters")
	}

	return errs.OrNil()
}
