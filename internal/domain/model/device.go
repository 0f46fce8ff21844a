package model

import (
	"strings"
	"time"
)

type Device struct {
	ID          DeviceID
	IP          string
	Status      string
	Description string
	Protocol    string
	LocationID  *LocationID
	Location    *Location
	Ports       []Port
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type NewDeviceParams struct {
	IP          string
	Status      string
	Description string
	Protocol    string
	LocationID  *LocationID
}

func NewDevice(params NewDeviceParams) (*Device, error) {
	errs := NewValidationErrors()
	validateRequired(errs, "ip", params.IP)
	validateRequired(errs, "status", params.Status)
	validateRequired(errs, "protocol", params.Protocol)

	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	return &Device{
		ID:          NewDeviceID(),
		IP:          params.IP,
		Status:      params.Status,
		Description: params.Description,
		Protocol:    params.Protocol,
		LocationID:  copyLocationID(params.LocationID),
		Ports:       []Port{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Apply overwrites the scalar fields present in u. Ports are left to the caller.
// The returned transition holds the status and location as they were before the call.
func (d *Device) Apply(u DeviceUpdate, at time.Time) (Transition, error) {
	errs := NewValidationErrors()

	if ip, ok := u.IP.Get(); ok {
		validateRequired(errs, "ip", ip)
	}

	if status, ok := u.Status.Get(); ok {
		validateRequired(errs, "status", status)
	}

	if protocol, ok := u.Protocol.Get(); ok {
		validateRequired(errs, "protocol", protocol)
	}

	if ports, ok := u.Ports.Get(); ok {
		if err := ValidatePortSpecs(ports); err != nil {
			return Transition{}, err
		}
	}

	if err := errs.OrNil(); err != nil {
		return Transition{}, err
	}

	t := d.begin()

	if ip, ok := u.IP.Get(); ok {
		d.IP = ip
	}

	if status, ok := u.Status.Get(); ok {
		d.Status = status
	}

	if description, ok := u.Description.Get(); ok {
		d.Description = description
	}

	if protocol, ok := u.Protocol.Get(); ok {
		d.Protocol = protocol
	}

	if locationID, ok := u.LocationID.Get(); ok {
		d.moveTo(locationID)
	}

	d.UpdatedAt = at

	return d.finish(t, u.Status.Present, u.LocationID.Present), nil
}

// SetStatus is a no-op transition when status equals the current one.
func (d *Device) SetStatus(status string, at time.Time) (Transition, error) {
	errs := NewValidationErrors()
	validateRequired(errs, "status", status)

	if err := errs.OrNil(); err != nil {
		return Transition{}, err
	}

	t := d.begin()
	if status != d.Status {
		d.Status = status
		d.UpdatedAt = at
	}

	return d.finish(t, true, false), nil
}

// MoveTo is a no-op transition when locationID is where the device already is.
func (d *Device) MoveTo(locationID *LocationID, at time.Time) Transition {
	t := d.begin()
	if !SameLocation(d.LocationID, locationID) {
		d.moveTo(locationID)
		d.UpdatedAt = at
	}

	return d.finish(t, false, true)
}

func (d *Device) moveTo(locationID *LocationID) {
	d.LocationID = copyLocationID(locationID)
	if d.Location != nil && !SameLocation(&d.Location.ID, locationID) {
		d.Location = nil
	}
}

func (d *Device) begin() Transition {
	return Transition{
		DeviceID:      d.ID,
		OldStatus:     d.Status,
		OldLocationID: copyLocationID(d.LocationID),
	}
}

func (d *Device) finish(t Transition, statusTouched, locationTouched bool) Transition {
	t.NewStatus = d.Status
	t.NewLocationID = copyLocationID(d.LocationID)
	t.StatusChanged = statusTouched && t.NewStatus != t.OldStatus
	t.LocationChanged = locationTouched && !SameLocation(t.OldLocationID, t.NewLocationID)

	return t
}

func validateRequired(errs *ValidationErrors, field, value string) {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, "must not be blank")
	}
}
