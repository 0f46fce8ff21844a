package model

import "fmt"

const (
	minPortNumber = 1
	maxPortNumber = 65535
)

type (
	Port struct {
		ID          PortID
		DeviceID    DeviceID
		Number      int
		Description string
		Position    int
	}

	// PortSpec is the caller supplied shape of a port before it belongs to a device.
	PortSpec struct {
		Number      int
		Description string
	}
)

// NewPortSet stamps every spec with the owning device and its insertion position.
// Duplicate numbers are kept.
func NewPortSet(deviceID DeviceID, specs []PortSpec) ([]Port, error) {
	if err := ValidatePortSpecs(specs); err != nil {
		return nil, err
	}

	ports := make([]Port, 0, len(specs))
	for i, spec := range specs {
		ports = append(ports, Port{
			ID:          NewPortID(),
			DeviceID:    deviceID,
			Number:      spec.Number,
			Description: spec.Description,
			Position:    i,
		})
	}

	return ports, nil
}

func ValidatePortSpecs(specs []PortSpec) error {
	errs := NewValidationErrors()

	for i, spec := range specs {
		if spec.Number < minPortNumber || spec.Number > maxPortNumber {
			errs.Add(fmt.Sprintf("ports[%d].number", i), fmt.Sprintf("must be between %d and %d", minPortNumber, maxPortNumber))
		}
	}

	return errs.OrNil()
}
