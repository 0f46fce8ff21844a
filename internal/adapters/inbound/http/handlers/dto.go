package handlers

import (
	"time"

	"github.com/architeacher/inventory/internal/domain/model"
)

type (
	portRequest struct {
		Number      int    `json:"number"`
		Description string `json:"description"`
	}

	createDeviceRequest struct {
		IP          string        `json:"ip"`
		Status      string        `json:"status"`
		Description string        `json:"description"`
		Protocol    string        `json:"protocol"`
		LocationID  *string       `json:"location_id"`
		Ports       []portRequest `json:"ports"`
	}

	// updateDeviceRequest tells an omitted key apart from one sent as null.
	updateDeviceRequest struct {
		IP          model.Optional[string]        `json:"ip"`
		Status      model.Optional[string]        `json:"status"`
		Description model.Optional[string]        `json:"description"`
		Protocol    model.Optional[string]        `json:"protocol"`
		LocationID  model.Optional[*string]       `json:"location_id"`
		Ports       model.Optional[[]portRequest] `json:"ports"`
	}

	changeStatusRequest struct {
		Status string `json:"status"`
	}

	replacePortsRequest struct {
		Ports []portRequest `json:"ports"`
	}

	locationRequest struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	portData struct {
		ID          string `json:"id"`
		Number      int    `json:"number"`
		Description string `json:"description"`
		Position    int    `json:"position"`
	}

	locationData struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Description string    `json:"description"`
		CreatedAt   time.Time `json:"created_at"`
		UpdatedAt   time.Time `json:"updated_at"`
	}

	deviceData struct {
		ID          string        `json:"id"`
		IP          string        `json:"ip"`
		Status      string        `json:"status"`
		Description string        `json:"description"`
		Protocol    string        `json:"protocol"`
		LocationID  *string       `json:"location_id"`
		Location    *locationData `json:"location"`
		Ports       []portData    `json:"ports"`
		CreatedAt   time.Time     `json:"created_at"`
		UpdatedAt   time.Time     `json:"updated_at"`
	}

	historyEntryData struct {
		ID            string    `json:"id"`
		DeviceID      string    `json:"device_id"`
		Action        string    `json:"action"`
		OldStatus     string    `json:"old_status"`
		NewStatus     string    `json:"new_status"`
		OldLocationID *string   `json:"old_location_id"`
		NewLocationID *string   `json:"new_location_id"`
		Timestamp     time.Time `json:"timestamp"`
	}

	locationHistoryEntryData struct {
		ID             string    `json:"id"`
		LocationID     string    `json:"location_id"`
		Action         string    `json:"action"`
		OldName        string    `json:"old_name"`
		NewName        string    `json:"new_name"`
		OldDescription string    `json:"old_description"`
		NewDescription string    `json:"new_description"`
		Timestamp      time.Time `json:"timestamp"`
	}
)

func toPortSpecs(in []portRequest) []model.PortSpec {
	specs := make([]model.PortSpec, 0, len(in))
	for _, p := range in {
		specs = append(specs, model.PortSpec{Number: p.Number, Description: p.Description})
	}

	return specs
}

func parseOptionalLocationID(raw *string) (*model.LocationID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := model.ParseLocationID(*raw)
	if err != nil {
		return nil, err
	}

	return &id, nil
}

func (req updateDeviceRequest) toModel() (model.DeviceUpdate, error) {
	update := model.DeviceUpdate{
		IP:          req.IP,
		Status:      req.Status,
		Description: req.Description,
		Protocol:    req.Protocol,
	}

	if raw, ok := req.LocationID.Get(); ok {
		locationID, err := parseOptionalLocationID(raw)
		if err != nil {
			return model.DeviceUpdate{}, err
		}

		update.LocationID = model.Some(locationID)
	}

	if portsReq, ok := req.Ports.Get(); ok {
		update.Ports = model.Some(toPortSpecs(portsReq))
	}

	return update, nil
}

func locationIDString(id *model.LocationID) *string {
	if id == nil {
		return nil
	}

	s := id.String()

	return &s
}

func toLocationData(location *model.Location) locationData {
	return locationData{
		ID:          location.ID.String(),
		Name:        location.Name,
		Description: location.Description,
		CreatedAt:   location.CreatedAt,
		UpdatedAt:   location.UpdatedAt,
	}
}

func toLocationList(locations []*model.Location) []locationData {
	data := make([]locationData, 0, len(locations))
	for _, location := range locations {
		data = append(data, toLocationData(location))
	}

	return data
}

func toDeviceData(device *model.Device) deviceData {
	data := deviceData{
		ID:          device.ID.String(),
		IP:          device.IP,
		Status:      device.Status,
		Description: device.Description,
		Protocol:    device.Protocol,
		LocationID:  locationIDString(device.LocationID),
		Ports:       make([]portData, 0, len(device.Ports)),
		CreatedAt:   device.CreatedAt,
		UpdatedAt:   device.UpdatedAt,
	}

	if device.Location != nil {
		location := toLocationData(device.Location)
		data.Location = &location
	}

	for _, p := range device.Ports {
		data.Ports = append(data.Ports, portData{
			ID:          p.ID.String(),
			Number:      p.Number,
			Description: p.Description,
			Position:    p.Position,
		})
	}

	return data
}

func toDeviceList(devices []*model.Device) []deviceData {
	data := make([]deviceData, 0, len(devices))
	for _, device := range devices {
		data = append(data, toDeviceData(device))
	}

	return data
}

func toHistoryList(entries []*model.HistoryEntry) []historyEntryData {
	data := make([]historyEntryData, 0, len(entries))
	for _, e := range entries {
		data = append(data, historyEntryData{
			ID:            e.ID.String(),
			DeviceID:      e.DeviceID.String(),
			Action:        e.Action.String(),
			OldStatus:     e.OldStatus,
			NewStatus:     e.NewStatus,
			OldLocationID: locationIDString(e.OldLocationID),
			NewLocationID: locationIDString(e.NewLocationID),
			Timestamp:     e.Timestamp,
		})
	}

	return data
}

func toLocationHistoryList(entries []*model.LocationHistoryEntry) []locationHistoryEntryData {
	data := make([]locationHistoryEntryData, 0, len(entries))
	for _, e := range entries {
		data = append(data, locationHistoryEntryData{
			ID:             e.ID.String(),
			LocationID:     e.LocationID.String(),
			Action:         e.Action.String(),
			OldName:        e.OldName,
			NewName:        e.NewName,
			OldDescription: e.OldDescription,
			NewDescription: e.NewDescription,
			Timestamp:      e.Timestamp,
		})
	}

	return data
}
