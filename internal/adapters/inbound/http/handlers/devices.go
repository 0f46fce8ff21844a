package handlers

import (
	"net/http"

	"github.com/architeacher/inventory/internal/domain/model"
	"github.com/architeacher/inventory/internal/usecases/commands"
	"github.com/architeacher/inventory/internal/usecases/queries"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) ListDevices(w http.ResponseWriter, r *http.Request) {
	devices, err := h.app.Queries.ListDevices.Execute(r.Context(), queries.ListDevicesQuery{})
	if err != nil {
		writeDomainError(w, err)

		return
	}

	writeEnveloped(w, r, http.StatusOK, toDeviceList(devices))
}

func (h *Handler) CreateDevice(w http.ResponseWriter, r *http.Request) {
	var req createDeviceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	locationID, err := parseOptionalLocationID(req.LocationID)
	if err != nil {
		writeDomainError(w, err)

		return
	}

	cmd := commands.CreateDeviceCommand{
		IP:          req.IP,
		Status:      req.Status,
		Description: req.Description,
		Protocol:    req.Protocol,
		LocationID:  locationID,
		Ports:       toPortSpecs(req.Ports),
	}

	device, err := h.app.Commands.CreateDevice.Handle(r.Context(), cmd)
	if err != nil {
		writeDomainError(w, err)

		return
	}

	w.Header().Set("Location", h.baseURL+devicesPath+"/"+device.ID.String())
	writeEnveloped(w, r, http.StatusCreated, toDeviceData(device))
}

func (h *Handler) GetDevice(w http.ResponseWriter, r *http.Request) {
	id, ok := deviceIDParam(w, r)
	if !ok {
		return
	}

	device, err := h.app.Queries.GetDevice.Execute(r.Context(), queries.GetDeviceQuery{ID: id})
	if err != nil {
		writeDomainError(w, err)

		return
	}

	writeEnveloped(w, r, http.StatusOK, toDeviceData(device))
}

func (h *Handler) UpdateDevice(w http.ResponseWriter, r *http.Request) {
	id, ok := deviceIDParam(w, r)
	if !ok {
		return
	}

	var req updateDeviceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	update, err := req.toModel()
	if err != nil {
		writeDomainError(w, err)

		return
	}

	device, err := h.app.Commands.UpdateDevice.Handle(r.Context(), commands.UpdateDeviceCommand{ID: id, Update: update})
	if err != nil {
		writeDomainError(w, err)

		return
	}

	writeEnveloped(w, r, http.StatusOK, toDeviceData(device))
}

func (h *Handler) DeleteDevice(w http.ResponseWriter, r *http.Request) {
	id, ok := deviceIDParam(w, r)
	if !ok {
		return
	}

	if _, err := h.app.Commands.DeleteDevice.Handle(r.Context(), commands.DeleteDeviceCommand{ID: id}); err != nil {
		writeDomainError(w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AssignLocation(w http.ResponseWriter, r *http.Request) {
	deviceID, locationID, ok := moveParams(w, r)
	if !ok {
		return
	}

	cmd := commands.AssignLocationCommand{DeviceID: deviceID, LocationID: locationID}

	device, err := h.app.Commands.AssignLocation.Handle(r.Context(), cmd)
	if err != nil {
		writeDomainError(w, err)

		return
	}

	writeEnveloped(w, r, http.StatusOK, toDeviceData(device))
}

func (h *Handler) ChangeLocation(w http.ResponseWriter, r *http.Request) {
	deviceID, locationID, ok := moveParams(w, r)
	if !ok {
		return
	}

	cmd := commands.ChangeLocationCommand{DeviceID: deviceID, LocationID: locationID}

	device, err := h.app.Commands.ChangeLocation.Handle(r.Context(), cmd)
	if err != nil {
		writeDomainError(w, err)

		return
	}

	writeEnveloped(w, r, http.StatusOK, toDeviceData(device))
}

func (h *Handler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := deviceIDParam(w, r)
	if !ok {
		return
	}

	var req changeStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	device, err := h.app.Commands.ChangeStatus.Handle(r.Context(), commands.ChangeStatusCommand{DeviceID: id, Status: req.Status})
	if err != nil {
		writeDomainError(w, err)

		return
	}

	writeEnveloped(w, r, http.StatusOK, toDeviceData(device))
}

func (h *Handler) ReplacePorts(w http.ResponseWriter, r *http.Request) {
	id, ok := deviceIDParam(w, r)
	if !ok {
		return
	}

	var req replacePortsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	cmd := commands.ReplacePortsCommand{DeviceID: id, Ports: toPortSpecs(req.Ports)}

	device, err := h.app.Commands.ReplacePorts.Handle(r.Context(), cmd)
	if err != nil {
		writeDomainError(w, err)

		return
	}

	writeEnveloped(w, r, http.StatusOK, toDeviceData(device))
}

func deviceIDParam(w http.ResponseWriter, r *http.Request) (model.DeviceID, bool) {
	id, err := model.ParseDeviceID(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)

		return model.DeviceID{}, false
	}

	return id, true
}

func moveParams(w http.ResponseWriter, r *http.Request) (model.DeviceID, model.LocationID, bool) {
	deviceID, ok := deviceIDParam(w, r)
	if !ok {
		return model.DeviceID{}, model.LocationID{}, false
	}

	locationID, err := model.ParseLocationID(chi.URLParam(r, "location_id"))
	if err != nil {
		writeDomainError(w, err)

		return model.DeviceID{}, model.LocationID{}, false
	}

	return deviceID, locationID, true
}
