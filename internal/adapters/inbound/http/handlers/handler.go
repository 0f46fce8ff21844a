package handlers

import (
	"net/http"

	"github.com/architeacher/inventory/internal/usecases"
	"github.com/go-chi/chi/v5"
)

const (
	devicesPath   = "/devices"
	locationsPath = "/locations"
)

type Handler struct {
	app     *usecases.WebApplication
	baseURL string
}

func NewHandler(app *usecases.WebApplication, baseURL string) *Handler {
	return &Handler{
		app:     app,
		baseURL: baseURL,
	}
}

// Mount registers every endpoint on r. listMiddlewares wrap only the collection reads.
func (h *Handler) Mount(r chi.Router, listMiddlewares ...func(http.Handler) http.Handler) {
	lists := r.With(listMiddlewares...)

	lists.Get(devicesPath, h.ListDevices)
	r.Post(devicesPath, h.CreateDevice)
	r.Get(devicesPath+"/{id}", h.GetDevice)
	r.Put(devicesPath+"/{id}", h.UpdateDevice)
	r.Delete(devicesPath+"/{id}", h.DeleteDevice)
	r.Post(devicesPath+"/{id}/assign/{location_id}", h.AssignLocation)
	r.Post(devicesPath+"/{id}/change/{location_id}", h.ChangeLocation)
	r.Put(devicesPath+"/{id}/status", h.ChangeStatus)
	r.Put(devicesPath+"/{id}/ports", h.ReplacePorts)

	lists.Get(locationsPath, h.ListLocations)
	r.Post(locationsPath, h.CreateLocation)
	r.Get(locationsPath+"/{id}", h.GetLocation)
	r.Put(locationsPath+"/{id}", h.UpdateLocation)
	r.Delete(locationsPath+"/{id}", h.DeleteLocation)
	r.Get(locationsPath+"/{id}/history", h.LocationHistory)

	lists.Get("/history", h.ListHistory)

	r.Get("/health", h.HealthCheck)
	r.Get("/health/live", h.LivenessCheck)
	r.Get("/health/ready", h.ReadinessCheck)
}
