package handlers

import (
	"net/http"

	"github.com/architeacher/inventory/internal/domain/model"
	"github.com/architeacher/inventory/internal/usecases/commands"
	"github.com/architeacher/inventory/internal/usecases/queries"
	"github.com/go-chi/chi/v5"
)

// ListLocations returns every location, or at most the one matching ?name= exactly.
func (h *Handler) ListLocations(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Has("name") {
		location, err := h.app.Queries.FindLocationByName.Execute(
			r.Context(),
			queries.FindLocationByNameQuery{Name: r.URL.Query().Get("name")},
		)
		if err != nil {
			writeDomainError(w, err)

			return
		}

		data := []locationData{}
		if location != nil {
			data = append(data, toLocationData(location))
		}

		writeEnveloped(w, r, http.StatusOK, data)

		return
	}

	locations, err := h.app.Queries.ListLocations.Execute(r.Context(), queries.ListLocationsQuery{})
	if err != nil {
		writeDomainError(w, err)

		return
	}

	writeEnveloped(w, r, http.StatusOK, toLocationList(locations))
}

func (h *Handler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req locationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	cmd := commands.CreateLocationCommand{Name: req.Name, Description: req.Description}

	location, err := h.app.Commands.CreateLocation.Handle(r.Context(), cmd)
	if err != nil {
		writeDomainError(w, err)

		return
	}

	w.Header().Set("Location", h.baseURL+locationsPath+"/"+location.ID.String())
	writeEnveloped(w, r, http.StatusCreated, toLocationData(location))
}

func (h *Handler) GetLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := locationIDParam(w, r)
	if !ok {
		return
	}

	location, err := h.app.Queries.GetLocation.Execute(r.Context(), queries.GetLocationQuery{ID: id})
	if err != nil {
		writeDomainError(w, err)

		return
	}

	writeEnveloped(w, r, http.StatusOK, toLocationData(location))
}

func (h *Handler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := locationIDParam(w, r)
	if !ok {
		return
	}

	var req locationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	cmd := commands.UpdateLocationCommand{ID: id, Name: req.Name, Description: req.Description}

	location, err := h.app.Commands.UpdateLocation.Handle(r.Context(), cmd)
	if err != nil {
		writeDomainError(w, err)

		return
	}

	writeEnveloped(w, r, http.StatusOK, toLocationData(location))
}

func (h *Handler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := locationIDParam(w, r)
	if !ok {
		return
	}

	if _, err := h.app.Commands.DeleteLocation.Handle(r.Context(), commands.DeleteLocationCommand{ID: id}); err != nil {
		writeDomainError(w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) LocationHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := locationIDParam(w, r)
	if !ok {
		return
	}

	entries, err := h.app.Queries.LocationHistory.Execute(r.Context(), queries.LocationHistoryQuery{ID: id})
	if err != nil {
		writeDomainError(w, err)

		return
	}

	writeEnveloped(w, r, http.StatusOK, toLocationHistoryList(entries))
}

func locationIDParam(w http.ResponseWriter, r *http.Request) (model.LocationID, bool) {
	id, err := model.ParseLocationID(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)

		return model.LocationID{}, false
	}

	return id, true
}
