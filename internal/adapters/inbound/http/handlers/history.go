package handlers

import (
	"net/http"

	"github.com/architeacher/inventory/internal/domain/model"
	"github.com/architeacher/inventory/internal/usecases/queries"
)

func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	var query queries.ListHistoryQuery

	if raw := r.URL.Query().Get("device_id"); raw != "" {
		id, err := model.ParseDeviceID(raw)
		if err != nil {
			writeDomainError(w, err)

			return
		}

		query.DeviceID = &id
	}

	entries, err := h.app.Queries.ListHistory.Execute(r.Context(), query)
	if err != nil {
		writeDomainError(w, err)

		return
	}

	writeEnveloped(w, r, http.StatusOK, toHistoryList(entries))
}
