package handlers

import (
	"net/http"
	"time"

	"github.com/architeacher/inventory/internal/domain/model"
	"github.com/architeacher/inventory/internal/usecases/queries"
)

type (
	dependencyCheckData struct {
		Status      string    `json:"status"`
		Healthy     bool      `json:"healthy"`
		LatencyMs   uint64    `json:"latency_ms"`
		Message     string    `json:"message,omitempty"`
		LastChecked time.Time `json:"last_checked"`
	}

	livenessResponse struct {
		Status    string    `json:"status"`
		Timestamp time.Time `json:"timestamp"`
		Version   string    `json:"version"`
	}

	readinessResponse struct {
		Status    string                         `json:"status"`
		Timestamp time.Time                      `json:"timestamp"`
		Version   string                         `json:"version,omitempty"`
		Checks    map[string]dependencyCheckData `json:"checks,omitempty"`
	}

	healthResponse struct {
		Status    string                         `json:"status"`
		Timestamp time.Time                      `json:"timestamp"`
		Version   versionData                    `json:"version"`
		Uptime    uptimeData                     `json:"uptime"`
		Checks    map[string]dependencyCheckData `json:"checks"`
		System    systemData                     `json:"system"`
	}

	versionData struct {
		API   string `json:"api"`
		Build string `json:"build"`
		Go    string `json:"go"`
	}

	uptimeData struct {
		StartedAt       time.Time `json:"started_at"`
		Duration        string    `json:"duration"`
		DurationSeconds uint64    `json:"duration_seconds"`
	}

	systemData struct {
		Goroutines uint       `json:"goroutines"`
		CPUCores   uint       `json:"cpu_cores"`
		Memory     memoryData `json:"memory"`
	}

	memoryData struct {
		AllocMB      float64 `json:"alloc_mb"`
		TotalAllocMB float64 `json:"total_alloc_mb"`
		SysMB        float64 `json:"sys_mb"`
		GCCycles     uint32  `json:"gc_cycles"`
	}
)

func (h *Handler) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	result, err := h.app.Queries.FetchLiveness.Execute(r.Context(), queries.FetchLivenessQuery{})
	if err != nil {
		writeJSONResponse(w, http.StatusServiceUnavailable, livenessResponse{
			Status:    string(model.HealthStatusDown),
			Timestamp: time.Now().UTC(),
		})

		return
	}

	writeJSONResponse(w, http.StatusOK, livenessResponse{
		Status:    string(result.Status),
		Timestamp: result.Timestamp,
		Version:   result.Version,
	})
}

func (h *Handler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	result, err := h.app.Queries.FetchReadiness.Execute(r.Context(), queries.FetchReadinessQuery{})
	if err != nil {
		writeJSONResponse(w, http.StatusServiceUnavailable, readinessResponse{
			Status:    string(model.HealthStatusDown),
			Timestamp: time.Now().UTC(),
		})

		return
	}

	writeJSONResponse(w, statusCodeFor(result.Status), readinessResponse{
		Status:    string(result.Status),
		Timestamp: result.Timestamp,
		Version:   result.Version,
		Checks:    toCheckData(result.Checks),
	})
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	result, err := h.app.Queries.FetchHealthReport.Execute(r.Context(), queries.FetchHealthReportQuery{})
	if err != nil {
		writeJSONResponse(w, http.StatusServiceUnavailable, map[string]any{
			"status":    model.HealthStatusDown,
			"timestamp": time.Now().UTC(),
		})

		return
	}

	writeJSONResponse(w, statusCodeFor(result.Status), healthResponse{
		Status:    string(result.Status),
		Timestamp: result.Timestamp,
		Version: versionData{
			API:   result.Version.API,
			Build: result.Version.Build,
			Go:    result.Version.Go,
		},
		Uptime: uptimeData{
			StartedAt:       result.Uptime.StartedAt,
			Duration:        result.Uptime.Duration,
			DurationSeconds: result.Uptime.DurationSeconds,
		},
		Checks: toCheckData(result.Checks),
		System: systemData{
			Goroutines: result.System.Goroutines,
			CPUCores:   result.System.CPUCores,
			Memory: memoryData{
				AllocMB:      result.System.Memory.AllocMB,
				TotalAllocMB: result.System.Memory.TotalAllocMB,
				SysMB:        result.System.Memory.SysMB,
				GCCycles:     result.System.Memory.GCCycles,
			},
		},
	})
}

// statusCodeFor keeps a degraded service in rotation; only down is reported as unavailable.
func statusCodeFor(status model.HealthStatus) int {
	if status == model.HealthStatusDown {
		return http.StatusServiceUnavailable
	}

	return http.StatusOK
}

func toCheckData(checks map[string]model.DependencyCheck) map[string]dependencyCheckData {
	data := make(map[string]dependencyCheckData, len(checks))
	for name, check := range checks {
		data[name] = dependencyCheckData{
			Status:      string(check.Status),
			Healthy:     check.Status == model.DependencyStatusUp,
			LatencyMs:   check.LatencyMs,
			Message:     check.Message,
			LastChecked: check.LastChecked,
		}
	}

	return data
}
