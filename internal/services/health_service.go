package services

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/architeacher/inventory/internal/domain/model"
	"github.com/architeacher/inventory/internal/ports"
)

const bytesPerMB = 1024 * 1024

// HealthService pings every registered dependency concurrently. A failing critical
// dependency marks the service down; any other failure only degrades it.
type HealthService struct {
	dependencies map[string]ports.Pinger
	critical     map[string]bool
	timeout      time.Duration
	version      model.VersionInfo
	startedAt    time.Time
	now          func() time.Time
}

func NewHealthService(
	version model.VersionInfo,
	timeout time.Duration,
	dependencies map[string]ports.Pinger,
	critical ...string,
) *HealthService {
	criticalSet := make(map[string]bool, len(critical))
	for _, name := range critical {
		criticalSet[name] = true
	}

	if version.Go == "" {
		version.Go = runtime.Version()
	}

	return &HealthService{
		dependencies: dependencies,
		critical:     criticalSet,
		timeout:      timeout,
		version:      version,
		startedAt:    utcNow(),
		now:          utcNow,
	}
}

func (s *HealthService) Liveness(_ context.Context) (*model.LivenessReport, error) {
	return &model.LivenessReport{
		Status:    model.HealthStatusOK,
		Timestamp: s.now(),
		Version:   s.version.Build,
	}, nil
}

func (s *HealthService) Readiness(ctx context.Context) (*model.ReadinessReport, error) {
	checks := s.checkDependencies(ctx)

	status := model.HealthStatusOK
	for _, check := range checks {
		if check.Status != model.DependencyStatusUp {
			status = model.HealthStatusDown

			break
		}
	}

	return &model.ReadinessReport{
		Status:    status,
		Timestamp: s.now(),
		Version:   s.version.Build,
		Checks:    checks,
	}, nil
}

func (s *HealthService) Health(ctx context.Context) (*model.HealthReport, error) {
	checks := s.checkDependencies(ctx)
	now := s.now()
	uptime := now.Sub(s.startedAt)

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return &model.HealthReport{
		Status:    s.overallStatus(checks),
		Timestamp: now,
		Version:   s.version,
		Uptime: model.UptimeInfo{
			StartedAt:       s.startedAt,
			Duration:        uptime.Round(time.Second).String(),
			DurationSeconds: uint64(uptime.Seconds()),
		},
		Checks: checks,
		System: model.SystemInfo{
			Memory: model.MemoryInfo{
				AllocMB:      float64(mem.Alloc) / bytesPerMB,
				TotalAllocMB: float64(mem.TotalAlloc) / bytesPerMB,
				SysMB:        float64(mem.Sys) / bytesPerMB,
				GCCycles:     mem.NumGC,
			},
			Goroutines: uint(runtime.NumGoroutine()),
			CPUCores:   uint(runtime.NumCPU()),
		},
	}, nil
}

func (s *HealthService) overallStatus(checks map[string]model.DependencyCheck) model.HealthStatus {
	status := model.HealthStatusOK

	for name, check := range checks {
		if check.Status == model.DependencyStatusUp {
			continue
		}

		if s.critical[name] {
			return model.HealthStatusDown
		}

		status = model.HealthStatusDegraded
	}

	return status
}

func (s *HealthService) checkDependencies(ctx context.Context) map[string]model.DependencyCheck {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)

		defer cancel()
	}

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		checks = make(map[string]model.DependencyCheck, len(s.dependencies))
	)

	for name, pinger := range s.dependencies {
		wg.Add(1)

		go func() {
			defer wg.Done()

			start := time.Now()
			err := pinger.Ping(ctx)

			check := model.DependencyCheck{
				Status:      model.DependencyStatusUp,
				LatencyMs:   uint64(time.Since(start).Milliseconds()),
				LastChecked: s.now(),
			}

			if err != nil {
				check.Status = model.DependencyStatusDown
				check.Message = err.Error()
			}

			mu.Lock()
			checks[name] = check
			mu.Unlock()
		}()
	}

	wg.Wait()

	return checks
}
