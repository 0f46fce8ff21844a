//go:build integration

package itest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	inboundhttp "github.com/architeacher/inventory/internal/adapters/inbound/http"
	"github.com/architeacher/inventory/internal/adapters/repos"
	"github.com/architeacher/inventory/internal/config"
	"github.com/architeacher/inventory/internal/domain/model"
	infraPostgres "github.com/architeacher/inventory/internal/infrastructure/postgres"
	"github.com/architeacher/inventory/internal/ports"
	"github.com/architeacher/inventory/internal/services"
	"github.com/architeacher/inventory/internal/usecases"
	"github.com/architeacher/inventory/pkg/logger"
	"github.com/architeacher/inventory/pkg/metrics/noop"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	otelNoop "go.opentelemetry.io/otel/trace/noop"
)

const (
	postgresImage    = "postgres:18-alpine"
	postgresDatabase = "inventory_test"
	postgresUsername = "test"
	postgresPassword = "test"
)

type (
	envelope struct {
		Data json.RawMessage `json:"data"`
		Meta struct {
			RequestID string `json:"request_id"`
		} `json:"meta"`
	}

	errorBody struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}

	deviceBody struct {
		ID         string  `json:"id"`
		IP         string  `json:"ip"`
		Status     string  `json:"status"`
		Protocol   string  `json:"protocol"`
		LocationID *string `json:"location_id"`
		Ports      []struct {
			Number      int    `json:"number"`
			Description string `json:"description"`
			Position    int    `json:"position"`
		} `json:"ports"`
	}

	locationBody struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	historyBody struct {
		DeviceID      string  `json:"device_id"`
		Action        string  `json:"action"`
		OldStatus     string  `json:"old_status"`
		NewStatus     string  `json:"new_status"`
		OldLocationID *string `json:"old_location_id"`
		NewLocationID *string `json:"new_location_id"`
	}

	// BaseTestSuite runs the real router and services against a postgres container.
	BaseTestSuite struct {
		suite.Suite
		suiteCtx    context.Context
		suiteCancel context.CancelFunc
		container   *postgres.PostgresContainer
		pool        *pgxpool.Pool
		server      *httptest.Server
		devices     ports.DevicesService
	}
)

func (s *BaseTestSuite) SetupSuite() {
	s.suiteCtx, s.suiteCancel = context.WithTimeout(context.Background(), 5*time.Minute)

	container, err := postgres.Run(s.suiteCtx,
		postgresImage,
		postgres.WithDatabase(postgresDatabase),
		postgres.WithUsername(postgresUsername),
		postgres.WithPassword(postgresPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.suiteCtx, "sslmode=disable")
	s.Require().NoError(err)

	pool, err := pgxpool.New(s.suiteCtx, connStr)
	s.Require().NoError(err)
	s.pool = pool

	s.Require().NoError(infraPostgres.Migrate(s.suiteCtx, s.pool))

	s.server = httptest.NewServer(s.newRouter())
}

func (s *BaseTestSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
	if s.pool != nil {
		s.pool.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.suiteCtx)
	}
	if s.suiteCancel != nil {
		s.suiteCancel()
	}
}

func (s *BaseTestSuite) SetupTest() {
	_, err := s.pool.Exec(s.T().Context(),
		"TRUNCATE TABLE ports, assignment_history, location_history, devices, locations")
	s.Require().NoError(err)
}

func (s *BaseTestSuite) newRouter() http.Handler {
	log := logger.NewTestLogger()
	scanner := repos.NewPgxScanner()

	transactor := repos.NewTransactor(s.pool, log)
	devicesRepo := repos.NewDevicesRepository(s.pool, scanner)
	portsRepo := repos.NewPortsRepository(s.pool, scanner)
	locationsRepo := repos.NewLocationsRepository(s.pool, scanner)
	historyRepo := repos.NewHistoryRepository(s.pool, scanner)
	locationHistoryRepo := repos.NewLocationHistoryRepository(s.pool, scanner)

	s.devices = services.NewDevicesService(transactor, devicesRepo, portsRepo, locationsRepo, historyRepo)

	app := usecases.NewWebApplication(
		s.devices,
		services.NewLocationsService(transactor, locationsRepo, locationHistoryRepo, devicesRepo, historyRepo),
		services.NewHistoryService(historyRepo),
		services.NewHealthService(
			model.VersionInfo{API: "v1", Build: "itest"},
			time.Second,
			map[string]ports.Pinger{"postgres": s.pool},
			"postgres",
		),
		log,
		noop.NewMetricsClient(),
		otelNoop.NewTracerProvider(),
	)

	router, err := inboundhttp.NewRouter(inboundhttp.RouterConfig{
		App:            app,
		Logger:         log,
		MetricsClient:  noop.NewMetricsClient(),
		TracerProvider: otelNoop.NewTracerProvider(),
		Config: &config.ServiceConfig{
			App:        config.App{ServiceName: "svc-inventory", APIVersion: "v1"},
			HTTPServer: config.HTTPServer{WriteTimeout: 10 * time.Second},
		},
	})
	s.Require().NoError(err)

	return router
}

func (s *BaseTestSuite) do(method, path string, body any) (int, []byte) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(s.T().Context(), method, s.server.URL+path, reader)
	s.Require().NoError(err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.server.Client().Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	s.Require().NoError(err)

	return resp.StatusCode, buf.Bytes()
}

func (s *BaseTestSuite) decodeData(raw []byte, dst any) {
	var env envelope
	s.Require().NoError(json.Unmarshal(raw, &env), string(raw))
	s.Require().NoError(json.Unmarshal(env.Data, dst), string(raw))
}

func (s *BaseTestSuite) errorCode(raw []byte) string {
	var body errorBody
	s.Require().NoError(json.Unmarshal(raw, &body), string(raw))

	return body.Code
}

func (s *BaseTestSuite) createLocation(name, description string) locationBody {
	status, raw := s.do(http.MethodPost, "/v1/locations", map[string]any{"name": name, "description": description})
	s.Require().Equal(http.StatusCreated, status, string(raw))

	var location locationBody
	s.decodeData(raw, &location)

	return location
}

func (s *BaseTestSuite) createDevice(body map[string]any) deviceBody {
	status, raw := s.do(http.MethodPost, "/v1/devices", body)
	s.Require().Equal(http.StatusCreated, status, string(raw))

	var device deviceBody
	s.decodeData(raw, &device)

	return device
}

func (s *BaseTestSuite) history(deviceID string) []historyBody {
	path := "/v1/history"
	if deviceID != "" {
		path += "?device_id=" + deviceID
	}

	status, raw := s.do(http.MethodGet, path, nil)
	s.Require().Equal(http.StatusOK, status, string(raw))

	var entries []historyBody
	s.decodeData(raw, &entries)

	return entries
}
