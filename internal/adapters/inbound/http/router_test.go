package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	inboundhttp "github.com/architeacher/inventory/internal/adapters/inbound/http"
	"github.com/architeacher/inventory/internal/adapters/repos"
	"github.com/architeacher/inventory/internal/config"
	"github.com/architeacher/inventory/internal/domain/model"
	"github.com/architeacher/inventory/internal/infrastructure"
	"github.com/architeacher/inventory/internal/mocks"
	"github.com/architeacher/inventory/internal/usecases"
	"github.com/architeacher/inventory/pkg/logger"
	"github.com/architeacher/inventory/pkg/metrics/noop"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	otelNoop "go.opentelemetry.io/otel/trace/noop"
)

type RouterTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	keydb     *infrastructure.KeydbClient
	devices   *mocks.FakeDevicesService
	locations *mocks.FakeLocationsService
	health    *mocks.FakeHealthChecker
}

func TestRouterTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	s.miniRedis = miniredis.RunT(s.T())
	s.keydb = infrastructure.NewKeyDBClientFromRedis(
		redis.NewClient(&redis.Options{Addr: s.miniRedis.Addr()}),
		logger.NewTestLogger(),
	)
	s.devices = &mocks.FakeDevicesService{}
	s.locations = &mocks.FakeLocationsService{}
	s.health = &mocks.FakeHealthChecker{}
}

func (s *RouterTestSuite) TearDownTest() {
	s.Require().NoError(s.keydb.Close())
}

func testServiceConfig() *config.ServiceConfig {
	return &config.ServiceConfig{
		App:        config.App{ServiceName: "svc-inventory", APIVersion: "v1"},
		HTTPServer: config.HTTPServer{WriteTimeout: 5 * time.Second},
		Idempotency: config.Idempotency{
			Enabled:          true,
			CacheTTL:         time.Hour,
			LockTTL:          time.Minute,
			RequiredMethods:  []string{http.MethodPost},
			HeaderName:       "Idempotency-Key",
			ReplayedHeader:   "Idempotent-Replayed",
			GracefulDegraded: true,
		},
		RateLimiting: config.RateLimiting{
			Enabled:           true,
			RequestsPerSecond: 100,
			BurstSize:         100,
			SkipPaths:         []string{"/v1/health", "/v1/health/live", "/v1/health/ready"},
			GracefulDegraded:  true,
		},
		CORS: config.CORS{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "Idempotency-Key"},
			MaxAge:         600,
		},
		Logging: config.Logging{AccessLog: config.AccessLog{Enabled: true}},
		Telemetry: config.Telemetry{
			Metrics: config.Metrics{Enabled: true},
			Traces:  config.Traces{Enabled: true, SamplerRatio: 1},
		},
	}
}

func (s *RouterTestSuite) router(cfg *config.ServiceConfig) http.Handler {
	log := logger.NewTestLogger()
	app := usecases.NewWebApplication(
		s.devices,
		s.locations,
		&mocks.FakeHistoryService{},
		s.health,
		log,
		noop.NewMetricsClient(),
		otelNoop.NewTracerProvider(),
	)

	router, err := inboundhttp.NewRouter(inboundhttp.RouterConfig{
		App:              app,
		Logger:           log,
		MetricsClient:    noop.NewMetricsClient(),
		TracerProvider:   otelNoop.NewTracerProvider(),
		Config:           cfg,
		IdempotencyCache: repos.NewIdempotencyRepository(s.keydb, nil),
		RateLimitStore:   repos.NewRateLimitStore(s.keydb),
	})
	s.Require().NoError(err)

	return router
}

func (s *RouterTestSuite) send(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func (s *RouterTestSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var body struct {
		Code string `json:"code"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Code
}

func (s *RouterTestSuite) TestLivenessCarriesCommonHeaders() {
	s.health.LivenessReturns(&model.LivenessReport{Status: model.HealthStatusOK, Timestamp: time.Now().UTC(), Version: "v1"}, nil)

	rec := s.send(s.router(testServiceConfig()), httptest.NewRequest(http.MethodGet, "/v1/health/live", nil))

	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().NotEmpty(rec.Header().Get("X-Request-Id"))
	s.Require().Equal("nosniff", rec.Header().Get("X-Content-Type-Options"))
	s.Require().Equal("v1", rec.Header().Get("API-Version"))
	s.Require().Empty(rec.Header().Get("RateLimit-Limit"))
}

func (s *RouterTestSuite) TestValidationRunsBeforeHandlers() {
	req := httptest.NewRequest(http.MethodPost, "/v1/devices", strings.NewReader(`{"ip":"10.0.0.1","status":"active"}`))
	req.Header.Set("Content-Type", "application/json")

	rec := s.send(s.router(testServiceConfig()), req)

	s.Require().Equal(http.StatusBadRequest, rec.Code)
	s.Require().Equal("VALIDATION_FAILED", s.errorCode(rec))
	s.Require().Zero(s.devices.CreateDeviceCallCount())
}

func (s *RouterTestSuite) TestUnknownRoute() {
	rec := s.send(s.router(testServiceConfig()), httptest.NewRequest(http.MethodGet, "/v1/racks", nil))

	s.Require().Equal(http.StatusNotFound, rec.Code)
}

func (s *RouterTestSuite) TestListsAreTaggedWithETags() {
	s.devices.ListDevicesReturns([]*model.Device{}, nil)
	router := s.router(testServiceConfig())

	first := s.send(router, httptest.NewRequest(http.MethodGet, "/v1/devices", nil))
	s.Require().Equal(http.StatusOK, first.Code)

	etag := first.Header().Get("ETag")
	s.Require().NotEmpty(etag)

	again := s.send(router, httptest.NewRequest(http.MethodGet, "/v1/devices", nil))
	s.Require().Equal(etag, again.Header().Get("ETag"))
	s.Require().NotEqual(first.Header().Get("X-Request-Id"), again.Header().Get("X-Request-Id"))

	req := httptest.NewRequest(http.MethodGet, "/v1/devices", nil)
	req.Header.Set("If-None-Match", etag)

	second := s.send(router, req)
	s.Require().Equal(http.StatusNotModified, second.Code)
	s.Require().Empty(second.Body.Bytes())
}

func (s *RouterTestSuite) TestIdempotentCreateIsReplayed() {
	location, err := model.NewLocation("Lab", "")
	s.Require().NoError(err)
	s.locations.CreateLocationReturns(location, nil)

	router := s.router(testServiceConfig())
	newRequest := func() *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/v1/locations", strings.NewReader(`{"name":"Lab"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", "create-lab-location-0001")

		return req
	}

	first := s.send(router, newRequest())
	s.Require().Equal(http.StatusCreated, first.Code)

	second := s.send(router, newRequest())
	s.Require().Equal(http.StatusCreated, second.Code)
	s.Require().Equal("true", second.Header().Get("Idempotent-Replayed"))
	s.Require().Equal(first.Header().Get("Location"), second.Header().Get("Location"))
	s.Require().Equal(1, s.locations.CreateLocationCallCount())
}

func (s *RouterTestSuite) TestRateLimitApplies() {
	cfg := testServiceConfig()
	cfg.RateLimiting.RequestsPerSecond = 1
	cfg.RateLimiting.BurstSize = 1
	s.devices.ListDevicesReturns([]*model.Device{}, nil)

	router := s.router(cfg)

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/v1/devices", nil)
		req.RemoteAddr = "192.0.2.10:5555"
		codes = append(codes, s.send(router, req).Code)
	}

	s.Require().Equal([]int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func (s *RouterTestSuite) TestPreflight() {
	req := httptest.NewRequest(http.MethodOptions, "/v1/devices", nil)
	req.Header.Set("Origin", "https://console.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := s.send(s.router(testServiceConfig()), req)

	s.Require().Equal(http.StatusNoContent, rec.Code)
	s.Require().NotEmpty(rec.Header().Get("Access-Control-Allow-Methods"))
}
