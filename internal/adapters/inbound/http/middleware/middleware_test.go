package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/architeacher/inventory/internal/adapters/inbound/http/middleware"
	"github.com/architeacher/inventory/internal/config"
	"github.com/architeacher/inventory/pkg/logger"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func okHandler(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

func decodeCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	code, _ := body["code"].(string)

	return code
}

type SecurityHeadersTestSuite struct {
	suite.Suite
}

func TestSecurityHeadersTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(SecurityHeadersTestSuite))
}

func (s *SecurityHeadersTestSuite) TestSecurityHeaders() {
	cases := []struct {
		header   string
		expected string
	}{
		{header: "X-Content-Type-Options", expected: "nosniff"},
		{header: "X-Frame-Options", expected: "DENY"},
		{header: "Strict-Transport-Security", expected: "max-age=31536000; includeSubDomains"},
		{header: "Referrer-Policy", expected: "strict-origin-when-cross-origin"},
		{header: "API-Version", expected: "v1"},
	}

	handler := middleware.SecurityHeaders()(okHandler(http.StatusOK, "{}"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	for _, tc := range cases {
		s.Run(tc.header, func() {
			s.Require().Equal(tc.expected, rec.Header().Get(tc.header))
		})
	}
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.GetRequestID(r)
	}))

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotEmpty(t, seen)
		require.Equal(t, seen, rec.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-123")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, "req-123", seen)
		require.Equal(t, "req-123", rec.Header().Get(middleware.RequestIDHeader))
	})
}

func TestRecovery(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewBufferedTestLogger(&buf)

	handler := middleware.Recovery(log)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/devices", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "INTERNAL_ERROR", decodeCode(t, rec))
	require.Contains(t, buf.String(), "panic recovered")
	require.Contains(t, buf.String(), "boom")
}

func TestCORS(t *testing.T) {
	t.Parallel()

	cfg := config.CORS{
		AllowedOrigins: []string{"https://ops.example.com"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         600,
	}

	cases := []struct {
		name           string
		method         string
		origin         string
		preflight      bool
		expectedStatus int
		expectedOrigin string
	}{
		{name: "same origin", method: http.MethodGet, expectedStatus: http.StatusOK},
		{name: "allowed origin", method: http.MethodGet, origin: "https://ops.example.com", expectedStatus: http.StatusOK, expectedOrigin: "https://ops.example.com"},
		{name: "disallowed origin", method: http.MethodGet, origin: "https://evil.example.com", expectedStatus: http.StatusOK},
		{name: "preflight", method: http.MethodOptions, origin: "https://ops.example.com", preflight: true, expectedStatus: http.StatusNoContent, expectedOrigin: "https://ops.example.com"},
	}

	handler := middleware.CORS(cfg)(okHandler(http.StatusOK, "{}"))

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tc.method, "/v1/devices", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}

			if tc.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.Equal(t, tc.expectedStatus, rec.Code)
			require.Equal(t, tc.expectedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestAccessLogSkipsHealthChecks(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name            string
		path            string
		logHealthChecks bool
		expectLogged    bool
	}{
		{name: "regular request", path: "/v1/devices", expectLogged: true},
		{name: "health probe", path: "/v1/health/ready"},
		{name: "health probe opted in", path: "/v1/health/live", logHealthChecks: true, expectLogged: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log := logger.NewBufferedTestLogger(&buf)

			handler := middleware.NewHealthCheckFilter(tc.logHealthChecks).Middleware(
				middleware.NewAccessLogger(log).Middleware(okHandler(http.StatusOK, `{"ok":true}`)),
			)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))

			require.Equal(t, http.StatusOK, rec.Code)

			if !tc.expectLogged {
				require.Empty(t, buf.String())

				return
			}

			require.Contains(t, buf.String(), `"path":"`+tc.path+`"`)
			require.Contains(t, buf.String(), `"status":200`)
			require.Contains(t, buf.String(), `"bytes":11`)
		})
	}
}
