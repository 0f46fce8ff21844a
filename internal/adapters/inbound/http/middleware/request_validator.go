package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
)

const codeValidationFailed = "VALIDATION_FAILED"

// RequestValidator rejects requests that do not match the OpenAPI document before they reach a handler.
// Requests for routes the document does not describe are passed through so the router can answer them.
func RequestValidator(doc *openapi3.T) (func(http.Handler) http.Handler, error) {
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAPI router: %w", err)
	}

	options := &openapi3filter.Options{
		MultiError:         false,
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)

				return
			}

			route, pathParams, err := router.FindRoute(r)
			if err != nil {
				if errors.Is(err, routers.ErrPathNotFound) || errors.Is(err, routers.ErrMethodNotAllowed) {
					next.ServeHTTP(w, r)

					return
				}

				writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())

				return
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}

			if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
				writeError(w, http.StatusBadRequest, codeValidationFailed, sanitizeErrorMessage(err))

				return
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}

// sanitizeErrorMessage keeps the reason and drops the schema dump kin-openapi appends.
func sanitizeErrorMessage(err error) string {
	var requestErr *openapi3filter.RequestError
	if errors.As(err, &requestErr) {
		message := requestErr.Error()
		if idx := strings.Index(message, "\nSchema:"); idx != -1 {
			message = message[:idx]
		}

		return message
	}

	return err.Error()
}
