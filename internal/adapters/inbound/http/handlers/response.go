package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/architeacher/inventory/internal/adapters/inbound/http/middleware"
	"github.com/architeacher/inventory/internal/domain/model"
)

const (
	contentTypeHeader = "Content-Type"
	applicationJSON   = "application/json"

	codeNotFound         = "NOT_FOUND"
	codeDuplicateName    = "DUPLICATE_NAME"
	codeInvalidReference = "INVALID_REFERENCE"
	codeValidationFailed = "VALIDATION_FAILED"
	codeInternalError    = "INTERNAL_ERROR"
	codeInvalidID        = "INVALID_ID"
	codeInvalidJSON      = "INVALID_JSON"

	msgInvalidRequestBody = "invalid request body"
	msgInternalError      = "internal server error"
)

type (
	ResponseMeta struct {
		RequestID string `json:"request_id"`
	}

	EnvelopedResponse struct {
		Data any          `json:"data"`
		Meta ResponseMeta `json:"meta"`
	}

	FieldError struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	}

	ErrorResponse struct {
		Code      string       `json:"code"`
		Message   string       `json:"message"`
		Details   []FieldError `json:"details,omitempty"`
		Timestamp time.Time    `json:"timestamp"`
	}
)

func writeJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set(contentTypeHeader, applicationJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

var etags = middleware.NewETagGenerator()

// writeEnveloped tags GET payloads by their data only; meta stays out of the ETag.
func writeEnveloped(w http.ResponseWriter, r *http.Request, status int, data any) {
	if r.Method == http.MethodGet && status == http.StatusOK {
		if payload, err := json.Marshal(data); err == nil {
			w.Header().Set("ETag", etags.Tag(payload))
		}
	}

	writeJSONResponse(w, status, EnvelopedResponse{
		Data: data,
		Meta: ResponseMeta{RequestID: middleware.GetRequestID(r)},
	})
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSONResponse(w, status, ErrorResponse{
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

// writeDomainError is the single place error kinds become HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	var validationErrs *model.ValidationErrors

	switch {
	case errors.Is(err, model.ErrInvalidID):
		writeErrorResponse(w, http.StatusBadRequest, codeInvalidID, err.Error())
	case errors.As(err, &validationErrs):
		details := make([]FieldError, 0, len(validationErrs.Errors))
		for _, e := range validationErrs.Errors {
			details = append(details, FieldError{Field: e.Field, Message: e.Message})
		}

		writeJSONResponse(w, http.StatusBadRequest, ErrorResponse{
			Code:      codeValidationFailed,
			Message:   validationErrs.Error(),
			Details:   details,
			Timestamp: time.Now().UTC(),
		})
	case errors.Is(err, model.ErrValidation):
		writeErrorResponse(w, http.StatusBadRequest, codeValidationFailed, err.Error())
	case errors.Is(err, model.ErrNotFound):
		writeErrorResponse(w, http.StatusNotFound, codeNotFound, err.Error())
	case errors.Is(err, model.ErrDuplicateName):
		writeErrorResponse(w, http.StatusBadRequest, codeDuplicateName, err.Error())
	case errors.Is(err, model.ErrInvalidReference):
		writeErrorResponse(w, http.StatusUnprocessableEntity, codeInvalidReference, err.Error())
	default:
		writeErrorResponse(w, http.StatusInternalServerError, codeInternalError, msgInternalError)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, codeInvalidJSON, msgInvalidRequestBody)

		return false
	}

	return true
}
