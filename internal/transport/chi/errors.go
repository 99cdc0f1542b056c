package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/cmsdash/internal/domain"
	logpkg "github.com/kailas-cloud/cmsdash/internal/logger"
)

// ErrorCode is the machine-readable error code in every error body.
type ErrorCode string

// Error codes returned by the API.
const (
	CodeBadRequest        ErrorCode = "bad_request"
	CodeUnauthorized      ErrorCode = "unauthorized"
	CodeValidationFailed  ErrorCode = "validation_failed"
	CodeNotFound          ErrorCode = "not_found"
	CodeAlreadyExists     ErrorCode = "already_exists"
	CodeRevisionConflict  ErrorCode = "revision_conflict"
	CodeAssistantDisabled ErrorCode = "assistant_disabled"
	CodeAssistantError    ErrorCode = "assistant_error"
	CodeNotImplemented    ErrorCode = "not_implemented"
	CodeInternalError     ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

var defaultErrorHandlers = []errorHandler{
	revisionConflictHandler,
	sentinelHandler(domain.ErrNotFound, http.StatusNotFound, CodeNotFound),
	sentinelHandler(domain.ErrAlreadyExists, http.StatusConflict, CodeAlreadyExists),
	sentinelHandler(domain.ErrInvalidSchema, http.StatusBadRequest, CodeValidationFailed),
	sentinelHandler(domain.ErrInvalidQuery, http.StatusBadRequest, CodeBadRequest),
	sentinelHandler(domain.ErrAssistantDisabled, http.StatusNotImplemented, CodeAssistantDisabled),
	sentinelHandler(domain.ErrAssistantError, http.StatusBadGateway, CodeAssistantError),
	sentinelHandler(domain.ErrNotImplemented, http.StatusNotImplemented, CodeNotImplemented),
}

// clientVisible lists errors whose messages are safe to return as-is:
// they are built from the request, not from internal state.
var clientVisible = []error{
	domain.ErrInvalidSchema,
	domain.ErrInvalidQuery,
}

// safeSentinels are reduced to the sentinel text.
var safeSentinels = []error{
	domain.ErrNotFound,
	domain.ErrAlreadyExists,
	domain.ErrRevisionConflict,
	domain.ErrAssistantDisabled,
	domain.ErrAssistantError,
	domain.ErrNotImplemented,
}

// safeDomainMessage returns a message for the client without exposing internals.
func safeDomainMessage(err error) string {
	for _, s := range clientVisible {
		if errors.Is(err, s) {
			return err.Error()
		}
	}
	for _, s := range safeSentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// revisionConflictHandler handles ErrRevisionConflict with ETag header and extra fields.
func revisionConflictHandler(w http.ResponseWriter, err error, msg string) bool {
	if !errors.Is(err, domain.ErrRevisionConflict) {
		return false
	}
	var rce *domain.RevisionConflictError
	if errors.As(err, &rce) {
		setETag(w, rce.CurrentRevision)
		writeJSON(w, http.StatusConflict, map[string]any{
			"code":             CodeRevisionConflict,
			"message":          msg,
			"current_revision": rce.CurrentRevision,
		})
		return true
	}
	writeError(w, http.StatusConflict, CodeRevisionConflict, msg)
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := s.requestLogger(r)
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			log.Warn("domain error", zap.String("path", r.URL.Path), zap.Error(err))
			return
		}
	}
	log.Error("internal error", zap.String("path", r.URL.Path), zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}

// requestLogger prefers the per-request logger installed by the outer
// middleware and falls back to the server logger tagged with the request id.
func (s *Server) requestLogger(r *http.Request) *zap.Logger {
	if l, ok := logpkg.Lookup(r.Context()); ok {
		return l
	}
	return s.logger.With(zap.String("request_id", middleware.GetReqID(r.Context())))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}

func setETag(w http.ResponseWriter, revision int) {
	w.Header().Set("ETag", strconv.Quote(strconv.Itoa(revision)))
}
