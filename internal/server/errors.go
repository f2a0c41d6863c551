package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	errs "github.com/matzehuels/wordcast/pkg/errors"
	"github.com/matzehuels/wordcast/pkg/observability"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// statusFor maps an error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errs.IsInvalid(err):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrCodeMeasurement):
		return http.StatusUnprocessableEntity
	case errs.Is(err, errs.ErrCodeFontNotFound), errs.Is(err, errs.ErrCodeFileNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrCodeUnsupported):
		return http.StatusNotImplemented
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// codeFor returns the outermost code in err's chain.
func codeFor(err error) errs.Code {
	if c := errs.GetCode(err); c != "" {
		return c
	}
	return errs.ErrCodeInternal
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	body := errorBody{Code: string(codeFor(err)), Message: errs.UserMessage(err)}
	if status == http.StatusInternalServerError {
		body.Message = "internal error"
		s.logger.Error("request failed", "request_id", RequestID(r.Context()), "err", err)
	}
	observability.HTTP().OnError(r.Context(), r.Method, routePattern(r), err)

	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
