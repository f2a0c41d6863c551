package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	errs "github.com/matzehuels/wordcast/pkg/errors"
	"github.com/matzehuels/wordcast/pkg/pipeline"
	"github.com/matzehuels/wordcast/pkg/render/sink"
)

// layoutRequest is the body of both layout and render requests.
type layoutRequest struct {
	Words   []string         `json:"words"`
	Options pipeline.Options `json:"options"`
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (layoutRequest, error) {
	var req layoutRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, errs.Wrap(errs.ErrCodeInvalidInput, err, "request body exceeds %d bytes", MaxBodyBytes)
		}
		return req, errs.Wrap(errs.ErrCodeInvalidInput, err, "decode request body")
	}
	return req, nil
}

// handleLayout computes a layout and returns its JSON description.
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	s.serveFormat(w, r, pipeline.FormatJSON)
}

// handleRender computes a layout and returns it rendered in the format named
// by the route.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(chi.URLParam(r, "format"))
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.serveFormat(w, r, format)
}

func (s *Server) serveFormat(w http.ResponseWriter, r *http.Request, format string) {
	req, err := decodeRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts := req.Options
	opts.Formats = []string{format}
	opts.Logger = s.logger.With("request_id", RequestID(r.Context()))
	s.capEvaluations(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		s.writeError(w, r, err)
		return
	}

	// Layouts are deterministic for a given input, so the fingerprint is a
	// strong validator and repeat requests can be answered without work.
	etag := `"` + pipeline.Fingerprint(req.Words, opts) + `"`
	if match := r.Header.Get("If-None-Match"); match != "" && match == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	res, err := s.runner.Execute(r.Context(), req.Words, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	h := w.Header()
	h.Set("Content-Type", sink.ContentType(format))
	h.Set("ETag", etag)
	h.Set("X-Run-ID", res.RunID)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

// capEvaluations applies the server's per-request candidate ceiling. Explicit
// smaller budgets are kept; negative values are left for validation to reject.
func (s *Server) capEvaluations(opts *pipeline.Options) {
	if s.maxEvals < 0 || opts.MaxEvaluations < 0 {
		return
	}
	if opts.MaxEvaluations == 0 || opts.MaxEvaluations > s.maxEvals {
		opts.MaxEvaluations = s.maxEvals
	}
}
