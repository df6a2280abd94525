// Package v1handler implements the v1 REST API on top of the grid scheduler.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"gridscan/pkg/domain"
	"gridscan/pkg/logger"
	"gridscan/pkg/serrors"
)

// GridService is the scheduler surface the API depends on.
type GridService interface {
	SubmitBatch(ctx context.Context, targets []domain.ScanTarget) ([]domain.JobID, error)
	JobStatus(ctx context.Context, id domain.JobID) (*domain.ScanJob, error)
	Result(ctx context.Context, id domain.JobID) (*domain.ConsensusResult, error)
}

// Deps holds the collaborators the handler needs.
type Deps struct {
	Grid GridService
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes returns the v1 route tree. Authentication is applied by the caller.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/scans", h.submitScans)
	r.Get("/jobs/{jobID}", h.jobStatus)
	r.Get("/jobs/{jobID}/result", h.jobResult)

	return r
}

type submitScansRequest struct {
	Targets []domain.ScanTarget `json:"targets"`
}

type submitScansResponse struct {
	JobIDs []string `json:"jobIds"`
}

func (h *Handler) submitScans(w http.ResponseWriter, r *http.Request) {
	var req submitScansRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(r.Context(), w, serrors.Wrap(serrors.ErrBadRequest, err, "could not decode request body"))

		return
	}

	ids, err := h.deps.Grid.SubmitBatch(r.Context(), req.Targets)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	resp := submitScansResponse{JobIDs: make([]string, 0, len(ids))}
	for _, id := range ids {
		resp.JobIDs = append(resp.JobIDs, id.String())
	}
	writeJSON(r.Context(), w, http.StatusAccepted, resp)
}

type jobStatusResponse struct {
	ID            string           `json:"id"`
	Status        domain.JobStatus `json:"status"`
	RetryCount    int              `json:"retryCount"`
	ProxyAttempts int              `json:"proxyAttempts"`
	EnqueuedAt    time.Time        `json:"enqueuedAt"`
	StartTime     *time.Time       `json:"startTime,omitempty"`
	EndTime       *time.Time       `json:"endTime,omitempty"`
	Error         *domain.JobError `json:"error,omitempty"`
}

func (h *Handler) jobStatus(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseJobID(chi.URLParam(r, "jobID"))
	if err != nil {
		writeError(r.Context(), w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid job id"))

		return
	}

	job, err := h.deps.Grid.JobStatus(r.Context(), id)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	resp := jobStatusResponse{
		ID:            job.ID.String(),
		Status:        job.Status,
		RetryCount:    job.RetryCount,
		ProxyAttempts: job.ProxyAttempts,
		EnqueuedAt:    job.EnqueuedAt,
		Error:         job.Error,
	}
	if !job.StartTime.IsZero() {
		resp.StartTime = &job.StartTime
	}
	if !job.EndTime.IsZero() {
		resp.EndTime = &job.EndTime
	}
	writeJSON(r.Context(), w, http.StatusOK, resp)
}

func (h *Handler) jobResult(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseJobID(chi.URLParam(r, "jobID"))
	if err != nil {
		writeError(r.Context(), w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid job id"))

		return
	}

	result, err := h.deps.Grid.Result(r.Context(), id)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, result)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(ctx, "could not encode response: "+err.Error())
	}
}

// writeError maps semantic error kinds onto HTTP statuses. Internal details
// never leak to the client.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, serrors.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, serrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, serrors.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, serrors.ErrRateLimited):
		status = http.StatusTooManyRequests
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error(ctx, err.Error())
		msg = "internal server error"
	}
	writeJSON(ctx, w, status, errorResponse{Error: msg})
}
