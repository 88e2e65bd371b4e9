package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/heartmarshall/zakat-tracker/internal/domain"
	"github.com/heartmarshall/zakat-tracker/internal/jobs"
	"github.com/heartmarshall/zakat-tracker/pkg/ctxutil"
)

type jobRunner interface {
	Trigger(ctx context.Context, name string) error
	Status() []jobs.Status
}

// OpsHandler serves the job status and manual trigger endpoints.
type OpsHandler struct {
	jobs jobRunner
	log  *slog.Logger
}

// NewOpsHandler creates an OpsHandler.
func NewOpsHandler(runner jobRunner, logger *slog.Logger) *OpsHandler {
	return &OpsHandler{
		jobs: runner,
		log:  logger.With("handler", "ops"),
	}
}

type jobStatusResponse struct {
	Name      string     `json:"name"`
	Schedule  string     `json:"schedule"`
	Enabled   bool       `json:"enabled"`
	Running   bool       `json:"running"`
	Runs      int64      `json:"runs"`
	Failures  int64      `json:"failures"`
	Skipped   int64      `json:"skipped_ticks"`
	LastStart *time.Time `json:"last_start,omitempty"`
	LastEnd   *time.Time `json:"last_end,omitempty"`
	LastError string     `json:"last_error,omitempty"`
	Processed int        `json:"last_processed"`
	Failed    int        `json:"last_failed"`
	Omitted   int        `json:"last_skipped"`
}

// ListJobs reports every registered job.
// GET /ops/jobs
func (h *OpsHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	statuses := h.jobs.Status()
	out := make([]jobStatusResponse, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, toJobStatusResponse(s))
	}
	writeJSON(w, http.StatusOK, map[string]any{"jobs": out})
}

// TriggerJob starts an immediate run of the named job.
// POST /ops/jobs/{name}/trigger
func (h *OpsHandler) TriggerJob(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	operator, _ := ctxutil.OperatorFromCtx(r.Context())

	if err := h.jobs.Trigger(r.Context(), name); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log.InfoContext(r.Context(), "job triggered",
		slog.String("job", name),
		slog.String("operator", operator),
	)
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "started", "job": name})
}

func (h *OpsHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "job not found")
	case errors.Is(err, domain.ErrStateConflict):
		writeError(w, http.StatusConflict, "job already running")
	default:
		h.log.ErrorContext(r.Context(), "ops request failed", slog.String("error", err.Error()))
		writeError(w, http.StatusServiceUnavailable, err.Error())
	}
}

func toJobStatusResponse(s jobs.Status) jobStatusResponse {
	resp := jobStatusResponse{
		Name:      s.Name,
		Schedule:  s.Schedule,
		Enabled:   s.Enabled,
		Running:   s.Running,
		Runs:      s.Runs,
		Failures:  s.Failures,
		Skipped:   s.Skipped,
		LastError: s.LastError,
		Processed: s.LastStats.Processed,
		Failed:    s.LastStats.Failed,
		Omitted:   s.LastStats.Skipped,
	}
	if !s.LastStart.IsZero() {
		t := s.LastStart
		resp.LastStart = &t
	}
	if !s.LastEnd.IsZero() {
		t := s.LastEnd
		resp.LastEnd = &t
	}
	return resp
}
