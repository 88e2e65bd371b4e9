package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/heartmarshall/zakat-tracker/internal/jobs"
)

const healthTimeout = 3 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to the probe interface.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type probe struct {
	name     string
	pinger   pinger
	critical bool
}

// HealthHandler serves /live, /ready and /health.
type HealthHandler struct {
	probes  []probe
	jobs    func() []jobs.Status
	version string
}

// NewHealthHandler creates a HealthHandler whose readiness is gated on db.
func NewHealthHandler(db pinger, version string) *HealthHandler {
	return &HealthHandler{
		probes:  []probe{{name: "database", pinger: db, critical: true}},
		version: version,
	}
}

// WithComponent reports a non-critical dependency on /health. A failing
// component degrades the report but does not affect readiness.
func (h *HealthHandler) WithComponent(name string, p pinger) *HealthHandler {
	h.probes = append(h.probes, probe{name: name, pinger: p})
	return h
}

// WithJobs adds background job state to /health. An enabled job whose last
// run failed degrades the report.
func (h *HealthHandler) WithJobs(status func() []jobs.Status) *HealthHandler {
	h.jobs = status
	return h
}

type HealthResponse struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Components map[string]ComponentStatus `json:"components,omitempty"`
	Jobs       []JobHealth                `json:"jobs,omitempty"`
	Timestamp  time.Time                  `json:"timestamp"`
}

type ComponentStatus struct {
	Status   string `json:"status"`
	Critical bool   `json:"critical"`
	Latency  string `json:"latency,omitempty"`
	Error    string `json:"error,omitempty"`
}

type JobHealth struct {
	Name      string     `json:"name"`
	Enabled   bool       `json:"enabled"`
	Running   bool       `json:"running"`
	LastEnd   *time.Time `json:"last_end,omitempty"`
	LastError string     `json:"last_error,omitempty"`
}

// Live always answers 200 while the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now().UTC()})
}

// Ready answers 503 when any critical probe fails.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	results := h.run(r.Context(), true)

	resp := HealthResponse{Status: "ok", Timestamp: time.Now().UTC()}
	status := http.StatusOK
	for _, c := range results {
		if c.Status != "ok" {
			resp.Status = "down"
			status = http.StatusServiceUnavailable
		}
	}
	writeJSON(w, status, resp)
}

// Health reports every probe with latency plus job state. The overall status
// is "down" (503) when a critical probe fails and "degraded" (200) when only
// optional probes or jobs are unhealthy.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:     "ok",
		Version:    h.version,
		Components: h.run(r.Context(), false),
		Timestamp:  time.Now().UTC(),
	}

	for _, c := range resp.Components {
		switch {
		case c.Status == "ok":
		case c.Critical:
			resp.Status = "down"
		case resp.Status == "ok":
			resp.Status = "degraded"
		}
	}

	if h.jobs != nil {
		for _, st := range h.jobs() {
			jh := JobHealth{Name: st.Name, Enabled: st.Enabled, Running: st.Running, LastError: st.LastError}
			if !st.LastEnd.IsZero() {
				end := st.LastEnd.UTC()
				jh.LastEnd = &end
			}
			if st.Enabled && st.LastError != "" && resp.Status == "ok" {
				resp.Status = "degraded"
			}
			resp.Jobs = append(resp.Jobs, jh)
		}
	}

	status := http.StatusOK
	if resp.Status == "down" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

// run pings the probes concurrently under a shared timeout.
func (h *HealthHandler) run(ctx context.Context, criticalOnly bool) map[string]ComponentStatus {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		out = make(map[string]ComponentStatus, len(h.probes))
	)
	for _, p := range h.probes {
		if criticalOnly && !p.critical {
			continue
		}
		wg.Add(1)
		go func(p probe) {
			defer wg.Done()
			st := ping(ctx, p)
			mu.Lock()
			out[p.name] = st
			mu.Unlock()
		}(p)
	}
	wg.Wait()
	return out
}

func ping(ctx context.Context, p probe) ComponentStatus {
	start := time.Now()
	st := ComponentStatus{Status: "ok", Critical: p.critical}
	if err := p.pinger.Ping(ctx); err != nil {
		st.Status = "down"
		st.Error = err.Error()
		return st
	}
	st.Latency = time.Since(start).String()
	return st
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
