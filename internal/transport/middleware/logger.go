package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/zakat-tracker/pkg/ctxutil"
)

// quietPaths are polled by probes and scrapers; successful hits are logged
// at DEBUG only.
var quietPaths = map[string]bool{
	"/live":    true,
	"/ready":   true,
	"/metrics": true,
}

// Logger writes one access log line per request. Server errors log at ERROR,
// rejected credentials and throttled triggers at WARN.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseRecorder{ResponseWriter: w}
			op := &operatorHolder{}

			next.ServeHTTP(rw, r.WithContext(withOperatorHolder(r.Context(), op)))

			status := rw.statusCode()
			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int64("bytes", rw.bytes),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if op.subject != "" {
				attrs = append(attrs, slog.String("operator", op.subject))
			}
			logger.LogAttrs(r.Context(), accessLevel(r.URL.Path, status), "http request", attrs...)
		})
	}
}

func accessLevel(path string, status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status == http.StatusUnauthorized, status == http.StatusTooManyRequests:
		return slog.LevelWarn
	case status < http.StatusBadRequest && quietPaths[path]:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// responseRecorder captures the status and body size sent downstream.
type responseRecorder struct {
	http.ResponseWriter
	status int
	bytes  int64
}

func (w *responseRecorder) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseRecorder) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += int64(n)
	return n, err
}

// statusCode is 200 when the handler wrote nothing.
func (w *responseRecorder) statusCode() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}
