package ctxutil

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	requestIDKey ctxKey = "request_id"
	jobNameKey   ctxKey = "job_name"
	operatorKey  ctxKey = "operator"
)

// WithUserID stores the user ID in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithJobName marks the context as belonging to a background job run.
func WithJobName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, jobNameKey, name)
}

// JobNameFromCtx returns the running job name, or "" outside a job.
func JobNameFromCtx(ctx context.Context) string {
	name, _ := ctx.Value(jobNameKey).(string)
	return name
}

// WithOperator stores the subject of a verified operator token.
func WithOperator(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, operatorKey, subject)
}

// OperatorFromCtx returns the operator subject and whether one is present.
func OperatorFromCtx(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(operatorKey).(string)
	if !ok || sub == "" {
		return "", false
	}
	return sub, true
}

// LogAttrs returns the correlation values carried by ctx as log attributes,
// keyed request_id, job, operator and user_id. Absent values are omitted.
func LogAttrs(ctx context.Context) []slog.Attr {
	var attrs []slog.Attr
	if id := RequestIDFromCtx(ctx); id != "" {
		attrs = append(attrs, slog.String(string(requestIDKey), id))
	}
	if name := JobNameFromCtx(ctx); name != "" {
		attrs = append(attrs, slog.String("job", name))
	}
	if sub, ok := OperatorFromCtx(ctx); ok {
		attrs = append(attrs, slog.String(string(operatorKey), sub))
	}
	if id, ok := UserIDFromCtx(ctx); ok {
		attrs = append(attrs, slog.String(string(userIDKey), id.String()))
	}
	return attrs
}
