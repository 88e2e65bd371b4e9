package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/zakat-tracker/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (string, error)
}

// RequireOperator rejects requests without a valid operator bearer token and
// stores the token subject in the request context.
func RequireOperator(validator tokenValidator, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				w.Header().Set("WWW-Authenticate", `Bearer realm="ops"`)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			subject, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				logger.WarnContext(r.Context(), "operator token rejected",
					slog.String("path", r.URL.Path),
					slog.String("error", err.Error()),
				)
				w.Header().Set("WWW-Authenticate", `Bearer realm="ops", error="invalid_token"`)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			if h, ok := r.Context().Value(operatorHolderKey{}).(*operatorHolder); ok {
				h.subject = subject
			}
			ctx := ctxutil.WithOperator(r.Context(), subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
}

type operatorHolderKey struct{}

// operatorHolder lets an outer middleware observe the operator resolved by
// an inner one.
type operatorHolder struct {
	subject string
}

func withOperatorHolder(ctx context.Context, h *operatorHolder) context.Context {
	return context.WithValue(ctx, operatorHolderKey{}, h)
}
