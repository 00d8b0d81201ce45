package middlewares

import (
	"context"
	"doctorsportal-service/internal/pkg/constvars"
	"net/http"

	"github.com/google/uuid"
)

// RequestID attaches a request id to the context, honoring one supplied by the
// client so upstream callers can correlate logs across services.
func (m *Middlewares) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
		w.Header().Set(constvars.HeaderRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
