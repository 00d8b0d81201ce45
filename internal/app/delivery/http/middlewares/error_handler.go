package middlewares

import (
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/exceptions"
	"doctorsportal-service/internal/pkg/utils"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// ErrorHandler recovers panics from the handler chain and turns them into a
// plain 500 so a single broken request cannot take the process down.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
				m.Log.Error("panic recovered",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Any("panic", rec),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.WrapWithError(
					fmt.Errorf("panic: %v", rec),
					constvars.StatusInternalServerError,
					constvars.ErrClientSomethingWrongWithApplication,
					"panic recovered in handler chain",
				))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
