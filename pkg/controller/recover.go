package controller

import (
	"net/http"

	"go.uber.org/zap"

	"gridscan/pkg/logger"
)

// WithRecover returns a middleware that turns a downstream panic into a 500
// response instead of tearing down the whole server.
func WithRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error(r.Context(), "panic while serving request",
					zap.Any("panic", rec),
					zap.String("url", r.URL.String()))
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
