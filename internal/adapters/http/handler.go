package http

import (
	"errors"
	"net/http"

	"constraintsvc/internal/adapters/http/response"
	httpErrors "constraintsvc/internal/platform/http"
	"constraintsvc/internal/platform/logger"
)

type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// ErrorHandler turns the error of a HandlerFunc into a JSON error response.
// Errors that are not *httpErrors.Error are logged and hidden behind a 500.
func ErrorHandler(next HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := next(w, r)
		if err == nil {
			return
		}

		contextLogger := logger.FromContext(r.Context()).With(
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
		)

		var httpErr *httpErrors.Error
		if errors.As(err, &httpErr) {
			status := httpErrors.StatusOf(httpErr)
			if status >= http.StatusInternalServerError {
				contextLogger.Error("Request failed", logger.Int("status", status), logger.Error(err))
			} else {
				contextLogger.Debug("Request rejected", logger.Int("status", status), logger.Error(err))
			}
			response.RespondError(w, status, httpErr)
			return
		}

		contextLogger.Error("Unexpected server error",
			logger.String("remote_addr", r.RemoteAddr),
			logger.Error(err))
		response.RespondError(w, http.StatusInternalServerError, errors.New("internal server error"))
	}
}
