// Package errors centralizes how internal failures leave the API:
// logged with full context server-side, reduced to a fixed generic
// message on the wire.
package errors

import (
	"net/http"

	"github.com/dalemusser/clubhub/internal/app/system/apiutil"
	"go.uber.org/zap"
)

// ErrorLogger logs internal errors and writes the 500 response. The
// per-handler generic message is part of the wire contract; the real
// error never crosses the boundary.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger on the app logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// Internal logs err under operation and responds 500 {"error": msg}.
func (e *ErrorLogger) Internal(w http.ResponseWriter, r *http.Request, err error, operation, msg string) {
	e.log.Error("internal error",
		zap.String("operation", operation),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	apiutil.Error(w, http.StatusInternalServerError, msg)
}
