package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"nearby-restaurants/apperrors"
	"nearby-restaurants/logging"
	"nearby-restaurants/models"
)

// Responder writes JSON bodies and the uniform error envelope.
type Responder struct {
	development bool
	logger      zerolog.Logger
}

// NewResponder returns a Responder. In development the error envelope also
// carries the raw error and its stack trace.
func NewResponder(development bool) *Responder {
	return &Responder{development: development, logger: logging.For("Responder")}
}

func (rs *Responder) JSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		rs.logger.Error().Err(err).Msg("error encoding response")
	}
}

// Error maps err onto its status code and writes the error envelope.
func (rs *Responder) Error(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperrors.As(err)
	status := appErr.StatusCode()

	body := models.ErrorResponse{
		Success: false,
		Status:  appErr.Status(),
		Message: appErr.Message,
		Errors:  appErr.Fields,
	}

	if status >= http.StatusInternalServerError {
		rs.logger.Error().Err(err).
			Str("method", r.Method).Str("path", r.URL.Path).
			Str("requestId", r.Header.Get(RequestIDHeader)).
			Msg("request failed")
		if !rs.development {
			body.Message = apperrors.MsgInternal
		}
	}

	if rs.development {
		body.Error = err.Error()
		traced := err
		if appErr.Err != nil {
			traced = appErr.Err
		}
		body.Stack = fmt.Sprintf("%+v", traced)
	}

	rs.JSON(w, status, body)
}

// RequestIDHeader carries the per-request id set by the server middleware.
const RequestIDHeader = "X-Request-ID"
