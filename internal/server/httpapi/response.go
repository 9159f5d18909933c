package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dmitrijs2005/alertaverde/internal/common"
	"github.com/dmitrijs2005/alertaverde/internal/logging"
)

const maxBodyBytes = 1 << 20

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, log logging.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Error(r.Context(), "failed to encode JSON response", "path", r.URL.Path, "error", err)
		}
	}
}

// writeError maps sentinel errors to status codes. Only *common.AppError
// messages reach the client; anything else becomes a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, log logging.Logger, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, common.ErrorValidation):
		status = http.StatusBadRequest
	case errors.Is(err, common.ErrorUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, common.ErrorNotFound):
		status = http.StatusNotFound
	case errors.Is(err, common.ErrorAlreadyExists):
		status = http.StatusConflict
	}

	msg := "Internal server error"
	if status != http.StatusInternalServerError {
		msg = http.StatusText(status)
		var appErr *common.AppError
		if errors.As(err, &appErr) && appErr.Message != "" {
			msg = appErr.Message
		}
	}
	writeJSON(w, r, log, status, messageResponse{Success: false, Message: msg})
}

var errInvalidJSON = &common.AppError{Err: common.ErrorValidation, Message: "Invalid JSON"}

// decodeJSON reads exactly one JSON value from the request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return errInvalidJSON
	}
	if dec.More() {
		return errInvalidJSON
	}
	return nil
}
