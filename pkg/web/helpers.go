package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
)

// Error kinds carried in the "error" field of every error response.
const (
	KindInvalidArgument = "invalid_argument"
	KindNotFound        = "not_found"
	KindConflict        = "conflict"
	KindInternal        = "internal"
	KindUnavailable     = "unavailable"
)

// ErrorResponse is the body written by RespondError.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

// DetailResponse is a plain confirmation body.
type DetailResponse struct {
	Detail string `json:"detail"`
}

func RespondJSON(w http.ResponseWriter, logger *slog.Logger, status int, payload any) {
	// Handle nil payload
	if payload == nil {
		w.WriteHeader(status)
		return
	}

	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error encoding response to JSON", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, kind, message string) {
	RespondJSON(w, logger, status, ErrorResponse{Error: kind, Detail: message})
}

// ParseID extracts an int64 from the named path value. Any number is accepted, ids that match
// no record are left to the store. On a non-numeric value it writes a 400 response and returns false.
func ParseID(w http.ResponseWriter, r *http.Request, logger *slog.Logger, name string) (int64, bool) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		RespondError(w, logger, http.StatusBadRequest, KindInvalidArgument, fmt.Sprintf("Invalid product key: %s", raw))
		return 0, false
	}
	return id, true
}

// DecodeJSON strictly decodes the request body into dst: unknown fields and trailing data are rejected.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("request body must contain a single JSON object")
	}
	return nil
}
