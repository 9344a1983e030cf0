package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	m "shotdiff.dev/pkg/shotdiff/internal/model"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, m.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, m.ErrInvalidRecord):
		return http.StatusBadRequest
	case errors.Is(err, m.ErrInvalidEncoding),
		errors.Is(err, m.ErrUnsupportedImage),
		errors.Is(err, m.ErrDimensionMismatch):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func idParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

func idPair(r *http.Request) (int64, int64, error) {
	left, err := idParam(r, "id")
	if err != nil {
		return 0, 0, err
	}

	right, err := idParam(r, "otherID")
	if err != nil {
		return 0, 0, err
	}

	return left, right, nil
}
