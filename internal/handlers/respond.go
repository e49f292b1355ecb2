package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"timin-server/internal/services"
)

const maxBodyBytes = 1 << 20

// decodeJSON never rejects a body outright: an empty or syntactically broken
// payload leaves v zero-valued, and a mid-stream type mismatch keeps the
// fields decoded before the error, zero for the rest. Either way field
// validation in the services reports the failure. Oversized bodies are cut
// off at 1 MB.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	_ = json.NewDecoder(r.Body).Decode(v)
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, code int, errorCode string) {
	respondWithJSON(w, code, map[string]string{"error": errorCode})
}

var errorStatus = map[error]struct {
	status int
	code   string
}{
	services.ErrMissingFields:      {http.StatusBadRequest, "missing_fields"},
	services.ErrInvalidRole:        {http.StatusBadRequest, "invalid_role"},
	services.ErrInvalidABN:         {http.StatusBadRequest, "invalid_abn"},
	services.ErrDuplicateEmail:     {http.StatusConflict, "email_exists"},
	services.ErrInvalidCredentials: {http.StatusUnauthorized, "invalid_credentials"},
	services.ErrUserNotFound:       {http.StatusNotFound, "user_not_found"},
	services.ErrForbidden:          {http.StatusForbidden, "forbidden"},
	services.ErrShiftNotFound:      {http.StatusNotFound, "not_found"},
	services.ErrInvalidTime:        {http.StatusBadRequest, "invalid_time"},
	services.ErrInvalidRate:        {http.StatusBadRequest, "invalid_rate"},
	services.ErrNotApplied:         {http.StatusBadRequest, "not_applied"},
	services.ErrAlreadyHired:       {http.StatusConflict, "already_hired"},
	services.ErrAlreadyCheckedIn:   {http.StatusBadRequest, "already_checked_in"},
	services.ErrNotCheckedIn:       {http.StatusBadRequest, "not_checked_in"},
	services.ErrInvalidRating:      {http.StatusBadRequest, "invalid_rating"},
	services.ErrNotInvolved:        {http.StatusForbidden, "not_involved"},
	services.ErrAlreadyReviewed:    {http.StatusConflict, "already_reviewed"},
}

// respondServiceError maps a domain error to its status and code; anything
// outside the taxonomy becomes an opaque 500 server_error.
func respondServiceError(w http.ResponseWriter, err error) {
	for sentinel, mapping := range errorStatus {
		if errors.Is(err, sentinel) {
			respondWithError(w, mapping.status, mapping.code)
			return
		}
	}
	respondWithError(w, http.StatusInternalServerError, "server_error")
}
