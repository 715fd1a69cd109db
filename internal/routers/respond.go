package routers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/Ritik8097/EmployeeTask/internal/apperr"
)

const maxBodySize = 1 << 20 // 1MB

var (
	errEmptyBody   = errors.New("request body is empty")
	errUnknownBody = errors.New("request body contains unexpected data")
)

func decodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errEmptyBody
	}
	defer r.Body.Close()

	limited := io.LimitReader(r.Body, maxBodySize)
	decoder := json.NewDecoder(limited)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		return err
	}

	if decoder.More() {
		return errUnknownBody
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("write json error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, kind apperr.Kind, message string) {
	if message == "" {
		message = http.StatusText(status)
	}
	writeJSON(w, status, map[string]string{"kind": string(kind), "error": message})
}

// respondError maps the error taxonomy onto HTTP statuses. Internal causes
// are logged but never serialized.
func respondError(w http.ResponseWriter, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.KindInternal {
		log.Printf("internal error: %v", err)
	}
	writeError(w, apperr.HTTPStatus(kind), kind, apperr.MessageOf(err))
}

func respondValidation(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, apperr.KindValidation, message)
}

func errInvalidDate(field string) error {
	return apperr.Validation("invalid " + field + ": expected YYYY-MM-DD")
}

// parseDate accepts YYYY-MM-DD or RFC3339.
func parseDate(value string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
