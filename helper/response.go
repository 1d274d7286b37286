package helper

import (
	"encoding/json"
	"net/http"

	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/apperr"
)

// Envelope selects the response shape a resource uses.
type Envelope int

const (
	// SuccessEnvelope renders {success, message, data}.
	SuccessEnvelope Envelope = iota
	// StatusEnvelope renders {status, data} / {status, message}.
	StatusEnvelope
)

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (e Envelope) OK(w http.ResponseWriter, status int, message string, data interface{}) {
	if e == StatusEnvelope {
		WriteJSON(w, status, map[string]interface{}{
			"status": "success",
			"data":   data,
		})
		return
	}
	WriteJSON(w, status, map[string]interface{}{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func (e Envelope) Page(w http.ResponseWriter, message string, data interface{}, page models.Page, total int64) {
	pagination := map[string]interface{}{
		"current_page":     page.Page,
		"records_per_page": page.PerPage,
		"total_records":    total,
		"total_pages":      page.TotalPages(total),
	}

	if e == StatusEnvelope {
		WriteJSON(w, http.StatusOK, map[string]interface{}{
			"status":     "success",
			"data":       data,
			"pagination": pagination,
		})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"message":    message,
		"data":       data,
		"pagination": pagination,
	})
}

func (e Envelope) Fail(w http.ResponseWriter, status int, message string) {
	if e == StatusEnvelope {
		WriteJSON(w, status, map[string]interface{}{
			"status":  "error",
			"message": message,
		})
		return
	}
	WriteJSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// Error maps err to its HTTP status and writes the failure envelope. It
// returns the status so callers can decide whether to log.
func (e Envelope) Error(w http.ResponseWriter, err error) int {
	status := StatusFor(err)
	message := apperr.Message(err, http.StatusText(status))
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}
	e.Fail(w, status, message)
	return status
}

func StatusFor(err error) int {
	switch {
	case apperr.IsValidation(err):
		return http.StatusBadRequest
	case apperr.IsNotFound(err):
		return http.StatusNotFound
	case apperr.IsConflict(err):
		return http.StatusConflict
	case apperr.IsUnauthorized(err):
		return http.StatusUnauthorized
	case apperr.IsForbidden(err):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
