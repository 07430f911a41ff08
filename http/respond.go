package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"loan-insights/domain"
)

// writeJSON codifica en buffer primero para no escribir el header si la
// codificación falla.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// writeError mapea errores del motor a códigos HTTP: precondiciones
// violadas son 400, cualquier otra cosa es 500.
func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrInvalidParameter) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
