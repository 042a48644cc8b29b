package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/artisan-market/internal/app"
)

// WriteJSON encodes data as the response body with statusCode. Contract
// responses must never be served from a cache, so every body is no-store.
// On an encoding failure the caller gets 500 and the error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return 0, fmt.Errorf("encode %T response: %w", data, err)
	}

	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
