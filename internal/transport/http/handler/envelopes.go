package handler

import (
	"encoding/json"
	"net/http"
)

// MessageEnvelope is the generic JSON response wrapper.
type MessageEnvelope struct {
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}
