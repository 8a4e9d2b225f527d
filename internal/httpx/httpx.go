package httpx

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the envelope every error (and most mutations) answer with.
type MessageResponse struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

func WriteMessage(w http.ResponseWriter, code int, message string) {
	WriteJSON(w, code, MessageResponse{Message: message})
}

func WriteError(w http.ResponseWriter, code int, message string) {
	WriteJSON(w, code, MessageResponse{Message: message})
}

func DecodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	return dec.Decode(dst)
}
