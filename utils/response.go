package utils

import (
	"encoding/json"
	"net/http"
)

// APIResponse is the envelope every endpoint returns. Code carries the
// machine-readable result code for expected rejections (alreadyPending,
// insufficient, ...) so clients never have to parse Message.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Code    string      `json:"code,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// OK writes a 200 success envelope.
func OK(w http.ResponseWriter, message string, data interface{}) {
	WriteJSON(w, http.StatusOK, APIResponse{Success: true, Message: message, Data: data})
}

// Fail writes a failure envelope with an optional result code.
func Fail(w http.ResponseWriter, status int, message, code string) {
	WriteJSON(w, status, APIResponse{Success: false, Message: message, Code: code})
}
