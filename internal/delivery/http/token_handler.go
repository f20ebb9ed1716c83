package http

import (
	"encoding/json"
	"net/http"

	"rotation-backend/internal/domain"
)

// TokenHandler manages FCM device token registration.
type TokenHandler struct {
	tokens domain.DeviceTokenRepository
}

func NewTokenHandler(tokens domain.DeviceTokenRepository) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

type registerTokenRequest struct {
	Token    string `json:"token"`
	Platform string `json:"platform"`
}

// Register handles POST /api/tokens/register
func (h *TokenHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req registerTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.tokens.Register(req.Token, req.Platform); err != nil {
		http.Error(w, "Failed to register token", http.StatusInternalServerError)
		return
	}

	count, _ := h.tokens.Count()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   count,
	})
}

// Unregister handles POST /api/tokens/unregister
func (h *TokenHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req registerTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.tokens.Unregister(req.Token); err != nil {
		http.Error(w, "Failed to unregister token", http.StatusInternalServerError)
		return
	}

	count, _ := h.tokens.Count()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   count,
	})
}
