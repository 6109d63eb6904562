package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Sumatoha/shaq-web/internal/api"
	"github.com/Sumatoha/shaq-web/internal/auth"
)

// AIDesignHandler proxies the design assistant to the persistence API. The
// generated HTML is returned as an opaque string the editor shows in a
// sandboxed iframe srcdoc; it is never parsed or merged into the event.
type AIDesignHandler struct {
	client *api.Client
	logger *slog.Logger
}

func NewAIDesignHandler(client *api.Client, logger *slog.Logger) *AIDesignHandler {
	return &AIDesignHandler{client: client, logger: logger}
}

// Session returns the saved chat history and current HTML.
// GET /editor/{id}/ai.
func (h *AIDesignHandler) Session(w http.ResponseWriter, r *http.Request) {
	ac, _ := auth.FromContext(r.Context())
	eventID := r.PathValue("id")

	sess, err := h.client.AISession(r.Context(), ac.Token, eventID)
	if err != nil {
		h.logger.Error("ai session", "event", eventID, "error", err)
		http.Error(w, "Service unavailable", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sess)
}

// Generate sends one user message and returns the assistant's reply with
// the regenerated page. POST /editor/{id}/ai.
func (h *AIDesignHandler) Generate(w http.ResponseWriter, r *http.Request) {
	ac, _ := auth.FromContext(r.Context())
	eventID := r.PathValue("id")

	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		http.Error(w, "Message is required", http.StatusBadRequest)
		return
	}

	result, err := h.client.GenerateAIDesign(r.Context(), ac.Token, eventID, req.Message)
	if err != nil {
		h.logger.Error("ai generate", "event", eventID, "error", err)
		http.Error(w, "Service unavailable", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// Reset clears the chat history. DELETE /editor/{id}/ai.
func (h *AIDesignHandler) Reset(w http.ResponseWriter, r *http.Request) {
	ac, _ := auth.FromContext(r.Context())
	eventID := r.PathValue("id")

	if err := h.client.ResetAISession(r.Context(), ac.Token, eventID); err != nil {
		h.logger.Error("ai reset", "event", eventID, "error", err)
		http.Error(w, "Service unavailable", http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
