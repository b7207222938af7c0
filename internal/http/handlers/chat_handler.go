package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"voltlink/internal/geo"
	"voltlink/internal/models"
	"voltlink/internal/service"
)

// ChatHandler exposes the assistant transcript and search.
type ChatHandler struct {
	assistant *service.Assistant
	resolver  *geo.Resolver
}

// NewChatHandler builds handler set.
func NewChatHandler(assistant *service.Assistant, resolver *geo.Resolver) *ChatHandler {
	return &ChatHandler{assistant: assistant, resolver: resolver}
}

type searchRequest struct {
	Text string `json:"text"`
}

// Messages handles GET /chat/messages.
func (h *ChatHandler) Messages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"messages": h.assistant.Messages()})
}

// Search handles POST /chat/search.
func (h *ChatHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	var coords *models.Coordinates
	if location := h.resolver.Location(); location.Loaded && location.Error == "" {
		c := location.Coords
		coords = &c
	}

	reply := h.assistant.Send(r.Context(), req.Text, coords)
	writeJSON(w, http.StatusOK, reply)
}
