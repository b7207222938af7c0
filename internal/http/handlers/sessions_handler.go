package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"voltlink/internal/service"
)

// SessionsHandler exposes the charging session flow.
type SessionsHandler struct {
	svc    *service.SessionsService
	logger *zap.Logger
}

// NewSessionsHandler builds handler set.
func NewSessionsHandler(svc *service.SessionsService, logger *zap.Logger) *SessionsHandler {
	return &SessionsHandler{svc: svc, logger: logger}
}

type selectRequest struct {
	ChargerID string `json:"charger_id"`
}

// Select handles POST /sessions/select.
func (h *SessionsHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.ChargerID == "" {
		writeError(w, http.StatusBadRequest, "charger_id is required")
		return
	}
	charger, err := h.svc.SelectCharger(req.ChargerID)
	if err != nil {
		writeError(w, http.StatusNotFound, "charger not found")
		return
	}
	writeJSON(w, http.StatusOK, charger)
}

// Start handles POST /sessions/start.
func (h *SessionsHandler) Start(w http.ResponseWriter, r *http.Request) {
	session, err := h.svc.StartCharging(r.Context())
	if err != nil {
		var rejection *service.RejectionError
		switch {
		case errors.As(err, &rejection):
			writeError(w, http.StatusConflict, rejection.Message)
		case errors.Is(err, service.ErrNoChargerSelected):
			writeError(w, http.StatusBadRequest, "no charger selected")
		case errors.Is(err, service.ErrChargerUnavailable):
			writeError(w, http.StatusConflict, "charger is not available")
		case errors.Is(err, service.ErrSessionActive), errors.Is(err, service.ErrNegotiationPending):
			writeError(w, http.StatusConflict, "a session is already in progress")
		default:
			h.logger.Error("start charging failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to start session")
		}
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

// Stop handles POST /sessions/stop.
func (h *SessionsHandler) Stop(w http.ResponseWriter, r *http.Request) {
	session, err := h.svc.StopCharging()
	if err != nil {
		if errors.Is(err, service.ErrNoActiveSession) {
			writeError(w, http.StatusNotFound, "no active session")
			return
		}
		h.logger.Error("stop charging failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to stop session")
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// Current handles GET /sessions/current.
func (h *SessionsHandler) Current(w http.ResponseWriter, r *http.Request) {
	session, ok := h.svc.ActiveSession()
	if !ok {
		writeJSON(w, http.StatusOK, map[string]interface{}{"session": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"session": session})
}
