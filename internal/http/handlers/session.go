package handlers

import (
	"net/http"

	"service-motorizado/internal/domain"
	"service-motorizado/internal/http/middleware"
	"service-motorizado/internal/logx"
)

// SessionHandler serves sign-in, sign-out, session query and availability.
type SessionHandler struct {
	uc     SessionUsecase
	logger logx.Logger
}

// NewSessionHandler wires a SessionUsecase into HTTP handlers.
func NewSessionHandler(logger logx.Logger, uc SessionUsecase) *SessionHandler {
	return &SessionHandler{uc: uc, logger: logger}
}

// SignIn handles POST /session.
func (h *SessionHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if !decodeJSON(h.logger, w, r, &req) {
		return
	}
	s, err := h.uc.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, sessionToResponse(s))
}

// Current handles GET /session.
func (h *SessionHandler) Current(w http.ResponseWriter, r *http.Request) {
	token, _ := middleware.Token(r.Context())
	s, err := h.uc.Current(r.Context(), token)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, sessionToResponse(s))
}

// SignOut handles DELETE /session.
func (h *SessionHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	token, _ := middleware.Token(r.Context())
	if err := h.uc.SignOut(r.Context(), token); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateAvailability handles PATCH /session/availability.
func (h *SessionHandler) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	courierID, ok := requireCourier(h.logger, w, r)
	if !ok {
		return
	}
	var req availabilityRequest
	if !decodeJSON(h.logger, w, r, &req) {
		return
	}
	c, err := h.uc.UpdateAvailability(r.Context(), courierID, domain.CourierAvailability(req.Status))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, courierToResponse(c))
}
