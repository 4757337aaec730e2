package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"service-motorizado/internal/domain"
	"service-motorizado/internal/http/middleware"
	"service-motorizado/internal/logx"
)

// AssignmentHandler serves the courier's assignments and order status updates.
type AssignmentHandler struct {
	uc     LifecycleUsecase
	logger logx.Logger
}

// NewAssignmentHandler wires a LifecycleUsecase into HTTP handlers.
func NewAssignmentHandler(logger logx.Logger, uc LifecycleUsecase) *AssignmentHandler {
	return &AssignmentHandler{uc: uc, logger: logger}
}

// List handles GET /assignments.
func (h *AssignmentHandler) List(w http.ResponseWriter, r *http.Request) {
	courierID, ok := h.courier(w, r)
	if !ok {
		return
	}
	list, err := h.uc.ListActive(r.Context(), courierID)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, assignmentsToResponse(list))
}

// Get handles GET /assignments/{assignmentID}.
func (h *AssignmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	courierID, ok := h.courier(w, r)
	if !ok {
		return
	}
	a, err := h.uc.Get(r.Context(), courierID, chi.URLParam(r, "assignmentID"))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, assignmentToResponse(a))
}

// Accept handles POST /assignments/{assignmentID}/accept.
func (h *AssignmentHandler) Accept(w http.ResponseWriter, r *http.Request) {
	courierID, ok := h.courier(w, r)
	if !ok {
		return
	}
	a, err := h.uc.Accept(r.Context(), courierID, chi.URLParam(r, "assignmentID"))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, assignmentToResponse(a))
}

// Reject handles POST /assignments/{assignmentID}/reject with an optional {"notes": "..."} body.
func (h *AssignmentHandler) Reject(w http.ResponseWriter, r *http.Request) {
	courierID, ok := h.courier(w, r)
	if !ok {
		return
	}
	var req rejectRequest
	if !decodeOptionalJSON(h.logger, w, r, &req) {
		return
	}
	a, err := h.uc.Reject(r.Context(), courierID, chi.URLParam(r, "assignmentID"), req.Notes)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, assignmentToResponse(a))
}

// Complete handles POST /assignments/{assignmentID}/complete.
func (h *AssignmentHandler) Complete(w http.ResponseWriter, r *http.Request) {
	courierID, ok := h.courier(w, r)
	if !ok {
		return
	}
	var req completeRequest
	if !decodeJSON(h.logger, w, r, &req) {
		return
	}
	rec, err := h.uc.Complete(r.Context(), courierID, chi.URLParam(r, "assignmentID"), req.toModel())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, deliveryToResponse(rec))
}

// AdvanceOrderStatus handles PATCH /orders/{orderID}/status.
func (h *AssignmentHandler) AdvanceOrderStatus(w http.ResponseWriter, r *http.Request) {
	courierID, ok := h.courier(w, r)
	if !ok {
		return
	}
	var req orderStatusRequest
	if !decodeJSON(h.logger, w, r, &req) {
		return
	}
	o, err := h.uc.AdvanceOrderStatus(r.Context(), courierID, chi.URLParam(r, "orderID"), domain.OrderStatus(req.Status))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, orderToResponse(o))
}

func (h *AssignmentHandler) courier(w http.ResponseWriter, r *http.Request) (string, bool) {
	return requireCourier(h.logger, w, r)
}

func requireCourier(logger logx.Logger, w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := middleware.CourierID(r.Context())
	if !ok {
		writeError(logger, w, r, http.StatusUnauthorized, "unauthorized")
		return "", false
	}
	return id, true
}
