package handlers

import (
	"net/http"

	"service-motorizado/internal/logx"
)

// DeliveryHandler serves the courier's delivery history and today's statistics.
type DeliveryHandler struct {
	uc     LifecycleUsecase
	logger logx.Logger
}

// NewDeliveryHandler wires a LifecycleUsecase into HTTP handlers.
func NewDeliveryHandler(logger logx.Logger, uc LifecycleUsecase) *DeliveryHandler {
	return &DeliveryHandler{uc: uc, logger: logger}
}

// History handles GET /deliveries?limit=&offset=.
func (h *DeliveryHandler) History(w http.ResponseWriter, r *http.Request) {
	courierID, ok := requireCourier(h.logger, w, r)
	if !ok {
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}

	list, err := h.uc.History(r.Context(), courierID, limit, offset)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, deliveriesToResponse(list))
}

// Today handles GET /statistics/today.
func (h *DeliveryHandler) Today(w http.ResponseWriter, r *http.Request) {
	courierID, ok := requireCourier(h.logger, w, r)
	if !ok {
		return
	}
	s, err := h.uc.TodayStatistics(r.Context(), courierID)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, statisticsToResponse(s))
}
