package order_cancel_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"dispatch/internal/service/dispatch"
	"dispatch/pkg/logger"

	"github.com/AlekSi/pointer"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var cancelDTO CancelRequest
	err := json.NewDecoder(r.Body).Decode(&cancelDTO)
	if err != nil || strings.TrimSpace(cancelDTO.OrderID) == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	order, err := h.service.Cancel(r.Context(), cancelDTO.OrderID, cancelDTO.Note)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, dispatch.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, dispatch.ErrOrderAlreadyTerminal):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.Error("cancel order failed",
				logger.NewField("order_id", cancelDTO.OrderID),
				logger.NewField("error", err),
			)
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := CancelResponse{
		OrderID: order.ID,
		Status:  order.Status.String(),
	}
	if order.Milestones.CancelledAt != nil {
		response.CancelledAt = pointer.ToString(order.Milestones.CancelledAt.UTC().Format(time.RFC3339))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
