package offer_accept_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"dispatch/internal/service/dispatch"
	"dispatch/pkg/logger"

	"github.com/AlekSi/pointer"
)

const msgOfferUnavailable = "Offer is no longer available"

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
	var acceptDTO AcceptRequest
	err := json.NewDecoder(r.Body).Decode(&acceptDTO)
	if err != nil || strings.TrimSpace(acceptDTO.OrderID) == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	order, err := h.service.Accept(r.Context(), acceptDTO.OrderID, acceptDTO.RiderID)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrAssignmentStale):
			h.writeJSON(w, http.StatusOK, AcceptResponse{
				Success: false,
				Message: pointer.ToString(msgOfferUnavailable),
			})
		case errors.Is(err, dispatch.ErrInvalidOrderID),
			errors.Is(err, dispatch.ErrInvalidRiderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, dispatch.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, dispatch.ErrOrderAlreadyTerminal):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.Error("accept offer failed",
				logger.NewField("order_id", acceptDTO.OrderID),
				logger.NewField("rider_id", acceptDTO.RiderID),
				logger.NewField("error", err),
			)
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.writeJSON(w, http.StatusOK, AcceptResponse{
		Success: true,
		OrderID: pointer.ToString(order.ID),
		RiderID: pointer.ToInt64(order.Assignment.RiderID),
		Status:  pointer.ToString(order.Status.String()),
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, response AcceptResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
