package order_advance_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"dispatch/internal/entities"
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
	var advanceDTO AdvanceRequest
	err := json.NewDecoder(r.Body).Decode(&advanceDTO)
	if err != nil || strings.TrimSpace(advanceDTO.OrderID) == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	next := entities.OrderStatusType(advanceDTO.NextStatus)

	if !advanceDTO.ApplyToBulkSiblings {
		order, err := h.service.Advance(r.Context(), advanceDTO.OrderID, advanceDTO.RiderID, next, advanceDTO.Note)
		if err != nil {
			h.writeError(w, advanceDTO.OrderID, err)
			return
		}

		h.writeJSON(w, AdvanceResponse{
			OrderID: order.ID,
			Status:  pointer.ToString(order.Status.String()),
		})
		return
	}

	outcomes, err := h.service.AdvanceWithSiblings(r.Context(), advanceDTO.OrderID, advanceDTO.RiderID, next, advanceDTO.Note)
	if err != nil {
		h.writeError(w, advanceDTO.OrderID, err)
		return
	}

	response := AdvanceResponse{
		OrderID: advanceDTO.OrderID,
		Results: make([]AdvanceResult, len(outcomes)),
	}
	for i, outcome := range outcomes {
		result := AdvanceResult{OrderID: outcome.OrderID}
		if outcome.Err != nil {
			result.Error = pointer.ToString(outcome.Err.Error())
		} else {
			result.Success = true
			result.Status = pointer.ToString(outcome.Order.Status.String())
		}
		if outcome.OrderID == advanceDTO.OrderID {
			response.Status = result.Status
		}
		response.Results[i] = result
	}

	h.writeJSON(w, response)
}

func (h *Handler) writeError(w http.ResponseWriter, orderID string, err error) {
	switch {
	case errors.Is(err, dispatch.ErrInvalidOrderID),
		errors.Is(err, dispatch.ErrInvalidRiderID),
		errors.Is(err, dispatch.ErrInvalidStatus),
		errors.Is(err, dispatch.ErrInvalidBulkID):
		w.WriteHeader(http.StatusBadRequest)
	case errors.Is(err, dispatch.ErrOrderNotFound),
		errors.Is(err, dispatch.ErrBulkOrderNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, dispatch.ErrOrderAlreadyTerminal),
		errors.Is(err, dispatch.ErrTransitionNotAllowed):
		w.WriteHeader(http.StatusConflict)
	default:
		h.log.Error("advance order failed",
			logger.NewField("order_id", orderID),
			logger.NewField("error", err),
		)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, response AdvanceResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
