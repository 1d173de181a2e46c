package order_dispatch_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/service/dispatch"
	"dispatch/pkg/logger"

	"github.com/AlekSi/pointer"
)

const (
	msgZoneUnresolved = "Pickup address does not match any active zone."
	msgNoCandidate    = "No available riders found in the zone. Order left pending."
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
	var dispatchDTO DispatchRequest
	err := json.NewDecoder(r.Body).Decode(&dispatchDTO)
	if err != nil || strings.TrimSpace(dispatchDTO.OrderID) == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := h.service.Dispatch(r.Context(), dispatchDTO.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, dispatch.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, dispatch.ErrAlreadyAccepted),
			errors.Is(err, dispatch.ErrOfferOutstanding),
			errors.Is(err, dispatch.ErrOrderAlreadyTerminal),
			errors.Is(err, dispatch.ErrTransitionNotAllowed):
			h.writeJSON(w, http.StatusConflict, DispatchResponse{
				Success: false,
				Message: pointer.ToString(err.Error()),
			})
		default:
			h.log.Error("dispatch failed",
				logger.NewField("order_id", dispatchDTO.OrderID),
				logger.NewField("error", err),
			)
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := DispatchResponse{
		Success: result.Outcome == entities.DispatchOffered,
		Outcome: pointer.ToString(result.Outcome.String()),
	}
	switch result.Outcome {
	case entities.DispatchOffered:
		response.RiderID = pointer.ToInt64(result.RiderID)
		response.TimeoutAt = pointer.ToString(result.TimeoutAt.UTC().Format(time.RFC3339))
	case entities.DispatchZoneUnresolved:
		response.Message = pointer.ToString(msgZoneUnresolved)
	case entities.DispatchNoCandidate:
		response.Message = pointer.ToString(msgNoCandidate)
	}

	h.writeJSON(w, http.StatusOK, response)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, response DispatchResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
