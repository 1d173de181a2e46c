package dispatch_reassign_post

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
	msgAlreadyAccepted = "Order already accepted by a rider"
	msgZoneUnresolved  = "Order has no pickup zone assigned. Cannot reassign rider."
	msgNoCandidate     = "No more available riders found in the zone. Order reset to pending."
	msgOrderIDRequired = "order_id is required"
	msgInvalidBody     = "invalid request body"
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
	var reassignDTO ReassignRequest
	err := json.NewDecoder(r.Body).Decode(&reassignDTO)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, failure(msgInvalidBody))
		return
	}
	if strings.TrimSpace(reassignDTO.OrderID) == "" {
		h.writeJSON(w, http.StatusBadRequest, failure(msgOrderIDRequired))
		return
	}

	result, err := h.service.Reassign(r.Context(), reassignDTO.OrderID, reassignDTO.Reason)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrAlreadyAccepted):
			h.writeJSON(w, http.StatusOK, failure(msgAlreadyAccepted))
		case errors.Is(err, dispatch.ErrInvalidOrderID):
			h.writeJSON(w, http.StatusBadRequest, failure(err.Error()))
		case errors.Is(err, dispatch.ErrOrderNotFound):
			h.writeJSON(w, http.StatusNotFound, failure(err.Error()))
		case errors.Is(err, dispatch.ErrOrderAlreadyTerminal),
			errors.Is(err, dispatch.ErrTransitionNotAllowed):
			h.writeJSON(w, http.StatusConflict, failure(err.Error()))
		default:
			h.log.Error("reassign failed",
				logger.NewField("order_id", reassignDTO.OrderID),
				logger.NewField("error", err),
			)
			h.writeJSON(w, http.StatusInternalServerError, failure(err.Error()))
		}
		return
	}

	switch result.Outcome {
	case entities.DispatchOffered:
		h.writeJSON(w, http.StatusOK, ReassignResponse{
			Success:   true,
			RiderID:   pointer.ToInt64(result.RiderID),
			TimeoutAt: pointer.ToString(result.TimeoutAt.UTC().Format(time.RFC3339)),
		})
	case entities.DispatchZoneUnresolved:
		h.writeJSON(w, http.StatusOK, failure(msgZoneUnresolved))
	default:
		h.writeJSON(w, http.StatusOK, failure(msgNoCandidate))
	}
}

func failure(message string) ReassignResponse {
	return ReassignResponse{
		Success: false,
		Message: pointer.ToString(message),
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, response ReassignResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
