package offer_reject_post

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
	var rejectDTO RejectRequest
	err := json.NewDecoder(r.Body).Decode(&rejectDTO)
	if err != nil || strings.TrimSpace(rejectDTO.OrderID) == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := h.service.Reject(r.Context(), rejectDTO.OrderID, rejectDTO.RiderID, rejectDTO.Reason)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrAssignmentStale):
			h.writeJSON(w, http.StatusOK, RejectResponse{
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
			h.log.Error("reject offer failed",
				logger.NewField("order_id", rejectDTO.OrderID),
				logger.NewField("rider_id", rejectDTO.RiderID),
				logger.NewField("error", err),
			)
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := RejectResponse{
		Success: true,
		Outcome: pointer.ToString(result.Outcome.String()),
	}
	if result.Outcome == entities.DispatchOffered {
		response.NextRiderID = pointer.ToInt64(result.RiderID)
		response.TimeoutAt = pointer.ToString(result.TimeoutAt.UTC().Format(time.RFC3339))
	}

	h.writeJSON(w, http.StatusOK, response)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, response RejectResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
