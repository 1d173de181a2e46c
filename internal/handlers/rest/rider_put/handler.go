package rider_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/service/rider"
	"dispatch/pkg/logger"
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
	var riderUpdateDTO RiderUpdate
	err := json.NewDecoder(r.Body).Decode(&riderUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	riderModifyEntity := entities.RiderModify{
		ID:       &riderUpdateDTO.ID,
		Name:     riderUpdateDTO.Name,
		Phone:    riderUpdateDTO.Phone,
		ZoneID:   riderUpdateDTO.ZoneID,
		IsActive: riderUpdateDTO.IsActive,
	}
	if riderUpdateDTO.Status != nil {
		statusType := entities.RiderStatusType(*riderUpdateDTO.Status)
		riderModifyEntity.Status = &statusType
	}

	res, err := h.service.UpdateRider(r.Context(), riderModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, rider.ErrMissingRequiredFields),
			errors.Is(err, rider.ErrInvalidRiderID),
			errors.Is(err, rider.ErrInvalidName),
			errors.Is(err, rider.ErrInvalidPhone),
			errors.Is(err, rider.ErrInvalidStatus),
			errors.Is(err, rider.ErrInvalidZoneID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, rider.ErrRiderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, rider.ErrZoneNotFound):
			w.WriteHeader(http.StatusUnprocessableEntity)
		case errors.Is(err, rider.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := Rider{
		ID:                  res.ID,
		Name:                res.Name,
		Phone:               res.Phone,
		Status:              res.Status.String(),
		ZoneID:              res.ZoneID,
		ActiveOrders:        res.ActiveOrders,
		CompletedDeliveries: res.CompletedDeliveries,
		IsActive:            res.IsActive,
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
