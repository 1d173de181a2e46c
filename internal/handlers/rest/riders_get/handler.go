package riders_get

import (
	"encoding/json"
	"net/http"

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
	riderEntities, err := h.service.GetRiders(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	riderDTOs := make([]Rider, len(riderEntities))
	for i, rider := range riderEntities {
		riderDTOs[i].ID = rider.ID
		riderDTOs[i].Name = rider.Name
		riderDTOs[i].Phone = rider.Phone
		riderDTOs[i].Status = rider.Status.String()
		riderDTOs[i].ZoneID = rider.ZoneID
		riderDTOs[i].ActiveOrders = rider.ActiveOrders
		riderDTOs[i].CompletedDeliveries = rider.CompletedDeliveries
		riderDTOs[i].IsActive = rider.IsActive
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(riderDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
