package zone_resolve_get

import (
	"encoding/json"
	"net/http"
	"strings"

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
	address := r.URL.Query().Get("address")
	if strings.TrimSpace(address) == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	zoneID, err := h.service.Resolve(r.Context(), address)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := ZoneResolveResponse{
		Address: address,
		ZoneID:  zoneID,
		Matched: zoneID != nil,
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
