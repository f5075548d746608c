package serviceabilities_get

import (
	"encoding/json"
	"net/http"

	"delivery-estimator/internal/handlers/rest/converters"
	"delivery-estimator/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.GetAllServiceability(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("list serviceability")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(converters.ServiceabilityList(entries))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
