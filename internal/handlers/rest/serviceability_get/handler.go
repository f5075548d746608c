package serviceability_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"delivery-estimator/internal/handlers/rest/converters"
	"delivery-estimator/internal/service/serviceability"
	"delivery-estimator/pkg/logger"
	"github.com/gorilla/mux"
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
	pincode := mux.Vars(r)["pincode"]

	entry, err := h.service.GetServiceability(r.Context(), pincode)
	if err != nil {
		switch {
		case errors.Is(err, serviceability.ErrServiceabilityNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, serviceability.ErrInvalidPincode):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(converters.Serviceability(*entry))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
