package serviceability_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"delivery-estimator/internal/entities"
	"delivery-estimator/internal/generated/dto"
	"delivery-estimator/internal/handlers/rest/converters"
	"delivery-estimator/internal/service/serviceability"
	"delivery-estimator/pkg/logger"
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
	var upsertDTO dto.PutServiceabilityJSONRequestBody
	err := json.NewDecoder(r.Body).Decode(&upsertDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	modify := entities.ServiceabilityModify{
		Pincode:        upsertDTO.Pincode,
		TurnaroundDays: upsertDTO.Tat,
	}
	if upsertDTO.Provider != nil {
		provider := entities.Provider(*upsertDTO.Provider)
		modify.Provider = &provider
	}

	entry, err := h.service.UpsertServiceability(r.Context(), modify)
	if err != nil {
		switch {
		case errors.Is(err, serviceability.ErrMissingRequiredFields),
			errors.Is(err, serviceability.ErrInvalidPincode),
			errors.Is(err, serviceability.ErrInvalidProvider),
			errors.Is(err, serviceability.ErrInvalidTurnaround):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("upsert serviceability")
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
